package views

import (
	"context"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/pageforge/document"
)

const adminCSS = `
body{background:#f9fafb}
.pf-admin{max-width:960px;margin:0 auto;padding:32px 24px}
.pf-admin table{width:100%;border-collapse:collapse;background:#fff;border:1px solid #e5e7eb;border-radius:8px}
.pf-admin th,.pf-admin td{text-align:left;padding:10px 12px;border-bottom:1px solid #e5e7eb}
.pf-admin .pf-msg{background:#ecfdf5;border:1px solid #a7f3d0;border-radius:6px;padding:10px 12px;margin-bottom:16px}
.pf-admin input[type=text],.pf-admin input[type=password],.pf-admin input[type=url]{padding:8px;border:1px solid #d1d5db;border-radius:6px}
.pf-badge{font-size:.75rem;padding:2px 8px;border-radius:999px;background:#e5e7eb}
.pf-badge.published{background:#d1fae5;color:#065f46}
`

func adminShell(site Site, title string, body func(ctx context.Context, h *htmlWriter)) templ.Component {
	return page(func(ctx context.Context, h *htmlWriter) {
		h.s(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.f(`<title>%s — %s</title>`, esc(title), esc(site.Name))
		h.s(`<style>` + baseCSS + adminCSS + `</style></head><body>`)
		body(ctx, h)
		h.s(`</body></html>`)
	})
}

// AdminLogin renders the password prompt for the builder.
func AdminLogin(site Site, showError bool, csrfToken string) templ.Component {
	return adminShell(site, "Sign in", func(ctx context.Context, h *htmlWriter) {
		h.s(`<div class="pf-admin" style="max-width:360px;text-align:center">`)
		h.f(`<h1>%s</h1>`, esc(site.Name))
		if showError {
			h.s(`<p class="pf-form-error">Wrong password.</p>`)
		}
		h.s(`<form method="post" action="/admin/login/">`)
		h.f(`<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
		h.s(`<p><input type="password" name="password" placeholder="Password" autofocus></p>`)
		h.s(`<button type="submit" class="pf-button">Sign in</button>`)
		h.s(`</form></div>`)
	})
}

// Dashboard lists every page with its status and a create form.
func Dashboard(site Site, pages []document.Page, msg, csrfToken string) templ.Component {
	return adminShell(site, "Pages", func(ctx context.Context, h *htmlWriter) {
		h.s(`<div class="pf-admin">`)
		h.f(`<h1>%s</h1>`, esc(site.Name))
		if msg != "" {
			h.f(`<p class="pf-msg">%s</p>`, esc(msg))
		}
		h.s(`<form method="post" action="/admin/pages/create/" style="margin-bottom:24px">`)
		h.f(`<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
		h.s(`<input type="text" name="title" placeholder="New page title" required> `)
		h.s(`<button type="submit" class="pf-button">Create page</button>`)
		h.s(`</form>`)
		if len(pages) == 0 {
			h.s(`<p>No pages yet. Create one above.</p></div>`)
			return
		}
		h.s(`<table><tr><th>Title</th><th>Slug</th><th>Status</th><th></th></tr>`)
		for _, p := range pages {
			h.s(`<tr>`)
			h.f(`<td><a href="/admin/pages/%s/">%s</a></td>`, esc(p.Slug), esc(p.Title))
			h.f(`<td>/p/%s/</td>`, esc(p.Slug))
			if p.Status == document.StatusPublished {
				h.s(`<td><span class="pf-badge published">published</span></td>`)
			} else {
				h.f(`<td><span class="pf-badge">%s</span></td>`, esc(string(p.Status)))
			}
			h.s(`<td>`)
			h.f(`<form method="post" action="/admin/pages/%s/delete/" style="display:inline" onsubmit="return confirm('Delete this page?')">`, esc(p.Slug))
			h.f(`<input type="hidden" name="_csrf" value="%s"><button type="submit">Delete</button></form>`, esc(csrfToken))
			h.s(`</td></tr>`)
		}
		h.s(`</table></div>`)
	})
}

// Submission is one stored visitor form submission, shaped for display.
type Submission struct {
	ID          int64
	ComponentID string
	Data        map[string]string
	CreatedAt   time.Time
}

// Submissions lists the collected form submissions for a page.
func Submissions(site Site, pg document.Page, subs []Submission) templ.Component {
	return adminShell(site, "Submissions", func(ctx context.Context, h *htmlWriter) {
		h.s(`<div class="pf-admin">`)
		h.f(`<p><a href="/admin/pages/%s/">&larr; Back to builder</a></p>`, esc(pg.Slug))
		h.f(`<h1>Submissions — %s</h1>`, esc(pg.Title))
		if len(subs) == 0 {
			h.s(`<p>Nothing collected yet.</p></div>`)
			return
		}
		h.s(`<table><tr><th>When</th><th>Form</th><th>Data</th></tr>`)
		for _, s := range subs {
			h.s(`<tr>`)
			h.f(`<td>%s</td>`, esc(s.CreatedAt.Format("2006-01-02 15:04")))
			h.f(`<td>%s</td>`, esc(s.ComponentID))
			h.s(`<td>`)
			for k, v := range s.Data {
				h.f(`<div><strong>%s</strong>: %s</div>`, esc(k), esc(v))
			}
			h.s(`</td></tr>`)
		}
		h.s(`</table></div>`)
	})
}
