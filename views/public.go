// Package views holds the templ components for the public page shell and
// the builder UI. Components are authored as plain Go templ.ComponentFunc
// values so they can be rendered and asserted without a DOM.
package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/pageforge/document"
)

// baseCSS is the shared stylesheet for rendered pages. Gradient background
// tokens referenced by hero configs are defined here.
const baseCSS = `
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,-apple-system,sans-serif;color:#111827;line-height:1.6}
.pf-hero{display:flex;flex-direction:column;justify-content:center;padding:96px 24px;min-height:50vh}
.pf-hero h1{font-size:2.75rem;margin:0 0 12px}
.pf-hero-subtitle{font-size:1.25rem;opacity:.9;margin:0 0 24px}
.gradient-indigo{background:linear-gradient(135deg,#4f46e5,#7c3aed)}
.gradient-sunset{background:linear-gradient(135deg,#f97316,#db2777)}
.gradient-ocean{background:linear-gradient(135deg,#0ea5e9,#2563eb)}
.gradient-forest{background:linear-gradient(135deg,#059669,#065f46)}
.pf-button{display:inline-block;background:#4f46e5;color:#fff;padding:12px 24px;border:none;border-radius:8px;font-size:1rem;text-decoration:none;cursor:pointer;align-self:inherit}
.pf-text{padding:32px 24px}
.pf-image{margin:32px auto;padding:0 24px}
.pf-image img{max-width:100%;display:block;margin:0 auto}
.pf-image-placeholder{background:#f3f4f6;border:2px dashed #d1d5db;border-radius:8px;padding:64px;text-align:center;color:#9ca3af}
.pf-video{max-width:860px;margin:32px auto;padding:0 24px}
.pf-video iframe,.pf-video video{width:100%;aspect-ratio:16/9;border:0}
.pf-video-invalid{background:#f3f4f6;border:2px dashed #d1d5db;border-radius:8px;padding:48px;text-align:center;color:#9ca3af}
.pf-form{max-width:560px;margin:48px auto;padding:0 24px}
.pf-field{margin-bottom:16px}
.pf-field label{display:block;margin-bottom:4px;font-weight:600}
.pf-field input,.pf-field textarea,.pf-field select{width:100%;padding:10px;border:1px solid #d1d5db;border-radius:6px;font-size:1rem}
.pf-form-success{background:#ecfdf5;color:#065f46;border:1px solid #a7f3d0;border-radius:8px;padding:16px;text-align:center}
.pf-form-error{background:#fef2f2;color:#991b1b;border:1px solid #fecaca;border-radius:8px;padding:12px}
.pf-cta{color:#fff;text-align:center;padding:64px 24px}
.pf-cta h2{font-size:2rem;margin:0 0 8px}
.pf-features{max-width:1080px;margin:48px auto;padding:0 24px}
.pf-features h2{text-align:center}
.pf-feature h3{margin:0 0 8px}
.pf-testimonial{max-width:640px;margin:48px auto;padding:0 24px;text-align:center}
.pf-testimonial blockquote{font-size:1.25rem;font-style:italic;margin:12px 0}
.pf-stars{font-size:1.4rem;color:#f59e0b}
.pf-testimonial-author img{width:48px;height:48px;border-radius:50%;vertical-align:middle;margin-right:8px}
.pf-testimonial-role{color:#6b7280;margin-left:8px}
`

// head emits the document head, applying the page metadata the renderer
// exposed as data. This is the one place SEO side effects happen.
func head(site Site, meta document.PageMetadata, h *htmlWriter) {
	h.s(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	h.f(`<title>%s</title>`, esc(meta.Title))
	if meta.Description != "" {
		h.f(`<meta name="description" content="%s">`, esc(meta.Description))
		h.f(`<meta property="og:description" content="%s">`, esc(meta.Description))
	}
	h.f(`<meta property="og:title" content="%s">`, esc(meta.Title))
	h.s(`<meta property="og:type" content="website">`)
	if meta.URL != "" {
		h.f(`<link rel="canonical" href="%s">`, esc(meta.URL))
		h.f(`<meta property="og:url" content="%s">`, esc(meta.URL))
	}
	if meta.OGImageURL != "" {
		h.f(`<meta property="og:image" content="%s">`, esc(meta.OGImageURL))
	}
	h.f(`<script type="application/ld+json">%s</script>`, WebsiteJsonLD(site))
	h.s(`<style>` + baseCSS + `</style>`)
	h.s(`</head>`)
}

// PublicPage is the shell around a rendered page body for the public path
// and the builder's full-page preview.
func PublicPage(site Site, meta document.PageMetadata, body templ.Component) templ.Component {
	return page(func(ctx context.Context, h *htmlWriter) {
		h.s(`<!DOCTYPE html><html lang="en">`)
		head(site, meta, h)
		h.s(`<body>`)
		h.c(ctx, body)
		h.s(`</body></html>`)
	})
}

// Home is the public index: a plain list of published pages.
func Home(site Site, pages []document.Page) templ.Component {
	return page(func(ctx context.Context, h *htmlWriter) {
		h.s(`<!DOCTYPE html><html lang="en">`)
		head(site, document.PageMetadata{Title: site.Name, Description: site.Description, URL: BuildURL(site.URL)}, h)
		h.s(`<body><div style="max-width:720px;margin:0 auto;padding:64px 24px">`)
		h.f(`<h1>%s</h1>`, esc(site.Name))
		if site.Description != "" {
			h.f(`<p>%s</p>`, esc(site.Description))
		}
		if len(pages) == 0 {
			h.s(`<p>Nothing published yet.</p>`)
		}
		h.s(`<ul>`)
		for _, p := range pages {
			h.f(`<li><a href="/p/%s/">%s</a></li>`, esc(p.Slug), esc(p.Title))
		}
		h.s(`</ul></div></body></html>`)
	})
}

// NotFound is the styled 404 page.
func NotFound(site Site) templ.Component {
	return statusPage(site, "404", "This page doesn't exist or isn't published.")
}

// ServerError is the styled 500 page.
func ServerError(site Site) templ.Component {
	return statusPage(site, "Something went wrong", "Please try again in a moment.")
}

func statusPage(site Site, title, detail string) templ.Component {
	return page(func(ctx context.Context, h *htmlWriter) {
		h.s(`<!DOCTYPE html><html lang="en">`)
		head(site, document.PageMetadata{Title: title + " — " + site.Name}, h)
		h.s(`<body><div style="text-align:center;padding:96px 24px">`)
		h.f(`<h1>%s</h1><p>%s</p>`, esc(title), esc(detail))
		h.s(`<p><a href="/">Back home</a></p>`)
		h.s(`</div></body></html>`)
	})
}
