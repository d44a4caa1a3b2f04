package views

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/eringen/pageforge/catalog"
	"github.com/eringen/pageforge/document"
	"github.com/eringen/pageforge/editor"
	"github.com/eringen/pageforge/render"
)

const builderCSS = `
.pf-builder{display:grid;grid-template-columns:220px 1fr 320px;gap:0;height:100vh}
.pf-builder-pane{overflow-y:auto;background:#fff;border-right:1px solid #e5e7eb;padding:16px}
.pf-builder-canvas{overflow-y:auto;background:#f3f4f6;padding:24px}
.pf-builder-topbar{grid-column:1/4;display:flex;align-items:center;gap:16px;background:#111827;color:#fff;padding:10px 16px}
.pf-builder-topbar a{color:#d1d5db;text-decoration:none}
.pf-palette-item{display:block;width:100%;text-align:left;background:#f9fafb;border:1px solid #e5e7eb;border-radius:6px;padding:8px 10px;margin-bottom:8px;cursor:grab;font-size:.9rem}
.pf-palette-group{margin:0 0 6px;font-size:.75rem;text-transform:uppercase;letter-spacing:.08em;color:#6b7280}
.pf-canvas-item{position:relative;background:#fff;border:1px solid transparent;margin-bottom:8px}
.pf-canvas-item.selected{border-color:#4f46e5}
.pf-canvas-item.hidden-component{opacity:.45}
.pf-canvas-toolbar{display:flex;gap:4px;background:#f9fafb;border-bottom:1px solid #e5e7eb;padding:4px 8px;font-size:.8rem}
.pf-canvas-toolbar form{display:inline;margin:0}
.pf-canvas-toolbar button{border:none;background:none;cursor:pointer;font-size:.8rem;color:#374151}
.pf-prop{margin-bottom:14px}
.pf-prop label{display:block;font-size:.8rem;font-weight:600;margin-bottom:4px}
.pf-prop input[type=text],.pf-prop input[type=url],.pf-prop input[type=number],.pf-prop textarea,.pf-prop select{width:100%;padding:6px;border:1px solid #d1d5db;border-radius:4px;font-size:.9rem}
.pf-list-item{border:1px solid #e5e7eb;border-radius:6px;padding:8px;margin-bottom:8px}
.pf-list-item-actions{display:flex;gap:4px;margin-top:6px}
`

// Builder renders the full page-builder screen: palette, canvas preview and
// the property editor for the selected component.
func Builder(site Site, doc document.Document, selectedID, msg, csrfToken string) templ.Component {
	return page(func(ctx context.Context, h *htmlWriter) {
		h.s(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.f(`<title>Builder — %s</title>`, esc(doc.Page.Title))
		h.s(`<style>` + baseCSS + adminCSS + builderCSS + `</style></head><body>`)
		h.s(`<div class="pf-builder">`)
		topbar(doc.Page, msg, h)
		h.s(`<div class="pf-builder-pane">`)
		palette(doc.Page.Slug, csrfToken, h)
		h.s(`</div>`)
		h.s(`<div class="pf-builder-canvas">`)
		canvas(ctx, doc, selectedID, csrfToken, h)
		h.s(`</div>`)
		h.s(`<div class="pf-builder-pane">`)
		propertyPanel(doc, selectedID, csrfToken, h)
		h.s(`</div>`)
		h.s(`</div></body></html>`)
	})
}

func topbar(pg document.Page, msg string, h *htmlWriter) {
	h.s(`<div class="pf-builder-topbar">`)
	h.s(`<a href="/admin/">&larr; Pages</a>`)
	h.f(`<strong>%s</strong>`, esc(pg.Title))
	if pg.Status == document.StatusPublished {
		h.f(`<a href="/p/%s/" target="_blank">View live</a>`, esc(pg.Slug))
	} else {
		h.s(`<span class="pf-badge">draft</span>`)
	}
	h.f(`<a href="/admin/pages/%s/preview/" target="_blank">Preview</a>`, esc(pg.Slug))
	h.f(`<a href="/admin/pages/%s/submissions/">Submissions</a>`, esc(pg.Slug))
	h.f(`<a href="/admin/pages/%s/?settings=1">Settings</a>`, esc(pg.Slug))
	if msg != "" {
		h.f(`<span style="margin-left:auto;color:#a7f3d0">%s</span>`, esc(msg))
	}
	h.s(`</div>`)
}

// palette lists the component catalog grouped by category. Every entry both
// posts an add intent and sets drag-transfer data carrying the raw type
// string, so a drop-based reorder surface can be added without touching the
// renderer.
func palette(slug, csrfToken string, h *htmlWriter) {
	for _, group := range catalog.ByCategory() {
		h.f(`<p class="pf-palette-group">%s</p>`, esc(string(group.Category)))
		for _, d := range group.Descriptors {
			h.f(`<form method="post" action="/admin/pages/%s/components/add/">`, esc(slug))
			h.f(`<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
			h.f(`<input type="hidden" name="type" value="%s">`, esc(string(d.Type)))
			h.f(`<button type="submit" class="pf-palette-item" draggable="true" ondragstart="event.dataTransfer.setData('text/plain','%s')" title="%s">%s</button>`,
				esc(string(d.Type)), esc(d.Description), esc(d.Label))
			h.s(`</form>`)
		}
	}
}

// canvas shows the live internal-mode preview with a toolbar per component.
func canvas(ctx context.Context, doc document.Document, selectedID, csrfToken string, h *htmlWriter) {
	if len(doc.Components) == 0 {
		h.s(`<div class="pf-image-placeholder">Empty page. Add components from the palette.</div>`)
		return
	}
	for i, c := range doc.Components {
		class := "pf-canvas-item"
		if c.ID == selectedID {
			class += " selected"
		}
		if !c.Visible {
			class += " hidden-component"
		}
		h.f(`<div class="%s">`, class)
		componentToolbar(doc.Page.Slug, c, i, len(doc.Components), csrfToken, h)
		if c.Visible {
			h.c(ctx, render.Component(c, render.ModeInternal, render.Options{Slug: doc.Page.Slug}))
		} else {
			h.s(`<div style="padding:16px;color:#6b7280">Hidden — not rendered on the page.</div>`)
		}
		h.s(`</div>`)
	}
}

func componentToolbar(slug string, c document.Component, i, total int, csrfToken string, h *htmlWriter) {
	label := string(c.Type)
	if d, ok := catalog.Lookup(c.Type); ok {
		label = d.Label
	}
	h.s(`<div class="pf-canvas-toolbar">`)
	h.f(`<a href="/admin/pages/%s/?component=%s">%s</a>`, esc(slug), esc(c.ID), esc(label))

	post := func(action, inner string, extra ...string) {
		h.f(`<form method="post" action="/admin/pages/%s/components/%s/%s/">`, esc(slug), esc(c.ID), action)
		h.f(`<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
		for j := 0; j+1 < len(extra); j += 2 {
			h.f(`<input type="hidden" name="%s" value="%s">`, esc(extra[j]), esc(extra[j+1]))
		}
		h.s(inner)
		h.s(`</form>`)
	}
	if i > 0 {
		post("move", `<button type="submit" title="Move up">&uarr;</button>`, "dir", "-1")
	}
	if i < total-1 {
		post("move", `<button type="submit" title="Move down">&darr;</button>`, "dir", "1")
	}
	if c.Visible {
		post("visible", `<button type="submit" title="Hide">Hide</button>`, "visible", "false")
	} else {
		post("visible", `<button type="submit" title="Show">Show</button>`, "visible", "true")
	}
	post("delete", `<button type="submit" title="Delete">&times;</button>`)
	h.s(`</div>`)
}

// propertyPanel renders the type-specific config form for the selected
// component, or the page settings when nothing is selected.
func propertyPanel(doc document.Document, selectedID, csrfToken string, h *htmlWriter) {
	c, _, ok := doc.Find(selectedID)
	if !ok {
		pageSettings(doc.Page, csrfToken, h)
		return
	}
	label := string(c.Type)
	if d, ok := catalog.Lookup(c.Type); ok {
		label = d.Label
	}
	h.f(`<h3 style="margin-top:0">%s</h3>`, esc(label))

	fields := editor.FieldsFor(c.Type)
	h.f(`<form method="post" action="/admin/pages/%s/components/%s/config/">`, esc(doc.Page.Slug), esc(c.ID))
	h.f(`<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
	for _, f := range fields {
		if f.Widget == editor.WidgetList {
			continue // list editors are separate forms below
		}
		propField(f, c.Config[f.Key], h)
	}
	h.s(`<button type="submit" class="pf-button">Save</button></form>`)

	if c.Type == document.TypeImage {
		h.f(`<form method="post" action="/admin/pages/%s/components/%s/image/" enctype="multipart/form-data" style="margin-top:12px">`,
			esc(doc.Page.Slug), esc(c.ID))
		h.f(`<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
		h.s(`<div class="pf-prop"><label>Upload image</label><input type="file" name="image" accept="image/*"></div>`)
		h.s(`<button type="submit">Upload</button></form>`)
	}

	for _, f := range fields {
		if f.Widget == editor.WidgetList {
			listEditor(doc.Page.Slug, c, f, csrfToken, h)
		}
	}
}

func propField(f editor.Field, value any, h *htmlWriter) {
	h.s(`<div class="pf-prop">`)
	defer h.s(`</div>`)
	switch f.Widget {
	case editor.WidgetCheckbox:
		checked := ""
		if b, ok := value.(bool); ok && b {
			checked = " checked"
		} else if s, ok := value.(string); ok && (s == "true" || s == "on") {
			checked = " checked"
		}
		h.f(`<label><input type="checkbox" name="%s"%s> %s</label>`, esc(f.Key), checked, esc(f.Label))
	case editor.WidgetTextarea, editor.WidgetHTML:
		h.f(`<label>%s</label><textarea name="%s" rows="4">%s</textarea>`, esc(f.Label), esc(f.Key), esc(valueString(value)))
	case editor.WidgetSelect:
		h.f(`<label>%s</label><select name="%s">`, esc(f.Label), esc(f.Key))
		current := valueString(value)
		for _, opt := range f.Options {
			selected := ""
			if opt == current {
				selected = " selected"
			}
			h.f(`<option value="%s"%s>%s</option>`, esc(opt), selected, esc(opt))
		}
		h.s(`</select>`)
	case editor.WidgetNumber:
		h.f(`<label>%s</label><input type="number" name="%s" value="%s">`, esc(f.Label), esc(f.Key), esc(valueString(value)))
	case editor.WidgetColor:
		h.f(`<label>%s</label><input type="text" name="%s" value="%s" placeholder="#000000">`, esc(f.Label), esc(f.Key), esc(valueString(value)))
	default:
		typ := "text"
		if f.Widget == editor.WidgetURL {
			typ = "url"
		}
		h.f(`<label>%s</label><input type="%s" name="%s" value="%s">`, esc(f.Label), typ, esc(f.Key), esc(valueString(value)))
	}
}

// listEditor renders the repeatable-list sub-editor (form fields, feature
// items): one update form per item plus move/remove controls and an add
// button.
func listEditor(slug string, c document.Component, f editor.Field, csrfToken string, h *htmlWriter) {
	h.f(`<h4>%s</h4>`, esc(f.Label))
	list := editor.ConfigList(c, f.Key)

	base := fmt.Sprintf("/admin/pages/%s/components/%s/list/%s", slug, c.ID, f.Key)
	for i, raw := range list {
		item, _ := raw.(map[string]any)
		h.s(`<div class="pf-list-item">`)
		h.f(`<form method="post" action="%s/update/">`, base)
		h.f(`<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
		h.f(`<input type="hidden" name="index" value="%d">`, i)
		for _, itemField := range f.ItemFields {
			propField(itemField, item[itemField.Key], h)
		}
		h.s(`<button type="submit">Save item</button></form>`)
		h.s(`<div class="pf-list-item-actions">`)
		listAction := func(action, label string, extra ...string) {
			h.f(`<form method="post" action="%s/%s/">`, base, action)
			h.f(`<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
			h.f(`<input type="hidden" name="index" value="%d">`, i)
			for j := 0; j+1 < len(extra); j += 2 {
				h.f(`<input type="hidden" name="%s" value="%s">`, esc(extra[j]), esc(extra[j+1]))
			}
			h.f(`<button type="submit">%s</button></form>`, label)
		}
		if i > 0 {
			listAction("move", "&uarr;", "dir", "-1")
		}
		if i < len(list)-1 {
			listAction("move", "&darr;", "dir", "1")
		}
		listAction("remove", "Remove")
		h.s(`</div></div>`)
	}
	h.f(`<form method="post" action="%s/add/">`, base)
	h.f(`<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
	h.s(`<button type="submit" class="pf-button">Add item</button></form>`)
}

// pageSettings edits the page record itself: slug, title, SEO metadata and
// publication status.
func pageSettings(pg document.Page, csrfToken string, h *htmlWriter) {
	h.s(`<h3 style="margin-top:0">Page settings</h3>`)
	h.f(`<form method="post" action="/admin/pages/%s/settings/">`, esc(pg.Slug))
	h.f(`<input type="hidden" name="_csrf" value="%s">`, esc(csrfToken))
	text := func(name, label, value string) {
		h.f(`<div class="pf-prop"><label>%s</label><input type="text" name="%s" value="%s"></div>`, esc(label), esc(name), esc(value))
	}
	text("title", "Title", pg.Title)
	text("slug", "Slug", pg.Slug)
	text("metaTitle", "Meta title", pg.MetaTitle)
	text("metaDescription", "Meta description", pg.MetaDescription)
	text("ogImageUrl", "OG image URL", pg.OGImageURL)
	h.s(`<div class="pf-prop"><label>Status</label><select name="status">`)
	for _, s := range []document.Status{document.StatusDraft, document.StatusPublished} {
		selected := ""
		if pg.Status == s {
			selected = " selected"
		}
		h.f(`<option value="%s"%s>%s</option>`, esc(string(s)), selected, esc(string(s)))
	}
	h.s(`</select></div>`)
	h.s(`<button type="submit" class="pf-button">Save settings</button></form>`)
	h.s(`<p style="color:#6b7280;font-size:.85rem">Select a component on the canvas to edit its properties.</p>`)
}

func valueString(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return fmt.Sprintf("%g", t)
	case int:
		return fmt.Sprintf("%d", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
