// Package catalog is the static component type registry: for every component
// kind it records display metadata for the builder palette and the default
// config a freshly added component starts from.
package catalog

import "github.com/eringen/pageforge/document"

// Category groups palette entries.
type Category string

const (
	CategoryLayout      Category = "layout"
	CategoryContent     Category = "content"
	CategoryMedia       Category = "media"
	CategoryInteractive Category = "interactive"
)

// Categories lists palette groups in display order.
var Categories = []Category{CategoryLayout, CategoryContent, CategoryMedia, CategoryInteractive}

// Descriptor is one catalog entry. Descriptors are static data, never
// persisted.
type Descriptor struct {
	Type        document.Type
	Label       string
	Icon        string
	Description string
	Category    Category
	// defaults returns a fresh map so callers can mutate their copy freely.
	defaults func() map[string]any
}

// DefaultConfig returns a new copy of the descriptor's default config.
func (d Descriptor) DefaultConfig() map[string]any {
	return d.defaults()
}

var entries = []Descriptor{
	{
		Type: document.TypeHero, Label: "Hero", Icon: "sparkles",
		Description: "Full-width header with headline and call to action",
		Category:    CategoryLayout,
		defaults: func() map[string]any {
			return map[string]any{
				"title":           "Welcome",
				"subtitle":        "",
				"alignment":       "center",
				"backgroundType":  "gradient",
				"backgroundValue": "gradient-indigo",
				"textColor":       "#ffffff",
				"showCta":         false,
				"ctaText":         "",
				"ctaUrl":          "#",
			}
		},
	},
	{
		Type: document.TypeText, Label: "Text", Icon: "align-left",
		Description: "Rich text block",
		Category:    CategoryContent,
		defaults: func() map[string]any {
			return map[string]any{"content": "<p>Write something…</p>", "alignment": "left", "maxWidth": "720px"}
		},
	},
	{
		Type: document.TypeImage, Label: "Image", Icon: "image",
		Description: "Single image with optional caption",
		Category:    CategoryMedia,
		defaults: func() map[string]any {
			return map[string]any{"src": "", "alt": "", "caption": "", "maxWidth": "100%", "alignment": "center", "rounded": false}
		},
	},
	{
		Type: document.TypeVideo, Label: "Video", Icon: "video",
		Description: "YouTube, Vimeo or direct video embed",
		Category:    CategoryMedia,
		defaults: func() map[string]any {
			return map[string]any{"url": "", "provider": "youtube", "title": "", "autoplay": false, "muted": false}
		},
	},
	{
		Type: document.TypeForm, Label: "Form", Icon: "clipboard",
		Description: "Visitor contact or signup form",
		Category:    CategoryInteractive,
		defaults: func() map[string]any {
			return map[string]any{
				"title":       "Get in touch",
				"description": "",
				"fields": []any{
					map[string]any{"id": "email", "type": "email", "label": "Email", "required": true, "placeholder": "you@example.com"},
				},
				"submitText":     "Submit",
				"successMessage": "Thanks! We received your submission.",
			}
		},
	},
	{
		Type: document.TypeCTA, Label: "Call to Action", Icon: "megaphone",
		Description: "Highlighted banner with a button",
		Category:    CategoryInteractive,
		defaults: func() map[string]any {
			return map[string]any{
				"title":           "Ready to get started?",
				"description":     "",
				"buttonText":      "Get started",
				"buttonUrl":       "#",
				"backgroundColor": "#111827",
			}
		},
	},
	{
		Type: document.TypeFeatures, Label: "Features", Icon: "grid",
		Description: "Grid of feature highlights",
		Category:    CategoryContent,
		defaults: func() map[string]any {
			return map[string]any{
				"title":   "",
				"columns": 3,
				"items": []any{
					map[string]any{"title": "Fast", "description": ""},
					map[string]any{"title": "Simple", "description": ""},
					map[string]any{"title": "Reliable", "description": ""},
				},
			}
		},
	},
	{
		Type: document.TypeTestimonial, Label: "Testimonial", Icon: "quote",
		Description: "Customer quote with star rating",
		Category:    CategoryContent,
		defaults: func() map[string]any {
			return map[string]any{"quote": "", "author": "", "role": "", "avatar": "", "rating": 5}
		},
	},
	{
		Type: document.TypeDivider, Label: "Divider", Icon: "minus",
		Description: "Horizontal rule",
		Category:    CategoryLayout,
		defaults: func() map[string]any {
			return map[string]any{"style": "solid", "color": "#e5e7eb", "thickness": 1, "width": "100%", "margin": "24px"}
		},
	},
	{
		Type: document.TypeSpacer, Label: "Spacer", Icon: "arrows-vertical",
		Description: "Vertical whitespace",
		Category:    CategoryLayout,
		defaults: func() map[string]any {
			return map[string]any{"height": 48}
		},
	},
}

var byType = func() map[document.Type]Descriptor {
	m := make(map[document.Type]Descriptor, len(entries))
	for _, d := range entries {
		m[d.Type] = d
	}
	return m
}()

// Lookup returns the descriptor for a type. Unknown types return ok=false;
// callers skip them rather than failing.
func Lookup(t document.Type) (Descriptor, bool) {
	d, ok := byType[t]
	return d, ok
}

// All returns every descriptor in palette order.
func All() []Descriptor {
	out := make([]Descriptor, len(entries))
	copy(out, entries)
	return out
}

// Group is a palette section: one category and its descriptors.
type Group struct {
	Category    Category
	Descriptors []Descriptor
}

// ByCategory returns descriptors grouped in Categories order. Empty
// categories are omitted.
func ByCategory() []Group {
	var groups []Group
	for _, cat := range Categories {
		var ds []Descriptor
		for _, d := range entries {
			if d.Category == cat {
				ds = append(ds, d)
			}
		}
		if len(ds) > 0 {
			groups = append(groups, Group{Category: cat, Descriptors: ds})
		}
	}
	return groups
}

// NewComponent creates a component of type t with the catalog's default
// config. Unknown types return ok=false and no component.
func NewComponent(t document.Type) (document.Component, bool) {
	d, ok := byType[t]
	if !ok {
		return document.Component{}, false
	}
	return document.NewComponent(t, d.DefaultConfig()), true
}
