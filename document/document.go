// Package document defines the page composition document model: a Page
// record plus its ordered component sequence. The model is the single piece
// of state shared between the builder (writer) and the renderer (reader);
// every mutation returns a new Document value so the renderer always works
// on a consistent snapshot.
package document

import (
	"github.com/google/uuid"
)

// Status is the publication state of a page. Only published pages are
// servable through the public path; everything else is surfaced as a 404 by
// the HTTP layer before the renderer ever sees it.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Page is a single landing page and its SEO metadata.
type Page struct {
	ID              string
	Slug            string // unique, public URL key
	Title           string
	MetaTitle       string
	MetaDescription string
	OGImageURL      string
	Status          Status
}

// Component is one typed, independently configurable building block of a
// page. Config is a free-form key/value map whose valid shape is determined
// by Type; readers merge it against per-variant defaults and never assume a
// key is present.
type Component struct {
	ID       string
	Type     Type
	Position int // derived from slice index, rewritten on every save
	Visible  bool
	Config   map[string]any
}

// NewComponent creates a component of the given type with a fresh identity
// and the supplied default config. IDs are never reused.
func NewComponent(t Type, config map[string]any) Component {
	return Component{
		ID:      uuid.NewString(),
		Type:    t,
		Visible: true,
		Config:  cloneConfig(config),
	}
}

// Document is a page together with its ordered component sequence.
type Document struct {
	Page       Page
	Components []Component
}

// Append returns a new Document with c added at the end of the sequence.
func (d Document) Append(c Component) Document {
	out := d.clone()
	out.Components = append(out.Components, c)
	out.renumber()
	return out
}

// Remove returns a new Document without the component with the given id.
// Unknown ids are a no-op.
func (d Document) Remove(id string) Document {
	out := d.clone()
	kept := out.Components[:0]
	for _, c := range out.Components {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	out.Components = kept
	out.renumber()
	return out
}

// Move returns a new Document with the component at index i swapped with its
// neighbor in direction dir (-1 up, +1 down). Out-of-range moves return the
// document unchanged.
func (d Document) Move(i, dir int) Document {
	j := i + dir
	if (dir != -1 && dir != 1) || i < 0 || i >= len(d.Components) || j < 0 || j >= len(d.Components) {
		return d
	}
	out := d.clone()
	out.Components[i], out.Components[j] = out.Components[j], out.Components[i]
	out.renumber()
	return out
}

// Replace returns a new Document with the component matching c.ID swapped
// for c. Unknown ids are a no-op.
func (d Document) Replace(c Component) Document {
	out := d.clone()
	for i := range out.Components {
		if out.Components[i].ID == c.ID {
			out.Components[i] = c
			break
		}
	}
	return out
}

// Find returns the component with the given id and its index, or ok=false.
func (d Document) Find(id string) (Component, int, bool) {
	for i, c := range d.Components {
		if c.ID == id {
			return c, i, true
		}
	}
	return Component{}, 0, false
}

func (d Document) clone() Document {
	out := d
	out.Components = make([]Component, len(d.Components))
	copy(out.Components, d.Components)
	return out
}

// renumber keeps Position in step with slice order. Array position is the
// source of truth; the stored column only exists so reads come back sorted.
func (d *Document) renumber() {
	for i := range d.Components {
		d.Components[i].Position = i
	}
}

func cloneConfig(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// PageMetadata is the document-head metadata for a rendered page, extracted
// as plain data so the view shell can apply it. Keeping this out of the
// renderer means rendering stays free of document-level side effects.
type PageMetadata struct {
	Title       string
	Description string
	OGImageURL  string
	URL         string // canonical + og:url
}

// Metadata derives head metadata for a page served under baseURL. MetaTitle
// falls back to the page title.
func (p Page) Metadata(baseURL string) PageMetadata {
	title := p.MetaTitle
	if title == "" {
		title = p.Title
	}
	return PageMetadata{
		Title:       title,
		Description: p.MetaDescription,
		OGImageURL:  p.OGImageURL,
		URL:         baseURL,
	}
}
