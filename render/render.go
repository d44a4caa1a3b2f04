// Package render turns an ordered component sequence into HTML. Rendering is
// pure: components are read-only input, output goes to the writer handed in
// by templ, and nothing else is touched. The same code path serves the
// builder preview (ModeInternal) and the public page (ModePublic); the only
// difference is how form components behave.
package render

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/pageforge/document"
)

// Mode selects the rendering context.
type Mode int

const (
	// ModeInternal is the authenticated builder preview. Form submissions
	// are simulated locally and never leave the browser.
	ModeInternal Mode = iota
	// ModePublic is the unauthenticated published page. Form submissions
	// post to the submit endpoint.
	ModePublic
)

// FormState carries the submission state of one form component instance
// between a submit request and the re-render. Values holds the visitor's
// input so a failed submit never loses what they typed.
type FormState struct {
	Submitted bool
	Failed    bool
	Values    map[string]string
}

// Options is the per-render context shared by all components of a page.
type Options struct {
	// Slug of the page being rendered; used to build form submit actions.
	Slug string
	// CSRFToken is embedded in public forms.
	CSRFToken string
	// FormStates maps component id to submission state.
	FormStates map[string]FormState
}

// Page renders every visible component in sequence order.
func Page(comps []document.Component, mode Mode, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range comps {
			if err := Component(c, mode, opts).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Component dispatches one component to its variant renderer. Hidden
// components render nothing. Types outside the closed set also render
// nothing: a newer server can ship components an older renderer has never
// heard of without breaking the page.
func Component(c document.Component, mode Mode, opts Options) templ.Component {
	if !c.Visible {
		return templ.NopComponent
	}
	switch c.Type {
	case document.TypeHero:
		return hero(document.HeroFrom(c.Config))
	case document.TypeText:
		return text(document.TextFrom(c.Config))
	case document.TypeImage:
		return imageBlock(document.ImageFrom(c.Config))
	case document.TypeVideo:
		return video(document.VideoFrom(c.Config))
	case document.TypeForm:
		return form(c.ID, document.FormFrom(c.Config), mode, opts)
	case document.TypeCTA:
		return cta(document.CTAFrom(c.Config))
	case document.TypeFeatures:
		return features(document.FeaturesFrom(c.Config))
	case document.TypeTestimonial:
		return testimonial(document.TestimonialFrom(c.Config))
	case document.TypeDivider:
		return divider(document.DividerFrom(c.Config))
	case document.TypeSpacer:
		return spacer(document.SpacerFrom(c.Config))
	default:
		return templ.NopComponent
	}
}

// component builds HTML into a buffer and flushes it in one write. Variant
// renderers stay simple string assembly without per-write error plumbing.
func component(build func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// esc escapes text content and attribute values.
func esc(s string) string {
	return templ.EscapeString(s)
}

// ToHTML renders a component to a string, mainly for tests and previews.
func ToHTML(c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
