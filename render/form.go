package render

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/pageforge/document"
)

// form renders a visitor form. Submission behavior depends on mode: public
// forms post to the submit endpoint and re-render with success or a
// retryable error; internal (preview) forms flip a local flag in the browser
// and never make a network call. Once an instance is submitted it shows the
// success message permanently — there is no un-submit path.
func form(id string, cfg document.FormConfig, mode Mode, opts Options) templ.Component {
	state := opts.FormStates[id]
	return component(func(b *strings.Builder) {
		b.WriteString(`<section class="pf-form">`)
		defer b.WriteString(`</section>`)

		if state.Submitted {
			fmt.Fprintf(b, `<p class="pf-form-success">%s</p>`, esc(cfg.SuccessMessage))
			return
		}

		if cfg.Title != "" {
			fmt.Fprintf(b, `<h2>%s</h2>`, esc(cfg.Title))
		}
		if cfg.Description != "" {
			fmt.Fprintf(b, `<p>%s</p>`, esc(cfg.Description))
		}
		if state.Failed {
			b.WriteString(`<p class="pf-form-error">Something went wrong. Please try again.</p>`)
		}

		if mode == ModePublic {
			// The onsubmit guard disables the button while the request is in
			// flight so a slow server cannot collect duplicate submissions.
			fmt.Fprintf(b, `<form method="post" action="/p/%s/submit/%s/" onsubmit="this.querySelector('[type=submit]').disabled=true">`,
				esc(opts.Slug), esc(id))
			fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s">`, esc(opts.CSRFToken))
		} else {
			// Preview: show the success message locally, post nothing.
			b.WriteString(`<p class="pf-form-success" hidden>` + esc(cfg.SuccessMessage) + `</p>`)
			b.WriteString(`<form onsubmit="event.preventDefault();this.previousElementSibling.hidden=false;this.hidden=true">`)
		}

		for _, f := range cfg.Fields {
			writeField(b, f, state.Values[f.ID])
		}
		fmt.Fprintf(b, `<button type="submit" class="pf-button">%s</button>`, esc(cfg.SubmitText))
		b.WriteString(`</form>`)
	})
}

// writeField emits the widget for one field definition. textarea, select and
// checkbox get bespoke controls; every other field type becomes a typed text
// input.
func writeField(b *strings.Builder, f document.FormField, value string) {
	required := ""
	if f.Required {
		required = " required"
	}
	b.WriteString(`<div class="pf-field">`)
	defer b.WriteString(`</div>`)

	switch f.Type {
	case "checkbox":
		checked := ""
		if value != "" {
			checked = " checked"
		}
		fmt.Fprintf(b, `<label><input type="checkbox" name="%s"%s%s> %s</label>`,
			esc(f.ID), required, checked, esc(f.Label))
	case "textarea":
		writeLabel(b, f)
		fmt.Fprintf(b, `<textarea name="%s" placeholder="%s"%s>%s</textarea>`,
			esc(f.ID), esc(f.Placeholder), required, esc(value))
	case "select":
		writeLabel(b, f)
		fmt.Fprintf(b, `<select name="%s"%s>`, esc(f.ID), required)
		for _, opt := range f.Options {
			selected := ""
			if opt == value {
				selected = " selected"
			}
			fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, esc(opt), selected, esc(opt))
		}
		b.WriteString(`</select>`)
	default:
		writeLabel(b, f)
		fmt.Fprintf(b, `<input type="%s" name="%s" placeholder="%s" value="%s"%s>`,
			esc(f.Type), esc(f.ID), esc(f.Placeholder), esc(value), required)
	}
}

func writeLabel(b *strings.Builder, f document.FormField) {
	if f.Label != "" {
		fmt.Fprintf(b, `<label for="%s">%s</label>`, esc(f.ID), esc(f.Label))
	}
}
