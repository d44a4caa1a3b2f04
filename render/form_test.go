package render

import (
	"strings"
	"testing"

	"github.com/eringen/pageforge/document"
)

func formComponent() document.Component {
	return document.Component{
		ID: "form-1", Type: document.TypeForm, Visible: true,
		Config: map[string]any{
			"title": "Contact",
			"fields": []any{
				map[string]any{"id": "email", "type": "email", "label": "Email", "required": true},
				map[string]any{"id": "message", "type": "textarea", "label": "Message"},
				map[string]any{"id": "topic", "type": "select", "options": []any{"Sales", "Support"}},
				map[string]any{"id": "subscribe", "type": "checkbox", "label": "Subscribe"},
			},
			"submitText":     "Send",
			"successMessage": "Got it!",
		},
	}
}

func TestPublicFormPostsToSubmitEndpoint(t *testing.T) {
	html := mustHTML(t, formComponent(), ModePublic, Options{Slug: "launch", CSRFToken: "tok"})
	if !strings.Contains(html, `action="/p/launch/submit/form-1/"`) {
		t.Errorf("submit action missing: %s", html)
	}
	if !strings.Contains(html, `name="_csrf" value="tok"`) {
		t.Errorf("csrf token missing: %s", html)
	}
	// In-flight guard disables the button during submission.
	if !strings.Contains(html, "disabled=true") {
		t.Errorf("submit guard missing: %s", html)
	}
}

func TestInternalFormNeverPosts(t *testing.T) {
	html := mustHTML(t, formComponent(), ModeInternal, Options{Slug: "launch"})
	if strings.Contains(html, "action=") {
		t.Errorf("preview form must not have a submit action: %s", html)
	}
	if !strings.Contains(html, "event.preventDefault()") {
		t.Errorf("preview form must simulate submission locally: %s", html)
	}
}

func TestFormWidgetSelection(t *testing.T) {
	html := mustHTML(t, formComponent(), ModePublic, Options{Slug: "launch"})
	if !strings.Contains(html, `<input type="email" name="email"`) {
		t.Errorf("typed input missing: %s", html)
	}
	if !strings.Contains(html, `<textarea name="message"`) {
		t.Errorf("textarea missing: %s", html)
	}
	if !strings.Contains(html, `<select name="topic"`) || !strings.Contains(html, `<option value="Support"`) {
		t.Errorf("select missing: %s", html)
	}
	if !strings.Contains(html, `<input type="checkbox" name="subscribe"`) {
		t.Errorf("checkbox missing: %s", html)
	}
	if !strings.Contains(html, ` required`) {
		t.Errorf("required attribute missing: %s", html)
	}
}

func TestSubmittedFormShowsOnlySuccessMessage(t *testing.T) {
	opts := Options{Slug: "launch", FormStates: map[string]FormState{"form-1": {Submitted: true}}}
	html := mustHTML(t, formComponent(), ModePublic, opts)
	if !strings.Contains(html, "Got it!") {
		t.Errorf("success message missing: %s", html)
	}
	if strings.Contains(html, "<form") {
		t.Errorf("form still rendered after submission: %s", html)
	}
}

func TestFailedFormIsRetryableAndPreservesValues(t *testing.T) {
	opts := Options{
		Slug: "launch",
		FormStates: map[string]FormState{
			"form-1": {Failed: true, Values: map[string]string{"email": "a@b.c", "message": "hello", "topic": "Support"}},
		},
	}
	html := mustHTML(t, formComponent(), ModePublic, opts)
	if !strings.Contains(html, "Please try again") {
		t.Errorf("retry message missing: %s", html)
	}
	if !strings.Contains(html, "<form") {
		t.Error("form must remain re-submittable after failure")
	}
	if !strings.Contains(html, `value="a@b.c"`) {
		t.Errorf("input value not preserved: %s", html)
	}
	if !strings.Contains(html, ">hello</textarea>") {
		t.Errorf("textarea value not preserved: %s", html)
	}
	if !strings.Contains(html, `value="Support" selected`) {
		t.Errorf("select value not preserved: %s", html)
	}
}
