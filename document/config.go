package document

import "strconv"

// Type identifies a component kind. The set is closed: the renderer and
// editor dispatch exhaustively over these constants, and anything else is
// skipped as a forward-compatible no-op.
type Type string

const (
	TypeHero        Type = "hero"
	TypeText        Type = "text"
	TypeImage       Type = "image"
	TypeVideo       Type = "video"
	TypeForm        Type = "form"
	TypeCTA         Type = "cta"
	TypeFeatures    Type = "features"
	TypeTestimonial Type = "testimonial"
	TypeDivider     Type = "divider"
	TypeSpacer      Type = "spacer"
)

// Types lists every known component type in palette order.
var Types = []Type{
	TypeHero, TypeText, TypeImage, TypeVideo, TypeForm,
	TypeCTA, TypeFeatures, TypeTestimonial, TypeDivider, TypeSpacer,
}

// Per-variant config structs. These exist only at the render boundary:
// a stored config map is merged into the typed struct with every missing
// key falling back to its documented default, and the stored map is never
// back-filled with inferred values.

type HeroConfig struct {
	Title          string
	Subtitle       string
	Alignment      string // left, center, right
	BackgroundType string // gradient, color, image
	BackgroundValue string
	TextColor      string
	ShowCTA        bool
	CTAText        string
	CTAURL         string
}

type TextConfig struct {
	Content   string // operator-authored HTML, rendered verbatim
	Alignment string
	MaxWidth  string
}

type ImageConfig struct {
	Src       string
	Alt       string
	Caption   string
	MaxWidth  string
	Alignment string
	Rounded   bool
}

type VideoConfig struct {
	URL      string
	Provider string // youtube, vimeo, direct
	Title    string
	Autoplay bool
	Muted    bool
}

// FormField is one input definition inside a form component's config.
type FormField struct {
	ID          string
	Type        string
	Label       string
	Required    bool
	Placeholder string
	Options     []string
}

type FormConfig struct {
	Title          string
	Description    string
	Fields         []FormField
	SubmitText     string
	SuccessMessage string
}

type CTAConfig struct {
	Title           string
	Description     string
	ButtonText      string
	ButtonURL       string
	BackgroundColor string
}

// FeatureItem is one entry of a features grid.
type FeatureItem struct {
	Title       string
	Description string
}

type FeaturesConfig struct {
	Title   string
	Columns int // 2, 3 or 4
	Items   []FeatureItem
}

type TestimonialConfig struct {
	Quote  string
	Author string
	Role   string
	Avatar string
	Rating int // direct integer 1-5, not an average
}

type DividerConfig struct {
	Style     string // solid, dashed, dotted
	Color     string
	Thickness int // px
	Width     string
	Margin    string
}

type SpacerConfig struct {
	Height int // px
}

// HeroFrom merges a stored config map with hero defaults.
func HeroFrom(m map[string]any) HeroConfig {
	return HeroConfig{
		Title:           str(m, "title", "Welcome"),
		Subtitle:        str(m, "subtitle", ""),
		Alignment:       str(m, "alignment", "center"),
		BackgroundType:  str(m, "backgroundType", "gradient"),
		BackgroundValue: str(m, "backgroundValue", "gradient-indigo"),
		TextColor:       str(m, "textColor", "#ffffff"),
		ShowCTA:         boolean(m, "showCta", false),
		CTAText:         str(m, "ctaText", ""),
		CTAURL:          str(m, "ctaUrl", "#"),
	}
}

// TextFrom merges a stored config map with text defaults.
func TextFrom(m map[string]any) TextConfig {
	return TextConfig{
		Content:   str(m, "content", ""),
		Alignment: str(m, "alignment", "left"),
		MaxWidth:  str(m, "maxWidth", "720px"),
	}
}

// ImageFrom merges a stored config map with image defaults.
func ImageFrom(m map[string]any) ImageConfig {
	return ImageConfig{
		Src:       str(m, "src", ""),
		Alt:       str(m, "alt", ""),
		Caption:   str(m, "caption", ""),
		MaxWidth:  str(m, "maxWidth", "100%"),
		Alignment: str(m, "alignment", "center"),
		Rounded:   boolean(m, "rounded", false),
	}
}

// VideoFrom merges a stored config map with video defaults.
func VideoFrom(m map[string]any) VideoConfig {
	return VideoConfig{
		URL:      str(m, "url", ""),
		Provider: str(m, "provider", "youtube"),
		Title:    str(m, "title", ""),
		Autoplay: boolean(m, "autoplay", false),
		Muted:    boolean(m, "muted", false),
	}
}

// FormFrom merges a stored config map with form defaults.
func FormFrom(m map[string]any) FormConfig {
	return FormConfig{
		Title:          str(m, "title", "Get in touch"),
		Description:    str(m, "description", ""),
		Fields:         formFields(m["fields"]),
		SubmitText:     str(m, "submitText", "Submit"),
		SuccessMessage: str(m, "successMessage", "Thanks! We received your submission."),
	}
}

// CTAFrom merges a stored config map with cta defaults.
func CTAFrom(m map[string]any) CTAConfig {
	return CTAConfig{
		Title:           str(m, "title", "Ready to get started?"),
		Description:     str(m, "description", ""),
		ButtonText:      str(m, "buttonText", "Get started"),
		ButtonURL:       str(m, "buttonUrl", "#"),
		BackgroundColor: str(m, "backgroundColor", "#111827"),
	}
}

// FeaturesFrom merges a stored config map with features defaults. Column
// counts outside {2,3,4} clamp to 3.
func FeaturesFrom(m map[string]any) FeaturesConfig {
	cols := integer(m, "columns", 3)
	if cols < 2 || cols > 4 {
		cols = 3
	}
	return FeaturesConfig{
		Title:   str(m, "title", ""),
		Columns: cols,
		Items:   featureItems(m["items"]),
	}
}

// TestimonialFrom merges a stored config map with testimonial defaults.
// Rating clamps into 1-5.
func TestimonialFrom(m map[string]any) TestimonialConfig {
	rating := integer(m, "rating", 5)
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return TestimonialConfig{
		Quote:  str(m, "quote", ""),
		Author: str(m, "author", ""),
		Role:   str(m, "role", ""),
		Avatar: str(m, "avatar", ""),
		Rating: rating,
	}
}

// DividerFrom merges a stored config map with divider defaults.
func DividerFrom(m map[string]any) DividerConfig {
	return DividerConfig{
		Style:     str(m, "style", "solid"),
		Color:     str(m, "color", "#e5e7eb"),
		Thickness: integer(m, "thickness", 1),
		Width:     str(m, "width", "100%"),
		Margin:    str(m, "margin", "24px"),
	}
}

// SpacerFrom merges a stored config map with spacer defaults.
func SpacerFrom(m map[string]any) SpacerConfig {
	return SpacerConfig{
		Height: integer(m, "height", 48),
	}
}

// formFields decodes the fields array of a form config. Entries that are not
// objects are skipped rather than failing the whole form.
func formFields(v any) []FormField {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var fields []FormField
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		fields = append(fields, FormField{
			ID:          str(m, "id", ""),
			Type:        str(m, "type", "text"),
			Label:       str(m, "label", ""),
			Required:    boolean(m, "required", false),
			Placeholder: str(m, "placeholder", ""),
			Options:     strSlice(m["options"]),
		})
	}
	return fields
}

func featureItems(v any) []FeatureItem {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []FeatureItem
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, FeatureItem{
			Title:       str(m, "title", ""),
			Description: str(m, "description", ""),
		})
	}
	return out
}

// Value coercion helpers. Configs round-trip through JSON (numbers arrive as
// float64) and through HTML form posts (everything arrives as string), so
// each accessor accepts all representations it can meet.

func str(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

func boolean(m map[string]any, key string, def bool) bool {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "on" || t == "1"
	default:
		return def
	}
}

func integer(m map[string]any, key string, def int) int {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case int:
		return t
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n
		}
		return def
	default:
		return def
	}
}

func strSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
