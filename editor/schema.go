package editor

import "github.com/eringen/pageforge/document"

// Widget selects the input control the builder renders for a config key.
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetTextarea Widget = "textarea"
	WidgetHTML     Widget = "html" // textarea holding raw operator HTML
	WidgetSelect   Widget = "select"
	WidgetCheckbox Widget = "checkbox"
	WidgetNumber   Widget = "number"
	WidgetURL      Widget = "url"
	WidgetColor    Widget = "color"
	WidgetList     Widget = "list" // repeatable sub-editor (fields, items)
)

// Field describes one editable config key of a component type.
type Field struct {
	Key     string
	Label   string
	Widget  Widget
	Options []string // for WidgetSelect
	// ItemFields describes the per-item form of a WidgetList field.
	ItemFields []Field
}

var schemas = map[document.Type][]Field{
	document.TypeHero: {
		{Key: "title", Label: "Title", Widget: WidgetText},
		{Key: "subtitle", Label: "Subtitle", Widget: WidgetTextarea},
		{Key: "alignment", Label: "Alignment", Widget: WidgetSelect, Options: []string{"left", "center", "right"}},
		{Key: "backgroundType", Label: "Background type", Widget: WidgetSelect, Options: []string{"gradient", "color", "image"}},
		{Key: "backgroundValue", Label: "Background value", Widget: WidgetText},
		{Key: "textColor", Label: "Text color", Widget: WidgetColor},
		{Key: "showCta", Label: "Show button", Widget: WidgetCheckbox},
		{Key: "ctaText", Label: "Button text", Widget: WidgetText},
		{Key: "ctaUrl", Label: "Button URL", Widget: WidgetURL},
	},
	document.TypeText: {
		{Key: "content", Label: "Content (HTML)", Widget: WidgetHTML},
		{Key: "alignment", Label: "Alignment", Widget: WidgetSelect, Options: []string{"left", "center", "right"}},
		{Key: "maxWidth", Label: "Max width", Widget: WidgetText},
	},
	document.TypeImage: {
		{Key: "src", Label: "Image URL", Widget: WidgetURL},
		{Key: "alt", Label: "Alt text", Widget: WidgetText},
		{Key: "caption", Label: "Caption", Widget: WidgetText},
		{Key: "maxWidth", Label: "Max width", Widget: WidgetText},
		{Key: "alignment", Label: "Alignment", Widget: WidgetSelect, Options: []string{"left", "center", "right"}},
		{Key: "rounded", Label: "Rounded corners", Widget: WidgetCheckbox},
	},
	document.TypeVideo: {
		{Key: "url", Label: "Video URL", Widget: WidgetURL},
		{Key: "provider", Label: "Provider", Widget: WidgetSelect, Options: []string{"youtube", "vimeo", "direct"}},
		{Key: "title", Label: "Title", Widget: WidgetText},
		{Key: "autoplay", Label: "Autoplay", Widget: WidgetCheckbox},
		{Key: "muted", Label: "Muted", Widget: WidgetCheckbox},
	},
	document.TypeForm: {
		{Key: "title", Label: "Title", Widget: WidgetText},
		{Key: "description", Label: "Description", Widget: WidgetTextarea},
		{Key: "fields", Label: "Fields", Widget: WidgetList, ItemFields: []Field{
			{Key: "label", Label: "Label", Widget: WidgetText},
			{Key: "type", Label: "Type", Widget: WidgetSelect, Options: []string{"text", "email", "tel", "number", "textarea", "select", "checkbox"}},
			{Key: "placeholder", Label: "Placeholder", Widget: WidgetText},
			{Key: "required", Label: "Required", Widget: WidgetCheckbox},
		}},
		{Key: "submitText", Label: "Submit button text", Widget: WidgetText},
		{Key: "successMessage", Label: "Success message", Widget: WidgetTextarea},
	},
	document.TypeCTA: {
		{Key: "title", Label: "Title", Widget: WidgetText},
		{Key: "description", Label: "Description", Widget: WidgetTextarea},
		{Key: "buttonText", Label: "Button text", Widget: WidgetText},
		{Key: "buttonUrl", Label: "Button URL", Widget: WidgetURL},
		{Key: "backgroundColor", Label: "Background color", Widget: WidgetColor},
	},
	document.TypeFeatures: {
		{Key: "title", Label: "Title", Widget: WidgetText},
		{Key: "columns", Label: "Columns", Widget: WidgetSelect, Options: []string{"2", "3", "4"}},
		{Key: "items", Label: "Items", Widget: WidgetList, ItemFields: []Field{
			{Key: "title", Label: "Title", Widget: WidgetText},
			{Key: "description", Label: "Description", Widget: WidgetTextarea},
		}},
	},
	document.TypeTestimonial: {
		{Key: "quote", Label: "Quote", Widget: WidgetTextarea},
		{Key: "author", Label: "Author", Widget: WidgetText},
		{Key: "role", Label: "Role", Widget: WidgetText},
		{Key: "avatar", Label: "Avatar URL", Widget: WidgetURL},
		{Key: "rating", Label: "Rating (1-5)", Widget: WidgetNumber},
	},
	document.TypeDivider: {
		{Key: "style", Label: "Style", Widget: WidgetSelect, Options: []string{"solid", "dashed", "dotted"}},
		{Key: "color", Label: "Color", Widget: WidgetColor},
		{Key: "thickness", Label: "Thickness (px)", Widget: WidgetNumber},
		{Key: "width", Label: "Width", Widget: WidgetText},
		{Key: "margin", Label: "Margin", Widget: WidgetText},
	},
	document.TypeSpacer: {
		{Key: "height", Label: "Height (px)", Widget: WidgetNumber},
	},
}

// FieldsFor returns the editable fields for a component type, in display
// order. Unknown types have no editable fields.
func FieldsFor(t document.Type) []Field {
	return schemas[t]
}
