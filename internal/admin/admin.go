// Package admin describes the back-office screens: list columns, edit form
// layout, inline editors, image previews and bulk action messages.
package admin

import (
	"fmt"
	"html"
)

// Preview widths in pixels.
const (
	PosterPreviewWidth = 150
	ShotPreviewWidth   = 150
	ActorPreviewWidth  = 80
)

// Inline editor styles.
const (
	InlineTabular = "tabular"
	InlineStacked = "stacked"
)

// WidgetRichText marks a field edited with the rich-text editor.
const WidgetRichText = "richtext"

type Fieldset struct {
	Title     string   `json:"title,omitempty"`
	Fields    []string `json:"fields"`
	Collapsed bool     `json:"collapsed"`
}

type Inline struct {
	Name           string           `json:"name"`
	Style          string           `json:"style"`
	Extra          int              `json:"extra"`
	Fields         []string         `json:"fields"`
	ReadOnlyFields []string         `json:"readonly_fields"`
	Rows           []map[string]any `json:"rows"`
}

// Screen is an edit form: the layout plus, when editing, the record values.
type Screen struct {
	Fieldsets []Fieldset        `json:"fieldsets"`
	Widgets   map[string]string `json:"widgets,omitempty"`
	Preview   string            `json:"preview,omitempty"`
	Values    any               `json:"values,omitempty"`
	Inlines   []Inline          `json:"inlines,omitempty"`
}

// List is one page of a list screen.
type List struct {
	Columns []string `json:"columns"`
	Rows    any      `json:"rows"`
}

// ImagePreview renders an <img> tag for src, or "" when there is no image.
func ImagePreview(src string, width int) string {
	if src == "" {
		return ""
	}
	return fmt.Sprintf(`<img src="%s" width="%d">`, html.EscapeString(src), width)
}

// UpdatedMessage reports the outcome of a bulk action.
func UpdatedMessage(n int64) string {
	if n == 1 {
		return "1 row was updated"
	}
	return fmt.Sprintf("%d rows were updated", n)
}
