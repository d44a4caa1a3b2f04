// Package editor implements the property-editor semantics of the page
// builder: shallow config patches that never touch sibling keys, the
// visibility toggle, and the generic repeatable-list operations shared by
// form fields and feature items.
package editor

import (
	"fmt"

	"github.com/eringen/pageforge/document"
)

// Patch returns a new component whose config is the shallow merge of the
// existing config and patch. Keys absent from patch — including unknown
// extra keys already on the component — are preserved byte for byte, and
// the input component is never mutated.
func Patch(c document.Component, patch map[string]any) document.Component {
	merged := make(map[string]any, len(c.Config)+len(patch))
	for k, v := range c.Config {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	c.Config = merged
	return c
}

// SetVisible returns a new component with visibility flipped to v. Config is
// left untouched either way.
func SetVisible(c document.Component, v bool) document.Component {
	c.Visible = v
	return c
}

// ListAdd appends item to a repeatable list and returns the new list.
func ListAdd(list []any, item map[string]any) []any {
	out := make([]any, len(list), len(list)+1)
	copy(out, list)
	return append(out, item)
}

// ListUpdate shallow-merges patch into the item at index i. Out-of-range
// indexes and non-object items are no-ops.
func ListUpdate(list []any, i int, patch map[string]any) []any {
	if i < 0 || i >= len(list) {
		return list
	}
	item, ok := list[i].(map[string]any)
	if !ok {
		return list
	}
	merged := make(map[string]any, len(item)+len(patch))
	for k, v := range item {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	out := make([]any, len(list))
	copy(out, list)
	out[i] = merged
	return out
}

// ListRemove drops the item at index i. Out-of-range indexes are no-ops.
func ListRemove(list []any, i int) []any {
	if i < 0 || i >= len(list) {
		return list
	}
	out := make([]any, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// ListMove swaps the item at index i with its neighbor in direction dir
// (-1 up, +1 down). Out-of-range moves, including moving the last item
// down or the first item up, are no-ops.
func ListMove(list []any, i, dir int) []any {
	j := i + dir
	if (dir != -1 && dir != 1) || i < 0 || i >= len(list) || j < 0 || j >= len(list) {
		return list
	}
	out := make([]any, len(list))
	copy(out, list)
	out[i], out[j] = out[j], out[i]
	return out
}

// NewFieldID synthesizes a form-field id that does not collide with any id
// already present in the list. Ids are derived from a counter over the
// current length, bumped past collisions.
func NewFieldID(list []any) string {
	taken := make(map[string]bool, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			if id, ok := m["id"].(string); ok {
				taken[id] = true
			}
		}
	}
	for n := len(list) + 1; ; n++ {
		id := fmt.Sprintf("field-%d", n)
		if !taken[id] {
			return id
		}
	}
}

// ConfigList reads a repeatable list out of a config map, tolerating a
// missing or malformed value.
func ConfigList(c document.Component, key string) []any {
	list, _ := c.Config[key].([]any)
	return list
}
