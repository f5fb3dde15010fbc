package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectkit/internal/domain"
	"selectkit/internal/selection"
)

// ItemRenderer handles rendering of a single item
type ItemRenderer struct {
	styles *Styles
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles) *ItemRenderer {
	return &ItemRenderer{styles: styles}
}

// Indicator returns the selection marker for an item
func Indicator(mode selection.Mode, checked bool) string {
	if mode == selection.Single {
		if checked {
			return "(•)"
		}
		return "( )"
	}
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// RenderItem renders one item. Descriptions are only shown in list layout.
func (r *ItemRenderer) RenderItem(item domain.Item, mode selection.Mode, isCursor, isChecked, withDescription bool) string {
	var parts []string

	if isCursor {
		parts = append(parts, ">")
	} else {
		parts = append(parts, " ")
	}

	marker := Indicator(mode, isChecked)
	label := item.DisplayLabel()
	switch {
	case item.Disabled:
		marker = r.styles.Dim.Render(marker)
		label = r.styles.Disabled.Render(label)
	case isChecked:
		marker = r.styles.Checked.Render(marker)
	}
	if isCursor {
		label = r.styles.Cursor.Render(label)
	}
	parts = append(parts, marker, label)

	if withDescription && item.Description != "" {
		parts = append(parts, r.styles.Description.Render(item.Description))
	}

	return strings.Join(parts, " ")
}

// CellWidth returns the width that fits every item in a grid cell
func CellWidth(items []domain.Item) int {
	w := 0
	for _, it := range items {
		w = max(w, lipgloss.Width(it.DisplayLabel()))
	}
	// cursor, marker and separators
	return w + 6
}
