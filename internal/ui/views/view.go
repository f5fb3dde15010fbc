package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"selectkit/internal/domain"
	"selectkit/internal/selection"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Title          string
	Width          int
	Items          []domain.Item
	Mode           selection.Mode
	Layout         domain.Layout
	Columns        int
	Cursor         int
	Selected       selection.Set
	Summary        selection.Summary
	ViewportOffset int // first visible row
	ViewportHeight int // visible rows
	StatusMessage  string
	ShowSummary    bool
	ShowHelp       bool
	HelpModel      help.Model
	KeyMap         help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	itemRender *ItemRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		itemRender: NewItemRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := state.Title
	if title == "" {
		title = "selectkit"
	}
	content.WriteString(r.styles.Title.Render(title))
	content.WriteString("\n")

	if len(state.Items) == 0 {
		content.WriteString(r.styles.Dim.Render("No items."))
		content.WriteString("\n")
	} else if state.Layout == domain.LayoutGrid {
		content.WriteString(r.renderGrid(state))
	} else {
		content.WriteString(r.renderList(state))
	}

	if state.ShowSummary {
		content.WriteString(r.RenderStatus(state.Summary, state.Mode))
		content.WriteString("\n")
	}
	if state.StatusMessage != "" {
		content.WriteString(r.styles.Message.Render(state.StatusMessage))
		content.WriteString("\n")
	}
	if state.ShowHelp && state.KeyMap != nil {
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}

	main := r.styles.Main
	if state.Width > 0 {
		main = main.MaxWidth(state.Width)
	}
	return main.Render(content.String())
}

func (r *Renderer) renderList(state ViewState) string {
	var b strings.Builder
	start, end := visibleRange(len(state.Items), 1, state.ViewportOffset, state.ViewportHeight)

	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		it := state.Items[i]
		b.WriteString(r.itemRender.RenderItem(it, state.Mode, i == state.Cursor, state.Selected.Has(it.ID), true))
		b.WriteString("\n")
	}
	if end < len(state.Items) {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", len(state.Items)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderGrid(state ViewState) string {
	cols := max(state.Columns, 1)
	cell := r.styles.Cell.Width(CellWidth(state.Items))
	start, end := visibleRange(len(state.Items), cols, state.ViewportOffset, state.ViewportHeight)

	var rows []string
	for rowStart := start; rowStart < end; rowStart += cols {
		var cells []string
		for i := rowStart; i < min(rowStart+cols, end); i++ {
			it := state.Items[i]
			cells = append(cells, cell.Render(
				r.itemRender.RenderItem(it, state.Mode, i == state.Cursor, state.Selected.Has(it.ID), false)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n")
	if end < len(state.Items) {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", len(state.Items)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStatus renders the selection summary line
func (r *Renderer) RenderStatus(s selection.Summary, mode selection.Mode) string {
	text := fmt.Sprintf("%d/%d selected", s.EnabledSelectedCount, s.EnabledCount)
	if s.SelectedCount != s.EnabledSelectedCount {
		text += fmt.Sprintf(" (+%d disabled)", s.SelectedCount-s.EnabledSelectedCount)
	}
	if s.EnabledCount != s.TotalCount {
		text += fmt.Sprintf(" · %d items", s.TotalCount)
	}
	text += " · " + mode.String()

	style := r.styles.Status
	switch {
	case s.IsAllSelected:
		text += " · all"
		style = style.Foreground(r.styles.StatusAll.GetForeground())
	case s.IsPartiallySelected:
		style = style.Foreground(r.styles.StatusPart.GetForeground())
	}
	return style.Render(text)
}

// visibleRange converts a row viewport to an item index range
func visibleRange(total, cols, offset, height int) (int, int) {
	if height <= 0 {
		return 0, total
	}
	start := min(offset*cols, total)
	end := min(start+height*cols, total)
	return start, end
}
