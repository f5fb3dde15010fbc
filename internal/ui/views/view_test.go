package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"selectkit/internal/domain"
	"selectkit/internal/selection"
)

func testItems() []domain.Item {
	return []domain.Item{
		{ID: "a", Label: "Alpha", Description: "first"},
		{ID: "b", Label: "Bravo", Disabled: true},
		{ID: "c"},
	}
}

func TestIndicator(t *testing.T) {
	assert.Equal(t, "[x]", Indicator(selection.Multi, true))
	assert.Equal(t, "[ ]", Indicator(selection.Multi, false))
	assert.Equal(t, "(•)", Indicator(selection.Single, true))
	assert.Equal(t, "( )", Indicator(selection.Single, false))
}

func TestRenderList(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{
		Title:       "Pick",
		Items:       testItems(),
		Mode:        selection.Multi,
		Layout:      domain.LayoutList,
		Cursor:      2,
		Selected:    selection.NewSet("a"),
		Summary:     selection.Summary{SelectedCount: 1, TotalCount: 3, EnabledCount: 2, EnabledSelectedCount: 1, IsPartiallySelected: true},
		ShowSummary: true,
	})

	assert.Contains(t, out, "Pick")
	assert.Contains(t, out, "[x] Alpha")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "Bravo")
	assert.Contains(t, out, "> [ ] c", "cursor row falls back to the id")
	assert.Contains(t, out, "1/2 selected")
	assert.Contains(t, out, "3 items")
}

func TestRenderListScrolls(t *testing.T) {
	items := make([]domain.Item, 10)
	for i := range items {
		items[i] = domain.Item{ID: string(rune('a' + i))}
	}

	out := NewRenderer().Render(ViewState{
		Items:          items,
		Layout:         domain.LayoutList,
		ViewportOffset: 2,
		ViewportHeight: 3,
		Selected:       selection.Set{},
	})

	assert.Contains(t, out, "↑ 2 more")
	assert.Contains(t, out, "↓ 5 more")
	assert.Contains(t, out, "[ ] c")
	assert.Contains(t, out, "[ ] e")
	assert.NotContains(t, out, "[ ] a")
	assert.NotContains(t, out, "[ ] f")
}

func TestRenderGridOmitsDescriptions(t *testing.T) {
	out := NewRenderer().Render(ViewState{
		Items:    testItems(),
		Mode:     selection.Single,
		Layout:   domain.LayoutGrid,
		Columns:  2,
		Selected: selection.NewSet("c"),
	})

	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "(•) c")
	assert.NotContains(t, out, "first")
	assert.Equal(t, 1, strings.Count(out, "Alpha"))
}

func TestRenderEmpty(t *testing.T) {
	out := NewRenderer().Render(ViewState{})
	assert.Contains(t, out, "selectkit")
	assert.Contains(t, out, "No items.")
}

func TestRenderStatusAll(t *testing.T) {
	r := NewRenderer()
	out := r.RenderStatus(selection.Summary{SelectedCount: 3, TotalCount: 2, EnabledCount: 2, EnabledSelectedCount: 2, IsAllSelected: true}, selection.Multi)
	assert.Contains(t, out, "2/2 selected (+1 disabled)")
	assert.Contains(t, out, "all")
}
