package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectkit/internal/domain"
	"selectkit/internal/selection"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlA = tea.KeyMsg{Type: tea.KeyCtrlA}
)

func fruit() []domain.Item {
	return []domain.Item{
		{ID: "apple", Label: "Apple"},
		{ID: "banana", Label: "Banana", Disabled: true},
		{ID: "cherry", Label: "Cherry"},
		{ID: "date", Label: "Date"},
	}
}

func newTestModel(t *testing.T, mode selection.Mode, opts Options, initial ...string) (*Model, *[]selection.Outcome) {
	t.Helper()
	if opts.Items == nil {
		opts.Items = fruit()
	}
	cons := selection.Constraints{Disabled: selection.Set{}}
	for _, it := range opts.Items {
		cons.Available = append(cons.Available, it.ID)
		if it.Disabled {
			cons.Disabled[it.ID] = struct{}{}
		}
	}
	cons.TotalCount = len(cons.Available)

	ctrl := selection.NewController(mode, cons, initial...)
	var outcomes []selection.Outcome
	ctrl.SetListener(func(o selection.Outcome) { outcomes = append(outcomes, o) })
	return NewModel(ctrl, opts), &outcomes
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestToggleAndConfirm(t *testing.T) {
	m, outcomes := newTestModel(t, selection.Multi, Options{})

	send(m, space, runes("j"), runes("j"), space)
	cmd := send(m, enter)
	require.NotNil(t, cmd)

	ids, ok := m.Result()
	assert.True(t, ok)
	assert.Equal(t, []string{"apple", "cherry"}, ids)
	require.Len(t, *outcomes, 2)
	assert.Equal(t, selection.ActionSelect, (*outcomes)[1].Action)
	assert.Empty(t, m.View(), "view clears after exit")
}

func TestToggleDisabledDoesNotNotify(t *testing.T) {
	m, outcomes := newTestModel(t, selection.Multi, Options{})

	send(m, runes("j"), space)
	assert.Empty(t, *outcomes)
	assert.Equal(t, "Banana is disabled", m.statusMessage)
}

func TestSelectAllClearAndToggleAll(t *testing.T) {
	m, outcomes := newTestModel(t, selection.Multi, Options{})

	send(m, runes("a"))
	assert.Equal(t, []string{"apple", "cherry", "date"}, m.ctrl.Selection().Sorted())
	assert.True(t, m.ctrl.Summary().IsAllSelected)

	send(m, ctrlA)
	assert.True(t, m.ctrl.Summary().IsEmpty, "toggle all clears when everything is selected")

	send(m, ctrlA)
	assert.True(t, m.ctrl.Summary().IsAllSelected)

	send(m, esc)
	assert.True(t, m.ctrl.Summary().IsEmpty)

	actions := make([]selection.ActionKind, len(*outcomes))
	for i, o := range *outcomes {
		actions[i] = o.Action
	}
	assert.Equal(t, []selection.ActionKind{
		selection.ActionSelectAll, selection.ActionClear, selection.ActionSelectAll, selection.ActionClear,
	}, actions)
}

func TestSingleModeReplacesAndBlocksSelectAll(t *testing.T) {
	m, outcomes := newTestModel(t, selection.Single, Options{})

	send(m, space, runes("G"), space)
	assert.Equal(t, []string{"date"}, m.ctrl.Selection().Sorted())

	send(m, runes("a"), ctrlA)
	assert.Equal(t, []string{"date"}, m.ctrl.Selection().Sorted())
	assert.Len(t, *outcomes, 2, "select all keys are disabled in single mode")
}

func TestSingleModeConfirmTakesCursor(t *testing.T) {
	m, _ := newTestModel(t, selection.Single, Options{})

	send(m, runes("j"), runes("j"), enter)
	ids, ok := m.Result()
	assert.True(t, ok)
	assert.Equal(t, []string{"cherry"}, ids)
}

func TestQuitIsNotConfirmed(t *testing.T) {
	m, _ := newTestModel(t, selection.Multi, Options{}, "date")

	cmd := send(m, runes("q"))
	require.NotNil(t, cmd)

	ids, ok := m.Result()
	assert.False(t, ok)
	assert.Equal(t, []string{"date"}, ids)
}

func TestRangeSelection(t *testing.T) {
	m, _ := newTestModel(t, selection.Multi, Options{})

	send(m, space, runes("J"), runes("J"), runes("J"))
	assert.Equal(t, []string{"apple", "cherry", "date"}, m.ctrl.Selection().Sorted())
}

func TestGridNavigation(t *testing.T) {
	m, _ := newTestModel(t, selection.Multi, Options{Layout: domain.LayoutGrid, Columns: 2})

	send(m, runes("l"), runes("j"))
	assert.Equal(t, 3, m.cursor)

	send(m, runes("h"), space)
	assert.Equal(t, []string{"cherry"}, m.ctrl.Selection().Sorted())
}

func TestListIgnoresColumns(t *testing.T) {
	m, _ := newTestModel(t, selection.Multi, Options{Layout: domain.LayoutList, Columns: 4})
	assert.Equal(t, 1, m.columns)

	send(m, runes("j"))
	assert.Equal(t, 1, m.cursor)
}

func TestViewportFollowsCursor(t *testing.T) {
	items := make([]domain.Item, 30)
	for i := range items {
		items[i] = domain.Item{ID: string(rune('A' + i))}
	}
	m, _ := newTestModel(t, selection.Multi, Options{Items: items})

	send(m, tea.WindowSizeMsg{Width: 80, Height: 15})
	require.Equal(t, 5, m.visibleRows())

	send(m, runes("G"))
	assert.Equal(t, 29, m.cursor)
	assert.Equal(t, 25, m.offset)

	send(m, runes("g"))
	assert.Equal(t, 0, m.offset)
}

func TestViewShowsSummary(t *testing.T) {
	m, _ := newTestModel(t, selection.Multi, Options{Title: "Fruit", ShowSummary: true, ShowHelp: true}, "apple")

	view := m.View()
	assert.Contains(t, view, "Fruit")
	assert.Contains(t, view, "1/3 selected")
	assert.Contains(t, view, "toggle")
}

func TestHelpPagerWithoutProgram(t *testing.T) {
	m, _ := newTestModel(t, selection.Multi, Options{})

	cmd := send(m, runes("H"))
	assert.Nil(t, cmd)
	assert.Equal(t, "help pager unavailable", m.statusMessage)
}

func TestResultOrdersByCatalog(t *testing.T) {
	m, _ := newTestModel(t, selection.Multi, Options{}, "date", "zzz", "apple", "aaa")

	ids, _ := m.Result()
	assert.Equal(t, []string{"apple", "date", "aaa", "zzz"}, ids)
}

func TestRenderHelpContent(t *testing.T) {
	content := renderHelpContent(newKeyMap().forMode(false), selection.Single)
	assert.Contains(t, content, "Mode: single")
	assert.Contains(t, content, "toggle")
	assert.NotContains(t, content, "select all")

	content = renderHelpContent(newKeyMap().forMode(true), selection.Multi)
	assert.Contains(t, content, "select all")
}
