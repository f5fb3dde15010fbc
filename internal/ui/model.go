package ui

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectkit/internal/domain"
	"selectkit/internal/selection"
	"selectkit/internal/ui/logic"
	"selectkit/internal/ui/views"
)

// rows taken by padding, title, status, message and help
const chromeHeight = 10

// Options configure the picker
type Options struct {
	Title       string
	Items       []domain.Item
	Layout      domain.Layout
	Columns     int
	ShowSummary bool
	ShowHelp    bool
}

// Model is the bubbletea picker. It owns no selection state itself: every
// change goes through the controller and the view is redrawn from it.
type Model struct {
	ctrl     *selection.Controller
	items    []domain.Item
	ids      []string
	position map[string]int

	title   string
	layout  domain.Layout
	columns int

	cursor int
	offset int
	width  int
	height int

	keys          keyMap
	help          help.Model
	renderer      *views.Renderer
	helpOps       *HelpOps
	showSummary   bool
	showHelp      bool
	statusMessage string

	done      bool
	confirmed bool
}

// NewModel creates a new UI model
func NewModel(ctrl *selection.Controller, opts Options) *Model {
	layout := opts.Layout
	columns := opts.Columns
	if layout != domain.LayoutGrid {
		layout = domain.LayoutList
		columns = 1
	}

	m := &Model{
		ctrl:        ctrl,
		items:       opts.Items,
		ids:         make([]string, len(opts.Items)),
		position:    make(map[string]int, len(opts.Items)),
		title:       opts.Title,
		layout:      layout,
		columns:     max(columns, 1),
		keys:        newKeyMap().forMode(ctrl.Mode() == selection.Multi),
		help:        help.New(),
		renderer:    views.NewRenderer(),
		showSummary: opts.ShowSummary,
		showHelp:    opts.ShowHelp,
	}
	for i, it := range opts.Items {
		m.ids[i] = it.ID
		m.position[it.ID] = i
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewport()

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.statusMessage = fmt.Sprintf("help pager: %v", msg.err)
		}

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.done = true
		return tea.Quit

	case key.Matches(msg, k.Confirm):
		m.confirm()
		return tea.Quit

	case key.Matches(msg, k.Up):
		m.move(logic.Up)
	case key.Matches(msg, k.Down):
		m.move(logic.Down)
	case key.Matches(msg, k.Left):
		m.move(logic.Left)
	case key.Matches(msg, k.Right):
		m.move(logic.Right)
	case key.Matches(msg, k.PageUp):
		m.move(logic.PageUp)
	case key.Matches(msg, k.PageDown):
		m.move(logic.PageDown)
	case key.Matches(msg, k.Home):
		m.move(logic.Home)
	case key.Matches(msg, k.End):
		m.move(logic.End)

	case key.Matches(msg, k.Toggle):
		if id, ok := m.currentID(); ok {
			m.apply(selection.Toggle{ID: id})
		}
	case key.Matches(msg, k.RangeDown):
		m.extend(logic.Down)
	case key.Matches(msg, k.RangeUp):
		m.extend(logic.Up)
	case key.Matches(msg, k.SelectAll):
		m.apply(selection.SelectAll{})
	case key.Matches(msg, k.ToggleAll):
		m.apply(selection.ToggleAll(m.ctrl.Summary()))
	case key.Matches(msg, k.Clear):
		m.apply(selection.Clear{})

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updateViewport()
	case key.Matches(msg, k.HelpPager):
		return m.fetchHelpPager()
	}
	return nil
}

// confirm finishes the picker. In single mode an empty selection takes the
// item under the cursor.
func (m *Model) confirm() {
	if m.ctrl.Mode() == selection.Single && m.ctrl.Summary().IsEmpty {
		if id, ok := m.currentID(); ok {
			m.apply(selection.Select{IDs: []string{id}})
		}
	}
	m.confirmed = true
	m.done = true
}

func (m *Model) apply(req selection.Request) {
	out, ok := m.ctrl.Apply(req)
	if !ok {
		m.statusMessage = m.describeNoop(req)
		return
	}
	m.statusMessage = describeOutcome(out)
}

func (m *Model) extend(dir logic.Direction) {
	m.move(dir)
	if id, ok := m.currentID(); ok {
		out, applied := m.ctrl.SelectRange(m.ids, id)
		if applied {
			m.statusMessage = describeOutcome(out)
		}
	}
}

func (m *Model) move(dir logic.Direction) {
	nav := logic.NewNavigator(len(m.items), m.columns, m.visibleRows())
	m.cursor = nav.Move(m.cursor, dir)
	m.updateViewport()
}

func (m *Model) updateViewport() {
	nav := logic.NewNavigator(len(m.items), m.columns, m.visibleRows())
	m.offset = nav.Viewport(m.cursor, m.offset, m.visibleRows())
}

// visibleRows returns 0 until the terminal size is known, meaning no limit
func (m *Model) visibleRows() int {
	if m.height == 0 {
		return 0
	}
	rows := m.height - chromeHeight
	if m.help.ShowAll {
		rows -= 8
	}
	return max(rows, 1)
}

func (m *Model) currentID() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return "", false
	}
	return m.items[m.cursor].ID, true
}

func (m *Model) describeNoop(req selection.Request) string {
	switch r := req.(type) {
	case selection.Toggle:
		return fmt.Sprintf("%s is disabled", m.label(r.ID))
	case selection.SelectAll:
		return "select all needs multi mode"
	default:
		return "nothing to select"
	}
}

func describeOutcome(out selection.Outcome) string {
	switch out.Action {
	case selection.ActionSelectAll:
		return fmt.Sprintf("selected all %d", out.Selection.Len())
	case selection.ActionClear:
		return "cleared"
	case selection.ActionDeselect:
		return fmt.Sprintf("deselected %s", strings.Join(out.TargetIDs, ", "))
	default:
		return fmt.Sprintf("selected %s", strings.Join(out.TargetIDs, ", "))
	}
}

func (m *Model) label(id string) string {
	if i, ok := m.position[id]; ok {
		return m.items[i].DisplayLabel()
	}
	return id
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager() tea.Cmd {
	if m.helpOps == nil {
		m.statusMessage = "help pager unavailable"
		return nil
	}
	content := renderHelpContent(m.keys, m.ctrl.Mode())
	ops := m.helpOps
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

// View renders the picker
func (m *Model) View() string {
	if m.done {
		return ""
	}
	return m.renderer.Render(views.ViewState{
		Title:          m.title,
		Width:          m.width,
		Items:          m.items,
		Mode:           m.ctrl.Mode(),
		Layout:         m.layout,
		Columns:        m.columns,
		Cursor:         m.cursor,
		Selected:       m.ctrl.Selection(),
		Summary:        m.ctrl.Summary(),
		ViewportOffset: m.offset,
		ViewportHeight: m.visibleRows(),
		StatusMessage:  m.statusMessage,
		ShowSummary:    m.showSummary,
		ShowHelp:       m.showHelp,
		HelpModel:      m.help,
		KeyMap:         m.keys,
	})
}

// Result returns the selection in display order and whether the user
// confirmed it. Ids not in the catalog come last, sorted.
func (m *Model) Result() ([]string, bool) {
	sel := m.ctrl.Selection()
	ids := sel.Sorted()
	sort.SliceStable(ids, func(i, j int) bool {
		pi, iok := m.position[ids[i]]
		pj, jok := m.position[ids[j]]
		switch {
		case iok && jok:
			return pi < pj
		case iok != jok:
			return iok
		default:
			return false
		}
	})
	return ids, m.confirmed
}
