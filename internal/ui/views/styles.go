package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusAll   lipgloss.Style
	StatusPart  lipgloss.Style
	Message     lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Cursor      lipgloss.Style
	Checked     lipgloss.Style
	Disabled    lipgloss.Style
	Cell        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusAll:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusPart: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Message:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		Help:       lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main:       lipgloss.NewStyle().Padding(1, 2),
		Scroll:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Cursor:     lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Checked:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Disabled:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Cell:       lipgloss.NewStyle().PaddingRight(2),
	}
}
