package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Drawer        lipgloss.Style
	DrawerLabel   lipgloss.Style
	SearchBox     lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	ShowMore      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(lipgloss.Color("252")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Drawer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Width(56).
			BorderForeground(lipgloss.Color("214")),
		DrawerLabel: lipgloss.NewStyle().Width(22),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Width(70).
			BorderForeground(lipgloss.Color("33")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			Width(60).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		ShowMore:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Italic(true),
	}
}

// GradeColor returns the color for a grade badge
func GradeColor(grade string) string {
	if grade == "" {
		return "241" // gray for unrated
	}
	switch grade[0] {
	case 'A':
		return "78" // green
	case 'B':
		return "33" // blue
	case 'C':
		return "214" // yellow
	default:
		return "203" // red for D and F
	}
}
