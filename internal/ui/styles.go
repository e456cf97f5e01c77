package ui

import "github.com/charmbracelet/lipgloss"

// Brand palette.
var (
	Primary     = lipgloss.Color("#E94560")
	Foreground  = lipgloss.Color("#EAEAEA")
	Muted       = lipgloss.Color("#8A8F98")
	Accent      = lipgloss.Color("#F5C518")
	Destructive = lipgloss.Color("#E53935")
	Success     = lipgloss.Color("#8BC34A")
)

// Styles holds the lipgloss styles shared by every screen.
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Price     lipgloss.Style
	Discount  lipgloss.Style
	Heart     lipgloss.Style
	Error     lipgloss.Style
	Toast     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default palette applied to each role.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(Foreground).MarginBottom(1),
		Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(Muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(Primary).Underline(true),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Muted:     lipgloss.NewStyle().Foreground(Muted),
		Price:     lipgloss.NewStyle().Bold(true).Foreground(Foreground),
		Discount:  lipgloss.NewStyle().Foreground(Success),
		Heart:     lipgloss.NewStyle().Foreground(Destructive),
		Error:     lipgloss.NewStyle().Foreground(Destructive),
		Toast: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent),
		Help: lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
	}
}
