package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pipeboard/pipeboard/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Stage category colors
	StageOpen   lipgloss.Color
	StageActive lipgloss.Color
	StageWon    lipgloss.Color
	StageLost   lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	StageOpen:   lipgloss.Color("#74B9FF"), // Light blue
	StageActive: lipgloss.Color("#FDCB6E"), // Yellow
	StageWon:    lipgloss.Color("#00B894"), // Green
	StageLost:   lipgloss.Color("#636E72"), // Gray
}

// CategoryColor returns the accent color for a stage category.
func CategoryColor(c domain.StageCategory) lipgloss.Color {
	switch c {
	case domain.CategoryActive:
		return Colors.StageActive
	case domain.CategoryWon:
		return Colors.StageWon
	case domain.CategoryLost:
		return Colors.StageLost
	case domain.CategoryOpen:
		return Colors.StageOpen
	default:
		return Colors.StageOpen
	}
}

// Styles holds the styles for the board TUI.
type Styles struct {
	Header        lipgloss.Style
	HeaderText    lipgloss.Style
	ColumnTitle   lipgloss.Style
	ColumnTotals  lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardGrabbed   lipgloss.Style
	CardPending   lipgloss.Style
	CardMeta      lipgloss.Style
	Empty         lipgloss.Style
	Error         lipgloss.Style
	Status        lipgloss.Style
	Footer        lipgloss.Style
	FooterKey     lipgloss.Style
	Dialog        lipgloss.Style
	DialogTitle   lipgloss.Style
	DialogText    lipgloss.Style
	DialogMuted   lipgloss.Style
	Loading       lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		HeaderText: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal),
		ColumnTotals: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Card: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		CardSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),
		CardGrabbed: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Colors.Primary),
		CardPending: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),
		CardMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(Colors.Success),
		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		DialogText: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		DialogMuted: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Loading: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Italic(true),
	}
}
