package tui

import "github.com/charmbracelet/lipgloss"

// Gem tones shared by the prompt and event log
const (
	sapphire = lipgloss.Color("#1F4E9E")
	emerald  = lipgloss.Color("#2E8B57")
	ruby     = lipgloss.Color("#C0392B")
	onyx     = lipgloss.Color("#7F8C8D")
	pearl    = lipgloss.Color("#F4F1EA")
	gold     = lipgloss.Color("#D4AF37")
)

var (
	// HeaderStyle is the title bar: gold lettering on sapphire
	HeaderStyle = lipgloss.NewStyle().Foreground(gold).Background(sapphire).Bold(true).Padding(0, 1)

	LogStyle    = lipgloss.NewStyle().Foreground(pearl)
	PromptStyle = lipgloss.NewStyle().Foreground(emerald).Bold(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ruby).Bold(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(onyx).Italic(true)

	// MoveStyle highlights the human's own accepted moves
	MoveStyle = lipgloss.NewStyle().Foreground(gold)

	BoardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(gold).
			Padding(0, 1)
)
