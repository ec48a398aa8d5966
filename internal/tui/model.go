package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/CodingPenguin1/Splendor/internal/gem"
	"github.com/CodingPenguin1/Splendor/internal/render"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const maxLogLines = 12

// Model is the Bubble Tea model for a human seat. It shows the board, a
// short event log and a command prompt.
type Model struct {
	renderer *render.Renderer
	logger   *log.Logger

	input textinput.Model

	// State
	state    *game.Snapshot // set while waiting for the human's decision
	board    string
	gameLog  []string
	commands chan Command
	quitting bool

	width  int
	height int
}

// StateMsg asks the human to decide for the given state
type StateMsg struct {
	State game.Snapshot
}

// LogMsg appends a line to the event log
type LogMsg string

// QuitMsg stops the program
type QuitMsg struct{}

// NewModel creates a model drawing boards with renderer
func NewModel(renderer *render.Renderer, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "take red blue green, buy 12, reserve 40, help"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60
	ti.PromptStyle = PromptStyle
	ti.TextStyle = LogStyle
	ti.Prompt = "> "

	return &Model{
		renderer: renderer,
		logger:   logger.WithPrefix("tui"),
		input:    ti,
		commands: make(chan Command, 1),
	}
}

// Commands delivers the human's accepted commands
func (m *Model) Commands() <-chan Command {
	return m.commands
}

// logLines returns the event log lines, oldest first
func (m *Model) logLines() []string {
	return slices.Clone(m.gameLog)
}

// Waiting reports whether the model holds a state awaiting a decision
func (m *Model) Waiting() bool {
	return m.state != nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StateMsg:
		s := msg.State
		m.state = &s
		m.board = m.renderer.Snapshot(s)
		m.addLog(fmt.Sprintf("Your turn, round %d", s.Round+1))
		return m, nil

	case LogMsg:
		m.addLog(string(msg))
		return m, nil

	case QuitMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, m.quit()
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			return m, m.submit(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles one entered line. Illegal actions are rejected here so
// the engine only ever sees moves the human can make.
func (m *Model) submit(line string) tea.Cmd {
	cmd, err := ParseCommand(line)
	if err != nil {
		m.addLog(ErrorStyle.Render(err.Error()))
		return nil
	}

	switch cmd.Kind {
	case CommandHelp:
		for _, l := range strings.Split(HelpText, "\n") {
			m.addLog(InfoStyle.Render(l))
		}
	case CommandBoard:
		if m.state != nil {
			m.board = m.renderer.Snapshot(*m.state)
		}
	case CommandQuit:
		return m.quit()
	case CommandAction:
		if m.state == nil {
			m.addLog(ErrorStyle.Render("Not your turn"))
			return nil
		}
		if !Legal(*m.state, cmd.Action) {
			m.addLog(ErrorStyle.Render(fmt.Sprintf("Not a legal move: %s", cmd.Action)))
			return nil
		}
		m.state = nil
		m.addLog(MoveStyle.Render(fmt.Sprintf("You: %s", cmd.Action)))
		m.commands <- cmd
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	select {
	case m.commands <- Command{Kind: CommandQuit}:
	default:
	}
	return tea.Quit
}

func (m *Model) addLog(line string) {
	m.gameLog = append(m.gameLog, line)
	if len(m.gameLog) > maxLogLines {
		m.gameLog = m.gameLog[len(m.gameLog)-maxLogLines:]
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(" Splendor "))
	sb.WriteString("\n")
	if m.board != "" {
		sb.WriteString(BoardStyle.Render(strings.TrimRight(m.board, "\n")))
		sb.WriteString("\n")
	}
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, m.gameLog...))
	sb.WriteString("\n\n")
	if !m.Waiting() {
		sb.WriteString(InfoStyle.Render("Waiting for the other players..."))
		sb.WriteString("\n")
	}
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	return sb.String()
}

// Legal reports whether a matches one of the legal actions in s. Token
// takes match regardless of color order.
func Legal(s game.Snapshot, a game.Action) bool {
	want := sortedColors(a.Colors)
	for _, v := range game.ValidActions(s) {
		if v.Type != a.Type || v.Card != a.Card {
			continue
		}
		if slices.Equal(sortedColors(v.Colors), want) {
			return true
		}
	}
	return false
}

func sortedColors(colors []gem.Color) []gem.Color {
	out := slices.Clone(colors)
	slices.Sort(out)
	return out
}
