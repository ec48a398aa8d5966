package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/CodingPenguin1/Splendor/internal/gem"
	"github.com/CodingPenguin1/Splendor/internal/render"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, game.Snapshot) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	defs, err := card.Default()
	require.NoError(t, err)
	opts := game.DefaultOptions()
	opts.Seed = 21
	opts.Logger = logger
	g, err := game.New([]game.Seat{{Name: "you"}, {Name: "bot"}}, defs, opts)
	require.NoError(t, err)
	return NewModel(render.New(io.Discard, true), logger), g.Snapshot()
}

func enter(m *Model, line string) tea.Cmd {
	m.input.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func lastLog(m *Model) string {
	lines := m.logLines()
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func TestModelAcceptsLegalAction(t *testing.T) {
	m, s := newTestModel(t)
	m.Update(StateMsg{State: s})
	require.True(t, m.Waiting())
	assert.Contains(t, m.View(), "Tier 3")

	enter(m, "take green red blue")

	select {
	case cmd := <-m.Commands():
		assert.Equal(t, CommandAction, cmd.Kind)
		assert.Equal(t, game.Take(gem.Green, gem.Red, gem.Blue), cmd.Action)
	default:
		t.Fatal("expected a command")
	}
	assert.False(t, m.Waiting())
	assert.Contains(t, lastLog(m), "You: take green,red,blue")
	assert.Empty(t, m.input.Value())
}

func TestModelRejectsIllegalAction(t *testing.T) {
	m, s := newTestModel(t)
	m.Update(StateMsg{State: s})

	enter(m, "take red")
	assert.Contains(t, lastLog(m), "Not a legal move: take red")

	enter(m, "buy 9999")
	assert.Contains(t, lastLog(m), "Not a legal move: buy #9999")

	enter(m, "dance")
	assert.Contains(t, lastLog(m), "unknown command")

	assert.True(t, m.Waiting(), "still waiting for a legal move")
	assert.Empty(t, m.Commands())
}

func TestModelOutOfTurn(t *testing.T) {
	m, _ := newTestModel(t)

	enter(m, "take red blue green")
	assert.Contains(t, lastLog(m), "Not your turn")
	assert.Empty(t, m.Commands())
}

func TestModelHelpAndLogLimit(t *testing.T) {
	m, _ := newTestModel(t)

	enter(m, "help")
	assert.Contains(t, strings.Join(m.logLines(), "\n"), "reserve <id>")

	for i := 0; i < 2*maxLogLines; i++ {
		m.Update(LogMsg("bot: take red blue green"))
	}
	assert.Len(t, m.logLines(), maxLogLines)
}

func TestModelQuit(t *testing.T) {
	for _, quit := range []func(m *Model) tea.Cmd{
		func(m *Model) tea.Cmd { return enter(m, "quit") },
		func(m *Model) tea.Cmd {
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
			return cmd
		},
	} {
		m, s := newTestModel(t)
		m.Update(StateMsg{State: s})

		cmd := quit(m)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Equal(t, Command{Kind: CommandQuit}, <-m.Commands())
		assert.Empty(t, m.View())
	}
}

func TestLegal(t *testing.T) {
	_, s := newTestModel(t)

	assert.True(t, Legal(s, game.Take(gem.White, gem.Black, gem.Blue)), "order does not matter")
	assert.True(t, Legal(s, game.Take(gem.Red, gem.Red)))
	assert.True(t, Legal(s, game.Reserve(s.Tiers[2].Cards[0].ID)))
	assert.False(t, Legal(s, game.Take(gem.Red, gem.Red, gem.Blue)))
	assert.False(t, Legal(s, game.Buy(s.Tiers[0].Cards[0].ID)), "no tokens yet")
}

func TestViewShowsWhoseTurn(t *testing.T) {
	m, s := newTestModel(t)
	assert.Contains(t, m.View(), "Waiting for the other players")

	m.Update(StateMsg{State: s})
	assert.NotContains(t, m.View(), "Waiting for the other players")
}
