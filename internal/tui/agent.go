package tui

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/CodingPenguin1/Splendor/internal/game"
	"github.com/CodingPenguin1/Splendor/internal/render"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// ErrQuit marks the empty action returned once the human left the match
var ErrQuit = errors.New("player quit")

// HumanAgent lets a person play a seat through a Bubble Tea program
type HumanAgent struct {
	model   *Model
	program *tea.Program
	logger  *log.Logger

	done   chan struct{}
	runErr error
	quit   atomic.Bool
}

// NewHumanAgent creates the agent; call Start before the match begins
func NewHumanAgent(renderer *render.Renderer, logger *log.Logger, opts ...tea.ProgramOption) *HumanAgent {
	model := NewModel(renderer, logger)
	return &HumanAgent{
		model:   model,
		program: tea.NewProgram(model, opts...),
		logger:  logger.WithPrefix("human"),
		done:    make(chan struct{}),
	}
}

// Start runs the program in the background
func (h *HumanAgent) Start() {
	go func() {
		defer close(h.done)
		if _, err := h.program.Run(); err != nil {
			h.runErr = fmt.Errorf("running tui: %w", err)
		}
	}()
}

// Close stops the program started by Start and waits for the terminal to
// be restored
func (h *HumanAgent) Close() error {
	h.program.Send(QuitMsg{})
	<-h.done
	return h.runErr
}

// Notify shows a line in the event log, e.g. another seat's move
func (h *HumanAgent) Notify(format string, args ...any) {
	select {
	case <-h.done:
	default:
		h.program.Send(LogMsg(fmt.Sprintf(format, args...)))
	}
}

// Quit reports whether the human asked to leave
func (h *HumanAgent) Quit() bool {
	return h.quit.Load()
}

// MakeDecision shows state and blocks until the human enters a legal
// action or quits. After quitting it returns an empty action, which the
// engine rejects.
func (h *HumanAgent) MakeDecision(state game.Snapshot) game.Action {
	if h.quit.Load() {
		return game.Action{Reasoning: ErrQuit.Error()}
	}
	h.program.Send(StateMsg{State: state})

	select {
	case cmd := <-h.model.Commands():
		if cmd.Kind == CommandQuit {
			h.logger.Info("Human left the match")
			h.quit.Store(true)
			return game.Action{Reasoning: ErrQuit.Error()}
		}
		h.logger.Debug("Human decision", "action", cmd.Action)
		return cmd.Action.Because("human")
	case <-h.done:
		h.quit.Store(true)
		return game.Action{Reasoning: ErrQuit.Error()}
	}
}
