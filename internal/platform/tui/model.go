package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfield/internal/core"
)

// FrameMsg carries a fully rendered frame to the program.
type FrameMsg string

// Model is the Bubble Tea model that displays presented frames and turns
// terminal input into backend events.
type Model struct {
	title  string
	keys   KeyMap
	events chan<- core.Event
	frame  string
}

func newModel(title string, keys KeyMap, events chan<- core.Event) Model {
	return Model{
		title:  title,
		keys:   keys,
		events: events,
	}
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.emit(core.QuitEvent())
		} else {
			m.emit(core.Event{Type: core.EventKey, Key: msg.String()})
		}

	case tea.WindowSizeMsg:
		m.emit(core.Event{Type: core.EventResize, W: msg.Width, H: msg.Height})

	case FrameMsg:
		m.frame = string(msg)
	}

	return m, nil
}

// emit queues ev without blocking; events are dropped when the queue is full
// so the program can always process its own quit message.
func (m Model) emit(ev core.Event) {
	select {
	case m.events <- ev:
	default:
	}
}

// View returns the last presented frame.
func (m Model) View() string {
	return m.frame
}
