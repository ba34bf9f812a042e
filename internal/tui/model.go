package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/caseflow/caseflow/internal/engine"
	"github.com/caseflow/caseflow/internal/events"
	"github.com/caseflow/caseflow/internal/model"
	"github.com/caseflow/caseflow/internal/tui/components"
)

// EventMsg wraps one lifecycle event from the run's subscription.
type EventMsg struct {
	Event events.Event
}

// StreamClosedMsg indicates the subscription channel has been closed.
type StreamClosedMsg struct{}

// Model contains the Bubbletea state for watching one run.
type Model struct {
	suiteName string
	sub       *events.Subscription
	spinner   spinner.Model

	cases  map[string]components.CaseEntry
	order  []string
	counts engine.Counts

	status    engine.RunStatus
	paused    bool
	finished  bool
	cancelled bool
	runError  string
}

// NewModel constructs a watcher model fed by the given subscription.
func NewModel(suiteName string, sub *events.Subscription) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		suiteName: suiteName,
		sub:       sub,
		spinner:   s,
		cases:     make(map[string]components.CaseEntry),
		status:    engine.RunNotStarted,
	}
}

// Init starts the spinner and the event pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.sub))
}

// Finished reports whether a terminal event has been observed.
func (m Model) Finished() bool {
	return m.finished
}

// Counts returns the latest counter snapshot seen on the stream.
func (m Model) Counts() engine.Counts {
	return m.counts
}

// waitForEvent blocks on the subscription and converts the next event into
// a Bubbletea message.
func waitForEvent(sub *events.Subscription) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-sub.Events()
		if !ok {
			return StreamClosedMsg{}
		}
		return EventMsg{Event: ev}
	}
}

func (m *Model) ensureCase(id, name string) {
	if id == "" {
		return
	}
	if _, exists := m.cases[id]; !exists {
		m.cases[id] = components.CaseEntry{ID: id, Name: name, Status: model.TestNotRun}
		m.order = append(m.order, id)
	}
}

func (m *Model) completedCases() int {
	return m.counts.Passed + m.counts.Failed + m.counts.Skipped
}
