package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/caseflow/caseflow/internal/engine"
	"github.com/caseflow/caseflow/internal/events"
	"github.com/caseflow/caseflow/internal/model"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case EventMsg:
		m.applyEvent(msg.Event)
		if m.finished {
			return m, tea.Quit
		}
		return m, waitForEvent(m.sub)
	case StreamClosedMsg:
		m.finished = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) applyEvent(ev events.Event) {
	switch ev.Kind {
	case events.KindRunStarted:
		m.status = engine.RunRunning
	case events.KindRunPaused:
		m.paused = true
	case events.KindRunResumed:
		m.paused = false
	case events.KindCaseStarted:
		if p, ok := ev.Payload.(engine.CasePayload); ok {
			m.ensureCase(p.CaseID, p.CaseName)
			entry := m.cases[p.CaseID]
			entry.Running = true
			m.cases[p.CaseID] = entry
		}
	case events.KindCaseCompleted:
		if p, ok := ev.Payload.(engine.CasePayload); ok {
			m.ensureCase(p.CaseID, p.CaseName)
			entry := m.cases[p.CaseID]
			entry.Running = false
			entry.Status = p.Status
			entry.Duration = p.Duration
			entry.Error = p.Error
			m.cases[p.CaseID] = entry
			m.bump(p.Status)
		}
	case events.KindRunCompleted, events.KindRunFailed, events.KindRunCancelled:
		m.finished = true
		m.cancelled = ev.Kind == events.KindRunCancelled
		switch ev.Kind {
		case events.KindRunCompleted:
			m.status = engine.RunCompleted
		case events.KindRunFailed:
			m.status = engine.RunFailed
		case events.KindRunCancelled:
			m.status = engine.RunCancelled
		}
		if p, ok := ev.Payload.(engine.RunPayload); ok {
			m.counts = engine.Counts{
				Total:   p.TotalTests,
				Passed:  p.Passed,
				Failed:  p.Failed,
				Skipped: p.Skipped,
			}
			m.runError = p.Error
		}
	}

	if p, ok := ev.Payload.(engine.RunPayload); ok && m.counts.Total == 0 {
		m.counts.Total = p.TotalTests
	}
}

func (m *Model) bump(status model.TestStatus) {
	switch status {
	case model.TestFailed:
		m.counts.Failed++
	case model.TestSkipped:
		m.counts.Skipped++
	default:
		m.counts.Passed++
	}
}
