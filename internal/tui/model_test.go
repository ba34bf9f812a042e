package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/caseflow/caseflow/internal/engine"
	"github.com/caseflow/caseflow/internal/events"
	"github.com/caseflow/caseflow/internal/model"
)

func applyEvents(t *testing.T, m Model, evs ...events.Event) Model {
	t.Helper()
	for _, ev := range evs {
		updated, _ := m.Update(EventMsg{Event: ev})
		m = updated.(Model)
	}
	return m
}

func TestNewModelInitialisesState(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()

	m := NewModel("Checkout Suite", bus.Subscribe("run-1"))
	require.False(t, m.Finished())
	require.Zero(t, m.Counts().Total)
	require.NotNil(t, m.Init())
}

func TestModelTracksCaseLifecycle(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()
	m := NewModel("suite", bus.Subscribe("run-1"))

	m = applyEvents(t, m,
		events.New(events.KindRunStarted, "run-1", engine.RunPayload{TotalTests: 2}),
		events.New(events.KindCaseStarted, "run-1", engine.CasePayload{CaseID: "c1", CaseName: "login"}),
	)
	require.Equal(t, 2, m.Counts().Total)
	require.True(t, m.cases["c1"].Running)

	m = applyEvents(t, m,
		events.New(events.KindCaseCompleted, "run-1", engine.CasePayload{
			CaseID:   "c1",
			CaseName: "login",
			Status:   model.TestPassed,
			Duration: 120 * time.Millisecond,
		}),
	)
	require.False(t, m.cases["c1"].Running)
	require.Equal(t, model.TestPassed, m.cases["c1"].Status)
	require.Equal(t, 1, m.Counts().Passed)
	require.False(t, m.Finished())
}

func TestModelQuitsOnTerminalEvent(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()
	m := NewModel("suite", bus.Subscribe("run-1"))

	updated, cmd := m.Update(EventMsg{Event: events.New(events.KindRunFailed, "run-1", engine.RunPayload{
		TotalTests: 3, Passed: 2, Failed: 1,
	})})
	m = updated.(Model)

	require.True(t, m.Finished())
	require.Equal(t, engine.RunFailed, m.status)
	require.Equal(t, engine.Counts{Total: 3, Passed: 2, Failed: 1}, m.Counts())
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestModelPauseAndResume(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()
	m := NewModel("suite", bus.Subscribe("run-1"))

	m = applyEvents(t, m, events.New(events.KindRunPaused, "run-1", nil))
	require.True(t, m.paused)
	m = applyEvents(t, m, events.New(events.KindRunResumed, "run-1", nil))
	require.False(t, m.paused)
}

func TestModelQuitsOnCtrlC(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()
	m := NewModel("suite", bus.Subscribe("run-1"))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)
	require.True(t, m.Finished())
	require.True(t, m.cancelled)
	require.NotNil(t, cmd)
}

func TestViewRendersCasesAndSummary(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()
	m := NewModel("Checkout Suite", bus.Subscribe("run-1"))

	m = applyEvents(t, m,
		events.New(events.KindRunStarted, "run-1", engine.RunPayload{TotalTests: 2}),
		events.New(events.KindCaseCompleted, "run-1", engine.CasePayload{CaseID: "c1", CaseName: "login", Status: model.TestPassed}),
		events.New(events.KindCaseCompleted, "run-1", engine.CasePayload{CaseID: "c2", CaseName: "search", Status: model.TestFailed, Error: "no results"}),
		events.New(events.KindRunFailed, "run-1", engine.RunPayload{TotalTests: 2, Passed: 1, Failed: 1}),
	)

	out := m.View()
	require.Contains(t, out, "Checkout Suite")
	require.Contains(t, out, "login")
	require.Contains(t, out, "search")
	require.Contains(t, out, "no results")
	require.Contains(t, out, "1 passed, 1 failed")
	require.Contains(t, out, "Run finished with failures")
}
