package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/caseflow/caseflow/internal/model"
)

// RunStatus is the externally visible state of a run. Paused is not a
// separate status: a paused run still reports Running, with the paused
// flag readable through Paused().
type RunStatus string

const (
	// RunNotStarted is the zero state before the orchestrator begins.
	RunNotStarted RunStatus = "not_started"
	// RunRunning covers active execution, including paused runs.
	RunRunning RunStatus = "running"
	// RunCompleted is terminal: all cases executed, none failed.
	RunCompleted RunStatus = "completed"
	// RunFailed is terminal: at least one case failed, or configuration
	// was rejected.
	RunFailed RunStatus = "failed"
	// RunCancelled is terminal: cancellation was observed during the run.
	RunCancelled RunStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s RunStatus) Terminal() bool {
	switch s {
	case RunCompleted, RunFailed, RunCancelled:
		return true
	}
	return false
}

// Counts is a snapshot of a run's aggregate counters.
type Counts struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// RunState is the mutable aggregate for one run. It is owned by a single
// ExecuteSuite invocation and shared by every worker that invocation
// spawns; counter and result mutations are serialized through one mutex
// per run. TotalTests is fixed at creation.
type RunState struct {
	ID         string
	TotalTests int

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	status      RunStatus
	paused      bool
	startedAt   time.Time
	completedAt time.Time
	passed      int
	failed      int
	skipped     int
	results     []model.TestResult
	errMessage  string
}

func newRunState(parent context.Context, total int) *RunState {
	ctx, cancel := context.WithCancel(parent)
	return &RunState{
		ID:         uuid.New().String(),
		TotalTests: total,
		ctx:        ctx,
		cancel:     cancel,
		status:     RunNotStarted,
		results:    make([]model.TestResult, 0, total),
	}
}

// Context returns the run's owned cancellation context. Workers observe it
// at case-start checkpoints; it never preempts a case mid-flight.
func (s *RunState) Context() context.Context {
	return s.ctx
}

// Cancel signals the run's owned cancellation source.
func (s *RunState) Cancel() {
	s.cancel()
}

// CancelRequested reports whether cancellation has been observed.
func (s *RunState) CancelRequested() bool {
	return s.ctx.Err() != nil
}

func (s *RunState) start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = RunRunning
	s.startedAt = time.Now()
}

// Fold merges one completed case result into the run: exactly one counter
// increment and one append per case, under the run's lock. This is the
// only way results enter the run, regardless of which worker finished
// first.
func (s *RunState) Fold(res model.TestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch res.Status {
	case model.TestFailed:
		s.failed++
	case model.TestSkipped:
		s.skipped++
	default:
		s.passed++
	}
	s.results = append(s.results, res)
}

// finalize records the terminal status exactly once; later calls are
// ignored. It returns whether this call performed the transition.
func (s *RunState) finalize(status RunStatus, errMessage string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Terminal() {
		return false
	}
	s.status = status
	s.errMessage = errMessage
	s.completedAt = time.Now()
	return true
}

// setPaused flips the pause gate and reports whether the value changed.
func (s *RunState) setPaused(paused bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused == paused || s.status.Terminal() {
		return false
	}
	s.paused = paused
	return true
}

// Status returns the run's current status.
func (s *RunState) Status() RunStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Paused reports whether the pause gate is set.
func (s *RunState) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Counts returns a snapshot of the run's counters.
func (s *RunState) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Counts{
		Total:   s.TotalTests,
		Passed:  s.passed,
		Failed:  s.failed,
		Skipped: s.skipped,
	}
}

// Results returns a copy of the accumulated case results. Order reflects
// completion, which is unspecified in parallel mode.
func (s *RunState) Results() []model.TestResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.TestResult, len(s.results))
	copy(out, s.results)
	return out
}

// ErrorMessage returns the run-level error recorded at finalization, if any.
func (s *RunState) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMessage
}

// StartedAt returns when the run began executing.
func (s *RunState) StartedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt
}

// Duration returns the wall-clock span between run start and finalization,
// or the elapsed time so far for a live run.
func (s *RunState) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startedAt.IsZero() {
		return 0
	}
	if s.completedAt.IsZero() {
		return time.Since(s.startedAt)
	}
	return s.completedAt.Sub(s.startedAt)
}
