package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/caseflow/caseflow/internal/config"
	"github.com/caseflow/caseflow/internal/events"
	"github.com/caseflow/caseflow/internal/executor"
	"github.com/caseflow/caseflow/internal/handler"
	"github.com/caseflow/caseflow/internal/logger"
	"github.com/caseflow/caseflow/internal/model"
	"github.com/caseflow/caseflow/pkg/errors"
)

const defaultPausePoll = 100 * time.Millisecond

// Orchestrator drives runs end to end: it schedules cases sequentially or
// in a bounded worker pool, folds every result into the run's state, and
// publishes lifecycle events. One Orchestrator handles many concurrent
// runs; each run is tracked until it reaches a terminal status.
type Orchestrator struct {
	executor *executor.StepExecutor
	bus      *events.Bus
	log      *logger.Logger

	pollInterval time.Duration

	mu   sync.Mutex
	runs map[string]*RunState
}

// Config assembles an Orchestrator's collaborators.
type Config struct {
	Registry *handler.Registry
	Bus      *events.Bus
	Logger   *logger.Logger

	// PausePollInterval bounds how long a paused run waits between
	// checks of the pause gate. Zero selects the 100ms default.
	PausePollInterval time.Duration
}

// RunPayload travels with run-level events and carries a counter snapshot.
type RunPayload struct {
	TotalTests int
	Passed     int
	Failed     int
	Skipped    int
	Error      string
}

// CasePayload travels with case-level events.
type CasePayload struct {
	CaseID   string
	CaseName string
	Status   model.TestStatus
	Duration time.Duration
	Error    string
}

// New validates the configuration and creates an Orchestrator.
func New(cfg Config) (*Orchestrator, error) {
	if cfg.Registry == nil {
		return nil, errors.NewConfigurationError("registry", "handler registry is required", nil)
	}
	if cfg.Bus == nil {
		return nil, errors.NewConfigurationError("bus", "event bus is required", nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}
	poll := cfg.PausePollInterval
	if poll <= 0 {
		poll = defaultPausePoll
	}
	return &Orchestrator{
		executor:     executor.New(cfg.Registry, cfg.Logger),
		bus:          cfg.Bus,
		log:          cfg.Logger,
		pollInterval: poll,
		runs:         make(map[string]*RunState),
	}, nil
}

// ExecuteSuite runs every case under the configured mode and blocks until
// the run reaches a terminal status. Per-case failures never surface as an
// error; only a rejected configuration does, and even then the returned
// RunState is finalized as Failed with every case folded as Skipped.
func (o *Orchestrator) ExecuteSuite(ctx context.Context, cases []model.TestCase, cfg config.RunConfig) (*RunState, error) {
	run := newRunState(ctx, len(cases))
	o.track(run)
	defer o.untrack(run.ID)

	run.start()
	o.publishRun(events.KindRunStarted, run)
	o.log.Info("run started",
		"run_id", run.ID,
		"total", run.TotalTests,
		"mode", string(cfg.Mode))

	switch cfg.Mode {
	case config.ModeSequential, "":
		o.runSequential(run, cases, cfg)
	case config.ModeParallel:
		o.runParallel(run, cases, cfg)
	default:
		err := errors.NewConfigurationError("mode",
			fmt.Sprintf("execution mode %q is not supported", cfg.Mode), nil)
		o.skipAll(run, cases, err.Error())
		o.finish(run, err.Error())
		return run, err
	}

	o.finish(run, "")
	return run, nil
}

// ExecuteCase runs a single case in isolation. It never returns an error:
// every failure mode, including a panic while orchestrating the case,
// surfaces as a Failed result, and cancellation observed before the first
// step surfaces as Skipped.
func (o *Orchestrator) ExecuteCase(ctx context.Context, tc model.TestCase, cfg config.RunConfig) (result model.TestResult) {
	result = model.TestResult{
		CaseID:    tc.ID,
		CaseName:  tc.Name,
		Status:    model.TestNotRun,
		StartedAt: time.Now(),
	}
	defer func() {
		if rec := recover(); rec != nil {
			o.log.Error(nil, "case orchestration panicked", "case_id", tc.ID, "panic", rec)
			result.Status = model.TestFailed
			result.ErrorMessage = fmt.Sprintf("case execution fault: %v", rec)
		}
		result.CompletedAt = time.Now()
		result.Duration = result.CompletedAt.Sub(result.StartedAt)
	}()

	if ctx.Err() != nil {
		result.Status = model.TestSkipped
		result.ErrorMessage = "cancelled before case started"
		return result
	}

	if timeout := cfg.DefaultTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	execCtx := handler.Context{}
	execCtx.Merge(tc.Parameters)

	result.StepResults = o.executor.ExecuteSteps(ctx, tc.Steps, execCtx, cfg.ContinueOnFailure)
	result.Status = statusFromSteps(result.StepResults)
	switch {
	case result.Status == model.TestFailed:
		result.ErrorMessage = firstStepError(result.StepResults)
	case ctx.Err() != nil && countSkippedSteps(result.StepResults) > 0:
		// Steps were dropped by the deadline or by cancellation; a case
		// with an unexecuted verification must not report Passed.
		if ctx.Err() == context.DeadlineExceeded {
			result.Status = model.TestFailed
			result.ErrorMessage = fmt.Sprintf("case timed out after %s with %d step(s) not executed",
				cfg.DefaultTimeout(), countSkippedSteps(result.StepResults))
		} else {
			result.Status = model.TestSkipped
			result.ErrorMessage = fmt.Sprintf("cancelled with %d step(s) not executed",
				countSkippedSteps(result.StepResults))
		}
	}
	return result
}

// Pause gates a live run from starting new cases. Cases already executing
// are unaffected. Returns false when the run is unknown.
func (o *Orchestrator) Pause(runID string) bool {
	run, ok := o.lookup(runID)
	if !ok {
		return false
	}
	if run.setPaused(true) {
		o.publishRun(events.KindRunPaused, run)
		o.log.Info("run paused", "run_id", runID)
	}
	return true
}

// Resume lifts the pause gate. Resuming a run that is not paused is a
// harmless no-op. Returns false when the run is unknown.
func (o *Orchestrator) Resume(runID string) bool {
	run, ok := o.lookup(runID)
	if !ok {
		return false
	}
	if run.setPaused(false) {
		o.publishRun(events.KindRunResumed, run)
		o.log.Info("run resumed", "run_id", runID)
	}
	return true
}

// Cancel signals the run's owned cancellation source. In-flight cases
// finish normally; cases not yet started fold as Skipped. Returns false
// when the run is unknown.
func (o *Orchestrator) Cancel(runID string) bool {
	run, ok := o.lookup(runID)
	if !ok {
		return false
	}
	run.Cancel()
	o.log.Info("run cancellation requested", "run_id", runID)
	return true
}

// GetStatus returns the run's current status. A paused run reports
// Running. The second return is false when the run is unknown.
func (o *Orchestrator) GetStatus(runID string) (RunStatus, bool) {
	run, ok := o.lookup(runID)
	if !ok {
		return "", false
	}
	return run.Status(), true
}

// SubscribeEvents returns an event subscription filtered to one run. The
// subscription ends after the run's terminal event; subscribing to an
// already finished run yields its historical terminal event immediately.
func (o *Orchestrator) SubscribeEvents(runID string) *events.Subscription {
	return o.bus.Subscribe(runID)
}

// waitWhilePaused blocks while the run's pause gate is set, polling at the
// configured interval. It returns false once cancellation is observed.
func (o *Orchestrator) waitWhilePaused(run *RunState) bool {
	for run.Paused() {
		select {
		case <-run.Context().Done():
			return false
		case <-time.After(o.pollInterval):
		}
	}
	return run.Context().Err() == nil
}

// finish decides the terminal status exactly once, after all scheduled
// work has drained, and publishes the matching terminal event.
func (o *Orchestrator) finish(run *RunState, errMessage string) {
	counts := run.Counts()

	var status RunStatus
	var kind events.Kind
	switch {
	case run.CancelRequested():
		status, kind = RunCancelled, events.KindRunCancelled
	case counts.Failed > 0 || errMessage != "":
		status, kind = RunFailed, events.KindRunFailed
	default:
		status, kind = RunCompleted, events.KindRunCompleted
	}

	if !run.finalize(status, errMessage) {
		return
	}
	o.publishRun(kind, run)
	o.log.Info("run finished",
		"run_id", run.ID,
		"status", string(status),
		"passed", counts.Passed,
		"failed", counts.Failed,
		"skipped", counts.Skipped,
		"duration", run.Duration().String())
}

// skipAll folds a Skipped result for every case, keeping the counter
// invariant intact on paths where no case ever starts.
func (o *Orchestrator) skipAll(run *RunState, cases []model.TestCase, reason string) {
	for _, tc := range cases {
		o.foldAndPublish(run, skippedResult(tc, reason))
	}
}

func (o *Orchestrator) foldAndPublish(run *RunState, res model.TestResult) {
	run.Fold(res)
	o.bus.Publish(events.New(events.KindCaseCompleted, run.ID, CasePayload{
		CaseID:   res.CaseID,
		CaseName: res.CaseName,
		Status:   res.Status,
		Duration: res.Duration,
		Error:    res.ErrorMessage,
	}))
}

func (o *Orchestrator) publishRun(kind events.Kind, run *RunState) {
	counts := run.Counts()
	o.bus.Publish(events.New(kind, run.ID, RunPayload{
		TotalTests: counts.Total,
		Passed:     counts.Passed,
		Failed:     counts.Failed,
		Skipped:    counts.Skipped,
		Error:      run.ErrorMessage(),
	}))
}

func (o *Orchestrator) track(run *RunState) {
	o.mu.Lock()
	o.runs[run.ID] = run
	o.mu.Unlock()
}

func (o *Orchestrator) untrack(runID string) {
	o.mu.Lock()
	delete(o.runs, runID)
	o.mu.Unlock()
}

func (o *Orchestrator) lookup(runID string) (*RunState, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	run, ok := o.runs[runID]
	return run, ok
}

func statusFromSteps(results []model.StepResult) model.TestStatus {
	for _, r := range results {
		if r.Status == model.StepFailed {
			return model.TestFailed
		}
	}
	return model.TestPassed
}

func countSkippedSteps(results []model.StepResult) int {
	n := 0
	for _, r := range results {
		if r.Status == model.StepSkipped {
			n++
		}
	}
	return n
}

func firstStepError(results []model.StepResult) string {
	for _, r := range results {
		if r.Status == model.StepFailed {
			if r.ErrorMessage != "" {
				return fmt.Sprintf("step %q failed: %s", r.StepName, r.ErrorMessage)
			}
			return fmt.Sprintf("step %q failed", r.StepName)
		}
	}
	return ""
}

func skippedResult(tc model.TestCase, reason string) model.TestResult {
	now := time.Now()
	return model.TestResult{
		CaseID:       tc.ID,
		CaseName:     tc.Name,
		Status:       model.TestSkipped,
		StartedAt:    now,
		CompletedAt:  now,
		ErrorMessage: reason,
	}
}
