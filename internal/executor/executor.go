package executor

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/caseflow/caseflow/internal/handler"
	"github.com/caseflow/caseflow/internal/logger"
	"github.com/caseflow/caseflow/internal/model"
)

// StepExecutor runs one case's ordered steps sequentially against a
// per-case execution context, producing per-step results. It never lets a
// handler failure escape: lookup misses, validation errors, returned
// errors, and panics all surface as failed step results with timestamps
// set.
type StepExecutor struct {
	registry *handler.Registry
	log      *logger.Logger
}

// New creates a StepExecutor backed by the given registry.
func New(registry *handler.Registry, log *logger.Logger) *StepExecutor {
	return &StepExecutor{registry: registry, log: log}
}

// ExecuteStep dispatches a single step to its handler and returns the
// completed result.
func (e *StepExecutor) ExecuteStep(ctx context.Context, step *model.TestStep, execCtx handler.Context) model.StepResult {
	result := model.StepResult{
		StepName:       displayName(step),
		Order:          step.Order,
		ExpectedResult: step.ExpectedResult,
		StartedAt:      time.Now(),
	}

	h, err := e.registry.Get(step.Kind)
	if err != nil {
		result.Status = model.StepFailed
		result.ErrorMessage = err.Error()
		result.CompletedAt = time.Now()
		return result
	}

	if err := h.Validate(step); err != nil {
		result.Status = model.StepFailed
		result.ErrorMessage = err.Error()
		result.CompletedAt = time.Now()
		return result
	}

	outcome, err := e.runHandler(ctx, h, step, execCtx)
	switch {
	case err != nil:
		result.Status = model.StepFailed
		result.ErrorMessage = err.Error()
	case outcome == nil:
		result.Status = model.StepFailed
		result.ErrorMessage = fmt.Sprintf("handler for kind %q returned no result", step.Kind)
	default:
		result.Status = outcome.Status
		if result.Status == "" {
			result.Status = model.StepPassed
		}
		result.ActualResult = outcome.ActualResult
		result.ErrorMessage = outcome.ErrorMessage
	}

	result.CompletedAt = time.Now()
	e.log.Debug("step executed",
		"step", result.StepName,
		"kind", string(step.Kind),
		"status", string(result.Status))
	return result
}

// runHandler invokes the handler, converting a panic into an error so a
// misbehaving handler cannot take down sibling cases.
func (e *StepExecutor) runHandler(ctx context.Context, h handler.Handler, step *model.TestStep, execCtx handler.Context) (outcome *model.StepResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			e.log.Error(nil, "handler panicked", "kind", string(step.Kind), "panic", rec)
			outcome = nil
			err = fmt.Errorf("handler panicked: %v", rec)
		}
	}()
	return h.Execute(ctx, step, execCtx)
}

// ExecuteSteps runs steps in Order (stable for ties) and returns the
// results of every executed step. A failed step halts the remaining
// non-cleanup steps unless continueOnFailure is set; trailing cleanup
// steps are always attempted. A failed cleanup step stops execution
// entirely. Cancellation is checked between steps: a non-cleanup step
// whose context is already cancelled or past its deadline is recorded as
// Skipped rather than silently dropped, so a truncated case is visible in
// its results. A step already running is never interrupted.
func (e *StepExecutor) ExecuteSteps(ctx context.Context, steps []model.TestStep, execCtx handler.Context, continueOnFailure bool) []model.StepResult {
	ordered := make([]model.TestStep, len(steps))
	copy(ordered, steps)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	results := make([]model.StepResult, 0, len(ordered))
	halted := false

	for i := range ordered {
		step := &ordered[i]
		if step.Kind != model.KindCleanup {
			if halted {
				continue
			}
			if err := ctx.Err(); err != nil {
				results = append(results, skippedStep(step, err))
				continue
			}
		}

		res := e.ExecuteStep(ctx, step, execCtx)
		results = append(results, res)

		if res.Status == model.StepFailed {
			if step.Kind == model.KindCleanup {
				break
			}
			if !continueOnFailure {
				halted = true
			}
		}
	}

	return results
}

func skippedStep(step *model.TestStep, err error) model.StepResult {
	reason := "not executed: run cancelled"
	if err == context.DeadlineExceeded {
		reason = "not executed: case timeout exceeded"
	}
	now := time.Now()
	return model.StepResult{
		StepName:       displayName(step),
		Order:          step.Order,
		Status:         model.StepSkipped,
		StartedAt:      now,
		CompletedAt:    now,
		ExpectedResult: step.ExpectedResult,
		ErrorMessage:   reason,
	}
}

func displayName(step *model.TestStep) string {
	if step.Name != "" {
		return step.Name
	}
	if step.ID != "" {
		return step.ID
	}
	return string(step.Kind)
}
