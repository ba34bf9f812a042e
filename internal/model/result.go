package model

import (
	"time"
)

// StepStatus is the outcome of a single step execution.
type StepStatus string

const (
	// StepNotRun indicates the step has not been executed.
	StepNotRun StepStatus = "not_run"
	// StepPassed marks a successful step execution.
	StepPassed StepStatus = "passed"
	// StepFailed marks a failure during step execution.
	StepFailed StepStatus = "failed"
	// StepSkipped indicates the executor skipped the step.
	StepSkipped StepStatus = "skipped"
	// StepWarning marks a step that completed with a non-fatal issue.
	StepWarning StepStatus = "warning"
)

// TestStatus is the outcome of a whole case execution.
type TestStatus string

const (
	// TestNotRun indicates the case has not been executed.
	TestNotRun TestStatus = "not_run"
	// TestPassed marks a case whose steps all passed.
	TestPassed TestStatus = "passed"
	// TestFailed marks a case with at least one failed step or a case fault.
	TestFailed TestStatus = "failed"
	// TestSkipped marks a case that never started, e.g. after cancellation.
	TestSkipped TestStatus = "skipped"
	// TestInconclusive marks a case whose outcome could not be determined.
	TestInconclusive TestStatus = "inconclusive"
)

// StepResult captures the outcome of executing a single step. It is created
// by the step executor and never mutated after completion.
type StepResult struct {
	StepName       string
	Order          int
	Status         StepStatus
	StartedAt      time.Time
	CompletedAt    time.Time
	ExpectedResult string
	ActualResult   string
	ErrorMessage   string
}

// TestResult is one case's outcome. It is appended exactly once to the
// owning run and immutable thereafter.
type TestResult struct {
	CaseID       string
	CaseName     string
	Status       TestStatus
	StartedAt    time.Time
	CompletedAt  time.Time
	Duration     time.Duration
	StepResults  []StepResult
	ErrorMessage string
}

// Failed reports whether any step in the result failed.
func (r *TestResult) Failed() bool {
	if r.Status == TestFailed {
		return true
	}
	for _, sr := range r.StepResults {
		if sr.Status == StepFailed {
			return true
		}
	}
	return false
}
