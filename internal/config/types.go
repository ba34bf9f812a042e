package config

import (
	"time"

	"github.com/caseflow/caseflow/internal/model"
)

// Mode selects how a run schedules its cases.
type Mode string

const (
	// ModeSequential executes cases one at a time in input order.
	ModeSequential Mode = "sequential"
	// ModeParallel executes cases concurrently, bounded by MaxParallelTests.
	ModeParallel Mode = "parallel"
	// ModeDistributed is a declared value with no backend; selecting it is
	// a configuration error.
	ModeDistributed Mode = "distributed"
)

// RunConfig holds the execution parameters the engine consumes.
type RunConfig struct {
	Mode               Mode `yaml:"mode,omitempty" validate:"omitempty,oneof=sequential parallel distributed"`
	MaxParallelTests   int  `yaml:"max_parallel_tests,omitempty" validate:"omitempty,min=1,max=64"`
	TimeoutSeconds     int  `yaml:"timeout,omitempty" validate:"omitempty,min=1,max=86400"`
	ContinueOnFailure  bool `yaml:"continue_on_failure,omitempty"`
	CaptureScreenshots bool `yaml:"capture_screenshots,omitempty"`
}

// DefaultTimeout returns the per-case timeout, or zero when unset.
func (c RunConfig) DefaultTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Suite is the full suite document loaded from disk.
type Suite struct {
	Name        string    `yaml:"name" validate:"required,min=1,max=200"`
	Description string    `yaml:"description,omitempty"`
	Settings    RunConfig `yaml:"settings,omitempty"`
	Cases       []Case    `yaml:"cases" validate:"required,min=1,dive"`
}

// Case describes one test case in a suite document.
type Case struct {
	ID         string            `yaml:"id" validate:"required,case_id"`
	Name       string            `yaml:"name,omitempty"`
	Parameters map[string]string `yaml:"parameters,omitempty"`
	Steps      []Step            `yaml:"steps" validate:"required,min=1,dive"`
}

// Step describes one step of a case in a suite document.
type Step struct {
	ID         string            `yaml:"id,omitempty"`
	Name       string            `yaml:"name,omitempty"`
	Order      int               `yaml:"order"`
	Kind       string            `yaml:"kind" validate:"required,step_kind"`
	Action     string            `yaml:"action,omitempty"`
	Parameters map[string]string `yaml:"parameters,omitempty"`
	Expected   string            `yaml:"expected,omitempty"`
}

// TestCases converts the suite document into the engine's immutable case model.
func (s *Suite) TestCases() []model.TestCase {
	cases := make([]model.TestCase, 0, len(s.Cases))
	for _, c := range s.Cases {
		steps := make([]model.TestStep, 0, len(c.Steps))
		for _, st := range c.Steps {
			steps = append(steps, model.TestStep{
				ID:             st.ID,
				Name:           st.Name,
				Order:          st.Order,
				Kind:           model.StepKind(st.Kind),
				Action:         st.Action,
				Parameters:     cloneParams(st.Parameters),
				ExpectedResult: st.Expected,
			})
		}
		cases = append(cases, model.TestCase{
			ID:         c.ID,
			Name:       c.Name,
			Steps:      steps,
			Parameters: cloneParams(c.Parameters),
		})
	}
	return cases
}

func cloneParams(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
