package handler

import (
	"context"

	"github.com/caseflow/caseflow/internal/model"
)

// Context is the mutable state threaded across the steps of one case, in
// step order. A step may write named values consumed by later steps of the
// same case; it is the only state channel between steps. The map is owned
// by a single case execution and never shared across cases.
type Context map[string]string

// Value returns the named context value and whether it is present.
func (c Context) Value(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

// Merge copies all entries of the supplied map into the context.
func (c Context) Merge(params map[string]string) {
	for k, v := range params {
		c[k] = v
	}
}

// Handler executes and validates steps of one kind.
//
// Implementations must:
//   - Report the step kind they serve via Kind()
//   - Check a step's required fields in Validate() without side effects
//   - Produce a StepResult from Execute() carrying status and the
//     actual-vs-expected outcome where applicable
//
// Execute may read and write the per-case Context. Returned errors are
// converted by the executor into failed step results; handlers should not
// panic, but the executor recovers if they do.
type Handler interface {
	Kind() model.StepKind
	Validate(step *model.TestStep) error
	Execute(ctx context.Context, step *model.TestStep, execCtx Context) (*model.StepResult, error)
}
