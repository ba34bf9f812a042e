package setuphandler

import (
	"context"
	"fmt"

	"github.com/caseflow/caseflow/internal/handler"
	"github.com/caseflow/caseflow/internal/model"
)

type setupHandler struct{}

// New creates the built-in setup handler, which seeds the case's execution
// context with the step's parameters.
func New() handler.Handler {
	return &setupHandler{}
}

var _ handler.Handler = (*setupHandler)(nil)

func (h *setupHandler) Kind() model.StepKind {
	return model.KindSetup
}

func (h *setupHandler) Validate(step *model.TestStep) error {
	return nil
}

func (h *setupHandler) Execute(ctx context.Context, step *model.TestStep, execCtx handler.Context) (*model.StepResult, error) {
	execCtx.Merge(step.Parameters)
	return &model.StepResult{
		Status:       model.StepPassed,
		ActualResult: fmt.Sprintf("seeded %d context value(s)", len(step.Parameters)),
	}, nil
}
