package cleanuphandler

import (
	"context"

	"github.com/caseflow/caseflow/internal/handler"
	"github.com/caseflow/caseflow/internal/model"
)

type cleanupHandler struct{}

// New creates the built-in cleanup handler. Cleanup steps are best-effort:
// the executor attempts them even after earlier failures, and they report
// success unless the handler itself faults.
func New() handler.Handler {
	return &cleanupHandler{}
}

var _ handler.Handler = (*cleanupHandler)(nil)

func (h *cleanupHandler) Kind() model.StepKind {
	return model.KindCleanup
}

func (h *cleanupHandler) Validate(step *model.TestStep) error {
	return nil
}

func (h *cleanupHandler) Execute(ctx context.Context, step *model.TestStep, execCtx handler.Context) (*model.StepResult, error) {
	return &model.StepResult{
		Status:       model.StepPassed,
		ActualResult: "cleanup completed",
	}, nil
}
