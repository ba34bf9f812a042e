package actionhandler

import (
	"context"
	"fmt"

	"github.com/caseflow/caseflow/internal/handler"
	"github.com/caseflow/caseflow/internal/model"
	caseflowerrors "github.com/caseflow/caseflow/pkg/errors"
)

type actionHandler struct{}

// New creates the built-in action handler. An action step represents a
// generic interaction with the system under test; the engine only records
// it, since real UI automation lives outside the core.
func New() handler.Handler {
	return &actionHandler{}
}

var _ handler.Handler = (*actionHandler)(nil)

func (h *actionHandler) Kind() model.StepKind {
	return model.KindAction
}

func (h *actionHandler) Validate(step *model.TestStep) error {
	if step.Action == "" {
		return caseflowerrors.NewValidationError("action", "action step requires an action string", nil)
	}
	return nil
}

func (h *actionHandler) Execute(ctx context.Context, step *model.TestStep, execCtx handler.Context) (*model.StepResult, error) {
	if step.Action == "" {
		return &model.StepResult{
			Status:       model.StepFailed,
			ErrorMessage: "action step has no action string",
		}, nil
	}

	return &model.StepResult{
		Status:       model.StepPassed,
		ActualResult: fmt.Sprintf("executed action: %s", step.Action),
	}, nil
}
