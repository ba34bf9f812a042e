package navigationhandler

import (
	"context"
	"fmt"

	"github.com/caseflow/caseflow/internal/handler"
	"github.com/caseflow/caseflow/internal/model"
	caseflowerrors "github.com/caseflow/caseflow/pkg/errors"
)

// URLParam names the required step parameter carrying the navigation target.
// CurrentURLKey is the context key the handler records the target under.
const (
	URLParam      = "url"
	CurrentURLKey = "currentUrl"
)

type navigationHandler struct{}

// New creates the built-in navigation handler. The engine records the
// target URL in the execution context; driving an actual browser is the
// host's concern.
func New() handler.Handler {
	return &navigationHandler{}
}

var _ handler.Handler = (*navigationHandler)(nil)

func (h *navigationHandler) Kind() model.StepKind {
	return model.KindNavigation
}

func (h *navigationHandler) Validate(step *model.TestStep) error {
	if step.Parameters[URLParam] == "" {
		return caseflowerrors.NewValidationError(URLParam,
			"navigation step requires a non-empty \"url\" parameter", nil)
	}
	return nil
}

func (h *navigationHandler) Execute(ctx context.Context, step *model.TestStep, execCtx handler.Context) (*model.StepResult, error) {
	url := step.Parameters[URLParam]
	if url == "" {
		return &model.StepResult{
			Status:       model.StepFailed,
			ErrorMessage: "navigation step has no url parameter",
		}, nil
	}

	execCtx[CurrentURLKey] = url
	return &model.StepResult{
		Status:       model.StepPassed,
		ActualResult: fmt.Sprintf("navigated to %s", url),
	}, nil
}
