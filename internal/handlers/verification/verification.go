package verificationhandler

import (
	"context"
	"fmt"
	"strings"

	"github.com/caseflow/caseflow/internal/handler"
	"github.com/caseflow/caseflow/internal/model"
	"github.com/caseflow/caseflow/pkg/diff"
	caseflowerrors "github.com/caseflow/caseflow/pkg/errors"
)

// ContextKeyParam names the step parameter selecting which context value
// to compare; DefaultContextKey is used when the parameter is absent.
const (
	ContextKeyParam   = "context_key"
	DefaultContextKey = "lastResult"
)

type verificationHandler struct{}

// New creates the built-in verification handler. It compares the step's
// expected result against a named value in the case's execution context;
// the comparison is a case-insensitive exact match.
func New() handler.Handler {
	return &verificationHandler{}
}

var _ handler.Handler = (*verificationHandler)(nil)

func (h *verificationHandler) Kind() model.StepKind {
	return model.KindVerification
}

func (h *verificationHandler) Validate(step *model.TestStep) error {
	if step.ExpectedResult == "" {
		return caseflowerrors.NewValidationError("expected",
			"verification step requires an expected result", nil)
	}
	return nil
}

func (h *verificationHandler) Execute(ctx context.Context, step *model.TestStep, execCtx handler.Context) (*model.StepResult, error) {
	key := DefaultContextKey
	if k, ok := step.Parameters[ContextKeyParam]; ok && k != "" {
		key = k
	}

	actual, ok := execCtx.Value(key)
	if !ok {
		return &model.StepResult{
			Status:       model.StepFailed,
			ErrorMessage: fmt.Sprintf("context value %q not set", key),
		}, nil
	}

	if strings.EqualFold(actual, step.ExpectedResult) {
		return &model.StepResult{
			Status:       model.StepPassed,
			ActualResult: actual,
		}, nil
	}

	return &model.StepResult{
		Status:       model.StepFailed,
		ActualResult: actual,
		ErrorMessage: diff.Mismatch(step.ExpectedResult, actual),
	}, nil
}
