package verificationhandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caseflow/caseflow/internal/handler"
	"github.com/caseflow/caseflow/internal/model"
)

func TestVerification_PassOnCaseInsensitiveMatch(t *testing.T) {
	h := New()
	step := &model.TestStep{Kind: model.KindVerification, ExpectedResult: "Login successful"}

	res, err := h.Execute(context.Background(), step, handler.Context{"lastResult": "login SUCCESSFUL"})
	require.NoError(t, err)
	require.Equal(t, model.StepPassed, res.Status)
	require.Equal(t, "login SUCCESSFUL", res.ActualResult)
}

func TestVerification_FailOnMismatch(t *testing.T) {
	h := New()
	step := &model.TestStep{Kind: model.KindVerification, ExpectedResult: "Login successful"}

	res, err := h.Execute(context.Background(), step, handler.Context{"lastResult": "Login failed"})
	require.NoError(t, err)
	require.Equal(t, model.StepFailed, res.Status)
	require.Equal(t, "Login failed", res.ActualResult)
	require.Contains(t, res.ErrorMessage, "expected:")
}

func TestVerification_FailOnMissingContextValue(t *testing.T) {
	h := New()
	step := &model.TestStep{Kind: model.KindVerification, ExpectedResult: "anything"}

	res, err := h.Execute(context.Background(), step, handler.Context{})
	require.NoError(t, err)
	require.Equal(t, model.StepFailed, res.Status)
	require.Contains(t, res.ErrorMessage, "lastResult")
}

func TestVerification_CustomContextKey(t *testing.T) {
	h := New()
	step := &model.TestStep{
		Kind:           model.KindVerification,
		ExpectedResult: "42",
		Parameters:     map[string]string{ContextKeyParam: "answer"},
	}

	res, err := h.Execute(context.Background(), step, handler.Context{"answer": "42"})
	require.NoError(t, err)
	require.Equal(t, model.StepPassed, res.Status)
}

func TestVerification_ValidateRequiresExpected(t *testing.T) {
	h := New()
	require.Error(t, h.Validate(&model.TestStep{Kind: model.KindVerification}))
	require.NoError(t, h.Validate(&model.TestStep{Kind: model.KindVerification, ExpectedResult: "ok"}))
}
