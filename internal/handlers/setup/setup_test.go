package setuphandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caseflow/caseflow/internal/handler"
	"github.com/caseflow/caseflow/internal/model"
)

func TestSetup_MergesParametersIntoContext(t *testing.T) {
	h := New()
	execCtx := handler.Context{"existing": "kept"}
	step := &model.TestStep{
		Kind:       model.KindSetup,
		Parameters: map[string]string{"user": "alice", "lastResult": "Login successful"},
	}

	res, err := h.Execute(context.Background(), step, execCtx)
	require.NoError(t, err)
	require.Equal(t, model.StepPassed, res.Status)
	require.Equal(t, "kept", execCtx["existing"])
	require.Equal(t, "alice", execCtx["user"])
	require.Equal(t, "Login successful", execCtx["lastResult"])
}

func TestSetup_NoParameters(t *testing.T) {
	h := New()
	res, err := h.Execute(context.Background(), &model.TestStep{Kind: model.KindSetup}, handler.Context{})
	require.NoError(t, err)
	require.Equal(t, model.StepPassed, res.Status)
}
