package engine

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caseflow/caseflow/internal/model"
)

func TestRunState_FoldIsExactUnderConcurrency(t *testing.T) {
	const total = 90
	run := newRunState(context.Background(), total)
	run.start()

	statuses := []model.TestStatus{model.TestPassed, model.TestFailed, model.TestSkipped}
	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			run.Fold(model.TestResult{Status: statuses[i%len(statuses)]})
		}(i)
	}
	wg.Wait()

	counts := run.Counts()
	require.Equal(t, Counts{Total: total, Passed: 30, Failed: 30, Skipped: 30}, counts)
	require.Len(t, run.Results(), total)
}

func TestRunState_FoldBucketsUnknownStatusAsPassed(t *testing.T) {
	run := newRunState(context.Background(), 1)
	run.Fold(model.TestResult{Status: model.TestInconclusive})
	require.Equal(t, 1, run.Counts().Passed)
}

func TestRunState_FinalizeOnce(t *testing.T) {
	run := newRunState(context.Background(), 0)
	run.start()

	require.True(t, run.finalize(RunCompleted, ""))
	require.False(t, run.finalize(RunFailed, "late"))
	require.Equal(t, RunCompleted, run.Status())
	require.Empty(t, run.ErrorMessage())
	require.GreaterOrEqual(t, run.Duration().Nanoseconds(), int64(0))
}

func TestRunState_PauseGateOnTerminal(t *testing.T) {
	run := newRunState(context.Background(), 0)
	run.start()

	require.True(t, run.setPaused(true))
	require.False(t, run.setPaused(true))
	require.True(t, run.setPaused(false))

	run.finalize(RunCompleted, "")
	require.False(t, run.setPaused(true))
}

func TestRunState_CancelRequested(t *testing.T) {
	run := newRunState(context.Background(), 0)
	require.False(t, run.CancelRequested())
	run.Cancel()
	require.True(t, run.CancelRequested())
}
