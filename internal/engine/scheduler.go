package engine

import (
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/caseflow/caseflow/internal/config"
	"github.com/caseflow/caseflow/internal/events"
	"github.com/caseflow/caseflow/internal/model"
)

const defaultParallelSlots = 4

// runSequential iterates cases in input order. Before each case it waits
// out the pause gate and checks cancellation; once cancellation is seen,
// every remaining case folds as Skipped.
func (o *Orchestrator) runSequential(run *RunState, cases []model.TestCase, cfg config.RunConfig) {
	for i, tc := range cases {
		if !o.waitWhilePaused(run) {
			o.skipAll(run, cases[i:], "cancelled before case started")
			return
		}

		o.startCase(run, tc)
		res := o.ExecuteCase(run.Context(), tc, cfg)
		o.foldAndPublish(run, res)
	}
}

// runParallel spawns one goroutine per case, bounded by a weighted
// semaphore of MaxParallelTests slots. Each worker re-checks the pause
// gate and cancellation before starting; a worker that cannot acquire a
// slot because the run was cancelled folds its case as Skipped, keeping
// the counters exact regardless of completion order.
func (o *Orchestrator) runParallel(run *RunState, cases []model.TestCase, cfg config.RunConfig) {
	slots := cfg.MaxParallelTests
	if slots <= 0 {
		slots = defaultParallelSlots
	}
	sem := semaphore.NewWeighted(int64(slots))

	var wg sync.WaitGroup
	for _, tc := range cases {
		wg.Add(1)
		go func(tc model.TestCase) {
			defer wg.Done()

			if err := sem.Acquire(run.Context(), 1); err != nil {
				o.foldAndPublish(run, skippedResult(tc, "cancelled before case started"))
				return
			}
			defer sem.Release(1)

			if !o.waitWhilePaused(run) {
				o.foldAndPublish(run, skippedResult(tc, "cancelled before case started"))
				return
			}

			o.startCase(run, tc)
			res := o.ExecuteCase(run.Context(), tc, cfg)
			o.foldAndPublish(run, res)
		}(tc)
	}
	wg.Wait()
}

func (o *Orchestrator) startCase(run *RunState, tc model.TestCase) {
	o.bus.Publish(events.New(events.KindCaseStarted, run.ID, CasePayload{
		CaseID:   tc.ID,
		CaseName: tc.Name,
		Status:   model.TestNotRun,
	}))
	o.log.Debug("case started", "run_id", run.ID, "case_id", tc.ID)
}
