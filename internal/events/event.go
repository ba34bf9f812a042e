package events

import (
	"time"

	"github.com/google/uuid"
)

// Kind names a lifecycle event emitted by the orchestrator. The set is
// open: observers must tolerate kinds they do not know.
type Kind string

const (
	// KindRunStarted is emitted once when a run begins.
	KindRunStarted Kind = "run.started"
	// KindRunCompleted is emitted when a run finishes with no failures.
	KindRunCompleted Kind = "run.completed"
	// KindRunFailed is emitted when a run finishes with at least one failure.
	KindRunFailed Kind = "run.failed"
	// KindRunPaused is emitted when a live run is paused.
	KindRunPaused Kind = "run.paused"
	// KindRunResumed is emitted when a paused run resumes.
	KindRunResumed Kind = "run.resumed"
	// KindRunCancelled is emitted when a run finishes after cancellation.
	KindRunCancelled Kind = "run.cancelled"
	// KindCaseStarted is emitted before a case begins executing.
	KindCaseStarted Kind = "case.started"
	// KindCaseCompleted is emitted after a case result is folded into the run.
	KindCaseCompleted Kind = "case.completed"
)

// Terminal reports whether the kind ends a run's event sequence.
func (k Kind) Terminal() bool {
	switch k {
	case KindRunCompleted, KindRunFailed, KindRunCancelled:
		return true
	}
	return false
}

// Event is an immutable record of a lifecycle occurrence within one run.
// It is created once, broadcast, and never mutated.
type Event struct {
	ID        string
	Kind      Kind
	RunID     string
	Timestamp time.Time
	Payload   any
}

// New creates an Event with a fresh identity and the current timestamp.
func New(kind Kind, runID string, payload any) Event {
	return Event{
		ID:        uuid.New().String(),
		Kind:      kind,
		RunID:     runID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}
