package model

// StepKind identifies the handler responsible for a step. The set is open:
// callers may register handlers for kinds beyond the built-in ones.
type StepKind string

const (
	// KindAction is a generic interaction step.
	KindAction StepKind = "action"
	// KindVerification compares an expected value against execution context.
	KindVerification StepKind = "verification"
	// KindSetup seeds the shared execution context before other steps run.
	KindSetup StepKind = "setup"
	// KindCleanup is best-effort teardown, attempted even after failures.
	KindCleanup StepKind = "cleanup"
	// KindNavigation moves the driven system to a target URL.
	KindNavigation StepKind = "navigation"
)

// TestStep is the smallest executable unit of a case. Steps are immutable
// once submitted to a run.
type TestStep struct {
	ID             string
	Name           string
	Order          int
	Kind           StepKind
	Action         string
	Parameters     map[string]string
	ExpectedResult string
}

// TestCase is a named, ordered unit of work. Cases are immutable once
// submitted to a run; the engine never mutates them.
type TestCase struct {
	ID         string
	Name       string
	Steps      []TestStep
	Parameters map[string]string
}
