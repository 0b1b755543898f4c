package pipeline

// Criticality classifies what the runner does when a Stage's Run returns a
// non-nil error.
type Criticality int

const (
	// Fatal aborts the remainder of this Run invocation: the context is
	// told to stop, and only a stage explicitly marked AlwaysRuns still
	// executes afterward.
	Fatal Criticality = iota
	// Recoverable logs the failure against the context and continues with
	// the next stage.
	Recoverable
)

// String renders the criticality for log lines.
func (c Criticality) String() string {
	switch c {
	case Fatal:
		return "fatal"
	case Recoverable:
		return "recoverable"
	default:
		return "unknown"
	}
}

// Context is the constraint a pipeline's shared value must satisfy so the
// runner can control iteration and failure handling without knowing the
// concrete context type.
type Context interface {
	// ShouldContinue reports whether the runner should keep advancing
	// through the stage list.
	ShouldContinue() bool
	// Abort sets ShouldContinue to false for the remainder of this Run.
	Abort()
	// MarkErrored flags the run as diagnostic-only following a Fatal stage
	// failure.
	MarkErrored()
	// Log appends a short diagnostic line; it must never influence output.
	Log(line string)
}

// Stage is one unit of work in an ordered Pipeline over a shared context T.
type Stage[T Context] interface {
	// Name identifies the stage for AddStage/RemoveStage and log lines.
	Name() string
	// Applicable reports whether this stage should run for the given ctx.
	Applicable(ctx T) bool
	// Run executes the stage's work against ctx.
	Run(ctx T) error
	// Criticality classifies a non-nil error returned by Run.
	Criticality() Criticality
	// AlwaysRuns marks a stage that must execute even after another stage
	// has aborted the run (the event-emission stage is the only one that
	// sets this).
	AlwaysRuns() bool
}
