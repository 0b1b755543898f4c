package pipeline

// FuncStage adapts a handful of closures to the Stage[T] interface. Most
// production stages are concrete types with dependencies, but tests and ad
// hoc pipelines benefit from not having to declare a struct for every small
// stage.
type FuncStage[T Context] struct {
	StageName        string
	ApplicableFn     func(T) bool
	RunFn            func(T) error
	StageCriticality Criticality
	StageAlwaysRuns  bool
}

// Name returns the stage's configured name.
func (f *FuncStage[T]) Name() string { return f.StageName }

// Applicable delegates to ApplicableFn, defaulting to true when unset.
func (f *FuncStage[T]) Applicable(ctx T) bool {
	if f.ApplicableFn == nil {
		return true
	}
	return f.ApplicableFn(ctx)
}

// Run delegates to RunFn.
func (f *FuncStage[T]) Run(ctx T) error {
	if f.RunFn == nil {
		return nil
	}
	return f.RunFn(ctx)
}

// Criticality returns the stage's configured criticality.
func (f *FuncStage[T]) Criticality() Criticality { return f.StageCriticality }

// AlwaysRuns returns whether this stage executes even after an abort.
func (f *FuncStage[T]) AlwaysRuns() bool { return f.StageAlwaysRuns }
