package pipeline

import "fmt"

// Pipeline runs an ordered, mutable list of Stage[T] against a context
// value. It is not safe for concurrent use; callers needing concurrent
// simulations should build one Pipeline per goroutine.
type Pipeline[T Context] struct {
	stages []Stage[T]
}

// New constructs a Pipeline with the given stages in the given order.
func New[T Context](stages ...Stage[T]) *Pipeline[T] {
	p := &Pipeline[T]{}
	p.stages = append(p.stages, stages...)
	return p
}

// Stages returns a copy of the current ordered stage list.
func (p *Pipeline[T]) Stages() []Stage[T] {
	out := make([]Stage[T], len(p.stages))
	copy(out, p.stages)
	return out
}

// AddStage inserts stage at position, clamping to the slice bounds. A
// negative position appends to the end.
func (p *Pipeline[T]) AddStage(stage Stage[T], position int) {
	if position < 0 || position > len(p.stages) {
		p.stages = append(p.stages, stage)
		return
	}
	p.stages = append(p.stages, nil)
	copy(p.stages[position+1:], p.stages[position:])
	p.stages[position] = stage
}

// RemoveStage removes the first stage with the given name. Reports whether
// a stage was removed.
func (p *Pipeline[T]) RemoveStage(name string) bool {
	for i, s := range p.stages {
		if s.Name() == name {
			p.stages = append(p.stages[:i], p.stages[i+1:]...)
			return true
		}
	}
	return false
}

// Run drives the ordered stage list against ctx. It stops advancing once
// ctx.ShouldContinue() reports false. Stages marked AlwaysRuns are held
// back and run after all other stages, in their registered order among
// themselves, whether or not the run was aborted.
func (p *Pipeline[T]) Run(ctx T) {
	var deferred []Stage[T]

	for _, stage := range p.stages {
		if stage.AlwaysRuns() {
			deferred = append(deferred, stage)
			continue
		}
		if !ctx.ShouldContinue() {
			continue
		}
		if !stage.Applicable(ctx) {
			continue
		}
		runStage(ctx, stage)
	}

	for _, stage := range deferred {
		if stage.Applicable(ctx) {
			runStage(ctx, stage)
		}
	}
}

func runStage[T Context](ctx T, stage Stage[T]) {
	err := stage.Run(ctx)
	if err == nil {
		return
	}
	switch stage.Criticality() {
	case Fatal:
		ctx.Abort()
		ctx.MarkErrored()
		ctx.Log(fmt.Sprintf("%s: %v", stage.Name(), err))
	case Recoverable:
		ctx.Log(fmt.Sprintf("%s: %v", stage.Name(), err))
	}
}
