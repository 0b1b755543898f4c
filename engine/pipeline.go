package engine

import "github.com/jianghu-sim/battlecore/pipeline"

// Stage and Pipeline bind the generic staged runner to this engine's
// StepContext. engine/stages implements Stage; engine itself never
// implements one, keeping the runner's mechanics out of the domain
// package and vice versa.
type (
	Stage       = pipeline.Stage[*StepContext]
	Pipeline    = pipeline.Pipeline[*StepContext]
	Criticality = pipeline.Criticality
)

// Criticality values a Stage.Criticality() can return.
const (
	Fatal       = pipeline.Fatal
	Recoverable = pipeline.Recoverable
)

// NewPipeline builds a Pipeline from stages in the given order. Most
// callers want engine/stages.Default(...) rather than assembling this by
// hand.
func NewPipeline(stages ...Stage) *Pipeline {
	return pipeline.New(stages...)
}
