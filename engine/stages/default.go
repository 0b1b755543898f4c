package stages

import (
	"github.com/jianghu-sim/battlecore/atb"
	"github.com/jianghu-sim/battlecore/engine"
)

// Default builds the eight-stage resolution pipeline in canonical order:
// scheduling, decision, resource check, evasion, defense, damage
// calculation, state apply, event emission.
func Default(scheduler *atb.Scheduler) *engine.Pipeline {
	return engine.NewPipeline(
		&Scheduling{Scheduler: scheduler},
		&Decision{},
		&ResourceCheck{},
		&Evasion{},
		&Defense{},
		&Damage{},
		&Apply{},
		&Emit{},
	)
}
