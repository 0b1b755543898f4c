package stages

import (
	"github.com/jianghu-sim/battlecore/atb"
	"github.com/jianghu-sim/battlecore/engine"
	"github.com/jianghu-sim/battlecore/rpgerr"
)

// Scheduling invokes the ATB scheduler to pick the acting combatant, then
// decrements that combatant's cooldowns once.
type Scheduling struct {
	Scheduler *atb.Scheduler
}

// Name implements engine.Stage.
func (s *Scheduling) Name() string { return "scheduling" }

// Applicable implements engine.Stage: runs once per step, before an actor
// has been chosen.
func (s *Scheduling) Applicable(ctx *engine.StepContext) bool {
	return ctx.ActorID == ""
}

// Run implements engine.Stage.
func (s *Scheduling) Run(ctx *engine.StepContext) error {
	actorID, err := s.Scheduler.Select(ctx.Store)
	if err != nil {
		if rpgerr.IsSchedulerStuck(err) {
			ctx.SchedulerStuck = true
		}
		return rpgerr.WrapWithCodeCtx(ctx.Ctx, err, rpgerr.CodeStageFatal, "scheduling: select actor")
	}
	ctx.ActorID = actorID
	ctx.Ctx = rpgerr.WithMetadata(ctx.Ctx, rpgerr.Meta("actor_id", string(actorID)))
	return ctx.Store.DecrementCooldowns(actorID)
}

// Criticality implements engine.Stage.
func (s *Scheduling) Criticality() engine.Criticality { return engine.Fatal }

// AlwaysRuns implements engine.Stage.
func (s *Scheduling) AlwaysRuns() bool { return false }
