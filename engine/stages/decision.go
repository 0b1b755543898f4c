package stages

import (
	"github.com/jianghu-sim/battlecore/engine"
	"github.com/jianghu-sim/battlecore/rpgerr"
	"github.com/jianghu-sim/battlecore/selector"
)

// Decision invokes the action selector to pick a skill and target
// for the scheduled actor. If nothing is viable it emits a NOOP itself and
// aborts the rest of the step.
type Decision struct{}

// Name implements engine.Stage.
func (d *Decision) Name() string { return "decision" }

// Applicable implements engine.Stage.
func (d *Decision) Applicable(ctx *engine.StepContext) bool {
	return ctx.ActorID != "" && ctx.SkillID == ""
}

// Run implements engine.Stage.
func (d *Decision) Run(ctx *engine.StepContext) error {
	actor, ok := ctx.Store.ByID(ctx.ActorID)
	if !ok {
		return rpgerr.NewfCtx(ctx.Ctx, rpgerr.CodeStageFatal, "decision: scheduled actor %q not found", ctx.ActorID)
	}

	sel, ok := selector.Select(actor, ctx.Store, ctx.Catalog)
	if !ok {
		ctx.NoopReason = "no_viable_action"
		ctx.Emit(engine.BattleEvent{
			Kind:    engine.EventNoop,
			ActorID: ctx.ActorID,
			Reason:  ctx.NoopReason,
		})
		ctx.Abort()
		return nil
	}

	ctx.SkillID = sel.SkillID
	ctx.Tier = sel.Tier
	ctx.TargetID = sel.TargetID
	ctx.Ctx = rpgerr.WithMetadata(ctx.Ctx,
		rpgerr.Meta("skill_id", string(sel.SkillID)),
		rpgerr.Meta("tier", int(sel.Tier)),
		rpgerr.Meta("target_id", string(sel.TargetID)),
	)
	return nil
}

// Criticality implements engine.Stage.
func (d *Decision) Criticality() engine.Criticality { return engine.Fatal }

// AlwaysRuns implements engine.Stage.
func (d *Decision) AlwaysRuns() bool { return false }
