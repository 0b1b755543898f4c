package stages

import (
	"github.com/jianghu-sim/battlecore/engine"
	"github.com/jianghu-sim/battlecore/rpgerr"
)

// ResourceCheck verifies the chosen skill's qi cost and cooldown are
// actually satisfied. A violation here means the selector and store
// disagreed (or the selector's view was stale) — it is converted to a
// NOOP event carrying the reason, never allowed to escape as a raised
// error: resource shortfalls are gameplay outcomes, not failures.
type ResourceCheck struct{}

// Name implements engine.Stage.
func (r *ResourceCheck) Name() string { return "resource_check" }

// Applicable implements engine.Stage.
func (r *ResourceCheck) Applicable(ctx *engine.StepContext) bool {
	return ctx.SkillID != ""
}

// Run implements engine.Stage.
func (r *ResourceCheck) Run(ctx *engine.StepContext) error {
	actor, ok := ctx.Store.ByID(ctx.ActorID)
	if !ok {
		return rpgerr.NewfCtx(ctx.Ctx, rpgerr.CodeStageFatal, "resource_check: actor %q not found", ctx.ActorID)
	}
	tier, ok := ctx.Catalog.Lookup(ctx.SkillID, ctx.Tier)
	if !ok {
		return rpgerr.NewfCtx(ctx.Ctx, rpgerr.CodeStageFatal, "resource_check: skill %q tier %d not in catalog", ctx.SkillID, ctx.Tier)
	}

	reason := ""
	switch {
	case actor.Stats.Qi < tier.QiCost:
		reason = "resource"
	case actor.CooldownFor(ctx.SkillID) != 0:
		reason = "cooldown"
	}
	if reason == "" {
		return nil
	}

	ctx.NoopReason = reason
	ctx.Emit(engine.BattleEvent{
		Kind:    engine.EventNoop,
		ActorID: ctx.ActorID,
		SkillID: ctx.SkillID,
		Tier:    ctx.Tier,
		Reason:  reason,
	})
	ctx.Abort()
	return nil
}

// Criticality implements engine.Stage.
func (r *ResourceCheck) Criticality() engine.Criticality { return engine.Fatal }

// AlwaysRuns implements engine.Stage.
func (r *ResourceCheck) AlwaysRuns() bool { return false }
