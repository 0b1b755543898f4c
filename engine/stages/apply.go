package stages

import (
	"github.com/jianghu-sim/battlecore/engine"
	"github.com/jianghu-sim/battlecore/rpgerr"
)

// Apply spends the actor's qi, sets the skill's cooldown, and on a
// hit applies the computed damage to the target. If the target's HP
// reaches 0 as a result, it queues a DEFEAT marker for the emit stage.
type Apply struct{}

// Name implements engine.Stage.
func (a *Apply) Name() string { return "apply" }

// Applicable implements engine.Stage.
func (a *Apply) Applicable(ctx *engine.StepContext) bool {
	return ctx.SkillID != "" && ctx.DamageResolved
}

// Run implements engine.Stage.
func (a *Apply) Run(ctx *engine.StepContext) error {
	tier, ok := ctx.Catalog.Lookup(ctx.SkillID, ctx.Tier)
	if !ok {
		return rpgerr.NewfCtx(ctx.Ctx, rpgerr.CodeStageFatal, "apply: skill %q tier %d not in catalog", ctx.SkillID, ctx.Tier)
	}

	if err := ctx.Store.SpendQi(ctx.ActorID, tier.QiCost); err != nil {
		return rpgerr.WrapWithCodeCtx(ctx.Ctx, err, rpgerr.CodeStageFatal, "apply: spend qi")
	}
	if err := ctx.Store.SetCooldown(ctx.ActorID, ctx.SkillID, tier.Cooldown); err != nil {
		return rpgerr.WrapWithCodeCtx(ctx.Ctx, err, rpgerr.CodeStageFatal, "apply: set cooldown")
	}

	if !ctx.Hit {
		return nil
	}

	if err := ctx.Store.ApplyDamage(ctx.TargetID, ctx.FinalDamage); err != nil {
		return rpgerr.WrapWithCodeCtx(ctx.Ctx, err, rpgerr.CodeStageFatal, "apply: apply damage")
	}

	target, ok := ctx.Store.ByID(ctx.TargetID)
	if ok && target.IsDowned() {
		ctx.DefeatQueued = true
	}
	return nil
}

// Criticality implements engine.Stage.
func (a *Apply) Criticality() engine.Criticality { return engine.Fatal }

// AlwaysRuns implements engine.Stage.
func (a *Apply) AlwaysRuns() bool { return false }
