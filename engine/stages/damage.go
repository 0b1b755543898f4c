package stages

import (
	"context"
	"math"

	"github.com/jianghu-sim/battlecore/core/chain"
	"github.com/jianghu-sim/battlecore/engine"
	"github.com/jianghu-sim/battlecore/events"
	"github.com/jianghu-sim/battlecore/rpgerr"
)

// Damage chain stages, applied in this fixed order: defense coefficient
// (the defense stage's reduction, if any), evasion multiplier (the evasion
// stage's partial-miss reduction, if any), then the crit multiplier.
const (
	chainStageDefense chain.Stage = "defense_coefficient"
	chainStageEvasion chain.Stage = "evasion_multiplier"
	chainStageCrit    chain.Stage = "crit_multiplier"
)

// Damage rolls hit against hit_chance, and on a hit computes final damage
// by layering the accumulated defense coefficient, evasion multiplier, and
// a possible crit multiplier onto the base damage through a
// core/chain.Chain, so each adjustment stays a separately named link.
type Damage struct{}

// Name implements engine.Stage.
func (d *Damage) Name() string { return "damage" }

// Applicable implements engine.Stage.
func (d *Damage) Applicable(ctx *engine.StepContext) bool {
	return ctx.SkillID != ""
}

// Criticality implements engine.Stage.
func (d *Damage) Criticality() engine.Criticality { return engine.Fatal }

// AlwaysRuns implements engine.Stage.
func (d *Damage) AlwaysRuns() bool { return false }

// Run implements engine.Stage.
func (d *Damage) Run(ctx *engine.StepContext) error {
	tier, ok := ctx.Catalog.Lookup(ctx.SkillID, ctx.Tier)
	if !ok {
		return rpgerr.NewfCtx(ctx.Ctx, rpgerr.CodeStageFatal, "damage: skill %q tier %d not in catalog", ctx.SkillID, ctx.Tier)
	}

	ctx.DamageResolved = true
	ctx.Hit = ctx.RNG.GenBool(tier.HitChance)
	if !ctx.Hit {
		ctx.FinalDamage = 0
		ctx.DamageBucket = engine.BucketNone
		return nil
	}

	target, ok := ctx.Store.ByID(ctx.TargetID)
	if !ok {
		return rpgerr.NewfCtx(ctx.Ctx, rpgerr.CodeStageFatal, "damage: target %q not found", ctx.TargetID)
	}

	ctx.Critical = ctx.RNG.GenBool(tier.CriticalChance)

	base := math.Round(float64(tier.BaseDamage) * tier.PowerMultiplier)
	result, err := d.buildChain(ctx).Execute(ctx.Ctx, base)
	if err != nil {
		return rpgerr.WrapWithCodeCtx(ctx.Ctx, err, rpgerr.CodeStageFatal, "damage: chain execute")
	}

	final := int(math.Round(result))
	if final < 0 {
		final = 0
	}
	ctx.FinalDamage = final
	ctx.DamageBucket = engine.DamageBucketFor(final, target.Stats.MaxHP)
	return nil
}

// buildChain assembles a fresh chain per call: the per-step coefficients
// it closes over (ctx.DefenseCoefficient, ctx.EvasionMultiplier,
// ctx.Critical) are only known once the evasion and defense stages have
// run, so the chain cannot be built once and reused across steps.
func (d *Damage) buildChain(ctx *engine.StepContext) chain.Chain[float64] {
	c := events.NewStagedChain[float64]([]chain.Stage{chainStageDefense, chainStageEvasion, chainStageCrit})

	_ = c.Add(chainStageDefense, "defense", func(_ context.Context, dmg float64) (float64, error) {
		return dmg * ctx.DefenseCoefficient, nil
	})
	_ = c.Add(chainStageEvasion, "evasion", func(_ context.Context, dmg float64) (float64, error) {
		return dmg * ctx.EvasionMultiplier, nil
	})
	_ = c.Add(chainStageCrit, "crit", func(_ context.Context, dmg float64) (float64, error) {
		if !ctx.Critical {
			return dmg, nil
		}
		return dmg * ctx.CritMultiplier, nil
	})

	return c
}
