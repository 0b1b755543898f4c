package stages

import (
	"github.com/jianghu-sim/battlecore/catalog"
	"github.com/jianghu-sim/battlecore/engine"
)

// Defense runs after evasion: if the target has a defense-type skill
// equipped, it reduces the damage coefficient applied during damage
// calculation. Most defense tiers always
// trigger and consume no randomness; a tier that declares DefendChance
// only triggers on a successful roll, consumed here (ahead of the hit and
// crit rolls, per the step's fixed randomness-consumption order).
type Defense struct{}

// Name implements engine.Stage.
func (d *Defense) Name() string { return "defense" }

// Applicable implements engine.Stage.
func (d *Defense) Applicable(ctx *engine.StepContext) bool {
	target, ok := ctx.Store.ByID(ctx.TargetID)
	if !ok {
		return false
	}
	_, _, _, found := findEquippedTier(target, ctx.Catalog, catalog.TypeDefense)
	return found
}

// Run implements engine.Stage.
func (d *Defense) Run(ctx *engine.StepContext) error {
	target, ok := ctx.Store.ByID(ctx.TargetID)
	if !ok {
		return nil
	}
	tier, _, _, found := findEquippedTier(target, ctx.Catalog, catalog.TypeDefense)
	if !found {
		return nil
	}

	if tier.DefendChance != nil && !ctx.RNG.GenBool(*tier.DefendChance) {
		return nil
	}

	ctx.DefenseCoefficient *= tier.PowerMultiplier
	ctx.Emit(engine.BattleEvent{
		Kind:         engine.EventDefend,
		ActorID:      ctx.ActorID,
		TargetID:     ctx.TargetID,
		SkillID:      ctx.SkillID,
		Tier:         ctx.Tier,
		DamageBucket: engine.BucketNone,
	})
	return nil
}

// Criticality implements engine.Stage.
func (d *Defense) Criticality() engine.Criticality { return engine.Recoverable }

// AlwaysRuns implements engine.Stage.
func (d *Defense) AlwaysRuns() bool { return false }
