package stages

import (
	"github.com/jianghu-sim/battlecore/catalog"
	"github.com/jianghu-sim/battlecore/engine"
)

// Evasion runs first among the resolution rolls: if the target has a
// movement-type skill equipped, its
// hit_chance is rolled as the attacking actor's effective hit. A miss
// means the dodge attempt succeeds; what happens next depends on whether
// the skill tier carries a PartialHitChance. Without one, the attack fully
// whiffs: a DODGE event is emitted here and the remainder of the step is
// aborted. With one, a second roll decides whether this particular miss is
// downgraded to a partial hit — the attack still lands, but the damage
// chain applies PartialHitMultiplier (via ctx.EvasionMultiplier) instead of
// a full miss.
type Evasion struct{}

// Name implements engine.Stage.
func (e *Evasion) Name() string { return "evasion" }

// Applicable implements engine.Stage.
func (e *Evasion) Applicable(ctx *engine.StepContext) bool {
	target, ok := ctx.Store.ByID(ctx.TargetID)
	if !ok {
		return false
	}
	_, _, _, found := findEquippedTier(target, ctx.Catalog, catalog.TypeMovement)
	return found
}

// Run implements engine.Stage.
func (e *Evasion) Run(ctx *engine.StepContext) error {
	target, ok := ctx.Store.ByID(ctx.TargetID)
	if !ok {
		return nil
	}
	tier, _, _, found := findEquippedTier(target, ctx.Catalog, catalog.TypeMovement)
	if !found {
		return nil
	}

	effectiveHit := ctx.RNG.GenBool(tier.HitChance)
	if effectiveHit {
		return nil
	}

	if tier.PartialHitChance != nil && ctx.RNG.GenBool(*tier.PartialHitChance) {
		ctx.EvasionMultiplier *= tier.PartialHitMultiplier
		return nil
	}

	ctx.Hit = false
	ctx.Emit(engine.BattleEvent{
		Kind:         engine.EventDodge,
		ActorID:      ctx.ActorID,
		TargetID:     ctx.TargetID,
		SkillID:      ctx.SkillID,
		Tier:         ctx.Tier,
		DamageBucket: engine.BucketNone,
	})
	ctx.Abort()
	return nil
}

// Criticality implements engine.Stage.
func (e *Evasion) Criticality() engine.Criticality { return engine.Recoverable }

// AlwaysRuns implements engine.Stage.
func (e *Evasion) AlwaysRuns() bool { return false }
