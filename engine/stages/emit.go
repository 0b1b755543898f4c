package stages

import "github.com/jianghu-sim/battlecore/engine"

// Emit always runs, even after an earlier stage aborted the step. If the
// damage stage resolved, it emits the primary ATTACK event with the final
// computed fields. Stages that abort before damage runs — decision's and
// resource_check's NOOP, evasion's DODGE — have already emitted their own
// substitute event, so Emit leaves those alone rather than double-emitting.
// A queued DEFEAT, from the apply stage, always follows whatever primary
// event ran.
type Emit struct{}

// Name implements engine.Stage.
func (e *Emit) Name() string { return "emit" }

// Applicable implements engine.Stage: this stage always applies.
func (e *Emit) Applicable(ctx *engine.StepContext) bool { return true }

// Run implements engine.Stage.
func (e *Emit) Run(ctx *engine.StepContext) error {
	if ctx.DamageResolved {
		ctx.Emit(engine.BattleEvent{
			Kind:         engine.EventAttack,
			ActorID:      ctx.ActorID,
			TargetID:     ctx.TargetID,
			SkillID:      ctx.SkillID,
			Tier:         ctx.Tier,
			Hit:          ctx.Hit,
			Critical:     ctx.Critical,
			Damage:       ctx.FinalDamage,
			DamageBucket: ctx.DamageBucket,
		})
	}

	if ctx.DefeatQueued {
		ctx.Emit(engine.BattleEvent{
			Kind:         engine.EventDefeat,
			ActorID:      ctx.ActorID,
			TargetID:     ctx.TargetID,
			DamageBucket: engine.BucketNone,
		})
	}

	return nil
}

// Criticality implements engine.Stage.
func (e *Emit) Criticality() engine.Criticality { return engine.Recoverable }

// AlwaysRuns implements engine.Stage.
func (e *Emit) AlwaysRuns() bool { return true }
