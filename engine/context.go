package engine

import (
	"context"

	"github.com/jianghu-sim/battlecore/atb"
	"github.com/jianghu-sim/battlecore/catalog"
	"github.com/jianghu-sim/battlecore/combatant"
	"github.com/jianghu-sim/battlecore/rng"
	"github.com/jianghu-sim/battlecore/rpgerr"
)

// StepContext is the plain, stack-lived record threaded through one
// pipeline pass. Stages mutate only their documented fields; nothing
// retains a reference to it past the Step() call that created it.
//
// It carries two kinds of state: the collaborators shared across every
// step of one engine run (Store, Catalog, RNG, Scheduler, CritMultiplier),
// and the per-step scratch fields stages populate in order.
type StepContext struct {
	Store          *combatant.Store
	Catalog        *catalog.Catalog
	RNG            rng.Source
	Scheduler      *atb.Scheduler
	CritMultiplier float64

	// Ctx accumulates rpgerr metadata (step index, then actor/skill/target
	// ids as scheduling and decision populate them) via rpgerr.WithMetadata.
	// Stages that build
	// a StageFatal error pass this to the corresponding rpgerr *Ctx
	// constructor (e.g. NewfCtx, WrapWithCodeCtx) so every fatal error
	// carries the full per-step context without each call site having to
	// assemble it by hand.
	Ctx context.Context

	ActorID  combatant.ID
	TargetID combatant.ID
	SkillID  catalog.SkillID
	Tier     catalog.Tier

	Hit          bool
	Critical     bool
	FinalDamage  int
	DamageBucket DamageBucket

	// EvasionMultiplier and DefenseCoefficient start at 1.0 (no effect) and
	// are only ever reduced by the evasion and defense stages.
	EvasionMultiplier  float64
	DefenseCoefficient float64

	// DefeatQueued is set by the apply stage when the target's HP reaches 0;
	// the emit stage reads it to decide whether to append a DEFEAT event
	// after the primary one.
	DefeatQueued bool

	// NoopReason is set by the decision and resource-check stages when no
	// event-worthy action happens; carries forward into the emitted NOOP
	// event.
	NoopReason string

	// SchedulerStuck is set by the scheduling stage when the ATB scheduler
	// exhausts its iteration bound; the Facade reads it to set the "stuck"
	// battle-over reason.
	SchedulerStuck bool

	// DamageResolved is set by the damage stage once it runs, regardless of
	// hit/miss. The emit stage uses it to decide whether the normal
	// ATTACK(+DEFEAT) path already happened, versus an early NOOP/DODGE
	// exit that emitted its own event.
	DamageResolved bool

	Events   []BattleEvent
	LogLines []string

	continueRun bool
	errored     bool
}

// NewStepContext builds a StepContext with its defaults set: the run
// continues unless a stage aborts it, and the multiplicative modifiers
// start at identity (1.0). Ctx starts carrying the step index, the one
// piece of metadata every stage already has before it does anything; each
// stage that learns more (actor, skill, target) layers it on with
// rpgerr.WithMetadata as it goes.
func NewStepContext(store *combatant.Store, cat *catalog.Catalog, source rng.Source, sched *atb.Scheduler, critMultiplier float64, stepIndex int) *StepContext {
	return &StepContext{
		Store:              store,
		Catalog:            cat,
		RNG:                source,
		Scheduler:          sched,
		CritMultiplier:     critMultiplier,
		EvasionMultiplier:  1.0,
		DefenseCoefficient: 1.0,
		continueRun:        true,
		Ctx:                rpgerr.WithMetadata(context.Background(), rpgerr.Meta("step_index", stepIndex)),
	}
}

// ShouldContinue implements pipeline.Context.
func (c *StepContext) ShouldContinue() bool { return c.continueRun }

// Abort implements pipeline.Context.
func (c *StepContext) Abort() { c.continueRun = false }

// MarkErrored implements pipeline.Context.
func (c *StepContext) MarkErrored() { c.errored = true }

// Log implements pipeline.Context.
func (c *StepContext) Log(line string) {
	c.LogLines = append(c.LogLines, line)
}

// Errored reports whether a Fatal stage failure occurred this step.
func (c *StepContext) Errored() bool { return c.errored }

// Emit appends e to this step's event list. Stages are the only callers;
// engine.Facade only ever reads Events after Pipeline.Run returns.
func (c *StepContext) Emit(e BattleEvent) {
	c.Events = append(c.Events, e)
}
