package engine

import (
	"github.com/jianghu-sim/battlecore/atb"
	"github.com/jianghu-sim/battlecore/catalog"
	"github.com/jianghu-sim/battlecore/combatant"
	"github.com/jianghu-sim/battlecore/events"
	"github.com/jianghu-sim/battlecore/rng"
)

// BattleOverReason names why IsBattleOver became true. The zero value
// means the battle is still ongoing.
type BattleOverReason string

// Battle-over reasons.
const (
	ReasonNone              BattleOverReason = ""
	ReasonFactionEliminated BattleOverReason = "faction-elimination"
	ReasonStuck             BattleOverReason = "stuck"
	ReasonMaxSteps          BattleOverReason = "max-steps"
)

// StepResult wraps one Step() call's outcome: the zero-based index of the
// step just run, the events it produced, and whether the battle ended as
// of that step. Step itself still returns []BattleEvent directly;
// StepResult is Facade.LastStep()'s richer view of the same call.
type StepResult struct {
	Index      int
	Events     []BattleEvent
	BattleOver bool
}

// Facade is the engine's single entry point: it owns the state store,
// catalog, random source, scheduler, and pipeline, and exposes the
// step-driven API a host drives the simulation through.
//
// Facade holds no mutex: callers must single-thread one engine instance
// themselves, and a host that wants parallel simulations constructs
// independent Facades. Adding a mutex here would silently paper over a
// caller violating that contract instead of leaving it visible.
type Facade struct {
	cfg       Config
	store     *combatant.Store
	catalog   *catalog.Catalog
	rng       rng.Source
	scheduler *atb.Scheduler
	pipeline  *Pipeline

	bus *events.Bus

	events    []BattleEvent
	stepIndex int
	reason    BattleOverReason
	lastStep  StepResult
}

// NewFacade constructs a Facade. pipeline is required — callers needing
// the default eight-stage resolution order should build it with
// engine/stages.Default(...) and pass it here; engine itself never
// imports engine/stages, since that package imports engine for the Stage
// and StepContext types it implements.
func NewFacade(cfg Config, store *combatant.Store, cat *catalog.Catalog, source rng.Source, scheduler *atb.Scheduler, pl *Pipeline) *Facade {
	return &Facade{
		cfg:       cfg.normalized(),
		store:     store,
		catalog:   cat,
		rng:       source,
		scheduler: scheduler,
		pipeline:  pl,
	}
}

// Step executes one pipeline pass and returns the events it produced. If
// the battle is already over, Step is a no-op that returns nil — this is
// what makes RunToCompletion idempotent on a terminated engine.
func (f *Facade) Step() []BattleEvent {
	if f.IsBattleOver() {
		return nil
	}

	ctx := NewStepContext(f.store, f.catalog, f.rng, f.scheduler, f.cfg.CritMultiplier, f.stepIndex)
	f.pipeline.Run(ctx)

	if ctx.SchedulerStuck {
		f.reason = ReasonStuck
	}

	f.events = append(f.events, ctx.Events...)
	f.publish(ctx.Events)
	index := f.stepIndex
	f.stepIndex++

	battleOver := f.IsBattleOver()
	f.lastStep = StepResult{Index: index, Events: ctx.Events, BattleOver: battleOver}

	return ctx.Events
}

// IsBattleOver reports true when at most one faction has living members,
// the scheduler got stuck, or the configured step safety bound is
// reached.
func (f *Facade) IsBattleOver() bool {
	if f.reason != ReasonNone {
		return true
	}
	if len(f.store.FactionsAlive()) <= 1 {
		f.reason = ReasonFactionEliminated
		return true
	}
	if f.stepIndex >= f.cfg.MaxSteps {
		f.reason = ReasonMaxSteps
		return true
	}
	return false
}

// Reason returns why the battle ended, or ReasonNone if it hasn't.
func (f *Facade) Reason() BattleOverReason {
	return f.reason
}

// RunToCompletion calls Step repeatedly until IsBattleOver, returning every
// event produced across all of those steps.
func (f *Facade) RunToCompletion() []BattleEvent {
	var all []BattleEvent
	for !f.IsBattleOver() {
		all = append(all, f.Step()...)
	}
	return all
}

// Events returns the full event log accumulated so far.
func (f *Facade) Events() []BattleEvent {
	out := make([]BattleEvent, len(f.events))
	copy(out, f.events)
	return out
}

// CurrentStepIndex returns the number of steps run so far.
func (f *Facade) CurrentStepIndex() int {
	return f.stepIndex
}

// LastStep returns the StepResult of the most recent Step() call.
func (f *Facade) LastStep() StepResult {
	return f.lastStep
}

// AddStage inserts stage into the pipeline at position (see
// pipeline.Pipeline.AddStage for clamping behavior).
func (f *Facade) AddStage(stage Stage, position int) {
	f.pipeline.AddStage(stage, position)
}

// RemoveStage removes the named stage from the pipeline, reporting
// whether one was found.
func (f *Facade) RemoveStage(name string) bool {
	return f.pipeline.RemoveStage(name)
}

// MapEventForNarration is a pure function of e and the catalog: calling it
// twice for the same event yields equal records.
func (f *Facade) MapEventForNarration(e BattleEvent) NarrationContext {
	nc := NarrationContext{
		NarrativeType: narrativeType(e),
		Hit:           e.Hit,
		Critical:      e.Critical,
		DamageAmount:  e.Damage,
		DamageBucket:  e.DamageBucket,
	}

	if actor, ok := f.store.ByID(e.ActorID); ok {
		nc.ActorName = actor.DisplayName
	}
	if e.TargetID != "" {
		if target, ok := f.store.ByID(e.TargetID); ok {
			nc.TargetName = target.DisplayName
		}
	}
	if e.SkillID != "" {
		nc.SkillName = string(e.SkillID)
		if tier, ok := f.catalog.Lookup(e.SkillID, e.Tier); ok {
			nc.TierName = tier.TierName
			nc.TierNarrativeTemplate = tier.NarrativeTemplate
		}
	}

	return nc
}
