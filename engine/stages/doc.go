// Package stages implements the eight resolution stages run by one
// engine.Facade.Step() call: scheduling, decision, resource check,
// evasion, defense, damage calculation, state apply, and event emission.
//
// Each stage is a concrete type holding only the collaborators it needs
// (only Scheduling holds one, the scheduler; the others read the store,
// catalog and random source from the StepContext) and implements
// engine.Stage. Default() assembles
// them into canonical order; a host that wants a custom pipeline builds one
// directly with engine.NewPipeline instead.
package stages
