// Package engine assembles the catalog, combatant store, ATB scheduler,
// action selector, and random source into a single-threaded, cooperative
// step() loop: each call to Facade.Step runs one ordered pipeline pass and
// returns the events it produced.
//
// engine holds no stage implementations itself (see engine/stages); it
// defines the shared StepContext stages mutate, the Pipeline/Stage type
// aliases bound to that context, and the Facade that drives them.
package engine
