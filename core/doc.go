// Package core provides fundamental interfaces and types that identify game
// objects in the battle engine without imposing any combat-specific
// attributes.
//
// Purpose:
// This package establishes the base contracts every identifiable game object
// fulfills, providing identity and type information without imposing stats or
// behaviors. It is the foundation the event plumbing builds on.
//
// Scope:
//   - Entity interface: basic identity contract (ID, Type)
//   - Ref: structured module:type:value identifiers for event routing
//   - Error types: common errors used across packages
//   - No combat logic, stats, or behaviors
//   - No persistence or storage concerns
//   - Pure interfaces and contracts
//
// Non-Goals:
//   - Combat statistics: HP, qi, agility belong in the combatant package
//   - Skill parameters: tier data belongs in the catalog package
//   - Resolution rules: stage logic belongs in engine/stages
//   - Persistence: storage and serialization belong to the host
//
// Integration:
// This package is imported by the combatant, events, and engine packages:
// combatant.Combatant implements Entity, the event bus routes by Ref, and
// the engine attaches combatants to published bus events as Entity values.
// It has no dependencies on other packages in this module, keeping it at
// the base of the dependency hierarchy.
//
// Example:
//
//	// combatant.Combatant implements the Entity interface, so a bus
//	// subscriber can handle whoever acted without importing combatant:
//	actor, ok := events.Get(evt.Context(), engine.KeyActor)
//	if ok {
//	    log.Printf("%s %s acted", actor.GetType(), actor.GetID())
//	}
package core
