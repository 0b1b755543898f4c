// Package events provides a game-agnostic event bus for loose coupling between
// toolkit components and game systems without requiring direct dependencies.
//
// Purpose:
// This package enables components to communicate without direct dependencies,
// supporting observable and extensible game systems through event-driven
// architecture. It allows the toolkit to remain decoupled while still
// coordinating complex interactions.
//
// Scope:
//   - Event bus implementation with ref-keyed pub/sub
//   - Event interface and a BaseEvent implementation
//   - Typed context values via TypedKey/Set/Get generics
//   - Modifiers attached to an event's context for handlers to contribute to
//   - Deferred actions (unsubscribe/republish) returned from handlers
//   - Synchronous event delivery (same goroutine)
//   - No game-specific event types
//
// Non-Goals:
//   - Game event definitions: define these in your game implementation
//   - Event persistence: use external storage if needed
//   - Network transport: this is for in-process events only
//   - Async delivery: events are delivered synchronously
//   - Event ordering guarantees: no order guarantees between subscribers
//   - Event replay: no built-in event sourcing
//
// Integration:
// A host embeds BaseEvent in its own event type, gives it a *core.Ref, and
// subscribes handlers against that ref. This package does not know what a
// battle step or a combatant is; it only routes refs to handlers.
//
// Example:
//
//	bus := events.NewBus()
//	keyDamage := events.NewTypedKey[int]("damage")
//
//	attackRef := core.MustNewRef(core.RefInput{Module: "battlecore", Type: "event", Value: "attack"})
//	bus.Subscribe(attackRef, func(e events.Event) error {
//	    dmg, _ := events.Get(e.Context(), keyDamage)
//	    fmt.Printf("attack dealt %d damage\n", dmg)
//	    return nil
//	})
//
//	evt := events.NewBaseEvent(attackRef)
//	events.Set(evt.Context(), keyDamage, 12)
//	bus.Publish(evt)
package events
