package engine

import (
	"sync"

	"github.com/jianghu-sim/battlecore/core"
	"github.com/jianghu-sim/battlecore/events"
)

// eventRefs caches the *core.Ref for each EventKind so Bus subscribers can
// compare against a stable pointer (events.Bus routes by ref identity, not
// by value equality).
var (
	eventRefsMu sync.Mutex
	eventRefs   = make(map[EventKind]*core.Ref)
)

// KeyActor and KeyTarget are the typed context keys under which publish
// attaches the acting and defending combatants to each bus event, as
// core.Entity snapshots taken at publish time. Subscribers read them with
// events.Get instead of re-querying the store mid-handler.
var (
	KeyActor  = events.NewTypedKey[core.Entity]("actor")
	KeyTarget = events.NewTypedKey[core.Entity]("target")
)

func refForKind(kind EventKind) *core.Ref {
	eventRefsMu.Lock()
	defer eventRefsMu.Unlock()
	if ref, ok := eventRefs[kind]; ok {
		return ref
	}
	ref := core.MustNewRef(core.RefInput{Module: "battlecore", Type: "event", Value: string(kind)})
	eventRefs[kind] = ref
	return ref
}

// battleBusEvent adapts a BattleEvent to events.Event so it can travel
// through an events.Bus. Subscribers read the original BattleEvent back via
// the Battle field; nothing about combat resolution depends on this type,
// it exists purely so a host can observe steps without the engine knowing
// what that host is.
type battleBusEvent struct {
	*events.BaseEvent
	Battle BattleEvent
}

// newBattleBusEvent builds the bus-travelling wrapper for e, recording a
// "critical_hit" Modifier (its value is the event's final damage) on the
// base event's context whenever the step rolled a critical hit. Subscribers that only care about the raw
// BattleEvent read Battle directly; ones that want to know what adjusted
// the final number can call Context().GetModifiers() instead.
func newBattleBusEvent(e BattleEvent) *battleBusEvent {
	evt := &battleBusEvent{
		BaseEvent: events.NewBaseEvent(refForKind(e.Kind)),
		Battle:    e,
	}
	if e.Critical {
		evt.Context().AddModifier(events.NewSimpleModifier("critical_hit", "multiplicative", "damage", 0, e.Damage))
	}
	return evt
}

// SetEventBus attaches bus as Facade's publish target. Every event a Step
// produces is published after the step completes, in event order. A nil
// bus (the default) disables publishing entirely; Facade never requires
// one to function.
func (f *Facade) SetEventBus(bus *events.Bus) {
	f.bus = bus
}

// publish sends each of events to f.bus, if one is attached. Each wrapped
// event carries the actor and target as core.Entity snapshots under
// KeyActor/KeyTarget. Publish errors are swallowed: a subscriber's
// cascade-depth guard firing must never abort an otherwise-valid battle
// step.
func (f *Facade) publish(evts []BattleEvent) {
	if f.bus == nil {
		return
	}
	for _, e := range evts {
		evt := newBattleBusEvent(e)
		if actor, ok := f.store.ByID(e.ActorID); ok {
			events.Set(evt.Context(), KeyActor, core.Entity(&actor))
		}
		if e.TargetID != "" {
			if target, ok := f.store.ByID(e.TargetID); ok {
				events.Set(evt.Context(), KeyTarget, core.Entity(&target))
			}
		}
		_ = f.bus.Publish(evt)
	}
}
