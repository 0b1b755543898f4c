package engine

import (
	"github.com/jianghu-sim/battlecore/catalog"
	"github.com/jianghu-sim/battlecore/combatant"
)

// EventKind tags a BattleEvent's wire-level type.
type EventKind string

// Event kinds, stable at the wire level.
const (
	EventAttack EventKind = "ATTACK"
	EventDodge  EventKind = "DODGE"
	EventDefend EventKind = "DEFEND"
	EventDefeat EventKind = "DEFEAT"
	EventNoop   EventKind = "NOOP"
)

// DamageBucket coarsely categorizes damage relative to the target's max HP,
// for downstream narration selection.
type DamageBucket string

// Damage buckets.
const (
	BucketNone   DamageBucket = "none"
	BucketLow    DamageBucket = "low"
	BucketMedium DamageBucket = "medium"
	BucketHigh   DamageBucket = "high"
)

// DamageBucketFor classifies damage against target's max HP: high >= 30%,
// medium >= 10%, else low; none when damage is zero.
func DamageBucketFor(damage, maxHP int) DamageBucket {
	if damage <= 0 {
		return BucketNone
	}
	if maxHP <= 0 {
		return BucketLow
	}
	ratio := float64(damage) / float64(maxHP)
	switch {
	case ratio >= 0.30:
		return BucketHigh
	case ratio >= 0.10:
		return BucketMedium
	default:
		return BucketLow
	}
}

// BattleEvent is one tagged record in the engine's event log. SkillID, Tier,
// TargetID, and Reason are optional; their zero values mean "not set".
type BattleEvent struct {
	Kind         EventKind
	ActorID      combatant.ID
	TargetID     combatant.ID
	SkillID      catalog.SkillID
	Tier         catalog.Tier
	Hit          bool
	Critical     bool
	Damage       int
	DamageBucket DamageBucket
	Reason       string
}

// NarrationContext is the plain record MapEventForNarration returns: it
// never exposes engine internals, only display-ready fields.
type NarrationContext struct {
	NarrativeType         string
	ActorName             string
	TargetName            string
	SkillName             string
	TierName              string
	Hit                   bool
	Critical              bool
	DamageAmount          int
	DamageBucket          DamageBucket
	TierNarrativeTemplate string
}

// narrativeType maps an event's kind to its Chinese narrative category,
// with the critical override taking priority whenever critical is true.
func narrativeType(e BattleEvent) string {
	if e.Critical {
		return "暴击"
	}
	switch e.Kind {
	case EventDodge:
		return "闪避"
	case EventDefend:
		return "抵挡"
	default:
		return "攻击"
	}
}
