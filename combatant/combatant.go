package combatant

import (
	"github.com/jianghu-sim/battlecore/catalog"
	"github.com/jianghu-sim/battlecore/core"
)

// ID identifies a combatant. It is opaque to the engine but must be totally
// ordered (Go's built-in string ordering) so tie-breaks are deterministic.
type ID string

// Stats holds a combatant's numeric attributes. All fields are non-negative;
// HP <= MaxHP and Qi <= MaxQi are invariants enforced at Store construction
// and preserved by every mutator.
type Stats struct {
	HP, MaxHP int
	Qi, MaxQi int
	Strength  int
	Agility   int
	Defense   int
}

// EquippedSkill is one entry in a combatant's equipped skill list.
type EquippedSkill struct {
	SkillID catalog.SkillID
	Tier    catalog.Tier
}

// Combatant is one participant's full state. TimeUnits is the ATB
// scheduler's fixed-point accumulator (milli-units); only the atb package
// mutates it, via Store.ByIDMut.
type Combatant struct {
	ID          ID
	DisplayName string
	Faction     string
	Stats       Stats
	Equipped    []EquippedSkill
	Cooldowns   map[catalog.SkillID]int
	TimeUnits   int64
}

var _ core.Entity = (*Combatant)(nil)

// GetID implements core.Entity.
func (c *Combatant) GetID() string {
	return string(c.ID)
}

// GetType implements core.Entity.
func (c *Combatant) GetType() string {
	return "combatant"
}

// IsDowned reports whether the combatant has been reduced to 0 HP.
func (c *Combatant) IsDowned() bool {
	return c.Stats.HP <= 0
}

// CooldownFor returns the remaining cooldown for skillID, defaulting to 0
// for skills never placed on cooldown.
func (c *Combatant) CooldownFor(skillID catalog.SkillID) int {
	return c.Cooldowns[skillID]
}

// clone returns a deep-enough copy safe to hand out as a read-only view:
// Stats is copied by value, Equipped/Cooldowns are copied so a caller can't
// mutate the store's bookkeeping through the returned value.
func (c *Combatant) clone() Combatant {
	out := *c
	out.Equipped = append([]EquippedSkill(nil), c.Equipped...)
	out.Cooldowns = make(map[catalog.SkillID]int, len(c.Cooldowns))
	for k, v := range c.Cooldowns {
		out.Cooldowns[k] = v
	}
	return out
}
