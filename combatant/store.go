package combatant

import (
	"fmt"

	"github.com/jianghu-sim/battlecore/catalog"
	"github.com/jianghu-sim/battlecore/rpgerr"
)

// Store owns every combatant record for a run. No record is ever removed
// once constructed; downed combatants stay addressable by ID.
type Store struct {
	order []ID
	byID  map[ID]*Combatant
}

// NewStore validates the input combatants and builds a Store. Returns an
// error on a duplicate ID or a stats invariant violation (HP > MaxHP,
// Qi > MaxQi, any negative field).
func NewStore(combatants []*Combatant) (*Store, error) {
	s := &Store{
		order: make([]ID, 0, len(combatants)),
		byID:  make(map[ID]*Combatant, len(combatants)),
	}
	for _, c := range combatants {
		if c.ID == "" {
			return nil, rpgerr.New(rpgerr.CodeInvalidArgument, "combatant: empty id")
		}
		if _, exists := s.byID[c.ID]; exists {
			return nil, rpgerr.New(rpgerr.CodeInvalidArgument,
				fmt.Sprintf("combatant: duplicate id %q", c.ID))
		}
		if err := validateStats(c.ID, c.Stats); err != nil {
			return nil, err
		}
		if c.Cooldowns == nil {
			c.Cooldowns = make(map[catalog.SkillID]int)
		}
		s.order = append(s.order, c.ID)
		s.byID[c.ID] = c
	}
	return s, nil
}

func validateStats(id ID, st Stats) error {
	if st.HP < 0 || st.MaxHP < 0 || st.Qi < 0 || st.MaxQi < 0 ||
		st.Strength < 0 || st.Agility < 0 || st.Defense < 0 {
		return rpgerr.New(rpgerr.CodeInvalidArgument,
			fmt.Sprintf("combatant %q: stats must be non-negative", id))
	}
	if st.HP > st.MaxHP {
		return rpgerr.New(rpgerr.CodeInvalidArgument,
			fmt.Sprintf("combatant %q: hp %d exceeds max_hp %d", id, st.HP, st.MaxHP))
	}
	if st.Qi > st.MaxQi {
		return rpgerr.New(rpgerr.CodeInvalidArgument,
			fmt.Sprintf("combatant %q: qi %d exceeds max_qi %d", id, st.Qi, st.MaxQi))
	}
	return nil
}

// All returns every combatant in insertion order, as read-only copies.
func (s *Store) All() []Combatant {
	out := make([]Combatant, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].clone())
	}
	return out
}

// Living returns combatants with HP > 0, insertion order preserved.
func (s *Store) Living() []Combatant {
	out := make([]Combatant, 0, len(s.order))
	for _, id := range s.order {
		c := s.byID[id]
		if !c.IsDowned() {
			out = append(out, c.clone())
		}
	}
	return out
}

// ByID returns a read-only copy of the combatant, or false if unknown.
func (s *Store) ByID(id ID) (Combatant, bool) {
	c, ok := s.byID[id]
	if !ok {
		return Combatant{}, false
	}
	return c.clone(), true
}

// ByIDMut returns a mutable pointer to the stored combatant, or false if
// unknown. Callers outside this package should prefer the named mutators
// below; ByIDMut exists for the ATB scheduler, which owns TimeUnits.
func (s *Store) ByIDMut(id ID) (*Combatant, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// ApplyDamage sets hp = max(0, hp - amount). Emits no event; the caller is
// responsible for that.
func (s *Store) ApplyDamage(id ID, amount int) error {
	c, ok := s.byID[id]
	if !ok {
		return rpgerr.New(rpgerr.CodeNotFound, fmt.Sprintf("combatant: %q not found", id))
	}
	c.Stats.HP -= amount
	if c.Stats.HP < 0 {
		c.Stats.HP = 0
	}
	return nil
}

// SpendQi requires qi >= cost, otherwise fails with rpgerr.CodeResourceExhausted.
func (s *Store) SpendQi(id ID, cost int) error {
	c, ok := s.byID[id]
	if !ok {
		return rpgerr.New(rpgerr.CodeNotFound, fmt.Sprintf("combatant: %q not found", id))
	}
	if c.Stats.Qi < cost {
		return rpgerr.ResourceExhausted("qi",
			rpgerr.WithMeta("combatant_id", string(id)),
			rpgerr.WithMeta("have", c.Stats.Qi),
			rpgerr.WithMeta("need", cost),
		)
	}
	c.Stats.Qi -= cost
	return nil
}

// SetCooldown overwrites the cooldown entry for skillID.
func (s *Store) SetCooldown(id ID, skillID catalog.SkillID, value int) error {
	c, ok := s.byID[id]
	if !ok {
		return rpgerr.New(rpgerr.CodeNotFound, fmt.Sprintf("combatant: %q not found", id))
	}
	c.Cooldowns[skillID] = value
	return nil
}

// DecrementCooldowns reduces every cooldown entry for id by 1, floored at 0.
func (s *Store) DecrementCooldowns(id ID) error {
	c, ok := s.byID[id]
	if !ok {
		return rpgerr.New(rpgerr.CodeNotFound, fmt.Sprintf("combatant: %q not found", id))
	}
	for skillID, v := range c.Cooldowns {
		if v > 0 {
			c.Cooldowns[skillID] = v - 1
		}
	}
	return nil
}

// FactionsAlive returns the set of factions with at least one living
// combatant. Only its cardinality is ever result-affecting (the
// termination predicate), so map iteration order here is harmless.
func (s *Store) FactionsAlive() map[string]struct{} {
	factions := make(map[string]struct{})
	for _, id := range s.order {
		c := s.byID[id]
		if !c.IsDowned() {
			factions[c.Faction] = struct{}{}
		}
	}
	return factions
}
