package selector

import (
	"github.com/jianghu-sim/battlecore/catalog"
	"github.com/jianghu-sim/battlecore/combatant"
)

// Candidate is one scored (skill, tier) option considered during action
// selection. Exposed for diagnostics/tests; the pipeline only ever consumes
// the single winner Select returns.
type Candidate struct {
	SkillID catalog.SkillID
	Tier    catalog.Tier
	Score   float64
	Viable  bool
}

// Selection is the chosen action for a step: a viable (skill, tier) plus the
// target it will be used against.
type Selection struct {
	SkillID  catalog.SkillID
	Tier     catalog.Tier
	TargetID combatant.ID
}

// Evaluate scores every skill the actor has equipped, in equipped order,
// skipping any (skill, tier) the catalog does not hold. It consumes no
// randomness and has no side effects.
func Evaluate(actor combatant.Combatant, cat *catalog.Catalog) []Candidate {
	candidates := make([]Candidate, 0, len(actor.Equipped))
	for _, eq := range actor.Equipped {
		tier, ok := cat.Lookup(eq.SkillID, eq.Tier)
		if !ok {
			continue
		}
		viable := actor.Stats.Qi >= tier.QiCost && actor.CooldownFor(eq.SkillID) == 0
		candidates = append(candidates, Candidate{
			SkillID: eq.SkillID,
			Tier:    eq.Tier,
			Score:   expectedDamage(tier),
			Viable:  viable,
		})
	}
	return candidates
}

// expectedDamage is the selection heuristic:
//
//	score = base_damage * power_multiplier * hit_chance * (1 + critical_chance) / (cooldown + 1)
func expectedDamage(tier catalog.SkillTier) float64 {
	return float64(tier.BaseDamage) * tier.PowerMultiplier * tier.HitChance *
		(1 + tier.CriticalChance) / float64(tier.Cooldown+1)
}

// Select chooses the highest-scoring viable (skill, tier) for actor, then a
// target among living opposing-faction combatants. Returns false if no
// skill is viable or no opposing combatant remains.
func Select(actor combatant.Combatant, store *combatant.Store, cat *catalog.Catalog) (Selection, bool) {
	candidates := Evaluate(actor, cat)

	best, found := bestViable(candidates)
	if !found {
		return Selection{}, false
	}

	target, ok := pickTarget(store, actor.Faction)
	if !ok {
		return Selection{}, false
	}

	return Selection{SkillID: best.SkillID, Tier: best.Tier, TargetID: target}, true
}

// bestViable picks the highest-scoring viable candidate, breaking ties by
// (a) lower SkillID lexicographically, then (b) lower Tier.
func bestViable(candidates []Candidate) (Candidate, bool) {
	var best Candidate
	found := false

	for _, c := range candidates {
		if !c.Viable {
			continue
		}
		switch {
		case !found:
			best, found = c, true
		case c.Score > best.Score:
			best = c
		case c.Score == best.Score && isBetterTieBreak(c, best):
			best = c
		}
	}

	return best, found
}

func isBetterTieBreak(a, best Candidate) bool {
	if a.SkillID != best.SkillID {
		return a.SkillID < best.SkillID
	}
	return a.Tier < best.Tier
}

// pickTarget chooses the living opposing-faction combatant with the lowest
// current HP, breaking ties by lowest CombatantId.
func pickTarget(store *combatant.Store, actorFaction string) (combatant.ID, bool) {
	var best combatant.Combatant
	found := false

	for _, c := range store.Living() {
		if c.Faction == actorFaction {
			continue
		}
		switch {
		case !found:
			best, found = c, true
		case c.Stats.HP < best.Stats.HP:
			best = c
		case c.Stats.HP == best.Stats.HP && c.ID < best.ID:
			best = c
		}
	}

	return best.ID, found
}
