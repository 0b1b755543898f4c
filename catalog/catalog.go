package catalog

import "fmt"

// SkillID identifies a skill independent of tier.
type SkillID string

// Tier selects a parameter variant of a skill; higher tiers are generally
// stronger and more expensive. Tiers start at 1.
type Tier int

// Type categorizes what a skill does, independent of tier. Stages key off
// Type to decide whether a combatant's equipped skill participates in
// evasion (Movement) or defense (Defense) resolution.
type Type string

// Skill type constants.
const (
	TypeAttack   Type = "攻击"
	TypeMovement Type = "闪避"
	TypeDefense  Type = "抵挡"
)

// SkillTier holds the fixed parameter block for one (SkillID, Tier) pair.
type SkillTier struct {
	TierName          string
	Type              Type
	NarrativeTemplate string

	BaseDamage      int
	PowerMultiplier float64
	HitChance       float64
	CriticalChance  float64
	QiCost          int
	Cooldown        int

	// DefendChance is an optional probability parameter carried by defense
	// skills. When nil, the defense stage applies its damage-reduction
	// coefficient deterministically and consumes no randomness; when set,
	// the defense stage rolls it to decide whether the reduction applies at
	// all. This is what distinguishes a guaranteed defend from a rolled one:
	// a defense skill consumes randomness only when it declares this
	// parameter.
	DefendChance *float64

	// PartialHitChance is an optional probability parameter carried by
	// movement skills. When a combatant's movement skill would otherwise
	// roll a full dodge (the evasion stage's HitChance roll misses),
	// PartialHitChance, if set, is rolled to decide whether that miss is
	// downgraded to a partial hit: the attack still lands, but at
	// PartialHitMultiplier times damage, instead of emitting DODGE and
	// aborting the step. Nil means every missed evasion roll is a full
	// dodge, the plain binary behavior.
	PartialHitChance *float64

	// PartialHitMultiplier is the damage multiplier (< 1) applied on a
	// partial hit. Required and validated in [0,1) whenever
	// PartialHitChance is set; ignored otherwise.
	PartialHitMultiplier float64
}

// key is the map key for one (SkillID, Tier) pair.
type key struct {
	skillID SkillID
	tier    Tier
}

// Catalog is an immutable (SkillID, Tier) -> SkillTier lookup, built once
// per run.
type Catalog struct {
	tiers map[key]SkillTier
}

// Entry is one row of input data used to build a Catalog.
type Entry struct {
	SkillID SkillID
	Tier    Tier
	SkillTier
}

// New validates entries and builds an immutable Catalog. Returns an error
// if any entry violates the data-model invariants: Tier >= 1, HitChance and
// CriticalChance in [0,1], non-negative BaseDamage/QiCost/Cooldown, and no
// duplicate (SkillID, Tier) pair.
func New(entries []Entry) (*Catalog, error) {
	tiers := make(map[key]SkillTier, len(entries))
	for _, e := range entries {
		if err := validate(e); err != nil {
			return nil, err
		}
		k := key{skillID: e.SkillID, tier: e.Tier}
		if _, exists := tiers[k]; exists {
			return nil, fmt.Errorf("catalog: duplicate entry for skill %q tier %d", e.SkillID, e.Tier)
		}
		tiers[k] = e.SkillTier
	}
	return &Catalog{tiers: tiers}, nil
}

func validate(e Entry) error {
	if e.Tier < 1 {
		return fmt.Errorf("catalog: skill %q tier %d must be >= 1", e.SkillID, e.Tier)
	}
	if e.HitChance < 0 || e.HitChance > 1 {
		return fmt.Errorf("catalog: skill %q tier %d hit_chance %v out of [0,1]", e.SkillID, e.Tier, e.HitChance)
	}
	if e.CriticalChance < 0 || e.CriticalChance > 1 {
		return fmt.Errorf("catalog: skill %q tier %d critical_chance %v out of [0,1]", e.SkillID, e.Tier, e.CriticalChance)
	}
	if e.DefendChance != nil && (*e.DefendChance < 0 || *e.DefendChance > 1) {
		return fmt.Errorf("catalog: skill %q tier %d defend_chance %v out of [0,1]", e.SkillID, e.Tier, *e.DefendChance)
	}
	if e.PartialHitChance != nil {
		if *e.PartialHitChance < 0 || *e.PartialHitChance > 1 {
			return fmt.Errorf("catalog: skill %q tier %d partial_hit_chance %v out of [0,1]", e.SkillID, e.Tier, *e.PartialHitChance)
		}
		if e.PartialHitMultiplier < 0 || e.PartialHitMultiplier >= 1 {
			return fmt.Errorf("catalog: skill %q tier %d partial_hit_multiplier %v must be in [0,1)", e.SkillID, e.Tier, e.PartialHitMultiplier)
		}
	}
	if e.BaseDamage < 0 {
		return fmt.Errorf("catalog: skill %q tier %d base_damage must be >= 0", e.SkillID, e.Tier)
	}
	if e.QiCost < 0 {
		return fmt.Errorf("catalog: skill %q tier %d qi_cost must be >= 0", e.SkillID, e.Tier)
	}
	if e.Cooldown < 0 {
		return fmt.Errorf("catalog: skill %q tier %d cooldown must be >= 0", e.SkillID, e.Tier)
	}
	return nil
}

// Lookup returns the SkillTier for (skillID, tier) and whether it exists.
func (c *Catalog) Lookup(skillID SkillID, tier Tier) (SkillTier, bool) {
	st, ok := c.tiers[key{skillID: skillID, tier: tier}]
	return st, ok
}

// Len returns the number of (skill, tier) entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.tiers)
}
