package stages

import (
	"github.com/jianghu-sim/battlecore/catalog"
	"github.com/jianghu-sim/battlecore/combatant"
)

// findEquippedTier returns the first equipped skill of the given type on c,
// in equipped order, and its catalog tier. A skill equipped but missing
// from the catalog is skipped rather than treated as an error here — the
// same leniency selector.Evaluate applies.
func findEquippedTier(c combatant.Combatant, cat *catalog.Catalog, want catalog.Type) (catalog.SkillTier, catalog.SkillID, catalog.Tier, bool) {
	for _, eq := range c.Equipped {
		tier, ok := cat.Lookup(eq.SkillID, eq.Tier)
		if !ok || tier.Type != want {
			continue
		}
		return tier, eq.SkillID, eq.Tier, true
	}
	return catalog.SkillTier{}, "", 0, false
}
