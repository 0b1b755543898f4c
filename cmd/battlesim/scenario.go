package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jianghu-sim/battlecore/atb"
	"github.com/jianghu-sim/battlecore/catalog"
	"github.com/jianghu-sim/battlecore/combatant"
	"github.com/jianghu-sim/battlecore/engine"
	"github.com/jianghu-sim/battlecore/engine/stages"
	"github.com/jianghu-sim/battlecore/rng"
)

// scenarioFile is the on-disk YAML shape of a full run: a run
// configuration plus the combatants and skill-tier rows needed to build a
// Store and Catalog. Loading and validating it is the CLI's job — the
// engine packages never see YAML, only already-decoded Go structs.
type scenarioFile struct {
	RNGSeed        int64          `yaml:"rng_seed"`
	ATBThreshold   int            `yaml:"atb_threshold"`
	ATBTickScale   float64        `yaml:"atb_tick_scale"`
	CritMultiplier float64        `yaml:"crit_multiplier"`
	MaxSteps       int            `yaml:"max_steps"`
	Combatants     []combatantRow `yaml:"combatants"`
	Catalog        []catalogRow   `yaml:"catalog"`
}

type statsRow struct {
	HP       int `yaml:"hp"`
	MaxHP    int `yaml:"max_hp"`
	Qi       int `yaml:"qi"`
	MaxQi    int `yaml:"max_qi"`
	Strength int `yaml:"strength"`
	Agility  int `yaml:"agility"`
	Defense  int `yaml:"defense"`
}

type equippedRow struct {
	SkillID string `yaml:"skill_id"`
	Tier    int    `yaml:"tier"`
}

type combatantRow struct {
	ID      string        `yaml:"id"`
	Name    string        `yaml:"name"`
	Faction string        `yaml:"faction"`
	Stats   statsRow      `yaml:"stats"`
	Skills  []equippedRow `yaml:"skills"`
}

type parametersRow struct {
	BaseDamage           int      `yaml:"base_damage"`
	PowerMultiplier      float64  `yaml:"power_multiplier"`
	HitChance            float64  `yaml:"hit_chance"`
	CriticalChance       float64  `yaml:"critical_chance"`
	QiCost               int      `yaml:"qi_cost"`
	Cooldown             int      `yaml:"cooldown"`
	DefendChance         *float64 `yaml:"defend_chance,omitempty"`
	PartialHitChance     *float64 `yaml:"partial_hit_chance,omitempty"`
	PartialHitMultiplier float64  `yaml:"partial_hit_multiplier,omitempty"`
}

type catalogRow struct {
	SkillID           string        `yaml:"skill_id"`
	Tier              int           `yaml:"tier"`
	TierName          string        `yaml:"tier_name"`
	Type              string        `yaml:"type"`
	NarrativeTemplate string        `yaml:"narrative_template"`
	Parameters        parametersRow `yaml:"parameters"`
}

// loadScenario reads and decodes path into a scenarioFile. It does not
// validate data-model invariants itself — those are enforced downstream by
// catalog.New and combatant.NewStore, which are the authoritative
// gatekeepers for malformed data.
func loadScenario(path string) (*scenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("battlesim: read scenario %s: %w", path, err)
	}
	var sf scenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("battlesim: parse scenario %s: %w", path, err)
	}
	return &sf, nil
}

// buildCatalog converts the scenario's catalog rows into a *catalog.Catalog.
func (sf *scenarioFile) buildCatalog() (*catalog.Catalog, error) {
	entries := make([]catalog.Entry, 0, len(sf.Catalog))
	for _, row := range sf.Catalog {
		entries = append(entries, catalog.Entry{
			SkillID: catalog.SkillID(row.SkillID),
			Tier:    catalog.Tier(row.Tier),
			SkillTier: catalog.SkillTier{
				TierName:             row.TierName,
				Type:                 catalog.Type(row.Type),
				NarrativeTemplate:    row.NarrativeTemplate,
				BaseDamage:           row.Parameters.BaseDamage,
				PowerMultiplier:      row.Parameters.PowerMultiplier,
				HitChance:            row.Parameters.HitChance,
				CriticalChance:       row.Parameters.CriticalChance,
				QiCost:               row.Parameters.QiCost,
				Cooldown:             row.Parameters.Cooldown,
				DefendChance:         row.Parameters.DefendChance,
				PartialHitChance:     row.Parameters.PartialHitChance,
				PartialHitMultiplier: row.Parameters.PartialHitMultiplier,
			},
		})
	}
	return catalog.New(entries)
}

// buildStore converts the scenario's combatant rows into a *combatant.Store.
func (sf *scenarioFile) buildStore() (*combatant.Store, error) {
	combatants := make([]*combatant.Combatant, 0, len(sf.Combatants))
	for _, row := range sf.Combatants {
		equipped := make([]combatant.EquippedSkill, 0, len(row.Skills))
		for _, eq := range row.Skills {
			equipped = append(equipped, combatant.EquippedSkill{
				SkillID: catalog.SkillID(eq.SkillID),
				Tier:    catalog.Tier(eq.Tier),
			})
		}
		combatants = append(combatants, &combatant.Combatant{
			ID:          combatant.ID(row.ID),
			DisplayName: row.Name,
			Faction:     row.Faction,
			Stats: combatant.Stats{
				HP:       row.Stats.HP,
				MaxHP:    row.Stats.MaxHP,
				Qi:       row.Stats.Qi,
				MaxQi:    row.Stats.MaxQi,
				Strength: row.Stats.Strength,
				Agility:  row.Stats.Agility,
				Defense:  row.Stats.Defense,
			},
			Equipped: equipped,
		})
	}
	return combatant.NewStore(combatants)
}

// buildFacade wires every collaborator the scenario describes into a ready-
// to-run *engine.Facade, using engine/stages.Default for the standard
// eight-stage pipeline. seedOverride, when non-zero, replaces the
// scenario's rng_seed (the CLI's --seed-override flag).
func (sf *scenarioFile) buildFacade(seedOverride int64, maxStepsOverride int) (*engine.Facade, error) {
	store, err := sf.buildStore()
	if err != nil {
		return nil, fmt.Errorf("battlesim: build combatant store: %w", err)
	}
	cat, err := sf.buildCatalog()
	if err != nil {
		return nil, fmt.Errorf("battlesim: build catalog: %w", err)
	}

	seed := sf.RNGSeed
	if seedOverride != 0 {
		seed = seedOverride
	}
	source := rng.NewDeterministicSource(seed)
	scheduler := atb.NewScheduler(sf.ATBThreshold, sf.ATBTickScale)
	pipeline := stages.Default(scheduler)

	cfg := engine.Config{
		RNGSeed:        seed,
		ATBThreshold:   sf.ATBThreshold,
		ATBTickScale:   sf.ATBTickScale,
		CritMultiplier: sf.CritMultiplier,
		MaxSteps:       sf.MaxSteps,
	}
	if maxStepsOverride > 0 {
		cfg.MaxSteps = maxStepsOverride
	}

	return engine.NewFacade(cfg, store, cat, source, scheduler, pipeline), nil
}
