package stages_test

import (
	"testing"

	"github.com/jianghu-sim/battlecore/combatant"
	"github.com/jianghu-sim/battlecore/engine/stages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_SpendsQiSetsCooldownAndAppliesDamage(t *testing.T) {
	store := twoFactionStore(t, 100)
	cat := attackCatalog(t)
	stage := &stages.Apply{}

	ctx := newTestContext(store, cat, nil, nil)
	ctx.ActorID, ctx.TargetID = "actor", "target"
	ctx.SkillID, ctx.Tier = "palm_strike", 1
	ctx.DamageResolved = true
	ctx.Hit = true
	ctx.FinalDamage = 7

	require.True(t, stage.Applicable(ctx))
	require.NoError(t, stage.Run(ctx))

	actor, ok := store.ByID("actor")
	require.True(t, ok)
	assert.Equal(t, 95, actor.Stats.Qi)
	assert.Equal(t, 1, actor.CooldownFor("palm_strike"))

	target, ok := store.ByID("target")
	require.True(t, ok)
	assert.Equal(t, 3, target.Stats.HP)
	assert.False(t, ctx.DefeatQueued)
}

func TestApply_MissStillSpendsResourcesButNoDamage(t *testing.T) {
	store := twoFactionStore(t, 100)
	cat := attackCatalog(t)
	stage := &stages.Apply{}

	ctx := newTestContext(store, cat, nil, nil)
	ctx.ActorID, ctx.TargetID = "actor", "target"
	ctx.SkillID, ctx.Tier = "palm_strike", 1
	ctx.DamageResolved = true
	ctx.Hit = false

	require.NoError(t, stage.Run(ctx))

	target, ok := store.ByID("target")
	require.True(t, ok)
	assert.Equal(t, 10, target.Stats.HP)
}

func TestApply_LethalDamageQueuesDefeat(t *testing.T) {
	store, err := combatant.NewStore([]*combatant.Combatant{
		{
			ID: "actor", Faction: "a",
			Stats:    combatant.Stats{HP: 10, MaxHP: 10, Qi: 100, MaxQi: 100},
			Equipped: []combatant.EquippedSkill{{SkillID: "palm_strike", Tier: 1}},
		},
		{ID: "target", Faction: "b", Stats: combatant.Stats{HP: 5, MaxHP: 10}},
	})
	require.NoError(t, err)
	cat := attackCatalog(t)
	stage := &stages.Apply{}

	ctx := newTestContext(store, cat, nil, nil)
	ctx.ActorID, ctx.TargetID = "actor", "target"
	ctx.SkillID, ctx.Tier = "palm_strike", 1
	ctx.DamageResolved = true
	ctx.Hit = true
	ctx.FinalDamage = 20

	require.NoError(t, stage.Run(ctx))

	target, ok := store.ByID("target")
	require.True(t, ok)
	assert.Equal(t, 0, target.Stats.HP)
	assert.True(t, ctx.DefeatQueued)
}

func TestApply_NotApplicableUnlessDamageResolved(t *testing.T) {
	stage := &stages.Apply{}
	ctx := newTestContext(nil, nil, nil, nil)
	ctx.SkillID = "palm_strike"
	assert.False(t, stage.Applicable(ctx))
}
