package stages_test

import (
	"testing"

	"github.com/jianghu-sim/battlecore/catalog"
	"github.com/jianghu-sim/battlecore/combatant"
	"github.com/jianghu-sim/battlecore/engine"
	"github.com/jianghu-sim/battlecore/engine/stages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCheck_PassesWhenQiAndCooldownOK(t *testing.T) {
	store := twoFactionStore(t, 100)
	cat := attackCatalog(t)
	stage := &stages.ResourceCheck{}

	ctx := newTestContext(store, cat, nil, nil)
	ctx.ActorID = "actor"
	ctx.SkillID = "palm_strike"
	ctx.Tier = 1

	require.True(t, stage.Applicable(ctx))
	require.NoError(t, stage.Run(ctx))
	assert.Empty(t, ctx.Events)
	assert.Empty(t, ctx.NoopReason)
}

func TestResourceCheck_InsufficientQiEmitsNoop(t *testing.T) {
	store := twoFactionStore(t, 2) // palm_strike costs 5
	cat := attackCatalog(t)
	stage := &stages.ResourceCheck{}

	ctx := newTestContext(store, cat, nil, nil)
	ctx.ActorID = "actor"
	ctx.SkillID = "palm_strike"
	ctx.Tier = 1

	require.NoError(t, stage.Run(ctx))
	require.Len(t, ctx.Events, 1)
	assert.Equal(t, engine.EventNoop, ctx.Events[0].Kind)
	assert.Equal(t, "resource", ctx.NoopReason)
}

func TestResourceCheck_OnCooldownEmitsNoop(t *testing.T) {
	store, err := combatant.NewStore([]*combatant.Combatant{
		{
			ID: "actor", Faction: "a",
			Stats:     combatant.Stats{HP: 10, MaxHP: 10, Qi: 100, MaxQi: 100},
			Equipped:  []combatant.EquippedSkill{{SkillID: "palm_strike", Tier: 1}},
			Cooldowns: map[catalog.SkillID]int{"palm_strike": 2},
		},
		{ID: "target", Faction: "b", Stats: combatant.Stats{HP: 10, MaxHP: 10}},
	})
	require.NoError(t, err)
	cat := attackCatalog(t)
	stage := &stages.ResourceCheck{}

	ctx := newTestContext(store, cat, nil, nil)
	ctx.ActorID = "actor"
	ctx.SkillID = "palm_strike"
	ctx.Tier = 1

	require.NoError(t, stage.Run(ctx))
	require.Len(t, ctx.Events, 1)
	assert.Equal(t, "cooldown", ctx.NoopReason)
}
