package stages_test

import (
	"testing"

	"github.com/jianghu-sim/battlecore/combatant"
	"github.com/jianghu-sim/battlecore/engine"
	"github.com/jianghu-sim/battlecore/engine/stages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_AlwaysApplicable(t *testing.T) {
	stage := &stages.Emit{}
	assert.True(t, stage.Applicable(newTestContext(nil, nil, nil, nil)))
	assert.True(t, stage.AlwaysRuns())
}

func TestEmit_EmitsAttackWhenDamageResolved(t *testing.T) {
	stage := &stages.Emit{}
	ctx := newTestContext(nil, nil, nil, nil)
	ctx.ActorID, ctx.TargetID = "actor", "target"
	ctx.SkillID, ctx.Tier = "palm_strike", 1
	ctx.DamageResolved = true
	ctx.Hit = true
	ctx.Critical = true
	ctx.FinalDamage = 15
	ctx.DamageBucket = engine.BucketHigh

	require.NoError(t, stage.Run(ctx))
	require.Len(t, ctx.Events, 1)

	e := ctx.Events[0]
	assert.Equal(t, engine.EventAttack, e.Kind)
	assert.True(t, e.Hit)
	assert.True(t, e.Critical)
	assert.Equal(t, 15, e.Damage)
	assert.Equal(t, engine.BucketHigh, e.DamageBucket)
}

func TestEmit_SkipsAttackWhenNoDamageResolved(t *testing.T) {
	stage := &stages.Emit{}
	ctx := newTestContext(nil, nil, nil, nil)
	ctx.ActorID = "actor"
	// Simulates a step that already emitted its own substitute event
	// (NOOP/DODGE) and aborted before the damage stage ran.
	ctx.Emit(engine.BattleEvent{Kind: engine.EventNoop, ActorID: "actor"})

	require.NoError(t, stage.Run(ctx))
	assert.Len(t, ctx.Events, 1) // unchanged: only the earlier NOOP
}

func TestEmit_AppendsDefeatWhenQueued(t *testing.T) {
	stage := &stages.Emit{}
	ctx := newTestContext(nil, nil, nil, nil)
	ctx.ActorID, ctx.TargetID = "actor", "target"
	ctx.DamageResolved = true
	ctx.Hit = true
	ctx.DefeatQueued = true

	require.NoError(t, stage.Run(ctx))
	require.Len(t, ctx.Events, 2)
	assert.Equal(t, engine.EventAttack, ctx.Events[0].Kind)
	assert.Equal(t, engine.EventDefeat, ctx.Events[1].Kind)
	assert.Equal(t, combatant.ID("target"), ctx.Events[1].TargetID)
}
