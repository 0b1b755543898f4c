// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import "github.com/jianghu-sim/battlecore/core/events"

// Test constants for modifier types, sources, and targets.
// These are used in tests to validate the modifier system.
const (
	// Test modifier sources
	TestModifierSourceQiSurge    events.ModifierSource = "qi_surge"
	TestModifierSourceInnerFocus events.ModifierSource = "inner_focus"
	TestModifierSourceIronGuard  events.ModifierSource = "iron_guard"
	TestModifierSourceTest       events.ModifierSource = "test"
	TestModifierSourceTestSource events.ModifierSource = "TestSource"
	TestModifierSourceTest2      events.ModifierSource = "test2"
	TestModifierSourceIronBody   events.ModifierSource = "iron_body"
	TestModifierSourceFocused    events.ModifierSource = "focused"

	// Test modifier types
	TestModifierTypeAdditive       events.ModifierType = "additive"
	TestModifierTypeMultiplicative events.ModifierType = "multiplicative"
	TestModifierTypePercent        events.ModifierType = "percent"
	TestModifierTypeFlag           events.ModifierType = "flag"
	TestModifierTypeCustom         events.ModifierType = "custom"
	TestModifierTypeType           events.ModifierType = "type"

	// Test modifier targets
	TestModifierTargetDamage    events.ModifierTarget = "damage"
	TestModifierTargetDefense   events.ModifierTarget = "defense"
	TestModifierTargetHitChance events.ModifierTarget = "hit_chance"
	TestModifierTargetEvasion   events.ModifierTarget = "evasion"
	TestModifierTargetRoll      events.ModifierTarget = "roll"
	TestModifierTargetTarget    events.ModifierTarget = "target"
)
