// Package rng provides the single seeded source of randomness for the
// combat engine.
//
// Purpose:
// Every probabilistic decision the engine makes — evasion rolls, defense
// rolls, hit rolls, critical rolls — must flow through exactly one Source
// instance so that a (seed, data) pair reproduces an identical event
// sequence on every run. There is no package-level or global randomness
// here; callers construct a Source and thread it through explicitly.
//
// Scope:
//   - Bounded boolean draws (GenBool)
//   - Bounded integer draws (GenRange)
//   - Weighted selection with a stable, index-based tie-break (ChooseByWeight)
//
// Non-Goals:
//   - Dice notation ("2d6+3") — the engine's skill tiers carry pre-computed
//     probabilities and damage values, not dice expressions.
//   - Cryptographic security — determinism is the whole point, so this
//     package deliberately does not use crypto/rand.
package rng
