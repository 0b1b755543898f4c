// Package combatant owns all live combatant records for a run: it is the
// single place HP, qi, and cooldowns are mutated, and it guarantees stable
// insertion-order iteration so every other component sees combatants in the
// same order every time.
//
// Downed combatants (hp == 0) remain addressable by ID but are excluded
// from the Living iterator and therefore from scheduling and targeting.
package combatant
