// Package selector implements the heuristic action policy: given a
// scheduled actor and the current state, it enumerates viable (skill,
// tier) choices, scores them by expected damage, and picks a target.
//
// Selection consumes no randomness; it is a pure function of catalog and
// combatant state so the same inputs always produce the same choice.
package selector
