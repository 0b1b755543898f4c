// Package atb implements the Active-Time-Battle scheduler: it selects the
// next combatant to act by accumulating time-units proportional to agility
// until at least one living combatant crosses a threshold.
//
// The accumulator is fixed-point (integer milli-units) so repeated runs
// with the same data produce bit-identical accumulation regardless of host
// floating-point environment.
package atb
