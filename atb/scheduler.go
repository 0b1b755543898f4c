package atb

import (
	"math"

	"github.com/jianghu-sim/battlecore/combatant"
	"github.com/jianghu-sim/battlecore/rpgerr"
)

// maxIterations bounds the accumulate-until-ready loop so a pathological
// configuration (e.g. every living combatant at zero effective agility)
// fails fast instead of spinning forever.
const maxIterations = 10000

// milliScale is the fixed-point factor TimeUnits and the threshold are
// stored in, so accumulation never depends on floating-point rounding
// drifting differently across runs or platforms.
const milliScale = 1000

// Scheduler selects the next actor by accumulated time-units, guaranteeing
// progress whenever at least one living combatant has positive effective
// agility.
type Scheduler struct {
	thresholdMilli int64
	tickScale      float64
}

// NewScheduler builds a Scheduler from the engine's configured threshold and
// tick scale (defaults: threshold=100, tick_scale=1.0).
func NewScheduler(threshold int, tickScale float64) *Scheduler {
	return &Scheduler{
		thresholdMilli: int64(threshold) * milliScale,
		tickScale:      tickScale,
	}
}

// tickIncrementMilli computes one accumulation step in fixed-point
// milli-units: floor(agility * tick_scale * 1000).
func tickIncrementMilli(agility int, tickScale float64) int64 {
	return int64(math.Floor(float64(agility) * tickScale * milliScale))
}

// Select runs the accumulate-until-ready loop against store and returns the
// chosen actor's ID, having already subtracted the threshold from its
// TimeUnits (leftover carries forward, it is not reset to zero).
//
// Returns a rpgerr.CodeSchedulerStuck error if no living combatant becomes
// ready within maxIterations — the engine treats this as fatal for the
// step and ends the battle with reason "stuck".
func (s *Scheduler) Select(store *combatant.Store) (combatant.ID, error) {
	for iter := 1; ; iter++ {
		living := store.Living()
		if len(living) == 0 {
			return "", rpgerr.New(rpgerr.CodeInvalidState, "atb: no living combatants to schedule")
		}

		updated := make(map[combatant.ID]int64, len(living))
		for _, c := range living {
			newVal := c.TimeUnits
			if inc := tickIncrementMilli(c.Stats.Agility, s.tickScale); inc > 0 {
				if mut, ok := store.ByIDMut(c.ID); ok {
					mut.TimeUnits += inc
					newVal = mut.TimeUnits
				}
			}
			updated[c.ID] = newVal
		}

		if selected, ok := pickReady(living, updated, s.thresholdMilli); ok {
			if mut, ok := store.ByIDMut(selected); ok {
				mut.TimeUnits -= s.thresholdMilli
			}
			return selected, nil
		}

		if iter >= maxIterations {
			return "", rpgerr.SchedulerStuckf(
				"exceeded %d iterations without a ready combatant", maxIterations)
		}
	}
}

// pickReady finds the combatant with the highest updated TimeUnits among
// those meeting thresholdMilli, breaking ties by the lowest ID. living's
// order is irrelevant to the result (only used to enumerate candidates);
// the tie-break is the only thing that makes the choice deterministic.
func pickReady(living []combatant.Combatant, updated map[combatant.ID]int64, thresholdMilli int64) (combatant.ID, bool) {
	var best combatant.ID
	var bestUnits int64
	found := false

	for _, c := range living {
		units := updated[c.ID]
		if units < thresholdMilli {
			continue
		}
		switch {
		case !found:
			best, bestUnits, found = c.ID, units, true
		case units > bestUnits:
			best, bestUnits = c.ID, units
		case units == bestUnits && c.ID < best:
			best = c.ID
		}
	}

	return best, found
}
