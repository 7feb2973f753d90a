package gesture

import "math"

// Resolution is the terminal outcome of a gesture.
type Resolution int

const (
	Stay Resolution = iota
	Advance
	Retreat
	Dismiss
)

// String returns a human-readable resolution name.
func (r Resolution) String() string {
	switch r {
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	case Dismiss:
		return "dismiss"
	default:
		return "stay"
	}
}

// resolve decides the outcome of a released drag from its damped delta,
// released velocity, and position in the state set.
//
// A cancelled gesture never commits. Otherwise the drag commits when either
// the damped delta exceeds the distance threshold (a fraction of the current
// state's extent) or the velocity exceeds the velocity threshold; the two
// are alternative sufficient conditions. Direction comes from the delta
// sign; a zero delta with committing velocity resolves by the velocity sign
// alone. Advancing past the last state, or retreating past the first of a
// non-dismissible surface, degrades to Stay so no invalid index is ever
// producible.
func resolve(delta, velocity float64, index, count int, extent float64, cfg Config, cancelled bool) Resolution {
	if cancelled {
		return Stay
	}
	if extent <= 0 {
		extent = 1
	}
	commit := math.Abs(delta) > cfg.DistanceFraction*extent ||
		math.Abs(velocity) > cfg.VelocityThreshold
	if !commit {
		return Stay
	}

	dir := delta
	if dir == 0 {
		dir = velocity
	}
	switch {
	case dir > 0:
		if index <= 0 {
			if cfg.Dismissible {
				return Dismiss
			}
			return Stay
		}
		return Retreat
	case dir < 0:
		if index >= count-1 {
			return Stay
		}
		return Advance
	}
	return Stay
}
