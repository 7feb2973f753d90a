package gesture

import "math"

// LockState is the direction-lock decision for a fresh drag.
type LockState int

const (
	LockUndecided LockState = iota
	LockAlong
	LockOrthogonal
)

// lockSlop is how far (in units) a drag may wander before the lock decides.
const lockSlop = 2.0

// DirectionLock decides whether a fresh drag belongs to a surface's axis or
// to whatever scrolls orthogonally around it. A horizontal carousel must not
// swallow vertical motion, or the page holding it becomes unscrollable; the
// host should Cancel its engine session when the lock lands orthogonal.
type DirectionLock struct {
	axis  Axis
	state LockState
}

// NewDirectionLock creates an undecided lock for the given axis.
func NewDirectionLock(axis Axis) DirectionLock {
	return DirectionLock{axis: axis}
}

// State returns the current decision.
func (l *DirectionLock) State() LockState { return l.state }

// Reset returns the lock to undecided for the next gesture.
func (l *DirectionLock) Reset() { l.state = LockUndecided }

// Update folds the total drag deltas from gesture start on both screen axes
// and returns the decision. The lock stays undecided inside the slop, then
// latches on whichever axis dominates; ties go to the surface's own axis so
// a perfect diagonal still drags.
func (l *DirectionLock) Update(dx, dy float64) LockState {
	if l.state != LockUndecided {
		return l.state
	}
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax < lockSlop && ay < lockSlop {
		return LockUndecided
	}
	along, across := ax, ay
	if l.axis == Vertical {
		along, across = ay, ax
	}
	if along >= across {
		l.state = LockAlong
	} else {
		l.state = LockOrthogonal
	}
	return l.state
}
