// Package gesture implements the pointer-gesture engine shared by the bottom
// sheet and the portrait carousel. It samples pointer motion into a
// per-gesture session, estimates instantaneous velocity, applies elastic
// resistance past travel boundaries, and resolves a released drag to a
// discrete state change (advance, retreat, dismiss, or snap back).
//
// The engine is surface-agnostic: hosts configure an axis, thresholds, and a
// small set of callbacks, then feed it press/move/release/cancel events. All
// processing is synchronous on the caller's event loop; the engine owns no
// goroutines and never blocks.
package gesture

import (
	"time"

	"github.com/portrait-studio/tui/internal/haptics"
)

// Axis is the principal axis of a gesture surface.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// Default tuning. Distances are in cells (device-independent units),
// velocities in units per millisecond.
const (
	DefaultResistance        = 0.3
	DefaultVelocityThreshold = 0.5
	DefaultSheetFraction     = 0.30
	DefaultCarouselFraction  = 0.25
	DefaultOvershootCap      = 50
)

// Config holds the per-surface tuning of the engine.
type Config struct {
	Axis Axis

	// DistanceFraction of the current state's extent a slow drag must cover
	// to commit.
	DistanceFraction float64

	// VelocityThreshold in units per millisecond. A flick past it commits
	// regardless of distance; distance and velocity are alternative
	// sufficient conditions, not additive.
	VelocityThreshold float64

	// Resistance scales motion past a terminal boundary.
	Resistance float64

	// OvershootCap bounds the damped overshoot in absolute units.
	// Zero means uncapped.
	OvershootCap float64

	// Dismissible marks the retreat direction at the first state as a
	// dismiss affordance: free travel instead of a resisted boundary, and a
	// committed drag there resolves to Dismiss.
	Dismissible bool
}

func (c Config) withDefaults() Config {
	if c.DistanceFraction <= 0 {
		if c.Axis == Horizontal {
			c.DistanceFraction = DefaultCarouselFraction
		} else {
			c.DistanceFraction = DefaultSheetFraction
		}
	}
	if c.VelocityThreshold <= 0 {
		c.VelocityThreshold = DefaultVelocityThreshold
	}
	if c.Resistance <= 0 {
		c.Resistance = DefaultResistance
	}
	return c
}

// Callbacks is the host surface's side of the contract. Every callback is
// optional except Extent; all are invoked synchronously and must not call
// back into the engine.
type Callbacks struct {
	// Extent returns the positive extent (in units) of the state at the
	// given index: the sheet's snap height, the carousel's viewport width.
	Extent func(index int) float64

	// OnIndexChanged fires after a resolved advance or retreat.
	OnIndexChanged func(index int)

	// OnDismiss fires when a drag resolves to Dismiss.
	OnDismiss func()

	// OnOffset fires on every move with the damped drag offset, for live
	// rendering.
	OnOffset func(offset float64)

	// OnHaptic fires once per resolution, light for advance/retreat/stay
	// and heavy for dismiss.
	OnHaptic func(haptics.Intensity)
}

// Engine drives one gesture surface. It is not safe for concurrent use; all
// calls must come from the surface's event loop.
type Engine struct {
	cfg   Config
	cb    Callbacks
	index int
	count int
	sess  *session
}

// New creates an engine over count discrete states, starting at initial.
// Out-of-range initial indices are clamped.
func New(cfg Config, count, initial int, cb Callbacks) *Engine {
	return &Engine{
		cfg:   cfg.withDefaults(),
		cb:    cb,
		index: clampIndex(initial, count),
		count: count,
	}
}

// Active reports whether a gesture session is in progress.
func (e *Engine) Active() bool { return e.sess != nil }

// Index returns the current discrete state index.
func (e *Engine) Index() int { return e.index }

// Count returns the number of discrete states.
func (e *Engine) Count() int { return e.count }

// Offset returns the damped drag offset of the active session, or 0 when
// idle.
func (e *Engine) Offset() float64 {
	if e.sess == nil {
		return 0
	}
	return e.sess.damped
}

// Velocity returns the most recent instantaneous velocity of the active
// session in units per millisecond, or 0 when idle.
func (e *Engine) Velocity() float64 {
	if e.sess == nil {
		return 0
	}
	return e.sess.velocity
}

// SetCount updates the state count when the host's content changes, clamping
// the current index into the new range.
func (e *Engine) SetCount(count int) {
	e.count = count
	e.index = clampIndex(e.index, count)
}

// JumpTo sets the index directly, the non-gesture path (indicator dot tap,
// keyboard). It funnels through the same single writer as gesture
// resolutions and is ignored while a drag holds the pointer.
func (e *Engine) JumpTo(index int) {
	if e.sess != nil {
		return
	}
	index = clampIndex(index, e.count)
	if index == e.index {
		return
	}
	e.index = index
	if e.cb.OnIndexChanged != nil {
		e.cb.OnIndexChanged(index)
	}
}

// Begin starts a gesture session at the given axis position. A press while a
// session is already active is a second concurrent touch and is ignored; the
// first touch keeps driving the session.
func (e *Engine) Begin(pos float64, at time.Time) {
	if e.sess != nil {
		return
	}
	e.sess = newSession(pos, at)
}

// Move folds a pointer move into the active session and reports the damped
// offset. Moves without a session are ignored.
func (e *Engine) Move(pos float64, at time.Time) {
	if e.sess == nil {
		return
	}
	e.sess.observe(pos, at)
	e.sess.damped = dampDelta(e.sess.raw, e.index, e.count, e.cfg)
	if e.cb.OnOffset != nil {
		e.cb.OnOffset(e.sess.damped)
	}
}

// End finishes the active session under user control and resolves it. A tap
// (zero moves) carries zero delta and zero velocity and resolves to Stay.
func (e *Engine) End() Resolution {
	return e.finish(false)
}

// Cancel finishes the active session without user control (focus loss, an
// outer gesture taking over). It always resolves to Stay; an interrupted
// drag must never commit.
func (e *Engine) Cancel() Resolution {
	return e.finish(true)
}

func (e *Engine) finish(cancelled bool) Resolution {
	if e.sess == nil {
		return Stay
	}
	res := resolve(e.sess.damped, e.sess.velocity, e.index, e.count, e.extent(e.index), e.cfg, cancelled)
	e.sess = nil
	e.apply(res)
	return res
}

func (e *Engine) apply(res Resolution) {
	switch res {
	case Advance:
		e.index = clampIndex(e.index+1, e.count)
		if e.cb.OnIndexChanged != nil {
			e.cb.OnIndexChanged(e.index)
		}
		e.pulse(haptics.Light)
	case Retreat:
		e.index = clampIndex(e.index-1, e.count)
		if e.cb.OnIndexChanged != nil {
			e.cb.OnIndexChanged(e.index)
		}
		e.pulse(haptics.Light)
	case Dismiss:
		if e.cb.OnDismiss != nil {
			e.cb.OnDismiss()
		}
		e.pulse(haptics.Heavy)
	default:
		e.pulse(haptics.Light)
	}
}

func (e *Engine) pulse(i haptics.Intensity) {
	if e.cb.OnHaptic != nil {
		e.cb.OnHaptic(i)
	}
}

// extent queries the host's extent lookup, clamping degenerate answers so
// the resolver stays total.
func (e *Engine) extent(index int) float64 {
	if e.cb.Extent == nil {
		return 1
	}
	if ext := e.cb.Extent(index); ext > 0 {
		return ext
	}
	return 1
}

func clampIndex(index, count int) int {
	if count <= 0 || index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
