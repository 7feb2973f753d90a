package gesture

import "time"

// sample is one normalized pointer observation along the gesture axis.
type sample struct {
	pos float64
	at  time.Time
}

// session is the per-gesture state, created on press and discarded after
// resolution. At most one session exists per engine; its fields are only
// meaningful between Begin and End/Cancel.
type session struct {
	start    sample
	last     sample
	velocity float64 // units per millisecond, from the most recent pair only
	raw      float64 // unbounded delta from start
	damped   float64 // raw after boundary resistance; what gets rendered
}

func newSession(pos float64, at time.Time) *session {
	s := sample{pos: pos, at: at}
	return &session{start: s, last: s}
}

// observe folds a move event into the session. Velocity is recomputed from
// the previous and current samples; it may go stale between moves, which is
// fine because it is overwritten before resolution reads it.
func (s *session) observe(pos float64, at time.Time) {
	curr := sample{pos: pos, at: at}
	s.velocity = velocityBetween(s.last, curr, s.velocity)
	s.last = curr
	s.raw = pos - s.start.pos
}
