package gesture

import "time"

// velocityBetween returns the instantaneous velocity between two samples in
// units per millisecond. Only the most recent pair is used, never a running
// average: the released velocity must reflect a final flick, and averaging
// the whole gesture would under-detect it. A non-positive time delta retains
// the previous value rather than producing Inf or NaN.
func velocityBetween(prev, curr sample, prevVelocity float64) float64 {
	ms := float64(curr.at.Sub(prev.at)) / float64(time.Millisecond)
	if ms <= 0 {
		return prevVelocity
	}
	return (curr.pos - prev.pos) / ms
}
