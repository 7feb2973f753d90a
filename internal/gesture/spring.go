package gesture

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring tuning for the post-release settle. Slightly underdamped so the
// surface eases into the snap point instead of clipping to it.
const (
	settleFrequency = 7.0
	settleDamping   = 0.85
	settleEpsilon   = 0.05
)

// Settle animates the residual drag offset back to zero after resolution.
// Hosts seed it with the released offset (adjusted for any index change) and
// step it once per frame until it reports inactive.
type Settle struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	active bool
}

// NewSettle creates a settle animation stepped at the given frame rate.
func NewSettle(fps int) Settle {
	if fps <= 0 {
		fps = 60
	}
	return Settle{spring: harmonica.NewSpring(harmonica.FPS(fps), settleFrequency, settleDamping)}
}

// Start begins settling from the given offset, carrying the release velocity
// (units per millisecond) into the spring so a flick keeps its momentum.
func (s *Settle) Start(from, releaseVelocity float64) {
	s.pos = from
	s.vel = releaseVelocity * 1000 // harmonica integrates in units per second
	s.active = from != 0 || releaseVelocity != 0
}

// Step advances one frame and returns the current offset. Once position and
// velocity are inside epsilon it snaps to exactly zero and deactivates.
func (s *Settle) Step() float64 {
	if !s.active {
		return 0
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, 0)
	if math.Abs(s.pos) < settleEpsilon && math.Abs(s.vel) < settleEpsilon {
		s.pos, s.vel = 0, 0
		s.active = false
	}
	return s.pos
}

// Offset returns the current offset without stepping.
func (s *Settle) Offset() float64 { return s.pos }

// Active reports whether the animation still has visible motion.
func (s *Settle) Active() bool { return s.active }

// Stop halts the animation and zeroes the offset, for when a new gesture
// grabs the surface mid-settle.
func (s *Settle) Stop() {
	s.pos, s.vel = 0, 0
	s.active = false
}
