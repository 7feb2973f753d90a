package gesture

import (
	"testing"
	"time"
)

func TestVelocityBetween(t *testing.T) {
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prev         sample
		curr         sample
		prevVelocity float64
		want         float64
	}{
		{
			name: "simple rightward motion",
			prev: sample{pos: 10, at: base},
			curr: sample{pos: 30, at: base.Add(20 * time.Millisecond)},
			want: 1.0,
		},
		{
			name: "leftward motion is negative",
			prev: sample{pos: 30, at: base},
			curr: sample{pos: 25, at: base.Add(10 * time.Millisecond)},
			want: -0.5,
		},
		{
			name: "sub-millisecond delta still resolves",
			prev: sample{pos: 0, at: base},
			curr: sample{pos: 1, at: base.Add(500 * time.Microsecond)},
			want: 2.0,
		},
		{
			name:         "zero time delta retains previous velocity",
			prev:         sample{pos: 0, at: base},
			curr:         sample{pos: 50, at: base},
			prevVelocity: 0.7,
			want:         0.7,
		},
		{
			name:         "negative time delta retains previous velocity",
			prev:         sample{pos: 0, at: base},
			curr:         sample{pos: 50, at: base.Add(-time.Millisecond)},
			prevVelocity: -0.2,
			want:         -0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := velocityBetween(tt.prev, tt.curr, tt.prevVelocity)
			if got != tt.want {
				t.Errorf("velocityBetween() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Velocity reflects only the last sample pair, so a slow drag that ends in a
// flick reports the flick speed rather than the gesture average.
func TestVelocityLastPairOnly(t *testing.T) {
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	s := newSession(0, base)

	// A long, slow crawl...
	s.observe(5, base.Add(500*time.Millisecond))
	// ...ending in a fast flick.
	s.observe(25, base.Add(510*time.Millisecond))

	if s.velocity != 2.0 {
		t.Errorf("velocity = %v, want 2.0 from the final pair", s.velocity)
	}
	if s.raw != 25 {
		t.Errorf("raw delta = %v, want 25", s.raw)
	}
}
