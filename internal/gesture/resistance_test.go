package gesture

import (
	"math"
	"testing"
)

func TestDampPassthroughMidRange(t *testing.T) {
	cfg := carouselConfig()
	for _, raw := range []float64{-120, -1, 0, 1, 120} {
		if got := dampDelta(raw, 1, 3, cfg); got != raw {
			t.Errorf("dampDelta(%v) mid-range = %v, want exact passthrough", raw, got)
		}
	}
}

func TestDampResistsAtBoundaries(t *testing.T) {
	cfg := carouselConfig()

	tests := []struct {
		name  string
		raw   float64
		index int
		want  float64
	}{
		{name: "past start", raw: 40, index: 0, want: 12},
		{name: "past end", raw: -40, index: 2, want: -12},
		{name: "toward interior at start", raw: -40, index: 0, want: -40},
		{name: "toward interior at end", raw: 40, index: 2, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dampDelta(tt.raw, tt.index, 3, cfg); got != tt.want {
				t.Errorf("dampDelta(%v, index=%d) = %v, want %v", tt.raw, tt.index, got, tt.want)
			}
		})
	}
}

func TestDampDismissibleStartTravelsFree(t *testing.T) {
	cfg := sheetConfig()
	// Downward (retreat direction) at the floor is the dismiss affordance.
	if got := dampDelta(35, 0, 2, cfg); got != 35 {
		t.Errorf("dampDelta(35) dismissible floor = %v, want free travel", got)
	}
	// Upward past the largest snap point is still resisted.
	if got := dampDelta(-35, 1, 2, cfg); got != -35*DefaultResistance {
		t.Errorf("dampDelta(-35) ceiling = %v, want %v", got, -35*DefaultResistance)
	}
}

func TestDampOvershootCap(t *testing.T) {
	cfg := sheetConfig() // cap at DefaultOvershootCap
	raw := -3 * DefaultOvershootCap / DefaultResistance
	if got := dampDelta(raw, 1, 2, cfg); got != -DefaultOvershootCap {
		t.Errorf("dampDelta(%v) = %v, want capped at %v", raw, got, -DefaultOvershootCap)
	}

	uncapped := carouselConfig()
	if got := dampDelta(1000, 0, 3, uncapped); got != 300 {
		t.Errorf("dampDelta(1000) uncapped = %v, want 300", got)
	}
}

// Growing raw overshoot never shrinks the damped magnitude, and the damped
// magnitude stays strictly below the raw magnitude past the boundary.
func TestDampMonotonicity(t *testing.T) {
	for _, cfg := range []Config{sheetConfig(), carouselConfig()} {
		prev := 0.0
		for raw := 1.0; raw <= 400; raw += 1.0 {
			d := math.Abs(dampDelta(-raw, 2, 3, cfg))
			if d < prev {
				t.Fatalf("damped magnitude decreased: raw=%v damped=%v prev=%v", raw, d, prev)
			}
			if d >= raw {
				t.Fatalf("damped magnitude not below raw past boundary: raw=%v damped=%v", raw, d)
			}
			prev = d
		}
	}
}
