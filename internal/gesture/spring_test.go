package gesture

import (
	"math"
	"testing"
)

func TestSettleConvergesToZero(t *testing.T) {
	s := NewSettle(60)
	s.Start(-24, -0.6)

	if !s.Active() {
		t.Fatal("settle inactive after Start")
	}

	var last float64
	for i := 0; i < 600; i++ {
		last = s.Step()
		if !s.Active() {
			break
		}
	}
	if s.Active() {
		t.Fatalf("settle did not converge, offset %v", last)
	}
	if last != 0 {
		t.Errorf("final offset = %v, want exactly 0", last)
	}
}

func TestSettleFromRestIsInert(t *testing.T) {
	s := NewSettle(60)
	s.Start(0, 0)
	if s.Active() {
		t.Error("settle from rest should be inactive")
	}
	if got := s.Step(); got != 0 {
		t.Errorf("Step() = %v, want 0", got)
	}
}

func TestSettleStop(t *testing.T) {
	s := NewSettle(60)
	s.Start(30, 0)
	s.Step()
	s.Stop()
	if s.Active() || s.Offset() != 0 {
		t.Errorf("Stop left offset=%v active=%v", s.Offset(), s.Active())
	}
}

func TestSettleMagnitudeEventuallyShrinks(t *testing.T) {
	s := NewSettle(60)
	s.Start(40, 0)

	first := math.Abs(s.Step())
	var after float64
	for i := 0; i < 30; i++ {
		after = math.Abs(s.Step())
	}
	if after >= first {
		t.Errorf("offset magnitude grew: first=%v after=%v", first, after)
	}
}
