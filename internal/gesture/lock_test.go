package gesture

import "testing"

func TestDirectionLock(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		dx   float64
		dy   float64
		want LockState
	}{
		{name: "inside slop stays undecided", axis: Horizontal, dx: 1, dy: 1, want: LockUndecided},
		{name: "horizontal drag locks along", axis: Horizontal, dx: 5, dy: 1, want: LockAlong},
		{name: "vertical drag on horizontal surface locks orthogonal", axis: Horizontal, dx: 1, dy: 5, want: LockOrthogonal},
		{name: "vertical drag locks along vertical surface", axis: Vertical, dx: 1, dy: 5, want: LockAlong},
		{name: "diagonal tie goes to the surface axis", axis: Horizontal, dx: 4, dy: 4, want: LockAlong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewDirectionLock(tt.axis)
			if got := l.Update(tt.dx, tt.dy); got != tt.want {
				t.Errorf("Update(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestDirectionLockLatches(t *testing.T) {
	l := NewDirectionLock(Horizontal)
	if got := l.Update(6, 0); got != LockAlong {
		t.Fatalf("Update = %v, want LockAlong", got)
	}
	// Later vertical motion cannot flip a decided lock.
	if got := l.Update(6, 40); got != LockAlong {
		t.Errorf("decided lock flipped to %v", got)
	}
	l.Reset()
	if got := l.Update(0, 6); got != LockOrthogonal {
		t.Errorf("Update after Reset = %v, want LockOrthogonal", got)
	}
}
