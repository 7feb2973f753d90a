// Package haptics provides the fire-and-forget feedback collaborator used by
// the gesture engine. On a terminal the only available channel is the bell;
// unsupported or failing outputs are swallowed silently so feedback can never
// affect gesture correctness.
package haptics

import "io"

// Intensity is a qualitative pulse strength.
type Intensity int

const (
	Light Intensity = iota
	Medium
	Heavy
)

// String returns a human-readable intensity name.
func (i Intensity) String() string {
	switch i {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	default:
		return "none"
	}
}

// Pulser emits feedback pulses. Implementations must never block and must
// never surface errors to the caller.
type Pulser interface {
	Pulse(Intensity)
}

// Bell writes the terminal bell for medium and heavy pulses. Light pulses
// are dropped; ringing on every snap-back would be obnoxious.
type Bell struct {
	W io.Writer
}

// Pulse implements Pulser. Write errors are discarded.
func (b Bell) Pulse(i Intensity) {
	if b.W == nil || i < Medium {
		return
	}
	_, _ = b.W.Write([]byte{'\a'})
}

// Silent discards every pulse.
type Silent struct{}

// Pulse implements Pulser.
func (Silent) Pulse(Intensity) {}
