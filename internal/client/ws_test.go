package client

import (
	"encoding/json"
	"testing"
)

func TestDispatch(t *testing.T) {
	tests := []struct {
		name    string
		msgType MessageType
		payload string
		check   func(t *testing.T, got interface{})
	}{
		{
			name:    "snapshot",
			msgType: MsgSnapshot,
			payload: `{"portraits":[{"id":"p1","styleId":"ink"}],"credits":5}`,
			check: func(t *testing.T, got interface{}) {
				m, ok := got.(WSSnapshotMsg)
				if !ok {
					t.Fatalf("got %T, want WSSnapshotMsg", got)
				}
				if len(m.Payload.Portraits) != 1 || m.Payload.Credits != 5 {
					t.Errorf("payload = %+v", m.Payload)
				}
			},
		},
		{
			name:    "job update",
			msgType: MsgJobUpdate,
			payload: `{"job":{"id":"j1","status":"upscaling","progress":0.4}}`,
			check: func(t *testing.T, got interface{}) {
				m, ok := got.(WSJobUpdateMsg)
				if !ok {
					t.Fatalf("got %T, want WSJobUpdateMsg", got)
				}
				if m.Payload.Job.Status != JobUpscaling {
					t.Errorf("status = %q", m.Payload.Job.Status)
				}
			},
		},
		{
			name:    "completion",
			msgType: MsgCompletion,
			payload: `{"job":{"id":"j1","status":"complete"},"portrait":{"id":"p2"},"credits":4}`,
			check: func(t *testing.T, got interface{}) {
				m, ok := got.(WSCompletionMsg)
				if !ok {
					t.Fatalf("got %T, want WSCompletionMsg", got)
				}
				if m.Payload.Portrait == nil || m.Payload.Portrait.ID != "p2" {
					t.Errorf("portrait = %+v", m.Payload.Portrait)
				}
			},
		},
		{
			name:    "credits",
			msgType: MsgCredits,
			payload: `{"balance":9}`,
			check: func(t *testing.T, got interface{}) {
				m, ok := got.(WSCreditsMsg)
				if !ok {
					t.Fatalf("got %T, want WSCreditsMsg", got)
				}
				if m.Payload.Balance != 9 {
					t.Errorf("balance = %d, want 9", m.Payload.Balance)
				}
			},
		},
		{
			name:    "unknown type drops",
			msgType: "telemetry",
			payload: `{}`,
			check: func(t *testing.T, got interface{}) {
				if got != nil {
					t.Errorf("got %T, want nil", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := WSMessage{Type: tt.msgType, Payload: json.RawMessage(tt.payload)}
			tt.check(t, dispatch(msg))
		})
	}
}

func TestDemoSnapshot(t *testing.T) {
	snap := DemoSnapshot()
	if len(snap.Portraits) == 0 {
		t.Fatal("demo snapshot has no portraits")
	}
	for _, p := range snap.Portraits {
		if len(p.Preview) != demoPreviewHeight {
			t.Errorf("portrait %s preview rows = %d, want %d", p.ID, len(p.Preview), demoPreviewHeight)
		}
		for _, row := range p.Preview {
			if len([]rune(row)) != demoPreviewWidth {
				t.Errorf("portrait %s preview row width = %d, want %d", p.ID, len([]rune(row)), demoPreviewWidth)
			}
		}
	}

	// Same seed, same art: previews must be deterministic for stable renders.
	again := DemoSnapshot()
	if snap.Portraits[0].Preview[3] != again.Portraits[0].Preview[3] {
		t.Error("demo previews are not deterministic")
	}
}

func TestStyleByID(t *testing.T) {
	if got := StyleByID("oil"); got.Name != "Oil Painting" || got.Credits != 2 {
		t.Errorf("StyleByID(oil) = %+v", got)
	}
	if got := StyleByID("holographic"); got.Name != "holographic" {
		t.Errorf("unknown style fallback = %+v", got)
	}
}
