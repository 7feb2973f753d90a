package client

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Demo data for running without a backend: a fixed set of finished portraits
// plus one in-flight job, enough to exercise every gesture surface.

const (
	demoPreviewWidth  = 36
	demoPreviewHeight = 12
)

// DemoSnapshot fabricates the payload a real backend would send on connect.
func DemoSnapshot() SnapshotPayload {
	now := time.Now()
	styles := []string{"classic", "watercolor", "ink", "oil", "sketch"}

	portraits := make([]*Portrait, 0, len(styles))
	for i, styleID := range styles {
		seed := int64(1000 + i*37)
		created := now.Add(-time.Duration(len(styles)-i) * 12 * time.Minute)
		portraits = append(portraits, &Portrait{
			ID:        fmt.Sprintf("demo-%s", styleID),
			JobID:     fmt.Sprintf("job-demo-%d", i+1),
			StyleID:   styleID,
			Seed:      seed,
			Width:     1024,
			Height:    1280,
			Preview:   demoPreview(seed),
			URL:       fmt.Sprintf("https://studio.example.com/p/demo-%s.png", styleID),
			CreatedAt: created,
		})
	}

	started := now.Add(-40 * time.Second)
	return SnapshotPayload{
		Portraits: portraits,
		Jobs: []*Job{{
			ID:        "job-demo-live",
			StyleID:   "neon",
			Status:    JobGenerating,
			Progress:  0.62,
			QueuedAt:  now.Add(-time.Minute),
			StartedAt: &started,
		}},
		Credits: 7,
	}
}

// DemoPortrait fabricates a single freshly generated portrait, as if a
// render job for styleID had just finished.
func DemoPortrait(styleID string) *Portrait {
	now := time.Now()
	seed := now.UnixNano() % 100000
	return &Portrait{
		ID:        fmt.Sprintf("demo-%s-%d", styleID, seed),
		JobID:     fmt.Sprintf("job-demo-%d", seed),
		StyleID:   styleID,
		Seed:      seed,
		Width:     1024,
		Height:    1280,
		Preview:   demoPreview(seed),
		URL:       fmt.Sprintf("https://studio.example.com/p/demo-%s-%d.png", styleID, seed),
		CreatedAt: now,
	}
}

// demoPreview renders a deterministic character-art thumbnail: a vignetted
// head-and-shoulders silhouette shaded with the seed's noise.
func demoPreview(seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	shades := []rune(" .:-=+*#%@")

	cx := float64(demoPreviewWidth) / 2
	rows := make([]string, 0, demoPreviewHeight)
	for y := 0; y < demoPreviewHeight; y++ {
		var b strings.Builder
		for x := 0; x < demoPreviewWidth; x++ {
			// Head: ellipse in the upper two thirds. Shoulders: band below.
			dx := (float64(x) - cx) / (cx * 0.55)
			dy := (float64(y) - 4.5) / 3.8
			head := dx*dx+dy*dy < 1
			shoulders := y >= demoPreviewHeight-3 && x > 4 && x < demoPreviewWidth-5

			level := 0
			if head || shoulders {
				level = 4 + rng.Intn(5)
			} else if rng.Float64() < 0.08 {
				level = 1 // background grain
			}
			b.WriteRune(shades[level])
		}
		rows = append(rows, b.String())
	}
	return rows
}
