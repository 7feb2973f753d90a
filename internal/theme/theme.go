// Package theme provides the Lip Gloss color palette and reusable styles
// for the Portrait Studio TUI. It is a leaf package with no internal imports
// to avoid import cycles.
package theme

import "github.com/charmbracelet/lipgloss"

// Style colors, one per portrait style family.
var (
	ColorClassic    = lipgloss.Color("#a855f7")
	ColorWatercolor = lipgloss.Color("#3b82f6")
	ColorInk        = lipgloss.Color("#06b6d4")
	ColorOilPaint   = lipgloss.Color("#d97706")
	ColorSketch     = lipgloss.Color("#9ca3af")
	ColorNeon       = lipgloss.Color("#22c55e")
	ColorDefault    = lipgloss.Color("#9ca3af")
)

// Job status colors.
var (
	ColorQueued     = lipgloss.Color("#854d0e")
	ColorGenerating = lipgloss.Color("#2563eb")
	ColorUpscaling  = lipgloss.Color("#7c3aed")
	ColorComplete   = lipgloss.Color("#16a34a")
	ColorFailed     = lipgloss.Color("#dc2626")
)

// UI chrome colors.
var (
	ColorBorder  = lipgloss.Color("#4b5563")
	ColorDimmed  = lipgloss.Color("#6b7280")
	ColorBright  = lipgloss.Color("#f9fafb")
	ColorAccent  = lipgloss.Color("#f59e0b")
	ColorHealthy = lipgloss.Color("#22c55e")
	ColorWarning = lipgloss.Color("#d97706")
	ColorDanger  = lipgloss.Color("#dc2626")
)

// StyleColor returns the color for a portrait style ID.
func StyleColor(style string) lipgloss.Color {
	switch style {
	case "classic":
		return ColorClassic
	case "watercolor":
		return ColorWatercolor
	case "ink":
		return ColorInk
	case "oil":
		return ColorOilPaint
	case "sketch":
		return ColorSketch
	case "neon":
		return ColorNeon
	default:
		return ColorDefault
	}
}

// StatusColor returns the color for a job status string.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "queued":
		return ColorQueued
	case "generating":
		return ColorGenerating
	case "upscaling":
		return ColorUpscaling
	case "complete":
		return ColorComplete
	case "failed":
		return ColorFailed
	default:
		return ColorDimmed
	}
}

// StatusGlyph returns a Unicode glyph for a job status.
func StatusGlyph(status string) string {
	switch status {
	case "queued":
		return "◌"
	case "generating":
		return "●>"
	case "upscaling":
		return "◎"
	case "complete":
		return "✓"
	case "failed":
		return "✗"
	default:
		return "·"
	}
}

// Reusable styles.
var (
	StyleBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StyleDimmed = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StyleAccent = lipgloss.NewStyle().
			Foreground(ColorAccent)
)
