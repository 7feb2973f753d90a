package gesture

// dampDelta maps a raw drag delta to the rendered delta. Mid-range travel
// passes through unchanged. Past a terminal boundary the delta is scaled by
// the resistance factor and optionally bounded by an absolute overshoot cap,
// so the surface keeps giving continuous feedback without unbounded travel.
//
// Positive deltas point in the retreat direction, negative in the advance
// direction. A dismissible surface has no boundary on the retreat side of
// its first state: that direction is the dismiss affordance and travels
// freely.
func dampDelta(raw float64, index, count int, cfg Config) float64 {
	pastEnd := raw < 0 && index >= count-1
	pastStart := raw > 0 && index <= 0 && !cfg.Dismissible
	if !pastEnd && !pastStart {
		return raw
	}
	d := raw * cfg.Resistance
	if cfg.OvershootCap > 0 {
		if d > cfg.OvershootCap {
			d = cfg.OvershootCap
		} else if d < -cfg.OvershootCap {
			d = -cfg.OvershootCap
		}
	}
	return d
}
