// Package process drives the card-stacking timeline of the process section.
//
// The section pins a stage to the viewport while the visitor scrolls through
// a tall spacer. Scroll position is normalized into a progress value in [0,1]
// (Tracker), split into one equal window per step (Mapper), smoothed by a
// damped spring per card (Smoother) and turned into positioned, z-ordered
// cards (Renderer). LayoutAdapter recomputes the scroll domain whenever the
// viewport or the active language changes. Stage wires the pieces together
// for one mounted section.
//
// Everything in this package is pure arithmetic over float64 and is defined
// for every input: degenerate ranges resolve to a boundary value and NaN never
// reaches a rendered position.
package process

import "math"

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
