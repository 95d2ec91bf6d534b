package process

import "math"

// NarrowBreakpoint is the viewport width below which the narrow layout applies.
const NarrowBreakpoint = 768

// ViewportClass selects between the two card layouts.
type ViewportClass int

const (
	ViewportWide ViewportClass = iota
	ViewportNarrow
)

func (c ViewportClass) String() string {
	if c == ViewportNarrow {
		return "narrow"
	}
	return "wide"
}

// ClassFor returns the class of a viewport width.
func ClassFor(width float64) ViewportClass {
	if width < NarrowBreakpoint {
		return ViewportNarrow
	}
	return ViewportWide
}

// Viewport is a snapshot of the browser window.
type Viewport struct {
	Width   float64
	Height  float64
	ScrollY float64
}

// Layout is the section geometry derived for one viewport and step count.
type Layout struct {
	Class         ViewportClass
	Steps         int
	ViewportH     float64
	SectionHeight float64
	SpacerHeight  float64
	Range         ScrollRange
	CardSide      float64
	StageLift     float64
	HeaderSafeTop float64
}

// LayoutAdapter holds the scroll-length factors, all relative to the
// viewport height.
type LayoutAdapter struct {
	// PerStep is the scroll distance given to each step.
	PerStep float64
	// Hold keeps the finished stack pinned before the section releases.
	Hold float64
	// Tail pads the end of the section.
	Tail float64
}

// DefaultLayoutAdapter returns the section's scroll-length factors.
func DefaultLayoutAdapter() LayoutAdapter {
	return LayoutAdapter{PerStep: 0.55, Hold: 1.3, Tail: 0.8}
}

type classMetrics struct {
	sideFactor float64
	maxSide    float64
	stageLift  float64
}

var metricsByClass = map[ViewportClass]classMetrics{
	ViewportNarrow: {sideFactor: 0.92, maxSide: math.Inf(1), stageLift: 180},
	ViewportWide:   {sideFactor: 0.72, maxSide: 740, stageLift: 80},
}

const headerSafeTop = 220

// Compute derives the layout for vp with the section starting at sectionTop
// in document space.
//
// sectionHeight = vh + steps*vh*PerStep + vh*Hold + vh*Tail and is strictly
// positive; the spacer under the sticky stage is max(1, sectionHeight - vh).
func (a LayoutAdapter) Compute(vp Viewport, sectionTop float64, steps int) Layout {
	if steps < 0 {
		steps = 0
	}
	vh := vp.Height
	if !finite(vh) || vh <= 0 {
		vh = 1
	}
	vw := vp.Width
	if !finite(vw) || vw <= 0 {
		vw = vh
	}
	if !finite(sectionTop) {
		sectionTop = 0
	}

	scrollLength := float64(steps) * vh * nonNegative(a.PerStep)
	hold := vh * nonNegative(a.Hold)
	tail := vh * nonNegative(a.Tail)
	height := vh + scrollLength + hold + tail

	class := ClassFor(vw)
	metrics := metricsByClass[class]
	side := math.Min(math.Min(vw, vh)*metrics.sideFactor, metrics.maxSide)

	return Layout{
		Class:         class,
		Steps:         steps,
		ViewportH:     vh,
		SectionHeight: height,
		SpacerHeight:  math.Max(1, height-vh),
		Range:         ScrollRange{Start: sectionTop, End: sectionTop + (height - vh)},
		CardSide:      side,
		StageLift:     metrics.stageLift,
		HeaderSafeTop: headerSafeTop,
	}
}

func nonNegative(v float64) float64 {
	if !finite(v) || v < 0 {
		return 0
	}
	return v
}
