package process

// ScrollRange is the document-space span over which the cards animate.
type ScrollRange struct {
	Start float64
	End   float64
}

// Length returns End - Start.
func (r ScrollRange) Length() float64 {
	return r.End - r.Start
}

// Progress normalizes scrollY over r into [0,1].
//
// A zero-length range resolves to 0 before Start and 1 from Start onward.
// A non-finite scrollY resolves to 0.
func Progress(scrollY float64, r ScrollRange) float64 {
	if !finite(scrollY) {
		return 0
	}
	span := r.Length()
	if span == 0 || !finite(span) {
		if scrollY < r.Start {
			return 0
		}
		return 1
	}
	return clamp01((scrollY - r.Start) / span)
}

// Tracker remembers the latest scroll offset and range and the progress
// derived from them. It holds no history beyond the last value.
type Tracker struct {
	rng      ScrollRange
	scrollY  float64
	progress float64
}

// NewTracker returns a tracker over r.
func NewTracker(r ScrollRange) *Tracker {
	t := &Tracker{rng: r}
	t.progress = Progress(0, r)
	return t
}

// Scroll records a new scroll offset and returns the recomputed progress.
func (t *Tracker) Scroll(scrollY float64) float64 {
	t.scrollY = scrollY
	t.progress = Progress(scrollY, t.rng)
	return t.progress
}

// SetRange replaces the range and returns the recomputed progress.
func (t *Tracker) SetRange(r ScrollRange) float64 {
	t.rng = r
	t.progress = Progress(t.scrollY, r)
	return t.progress
}

// Progress returns the last computed progress.
func (t *Tracker) Progress() float64 {
	return t.progress
}

// Range returns the current range.
func (t *Tracker) Range() ScrollRange {
	return t.rng
}

// ScrollY returns the last recorded scroll offset.
func (t *Tracker) ScrollY() float64 {
	return t.scrollY
}
