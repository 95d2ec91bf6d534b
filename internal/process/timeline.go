package process

// Tuning defaults for the process section.
const (
	DefaultEnterFraction = 0.68
	DefaultStackOffset   = 24
	DefaultBaseHiddenY   = 1800
	DefaultHiddenStep    = 260
)

// Tuning holds the constants that shape each step's target curve.
type Tuning struct {
	// EnterFraction is the share of a step's window spent moving into place.
	// Values outside (0,1] fall back to DefaultEnterFraction.
	EnterFraction float64
	// StackOffset is the vertical gap between settled cards.
	StackOffset float64
	// BaseHiddenY is the off-screen offset of the last card before it enters.
	BaseHiddenY float64
	// HiddenStep pushes earlier cards further down while hidden.
	HiddenStep float64
}

// DefaultTuning returns the section's design constants.
func DefaultTuning() Tuning {
	return Tuning{
		EnterFraction: DefaultEnterFraction,
		StackOffset:   DefaultStackOffset,
		BaseHiddenY:   DefaultBaseHiddenY,
		HiddenStep:    DefaultHiddenStep,
	}
}

func normalizeEnterFraction(f float64) float64 {
	if !finite(f) || f <= 0 || f > 1 {
		return DefaultEnterFraction
	}
	return f
}

// StepTimeline holds the progress breakpoints of one step.
// 0 <= Start <= Settle <= End <= 1.
type StepTimeline struct {
	Start  float64
	Settle float64
	End    float64
}

// WindowFor returns the window of step index among total steps.
//
// Windows of consecutive steps tile [0,1]: End(i) == Start(i+1), Start(0) == 0
// and End(total-1) == 1.
func WindowFor(index, total int, enterFraction float64) StepTimeline {
	if total < 1 {
		total = 1
	}
	if index < 0 {
		index = 0
	}
	if index > total-1 {
		index = total - 1
	}
	n := float64(total)
	start := clamp01(float64(index) / n)
	end := clamp01(float64(index+1) / n)
	settle := clamp(start+(end-start)*normalizeEnterFraction(enterFraction), start, end)
	return StepTimeline{Start: start, Settle: settle, End: end}
}

// StepPhase is a step's position in its HIDDEN → ENTERING → SETTLED cycle.
// The phase is a pure function of progress; scrolling back reverses it.
type StepPhase int

const (
	PhaseHidden StepPhase = iota
	PhaseEntering
	PhaseSettled
)

func (p StepPhase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseSettled:
		return "settled"
	default:
		return "hidden"
	}
}

// Mapper turns progress into a raw vertical target per step.
type Mapper struct {
	total  int
	tuning Tuning
}

// NewMapper returns a mapper for total steps.
func NewMapper(total int, tuning Tuning) Mapper {
	if total < 0 {
		total = 0
	}
	tuning.EnterFraction = normalizeEnterFraction(tuning.EnterFraction)
	return Mapper{total: total, tuning: tuning}
}

// Total returns the number of steps.
func (m Mapper) Total() int {
	return m.total
}

// Tuning returns the normalized tuning.
func (m Mapper) Tuning() Tuning {
	return m.tuning
}

// Window returns step index's breakpoints.
func (m Mapper) Window(index int) StepTimeline {
	return WindowFor(index, m.total, m.tuning.EnterFraction)
}

// HiddenY is the target of step index before its window opens.
func (m Mapper) HiddenY(index int) float64 {
	return m.tuning.BaseHiddenY + float64(m.total-index)*m.tuning.HiddenStep
}

// SettledY is the resting target of step index.
func (m Mapper) SettledY(index int) float64 {
	return float64(index) * m.tuning.StackOffset
}

// Target returns the raw (unsmoothed) vertical offset of step index at progress.
//
// The target holds at HiddenY up to Start, moves linearly to SettledY until
// Settle and stays at SettledY from Settle on, including while later steps
// animate.
func (m Mapper) Target(index int, progress float64) float64 {
	w := m.Window(index)
	hidden := m.HiddenY(index)
	settled := m.SettledY(index)
	p := clamp01(progress)

	if p >= w.Settle {
		return settled
	}
	if p <= w.Start {
		return hidden
	}
	span := w.Settle - w.Start
	if span <= 0 {
		return settled
	}
	t := (p - w.Start) / span
	return hidden + (settled-hidden)*t
}

// Phase reports where step index is in its cycle at progress.
func (m Mapper) Phase(index int, progress float64) StepPhase {
	w := m.Window(index)
	p := clamp01(progress)
	switch {
	case p >= w.Settle:
		return PhaseSettled
	case p <= w.Start:
		return PhaseHidden
	default:
		return PhaseEntering
	}
}
