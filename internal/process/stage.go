package process

import (
	"sync"

	"github.com/volt-agency/site/internal/platform/i18n"
)

// StageConfig tunes a Stage.
type StageConfig struct {
	Tuning Tuning
	Spring SpringConfig
	Layout LayoutAdapter
	FPS    int
}

// DefaultStageConfig returns the section's defaults.
func DefaultStageConfig() StageConfig {
	return StageConfig{
		Tuning: DefaultTuning(),
		Spring: DefaultSpring(),
		Layout: DefaultLayoutAdapter(),
		FPS:    DefaultFPS,
	}
}

// Stage runs the timeline for one mounted process section.
//
// Scroll and resize events only update the tracked state; the cards move
// when Frame is called, so scroll values between two frames are dropped.
// A Stage is not safe for concurrent use, except that the language signal
// may be set from any goroutine: the change is applied on the next Frame.
type Stage struct {
	cfg      StageConfig
	source   StepSource
	viewport ViewportSource
	lang     *Signal[i18n.Code]
	renderer Renderer

	tracker  *Tracker
	smoother *Smoother
	mapper   Mapper
	layout   Layout
	vp       Viewport
	top      float64
	steps    []Step
	current  i18n.Code
	mounted  bool
	unsub    func()

	pendingMu sync.Mutex
	pending   *i18n.Code
}

// NewStage returns an unmounted stage. painter may be nil.
func NewStage(cfg StageConfig, source StepSource, viewport ViewportSource, lang *Signal[i18n.Code], painter Painter) *Stage {
	if lang == nil {
		lang = NewSignal(i18n.Default())
	}
	if cfg == (StageConfig{}) {
		cfg = DefaultStageConfig()
	}
	return &Stage{
		cfg:      cfg,
		source:   source,
		viewport: viewport,
		lang:     lang,
		renderer: NewRenderer(painter),
		tracker:  NewTracker(ScrollRange{}),
		smoother: NewSmoother(cfg.Spring, cfg.FPS, 0),
		mapper:   NewMapper(0, cfg.Tuning),
	}
}

// Mount loads the steps for the current language, lays out the section and
// places every card on its target without animation.
func (s *Stage) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.current = s.lang.Get()
	s.loadSteps(s.current)

	s.vp = s.currentViewport()
	s.top = s.sectionTop()
	s.relayout()
	s.tracker.Scroll(s.vp.ScrollY)

	p := s.tracker.Progress()
	for i := range s.steps {
		s.smoother.Snap(i, s.mapper.Target(i, p))
	}

	s.unsub = s.lang.Subscribe(func(code i18n.Code) {
		s.pendingMu.Lock()
		s.pending = &code
		s.pendingMu.Unlock()
	})
}

// Unmount releases the language subscription. Later events are ignored.
func (s *Stage) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
	s.pendingMu.Lock()
	s.pending = nil
	s.pendingMu.Unlock()
}

// Mounted reports whether the stage is mounted.
func (s *Stage) Mounted() bool {
	return s.mounted
}

// OnScroll records a scroll offset.
func (s *Stage) OnScroll(scrollY float64) {
	if !s.mounted {
		return
	}
	s.tracker.Scroll(scrollY)
}

// OnResize recomputes the layout for vp, rereading the section top, and
// rebases progress on the new range.
func (s *Stage) OnResize(vp Viewport) {
	if !s.mounted {
		return
	}
	s.vp = vp
	s.top = s.sectionTop()
	s.relayout()
	if finite(vp.ScrollY) {
		s.tracker.Scroll(vp.ScrollY)
	}
}

// SetSectionTop moves the section's start in document space.
func (s *Stage) SetSectionTop(top float64) {
	if !s.mounted {
		return
	}
	s.top = top
	s.relayout()
}

// Frame advances every card one spring step toward its target at the latest
// progress and paints the result. An unmounted stage returns an empty frame.
func (s *Stage) Frame() Frame {
	if !s.mounted {
		return Frame{}
	}
	s.applyPendingLanguage()

	p := s.tracker.Progress()
	for i := range s.steps {
		s.smoother.Step(i, s.mapper.Target(i, p))
	}
	return s.renderer.Render(s.layout, p, s.steps, s.mapper, s.smoother)
}

// Progress returns the latest progress.
func (s *Stage) Progress() float64 {
	return s.tracker.Progress()
}

// Layout returns the current layout.
func (s *Stage) Layout() Layout {
	return s.layout
}

// Language returns the language the steps were loaded for.
func (s *Stage) Language() i18n.Code {
	return s.current
}

// Steps returns a copy of the loaded steps.
func (s *Stage) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

func (s *Stage) applyPendingLanguage() {
	s.pendingMu.Lock()
	next := s.pending
	s.pending = nil
	s.pendingMu.Unlock()
	if next == nil || *next == s.current {
		return
	}

	old := len(s.steps)
	s.current = *next
	s.loadSteps(s.current)

	s.relayout()

	p := s.tracker.Progress()
	for i := old; i < len(s.steps); i++ {
		s.smoother.Snap(i, s.mapper.Target(i, p))
	}
}

func (s *Stage) loadSteps(code i18n.Code) {
	var steps []Step
	if s.source != nil {
		steps = s.source.Steps(code)
	}
	s.steps = steps
	s.mapper = NewMapper(len(steps), s.cfg.Tuning)
	s.smoother.Resize(len(steps))
}

func (s *Stage) currentViewport() Viewport {
	if s.viewport == nil {
		return Viewport{}
	}
	return s.viewport.Viewport()
}

func (s *Stage) sectionTop() float64 {
	if s.viewport == nil {
		return 0
	}
	return s.viewport.SectionTop()
}

func (s *Stage) relayout() {
	s.layout = s.cfg.Layout.Compute(s.vp, s.top, len(s.steps))
	s.tracker.SetRange(s.layout.Range)
}
