package process

import "github.com/volt-agency/site/internal/platform/i18n"

// Step is one stage of the agency's process as shown on a card.
type Step struct {
	Index       int
	Ordinal     string
	Title       string
	Description string
}

// StepSource supplies the ordered steps for a language. Implementations
// return a fresh slice; callers may keep it.
type StepSource interface {
	Steps(lang i18n.Code) []Step
}

// StepSourceFunc adapts a function to StepSource.
type StepSourceFunc func(lang i18n.Code) []Step

// Steps calls f.
func (f StepSourceFunc) Steps(lang i18n.Code) []Step {
	return f(lang)
}

// ViewportSource reports the current window geometry and where the process
// section starts in document space.
type ViewportSource interface {
	Viewport() Viewport
	SectionTop() float64
}
