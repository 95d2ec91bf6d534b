package processapi

import (
	"github.com/volt-agency/site/internal/content"
	platformi18n "github.com/volt-agency/site/internal/platform/i18n"
	"github.com/volt-agency/site/internal/process"
	module "github.com/volt-agency/site/internal/services/site/module"
)

type service struct {
	catalog  *content.Catalog
	stage    process.StageConfig
	fallback process.Viewport
}

func newService(deps module.Dependencies) service {
	return service{
		catalog:  deps.Catalog(),
		stage:    deps.StageConfig(),
		fallback: deps.Viewport(),
	}
}

type timelineQuery struct {
	lang       platformi18n.Code
	viewport   process.Viewport
	sectionTop float64
}

// Timeline is the wire form of the section geometry.
type Timeline struct {
	Lang    string         `json:"lang"`
	Label   string         `json:"label"`
	Heading string         `json:"heading"`
	Layout  LayoutJSON     `json:"layout"`
	Tuning  TuningJSON     `json:"tuning"`
	Spring  SpringJSON     `json:"spring"`
	Steps   []TimelineStep `json:"steps"`
}

// LayoutJSON mirrors process.Layout.
type LayoutJSON struct {
	Class          string  `json:"class"`
	ViewportHeight float64 `json:"viewportHeight"`
	SectionHeight  float64 `json:"sectionHeight"`
	SpacerHeight   float64 `json:"spacerHeight"`
	RangeStart     float64 `json:"rangeStart"`
	RangeEnd       float64 `json:"rangeEnd"`
	CardSide       float64 `json:"cardSide"`
	StageLift      float64 `json:"stageLift"`
	HeaderSafeTop  float64 `json:"headerSafeTop"`
}

// TuningJSON mirrors process.Tuning.
type TuningJSON struct {
	EnterFraction float64 `json:"enterFraction"`
	StackOffset   float64 `json:"stackOffset"`
	BaseHiddenY   float64 `json:"baseHiddenY"`
	HiddenStep    float64 `json:"hiddenStep"`
}

// SpringJSON carries the spring constants and the integration rate.
type SpringJSON struct {
	Damping   float64 `json:"damping"`
	Stiffness float64 `json:"stiffness"`
	Mass      float64 `json:"mass"`
	FPS       int     `json:"fps"`
}

// TimelineStep is one card with its precomputed breakpoints.
type TimelineStep struct {
	Index       int     `json:"index"`
	Ordinal     string  `json:"ordinal"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Start       float64 `json:"start"`
	Settle      float64 `json:"settle"`
	End         float64 `json:"end"`
	HiddenY     float64 `json:"hiddenY"`
	SettledY    float64 `json:"settledY"`
	Z           int     `json:"z"`
	Theme       int     `json:"theme"`
}

func (s service) timeline(q timelineQuery) Timeline {
	steps := s.catalog.Steps(q.lang)
	section := s.catalog.Page(q.lang).Process
	layout := s.stage.Layout.Compute(q.viewport, q.sectionTop, len(steps))
	mapper := process.NewMapper(len(steps), s.stage.Tuning)
	tuning := mapper.Tuning()

	out := Timeline{
		Lang:    q.lang.String(),
		Label:   section.Label,
		Heading: section.Heading,
		Layout: LayoutJSON{
			Class:          layout.Class.String(),
			ViewportHeight: layout.ViewportH,
			SectionHeight:  layout.SectionHeight,
			SpacerHeight:   layout.SpacerHeight,
			RangeStart:     layout.Range.Start,
			RangeEnd:       layout.Range.End,
			CardSide:       layout.CardSide,
			StageLift:      layout.StageLift,
			HeaderSafeTop:  layout.HeaderSafeTop,
		},
		Tuning: TuningJSON{
			EnterFraction: tuning.EnterFraction,
			StackOffset:   tuning.StackOffset,
			BaseHiddenY:   tuning.BaseHiddenY,
			HiddenStep:    tuning.HiddenStep,
		},
		Spring: SpringJSON{
			Damping:   s.stage.Spring.Damping,
			Stiffness: s.stage.Spring.Stiffness,
			Mass:      s.stage.Spring.Mass,
			FPS:       s.stage.FPS,
		},
		Steps: make([]TimelineStep, len(steps)),
	}
	for i, step := range steps {
		window := mapper.Window(i)
		out.Steps[i] = TimelineStep{
			Index:       step.Index,
			Ordinal:     step.Ordinal,
			Title:       step.Title,
			Description: step.Description,
			Start:       window.Start,
			Settle:      window.Settle,
			End:         window.End,
			HiddenY:     mapper.HiddenY(i),
			SettledY:    mapper.SettledY(i),
			Z:           process.ZOrder(i),
			Theme:       i % process.ThemeCount,
		}
	}
	return out
}
