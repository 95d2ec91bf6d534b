package landing

import (
	"github.com/volt-agency/site/internal/content"
	platformi18n "github.com/volt-agency/site/internal/platform/i18n"
	"github.com/volt-agency/site/internal/process"
	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/templates"
)

// latestPosts is how many news posts the landing page teases.
const latestPosts = 3

type service struct {
	catalog  *content.Catalog
	stage    process.StageConfig
	viewport process.Viewport
}

func newService(deps module.Dependencies) service {
	return service{
		catalog:  deps.Catalog(),
		stage:    deps.StageConfig(),
		viewport: deps.Viewport(),
	}
}

// settledViewport reports a viewport scrolled to the end of the section so
// the pre-rendered stack shows every card in place.
type settledViewport struct {
	vp process.Viewport
}

func (v settledViewport) Viewport() process.Viewport { return v.vp }
func (settledViewport) SectionTop() float64          { return 0 }

func (s service) landing(lang platformi18n.Code) templates.LandingView {
	page := s.catalog.Page(lang)
	return templates.LandingView{
		Copy: page,
		Process: templates.ProcessView{
			Label:   page.Process.Label,
			Heading: page.Process.Heading,
			Lang:    lang.String(),
			Frame:   s.processFrame(lang),
		},
		Posts: s.latestPosts(),
	}
}

func (s service) processFrame(lang platformi18n.Code) process.Frame {
	vp := s.viewport
	steps := len(s.catalog.Steps(lang))
	vp.ScrollY = s.stage.Layout.Compute(vp, 0, steps).Range.End

	stage := process.NewStage(s.stage, s.catalog, settledViewport{vp: vp}, process.NewSignal(lang), nil)
	stage.Mount()
	defer stage.Unmount()
	return stage.Frame()
}

func (s service) latestPosts() []content.Post {
	posts := s.catalog.Posts()
	if len(posts) > latestPosts {
		posts = posts[:latestPosts]
	}
	return posts
}
