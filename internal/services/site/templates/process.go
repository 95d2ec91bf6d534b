package templates

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/volt-agency/site/internal/process"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

// ProcessView is the process section laid out for an initial viewport.
type ProcessView struct {
	Label   string
	Heading string
	Lang    string
	Frame   process.Frame
}

// ProcessSection renders the card stack at its initial positions. The page
// script takes over positioning once it has measured the real viewport.
func ProcessSection(view ProcessView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		layout := view.Frame.Layout
		h.open("section", "class", "process", "id", routepath.AnchorSteps,
			"data-process", "", "data-api", routepath.APIProcess, "data-lang", view.Lang)
		h.open("div", "class", "process-stage "+layout.Class.String(),
			"style", fmt.Sprintf("--stage-lift: %s; --header-safe-top: %s", px(layout.StageLift), px(layout.HeaderSafeTop)))
		h.raw(`<header class="process-heading">`)
		h.element("p", view.Label, "class", "kicker")
		h.element("h2", view.Heading)
		h.raw("</header>")

		h.open("div", "class", "process-cards", "style", fmt.Sprintf("width: %s; height: %s", px(layout.CardSide), px(layout.CardSide)))
		for _, card := range view.Frame.Cards {
			h.render(ctx, processCard(card, loc))
		}
		h.raw("</div></div>")
		h.open("div", "class", "process-spacer", "aria-hidden", "true", "style", "height: "+px(layout.SpacerHeight))
		h.raw("</div></section>")
	})
}

func processCard(card process.Card, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		counter := fmt.Sprintf("%d/%d", card.Step.Index+1, card.Total)
		h.open("article",
			"class", fmt.Sprintf("process-card theme-%d", card.Theme),
			"data-step", itoa(card.Step.Index),
			"data-phase", card.Phase.String(),
			"style", fmt.Sprintf("transform: translate3d(0, %s, 0); z-index: %d", px(card.Position.Y), card.Position.Z))
		h.raw(`<div class="card-top">`)
		h.element("span", card.Step.Ordinal, "class", "card-ordinal")
		h.element("span", T(loc, "landing.process.step_label")+" "+counter, "class", "card-step")
		h.raw("</div>")
		h.element("h3", card.Step.Title)
		h.element("p", card.Step.Description)
		h.raw(`<div class="card-footer">`)
		h.element("span", T(loc, "landing.process.brand"))
		h.element("span", counter)
		h.raw("</div>")
		h.close("article")
	})
}
