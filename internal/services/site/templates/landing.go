package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/volt-agency/site/internal/content"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

// LandingView is everything the landing page shows.
type LandingView struct {
	Copy    content.Page
	Process ProcessView
	Posts   []content.Post
}

// Landing renders the landing page body.
func Landing(view LandingView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="hero">`)
		h.element("p", T(loc, "landing.hero.kicker"), "class", "kicker")
		h.element("h1", T(loc, "landing.hero.title"))
		h.element("p", T(loc, "landing.hero.subtitle"), "class", "hero-subtitle")
		h.element("button", T(loc, "landing.hero.cta"), "class", "btn btn-primary", "type", "button", "data-open-lead", "")
		h.raw("</section>")

		h.open("section", "class", "about", "id", routepath.AnchorAbout)
		h.element("p", T(loc, "landing.about.label"), "class", "kicker")
		h.element("h2", T(loc, "landing.about.title"))
		h.element("p", T(loc, "landing.about.body"))
		h.close("section")

		h.render(ctx, services(view.Copy.Services))
		h.render(ctx, cases(view.Copy.Cases, loc))
		h.render(ctx, ProcessSection(view.Process, loc))

		if len(view.Posts) > 0 {
			h.raw(`<section class="news-teaser">`)
			h.element("p", T(loc, "news.label"), "class", "kicker")
			h.raw(`<div class="news-grid">`)
			for _, post := range view.Posts {
				h.render(ctx, newsCard(post, loc))
			}
			h.raw("</div></section>")
		}

		h.open("section", "class", "cta", "id", routepath.AnchorContact)
		h.element("h2", T(loc, "landing.cta.title"))
		h.element("p", T(loc, "landing.cta.subtitle"))
		h.element("button", T(loc, "landing.cta.button"), "class", "btn btn-primary", "type", "button", "data-open-lead", "")
		h.close("section")
	})
}

func services(section content.Services) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("section", "class", "services", "id", routepath.AnchorServices)
		h.element("p", section.Label, "class", "kicker")
		h.element("h2", section.Heading)
		h.raw(`<div class="services-grid">`)
		for _, item := range section.Items {
			h.raw(`<article class="service-card">`)
			h.element("h3", item.Title)
			for _, line := range item.Lines() {
				h.element("p", line)
			}
			h.element("button", item.Button, "class", "btn btn-outline", "type", "button", "data-open-lead", "")
			h.raw("</article>")
		}
		h.raw("</div>")
		if section.Marquee != "" {
			h.element("div", section.Marquee, "class", "marquee", "aria-hidden", "true")
		}
		h.close("section")
	})
}

func cases(section content.Cases, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("section", "class", "cases", "id", routepath.AnchorWork)
		h.element("p", section.Kicker, "class", "kicker")
		h.element("h2", section.Title)
		h.element("p", section.Text)
		for _, item := range section.Items {
			h.open("article", "class", "case-card", "data-case", itoa(item.ID))
			h.element("h3", item.Title)
			h.element("p", item.Subtitle, "class", "case-subtitle")
			h.raw("<dl>")
			for _, metric := range item.Metrics {
				h.element("dt", metric.Label)
				h.element("dd", metric.Value)
			}
			h.raw("</dl>")
			h.element("h4", T(loc, "landing.cases.goal_label"))
			h.element("p", item.Goal)
			h.element("h4", T(loc, "landing.cases.did_label"))
			h.raw("<ul>")
			for _, result := range item.Results {
				h.element("li", result)
			}
			h.raw("</ul>")
			h.close("article")
		}
		h.close("section")
	})
}
