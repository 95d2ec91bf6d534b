package templates

import (
	"context"

	"github.com/a-h/templ"

	platformi18n "github.com/volt-agency/site/internal/platform/i18n"
	sitei18n "github.com/volt-agency/site/internal/services/site/platform/i18n"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

// PageContext carries the chrome shared by every page.
type PageContext struct {
	Title       string
	Description string
	Lang        platformi18n.Code
	Loc         Localizer
	Languages   []sitei18n.LanguageOption
	ContactURL  string
	Industries  []string
}

type navItem struct {
	key  string
	href string
}

var navItems = []navItem{
	{key: "core.nav.services", href: routepath.Section(routepath.AnchorServices)},
	{key: "core.nav.work", href: routepath.Section(routepath.AnchorWork)},
	{key: "core.nav.about", href: routepath.Section(routepath.AnchorAbout)},
	{key: "core.nav.news", href: routepath.News},
	{key: "core.nav.steps", href: routepath.Section(routepath.AnchorSteps)},
	{key: "core.nav.contact", href: routepath.Section(routepath.AnchorContact)},
}

// Layout renders the document shell around the component's children.
func Layout(page PageContext) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		lang := page.Lang
		if lang == "" {
			lang = platformi18n.Default()
		}
		h.raw("<!doctype html>")
		h.open("html", "lang", lang.String())
		h.raw("<head>", `<meta charset="utf-8">`, `<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", page.Title)
		if page.Description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", page.Description)
			h.raw(">")
		}
		h.raw(`<link rel="stylesheet"`)
		h.attr("href", routepath.Static("site.css"))
		h.raw("></head>")

		h.open("body", "data-lang", lang.String())
		h.render(ctx, header(page))
		h.raw(`<main id="top">`)
		h.render(ctx, templ.GetChildren(ctx))
		h.raw("</main>")
		h.render(ctx, footer(page))
		h.render(ctx, LeadModal(page.Industries, page.Loc))
		h.raw(`<script defer`)
		h.attr("src", routepath.Static("site.js"))
		h.raw("></script></body></html>")
	})
}

func header(page PageContext) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<header class="site-header">`)
		h.element("a", T(page.Loc, "core.brand"), "class", "brand", "href", routepath.Root)
		h.open("nav", "class", "site-nav", "aria-label", "Main")
		for _, item := range navItems {
			h.element("a", T(page.Loc, item.key), "href", item.href)
		}
		h.close("nav")

		h.open("div", "class", "lang-switcher", "role", "group", "aria-label", T(page.Loc, "core.nav.language"))
		for _, option := range page.Languages {
			class := "lang-option"
			if option.Active {
				class += " is-active"
			}
			h.element("a", option.Label, "class", class, "href", option.URL, "hreflang", option.Code.String())
		}
		h.close("div")

		if page.ContactURL != "" {
			h.element("a", T(page.Loc, "core.nav.telegram"), "class", "btn btn-outline", "href", page.ContactURL, "target", "_blank", "rel", "noreferrer")
		}
		h.element("button", T(page.Loc, "core.nav.get_started"), "class", "btn btn-primary", "type", "button", "data-open-lead", "")
		h.raw("</header>")
	})
}

func footer(page PageContext) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<footer class="site-footer">`)
		h.element("span", T(page.Loc, "core.brand"), "class", "brand")
		h.element("p", T(page.Loc, "core.footer.tagline"))
		h.open("nav", "class", "footer-nav")
		for _, item := range navItems {
			h.element("a", T(page.Loc, item.key), "href", item.href)
		}
		if page.ContactURL != "" {
			h.element("a", T(page.Loc, "core.nav.telegram"), "href", page.ContactURL, "target", "_blank", "rel", "noreferrer")
		}
		h.close("nav")
		h.element("small", "© VOLT. "+T(page.Loc, "core.footer.rights"))
		h.raw("</footer>")
	})
}
