package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/volt-agency/site/internal/content"
	"github.com/volt-agency/site/internal/services/site/routepath"
)

const newsDateLayout = "2006-01-02"

// NewsList renders the news index.
func NewsList(posts []content.Post, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="news" id="news">`)
		h.element("p", T(loc, "news.label"), "class", "kicker")
		h.element("h1", T(loc, "news.title"))
		h.raw(`<div class="news-grid">`)
		for _, post := range posts {
			h.render(ctx, newsCard(post, loc))
		}
		h.raw("</div></section>")
	})
}

func newsCard(post content.Post, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		href := routepath.NewsPost(post.ID)
		h.open("article", "class", "news-card", "id", post.Anchor())
		if post.Image != "" {
			h.open("img", "src", post.Image, "alt", post.Title, "loading", "lazy")
		}
		h.element("time", post.Published().Format(newsDateLayout), "datetime", post.Date)
		h.raw("<h2>")
		h.element("a", post.Title, "href", href)
		h.raw("</h2>")
		h.element("p", post.Excerpt)
		h.element("a", T(loc, "news.read_more"), "class", "read-more", "href", href)
		h.close("article")
	})
}

// NewsArticle renders one post.
func NewsArticle(post content.Post, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("article", "class", "news-article", "id", post.Anchor())
		h.element("a", T(loc, "news.back"), "class", "back-link", "href", routepath.News)
		h.element("time", post.Published().Format(newsDateLayout), "datetime", post.Date)
		h.element("h1", post.Title)
		if post.Image != "" {
			h.open("img", "src", post.Image, "alt", post.Title)
		}
		for _, paragraph := range post.Paragraphs() {
			h.element("p", paragraph)
		}
		h.close("article")
	})
}

// NewsNotFound renders the missing-post state.
func NewsNotFound(loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="news-article news-missing">`)
		h.element("h1", T(loc, "news.not_found"))
		h.element("a", T(loc, "news.not_found_back"), "class", "back-link", "href", routepath.News)
		h.raw("</section>")
	})
}
