package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/volt-agency/site/internal/services/site/routepath"
)

// LeadModal renders the contact form posted to the lead relay.
func LeadModal(industries []string, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.open("div", "class", "lead-modal", "id", "lead", "hidden", "", "role", "dialog", "aria-modal", "true", "aria-labelledby", "lead-title")
		h.raw(`<div class="lead-backdrop" data-close-lead></div><div class="lead-panel">`)
		h.element("p", T(loc, "lead.kicker"), "class", "kicker")
		h.element("h2", T(loc, "lead.title"), "id", "lead-title")
		h.element("p", T(loc, "lead.subtitle"), "class", "lead-subtitle")

		h.open("form", "class", "lead-form", "method", "post", "action", routepath.APILead,
			"data-sending", T(loc, "lead.sending"), "data-failed", T(loc, "lead.failed"))

		field := func(name, labelKey, placeholderKey string) {
			h.raw("<label>")
			h.element("span", T(loc, labelKey))
			h.open("input", "name", name, "type", "text", "autocomplete", "off", "placeholder", T(loc, placeholderKey))
			h.raw("</label>")
		}
		field("name", "lead.name_label", "lead.name_placeholder")
		field("telegram", "lead.telegram_label", "lead.telegram_placeholder")

		h.raw("<label>")
		h.element("span", T(loc, "lead.industry_label"))
		h.open("select", "name", "industry")
		h.element("option", T(loc, "lead.industry_placeholder"), "value", "", "disabled", "", "selected", "")
		for _, industry := range industries {
			h.element("option", industry, "value", industry)
		}
		h.close("select")
		h.raw("</label>")

		h.raw("<label>")
		h.element("span", T(loc, "lead.project_label"))
		h.open("textarea", "name", "project", "rows", "4", "placeholder", T(loc, "lead.project_placeholder"))
		h.close("textarea")
		h.raw("</label>")

		h.raw(`<p class="lead-status" role="status" aria-live="polite"></p><div class="lead-actions">`)
		h.element("button", T(loc, "lead.cancel"), "type", "button", "class", "btn btn-outline", "data-close-lead", "")
		h.element("button", T(loc, "lead.send"), "type", "submit", "class", "btn btn-primary")
		h.raw("</div></form></div></div>")
	})
}
