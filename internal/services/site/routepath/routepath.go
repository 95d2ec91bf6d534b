// Package routepath stores canonical HTTP paths for site modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root            = "/"
	Health          = "/up"
	StaticPrefix    = "/static/"
	News            = "/news"
	NewsPrefix      = "/news/"
	NewsPostPattern = NewsPrefix + "{postID}"
	APIPrefix       = "/api/"
	APILead         = "/api/lead"
	APIProcess      = "/api/process"
)

// Landing page section anchors.
const (
	AnchorServices = "services"
	AnchorWork     = "work"
	AnchorAbout    = "about"
	AnchorNews     = "news"
	AnchorSteps    = "steps"
	AnchorContact  = "contact"
)

// NewsPost returns the detail route of a news post.
func NewsPost(postID string) string {
	return NewsPrefix + escapeSegment(postID)
}

// Static returns the URL of an embedded asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimLeft(name, "/")
}

// Section returns the landing page URL of an anchor.
func Section(anchor string) string {
	return Root + "#" + anchor
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
