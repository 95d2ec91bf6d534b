// Package static embeds the site's stylesheet and browser script.
package static

import "embed"

// FS exposes site static assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
