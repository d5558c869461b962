// Package web embeds the HTML templates and static assets so the binary is
// self-contained regardless of working directory.
package web

import "embed"

//go:embed templates assets
var FS embed.FS
