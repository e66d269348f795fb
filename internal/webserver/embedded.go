package webserver

import "embed"

//go:embed views
var viewsFS embed.FS
