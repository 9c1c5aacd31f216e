// Package web holds the static pages and tree images served by the API.
package web

import "embed"

//go:embed *.html images/*.png
var Site embed.FS
