package web

import "embed"

//go:embed *.css
var Static embed.FS

//go:embed *.tmpl
var Templates embed.FS
