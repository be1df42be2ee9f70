// Package web embeds the page templates and the static assets served next
// to them.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html static/css/*.css static/js/*.js
var FS embed.FS

// Static returns the static/ subtree rooted at its own directory.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
