// Package web holds the embedded static assets served alongside the
// rendered page.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
