// Package assets bundles the plain-text level maps shipped with the
// game, exposed as an fs.FS so the loader treats bundled and external
// maps the same way.
package assets

import "embed"

//go:embed all:levels
var FS embed.FS
