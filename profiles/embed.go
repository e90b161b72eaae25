// Package profiles embeds the shipped profile documents.
package profiles

import "embed"

//go:embed *.yaml
var FS embed.FS
