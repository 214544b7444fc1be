package appconfig

import "embed"

// Sources embeds this package's own source files, feeding the documentation
// extractor so that generated config files carry the field docs right below
// the values.
//
//go:embed *.go
var Sources embed.FS
