package levels

import "embed"

//go:embed data/*.json
var builtin embed.FS

// Embedded returns a loader for the built-in level pack.
func Embedded() *Loader {
	return NewLoader(builtin, "data")
}
