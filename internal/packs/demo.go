package packs

import (
	"embed"
	"io/fs"
)

//go:embed demo
var demoFS embed.FS

// Demo returns the built-in starter catalog, used when no packs directory
// is configured.
func Demo() fs.FS {
	sub, err := fs.Sub(demoFS, "demo")
	if err != nil {
		// embed paths are fixed at compile time
		panic(err)
	}
	return sub
}
