package tagfield

import (
	"io/fs"

	"github.com/goliatone/go-tagfield/pkg/config"
	"github.com/goliatone/go-tagfield/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the default stylesheet.
//
// Typical mount:
//
//	mux.Handle("/tagfield/",
//	  http.StripPrefix("/tagfield/",
//	    http.FileServerFS(tagfield.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}

// DefaultConfigYAML returns the embedded defaults document, a starting point
// for a site configuration file.
func DefaultConfigYAML() []byte {
	return config.EmbeddedYAML()
}
