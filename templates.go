package formbuilder

import (
	"io/fs"

	vanilla "github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in html renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the stylesheet bundled with the html renderer.
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
