package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Renderer turns a form configuration into source text for one target
// (Dart, JSX, a Vue single-file component, HTML, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, cfg model.FormConfig, options RenderOptions) ([]byte, error)
}
