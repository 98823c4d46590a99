package render

import (
	"context"

	"github.com/goliatone/go-tagfield/pkg/model"
)

// Renderer converts a host field into a byte representation (HTML markup, a
// serialized value collected interactively, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, field model.Field, options RenderOptions) ([]byte, error)
}
