package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/model"
)

// ConfigErrorHandler receives non-fatal configuration problems found while
// reading a host field. The field still renders with clamped values.
type ConfigErrorHandler func(field model.Field, err error)

// RenderOptions describe per-request data that renderers can use to customise
// their output.
type RenderOptions struct {
	// Defaults seeds values the host attributes do not set.
	Defaults editor.Config
	// EditorOptions are applied to every editor the renderer builds
	// (messages, normalizer).
	EditorOptions []editor.Option
	// Theme supplies class tokens, template partial overrides and asset URLs.
	Theme *theme.RendererConfig
	// Errors surfaces server-side validation feedback for the field. Messages
	// are trimmed and de-duplicated before rendering.
	Errors []string
	// OnConfigError is called when host attributes are malformed.
	OnConfigError ConfigErrorHandler
}

// BuildEditor reads the field's attributes into an editor config and creates
// an editor seeded with the field value. A non-nil error is a
// *editor.ConfigError; the returned editor is always usable.
func BuildEditor(field model.Field, options RenderOptions, extra ...editor.Option) (*editor.Editor, error) {
	fallback := options.Defaults
	if fallback == (editor.Config{}) {
		fallback = editor.DefaultConfig()
	}
	cfg, err := editor.ConfigFromAttributes(field.Attributes, fallback)
	if err != nil && options.OnConfigError != nil {
		options.OnConfigError(field, err)
	}
	opts := make([]editor.Option, 0, len(options.EditorOptions)+len(extra))
	opts = append(opts, options.EditorOptions...)
	opts = append(opts, extra...)
	return editor.New(cfg, field.Value, opts...), err
}
