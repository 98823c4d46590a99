package dom

import (
	"io"
	"log/slog"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-tagfield/pkg/widgets"
)

// ViewRenderer is the pure render function used to rebuild widget subtrees.
// *vanilla.Renderer satisfies it.
type ViewRenderer interface {
	RenderView(view vanilla.View) (string, error)
}

type Option func(*config)

type config struct {
	renderer      ViewRenderer
	registry      *widgets.Registry
	defaults      editor.Config
	editorOptions []editor.Option
	theme         *theme.RendererConfig
	logger        *slog.Logger
}

// WithRenderer overrides the view renderer.
func WithRenderer(renderer ViewRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.renderer = renderer
		}
	}
}

// WithWidgetRegistry overrides the registry deciding which inputs become tag
// widgets.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithDefaults sets the config used where host attributes are absent.
func WithDefaults(defaults editor.Config) Option {
	return func(cfg *config) {
		cfg.defaults = defaults
	}
}

// WithEditorOptions appends options applied to every editor (messages,
// normalizer).
func WithEditorOptions(options ...editor.Option) Option {
	return func(cfg *config) {
		cfg.editorOptions = append(cfg.editorOptions, options...)
	}
}

// WithTheme sets the class tokens, CSS variables and partials used when
// rendering.
func WithTheme(rendererTheme *theme.RendererConfig) Option {
	return func(cfg *config) {
		cfg.theme = rendererTheme
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
