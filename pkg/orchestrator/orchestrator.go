package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tagfield/pkg/config"
	"github.com/goliatone/go-tagfield/pkg/dom"
	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/model"
	"github.com/goliatone/go-tagfield/pkg/render"
	"github.com/goliatone/go-tagfield/pkg/renderers/tui"
	"github.com/goliatone/go-tagfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-tagfield/pkg/widgets"
)

const defaultRendererName = "vanilla"

// ErrNoTagFields is returned by Generate when no field resolves to the tags
// widget.
var ErrNoTagFields = errors.New("orchestrator: no tag fields in form")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithWidgetRegistry overrides the registry deciding which fields are tag
// fields. By default it matches the configured host class.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		o.widgets = registry
	}
}

// WithDefaults sets the site-wide defaults (usually from config.LoadFile).
func WithDefaults(defaults config.Defaults) Option {
	return func(o *Orchestrator) {
		o.defaults = defaults
		o.defaultsSet = true
	}
}

// WithTheme overrides the theme derived from the defaults.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(o *Orchestrator) {
		o.theme = cfg
	}
}

// WithUIDecorators registers decorators that run against the form model
// before rendering, after the widget registry has tagged the fields.
func WithUIDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithLogger sets the logger used for configuration warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates defaults, widget resolution and rendering. It
// applies sensible defaults (embedded config, vanilla and tui renderers)
// while remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	widgets         *widgets.Registry
	defaults        config.Defaults
	defaultsSet     bool
	theme           *theme.RendererConfig
	decorators      []model.Decorator
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a form whose tag fields should be rendered.
type Request struct {
	Form model.FormModel

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request values such as server-side errors.
	// Zero fields are filled from the orchestrator defaults.
	RenderOptions render.RenderOptions
}

// Summary describes one widget after an Enhance pass.
type Summary struct {
	Name  string   `json:"name"`
	ID    string   `json:"id,omitempty"`
	Value string   `json:"value"`
	Tags  []string `json:"tags"`
	State string   `json:"state"`
}

// Generate renders every tag field of req.Form with the selected renderer.
// Outputs are joined with newlines.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	form := model.FormModel{ID: req.Form.ID, Fields: make([]model.Field, 0, len(req.Form.Fields))}
	for _, field := range req.Form.Fields {
		form.Fields = append(form.Fields, field.Clone())
	}
	if err := o.applyDecorators(&form); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	ctx = vanilla.WithSequence(ctx)
	options := o.renderOptions(req.RenderOptions)

	var parts []string
	for _, field := range form.Fields {
		if !o.widgets.Matches(field, widgets.WidgetTags) {
			continue
		}
		output, err := renderer.Render(ctx, field, options)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: render field %q: %w", field.Name, err)
		}
		parts = append(parts, string(output))
	}
	if len(parts) == 0 {
		return nil, ErrNoTagFields
	}
	return []byte(strings.Join(parts, "\n")), nil
}

// Enhance parses an HTML page from src, mounts a widget on every tag field
// and writes the resulting page to dst.
func (o *Orchestrator) Enhance(ctx context.Context, src io.Reader, dst io.Writer) ([]Summary, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	options := []dom.Option{
		dom.WithWidgetRegistry(o.widgets),
		dom.WithDefaults(o.defaults.Editor),
		dom.WithEditorOptions(o.defaults.EditorOptions()...),
		dom.WithTheme(o.theme),
		dom.WithLogger(o.logger),
	}
	if renderer, err := o.registry.Get(defaultRendererName); err == nil {
		if view, ok := renderer.(dom.ViewRenderer); ok {
			options = append(options, dom.WithRenderer(view))
		}
	}

	doc, err := dom.Parse(src, options...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	mounted, err := doc.Enhance()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: enhance: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := doc.Render(dst); err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	summaries := make([]Summary, 0, len(mounted))
	for _, w := range mounted {
		field := w.Field()
		summaries = append(summaries, Summary{
			Name:  field.Name,
			ID:    field.ID,
			Value: w.Value(),
			Tags:  w.Tags(),
			State: w.Editor().State().String(),
		})
	}
	return summaries, nil
}

// Defaults returns the defaults in effect.
func (o *Orchestrator) Defaults() config.Defaults {
	return o.defaults
}

func (o *Orchestrator) renderOptions(base render.RenderOptions) render.RenderOptions {
	out := base
	if out.Defaults == (editor.Config{}) {
		out.Defaults = o.defaults.Editor
	}
	editorOptions := o.defaults.EditorOptions()
	out.EditorOptions = append(editorOptions, base.EditorOptions...)
	if out.Theme == nil {
		out.Theme = o.theme
	}
	if out.OnConfigError == nil {
		logger := o.logger
		out.OnConfigError = func(field model.Field, err error) {
			logger.Warn("invalid tag field configuration", "field", field.Name, "error", err)
		}
	}
	return out
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(form *model.FormModel) error {
	if err := o.widgets.Decorate(form); err != nil {
		return fmt.Errorf("orchestrator: decorate form: %w", err)
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return fmt.Errorf("orchestrator: decorate form: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if !o.defaultsSet {
		o.defaults = config.Default()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.widgets == nil {
		o.widgets = widgets.NewRegistryForClass(o.defaults.HostClass)
	}
	if o.theme == nil {
		o.theme = o.defaults.Theme.RendererConfig()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)

		terminal, err := tui.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: tui renderer: %w", err)
			return
		}
		o.registry.MustRegister(terminal)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
