package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tagfield/pkg/model"
	"github.com/goliatone/go-tagfield/pkg/render"
	rendertemplate "github.com/goliatone/go-tagfield/pkg/render/template"
	gotemplate "github.com/goliatone/go-tagfield/pkg/render/template/gotemplate"
)

const (
	viewTemplate  = "templates/tags.tmpl"
	fieldTemplate = "templates/field.tmpl"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces tag widget markup. RenderView is the pure render function
// used for every re-render; Render emits a complete server-side widget.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	fallback  Sequence
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// RenderView renders the chip row, entry box and minimum warning for a
// snapshot. It has no side effects.
func (r *Renderer) RenderView(view View) (string, error) {
	if r == nil || r.templates == nil {
		return "", fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	name := partialFor(view.Theme, PartialView, viewTemplate)
	out, err := r.templates.RenderTemplate(name, viewContext(view))
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: render view: %w", err)
	}
	return out, nil
}

// Render emits the full widget for field: container, hidden host, chips,
// entry box, warning plus the optional label, description and errors.
// Configuration problems on the field are reported through
// options.OnConfigError and rendering continues with clamped values.
func (r *Renderer) Render(ctx context.Context, field model.Field, options render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	// Config errors were already reported through OnConfigError.
	ed, _ := render.BuildEditor(field, options)
	snap := ed.Snapshot()

	entryID := r.nextEntryID(ctx)
	inner, err := r.RenderView(View{Snapshot: snap, EntryID: entryID, Theme: options.Theme})
	if err != nil {
		return nil, err
	}

	classes := resolveClasses(options.Theme, snap.Disabled)
	name := partialFor(options.Theme, PartialField, fieldTemplate)
	out, err := r.templates.RenderTemplate(name, map[string]any{
		"classes":     classes,
		"style":       ContainerStyle(options.Theme),
		"host_attrs":  hostAttributes(field, snap.Value),
		"view":        inner,
		"entry_id":    entryID,
		"label":       strings.TrimSpace(field.Label),
		"description": strings.TrimSpace(field.Description),
		"errors":      render.MergeMessages(options.Errors),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render field %q: %w", field.Name, err)
	}
	return []byte(out), nil
}

func (r *Renderer) nextEntryID(ctx context.Context) string {
	if seq := sequenceFrom(ctx); seq != nil {
		return seq.Next()
	}
	return r.fallback.Next()
}

func partialFor(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil || cfg.Partials == nil {
		return fallback
	}
	if candidate := strings.TrimSpace(cfg.Partials[key]); candidate != "" {
		return candidate
	}
	return fallback
}
