// Package tagfield turns comma-separated host inputs into tag editor widgets.
//
// The root package is a thin facade over pkg/orchestrator for the common
// cases: enhancing a whole HTML page and rendering tag fields server-side.
package tagfield

import (
	"context"
	"io"

	"github.com/goliatone/go-tagfield/pkg/model"
	"github.com/goliatone/go-tagfield/pkg/orchestrator"
	"github.com/goliatone/go-tagfield/pkg/render"
)

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Field aliases model.Field.
type Field = model.Field

// Summary aliases orchestrator.Summary.
type Summary = orchestrator.Summary

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// EnhanceHTML reads a page from r, mounts a tag widget on every matching
// input and writes the page to w.
func EnhanceHTML(ctx context.Context, r io.Reader, w io.Writer, options ...orchestrator.Option) ([]Summary, error) {
	return orchestrator.New(options...).Enhance(ctx, r, w)
}

// GenerateHTML renders the given fields as tag widgets. Fields that do not
// resolve to the tags widget are skipped.
func GenerateHTML(ctx context.Context, fields []Field, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Form: model.FormModel{Fields: fields},
	})
}
