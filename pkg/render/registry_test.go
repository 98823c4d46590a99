package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/model"
	"github.com/goliatone/go-tagfield/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, field model.Field, _ render.RenderOptions) ([]byte, error) {
	return []byte(s.name + ":" + field.Value), nil
}

func TestRegistry(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(stubRenderer{name: "vanilla"})
	reg.MustRegister(stubRenderer{name: "tui"})

	if err := reg.Register(stubRenderer{name: "vanilla"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(stubRenderer{name: " "}); err == nil {
		t.Fatalf("expected empty name error")
	}

	if diff := cmp.Diff([]string{"tui", "vanilla"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	out, err := reg.Render(context.Background(), "", model.Field{Value: "a,b"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render default: %v", err)
	}
	if string(out) != "vanilla:a,b" {
		t.Fatalf("default renderer output: %q", out)
	}

	if err := reg.SetDefault("tui"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	if renderer, _ := reg.Get(""); renderer.Name() != "tui" {
		t.Fatalf("expected tui default, got %s", renderer.Name())
	}
	if err := reg.SetDefault("missing"); err == nil {
		t.Fatalf("expected unknown default error")
	}
	if _, err := reg.Get("missing"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}

func TestBuildEditor(t *testing.T) {
	var reported []error
	field := model.Field{
		Name:  "languages",
		Value: "fr, en ,fr",
		Attributes: map[string]string{
			"data-min-items": "1",
			"data-max-items": "oops",
		},
	}

	ed, err := render.BuildEditor(field, render.RenderOptions{
		Defaults: editor.Config{MaxItems: 4, Placeholder: "Add a language"},
		OnConfigError: func(_ model.Field, err error) {
			reported = append(reported, err)
		},
	})
	if !errors.Is(err, editor.ErrInvalidCount) {
		t.Fatalf("expected invalid count, got %v", err)
	}
	if len(reported) != 1 {
		t.Fatalf("expected config error to be reported once, got %d", len(reported))
	}
	want := editor.Config{MinItems: 1, MaxItems: 4, Placeholder: "Add a language"}
	if diff := cmp.Diff(want, ed.Config()); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"fr", "en"}, ed.Tags()); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeMessages(t *testing.T) {
	merged := render.MergeMessages([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged messages mismatch (-want +got):\n%s", diff)
	}
	if got := render.MergeMessages(nil, " "); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
}
