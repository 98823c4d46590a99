package editor_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tagfield/pkg/editor"
)

func TestConfigFromAttributes(t *testing.T) {
	cases := []struct {
		name      string
		attrs     map[string]string
		want      editor.Config
		wantErrIs error
	}{
		{
			name:  "defaults",
			attrs: nil,
			want:  editor.Config{MinItems: 0, MaxItems: 10, Placeholder: "Add an item"},
		},
		{
			name: "explicit values",
			attrs: map[string]string{
				"data-min-items": "2",
				"data-max-items": " 5 ",
				"placeholder":    "Add a language",
			},
			want: editor.Config{MinItems: 2, MaxItems: 5, Placeholder: "Add a language"},
		},
		{
			name:  "native disabled attribute",
			attrs: map[string]string{"disabled": ""},
			want:  editor.Config{MaxItems: 10, Disabled: true, Placeholder: "Add an item"},
		},
		{
			name:  "data-disabled marker",
			attrs: map[string]string{"data-disabled": "true"},
			want:  editor.Config{MaxItems: 10, Disabled: true, Placeholder: "Add an item"},
		},
		{
			name:  "data-disabled false",
			attrs: map[string]string{"data-disabled": "false"},
			want:  editor.Config{MaxItems: 10, Placeholder: "Add an item"},
		},
		{
			name:      "malformed max falls back",
			attrs:     map[string]string{"data-max-items": "lots"},
			want:      editor.Config{MaxItems: 10, Placeholder: "Add an item"},
			wantErrIs: editor.ErrInvalidCount,
		},
		{
			name:      "negative min falls back",
			attrs:     map[string]string{"data-min-items": "-1"},
			want:      editor.Config{MaxItems: 10, Placeholder: "Add an item"},
			wantErrIs: editor.ErrInvalidCount,
		},
		{
			name:      "min above max is clamped",
			attrs:     map[string]string{"data-min-items": "7", "data-max-items": "3"},
			want:      editor.Config{MinItems: 3, MaxItems: 3, Placeholder: "Add an item"},
			wantErrIs: editor.ErrMinExceedsMax,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := editor.ConfigFromAttributes(tc.attrs, editor.DefaultConfig())
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
			if tc.wantErrIs == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErrIs) {
				t.Fatalf("expected %v, got %v", tc.wantErrIs, err)
			}
			var cfgErr *editor.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
		})
	}
}

func TestConfigFromAttributes_ReportsEveryIssue(t *testing.T) {
	_, err := editor.ConfigFromAttributes(map[string]string{
		"data-min-items": "x",
		"data-max-items": "-4",
	}, editor.DefaultConfig())

	var cfgErr *editor.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if len(cfgErr.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(cfgErr.Issues), err)
	}
	var attrErr *editor.AttributeError
	if !errors.As(cfgErr.Issues[1], &attrErr) || attrErr.Attribute != editor.AttrMaxItems {
		t.Fatalf("expected max attribute error, got %v", cfgErr.Issues[1])
	}
}

func TestConfigFromAttributes_UsesFallback(t *testing.T) {
	fallback := editor.Config{MinItems: 1, MaxItems: 4, Placeholder: "Add a greeter language"}
	got, err := editor.ConfigFromAttributes(map[string]string{"data-max-items": "6"}, fallback)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := editor.Config{MinItems: 1, MaxItems: 6, Placeholder: "Add a greeter language"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := editor.DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	err := editor.Config{MinItems: 5, MaxItems: 2}.Validate()
	if !errors.Is(err, editor.ErrMinExceedsMax) {
		t.Fatalf("expected min/max error, got %v", err)
	}
	err = editor.Config{MinItems: -1, MaxItems: -1}.Validate()
	if !errors.Is(err, editor.ErrInvalidCount) {
		t.Fatalf("expected invalid count, got %v", err)
	}
}
