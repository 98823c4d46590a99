package uischema_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tagfield/pkg/uischema"
)

const profileYAML = `
forms:
  profile:
    fields:
      languages:
        label: Spoken languages
        description: Most fluent first.
        placeholder: Add a language
        minItems: 1
        maxItems: 3
        uiHints:
          helpText: Use ISO names
      skills:
        disabled: true
        cssClass: wide
`

const signupJSON = `{
  "forms": {
    "signup": {
      "fields": {
        "interests": {"widget": "tags", "maxItems": 0}
      }
    }
  }
}`

func loadStore(t *testing.T) *uischema.Store {
	t.Helper()
	store, err := uischema.LoadFS(fstest.MapFS{
		"ui/profile.yaml": &fstest.MapFile{Data: []byte(profileYAML)},
		"ui/signup.json":  &fstest.MapFile{Data: []byte(signupJSON)},
		"ui/README.md":    &fstest.MapFile{Data: []byte("ignored")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return store
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestLoadFS(t *testing.T) {
	store := loadStore(t)
	if store.Empty() {
		t.Fatalf("expected store to contain forms")
	}

	profile, ok := store.Form("profile")
	if !ok {
		t.Fatalf("form profile not found")
	}
	if profile.Source != "ui/profile.yaml" {
		t.Fatalf("source mismatch: %s", profile.Source)
	}
	want := map[string]uischema.FieldConfig{
		"languages": {
			Label:       "Spoken languages",
			Description: "Most fluent first.",
			Placeholder: "Add a language",
			MinItems:    intPtr(1),
			MaxItems:    intPtr(3),
			UIHints:     map[string]string{"helpText": "Use ISO names"},
		},
		"skills": {
			Disabled: boolPtr(true),
			CSSClass: "wide",
		},
	}
	if diff := cmp.Diff(want, profile.Fields); diff != "" {
		t.Fatalf("profile fields mismatch (-want +got):\n%s", diff)
	}

	signup, ok := store.Form("signup")
	if !ok {
		t.Fatalf("form signup not found")
	}
	interests := signup.Fields["interests"]
	if interests.Widget != "tags" || interests.MaxItems == nil || *interests.MaxItems != 0 {
		t.Fatalf("interests mismatch: %#v", interests)
	}

	if _, ok := store.Form("missing"); ok {
		t.Fatalf("unexpected form")
	}
}

func TestLoadFS_Empty(t *testing.T) {
	store, err := uischema.LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil fs: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name  string
		files fstest.MapFS
	}{
		{
			name:  "empty file",
			files: fstest.MapFS{"a.yaml": &fstest.MapFile{Data: []byte("  ")}},
		},
		{
			name:  "malformed json",
			files: fstest.MapFS{"a.json": &fstest.MapFile{Data: []byte("{")}},
		},
		{
			name: "duplicate form",
			files: fstest.MapFS{
				"a.yaml": &fstest.MapFile{Data: []byte("forms:\n  profile:\n    fields: {}\n")},
				"b.yaml": &fstest.MapFile{Data: []byte("forms:\n  profile:\n    fields: {}\n")},
			},
		},
		{
			name:  "min above max",
			files: fstest.MapFS{"a.yaml": &fstest.MapFile{Data: []byte("forms:\n  f:\n    fields:\n      tags:\n        minItems: 4\n        maxItems: 2\n")}},
		},
		{
			name:  "negative max",
			files: fstest.MapFS{"a.yaml": &fstest.MapFile{Data: []byte("forms:\n  f:\n    fields:\n      tags:\n        maxItems: -1\n")}},
		},
		{
			name:  "blank field name",
			files: fstest.MapFS{"a.yaml": &fstest.MapFile{Data: []byte("forms:\n  f:\n    fields:\n      \" \":\n        label: x\n")}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uischema.LoadFS(tc.files); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
