package config

import (
	_ "embed"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/taglist"
)

//go:embed defaults.yaml
var embeddedDefaults []byte

// Defaults captures site-wide settings applied to every tag field on a page.
type Defaults struct {
	HostClass   string          `yaml:"hostClass"`
	StripMarkup bool            `yaml:"stripMarkup"`
	Editor      editor.Config   `yaml:"editor"`
	Messages    editor.Messages `yaml:"messages"`
	Theme       Theme           `yaml:"theme"`
}

// Theme names the go-theme selection plus the class tokens the vanilla
// renderer reads.
type Theme struct {
	Name      string            `yaml:"name"`
	Variant   string            `yaml:"variant"`
	Tokens    map[string]string `yaml:"tokens"`
	Partials  map[string]string `yaml:"partials"`
	CSSVars   map[string]string `yaml:"cssVars"`
	AssetBase string            `yaml:"assetBase"`
}

// Default returns the embedded defaults. It panics only if the embedded
// document is broken, which the package tests guard against.
func Default() Defaults {
	defaults, err := Parse(embeddedDefaults, "defaults.yaml")
	if err != nil {
		panic(err)
	}
	return defaults
}

// EmbeddedYAML exposes the raw embedded defaults document.
func EmbeddedYAML() []byte {
	return append([]byte(nil), embeddedDefaults...)
}

// LoadFS reads a YAML defaults document from fsys. Keys absent from the
// document keep their built-in values.
func LoadFS(fsys fs.FS, name string) (Defaults, error) {
	if fsys == nil {
		return Defaults{}, fmt.Errorf("config: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Defaults{}, fmt.Errorf("config: read %s: %w", name, err)
	}
	return overlay(data, name)
}

// LoadFile reads a YAML defaults document from disk.
func LoadFile(filename string) (Defaults, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Defaults{}, fmt.Errorf("config: read %s: %w", filename, err)
	}
	return overlay(data, filename)
}

// Parse decodes a complete defaults document.
func Parse(data []byte, source string) (Defaults, error) {
	var out Defaults
	if err := yaml.Unmarshal(data, &out); err != nil {
		return Defaults{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	return out.normalize(source)
}

func overlay(data []byte, source string) (Defaults, error) {
	base := Default()
	if err := yaml.Unmarshal(data, &base); err != nil {
		return Defaults{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	return base.normalize(source)
}

func (d Defaults) normalize(source string) (Defaults, error) {
	d.HostClass = strings.TrimSpace(d.HostClass)
	if strings.TrimSpace(d.Editor.Placeholder) == "" {
		d.Editor.Placeholder = editor.DefaultPlaceholder
	}
	if d.Editor.Disabled {
		return Defaults{}, fmt.Errorf("config: %s: editor.disabled cannot be set site-wide", source)
	}
	if err := d.Editor.Validate(); err != nil {
		return Defaults{}, fmt.Errorf("config: %s: %w", source, err)
	}
	d.Messages = d.Messages.WithDefaults()
	return d, nil
}

// EditorOptions translates the defaults into editor options.
func (d Defaults) EditorOptions() []editor.Option {
	options := []editor.Option{editor.WithMessages(d.Messages)}
	if d.StripMarkup {
		options = append(options, editor.WithNormalizer(taglist.StripMarkup))
	}
	return options
}

// RendererConfig converts the theme section into the go-theme renderer
// configuration consumed by renderers.
func (t Theme) RendererConfig() *theme.RendererConfig {
	base := strings.TrimSpace(t.AssetBase)
	return &theme.RendererConfig{
		Theme:    strings.TrimSpace(t.Name),
		Variant:  strings.TrimSpace(t.Variant),
		Tokens:   maps.Clone(t.Tokens),
		Partials: maps.Clone(t.Partials),
		CSSVars:  maps.Clone(t.CSSVars),
		AssetURL: func(key string) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			if base == "" {
				return key
			}
			return path.Join(base, key)
		},
	}
}
