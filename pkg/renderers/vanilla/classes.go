package vanilla

import (
	"maps"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ChromeClass is a structural class the document binding relies on. Theme
// tokens add to these classes and never replace them.
type ChromeClass string

const (
	ClassContainer   ChromeClass = "tag-input"
	ClassDisabled    ChromeClass = "tag-input--disabled"
	ClassWrapper     ChromeClass = "tag-input-wrapper"
	ClassChip        ChromeClass = "tag-item"
	ClassSelected    ChromeClass = "selected"
	ClassRemove      ChromeClass = "tag-remove"
	ClassEntry       ChromeClass = "tag-editor"
	ClassAlert       ChromeClass = "min-items-alert"
	ClassErrors      ChromeClass = "tag-input-errors"
	ClassLabel       ChromeClass = "tag-input-label"
	ClassDescription ChromeClass = "tag-input-description"
)

// Theme token keys read from theme.RendererConfig.Tokens.
const (
	TokenContainer   = "tags.container"
	TokenWrapper     = "tags.wrapper"
	TokenChip        = "tags.chip"
	TokenRemove      = "tags.remove"
	TokenEntry       = "tags.entry"
	TokenAlert       = "tags.alert"
	TokenErrors      = "tags.errors"
	TokenLabel       = "tags.label"
	TokenDescription = "tags.description"
)

// Partial keys read from theme.RendererConfig.Partials.
const (
	PartialView  = "forms.tags"
	PartialField = "forms.tags.field"
)

// Data attributes carried by rendered controls.
const (
	AttrTagIndex  = "data-tag-index"
	AttrTagAction = "data-tag-action"
	ActionRemove  = "remove"
)

type classSet struct {
	Container   string `json:"container"`
	Wrapper     string `json:"wrapper"`
	Chip        string `json:"chip"`
	Remove      string `json:"remove"`
	Entry       string `json:"entry"`
	Alert       string `json:"alert"`
	Errors      string `json:"errors"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

func resolveClasses(cfg *theme.RendererConfig, disabled bool) classSet {
	var tokens map[string]string
	if cfg != nil {
		tokens = cfg.Tokens
	}
	return classSet{
		Container:   ContainerClass(cfg, disabled),
		Wrapper:     MergeClasses(string(ClassWrapper), tokens[TokenWrapper]),
		Chip:        MergeClasses(string(ClassChip), tokens[TokenChip]),
		Remove:      MergeClasses(string(ClassRemove), tokens[TokenRemove]),
		Entry:       MergeClasses(string(ClassEntry), tokens[TokenEntry]),
		Alert:       MergeClasses(string(ClassAlert), tokens[TokenAlert]),
		Errors:      MergeClasses(string(ClassErrors), tokens[TokenErrors]),
		Label:       MergeClasses(string(ClassLabel), tokens[TokenLabel]),
		Description: MergeClasses(string(ClassDescription), tokens[TokenDescription]),
	}
}

// ContainerClass returns the class attribute of a widget container.
func ContainerClass(cfg *theme.RendererConfig, disabled bool) string {
	var token string
	if cfg != nil {
		token = cfg.Tokens[TokenContainer]
	}
	out := MergeClasses(string(ClassContainer), token)
	if disabled {
		out = MergeClasses(out, string(ClassDisabled))
	}
	return out
}

// ContainerStyle renders the theme CSS variables as an inline style value.
func ContainerStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(cfg.CSSVars))

	var b strings.Builder
	for _, key := range keys {
		name := strings.TrimSpace(key)
		value := strings.TrimSpace(cfg.CSSVars[key])
		if name == "" || value == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte(';')
	}
	return b.String()
}

// MergeClasses joins class lists, dropping blanks and repeated tokens.
func MergeClasses(lists ...string) string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, token := range strings.Fields(list) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}
	return strings.Join(out, " ")
}

// HasClass reports whether a class attribute contains token.
func HasClass(classAttr string, token ChromeClass) bool {
	return slices.Contains(strings.Fields(classAttr), string(token))
}
