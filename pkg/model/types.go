package model

import (
	"maps"
	"slices"
	"strings"
)

// Field is a host input read from a server-rendered page or declared by a Go
// caller. Attributes preserves presence: a boolean attribute such as
// `disabled` is stored with an empty value.
type Field struct {
	Name        string            `json:"name"`
	ID          string            `json:"id,omitempty"`
	Label       string            `json:"label,omitempty"`
	Description string            `json:"description,omitempty"`
	Value       string            `json:"value,omitempty"`
	Classes     []string          `json:"classes,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// FormModel groups the fields of one form.
type FormModel struct {
	ID     string  `json:"id,omitempty"`
	Fields []Field `json:"fields"`
}

// Attr returns an attribute and whether it is present.
func (f Field) Attr(name string) (string, bool) {
	if f.Attributes == nil {
		return "", false
	}
	value, ok := f.Attributes[name]
	return value, ok
}

// HasClass reports whether the field carries the class token.
func (f Field) HasClass(class string) bool {
	class = strings.TrimSpace(class)
	if class == "" {
		return false
	}
	return slices.Contains(f.Classes, class)
}

// Hint returns a trimmed UI hint.
func (f Field) Hint(key string) string {
	if f.UIHints == nil {
		return ""
	}
	return strings.TrimSpace(f.UIHints[key])
}

// Clone returns a deep copy so decorators can mutate freely.
func (f Field) Clone() Field {
	out := f
	out.Classes = slices.Clone(f.Classes)
	out.Attributes = maps.Clone(f.Attributes)
	out.UIHints = maps.Clone(f.UIHints)
	out.Metadata = maps.Clone(f.Metadata)
	return out
}

// ParseClasses splits a class attribute into tokens.
func ParseClasses(raw string) []string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
