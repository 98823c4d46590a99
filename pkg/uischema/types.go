package uischema

// Store keeps the parsed forms from UI schema documents. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	forms map[string]Form
}

// Form describes the overrides for a single form id.
type Form struct {
	ID     string
	Source string
	Fields map[string]FieldConfig
}

// FieldConfig customises one tag field. Pointer fields distinguish "not set"
// from an explicit zero.
type FieldConfig struct {
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	MinItems    *int              `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems    *int              `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	Disabled    *bool             `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Widget      string            `json:"widget,omitempty" yaml:"widget,omitempty"`
	CSSClass    string            `json:"cssClass,omitempty" yaml:"cssClass,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty" yaml:"uiHints,omitempty"`
}
