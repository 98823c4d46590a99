package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Defaults applied when the host element does not configure a value.
const (
	DefaultMinItems    = 0
	DefaultMaxItems    = 10
	DefaultPlaceholder = "Add an item"
)

// Host attribute names read once at construction.
const (
	AttrMinItems     = "data-min-items"
	AttrMaxItems     = "data-max-items"
	AttrDisabled     = "disabled"
	AttrDataDisabled = "data-disabled"
	AttrPlaceholder  = "placeholder"
)

// Config is the per-widget configuration derived from the host element. It
// is immutable for the lifetime of an Editor.
type Config struct {
	MinItems    int    `json:"minItems" yaml:"minItems"`
	MaxItems    int    `json:"maxItems" yaml:"maxItems"`
	Disabled    bool   `json:"disabled" yaml:"disabled"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}

// DefaultConfig returns the configuration used for hosts without attributes.
func DefaultConfig() Config {
	return Config{
		MinItems:    DefaultMinItems,
		MaxItems:    DefaultMaxItems,
		Placeholder: DefaultPlaceholder,
	}
}

// Validate reports configuration problems as a *ConfigError.
func (c Config) Validate() error {
	var issues []error
	if c.MinItems < 0 {
		issues = append(issues, fmt.Errorf("editor: minItems %d: %w", c.MinItems, ErrInvalidCount))
	}
	if c.MaxItems < 0 {
		issues = append(issues, fmt.Errorf("editor: maxItems %d: %w", c.MaxItems, ErrInvalidCount))
	}
	if c.MinItems >= 0 && c.MaxItems >= 0 && c.MinItems > c.MaxItems {
		issues = append(issues, fmt.Errorf("editor: minItems %d > maxItems %d: %w", c.MinItems, c.MaxItems, ErrMinExceedsMax))
	}
	if len(issues) == 0 {
		return nil
	}
	return &ConfigError{Issues: issues}
}

// ConfigFromAttributes builds a Config from host element attributes. The
// fallback supplies values for absent attributes (use DefaultConfig when the
// caller has no site-wide defaults).
//
// Malformed input is never silently accepted: each problem is reported in the
// returned *ConfigError while the returned Config carries the fallback or
// clamped value, so callers can log the error and keep going.
func ConfigFromAttributes(attrs map[string]string, fallback Config) (Config, error) {
	fallback = normalizeFallback(fallback)
	cfg := fallback
	var issues []error

	if raw, ok := attrs[AttrMinItems]; ok {
		value, err := parseCount(AttrMinItems, raw)
		if err != nil {
			issues = append(issues, err)
		} else {
			cfg.MinItems = value
		}
	}
	if raw, ok := attrs[AttrMaxItems]; ok {
		value, err := parseCount(AttrMaxItems, raw)
		if err != nil {
			issues = append(issues, err)
		} else {
			cfg.MaxItems = value
		}
	}
	if cfg.MinItems > cfg.MaxItems {
		issues = append(issues, &AttributeError{
			Attribute: AttrMinItems,
			Value:     strconv.Itoa(cfg.MinItems),
			Err:       fmt.Errorf("%w (maxItems %d), clamped", ErrMinExceedsMax, cfg.MaxItems),
		})
		cfg.MinItems = cfg.MaxItems
	}

	if _, ok := attrs[AttrDisabled]; ok {
		cfg.Disabled = true
	}
	if strings.EqualFold(strings.TrimSpace(attrs[AttrDataDisabled]), "true") {
		cfg.Disabled = true
	}

	if placeholder := strings.TrimSpace(attrs[AttrPlaceholder]); placeholder != "" {
		cfg.Placeholder = placeholder
	}

	if len(issues) == 0 {
		return cfg, nil
	}
	return cfg, &ConfigError{Issues: issues}
}

func normalizeFallback(fallback Config) Config {
	if fallback.MinItems < 0 {
		fallback.MinItems = DefaultMinItems
	}
	if fallback.MaxItems < 0 {
		fallback.MaxItems = DefaultMaxItems
	}
	if fallback.MinItems > fallback.MaxItems {
		fallback.MinItems = fallback.MaxItems
	}
	if strings.TrimSpace(fallback.Placeholder) == "" {
		fallback.Placeholder = DefaultPlaceholder
	}
	return fallback
}

func parseCount(attr, raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &AttributeError{Attribute: attr, Value: raw, Err: ErrInvalidCount}
	}
	if value < 0 {
		return 0, &AttributeError{Attribute: attr, Value: raw, Err: ErrInvalidCount}
	}
	return value, nil
}

// AttributeError describes a single malformed host attribute.
type AttributeError struct {
	Attribute string
	Value     string
	Err       error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("editor: attribute %s=%q: %v", e.Attribute, e.Value, e.Err)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}

// ConfigError aggregates every problem found while building a Config.
type ConfigError struct {
	Issues []error
}

func (e *ConfigError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "editor: invalid config"
	}
	return errors.Join(e.Issues...).Error()
}

func (e *ConfigError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return e.Issues
}
