package uischema

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/model"
)

const widgetMetadataKey = "widget"

// Decorator applies UI schema overrides to a form model.
type Decorator struct {
	store *Store
}

// NewDecorator builds a Decorator backed by the provided store. When store is
// nil or empty, the decorator becomes a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate rewrites the fields of form that have an override. When no
// matching form id is found the form is left untouched.
func (d *Decorator) Decorate(form *model.FormModel) error {
	if d == nil || d.store.Empty() || form == nil {
		return nil
	}

	overlay, ok := d.store.Form(form.ID)
	if !ok {
		return nil
	}
	for idx, field := range form.Fields {
		cfg, ok := overlay.Fields[field.Name]
		if !ok {
			continue
		}
		form.Fields[idx] = applyFieldConfig(field, cfg)
	}
	return nil
}

func applyFieldConfig(field model.Field, cfg FieldConfig) model.Field {
	if cfg.Label != "" {
		field.Label = cfg.Label
	}
	if cfg.Description != "" {
		field.Description = cfg.Description
	}

	if cfg.Placeholder != "" {
		field.Attributes = ensureMap(field.Attributes)
		field.Attributes[editor.AttrPlaceholder] = cfg.Placeholder
	}
	if cfg.MinItems != nil {
		field.Attributes = ensureMap(field.Attributes)
		field.Attributes[editor.AttrMinItems] = strconv.Itoa(*cfg.MinItems)
	}
	if cfg.MaxItems != nil {
		field.Attributes = ensureMap(field.Attributes)
		field.Attributes[editor.AttrMaxItems] = strconv.Itoa(*cfg.MaxItems)
	}
	if cfg.Disabled != nil {
		field.Attributes = ensureMap(field.Attributes)
		if *cfg.Disabled {
			field.Attributes[editor.AttrDisabled] = ""
		} else {
			delete(field.Attributes, editor.AttrDisabled)
			delete(field.Attributes, editor.AttrDataDisabled)
		}
	}

	if widget := strings.TrimSpace(cfg.Widget); widget != "" {
		field.Metadata = ensureMap(field.Metadata)
		field.Metadata[widgetMetadataKey] = widget
	}
	for _, class := range model.ParseClasses(cfg.CSSClass) {
		if !field.HasClass(class) {
			field.Classes = append(field.Classes, class)
		}
	}
	if len(cfg.UIHints) > 0 {
		field.UIHints = ensureMap(field.UIHints)
		for key, value := range cfg.UIHints {
			field.UIHints[key] = value
		}
	}
	return field
}

func ensureMap(m map[string]string) map[string]string {
	if m == nil {
		return make(map[string]string)
	}
	return m
}
