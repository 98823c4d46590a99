package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-tagfield/pkg/model"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetTags = "tags"
)

// DefaultHostClass marks host inputs that should become tag editors.
const DefaultHostClass = "comma-input-field"

// HostAttrWidget lets a host element name its widget explicitly.
const HostAttrWidget = "data-widget"

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for host fields based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order. An empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in tag matcher for
// DefaultHostClass.
func NewRegistry() *Registry {
	return NewRegistryForClass(DefaultHostClass)
}

// NewRegistryForClass constructs a registry whose built-in tag matcher looks
// for hostClass instead of DefaultHostClass.
func NewRegistryForClass(hostClass string) *Registry {
	reg := &Registry{}
	reg.registerBuiltins(hostClass)
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence. Callers should avoid duplicate names; the
// latest registration wins during resolution.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. Explicit hints (metadata, UI
// hints, or the host data-widget attribute) are honoured before matcher
// evaluation.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if explicit := explicitWidget(field); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Matches reports whether field resolves to widget.
func (r *Registry) Matches(field model.Field, widget string) bool {
	name, ok := r.Resolve(field)
	return ok && name == widget
}

// Decorate implements model.Decorator, applying registry resolution to every
// field in the form. When a widget is resolved, both Metadata["widget"] and
// UIHints["widget"] are set to the chosen name, preserving existing values
// when present.
func (r *Registry) Decorate(form *model.FormModel) error {
	if r == nil || form == nil {
		return nil
	}
	for idx, field := range form.Fields {
		form.Fields[idx] = r.decorateField(field)
	}
	return nil
}

func (r *Registry) decorateField(field model.Field) model.Field {
	widget, ok := r.Resolve(field)
	if !ok || widget == "" {
		return field
	}
	if field.Metadata == nil {
		field.Metadata = make(map[string]string)
	}
	if field.Metadata["widget"] == "" {
		field.Metadata["widget"] = widget
	}
	if field.UIHints == nil {
		field.UIHints = make(map[string]string)
	}
	if field.UIHints["widget"] == "" {
		field.UIHints["widget"] = widget
	}
	return field
}

func explicitWidget(field model.Field) string {
	if field.Metadata != nil {
		if widget := strings.TrimSpace(field.Metadata["widget"]); widget != "" {
			return widget
		}
	}
	if widget := field.Hint("widget"); widget != "" {
		return widget
	}
	if widget, ok := field.Attr(HostAttrWidget); ok {
		return strings.TrimSpace(widget)
	}
	return ""
}

func (r *Registry) registerBuiltins(hostClass string) {
	hostClass = strings.TrimSpace(hostClass)
	if hostClass == "" {
		hostClass = DefaultHostClass
	}
	r.Register(WidgetTags, 100, func(field model.Field) bool {
		return field.HasClass(hostClass)
	})
}
