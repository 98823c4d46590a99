package taglist

import (
	"slices"
	"strings"
)

// Separator joins tags in the serialized (backing field) form.
const Separator = ","

// List is an ordered sequence of distinct tags. The zero value is an empty
// list ready for use. Order always reflects insertion order.
type List struct {
	items []string
}

// Parse splits a serialized value on Separator, trimming each piece and
// dropping empty pieces. Later duplicates are discarded so the result keeps
// the uniqueness invariant.
func Parse(raw string) List {
	var list List
	if strings.TrimSpace(raw) == "" {
		return list
	}
	for _, piece := range strings.Split(raw, Separator) {
		trimmed := strings.TrimSpace(piece)
		if trimmed == "" || list.Contains(trimmed) {
			continue
		}
		list.items = append(list.items, trimmed)
	}
	return list
}

// New builds a list from the provided values using the same rules as Parse
// (trim, drop empties, drop duplicates). Values containing Separator are
// dropped.
func New(values ...string) List {
	var list List
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" || strings.Contains(trimmed, Separator) || list.Contains(trimmed) {
			continue
		}
		list.items = append(list.items, trimmed)
	}
	return list
}

// Len reports the number of tags.
func (l List) Len() int {
	return len(l.items)
}

// Items returns a copy of the tags in order.
func (l List) Items() []string {
	return slices.Clone(l.items)
}

// At returns the tag at index i.
func (l List) At(i int) (string, bool) {
	if i < 0 || i >= len(l.items) {
		return "", false
	}
	return l.items[i], true
}

// Index returns the position of value or -1. Matching is exact and case
// sensitive.
func (l List) Index(value string) int {
	return slices.Index(l.items, value)
}

// Contains reports whether value is present (exact match).
func (l List) Contains(value string) bool {
	return l.Index(value) >= 0
}

// Join serializes the list for the backing field.
func (l List) Join() string {
	return strings.Join(l.items, Separator)
}

func (l List) String() string {
	return l.Join()
}

// Append adds value to the end. Callers are responsible for enforcing the
// capacity rule; Append reports false when value is already present or
// contains Separator.
func (l *List) Append(value string) bool {
	if strings.Contains(value, Separator) || l.Contains(value) {
		return false
	}
	l.items = append(l.items, value)
	return true
}

// RemoveAt deletes the tag at index i.
func (l *List) RemoveAt(i int) (string, bool) {
	if i < 0 || i >= len(l.items) {
		return "", false
	}
	removed := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return removed, true
}

// Pop removes the final tag.
func (l *List) Pop() (string, bool) {
	if len(l.items) == 0 {
		return "", false
	}
	return l.RemoveAt(len(l.items) - 1)
}

// Equal reports whether both lists hold the same tags in the same order.
func (l List) Equal(other List) bool {
	return slices.Equal(l.items, other.items)
}
