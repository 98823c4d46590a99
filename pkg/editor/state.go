package editor

import (
	"fmt"
	"strings"
)

// State is the coarse widget state derived from the tag count and config.
type State int

const (
	StateEmpty State = iota
	StateNormal
	StateBelowMin
	StateAtCapacity
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "enabled-empty"
	case StateNormal:
		return "enabled-normal"
	case StateBelowMin:
		return "enabled-below-min"
	case StateAtCapacity:
		return "enabled-at-capacity"
	case StateDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Messages holds the user-facing strings computed into a Snapshot. A %d verb
// is replaced with the relevant count when present.
type Messages struct {
	MaxReached   string `json:"maxReached" yaml:"maxReached"`
	BelowMinimum string `json:"belowMinimum" yaml:"belowMinimum"`
}

// DefaultMessages returns the built-in English strings.
func DefaultMessages() Messages {
	return Messages{
		MaxReached:   "Maximum %d items reached",
		BelowMinimum: "Minimum of %d items not reached",
	}
}

// WithDefaults fills empty entries from DefaultMessages.
func (m Messages) WithDefaults() Messages {
	defaults := DefaultMessages()
	if strings.TrimSpace(m.MaxReached) == "" {
		m.MaxReached = defaults.MaxReached
	}
	if strings.TrimSpace(m.BelowMinimum) == "" {
		m.BelowMinimum = defaults.BelowMinimum
	}
	return m
}

func formatCount(template string, count int) string {
	if strings.Contains(template, "%d") {
		return fmt.Sprintf(template, count)
	}
	return template
}

// Chip is one rendered tag.
type Chip struct {
	Label    string `json:"label"`
	Index    int    `json:"index"`
	Selected bool   `json:"selected"`
}

// Snapshot is the complete view model of an editor at one point in time. It
// is the only input renderers need.
type Snapshot struct {
	Tags          []string `json:"tags"`
	Chips         []Chip   `json:"chips"`
	Selected      int      `json:"selected"`
	Entry         string   `json:"entry"`
	EntryDisabled bool     `json:"entryDisabled"`
	Placeholder   string   `json:"placeholder"`
	Disabled      bool     `json:"disabled"`
	MinItems      int      `json:"minItems"`
	MaxItems      int      `json:"maxItems"`
	BelowMinimum  bool     `json:"belowMinimum"`
	Warning       string   `json:"warning"`
	State         State    `json:"state"`
	Value         string   `json:"value"`
}
