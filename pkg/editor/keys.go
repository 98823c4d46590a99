package editor

import "strings"

// Key is a keyboard event delivered to the entry box.
type Key int

const (
	// KeyOther covers every key without special meaning (typing).
	KeyOther Key = iota
	KeyEnter
	KeyBackspace
	KeyDelete
)

// ParseKey maps DOM KeyboardEvent.key names onto Key values.
func ParseKey(name string) Key {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "enter":
		return KeyEnter
	case "backspace":
		return KeyBackspace
	case "delete", "del":
		return KeyDelete
	default:
		return KeyOther
	}
}

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	default:
		return "Other"
	}
}

// Action summarises what a key event did.
type Action int

const (
	ActionNone Action = iota
	ActionAdded
	ActionRemoved
	ActionRejected
	ActionSelectionCleared
)

func (a Action) String() string {
	switch a {
	case ActionAdded:
		return "added"
	case ActionRemoved:
		return "removed"
	case ActionRejected:
		return "rejected"
	case ActionSelectionCleared:
		return "selection-cleared"
	default:
		return "none"
	}
}

// Outcome reports the effect of HandleKey. Rejections never surface to the
// user; Err is informational.
type Outcome struct {
	Action Action
	Tag    string
	Index  int
	Err    error
}
