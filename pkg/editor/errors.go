package editor

import (
	"errors"
	"fmt"
)

// Reason identifies why an operation was rejected.
type Reason string

const (
	ReasonEmpty      Reason = "empty"
	ReasonDuplicate  Reason = "duplicate"
	ReasonCapacity   Reason = "capacity"
	ReasonOutOfRange Reason = "out_of_range"
	ReasonDisabled   Reason = "disabled"
	ReasonSeparator  Reason = "separator"
)

var (
	// ErrEmpty rejects blank or whitespace-only values.
	ErrEmpty = errors.New("editor: empty value")
	// ErrDuplicate rejects values already present (case-sensitive).
	ErrDuplicate = errors.New("editor: duplicate value")
	// ErrCapacity rejects additions once MaxItems is reached.
	ErrCapacity = errors.New("editor: capacity exceeded")
	// ErrOutOfRange rejects removals with an index outside the list.
	ErrOutOfRange = errors.New("editor: index out of range")
	// ErrDisabled rejects every mutation on a read-only widget.
	ErrDisabled = errors.New("editor: disabled")
	// ErrSeparator rejects values containing the list separator.
	ErrSeparator = errors.New("editor: value contains separator")

	// ErrInvalidCount flags a min/max attribute that is not a non-negative
	// integer.
	ErrInvalidCount = errors.New("editor: invalid item count")
	// ErrMinExceedsMax flags a minimum larger than the maximum.
	ErrMinExceedsMax = errors.New("editor: minimum exceeds maximum")
)

var reasonErrors = map[Reason]error{
	ReasonEmpty:      ErrEmpty,
	ReasonDuplicate:  ErrDuplicate,
	ReasonCapacity:   ErrCapacity,
	ReasonOutOfRange: ErrOutOfRange,
	ReasonDisabled:   ErrDisabled,
	ReasonSeparator:  ErrSeparator,
}

// RejectError is returned by AddTag and RemoveTag. It unwraps to the
// sentinel matching Reason so callers can use errors.Is.
type RejectError struct {
	Op     string
	Reason Reason
	Value  string
	Index  int
}

func (e *RejectError) Error() string {
	switch e.Op {
	case opRemove:
		return fmt.Sprintf("editor: %s index %d rejected: %s", e.Op, e.Index, e.Reason)
	default:
		return fmt.Sprintf("editor: %s %q rejected: %s", e.Op, e.Value, e.Reason)
	}
}

func (e *RejectError) Unwrap() error {
	return reasonErrors[e.Reason]
}

// ReasonOf extracts the rejection reason from err, if any.
func ReasonOf(err error) (Reason, bool) {
	var reject *RejectError
	if errors.As(err, &reject) {
		return reject.Reason, true
	}
	return "", false
}

const (
	opAdd    = "add"
	opRemove = "remove"
)
