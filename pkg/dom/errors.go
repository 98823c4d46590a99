package dom

import "errors"

var (
	// ErrNotInput is returned when Mount receives a node that is not an
	// <input> element.
	ErrNotInput = errors.New("dom: host must be an input element")
	// ErrNotMounted is returned by Release for unknown hosts.
	ErrNotMounted = errors.New("dom: host is not mounted")
	// ErrDetached is returned when a host has no parent to insert the
	// container into.
	ErrDetached = errors.New("dom: host is not attached to the document")
)
