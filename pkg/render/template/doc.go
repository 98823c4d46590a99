// Package template defines the template renderer seam used by HTML renderers.
// The gotemplate subpackage provides the implementation backed by
// github.com/goliatone/go-template.
package template
