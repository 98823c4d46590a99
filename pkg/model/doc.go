// Package model describes host form fields as the tag widget sees them. A
// Field is read once from a host element (its value plus the raw attribute
// map) and then handed to widget matchers, renderers and the editor config
// builder. UIHints carries renderer-facing directives (`widget`, `cssClass`,
// `helpText`) that matchers and decorators may set without touching the raw
// attributes.
package model
