// Package uischema loads per-field overlays for tag fields declared in Go
// (label, description, placeholder, item bounds, read-only mode) and applies
// them to a form model through a decorator. Overlays are JSON or YAML files
// keyed by form id, so the same field declarations can be reused across
// pages with different constraints.
package uischema
