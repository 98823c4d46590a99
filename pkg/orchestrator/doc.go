// Package orchestrator wires site defaults, the widget registry, the renderer
// registry and the document binding into two entry points: Generate renders
// the tag fields of a form model, Enhance rewrites a whole HTML page.
package orchestrator
