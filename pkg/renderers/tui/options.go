package tui

import "io"

// OutputFormat controls how the collected list is serialized.
type OutputFormat string

const (
	// OutputFormatText emits the comma-joined value as stored in the host field.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON emits a JSON array of tags.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits name=value, url-encoded.
	OutputFormatFormURLEncoded OutputFormat = "form"
)

// Theme captures optional prefixes the renderer applies to messages.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithOutput sets where the default driver prints informational lines.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		r.out = w
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
