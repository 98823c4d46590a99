package taglist

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// StripMarkup removes any HTML markup from a typed tag and trims the result.
// It is meant to be plugged in as an editor normalizer when tags come from
// untrusted input and are echoed into other pages verbatim.
func StripMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := stripSanitizer().Sanitize(trimmed)
	// bluemonday escapes entities in text nodes; tags are plain text.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func stripSanitizer() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}
