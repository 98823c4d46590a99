package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// MustParseHTML parses a complete document.
func MustParseHTML(t *testing.T, src string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// MustParseFragment parses markup in a <body> context and wraps the result
// in a detached <div> so callers can query it.
func MustParseFragment(t *testing.T, src string) *html.Node {
	t.Helper()

	doc := MustParseHTML(t, "<!DOCTYPE html><html><body><div>"+src+"</div></body></html>")
	body := FindAll(doc, func(n *html.Node) bool { return n.Data == "body" })
	if len(body) != 1 || body[0].FirstChild == nil {
		t.Fatalf("parse fragment: missing body")
	}
	return body[0].FirstChild
}

// FindAll returns element nodes matching fn in document order.
func FindAll(root *html.Node, fn func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && fn(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// ByClass returns elements carrying the class token.
func ByClass(root *html.Node, class string) []*html.Node {
	return FindAll(root, func(n *html.Node) bool {
		for _, token := range strings.Fields(Attr(n, "class")) {
			if token == class {
				return true
			}
		}
		return false
	})
}

// ByID returns the first element with the id, or nil.
func ByID(root *html.Node, id string) *html.Node {
	found := FindAll(root, func(n *html.Node) bool { return Attr(n, "id") == id })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// Attr returns the attribute value or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// HasAttr reports attribute presence.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}

// Text returns the trimmed concatenated text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// Labels returns the text of each element, in order.
func Labels(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Text(n))
	}
	return out
}
