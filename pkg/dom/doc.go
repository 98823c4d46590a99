// Package dom binds tag editors to an HTML document parsed with
// golang.org/x/net/html.
//
// A Document is the single event dispatcher for a page. Enhance finds host
// inputs (by default `input.comma-input-field`), wraps each in a container,
// hides it and renders the chip row next to it. Events are then delivered
// through KeyDown, Input and Click exactly as a browser would deliver them to
// the document: the Document finds the widget owning the event target and
// forwards the event to its editor. Every editor change rebuilds the widget
// subtree from the vanilla renderer output.
//
//	doc, err := dom.Parse(r, dom.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	if _, err := doc.Enhance(); err != nil {
//		return err
//	}
//	return doc.Render(w)
package dom
