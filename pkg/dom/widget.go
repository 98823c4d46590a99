package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/model"
	"github.com/goliatone/go-tagfield/pkg/renderers/vanilla"
)

// Widget is one mounted tag editor: the hidden host, its container and the
// editor driving both.
type Widget struct {
	doc       *Document
	host      *html.Node
	container *html.Node
	editor    *editor.Editor
	field     model.Field
	entryID   string
	adopted   bool
	released  bool
	err       error

	hiddenAttr, styleAttr string
	hadHidden, hadStyle   bool
}

// Host returns the original input element.
func (w *Widget) Host() *html.Node { return w.host }

// Container returns the wrapping element.
func (w *Widget) Container() *html.Node { return w.container }

// Editor exposes the editor for programmatic changes. Mutations re-render the
// widget like user events do.
func (w *Widget) Editor() *editor.Editor { return w.editor }

// Field returns the host descriptor read at mount.
func (w *Widget) Field() model.Field { return w.field }

// EntryID returns the id of the entry box.
func (w *Widget) EntryID() string { return w.entryID }

// Tags returns the current tags.
func (w *Widget) Tags() []string { return w.editor.Tags() }

// Value returns the serialized host value.
func (w *Widget) Value() string {
	value, _ := getAttr(w.host, "value")
	return value
}

// Err returns the last render failure, if any.
func (w *Widget) Err() error { return w.err }

// Entry returns the current entry box element. Each render replaces it, so
// callers must not hold on to the node across events.
func (w *Widget) Entry() *html.Node {
	return findFirst(w.container, func(n *html.Node) bool {
		return isElement(n, atom.Input) && hasClass(n, string(vanilla.ClassEntry))
	})
}

// Chips returns the rendered chip elements in order.
func (w *Widget) Chips() []*html.Node {
	var out []*html.Node
	walk(w.container, func(n *html.Node) bool {
		if hasClass(n, string(vanilla.ClassChip)) {
			out = append(out, n)
			return false
		}
		return true
	})
	return out
}

// Resync re-reads the host value into the editor. Nothing calls it
// automatically; hosts that reset the field out of band call it afterwards.
func (w *Widget) Resync() {
	if w.released {
		return
	}
	w.editor.Resync(w.Value())
}

func (w *Widget) setHostValue(value string) {
	if w.released {
		return
	}
	setAttr(w.host, "value", value)
}

// render replaces every container child except the host with a fresh render
// of snap.
func (w *Widget) render(snap editor.Snapshot) {
	if w.released {
		return
	}
	d := w.doc

	markup, err := d.renderer.RenderView(vanilla.View{
		Snapshot: snap,
		EntryID:  w.entryID,
		Theme:    d.theme,
	})
	if err != nil {
		w.err = err
		d.logger.Error("render tag field", "field", w.field.Name, "error", err)
		return
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), newElement(atom.Div))
	if err != nil {
		w.err = err
		d.logger.Error("parse rendered tag field", "field", w.field.Name, "error", err)
		return
	}
	w.err = nil

	for c := w.container.FirstChild; c != nil; {
		next := c.NextSibling
		if c != w.host {
			w.container.RemoveChild(c)
		}
		c = next
	}
	for _, n := range nodes {
		w.container.AppendChild(n)
	}
}
