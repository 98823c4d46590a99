package dom

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/renderers/vanilla"
)

// KeyDown delivers a keydown event. Only the entry box of a mounted widget
// reacts; disabled controls receive no events.
func (d *Document) KeyDown(target *html.Node, key string) editor.Outcome {
	w := d.entryOwner(target)
	if w == nil {
		return editor.Outcome{Index: editor.NoSelection}
	}
	outcome := w.editor.HandleKey(editor.ParseKey(key))
	if reason, ok := editor.ReasonOf(outcome.Err); ok {
		d.logger.Debug("tag rejected", "field", w.field.Name, "key", key, "reason", string(reason))
	}
	return outcome
}

// Input delivers an input event carrying the entry box's current text.
func (d *Document) Input(target *html.Node, text string) {
	w := d.entryOwner(target)
	if w == nil {
		return
	}
	setAttr(target, "value", text)
	w.editor.SetEntry(text)
}

// Click delivers a click. A click on a chip selects it and a click on a
// chip's remove control removes that chip. Every widget not containing the
// target loses its selection.
func (d *Document) Click(target *html.Node) error {
	owner := d.owner(target)
	for _, w := range d.Widgets() {
		if w == owner {
			continue
		}
		if _, ok := w.editor.Selection(); ok {
			w.editor.ClearSelection()
		}
	}
	if owner == nil {
		return nil
	}

	for n := target; n != nil && n != owner.container; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		if action, _ := getAttr(n, vanilla.AttrTagAction); action == vanilla.ActionRemove {
			if isDisabledControl(n) {
				return nil
			}
			index, ok := tagIndex(n)
			if !ok {
				return nil
			}
			return owner.editor.RemoveTag(index)
		}
		if hasClass(n, string(vanilla.ClassChip)) {
			if index, ok := tagIndex(n); ok {
				owner.editor.SelectIndex(index)
			}
			return nil
		}
	}
	return nil
}

func (d *Document) entryOwner(target *html.Node) *Widget {
	if !isElement(target, atom.Input) || !hasClass(target, string(vanilla.ClassEntry)) {
		return nil
	}
	if isDisabledControl(target) {
		return nil
	}
	return d.owner(target)
}

func isDisabledControl(n *html.Node) bool {
	_, disabled := getAttr(n, "disabled")
	return disabled
}

func tagIndex(n *html.Node) (int, bool) {
	raw, ok := getAttr(n, vanilla.AttrTagIndex)
	if !ok {
		return 0, false
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return index, true
}
