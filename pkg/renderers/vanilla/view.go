package vanilla

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/model"
)

// EntryIDPrefix prefixes generated entry box ids.
const EntryIDPrefix = "tag-editor-"

// View is everything the view template needs: an editor snapshot plus the
// per-widget presentation inputs.
type View struct {
	Snapshot editor.Snapshot
	EntryID  string
	Theme    *theme.RendererConfig
}

type chipView struct {
	Label string `json:"label"`
	Index string `json:"index"`
	State string `json:"state"`
}

type hostAttr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// viewContext only carries strings and bools. The template engine converts
// data through JSON, so numeric values would arrive as floats.
func viewContext(view View) map[string]any {
	snap := view.Snapshot
	chips := make([]chipView, 0, len(snap.Chips))
	for _, chip := range snap.Chips {
		state := ""
		if chip.Selected {
			state = string(ClassSelected)
		}
		chips = append(chips, chipView{
			Label: chip.Label,
			Index: strconv.Itoa(chip.Index),
			State: state,
		})
	}

	return map[string]any{
		"classes":        resolveClasses(view.Theme, snap.Disabled),
		"chips":          chips,
		"entry":          snap.Entry,
		"entry_id":       view.EntryID,
		"placeholder":    snap.Placeholder,
		"warning":        snap.Warning,
		"disabled":       snap.Disabled,
		"entry_disabled": snap.EntryDisabled,
	}
}

var reservedHostAttrs = []string{"class", "hidden", "id", "name", "style", "value"}

// hostAttributes rebuilds the host input as a hidden element that still
// submits under its name. Output is sorted by attribute name.
func hostAttributes(field model.Field, value string) []hostAttr {
	attrs := make([]hostAttr, 0, len(field.Attributes)+6)
	for key, val := range field.Attributes {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" || slices.Contains(reservedHostAttrs, key) {
			continue
		}
		attrs = append(attrs, hostAttr{Name: key, Value: val})
	}
	if _, ok := field.Attr("type"); !ok {
		attrs = append(attrs, hostAttr{Name: "type", Value: "text"})
	}

	classes := strings.Join(field.Classes, " ")
	if classes == "" {
		classes, _ = field.Attr("class")
	}
	if classes = strings.TrimSpace(classes); classes != "" {
		attrs = append(attrs, hostAttr{Name: "class", Value: classes})
	}
	if name := strings.TrimSpace(field.Name); name != "" {
		attrs = append(attrs, hostAttr{Name: "name", Value: name})
	}
	if id := strings.TrimSpace(field.ID); id != "" {
		attrs = append(attrs, hostAttr{Name: "id", Value: id})
	}
	attrs = append(attrs,
		hostAttr{Name: "value", Value: value},
		hostAttr{Name: "hidden", Value: ""},
		hostAttr{Name: "style", Value: "display:none"},
	)

	slices.SortFunc(attrs, func(a, b hostAttr) int {
		return strings.Compare(a.Name, b.Name)
	})
	return attrs
}

// Sequence numbers entry boxes within one page render.
type Sequence struct {
	n atomic.Uint64
}

// Next returns the next entry id.
func (s *Sequence) Next() string {
	return EntryIDPrefix + strconv.FormatUint(s.n.Add(1), 10)
}

type sequenceKey struct{}

// WithSequence returns a context carrying a fresh entry id sequence. Render
// calls sharing the context number their entry boxes tag-editor-1,
// tag-editor-2 and so on.
func WithSequence(ctx context.Context) context.Context {
	return context.WithValue(ctx, sequenceKey{}, &Sequence{})
}

func sequenceFrom(ctx context.Context) *Sequence {
	if ctx == nil {
		return nil
	}
	seq, _ := ctx.Value(sequenceKey{}).(*Sequence)
	return seq
}
