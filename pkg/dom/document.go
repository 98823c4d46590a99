package dom

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	theme "github.com/goliatone/go-theme"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-tagfield/pkg/widgets"
)

// Document owns a parsed page, the registry of mounted widgets and the event
// dispatch for all of them. It is not safe for concurrent use; like a browser
// page it expects events one at a time.
type Document struct {
	root          *html.Node
	renderer      ViewRenderer
	registry      *widgets.Registry
	defaults      editor.Config
	editorOptions []editor.Option
	theme         *theme.RendererConfig
	logger        *slog.Logger

	byHost      map[*html.Node]*Widget
	byContainer map[*html.Node]*Widget
	mounted     []*Widget
	seq         int
}

// Parse reads an HTML document and wraps it in a Document.
func Parse(r io.Reader, options ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse html: %w", err)
	}
	return NewDocument(root, options...)
}

// NewDocument creates the dispatcher for root.
func NewDocument(root *html.Node, options ...Option) (*Document, error) {
	if root == nil {
		return nil, errors.New("dom: root node is required")
	}

	cfg := config{defaults: editor.DefaultConfig()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.renderer == nil {
		renderer, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("dom: default renderer: %w", err)
		}
		cfg.renderer = renderer
	}
	if cfg.registry == nil {
		cfg.registry = widgets.NewRegistry()
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}

	return &Document{
		root:          root,
		renderer:      cfg.renderer,
		registry:      cfg.registry,
		defaults:      cfg.defaults,
		editorOptions: cfg.editorOptions,
		theme:         cfg.theme,
		logger:        cfg.logger,
		byHost:        make(map[*html.Node]*Widget),
		byContainer:   make(map[*html.Node]*Widget),
	}, nil
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Enhance mounts every input the widget registry resolves to the tags
// widget. Hosts that are already mounted are returned as they are. Render
// failures are joined; the other widgets still mount.
func (d *Document) Enhance() ([]*Widget, error) {
	var hosts []*html.Node
	walk(d.root, func(n *html.Node) bool {
		if !isElement(n, atom.Input) {
			return true
		}
		if name, ok := d.registry.Resolve(FieldFromNode(n)); ok && name == widgets.WidgetTags {
			hosts = append(hosts, n)
		}
		return true
	})

	out := make([]*Widget, 0, len(hosts))
	var errs []error
	for _, host := range hosts {
		w, err := d.Mount(host)
		if err != nil {
			errs = append(errs, err)
		}
		if w != nil {
			out = append(out, w)
		}
	}
	d.logger.Debug("tag fields enhanced", "count", len(out))
	return out, errors.Join(errs...)
}

// Mount wraps host in a tag widget. Mounting a host twice returns the
// existing widget without touching the tree.
func (d *Document) Mount(host *html.Node) (*Widget, error) {
	if !isElement(host, atom.Input) {
		return nil, ErrNotInput
	}
	if w, ok := d.byHost[host]; ok {
		return w, nil
	}
	if w, ok := d.byContainer[host.Parent]; ok {
		return w, nil
	}
	if host.Parent == nil {
		return nil, ErrDetached
	}

	field := FieldFromNode(host)
	cfg, err := editor.ConfigFromAttributes(field.Attributes, d.defaults)
	if err != nil {
		d.logger.Warn("invalid tag field configuration", "field", field.Name, "error", err)
	}

	w := &Widget{
		doc:  d,
		host: host,
	}
	w.hiddenAttr, w.hadHidden = getAttr(host, "hidden")
	w.styleAttr, w.hadStyle = getAttr(host, "style")

	if parent := host.Parent; hasClass(parent, string(vanilla.ClassContainer)) {
		// Markup produced by vanilla.Renderer.Render: reuse it.
		w.container = parent
		w.adopted = true
		// The server hid the host; Release shows it again.
		w.hiddenAttr, w.hadHidden = "", false
		w.styleAttr, w.hadStyle = "", false
		if entry := findFirst(parent, func(n *html.Node) bool { return hasClass(n, string(vanilla.ClassEntry)) }); entry != nil {
			w.entryID, _ = getAttr(entry, "id")
		}
	} else {
		w.container = newElement(atom.Div,
			html.Attribute{Key: "class", Val: vanilla.ContainerClass(d.theme, cfg.Disabled)},
		)
		if style := vanilla.ContainerStyle(d.theme); style != "" {
			setAttr(w.container, "style", style)
		}
		parent.InsertBefore(w.container, host)
		parent.RemoveChild(host)
		w.container.AppendChild(host)
	}
	if w.entryID == "" {
		w.entryID = d.nextEntryID()
	}

	setAttr(host, "hidden", "")
	setAttr(host, "style", "display:none")

	options := make([]editor.Option, 0, len(d.editorOptions)+2)
	options = append(options, d.editorOptions...)
	options = append(options,
		editor.WithSink(editor.SinkFunc(w.setHostValue)),
		editor.WithObserver(w.render),
	)
	w.editor = editor.New(cfg, field.Value, options...)
	w.field = field

	d.byHost[host] = w
	d.byContainer[w.container] = w
	d.mounted = append(d.mounted, w)

	w.editor.Sync()
	d.logger.Debug("tag field mounted",
		"field", field.Name,
		"entry", w.entryID,
		"tags", w.editor.Len(),
		"state", w.editor.State().String(),
	)
	return w, w.err
}

// Release unmounts the widget for host and puts the host back where the
// container was. The host keeps its last serialized value.
func (d *Document) Release(host *html.Node) error {
	w, ok := d.byHost[host]
	if !ok {
		return ErrNotMounted
	}

	delete(d.byHost, host)
	delete(d.byContainer, w.container)
	for idx, candidate := range d.mounted {
		if candidate == w {
			d.mounted = append(d.mounted[:idx], d.mounted[idx+1:]...)
			break
		}
	}
	w.released = true

	restoreAttr(host, "hidden", w.hiddenAttr, w.hadHidden)
	restoreAttr(host, "style", w.styleAttr, w.hadStyle)

	container := w.container
	container.RemoveChild(host)
	if parent := container.Parent; parent != nil {
		parent.InsertBefore(host, container)
		parent.RemoveChild(container)
	}
	d.logger.Debug("tag field released", "field", w.field.Name)
	return nil
}

// Widget returns the widget mounted for host.
func (d *Document) Widget(host *html.Node) (*Widget, bool) {
	w, ok := d.byHost[host]
	return w, ok
}

// Widgets returns the mounted widgets in mount order.
func (d *Document) Widgets() []*Widget {
	return append([]*Widget(nil), d.mounted...)
}

// Render serializes the whole document.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("dom: render document: %w", err)
	}
	return nil
}

// owner returns the widget whose container holds n.
func (d *Document) owner(n *html.Node) *Widget {
	for ; n != nil; n = n.Parent {
		if w, ok := d.byContainer[n]; ok {
			return w
		}
	}
	return nil
}

func (d *Document) nextEntryID() string {
	for {
		d.seq++
		id := vanilla.EntryIDPrefix + strconv.Itoa(d.seq)
		taken := findFirst(d.root, func(n *html.Node) bool {
			value, _ := getAttr(n, "id")
			return value == id
		})
		if taken == nil {
			return id
		}
	}
}

func restoreAttr(n *html.Node, key, value string, present bool) {
	if present {
		setAttr(n, key, value)
		return
	}
	removeAttr(n, key)
}
