package tree

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/randalmurphal/snippetkit/registry"
	"github.com/randalmurphal/snippetkit/snippet"
)

// TemplateSource supplies node-local templates, such as a store.Store.
type TemplateSource interface {
	Get(ctx context.Context, nodeID string) ([]snippet.Definition, error)
}

// Document is a parsed snapshot. It is read-only after Parse and safe for
// concurrent use.
type Document struct {
	roots  []*Node
	byID   map[string]*Node
	source TemplateSource
	logger *slog.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithStore makes the document read node-local templates from source.
// Nodes with nothing in source fall back to their inline templates.
func WithStore(source TemplateSource) Option {
	return func(d *Document) {
		d.source = source
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// nodeEntry is the serialized form of a node.
type nodeEntry struct {
	ID            string               `json:"id" yaml:"id" toml:"id"`
	Type          snippet.NodeType     `json:"type" yaml:"type" toml:"type"`
	Name          string               `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Key           string               `json:"key,omitempty" yaml:"key,omitempty" toml:"key,omitempty"`
	Visible       *bool                `json:"visible,omitempty" yaml:"visible,omitempty" toml:"visible,omitempty"`
	Params        map[string]string    `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
	ParamsRaw     map[string]string    `json:"paramsRaw,omitempty" yaml:"paramsRaw,omitempty" toml:"paramsRaw,omitempty"`
	Templates     []snippet.Definition `json:"templates,omitempty" yaml:"templates,omitempty" toml:"templates,omitempty"`
	MainComponent string               `json:"mainComponent,omitempty" yaml:"mainComponent,omitempty" toml:"mainComponent,omitempty"`
	SVG           string               `json:"svg,omitempty" yaml:"svg,omitempty" toml:"svg,omitempty"`
	Children      []nodeEntry          `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

type documentFile struct {
	Nodes []nodeEntry `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// Parse decodes a snapshot.
func Parse(data []byte, format registry.Format, opts ...Option) (*Document, error) {
	var file documentFile
	if err := registry.Decode(data, format, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	d := &Document{
		byID:   make(map[string]*Node),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	mains := make(map[*Node]string)
	for i := range file.Nodes {
		root, err := d.build(&file.Nodes[i], nil, mains)
		if err != nil {
			return nil, err
		}
		d.roots = append(d.roots, root)
	}
	if err := d.link(mains); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads a snapshot from path. The format is chosen by the file
// extension.
func Load(path string, opts ...Option) (*Document, error) {
	format, err := registry.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := Parse(data, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (d *Document) build(entry *nodeEntry, parent *Node, mains map[*Node]string) (*Node, error) {
	if entry.ID == "" {
		return nil, fmt.Errorf("%w: node without id", ErrInvalidDocument)
	}
	if _, ok := d.byID[entry.ID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, entry.ID)
	}
	if entry.Type == "" {
		return nil, fmt.Errorf("%w: node %s has no type", ErrInvalidDocument, entry.ID)
	}
	if err := snippet.ValidateDefinitions(entry.Templates); err != nil {
		return nil, fmt.Errorf("%w: node %s: %w", ErrInvalidDocument, entry.ID, err)
	}
	if len(entry.Children) > 0 && !entry.Type.CanHaveChildren() {
		return nil, fmt.Errorf("%w: %s node %s cannot have children", ErrInvalidDocument, entry.Type, entry.ID)
	}

	n := &Node{
		id:        entry.ID,
		typ:       entry.Type,
		name:      entry.Name,
		key:       entry.Key,
		visible:   entry.Visible == nil || *entry.Visible,
		values:    entry.Params,
		raw:       entry.ParamsRaw,
		templates: entry.Templates,
		svg:       entry.SVG,
		parent:    parent,
	}
	d.byID[n.id] = n

	if entry.MainComponent != "" {
		if !n.typ.IsInstance() {
			return nil, fmt.Errorf("%w: %s node %s has a main component", ErrInvalidDocument, n.typ, n.id)
		}
		mains[n] = entry.MainComponent
	}

	for i := range entry.Children {
		child, err := d.build(&entry.Children[i], n, mains)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
	return n, nil
}

// link resolves main component references once every node is known.
func (d *Document) link(mains map[*Node]string) error {
	for instance, id := range mains {
		main, ok := d.byID[id]
		if !ok {
			return fmt.Errorf("%w: main component %s of node %s", ErrNodeNotFound, id, instance.id)
		}
		if main.typ != snippet.TypeComponent {
			return fmt.Errorf("%w: main component %s of node %s is a %s", ErrInvalidDocument, id, instance.id, main.typ)
		}
		instance.main = main
	}
	return nil
}

// Roots returns the top-level nodes in document order.
func (d *Document) Roots() []*Node {
	return d.roots
}

// Find returns the node with the given id.
func (d *Document) Find(id string) (*Node, bool) {
	n, ok := d.byID[id]
	return n, ok
}

// Walk calls fn for every node in document order, parents before
// children. Walking stops when fn returns false.
func (d *Document) Walk(fn func(*Node) bool) {
	var walk func([]*Node) bool
	walk = func(nodes []*Node) bool {
		for _, n := range nodes {
			if !fn(n) || !walk(n.children) {
				return false
			}
		}
		return true
	}
	walk(d.roots)
}

// ComponentsByKey returns the components and variant sets that carry a
// key, grouped by key, in document order.
func (d *Document) ComponentsByKey() map[string][]*Node {
	out := make(map[string][]*Node)
	d.Walk(func(n *Node) bool {
		if n.typ.HasComponentIdentity() && n.key != "" {
			out[n.key] = append(out[n.key], n)
		}
		return true
	})
	return out
}

// node returns the document node behind n.
func (d *Document) node(n snippet.Node) (*Node, error) {
	node, ok := n.(*Node)
	if ok && node != nil && d.byID[node.id] == node {
		return node, nil
	}
	id := "<nil>"
	switch {
	case ok && node != nil:
		id = node.id
	case !ok && n != nil:
		id = n.ID()
	}
	return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
}
