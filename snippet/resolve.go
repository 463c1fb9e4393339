package snippet

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/zeebo/blake3"
)

// Link pairs a node of an inheritance chain with the templates it
// contributes.
type Link struct {
	Node        Node
	Definitions []Definition
}

// Resolver discovers the templates that apply to a node.
type Resolver struct {
	host     Host
	registry Registry
}

// NewResolver creates a Resolver. A nil registry contributes no templates.
func NewResolver(host Host, registry Registry) *Resolver {
	if registry == nil {
		registry = emptyRegistry{}
	}
	return &Resolver{host: host, registry: registry}
}

// Chain returns the inheritance chain of node, most specific first: the
// node, then for an instance its main component and that component's
// variant set, or for a variant its owning set.
func Chain(node Node) []Node {
	chain := []Node{node}
	switch {
	case node.Type().IsInstance():
		if main := node.MainComponent(); main != nil {
			chain = append(chain, main)
			if set := owningSet(main); set != nil {
				chain = append(chain, set)
			}
		}
	case node.Type() == TypeComponent:
		if set := owningSet(node); set != nil {
			chain = append(chain, set)
		}
	}
	return chain
}

func owningSet(node Node) Node {
	parent := node.Parent()
	if parent != nil && parent.Type().IsVariantSet() {
		return parent
	}
	return nil
}

// Resolve walks the inheritance chain of node and returns, per chain node,
// the templates it contributes: its own templates, then component templates
// for its key, then type templates for its type. When match is non-nil only
// templates with that title and language are kept. A group of templates
// whose content was already collected earlier in the walk is skipped. The
// DEFAULT type templates are used only when nothing else applies.
func (r *Resolver) Resolve(ctx context.Context, node Node, match *Match) ([]Link, error) {
	if node == nil {
		return nil, ErrNilNode
	}

	walk := resolution{match: match, seen: make(map[[32]byte]struct{})}
	var links []Link
	for _, member := range Chain(node) {
		own, err := r.host.Templates(ctx, member)
		if err != nil {
			return nil, fmt.Errorf("templates for node %s: %w", member.ID(), err)
		}
		defs := walk.take(own)
		if member.Type().HasComponentIdentity() && member.Key() != "" {
			defs = append(defs, walk.take(r.registry.ComponentTemplates(member.Key()))...)
		}
		defs = append(defs, walk.take(r.registry.TypeTemplates(member.Type()))...)
		if len(defs) > 0 {
			links = append(links, Link{Node: member, Definitions: defs})
		}
	}

	if len(links) == 0 {
		if defs := walk.take(r.registry.TypeTemplates(TypeDefault)); len(defs) > 0 {
			links = append(links, Link{Node: node, Definitions: defs})
		}
	}
	return links, nil
}

// resolution is the state of a single Resolve call.
type resolution struct {
	match *Match
	seen  map[[32]byte]struct{}
}

// take filters defs by the required match and returns a copy, or nil when
// nothing is left or the same content was taken before.
func (w *resolution) take(defs []Definition) []Definition {
	if w.match != nil {
		defs = matching(defs, *w.match)
	}
	if len(defs) == 0 {
		return nil
	}
	key := digest(defs)
	if _, ok := w.seen[key]; ok {
		return nil
	}
	w.seen[key] = struct{}{}
	return slices.Clone(defs)
}

func matching(defs []Definition, match Match) []Definition {
	var out []Definition
	for _, def := range defs {
		if match.Matches(def) {
			out = append(out, def)
		}
	}
	return out
}

// digest hashes the canonical JSON encoding of defs.
func digest(defs []Definition) [32]byte {
	hasher := blake3.New()
	// Definition holds only strings; encoding cannot fail.
	_ = json.NewEncoder(hasher).Encode(defs)
	var sum [32]byte
	copy(sum[:], hasher.Sum(nil))
	return sum
}
