package snippet

import (
	"context"
	"fmt"
	"sync"
)

// renderChildren renders each child of node with rc and returns the
// non-empty outputs in child order. Children render concurrently. The
// first error in child order wins.
func (r *Renderer) renderChildren(ctx context.Context, node Node, rc Recursion) ([]string, error) {
	children, err := r.host.Children(ctx, node)
	if err != nil {
		return nil, fmt.Errorf("children of node %s: %w", node.ID(), err)
	}
	if len(children) == 0 {
		return nil, nil
	}

	outputs := make([]string, len(children))
	errs := make([]error, len(children))
	var wg sync.WaitGroup
	for i, child := range children {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outputs[i], errs[i] = r.renderChild(ctx, child, rc)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	rendered := make([]string, 0, len(outputs))
	for _, out := range outputs {
		if out != "" {
			rendered = append(rendered, out)
		}
	}
	return rendered, nil
}

// renderChild renders the first definition found for child that matches
// rc.Match. A child without one renders as empty.
func (r *Renderer) renderChild(ctx context.Context, child Node, rc Recursion) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	links, err := r.resolver.Resolve(ctx, child, rc.Match)
	if err != nil {
		return "", err
	}
	if len(links) == 0 || len(links[0].Definitions) == 0 {
		return "", nil
	}
	params, err := r.host.Params(ctx, child)
	if err != nil {
		return "", fmt.Errorf("params for node %s: %w", child.ID(), err)
	}
	link := links[0]
	rendering, err := r.Render(ctx, child, link.Definitions[:1], params, link.Node.Type(), rc)
	if err != nil {
		return "", err
	}
	return rendering.Results[0].Code, nil
}
