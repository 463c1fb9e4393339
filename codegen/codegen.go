// Package codegen turns the templates of a node into the list of results a
// code panel displays.
//
// Generate never fails. Errors become a single "Error" result so the
// caller always has something to show.
package codegen

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/randalmurphal/snippetkit/snippet"
)

// DefaultMessage is shown for nodes without snippets when WithDefaultMessage
// is enabled.
const DefaultMessage = "No snippets on this node. Add snippets via the Snippet Editor."

// Titles of the results Generate adds itself.
const (
	TitleError    = "Error"
	TitleParams   = "Params"
	TitleSnippets = "Snippets"
)

// Generator produces results for nodes.
type Generator struct {
	renderer       *snippet.Renderer
	host           snippet.Host
	details        bool
	defaultMessage bool
	logger         *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithDetails enables details mode: each rendered result is preceded by
// its raw template, and the node's parameters are appended as JSON.
func WithDetails(enabled bool) Option {
	return func(g *Generator) {
		g.details = enabled
	}
}

// WithDefaultMessage adds DefaultMessage when a node has no results.
func WithDefaultMessage(enabled bool) Option {
	return func(g *Generator) {
		g.defaultMessage = enabled
	}
}

// WithLogger sets the logger used to report failures. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a Generator. host must be the host renderer reads from.
func New(renderer *snippet.Renderer, host snippet.Host, opts ...Option) *Generator {
	g := &Generator{
		renderer: renderer,
		host:     host,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders every template that applies to node.
func (g *Generator) Generate(ctx context.Context, node snippet.Node) []snippet.Result {
	results, err := g.generate(ctx, node)
	if err != nil {
		g.logger.ErrorContext(ctx, "snippet generation failed", slog.Any("error", err))
		return []snippet.Result{{
			Title:    TitleError,
			Language: snippet.LanguagePlaintext,
			Code:     err.Error(),
		}}
	}
	return results
}

func (g *Generator) generate(ctx context.Context, node snippet.Node) ([]snippet.Result, error) {
	if node == nil {
		return nil, snippet.ErrNilNode
	}
	params, err := g.host.Params(ctx, node)
	if err != nil {
		return nil, err
	}
	rendering, err := g.renderer.RenderNode(ctx, node, params)
	if err != nil {
		return nil, err
	}

	var results []snippet.Result
	if g.details {
		results = make([]snippet.Result, 0, 2*len(rendering.Results)+1)
		for i, result := range rendering.Results {
			results = append(results, rendering.Templates[i], result)
		}
		data, err := json.MarshalIndent(params, "", "  ")
		if err != nil {
			return nil, err
		}
		results = append(results, snippet.Result{
			Title:    TitleParams,
			Language: snippet.LanguageJSON,
			Code:     string(data),
		})
	} else {
		results = rendering.Results
	}

	if len(results) == 0 && g.defaultMessage {
		results = append(results, snippet.Result{
			Title:    TitleSnippets,
			Language: snippet.LanguagePlaintext,
			Code:     DefaultMessage,
		})
	}
	return results, nil
}
