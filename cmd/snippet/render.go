package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/randalmurphal/snippetkit/codegen"
	"github.com/randalmurphal/snippetkit/registry"
	"github.com/randalmurphal/snippetkit/snippet"
	"github.com/randalmurphal/snippetkit/store"
	"github.com/randalmurphal/snippetkit/tree"
)

type renderOptions struct {
	tree           string
	templates      string
	db             string
	node           string
	details        bool
	defaultMessage bool
	color          string
	watch          bool
	verbose        bool
}

func runRender(ctx context.Context, e env, args []string) error {
	var opts renderOptions
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	fs.StringVar(&opts.tree, "tree", "", "document snapshot (yaml, json, jsonc or toml)")
	fs.StringVar(&opts.templates, "templates", "", "global template file")
	fs.StringVar(&opts.db, "db", "", "sqlite database holding node templates")
	fs.StringVar(&opts.node, "node", "", "render only this node id (default: every root)")
	fs.BoolVar(&opts.details, "details", false, "show raw templates and params")
	fs.BoolVar(&opts.defaultMessage, "default-message", false, "explain nodes without snippets")
	fs.StringVar(&opts.color, "color", colorAuto, "highlight output: auto, always or never")
	fs.BoolVar(&opts.watch, "watch", false, "render again whenever the template file changes")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	if err := parseFlags(fs, args, e.stderr); err != nil {
		return err
	}
	if err := required(fs, "tree"); err != nil {
		return err
	}
	if opts.watch && opts.templates == "" {
		return fmt.Errorf("render: --watch requires --templates")
	}
	color, err := colorEnabled(opts.color, e.stdout)
	if err != nil {
		return err
	}
	logger := newLogger(e.stderr, opts.verbose).With("command", "render")

	docOpts := []tree.Option{tree.WithLogger(logger)}
	if opts.db != "" {
		s, err := store.Open(ctx, opts.db, store.WithLogger(logger))
		if err != nil {
			return err
		}
		defer s.Close()
		docOpts = append(docOpts, tree.WithStore(s))
	}
	doc, err := tree.Load(opts.tree, docOpts...)
	if err != nil {
		return err
	}
	nodes, err := selectNodes(doc, opts.node)
	if err != nil {
		return err
	}

	r := renderRun{
		doc:     doc,
		nodes:   nodes,
		opts:    opts,
		printer: printer{w: e.stdout, color: color},
		logger:  logger,
	}
	if !opts.watch {
		var templates *registry.Templates
		if opts.templates != "" {
			if templates, err = registry.Load(opts.templates); err != nil {
				return err
			}
		}
		r.render(ctx, templates)
		return nil
	}

	for update := range registry.Watch(ctx, opts.templates) {
		if update.Err != nil {
			logger.Warn("templates not reloaded",
				slog.String("path", opts.templates),
				slog.Any("error", update.Err))
			continue
		}
		logger.Info("rendering",
			slog.String("path", opts.templates),
			slog.Int("templates", update.Templates.Len()))
		r.render(ctx, update.Templates)
	}
	return nil
}

func selectNodes(doc *tree.Document, id string) ([]*tree.Node, error) {
	if id == "" {
		return doc.Roots(), nil
	}
	node, ok := doc.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", tree.ErrNodeNotFound, id)
	}
	return []*tree.Node{node}, nil
}

type renderRun struct {
	doc     *tree.Document
	nodes   []*tree.Node
	opts    renderOptions
	printer printer
	logger  *slog.Logger
}

func (r renderRun) render(ctx context.Context, templates *registry.Templates) {
	renderer := snippet.NewRenderer(r.doc, templates, snippet.WithLogger(r.logger))
	gen := codegen.New(renderer, r.doc,
		codegen.WithDetails(r.opts.details),
		codegen.WithDefaultMessage(r.opts.defaultMessage),
		codegen.WithLogger(r.logger))
	for _, node := range r.nodes {
		r.printer.node(node)
		for _, result := range gen.Generate(ctx, node) {
			r.printer.result(result)
		}
	}
}
