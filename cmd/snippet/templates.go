package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/randalmurphal/snippetkit/registry"
	"github.com/randalmurphal/snippetkit/store"
	"github.com/randalmurphal/snippetkit/tree"
)

func runValidate(_ context.Context, e env, args []string) error {
	fs := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	if err := parseFlags(fs, args, e.stderr); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("validate: at least one template file is required")
	}
	var failed int
	for _, path := range fs.Args() {
		templates, err := registry.Load(path)
		if err != nil {
			fmt.Fprintf(e.stdout, "FAIL %v\n", err)
			failed++
			continue
		}
		fmt.Fprintf(e.stdout, "ok   %s (%d entries)\n", path, templates.Len())
	}
	if failed > 0 {
		return fmt.Errorf("validate: %d of %d files invalid", failed, fs.NArg())
	}
	return nil
}

func runSchema(_ context.Context, e env, args []string) error {
	fs := pflag.NewFlagSet("schema", pflag.ContinueOnError)
	if err := parseFlags(fs, args, e.stderr); err != nil {
		return err
	}
	schema, err := registry.Schema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout, string(schema))
	return err
}

// openStoreDoc loads the document at treePath and opens the store at dsn.
func openStoreDoc(ctx context.Context, treePath, dsn string, logger *slog.Logger) (*tree.Document, *store.Store, error) {
	doc, err := tree.Load(treePath, tree.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(ctx, dsn, store.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return doc, s, nil
}

func runImport(ctx context.Context, e env, args []string) error {
	var treePath, dsn, bulkPath string
	var verbose bool
	fs := pflag.NewFlagSet("import", pflag.ContinueOnError)
	fs.StringVar(&treePath, "tree", "", "document snapshot")
	fs.StringVar(&dsn, "db", "", "sqlite database holding node templates")
	fs.StringVar(&bulkPath, "bulk", "", "component-keyed template file")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	if err := parseFlags(fs, args, e.stderr); err != nil {
		return err
	}
	if err := required(fs, "tree", "db", "bulk"); err != nil {
		return err
	}
	logger := newLogger(e.stderr, verbose).With("command", "import")

	bulk, err := registry.LoadBulk(bulkPath)
	if err != nil {
		return err
	}
	doc, s, err := openStoreDoc(ctx, treePath, dsn, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	components := doc.ComponentsByKey()
	var updated int
	for _, key := range bulk.Keys() {
		nodes := components[key]
		if len(nodes) == 0 {
			logger.Debug("no component with key", slog.String("key", key))
			continue
		}
		for _, node := range nodes {
			if err := s.Put(ctx, node.ID(), bulk[key]); err != nil {
				return fmt.Errorf("import %s: %w", node.ID(), err)
			}
			updated++
		}
	}
	suffix := "s"
	if updated == 1 {
		suffix = ""
	}
	fmt.Fprintf(e.stdout, "Updated %d Component%s\n", updated, suffix)
	return nil
}

func runExport(ctx context.Context, e env, args []string) error {
	var treePath, dsn, format string
	fs := pflag.NewFlagSet("export", pflag.ContinueOnError)
	fs.StringVar(&treePath, "tree", "", "document snapshot")
	fs.StringVar(&dsn, "db", "", "sqlite database holding node templates")
	fs.StringVar(&format, "format", string(registry.FormatJSON), "output format: json, yaml or toml")
	if err := parseFlags(fs, args, e.stderr); err != nil {
		return err
	}
	if err := required(fs, "tree", "db"); err != nil {
		return err
	}
	logger := newLogger(e.stderr, false).With("command", "export")

	doc, s, err := openStoreDoc(ctx, treePath, dsn, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	// The first component with stored templates wins for each key.
	bulk := registry.Bulk{}
	for key, nodes := range doc.ComponentsByKey() {
		for _, node := range nodes {
			defs, err := s.Get(ctx, node.ID())
			if err != nil {
				return fmt.Errorf("export %s: %w", node.ID(), err)
			}
			if len(defs) > 0 {
				bulk[key] = defs
				break
			}
		}
	}
	data, err := bulk.Encode(registry.Format(format))
	if err != nil {
		return err
	}
	_, err = e.stdout.Write(data)
	return err
}
