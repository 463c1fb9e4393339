// Command snippet renders code snippets for nodes of a design document
// snapshot and manages the templates they are rendered from.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// errHelp is returned by parseFlags after usage has been printed.
var errHelp = errors.New("help requested")

// env carries what every command writes to.
type env struct {
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, e env, args []string) error
}

func commands() []command {
	return []command{
		{"render", "render snippets for nodes of a document", runRender},
		{"validate", "check one or more template files", runValidate},
		{"schema", "print the JSON Schema of template files", runSchema},
		{"import", "store component-keyed templates on matching components", runImport},
		{"export", "print stored templates keyed by component key", runExport},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	e := env{stdout: stdout, stderr: stderr}
	if len(args) == 0 {
		usage(stderr)
		return errors.New("command required")
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		usage(stdout)
		return nil
	}
	for _, cmd := range commands() {
		if cmd.name != name {
			continue
		}
		err := cmd.run(ctx, e, args[1:])
		if errors.Is(err, errHelp) {
			return nil
		}
		return err
	}
	usage(stderr)
	return fmt.Errorf("unknown command %q", name)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snippet <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands() {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.summary)
	}
}

// parseFlags parses args into fs. On -h it prints the flag usage and
// returns errHelp.
func parseFlags(fs *pflag.FlagSet, args []string, stderr io.Writer) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stderr, "Usage of snippet %s:\n%s", fs.Name(), fs.FlagUsages())
			return errHelp
		}
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}
	return nil
}

// required reports the first empty flag among names.
func required(fs *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if f := fs.Lookup(name); f == nil || f.Value.String() == "" {
			return fmt.Errorf("%s: --%s is required", fs.Name(), name)
		}
	}
	return nil
}
