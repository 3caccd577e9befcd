// Package main provides the CLI entrypoint for ontology-mapper.
//
// ontology-mapper analyzes spreadsheet-to-ontology mapping profiles:
//   - validate: reports dependency cycles, deep chains and binding problems
//   - graph:    prints chains, orphans, evaluation order and impact sets
//   - suggest:  proposes business rules for a field from sample rows
//   - columns:  proposes csv columns for unbound fields
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"ontology-mapper/internal/config"
	"ontology-mapper/internal/logging"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usageText = `Usage: ontology-mapper <command> [flags] <args>

Commands:
  validate <mappings.yaml>                       check dependencies
  graph    <mappings.yaml> [--field id] [--dump] print the dependency graph
  suggest  <mappings.yaml> <samples.yaml> --target entity.property
           [--column name] [--top n]             propose business rules
  columns  <mappings.yaml> <samples.yaml> [--write]
                                                 propose csv columns

Common flags:
  --config  path to config YAML (env vars override, defaults apply when absent)
`

// errUsage marks command line mistakes.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries what every command needs.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
}

type commandFlags struct {
	config string
	field  string
	target string
	column string
	top    int
	dump   bool
	write  bool
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return exitUsage
	}

	name, rest := args[0], args[1:]

	var (
		cmd  func(*app, commandFlags, []string) error
		want int
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f commandFlags
	fs.StringVar(&f.config, "config", "", "path to config YAML")

	switch name {
	case "validate":
		cmd, want = runValidate, 1
	case "graph":
		cmd, want = runGraph, 1
		fs.StringVar(&f.field, "field", "", "field id to show dependencies and impact for")
		fs.BoolVar(&f.dump, "dump", false, "dump the raw graph structure")
	case "suggest":
		cmd, want = runSuggest, 2
		fs.StringVar(&f.target, "target", "", "target field id (entity.property)")
		fs.StringVar(&f.column, "column", "", "only show suggestions derived from this sample column")
		fs.IntVar(&f.top, "top", 0, "show at most this many suggestions (0 for all)")
	case "columns":
		cmd, want = runColumns, 2
		fs.BoolVar(&f.write, "write", false, "write confident matches back to the mappings file")
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usageText)
		return exitOK
	default:
		fmt.Fprintf(stderr, "Unknown command %q\n\n%s", name, usageText)
		return exitUsage
	}

	positional, err := parseInterleaved(fs, rest)
	if err != nil {
		return exitUsage
	}

	if len(positional) != want {
		fmt.Fprintf(stderr, "%s expects %d argument(s), got %d\n\n%s", name, want, len(positional), usageText)
		return exitUsage
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitFailure
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	a := &app{cfg: cfg, logger: logger, out: stdout}

	if err := cmd(a, f, positional); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "%v\n\n%s", err, usageText)
			return exitUsage
		}

		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitFailure
	}

	return exitOK
}

// parseInterleaved parses flags that may appear before, between or after
// positional arguments. A "--" terminator is consumed but not honored.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string

	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}

		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}

		positional = append(positional, args[0])
		args = args[1:]
	}
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
