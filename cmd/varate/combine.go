package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jtallent/varate/internal/config"
	"github.com/jtallent/varate/internal/entry"
	"github.com/jtallent/varate/internal/rating"
	"github.com/jtallent/varate/internal/report"
)

type combineOptions struct {
	format  string
	explain bool
	verbose bool
}

func runCombine(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("combine", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := &combineOptions{}
	fs.StringVar(&opts.format, "format", cfg.Format, "output format: text, json, yaml, or md")
	fs.BoolVar(&opts.explain, "explain", false, "include the combination formula and notes")
	fs.BoolVar(&opts.verbose, "verbose", cfg.Verbose, "verbose diagnostics on stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(opts.verbose, cfg.NoColor)

	entries, err := collectEntries(fs.Args())
	if err != nil {
		return exitError{code: 2, err: err}
	}
	if len(entries) == 0 {
		return exitError{code: 2, err: errors.New("at least one entry is required")}
	}
	logger.Debug("entries validated", "count", len(entries))

	percents := entry.Percents(entries)
	_, dropped := rating.Filter(percents)
	final, steps := rating.Combine(percents)
	logger.Debug("combined", "final", final, "steps", len(steps), "dropped", dropped)

	doc := report.Build(entries, final, steps, dropped, report.Options{Explain: opts.explain})

	switch strings.ToLower(strings.TrimSpace(opts.format)) {
	case "", "text":
		report.Render(os.Stdout, doc)
	case "json":
		return report.WriteJSON(os.Stdout, doc)
	case "yaml":
		return report.WriteYAML(os.Stdout, doc)
	case "md", "markdown":
		report.WriteMarkdown(os.Stdout, doc)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
	return nil
}

func collectEntries(args []string) ([]entry.Entry, error) {
	if len(args) == 0 {
		return entry.Read(os.Stdin)
	}
	return entry.ParseArgs(args)
}
