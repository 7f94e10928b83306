package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	entries, err := collectEntries(fs.Args())
	if err != nil {
		return exitError{code: 2, err: err}
	}
	if len(entries) == 0 {
		return exitError{code: 2, err: errors.New("at least one entry is required")}
	}
	fmt.Fprintf(os.Stdout, "%d entries are valid.\n", len(entries))
	return nil
}
