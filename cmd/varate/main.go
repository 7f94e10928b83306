package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/jtallent/varate/internal/explain"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "combine":
		if err := runCombine(os.Args[2:]); err != nil {
			fail(err)
		}
	case "validate":
		if err := runValidate(os.Args[2:]); err != nil {
			fail(err)
		}
	case "explain":
		if err := runExplain(os.Args[2:]); err != nil {
			fail(err)
		}
	case "version":
		fmt.Println(version)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "varate - VA combined disability rating calculator")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  varate combine \"PTSD=50\" \"Back pain=30\" Knee=10")
	fmt.Fprintln(os.Stderr, "  varate combine -format json 50 30 10")
	fmt.Fprintln(os.Stderr, "  varate combine            (reads one entry per line from stdin)")
	fmt.Fprintln(os.Stderr, "  varate validate Tinnitus=10")
	fmt.Fprintln(os.Stderr, "  varate explain va-math")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Entries are NAME=PERCENT tokens; the name may be omitted.")
}

func runExplain(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("explain requires a topic: va-math or rounding")
	}
	switch args[0] {
	case "va-math":
		fmt.Fprintln(os.Stdout, explain.VAMath())
	case "rounding":
		fmt.Fprintln(os.Stdout, explain.Rounding())
	default:
		return fmt.Errorf("unknown explain topic %q", args[0])
	}
	return nil
}

func newLogger(verbose, noColor bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: noColor,
	}))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	if err == nil {
		os.Exit(1)
	}
	type exitCoder interface {
		ExitCode() int
	}
	if coded, ok := err.(exitCoder); ok {
		os.Exit(coded.ExitCode())
	}
	os.Exit(1)
}
