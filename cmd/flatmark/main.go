// Command flatmark flattens a markdown document into display lines and
// attribute spans.
//
// Usage:
//
//	flatmark [flags] [file]
//
// Reads from stdin when no file is given. When stdout is a terminal it
// prints an ANSI-styled preview; otherwise it emits the JSON wire form
// ({"text": [...], "attrs": [...]}) for a consuming display layer.
//
// Flags:
//
//	--json    Force the JSON wire form
//	--ansi    Force the ANSI-styled preview
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/flatmark"
	"github.com/fwojciec/flatmark/ansi"
	"github.com/fwojciec/flatmark/markdown"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flatmark: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		jsonOut bool
		ansiOut bool
	)
	flags := pflag.NewFlagSet("flatmark", pflag.ExitOnError)
	flags.BoolVar(&jsonOut, "json", false, "Force the JSON wire form")
	flags.BoolVar(&ansiOut, "ansi", false, "Force the ANSI-styled preview")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	source, err := readSource(flags.Args())
	if err != nil {
		return err
	}

	res, err := markdown.Flatten(source)
	if err != nil {
		return err
	}

	switch {
	case jsonOut:
		return writeJSON(res)
	case ansiOut || term.IsTerminal(int(os.Stdout.Fd())):
		fmt.Println(ansi.Render(res, flatmark.DefaultTheme()))
		return nil
	default:
		return writeJSON(res)
	}
}

func readSource(args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("expected at most one file argument, got %d", len(args))
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func writeJSON(res flatmark.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
