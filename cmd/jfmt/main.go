// Copyright (C) 2024 W. Calder. All Rights Reserved.

// Program jfmt reads a JSON document and rewrites it, pretty-printed.
//
// Usage:
//
//	jfmt input.json            # rewrite input.json in place
//	jfmt input.json out.json   # write the result to out.json
//	jfmt - -                   # filter stdin to stdout
//
// Comments (// ... and /* ... */) are permitted in the input and are
// dropped from the output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/wcalder/jfmt/ast"
	"github.com/wcalder/jfmt/ast/cursor"
)

var (
	input  = kingpin.Arg("input", `Input path, or "-" for stdin.`).Required().String()
	output = kingpin.Arg("output", `Output path, or "-" for stdout (default: rewrite the input in place).`).String()

	indent   = kingpin.Flag("indent", "Indentation per nesting level.").Default("  ").String()
	colorize = kingpin.Flag("color", "Colorize output (auto, always, never).").Default("auto").Enum("auto", "always", "never")
	compact  = kingpin.Flag("compact", "Emit compact output on a single line.").Bool()
	selPath  = kingpin.Flag("select", `Format only the value at this dotted path (e.g. "plugins.2.name").`).String()
)

func main() {
	kingpin.Parse()

	in := os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			kingpin.Fatalf("%v", err)
		}
		in = f
	}
	root, perr := ast.Parse(in)
	in.Close()
	if perr != nil {
		kingpin.Fatalf("%s: %v", *input, perr)
	}
	if *selPath != "" {
		root, perr = cursor.Resolve(root, *selPath)
		if perr != nil {
			kingpin.Fatalf("select %q: %v", *selPath, perr)
		}
	}

	outPath := *output
	if outPath == "" {
		outPath = *input // rewrite the input in place
	}
	out := os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			kingpin.Fatalf("%v", err)
		}
		out = f
	}

	if err := render(out, root); err != nil {
		kingpin.Fatalf("%s: %v", outPath, err)
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			kingpin.Fatalf("%s: %v", outPath, err)
		}
	}
}

func render(out *os.File, root ast.Value) error {
	if *compact {
		_, err := fmt.Fprintln(out, root.JSON())
		return err
	}
	f := ast.Formatter{Indent: *indent, Palette: palette(out)}
	if err := f.Format(out, root); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return err
}

// palette decides whether output is colorized. In auto mode color is used
// only when writing to a terminal.
func palette(out *os.File) *ast.Palette {
	switch *colorize {
	case "never":
		return nil
	case "always":
		color.NoColor = false
	default: // auto
		if out != os.Stdout || !isatty.IsTerminal(out.Fd()) {
			return nil
		}
	}
	return ast.DefaultPalette()
}
