// Command ziyy renders ziyy markup to ANSI-escaped text.
//
// Grounded on main.go's read-file-or-stdin / flag-dispatch shape,
// reimplemented with github.com/alecthomas/kong instead of the stdlib
// flag package (spec.md EXTERNAL INTERFACES, SPEC_FULL.md AMBIENT STACK).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"ziyy"
	"ziyy/internal/encoding"
	"ziyy/render"
	"ziyy/ziyyerr"
)

var version = "dev"

type cli struct {
	Version   kong.VersionFlag `short:"V" help:"Print the version and exit."`
	CLIText   bool             `short:"c" help:"Treat FILES as literal source text (or read stdin if none given), instead of file paths."`
	Ansi      bool             `short:"e" help:"Raw ANSI passthrough only: do not parse ziyy markup."`
	NoNewline bool             `short:"n" help:"Suppress the trailing newline (only with -c)."`
	Strip     bool             `help:"Strip all styles; emit plain text."`
	Tree      bool             `help:"Emit a debug tree instead of styled text."`
	Legacy    bool             `help:"Emit full resets instead of precise per-dimension off codes, for older terminals."`

	Files []string `arg:"" optional:"" help:"Files to render (or the literal source when -c is given)."`
}

func main() {
	var c cli
	parser := kong.Must(&c,
		kong.Name("ziyy"),
		kong.Description("Render ziyy markup to ANSI-escaped text."),
		kong.Vars{"version": version},
	)
	_, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := run(&c); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func run(c *cli) error {
	opts := render.Options{Legacy: c.Legacy, Strip: c.Strip}

	if c.CLIText {
		source, err := cliSource(c.Files)
		if err != nil {
			return err
		}
		return renderOne(source, opts, c, !c.NoNewline)
	}

	if len(c.Files) == 0 {
		source, err := readAll(os.Stdin)
		if err != nil {
			return err
		}
		return renderOne(source, opts, c, true)
	}

	for _, path := range c.Files {
		source, err := readFile(path)
		if err != nil {
			return err
		}
		if err := renderOne(source, opts, c, true); err != nil {
			return err
		}
	}
	return nil
}

func cliSource(files []string) (string, error) {
	if len(files) > 0 {
		return strings.Join(files, " "), nil
	}
	return readAll(os.Stdin)
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return stripShebang(string(data)), nil
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// stripShebang removes a leading `#!...` line, per spec.md §6's "files
// beginning with #! have their first line stripped".
func stripShebang(src string) string {
	if !strings.HasPrefix(src, "#!") {
		return src
	}
	if i := strings.IndexByte(src, '\n'); i >= 0 {
		return src[i+1:]
	}
	return ""
}

func renderOne(source string, opts render.Options, c *cli, trailingNewline bool) error {
	normalized, err := encoding.ToUTF8([]byte(source))
	if err != nil {
		return err
	}
	source = string(normalized)

	if c.Tree {
		tree, err := ziyy.RenderToTree(source, opts)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if c.Ansi {
		sink := render.NewBufferSink()
		r := render.New(sink, opts)
		if err := r.WriteRawAnsi(source); err != nil {
			return err
		}
		writeOut(sink.String(), trailingNewline)
		return nil
	}

	out, err := ziyy.TryStyleWithOptions(source, opts)
	if err != nil {
		return err
	}
	writeOut(out, trailingNewline)
	return nil
}

func writeOut(s string, trailingNewline bool) {
	if trailingNewline {
		fmt.Println(s)
		return
	}
	fmt.Print(s)
}

// reportError prints a diagnostic to stderr, highlighting the span for
// ziyyerr.Error values the way spec.md §6 describes ("prefixed with a
// colorized at <line:col>").
func reportError(err error) {
	var zerr *ziyyerr.Error
	if e, ok := err.(*ziyyerr.Error); ok {
		zerr = e
	}
	if zerr == nil {
		fmt.Fprintf(os.Stderr, "ziyy: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "ziyy: \x1b[1;31mat %s\x1b[0m: %s\n", zerr.Span, zerr.Msg)
}
