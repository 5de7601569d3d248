package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/teris-io/cli"

	"cparse.dev/cparse/pkg/cparse"
)

var Description = strings.ReplaceAll(`
The cparse REPL reads lines of already-preprocessed C99 source text, either
from standard input or from a file, and feeds each one to a single grammar
entry point selected by --mode. It is the interactive driver described as
out of scope for the core parser: a thin shell that reports "ok" or "parse
error" per line and, with PRINT_AST set, a diagnostic dump of the resulting
AST.
`, "\n", " ")

var CparseRepl = cli.New(Description).
	WithOption(cli.NewOption("mode", "Grammar entry point to drive: expr|stmt|decl|unit").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("file", "Read input lines from this file instead of stdin").
		WithType(cli.TypeString)).
	WithAction(Handler)

func modeFromFlag(raw string) (cparse.Mode, bool) {
	switch raw {
	case "", "expr":
		return cparse.ModeExpression, true
	case "stmt":
		return cparse.ModeStatement, true
	case "decl":
		return cparse.ModeDeclaration, true
	case "unit":
		return cparse.ModeTranslationUnit, true
	default:
		return 0, false
	}
}

// Handler drives one parse per input line; the run helper underneath it is
// directly unit-testable without spawning a binary. It returns -1 for an
// unknown --mode, an input file that cannot be opened, or a batch in which
// every non-blank line failed to parse, and 0 otherwise.
func Handler(args []string, options map[string]string) int {
	return run(os.Stdin, os.Stdout, options)
}

func run(stdin io.Reader, stdout io.Writer, options map[string]string) int {
	mode, ok := modeFromFlag(options["mode"])
	if !ok {
		fmt.Fprintf(stdout, "ERROR: unknown --mode %q, expected expr|stmt|decl|unit\n", options["mode"])
		return -1
	}

	in := stdin
	if path := options["file"]; path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stdout, "ERROR: unable to open input file: %s\n", err)
			return -1
		}
		defer f.Close()
		in = f
	}

	printAST := os.Getenv("PRINT_AST") != ""

	scanner := bufio.NewScanner(in)
	total, failed := 0, 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++

		parser := cparse.NewParser(strings.NewReader(line), mode)
		node, err := parser.Parse()
		if err != nil {
			fmt.Fprintf(stdout, "parse error: %s\n", err)
			failed++
			continue
		}

		fmt.Fprintln(stdout, "ok")
		if printAST {
			fmt.Fprintln(stdout, cparse.Sprint(node))
		}
	}

	if total > 0 && failed == total {
		return -1
	}
	return 0
}

func main() { os.Exit(CparseRepl.Run(os.Args, os.Stdout)) }
