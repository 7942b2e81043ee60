/*
File    : seagull/cmd/seagull/main.go
*/

// Command seagull is the driver for the compiler core in
// internal/{lexer,parser,sema,ast,codegen}. §1 places the driver itself
// outside the core's scope ("reading stdin, printing to stdout"); this
// is the minimal real entry point around that core, built with cobra
// (SPEC_FULL.md AMBIENT STACK) the way the gix example repo in the pack
// uses it for its own CLI, plus the debug dump flags SPEC_FULL.md's
// SUPPLEMENTED FEATURES section adds back from original_source/.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/seagull/internal/astprint"
	"github.com/akashmaji946/seagull/internal/codegen"
	"github.com/akashmaji946/seagull/internal/lexer"
	"github.com/akashmaji946/seagull/internal/parser"
	"github.com/akashmaji946/seagull/internal/sema"
	"github.com/akashmaji946/seagull/internal/token"
)

var (
	errColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

var (
	dumpTokens bool
	dumpAST    bool
)

func main() {
	root := &cobra.Command{
		Use:   "seagull",
		Short: "seagull compiles a small C-like dialect to LLVM-style SSA IR",
		Long: "seagull reads a program from standard input, lexes and parses it " +
			"with an integrated semantic analyzer, and writes the lowered IR " +
			"module to standard output.",
		RunE: run,
	}
	root.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the token stream to stderr before parsing")
	root.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST to stderr before code generation")

	if err := root.Execute(); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading standard input: %w", err)
	}

	tokens := lexer.Tokenize(string(src))
	if dumpTokens {
		dumpTokenStream(tokens)
	}

	unit, err := parser.Parse(tokens)
	if err != nil {
		if semaErr, ok := err.(*sema.Error); ok {
			// §7: a single fatal diagnostic line, process exits -1.
			errColor.Fprintln(os.Stdout, semaErr.Message)
			os.Exit(-1)
		}
		// Syntactic mismatch at the top level: no diagnostic, no IR
		// output (§7).
		os.Exit(-1)
	}

	if dumpAST {
		infoColor.Fprintln(os.Stderr, astprint.PrintUnit(unit))
	}

	module, err := codegen.Generate(unit)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, module.String())
	return nil
}

func dumpTokenStream(tokens []token.Token) {
	for _, t := range tokens {
		infoColor.Fprintf(os.Stderr, "%s %q\n", t.Type, t.Literal)
	}
}
