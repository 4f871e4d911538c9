package main

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"

	"github.com/SmileLaughter/Grammer-Analysis/grammar"
	"github.com/SmileLaughter/Grammer-Analysis/parser"
)

var rootCmd = &cobra.Command{
	Use:   "granal",
	Short: "Build LR parsing tables from a grammar and parse sentences with them",
	Long: `granal reads a context-free grammar from a text file, constructs the
LR(0), SLR(1), LR(1) or LALR(1) automaton and parsing tables for it, and can
run a shift-reduce parse over input sentences, showing every step.

Grammar files hold one rule per line, alternatives separated by '|':

    E -> E + T | T
    T -> T * F | F
    F -> ( E ) | id

Symbols written as an uppercase run (optionally primed or _N-suffixed) are
non-terminals, everything else is a terminal. An empty alternative or ε
denotes an epsilon production.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var rootFlags = struct {
	variant *string
	trace   *string
}{}

func init() {
	rootFlags.variant = rootCmd.PersistentFlags().StringP("variant", "v", "slr",
		"table variant: lr0 | slr | lr1 | lalr")
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error",
		"trace level [Debug|Info|Error]")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setupTracing applies the --trace flag to all granal trace keys.
func setupTracing() {
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range []string{"granal.grammar", "granal.automaton", "granal.parser",
		"granal.scanner", "granal.export"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func variantFromFlag() (parser.Variant, error) {
	switch *rootFlags.variant {
	case "lr0":
		return parser.LR0, nil
	case "slr":
		return parser.SLR, nil
	case "lr1":
		return parser.LR1, nil
	case "lalr":
		return parser.LALR, nil
	}
	return 0, fmt.Errorf("unknown table variant %q (want lr0, slr, lr1 or lalr)", *rootFlags.variant)
}

// buildParser loads a grammar file and builds the full table pipeline for
// the variant selected on the command line.
func buildParser(path string) (*parser.Parser, error) {
	variant, err := variantFromFlag()
	if err != nil {
		return nil, err
	}
	g, err := grammar.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar: %w", err)
	}
	p, err := parser.New(variant, g)
	if err != nil {
		return nil, fmt.Errorf("cannot build %s tables: %w", variant, err)
	}
	return p, nil
}
