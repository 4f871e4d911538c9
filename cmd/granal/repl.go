package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "repl <grammar file>",
		Short:   "Parse sentences interactively",
		Example: `  granal repl -v lr1 expr.g`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRepl,
	}
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	setupTracing()
	p, err := buildParser(args[0])
	if err != nil {
		return err
	}
	pterm.Info.Printf("%s parser for grammar %s ready\n", p.Variant(), p.Grammar().Name)
	if p.Table().HasConflicts() {
		pterm.Error.Printf("tables have %d conflicts, parses may take the preferred action\n",
			len(p.Table().Conflicts()))
	}
	repl, err := readline.New("granal> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Enter a sentence, quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		sentence, err := tokenize(p, line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		result, err := p.Parse(sentence)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		pterm.Info.Printf("accepted after %d steps\n", len(result.Steps))
		showTree(result.Tree)
	}
	println("Good bye!")
	return nil
}
