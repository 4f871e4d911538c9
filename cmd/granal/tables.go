package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/SmileLaughter/Grammer-Analysis/export"
	"github.com/SmileLaughter/Grammer-Analysis/parser"
)

var tablesFlags = struct {
	sets     *bool
	jsonFile *string
	dotFile  *string
	htmlFile *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "tables <grammar file>",
		Short:   "Construct and display the automaton and parsing tables",
		Example: `  granal tables -v lalr expr.g --dot expr.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTables,
	}
	tablesFlags.sets = cmd.Flags().Bool("sets", false, "show NULLABLE/FIRST/FOLLOW sets")
	tablesFlags.jsonFile = cmd.Flags().String("json", "", "export the automaton as JSON to a file")
	tablesFlags.dotFile = cmd.Flags().String("dot", "", "export the automaton as Graphviz Dot to a file")
	tablesFlags.htmlFile = cmd.Flags().String("html", "", "export the tables as HTML to a file")
	rootCmd.AddCommand(cmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	setupTracing()
	p, err := buildParser(args[0])
	if err != nil {
		return err
	}
	g := p.Augmented()
	pterm.Info.Printf("%s tables for grammar %s\n", p.Variant(), g.Name)
	for _, prod := range g.Productions() {
		pterm.Printf("  %3d: %v\n", prod.Serial, prod)
	}
	if *tablesFlags.sets && p.Analysis() != nil {
		showSets(p)
	}
	pterm.Info.Printf("automaton has %d states\n", p.Automaton().Size())
	showActionTable(p)
	showGotoTable(p)
	for _, c := range p.Table().Conflicts() {
		pterm.Error.Println(c)
	}
	if !p.Table().HasConflicts() {
		pterm.Info.Printf("no conflicts, grammar is %s\n", p.Variant())
	}
	return exportTables(p)
}

func showSets(p *parser.Parser) {
	ga := p.Analysis()
	data := pterm.TableData{{"symbol", "nullable", "FIRST", "FOLLOW"}}
	for _, nt := range p.Grammar().NonTerminals() {
		data = append(data, []string{
			nt,
			fmt.Sprintf("%v", ga.Nullable(nt)),
			strings.Join(ga.First(nt), " "),
			strings.Join(ga.Follow(nt), " "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func showActionTable(p *parser.Parser) {
	t := p.Table()
	terminals := t.Grammar().Terminals()
	header := append([]string{"ACTION"}, terminals...)
	data := pterm.TableData{header}
	for state := 1; state <= t.States(); state++ {
		row := make([]string, 0, len(header))
		row = append(row, fmt.Sprintf("%d", state))
		for _, term := range terminals {
			row = append(row, actionCell(t.Actions(state, term)))
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func showGotoTable(p *parser.Parser) {
	t := p.Table()
	nts := t.NonTerminals()
	header := append([]string{"GOTO"}, nts...)
	data := pterm.TableData{header}
	for state := 1; state <= t.States(); state++ {
		row := make([]string, 0, len(header))
		row = append(row, fmt.Sprintf("%d", state))
		for _, nt := range nts {
			if target, ok := t.Goto(state, nt); ok {
				row = append(row, fmt.Sprintf("%d", target))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func actionCell(actions []parser.Action) string {
	if len(actions) == 0 {
		return ""
	}
	strs := make([]string, len(actions))
	for n, a := range actions {
		strs[n] = a.String()
	}
	return strings.Join(strs, "/")
}

func exportTables(p *parser.Parser) error {
	if *tablesFlags.jsonFile != "" {
		f, err := os.Create(*tablesFlags.jsonFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.AutomatonAsJSON(p.Automaton(), f); err != nil {
			return err
		}
		pterm.Info.Printf("automaton exported to %s\n", *tablesFlags.jsonFile)
	}
	if *tablesFlags.dotFile != "" {
		f, err := os.Create(*tablesFlags.dotFile)
		if err != nil {
			return err
		}
		defer f.Close()
		export.AutomatonAsGraphViz(p.Automaton(), f)
		pterm.Info.Printf("automaton exported to %s\n", *tablesFlags.dotFile)
	}
	if *tablesFlags.htmlFile != "" {
		f, err := os.Create(*tablesFlags.htmlFile)
		if err != nil {
			return err
		}
		defer f.Close()
		export.TablesAsHTML(p.Table(), f)
		pterm.Info.Printf("tables exported to %s\n", *tablesFlags.htmlFile)
	}
	return nil
}
