package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/SmileLaughter/Grammer-Analysis/parser"
	"github.com/SmileLaughter/Grammer-Analysis/scanner"
)

var parseFlags = struct {
	split *bool
	steps *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar file> <input>...",
		Short:   "Parse a sentence and show the derivation",
		Example: `  granal parse -v lalr expr.g "id + id * id"`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    runParse,
	}
	parseFlags.split = cmd.Flags().Bool("split", false,
		"split input at whitespace instead of scanning it")
	parseFlags.steps = cmd.Flags().Bool("steps", true, "show the parse trace")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	setupTracing()
	p, err := buildParser(args[0])
	if err != nil {
		return err
	}
	input := strings.Join(args[1:], " ")
	sentence, err := tokenize(p, input)
	if err != nil {
		return err
	}
	result, err := p.Parse(sentence)
	if *parseFlags.steps && result != nil {
		showSteps(result)
	}
	if err != nil {
		pterm.Error.Println(err)
		return nil
	}
	if result.Accepted {
		pterm.Info.Printf("accepted after %d steps\n", len(result.Steps))
		showTree(result.Tree)
	}
	return nil
}

// tokenize turns the raw input into a terminal sequence, either by scanning
// it with a grammar-derived DFA or by splitting at whitespace.
func tokenize(p *parser.Parser, input string) ([]string, error) {
	if *parseFlags.split {
		return scanner.Fields(input), nil
	}
	gs, err := scanner.NewGrammarScanner(p.Grammar())
	if err != nil {
		return nil, err
	}
	return gs.Sentence(input)
}

func showSteps(result *parser.Result) {
	data := pterm.TableData{{"states", "symbols", "input", "action"}}
	for _, step := range result.Steps {
		data = append(data, []string{
			intsString(step.States),
			strings.Join(step.Symbols, " "),
			strings.Join(step.Remaining, " "),
			step.Action,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// showTree renders a parse tree with pterm's tree printer.
func showTree(root *parser.TreeNode) {
	ll := leveledTree(root, pterm.LeveledList{}, 0)
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func leveledTree(node *parser.TreeNode, ll pterm.LeveledList, level int) pterm.LeveledList {
	label := node.Symbol
	if node.Production != nil {
		label = node.Production.String()
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: label})
	for _, c := range node.Children {
		ll = leveledTree(c, ll, level+1)
	}
	return ll
}

func intsString(ints []int) string {
	strs := make([]string, len(ints))
	for n, i := range ints {
		strs[n] = strconv.Itoa(i)
	}
	return strings.Join(strs, " ")
}
