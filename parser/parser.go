package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/gconf"

	"github.com/SmileLaughter/Grammer-Analysis/automaton"
	"github.com/SmileLaughter/Grammer-Analysis/grammar"
)

// Variant selects the LR table class a Parser is built with.
type Variant int

const (
	LR0 Variant = iota
	SLR
	LR1
	LALR
)

func (v Variant) String() string {
	switch v {
	case LR0:
		return "LR(0)"
	case SLR:
		return "SLR(1)"
	case LR1:
		return "LR(1)"
	case LALR:
		return "LALR(1)"
	}
	return "unknown"
}

// Option configures parser construction.
type Option func(*options)

type options struct {
	cfg automaton.Config
}

// WithConfig overrides the automaton construction config (deterministic by
// default).
func WithConfig(cfg automaton.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// Parser ties together grammar augmentation, analysis, automaton
// construction and table building for one grammar and one table class.
// Construct with New, then call Parse for each input sentence; a Parser is
// immutable after construction and safe for concurrent Parse calls.
type Parser struct {
	variant Variant
	g       *grammar.Grammar // input grammar, as given
	aug     *grammar.Grammar
	ga      *grammar.Analysis // nil for LR(0)
	dfa     *automaton.Automaton
	table   *Table
}

// New builds the full table pipeline for a grammar: augment, analyze (for
// the variants that need sets), construct the automaton, fill the tables.
// Conflicts do not fail construction; inspect Table().Conflicts().
func New(variant Variant, g *grammar.Grammar, opts ...Option) (*Parser, error) {
	o := options{cfg: automaton.DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	aug, err := grammar.Augment(g)
	if err != nil {
		return nil, err
	}
	p := &Parser{variant: variant, g: g, aug: aug}
	if variant != LR0 {
		p.ga = grammar.Analyze(g) // sets come from the unaugmented grammar
	}
	var policy ReducePolicy
	switch variant {
	case LR0:
		p.dfa = automaton.BuildLR0(aug, o.cfg)
		policy = LR0Policy(aug)
	case SLR:
		p.dfa = automaton.BuildLR0(aug, o.cfg)
		policy = SLRPolicy(p.ga)
	case LR1:
		p.dfa = automaton.BuildLR1(aug, p.ga, o.cfg)
		policy = LR1Policy()
	case LALR:
		p.dfa, err = automaton.BuildLALR(aug, p.ga, o.cfg)
		if err != nil {
			return nil, err
		}
		policy = LALRPolicy()
	default:
		return nil, fmt.Errorf("unknown parser variant %d", variant)
	}
	p.table = BuildTable(p.dfa, policy)
	return p, nil
}

// Variant returns the table class the parser was built for.
func (p *Parser) Variant() Variant {
	return p.variant
}

// Grammar returns the grammar as given to New.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.g
}

// Augmented returns the augmented grammar the tables refer to.
func (p *Parser) Augmented() *grammar.Grammar {
	return p.aug
}

// Analysis returns the set analysis, or nil for an LR(0) parser.
func (p *Parser) Analysis() *grammar.Analysis {
	return p.ga
}

// Automaton returns the underlying LR automaton.
func (p *Parser) Automaton() *automaton.Automaton {
	return p.dfa
}

// Table returns the ACTION/GOTO tables.
func (p *Parser) Table() *Table {
	return p.table
}

// Step is one row of the parse trace: the stacks and remaining input as
// they were before the action was applied, plus the action taken.
type Step struct {
	States    []int
	Symbols   []string
	Remaining []string
	Action    string
}

// Result is the outcome of a Parse call. Steps are always populated, also
// for rejected input; Tree is non-nil only for an accepted parse.
type Result struct {
	Accepted bool
	Steps    []Step
	Tree     *TreeNode
}

// Parse runs the shift-reduce-goto loop on a sentence of terminal symbols.
// The end marker is appended internally and must not be part of the input.
// A rejected sentence yields a Result with Accepted false and a descriptive
// error; the parser never panics on bad input.
func (p *Parser) Parse(input []string) (*Result, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	tracer().Debugf("%s parse of %q", p.variant, strings.Join(input, " "))
	result := &Result{}
	for _, sym := range input {
		if sym == grammar.EndMarker {
			return result, fmt.Errorf("input must not contain the end marker %q", grammar.EndMarker)
		}
		if !p.aug.IsTerminal(sym) {
			return result, fmt.Errorf("unknown terminal %q in input", sym)
		}
	}
	remaining := make([]string, 0, len(input)+1)
	remaining = append(remaining, input...)
	remaining = append(remaining, grammar.EndMarker)
	states := []int{1}
	symbols := []string{grammar.EndMarker}
	nodes := []*TreeNode{nil} // parallel to symbols
	for {
		top := states[len(states)-1]
		la := grammar.EndMarker // tables for S' → S $ grammars shift the end marker itself
		if len(remaining) > 0 {
			la = remaining[0]
		}
		actions := p.table.Actions(top, la)
		if len(actions) == 0 {
			result.Steps = append(result.Steps, snapshot(states, symbols, remaining, "error"))
			return result, fmt.Errorf("syntax error: no action in state %d on %q", top, la)
		}
		action := pickAction(actions)
		result.Steps = append(result.Steps, snapshot(states, symbols, remaining, action.String()))
		tracer().Debugf("state %d, lookahead %q, action %v", top, la, action)
		switch action.Type {
		case Shift:
			states = append(states, action.Target)
			symbols = append(symbols, la)
			nodes = append(nodes, &TreeNode{Symbol: la, Terminal: true})
			if len(remaining) > 0 {
				remaining = remaining[1:]
			}
		case Reduce:
			prod := p.aug.Rule(action.Target)
			n := prod.Len()
			children := make([]*TreeNode, n)
			for i := n - 1; i >= 0; i-- { // popped in reverse
				children[i] = nodes[len(nodes)-1]
				states = states[:len(states)-1]
				symbols = symbols[:len(symbols)-1]
				nodes = nodes[:len(nodes)-1]
			}
			if prod.IsEpsilon() {
				children = []*TreeNode{{Symbol: grammar.Epsilon, Terminal: true}}
			}
			tracer().Infof("reduce %v", prod)
			top = states[len(states)-1]
			target, ok := p.table.Goto(top, prod.LHS)
			if !ok {
				msg := fmt.Sprintf("parser stuck: no goto in state %d on %q after reduce %v",
					top, prod.LHS, prod)
				stuck(msg)
				return result, errors.New(msg)
			}
			states = append(states, target)
			symbols = append(symbols, prod.LHS)
			nodes = append(nodes, &TreeNode{Symbol: prod.LHS, Production: prod, Children: children})
		case Accept:
			result.Accepted = true
			root := nodes[len(nodes)-1]
			if root != nil && root.Terminal && root.Symbol == grammar.EndMarker && len(nodes) > 1 {
				root = nodes[len(nodes)-2] // grammars of the form S' → S $ shift the end marker
			}
			result.Tree = root
			return result, nil
		}
	}
}

// pickAction resolves a conflicting cell at runtime: shift wins when
// present, otherwise the first recorded action is taken.
func pickAction(actions []Action) Action {
	for _, a := range actions {
		if a.Type == Shift {
			return a
		}
	}
	return actions[0]
}

func snapshot(states []int, symbols, remaining []string, action string) Step {
	return Step{
		States:    append([]int(nil), states...),
		Symbols:   append([]string(nil), symbols...),
		Remaining: append([]string(nil), remaining...),
		Action:    action,
	}
}

func stuck(msg string) {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(`LR-parser is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at helping
to debug a parser and do a post-mortem of why it got stuck. However, if this is
a production environment and you did not expect this to panic, please unset
panic-on-parser-stuck to its default (false).

` + msg)
	}
}
