package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// Reserved symbols. Epsilon marks the empty string and never occurs inside a
// production's right-hand side; EndMarker terminates every input and is
// always classified as a terminal.
const (
	Epsilon   = "ε"
	EndMarker = "$"
)

// Production is a single grammar production LHS → RHS. The right-hand side
// is empty for an epsilon production. Serial is the production's stable
// position within its grammar (0-based, insertion order) and serves as the
// canonical identity for LR item cores.
type Production struct {
	LHS    string
	Serial int
	rhs    []string
}

// RHS returns the right-hand side symbols of a production.
func (p *Production) RHS() []string {
	return p.rhs
}

// Len returns the number of symbols on the right-hand side.
func (p *Production) Len() int {
	return len(p.rhs)
}

// IsEpsilon is true for productions with an empty right-hand side.
func (p *Production) IsEpsilon() bool {
	return len(p.rhs) == 0
}

// Eq compares two productions structurally, i.e. by left-hand side and
// right-hand side sequence, independently of their serial numbers.
func (p *Production) Eq(other *Production) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.LHS != other.LHS || len(p.rhs) != len(other.rhs) {
		return false
	}
	for i, sym := range p.rhs {
		if other.rhs[i] != sym {
			return false
		}
	}
	return true
}

func (p *Production) String() string {
	if p.IsEpsilon() {
		return fmt.Sprintf("%s → %s", p.LHS, Epsilon)
	}
	return fmt.Sprintf("%s → %s", p.LHS, strings.Join(p.rhs, " "))
}

// Grammar is an immutable context-free grammar: an ordered sequence of
// productions, the sets of terminal and non-terminal symbols, and a start
// symbol. Construct one with a GrammarBuilder or a grammar reader; grammars
// are never mutated after construction (augmentation produces a new Grammar).
type Grammar struct {
	Name         string
	prods        []*Production
	terminals    map[string]struct{}
	nonterminals map[string]struct{}
	start        string
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.prods)
}

// Rule returns the production with the given serial number, or nil.
func (g *Grammar) Rule(serial int) *Production {
	if serial < 0 || serial >= len(g.prods) {
		return nil
	}
	return g.prods[serial]
}

// Productions returns all productions in insertion order.
func (g *Grammar) Productions() []*Production {
	return g.prods
}

// ProductionsFor returns all productions with the given left-hand side, in
// insertion order.
func (g *Grammar) ProductionsFor(nt string) []*Production {
	var r []*Production
	for _, p := range g.prods {
		if p.LHS == nt {
			r = append(r, p)
		}
	}
	return r
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// IsTerminal checks whether sym is a terminal of this grammar. The end
// marker counts as a terminal even if no production mentions it.
func (g *Grammar) IsTerminal(sym string) bool {
	if sym == EndMarker {
		return true
	}
	_, ok := g.terminals[sym]
	return ok
}

// IsNonTerminal checks whether sym is a non-terminal of this grammar.
func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.nonterminals[sym]
	return ok
}

// Terminals returns the terminal symbols in lexicographic order.
func (g *Grammar) Terminals() []string {
	return sortedSymbols(g.terminals)
}

// NonTerminals returns the non-terminal symbols in lexicographic order.
func (g *Grammar) NonTerminals() []string {
	return sortedSymbols(g.nonterminals)
}

// EachSymbol calls f for every symbol of the grammar, terminals first, both
// groups in lexicographic order.
func (g *Grammar) EachSymbol(f func(sym string, isTerminal bool)) {
	for _, t := range g.Terminals() {
		f(t, true)
	}
	for _, nt := range g.NonTerminals() {
		f(nt, false)
	}
}

// Dump is a debugging helper, logging all productions of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("=== grammar %s =========================", g.Name)
	tracer().Debugf("start symbol: %s", g.start)
	for _, p := range g.prods {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	tracer().Debugf("========================================")
}

// newGrammar assembles and validates a grammar from raw productions.
// Classification must be unambiguous: a symbol is either a terminal or a
// non-terminal, every non-terminal referenced from a right-hand side needs
// at least one production, and the start symbol must be a non-terminal.
func newGrammar(name string, start string, prods []*Production,
	terminals, nonterminals map[string]struct{}) (*Grammar, error) {
	//
	if len(prods) == 0 {
		return nil, fmt.Errorf("grammar %q has no productions", name)
	}
	for sym := range terminals {
		if _, dup := nonterminals[sym]; dup {
			return nil, fmt.Errorf("symbol %q is used both as terminal and non-terminal", sym)
		}
	}
	lhs := map[string]struct{}{}
	for _, p := range prods {
		lhs[p.LHS] = struct{}{}
	}
	for nt := range nonterminals {
		if _, ok := lhs[nt]; !ok {
			return nil, fmt.Errorf("non-terminal %q is referenced but has no productions", nt)
		}
	}
	if _, ok := nonterminals[start]; !ok {
		return nil, fmt.Errorf("start symbol %q is not a non-terminal", start)
	}
	for i, p := range prods {
		p.Serial = i
	}
	g := &Grammar{
		Name:         name,
		prods:        prods,
		terminals:    terminals,
		nonterminals: nonterminals,
		start:        start,
	}
	return g, nil
}

func sortedSymbols(set map[string]struct{}) []string {
	syms := make([]string, 0, len(set))
	for sym := range set {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}
