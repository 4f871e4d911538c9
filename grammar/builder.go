package grammar

import "fmt"

// GrammarBuilder is a builder type for grammars. Clients add productions
// with a fluent API and receive the validated grammar from Grammar():
//
//	b := NewGrammarBuilder("G")
//	b.LHS("S").N("A").T("a").End()
//	b.LHS("A").Epsilon()
//	g, err := b.Grammar()
type GrammarBuilder struct {
	name         string
	prods        []*Production
	terminals    map[string]struct{}
	nonterminals map[string]struct{}
	start        string
	err          error
}

// NewGrammarBuilder creates a builder for a grammar with the given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:         name,
		terminals:    map[string]struct{}{},
		nonterminals: map[string]struct{}{},
	}
}

// LHS starts a new production for the given non-terminal. The first LHS of
// a builder becomes the grammar's start symbol.
func (b *GrammarBuilder) LHS(nt string) *RuleBuilder {
	b.nonterminals[nt] = struct{}{}
	if b.start == "" {
		b.start = nt
	}
	return &RuleBuilder{gb: b, lhs: nt}
}

// SetStart overrides the start symbol (by default the first LHS added).
func (b *GrammarBuilder) SetStart(nt string) *GrammarBuilder {
	b.start = nt
	return b
}

// Grammar validates and returns the assembled grammar.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	return newGrammar(b.name, b.start, b.prods, b.terminals, b.nonterminals)
}

func (b *GrammarBuilder) appendProduction(lhs string, rhs []string) *Production {
	p := &Production{LHS: lhs, Serial: len(b.prods), rhs: rhs}
	b.prods = append(b.prods, p)
	return p
}

// RuleBuilder assembles the right-hand side of a single production.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs []string
}

// N appends a non-terminal symbol to the right-hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.gb.nonterminals[name] = struct{}{}
	rb.rhs = append(rb.rhs, name)
	return rb
}

// T appends a terminal symbol to the right-hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	if name == Epsilon {
		rb.gb.err = fmt.Errorf("%q is reserved and cannot be used as a terminal", Epsilon)
		return rb
	}
	rb.gb.terminals[name] = struct{}{}
	rb.rhs = append(rb.rhs, name)
	return rb
}

// End closes the production and adds it to the grammar under construction.
func (rb *RuleBuilder) End() *Production {
	return rb.gb.appendProduction(rb.lhs, rb.rhs)
}

// Epsilon closes the production as an epsilon production (empty RHS),
// discarding any symbols previously appended.
func (rb *RuleBuilder) Epsilon() *Production {
	return rb.gb.appendProduction(rb.lhs, nil)
}
