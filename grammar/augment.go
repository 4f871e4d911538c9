package grammar

import (
	"fmt"
	"strings"
)

// Augment returns the augmented form of a grammar, the form automaton
// construction consumes. If the grammar is already augmented — its start
// symbol has exactly one production whose right-hand side is [S] or [S, $]
// with S a non-terminal — the productions are reused as-is. Otherwise a
// fresh start symbol S' is synthesized, the production S' → S is added at
// serial 0, and all productions are renumbered by position. The end marker
// is ensured in the terminal set either way.
//
// The input grammar is never mutated; Augment always returns a new Grammar
// over fresh Production values.
func Augment(g *Grammar) (*Grammar, error) {
	terminals := copySet(g.terminals)
	terminals[EndMarker] = struct{}{}
	nonterminals := copySet(g.nonterminals)

	if isAugmented(g) {
		prods := cloneProductions(g.prods)
		return newGrammar(g.Name, g.start, prods, terminals, nonterminals)
	}

	newStart, err := freshStartSymbol(g)
	if err != nil {
		return nil, err
	}
	nonterminals[newStart] = struct{}{}
	prods := make([]*Production, 0, len(g.prods)+1)
	prods = append(prods, &Production{LHS: newStart, rhs: []string{g.start}})
	prods = append(prods, cloneProductions(g.prods)...)
	return newGrammar(g.Name, newStart, prods, terminals, nonterminals)
}

// A grammar counts as augmented if its start symbol has exactly one
// production of the form S' → S or S' → S $, with S a non-terminal.
func isAugmented(g *Grammar) bool {
	startProds := g.ProductionsFor(g.start)
	if len(startProds) != 1 {
		return false
	}
	rhs := startProds[0].RHS()
	if len(rhs) < 1 || !g.IsNonTerminal(rhs[0]) {
		return false
	}
	return len(rhs) == 1 || (len(rhs) == 2 && rhs[1] == EndMarker)
}

// freshStartSymbol derives a new start symbol name from the original one:
// unprimed names get a prime appended (repeatedly on collision), primed
// names are stripped and given an _0, _1, … suffix instead.
func freshStartSymbol(g *Grammar) (string, error) {
	const maxAttempts = 100
	if !strings.Contains(g.start, "'") {
		cand := g.start + "'"
		for i := 0; i < maxAttempts; i++ {
			if !g.IsNonTerminal(cand) && !g.IsTerminal(cand) {
				return cand, nil
			}
			cand += "'"
		}
	} else {
		base := strings.TrimRight(g.start, "'")
		for i := 0; i < maxAttempts; i++ {
			cand := fmt.Sprintf("%s_%d", base, i)
			if !g.IsNonTerminal(cand) && !g.IsTerminal(cand) {
				return cand, nil
			}
		}
	}
	return "", fmt.Errorf("cannot derive an augmented start symbol from %q without collision", g.start)
}

func cloneProductions(prods []*Production) []*Production {
	clones := make([]*Production, len(prods))
	for i, p := range prods {
		clones[i] = &Production{LHS: p.LHS, rhs: p.rhs}
	}
	return clones
}

func copySet(set map[string]struct{}) map[string]struct{} {
	c := make(map[string]struct{}, len(set))
	for sym := range set {
		c[sym] = struct{}{}
	}
	return c
}
