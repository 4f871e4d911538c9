package grammar

import "sort"

type symset map[string]struct{}

func (s symset) add(sym string) bool {
	if _, ok := s[sym]; ok {
		return false
	}
	s[sym] = struct{}{}
	return true
}

func (s symset) union(other symset) bool {
	changed := false
	for sym := range other {
		if s.add(sym) {
			changed = true
		}
	}
	return changed
}

func (s symset) sorted() []string {
	syms := make([]string, 0, len(s))
	for sym := range s {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

// AnalysisOption configures an Analysis.
type AnalysisOption func(*Analysis)

// WithoutEndMarker keeps the end marker out of the FOLLOW sets. The LR
// table builders need FOLLOW(start) seeded with '$'; clients reusing the
// analysis for top-down purposes do not.
func WithoutEndMarker() AnalysisOption {
	return func(a *Analysis) {
		a.includeEnd = false
	}
}

// Analysis holds the result of statically analysing a grammar: the NULLABLE
// set and the FIRST and FOLLOW sets of every symbol, each computed as an
// iterative least fixpoint. An Analysis is built once by Analyze and
// read-only thereafter.
type Analysis struct {
	g          *Grammar
	includeEnd bool
	nullable   symset
	first      map[string]symset
	follow     map[string]symset
	prodFirst  []symset // indexed by production serial
}

// Analyze computes NULLABLE, FIRST and FOLLOW for a grammar. Every fixpoint
// terminates because the sets are bounded by the grammar's finite alphabet.
func Analyze(g *Grammar, opts ...AnalysisOption) *Analysis {
	a := &Analysis{
		g:          g,
		includeEnd: true,
		nullable:   symset{},
		first:      map[string]symset{},
		follow:     map[string]symset{},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.computeNullable()
	a.computeFirst()
	a.computeFollow()
	a.prodFirst = make([]symset, len(g.prods))
	for _, p := range g.prods {
		a.prodFirst[p.Serial] = a.firstOfString(p.rhs)
	}
	return a
}

// Grammar returns the grammar this analysis belongs to.
func (a *Analysis) Grammar() *Grammar {
	return a.g
}

// Nullable reports whether a symbol can derive the empty string. Terminals
// are never nullable.
func (a *Analysis) Nullable(sym string) bool {
	_, ok := a.nullable[sym]
	return ok
}

// NullableSet returns all nullable non-terminals in lexicographic order.
func (a *Analysis) NullableSet() []string {
	return a.nullable.sorted()
}

// First returns FIRST(sym) in lexicographic order. For a terminal this is
// the terminal itself. The empty-string marker is never a member; track
// nullability through Nullable instead.
func (a *Analysis) First(sym string) []string {
	if a.g.IsTerminal(sym) {
		return []string{sym}
	}
	return a.first[sym].sorted()
}

// FirstOfString returns the FIRST set of a symbol string, in lexicographic
// order. Scanning stops at the first non-nullable symbol; an entirely
// nullable string contributes no marker for the empty derivation.
func (a *Analysis) FirstOfString(syms []string) []string {
	return a.firstOfString(syms).sorted()
}

// Follow returns FOLLOW(nt) in lexicographic order.
func (a *Analysis) Follow(nt string) []string {
	return a.follow[nt].sorted()
}

// ProductionFirst returns FIRST of a production's right-hand side.
func (a *Analysis) ProductionFirst(p *Production) []string {
	if p.Serial < 0 || p.Serial >= len(a.prodFirst) {
		return a.firstOfString(p.rhs).sorted()
	}
	return a.prodFirst[p.Serial].sorted()
}

// Select returns the SELECT set of a production: FIRST(rhs), unioned with
// FOLLOW(lhs) when the right-hand side can derive the empty string.
func (a *Analysis) Select(p *Production) []string {
	sel := symset{}
	sel.union(a.firstOfString(p.rhs))
	if a.stringNullable(p.rhs) {
		sel.union(a.follow[p.LHS])
	}
	return sel.sorted()
}

// --- Fixpoint computations --------------------------------------------

// A non-terminal is nullable iff it has an epsilon production or a
// production whose entire right-hand side is already nullable; a right-hand
// side containing a terminal never qualifies.
func (a *Analysis) computeNullable() {
	for _, p := range a.g.prods {
		if p.IsEpsilon() {
			a.nullable.add(p.LHS)
		}
	}
	for changed := true; changed; {
		changed = false
		for _, p := range a.g.prods {
			if a.Nullable(p.LHS) || p.IsEpsilon() {
				continue
			}
			if a.stringNullable(p.rhs) {
				a.nullable.add(p.LHS)
				changed = true
			}
		}
	}
}

func (a *Analysis) stringNullable(syms []string) bool {
	for _, sym := range syms {
		if a.g.IsTerminal(sym) {
			return false
		}
		if !a.Nullable(sym) {
			return false
		}
	}
	return true
}

// FIRST(lhs) ⊇ FIRST(rhs) for every production, iterated until no set grows.
func (a *Analysis) computeFirst() {
	for nt := range a.g.nonterminals {
		a.first[nt] = symset{}
	}
	for changed := true; changed; {
		changed = false
		for _, p := range a.g.prods {
			if a.first[p.LHS].union(a.firstOfString(p.rhs)) {
				changed = true
			}
		}
	}
}

func (a *Analysis) firstOfString(syms []string) symset {
	result := symset{}
	for _, sym := range syms {
		if a.g.IsTerminal(sym) {
			result.add(sym)
			break
		}
		result.union(a.first[sym])
		if !a.Nullable(sym) {
			break
		}
	}
	return result
}

// FOLLOW is seeded with the end marker at the start symbol. For every
// occurrence of a non-terminal B in a right-hand side, FOLLOW(B) absorbs
// FIRST of the remainder, and FOLLOW(lhs) as well when the remainder can
// derive the empty string.
func (a *Analysis) computeFollow() {
	for nt := range a.g.nonterminals {
		a.follow[nt] = symset{}
	}
	if a.includeEnd {
		a.follow[a.g.start].add(EndMarker)
	}
	for changed := true; changed; {
		changed = false
		for _, p := range a.g.prods {
			for i, sym := range p.rhs {
				if !a.g.IsNonTerminal(sym) {
					continue
				}
				rest := p.rhs[i+1:]
				if a.follow[sym].union(a.firstOfString(rest)) {
					changed = true
				}
				if a.stringNullable(rest) {
					if a.follow[sym].union(a.follow[p.LHS]) {
						changed = true
					}
				}
			}
		}
	}
}
