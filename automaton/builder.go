package automaton

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/SmileLaughter/Grammer-Analysis/grammar"
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Closure computes the closure of an item set: whenever an item has a
// non-terminal A after the dot, items [A → ·γ] for all productions of A are
// added, transitively. With a non-nil analysis, closure operates on LR(1)
// items and attaches FIRST(βa) lookaheads to the added items; with a nil
// analysis it operates on plain LR(0) items.
func Closure(g *grammar.Grammar, ga *grammar.Analysis, items []Item) []Item {
	work := make([]Item, len(items))
	copy(work, items)
	seen := make(map[itemKey]struct{}, len(work))
	for _, it := range work {
		seen[itemKey{it.Prod.Serial, it.Dot, it.La}] = struct{}{}
	}
	for n := 0; n < len(work); n++ { // work grows while we iterate
		it := work[n]
		A := it.PeekSymbol()
		if A == "" || !g.IsNonTerminal(A) {
			continue
		}
		las := []string{""}
		if ga != nil {
			las = ga.FirstOfString(append(it.Suffix(), it.La))
		}
		for _, p := range g.ProductionsFor(A) {
			for _, la := range las {
				key := itemKey{p.Serial, 0, la}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				work = append(work, Item{Prod: p, Dot: 0, La: la})
			}
		}
	}
	return work
}

// Goto computes the goto set for an item set under a grammar symbol: all
// items with the symbol after the dot are advanced, then closed. An empty
// result means there is no transition for the symbol.
func Goto(g *grammar.Grammar, ga *grammar.Analysis, items []Item, sym string) []Item {
	moved := make([]Item, 0, 2)
	for _, it := range items {
		if it.PeekSymbol() == sym {
			ii := it.Advance()
			tracer().Debugf("goto(%s) -%s-> %s", it, sym, ii)
			moved = append(moved, ii)
		}
	}
	if len(moved) == 0 {
		return nil
	}
	return Closure(g, ga, moved)
}

// === Automaton Construction ================================================

// Automaton is the LR state machine for a grammar: the characteristic finite
// state machine over LR(0) items, or the canonical collection over LR(1)
// items. It is constructed by BuildLR0, BuildLR1 or BuildLALR and immutable
// afterwards.
type Automaton struct {
	g      *grammar.Grammar // the (augmented) grammar this automaton is for
	ga     *grammar.Analysis
	states *treeset.Set    // all the states, sorted by ID
	edges  *arraylist.List // all the edges between states
	byID   map[int]*State
	bySig  map[string][]*State // item-set hash → candidate states
	trans  map[transKey]int
	start  *State
	nextID int
}

// transKey addresses a transition by source state and grammar symbol.
type transKey struct {
	From   int
	Symbol string
}

// edge between 2 states, directed and labeled with a grammar symbol
type edgeRec struct {
	from  int
	to    int
	label string
}

func emptyAutomaton(g *grammar.Grammar, ga *grammar.Analysis) *Automaton {
	a := &Automaton{g: g, ga: ga}
	a.states = treeset.NewWith(stateComparator)
	a.edges = arraylist.New()
	a.byID = make(map[int]*State)
	a.bySig = make(map[string][]*State)
	a.trans = make(map[transKey]int)
	return a
}

// BuildLR0 constructs the LR(0) automaton for an augmented grammar.
func BuildLR0(g *grammar.Grammar, cfg Config) *Automaton {
	tracer().Debugf("=== build LR(0) automaton =======================================")
	return build(g, nil, cfg)
}

// BuildLR1 constructs the canonical LR(1) collection for an augmented
// grammar. The analysis must have been computed for the unaugmented grammar.
func BuildLR1(g *grammar.Grammar, ga *grammar.Analysis, cfg Config) *Automaton {
	tracer().Debugf("=== build LR(1) automaton =======================================")
	return build(g, ga, cfg)
}

func build(g *grammar.Grammar, ga *grammar.Analysis, cfg Config) *Automaton {
	a := emptyAutomaton(g, ga)
	la := ""
	if ga != nil {
		la = grammar.EndMarker
	}
	start, _ := a.findOrAddState(Closure(g, ga, []Item{StartItem(g, la)}))
	a.start = start
	start.Dump()
	queue := []*State{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, sym := range a.symbolOrder(cfg) {
			gotoset := Goto(g, ga, s.items, sym)
			if len(gotoset) == 0 {
				continue
			}
			target, isNew := a.findOrAddState(gotoset)
			if isNew {
				queue = append(queue, target)
				target.Dump()
			}
			a.addEdge(s, target, sym)
		}
	}
	tracer().Debugf("automaton has %d states", a.Size())
	return a
}

// symbolOrder returns the grammar symbols in expansion order. Deterministic
// builds walk terminals, then non-terminals, both sorted. Otherwise the
// symbols come back in map iteration order, so state numbering may differ
// between builds of the same grammar.
func (a *Automaton) symbolOrder(cfg Config) []string {
	if cfg.Deterministic {
		syms := append([]string{}, a.g.Terminals()...)
		return append(syms, a.g.NonTerminals()...)
	}
	set := make(map[string]struct{})
	a.g.EachSymbol(func(sym string, isTerminal bool) {
		set[sym] = struct{}{}
	})
	syms := make([]string, 0, len(set))
	for sym := range set {
		syms = append(syms, sym)
	}
	return syms
}

// findOrAddState looks the item set up among the existing states and adds a
// new state with the next serial ID if none matches. State IDs start at 1.
func (a *Automaton) findOrAddState(items []Item) (*State, bool) {
	cand := newState(0, items)
	sig := cand.signature()
	for _, s := range a.bySig[sig] {
		if s.Equals(cand) {
			return s, false
		}
	}
	a.nextID++
	cand.ID = a.nextID
	a.bySig[sig] = append(a.bySig[sig], cand)
	a.states.Add(cand)
	a.byID[cand.ID] = cand
	return cand, true
}

func (a *Automaton) addEdge(from, to *State, sym string) {
	a.edges.Add(edgeRec{from: from.ID, to: to.ID, label: sym})
	a.trans[transKey{From: from.ID, Symbol: sym}] = to.ID
}

// Grammar returns the augmented grammar the automaton was built for.
func (a *Automaton) Grammar() *grammar.Grammar {
	return a.g
}

// HasLookaheads is true for automata over LR(1) items.
func (a *Automaton) HasLookaheads() bool {
	return a.ga != nil
}

// Start returns the start state (always ID 1).
func (a *Automaton) Start() *State {
	return a.start
}

// Size returns the number of states.
func (a *Automaton) Size() int {
	return a.states.Size()
}

// States returns all states, sorted by ID.
func (a *Automaton) States() []*State {
	r := make([]*State, 0, a.states.Size())
	for _, x := range a.states.Values() {
		r = append(r, x.(*State))
	}
	return r
}

// StateByID returns the state with the given ID, or nil.
func (a *Automaton) StateByID(id int) *State {
	return a.byID[id]
}

// Transition returns the target state ID for a (state, symbol) transition.
// The second return value is false if there is no such transition.
func (a *Automaton) Transition(from int, sym string) (int, bool) {
	to, ok := a.trans[transKey{From: from, Symbol: sym}]
	return to, ok
}

// EachEdge calls f for every edge of the automaton, in insertion order.
func (a *Automaton) EachEdge(f func(from, to int, label string)) {
	it := a.edges.Iterator()
	for it.Next() {
		e := it.Value().(edgeRec)
		f(e.from, e.to, e.label)
	}
}

// Dump is a debugging helper, logging all states and edges.
func (a *Automaton) Dump() {
	for _, s := range a.States() {
		s.Dump()
	}
	a.EachEdge(func(from, to int, label string) {
		tracer().Debugf("edge %03d --%s--> %03d", from, label, to)
	})
}
