package parser

import (
	"github.com/SmileLaughter/Grammer-Analysis/automaton"
	"github.com/SmileLaughter/Grammer-Analysis/grammar"
	"github.com/SmileLaughter/Grammer-Analysis/sparse"
)

// ReducePolicy decides for which terminals a reducible item emits a reduce
// action. This is the only place where the four LR table variants differ;
// table construction itself is generic.
type ReducePolicy interface {
	Name() string
	ReduceTerminals(s *automaton.State, item automaton.Item) []string
}

// LR0Policy reduces on every terminal, end marker included.
func LR0Policy(g *grammar.Grammar) ReducePolicy {
	return lr0Policy{g: g}
}

type lr0Policy struct {
	g *grammar.Grammar
}

func (p lr0Policy) Name() string { return "LR(0)" }

func (p lr0Policy) ReduceTerminals(s *automaton.State, item automaton.Item) []string {
	return p.g.Terminals()
}

// SLRPolicy reduces on the FOLLOW set of the item's left-hand side. The
// analysis must have been computed with the end marker included.
func SLRPolicy(ga *grammar.Analysis) ReducePolicy {
	return slrPolicy{ga: ga}
}

type slrPolicy struct {
	ga *grammar.Analysis
}

func (p slrPolicy) Name() string { return "SLR(1)" }

func (p slrPolicy) ReduceTerminals(s *automaton.State, item automaton.Item) []string {
	return p.ga.Follow(item.Prod.LHS)
}

// LR1Policy reduces on the single lookahead the item carries.
func LR1Policy() ReducePolicy {
	return lr1Policy{}
}

type lr1Policy struct{}

func (p lr1Policy) Name() string { return "LR(1)" }

func (p lr1Policy) ReduceTerminals(s *automaton.State, item automaton.Item) []string {
	return []string{item.La}
}

// LALRPolicy reduces on the merged lookahead set of the item's core within
// its state.
func LALRPolicy() ReducePolicy {
	return lalrPolicy{}
}

type lalrPolicy struct{}

func (p lalrPolicy) Name() string { return "LALR(1)" }

func (p lalrPolicy) ReduceTerminals(s *automaton.State, item automaton.Item) []string {
	return s.LookaheadSet(item.Core())
}

// Table holds the ACTION and GOTO tables for an automaton. ACTION cells keep
// every recorded action, so conflicting grammars still yield a usable table;
// the conflicts are listed separately. GOTO is a sparse matrix over
// (state, non-terminal index).
type Table struct {
	g         *grammar.Grammar // the augmented grammar
	actions   map[cell][]Action
	gotos     *sparse.IntMatrix
	ntIndex   map[string]int
	ntNames   []string
	states    int
	conflicts []Conflict
}

type cell struct {
	State    int
	Terminal string
}

// BuildTable fills ACTION and GOTO tables for an automaton, using the given
// policy for reduce actions. Shift and goto entries come straight from the
// automaton's transitions. Reduce actions are never emitted for the
// augmenting production 0; instead, accepting states get their end marker
// cell overwritten with the accept action.
func BuildTable(dfa *automaton.Automaton, policy ReducePolicy) *Table {
	tracer().Debugf("=== build %s tables =============================================", policy.Name())
	g := dfa.Grammar()
	nts := g.NonTerminals()
	t := &Table{
		g:       g,
		actions: make(map[cell][]Action),
		gotos:   sparse.NewIntMatrix(dfa.Size()+1, len(nts), sparse.DefaultNullValue),
		ntIndex: make(map[string]int, len(nts)),
		ntNames: nts,
		states:  dfa.Size(),
	}
	for n, nt := range nts {
		t.ntIndex[nt] = n
	}
	terminals := g.Terminals()
	for _, s := range dfa.States() {
		for _, term := range terminals {
			if target, ok := dfa.Transition(s.ID, term); ok {
				t.addAction(s.ID, term, Action{Type: Shift, Target: target})
			}
		}
		for _, nt := range nts {
			if target, ok := dfa.Transition(s.ID, nt); ok {
				t.gotos.Set(s.ID, t.ntIndex[nt], int32(target))
			}
		}
		for _, item := range s.Items() {
			if !item.Reducible() || item.Prod.Serial == 0 {
				continue
			}
			for _, term := range policy.ReduceTerminals(s, item) {
				t.addAction(s.ID, term, Action{Type: Reduce, Target: item.Prod.Serial})
			}
		}
		if s.Accepting() {
			t.actions[cell{s.ID, grammar.EndMarker}] = []Action{{Type: Accept}}
			t.pruneConflicts(s.ID, grammar.EndMarker)
		}
	}
	for _, c := range t.conflicts {
		tracer().Infof("%v", c)
	}
	return t
}

// addAction appends an action to a cell, deduplicating and recording a
// conflict against the first action already present.
func (t *Table) addAction(state int, terminal string, a Action) {
	key := cell{state, terminal}
	existing := t.actions[key]
	for _, e := range existing {
		if e == a {
			return
		}
	}
	if len(existing) > 0 {
		t.conflicts = append(t.conflicts, Conflict{
			State:    state,
			Symbol:   terminal,
			Kind:     conflictKind(existing[0], a),
			Existing: existing[0],
			Incoming: a,
		})
	}
	t.actions[key] = append(existing, a)
}

// pruneConflicts drops conflict records for a cell that has since been
// overwritten, so Conflicts() only ever names cells the table still exhibits.
func (t *Table) pruneConflicts(state int, terminal string) {
	kept := t.conflicts[:0]
	for _, c := range t.conflicts {
		if c.State == state && c.Symbol == terminal {
			continue
		}
		kept = append(kept, c)
	}
	t.conflicts = kept
}

func conflictKind(a, b Action) ConflictKind {
	if a.Type == Reduce && b.Type == Reduce {
		return ReduceReduce
	}
	if (a.Type == Shift && b.Type == Reduce) || (a.Type == Reduce && b.Type == Shift) {
		return ShiftReduce
	}
	return OtherConflict
}

// Actions returns all actions recorded for (state, terminal). An empty
// result is the error entry.
func (t *Table) Actions(state int, terminal string) []Action {
	return t.actions[cell{state, terminal}]
}

// Goto returns the GOTO target for (state, non-terminal). The second return
// value is false for an empty cell.
func (t *Table) Goto(state int, nt string) (int, bool) {
	idx, ok := t.ntIndex[nt]
	if !ok {
		return 0, false
	}
	v := t.gotos.Value(state, idx)
	if v == t.gotos.NullValue() {
		return 0, false
	}
	return int(v), true
}

// Conflicts returns all recorded table conflicts.
func (t *Table) Conflicts() []Conflict {
	return t.conflicts
}

// HasConflicts is true if any ACTION cell received more than one action.
func (t *Table) HasConflicts() bool {
	return len(t.conflicts) > 0
}

// Grammar returns the augmented grammar the table was built for.
func (t *Table) Grammar() *grammar.Grammar {
	return t.g
}

// NonTerminals returns the GOTO column symbols in table order.
func (t *Table) NonTerminals() []string {
	return t.ntNames
}

// States returns the number of automaton states the table covers.
func (t *Table) States() int {
	return t.states
}

// EachAction calls f for every non-empty ACTION cell, states ascending and
// terminals in lexicographic order.
func (t *Table) EachAction(f func(state int, terminal string, actions []Action)) {
	for state := 1; state <= t.states; state++ {
		for _, term := range t.g.Terminals() {
			if acts := t.actions[cell{state, term}]; len(acts) > 0 {
				f(state, term, acts)
			}
		}
	}
}

// EachGoto calls f for every non-empty GOTO cell, in (state, column) order.
func (t *Table) EachGoto(f func(state int, nt string, target int)) {
	t.gotos.Each(func(i, j int, value int32) {
		f(i, t.ntNames[j], int(value))
	})
}
