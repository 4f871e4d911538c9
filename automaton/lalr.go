package automaton

import (
	"fmt"
	"sort"

	"github.com/SmileLaughter/Grammer-Analysis/grammar"
)

// BuildLALR constructs the LALR(1) automaton for an augmented grammar by
// building the canonical LR(1) collection and merging all states that share
// an item core. Lookaheads of merged states are unioned; the LR(1) and
// LALR(1) automata have identical cores and isomorphic transitions.
func BuildLALR(g *grammar.Grammar, ga *grammar.Analysis, cfg Config) (*Automaton, error) {
	tracer().Debugf("=== build LALR(1) automaton =====================================")
	lr1 := BuildLR1(g, ga, cfg)
	return MergeCores(lr1)
}

// MergeCores merges the states of an LR(1) automaton which have equal item
// cores into single states, unioning their lookaheads. Merged states are
// renumbered by the smallest original state ID, which keeps the start state
// at ID 1. Transitions of merged states always agree core-wise; a
// disagreement indicates a broken input automaton and is reported as error.
func MergeCores(lr1 *Automaton) (*Automaton, error) {
	groups := groupByCore(lr1)
	merged := emptyAutomaton(lr1.g, lr1.ga)
	oldToNew := make(map[int]int, lr1.Size())
	for n, grp := range groups {
		items := make([]Item, 0, grp[0].Size()*len(grp))
		for _, s := range grp {
			items = append(items, s.items...)
			oldToNew[s.ID] = n + 1
		}
		state := newState(n+1, items)
		merged.states.Add(state)
		merged.byID[state.ID] = state
		merged.bySig[state.signature()] = append(merged.bySig[state.signature()], state)
		if len(grp) > 1 {
			tracer().Debugf("merged %d states into %v", len(grp), state)
		}
	}
	merged.nextID = len(groups)
	merged.start = merged.byID[oldToNew[lr1.start.ID]]
	var err error
	lr1.EachEdge(func(from, to int, label string) {
		if err != nil {
			return
		}
		key := transKey{From: oldToNew[from], Symbol: label}
		target := oldToNew[to]
		if prev, ok := merged.trans[key]; ok {
			if prev != target {
				err = fmt.Errorf("core merge: transition (%d,%s) maps to states %d and %d",
					key.From, label, prev, target)
			}
			return
		}
		merged.trans[key] = target
		merged.edges.Add(edgeRec{from: key.From, to: target, label: label})
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("LALR automaton has %d states (from %d)", merged.Size(), lr1.Size())
	return merged, nil
}

// groupByCore partitions the states of an automaton into groups with equal
// item cores, ordered by the smallest state ID of each group.
func groupByCore(a *Automaton) [][]*State {
	type bucket struct {
		cores  []Core
		states []*State
	}
	buckets := make(map[string][]*bucket)
	for _, s := range a.States() { // sorted by ID
		sig := s.coreSignature()
		cores := s.Cores()
		var home *bucket
		for _, b := range buckets[sig] {
			if sameCores(b.cores, cores) {
				home = b
				break
			}
		}
		if home == nil {
			home = &bucket{cores: cores}
			buckets[sig] = append(buckets[sig], home)
		}
		home.states = append(home.states, s)
	}
	groups := make([][]*State, 0, len(buckets))
	for _, bs := range buckets {
		for _, b := range bs {
			groups = append(groups, b.states)
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0].ID < groups[j][0].ID
	})
	return groups
}

func sameCores(a, b []Core) bool {
	if len(a) != len(b) {
		return false
	}
	for n := range a {
		if a[n] != b[n] {
			return false
		}
	}
	return true
}
