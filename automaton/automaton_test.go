package automaton

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/SmileLaughter/Grammer-Analysis/grammar"
)

func TestClosureIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.automaton")
	defer teardown()
	//
	aug := augmented(t, exprGrammar(t))
	once := Closure(aug, nil, []Item{StartItem(aug, "")})
	twice := Closure(aug, nil, once)
	if len(once) != len(twice) {
		t.Errorf("closure is not idempotent: %d items vs %d items", len(once), len(twice))
	}
}

func TestStartClosureLR0(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.automaton")
	defer teardown()
	//
	aug := augmented(t, exprGrammar(t))
	closure := Closure(aug, nil, []Item{StartItem(aug, "")})
	// every production appears with the dot at 0
	if len(closure) != aug.Size() {
		t.Errorf("start closure has %d items, expected %d", len(closure), aug.Size())
	}
	for _, item := range closure {
		if item.Dot != 0 {
			t.Errorf("start closure item %v has dot != 0", item)
		}
	}
}

func TestStartClosureLR1Lookaheads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.automaton")
	defer teardown()
	//
	g := abGrammar(t)
	ga := grammar.Analyze(g)
	aug := augmented(t, g)
	closure := Closure(aug, ga, []Item{StartItem(aug, grammar.EndMarker)})
	// A → ε receives lookahead FIRST(B $) = {b}
	found := false
	for _, item := range closure {
		if item.Prod.LHS == "A" && item.Prod.IsEpsilon() && item.La == "b" {
			found = true
		}
		if item.La == "" {
			t.Errorf("LR(1) closure item %v lacks a lookahead", item)
		}
	}
	if !found {
		t.Errorf("expected item [A → ·, b] in start closure")
	}
}

func TestGotoSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.automaton")
	defer teardown()
	//
	aug := augmented(t, exprGrammar(t))
	closure := Closure(aug, nil, []Item{StartItem(aug, "")})
	gotoset := Goto(aug, nil, closure, "id")
	if len(gotoset) != 1 {
		t.Fatalf("goto on id should hold exactly one item, got %d", len(gotoset))
	}
	if gotoset[0].Prod.LHS != "F" || !gotoset[0].Reducible() {
		t.Errorf("expected [F → id ·], got %v", gotoset[0])
	}
	if empty := Goto(aug, nil, closure, "+"); len(empty) != 0 {
		t.Errorf("goto on + from the start state should be empty, got %v", empty)
	}
}

func TestLR0AutomatonExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.automaton")
	defer teardown()
	//
	aug := augmented(t, exprGrammar(t))
	dfa := BuildLR0(aug, DefaultConfig())
	if dfa.Size() != 12 {
		t.Errorf("expression grammar yields 12 LR(0) states, got %d", dfa.Size())
	}
	if dfa.Start().ID != 1 {
		t.Errorf("start state must have ID 1, got %d", dfa.Start().ID)
	}
	accepting := 0
	for _, s := range dfa.States() {
		if s.Accepting() {
			accepting++
		}
	}
	if accepting != 1 {
		t.Errorf("expected exactly one accepting state, got %d", accepting)
	}
	// state 1 shifts id somewhere
	if _, ok := dfa.Transition(1, "id"); !ok {
		t.Errorf("missing transition on id from the start state")
	}
	if _, ok := dfa.Transition(1, "+"); ok {
		t.Errorf("unexpected transition on + from the start state")
	}
}

func TestLALRSmallerThanLR1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.automaton")
	defer teardown()
	//
	// S → C C,  C → c C | d
	b := grammar.NewGrammarBuilder("cc")
	b.LHS("S").N("C").N("C").End()
	b.LHS("C").T("c").N("C").End()
	b.LHS("C").T("d").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga := grammar.Analyze(g)
	aug := augmented(t, g)
	lr1 := BuildLR1(aug, ga, DefaultConfig())
	if lr1.Size() != 10 {
		t.Errorf("expected 10 LR(1) states, got %d", lr1.Size())
	}
	lalr, err := BuildLALR(aug, ga, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if lalr.Size() != 7 {
		t.Errorf("expected 7 LALR(1) states, got %d", lalr.Size())
	}
	if lalr.Start().ID != 1 {
		t.Errorf("merged start state must keep ID 1, got %d", lalr.Start().ID)
	}
}

func TestLALRLookaheadSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.automaton")
	defer teardown()
	//
	b := grammar.NewGrammarBuilder("cc")
	b.LHS("S").N("C").N("C").End()
	b.LHS("C").T("c").N("C").End()
	b.LHS("C").T("d").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga := grammar.Analyze(g)
	aug := augmented(t, g)
	lalr, err := BuildLALR(aug, ga, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	// the merged state with core [C → d ·] carries lookaheads {$, c, d}
	var serial int = -1
	for _, p := range aug.Productions() {
		if p.LHS == "C" && p.Len() == 1 && p.RHS()[0] == "d" {
			serial = p.Serial
		}
	}
	if serial < 0 {
		t.Fatal("production C → d not found")
	}
	core := Core{Serial: serial, Dot: 1}
	found := false
	for _, s := range lalr.States() {
		las := s.LookaheadSet(core)
		if len(las) == 3 {
			found = true
			if las[0] != grammar.EndMarker || las[1] != "c" || las[2] != "d" {
				t.Errorf("merged lookahead set = %v, expected [$ c d]", las)
			}
		}
	}
	if !found {
		t.Errorf("no state carries the merged lookahead set for [C → d ·]")
	}
}

func TestDeterministicRebuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.automaton")
	defer teardown()
	//
	g := exprGrammar(t)
	ga := grammar.Analyze(g)
	aug := augmented(t, g)
	first := BuildLR1(aug, ga, DefaultConfig())
	second := BuildLR1(aug, ga, DefaultConfig())
	if first.Size() != second.Size() {
		t.Fatalf("state counts differ: %d vs %d", first.Size(), second.Size())
	}
	for _, s := range first.States() {
		other := second.StateByID(s.ID)
		if other == nil || !s.Equals(other) {
			t.Errorf("state %d differs between builds", s.ID)
		}
	}
	aug.EachSymbol(func(sym string, isTerminal bool) {
		for _, s := range first.States() {
			t1, ok1 := first.Transition(s.ID, sym)
			t2, ok2 := second.Transition(s.ID, sym)
			if ok1 != ok2 || t1 != t2 {
				t.Errorf("transition (%d,%s) differs between builds", s.ID, sym)
			}
		}
	})
}

func TestNonDeterministicBuildIsomorphic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.automaton")
	defer teardown()
	//
	g := exprGrammar(t)
	aug := augmented(t, g)
	det := BuildLR0(aug, DefaultConfig())
	free := BuildLR0(aug, Config{Deterministic: false})
	if det.Size() != free.Size() {
		t.Fatalf("state counts differ: %d vs %d", det.Size(), free.Size())
	}
	// every state of the ordered build must exist in the unordered one,
	// possibly under a different number
	for _, s := range det.States() {
		found := false
		for _, o := range free.States() {
			if s.Equals(o) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("state %v missing from the unordered build", s)
		}
	}
}

func TestStateItemsSortedAndDeduped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.automaton")
	defer teardown()
	//
	aug := augmented(t, exprGrammar(t))
	item := StartItem(aug, "")
	s := newState(1, []Item{item, item, {Prod: aug.Rule(2), Dot: 0}})
	if s.Size() != 2 {
		t.Errorf("expected duplicate items to collapse, got %d items", s.Size())
	}
	items := s.Items()
	for n := 1; n < len(items); n++ {
		if !itemLess(items[n-1], items[n]) {
			t.Errorf("items out of order at %d: %v, %v", n, items[n-1], items[n])
		}
	}
}

// ----------------------------------------------------------------------

func exprGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewGrammarBuilder("expr")
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// S → A B,  A → a | ε,  B → b
func abGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewGrammarBuilder("ab")
	b.LHS("S").N("A").N("B").End()
	b.LHS("A").T("a").End()
	b.LHS("A").Epsilon()
	b.LHS("B").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func augmented(t *testing.T, g *grammar.Grammar) *grammar.Grammar {
	aug, err := grammar.Augment(g)
	if err != nil {
		t.Fatal(err)
	}
	return aug
}
