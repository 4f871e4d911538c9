package grammar

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.grammar")
	defer teardown()
	//
	g := exprGrammar(t)
	if g.Size() != 6 {
		t.Errorf("expected 6 productions, got %d", g.Size())
	}
	if g.Start() != "E" {
		t.Errorf("expected start symbol E, got %s", g.Start())
	}
	if !g.IsNonTerminal("T") || !g.IsTerminal("id") {
		t.Errorf("symbol classification broken")
	}
	for n, p := range g.Productions() {
		if p.Serial != n {
			t.Errorf("production %v has serial %d, expected %d", p, p.Serial, n)
		}
	}
	if len(g.ProductionsFor("F")) != 2 {
		t.Errorf("expected 2 productions for F")
	}
}

func TestGrammarBuilderEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("b").End()
	p := b.LHS("A").Epsilon()
	if !p.IsEpsilon() || p.Len() != 0 {
		t.Errorf("expected epsilon production, got %v", p)
	}
	if p.String() != "A → ε" {
		t.Errorf("unexpected epsilon stringer output: %s", p.String())
	}
	if _, err := b.Grammar(); err != nil {
		t.Error(err)
	}
}

func TestGrammarBuilderRejectsEpsilonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T(Epsilon).End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for ε used as terminal")
	}
}

func TestGrammarValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").End() // A has no productions
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for non-terminal without productions")
	}
}

func TestGrammarReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.grammar")
	defer teardown()
	//
	text := `
# expression grammar
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`
	g, err := ReadString("expr", text)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 6 {
		t.Errorf("expected 6 productions, got %d", g.Size())
	}
	if g.Start() != "E" {
		t.Errorf("expected start symbol E, got %s", g.Start())
	}
	if !g.IsTerminal("id") || !g.IsTerminal("(") {
		t.Errorf("terminal classification broken")
	}
}

func TestGrammarReaderByteOrderMark(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.grammar")
	defer teardown()
	//
	g, err := ReadString("bom", "\uFEFFS -> a\n")
	if err != nil {
		t.Fatal(err)
	}
	if g.Start() != "S" {
		t.Errorf("expected start symbol S, got %q", g.Start())
	}
}

func TestGrammarReaderEpsilonAlternative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.grammar")
	defer teardown()
	//
	g, err := ReadString("G", "S : A b\nA : a |\n")
	if err != nil {
		t.Fatal(err)
	}
	eps := 0
	for _, p := range g.ProductionsFor("A") {
		if p.IsEpsilon() {
			eps++
		}
	}
	if eps != 1 {
		t.Errorf("expected one epsilon production for A, got %d", eps)
	}
}

func TestNonTerminalNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.grammar")
	defer teardown()
	//
	cases := []struct {
		sym string
		nt  bool
	}{
		{"E", true}, {"EXPR", true}, {"E'", true}, {"E''", true}, {"S_0", true},
		{"id", false}, {"+", false}, {"e", false}, {"E2F", false}, {"", false},
	}
	for _, c := range cases {
		if IsNonTerminalName(c.sym) != c.nt {
			t.Errorf("IsNonTerminalName(%q) = %v, expected %v", c.sym, !c.nt, c.nt)
		}
	}
}

func TestAugmentFreshStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.grammar")
	defer teardown()
	//
	g := exprGrammar(t)
	aug, err := Augment(g)
	if err != nil {
		t.Fatal(err)
	}
	if aug.Start() != "E'" {
		t.Errorf("expected augmented start E', got %s", aug.Start())
	}
	p0 := aug.Rule(0)
	if p0.LHS != "E'" || p0.Len() != 1 || p0.RHS()[0] != "E" {
		t.Errorf("unexpected augmenting production %v", p0)
	}
	if aug.Size() != g.Size()+1 {
		t.Errorf("expected %d productions after augmenting, got %d", g.Size()+1, aug.Size())
	}
	if !aug.IsTerminal(EndMarker) {
		t.Errorf("end marker missing from augmented terminal set")
	}
	// input grammar stays untouched
	if g.Size() != 6 || g.Start() != "E" || g.IsNonTerminal("E'") {
		t.Errorf("augmenting mutated the input grammar")
	}
}

func TestAugmentAlreadyAugmented(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S'").N("S").End()
	b.LHS("S").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	aug, err := Augment(g)
	if err != nil {
		t.Fatal(err)
	}
	if aug.Start() != "S'" || aug.Size() != g.Size() {
		t.Errorf("already-augmented grammar was augmented again")
	}
}

func TestAugmentPrimedStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S'").T("a").End()
	b.LHS("S'").T("b").End() // two productions, not augmented form
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	aug, err := Augment(g)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(aug.Start(), "S_") {
		t.Errorf("expected primed start to gain numeric suffix, got %s", aug.Start())
	}
}

// ----------------------------------------------------------------------

func exprGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("expr")
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
