package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/SmileLaughter/Grammer-Analysis/automaton"
	"github.com/SmileLaughter/Grammer-Analysis/grammar"
	"github.com/SmileLaughter/Grammer-Analysis/parser"
)

func TestAutomatonAsJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.export")
	defer teardown()
	//
	g := abGrammar(t)
	ga := grammar.Analyze(g)
	aug, err := grammar.Augment(g)
	if err != nil {
		t.Fatal(err)
	}
	dfa, err := automaton.BuildLALR(aug, ga, automaton.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := AutomatonAsJSON(dfa, &buf); err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		States []struct {
			ID    int `json:"id"`
			Items []struct {
				LHS       string   `json:"lhs"`
				RHS       []string `json:"rhs"`
				Dot       int      `json:"dot"`
				Lookahead []string `json:"lookahead"`
			} `json:"items"`
			Transitions map[string]int `json:"transitions"`
		} `json:"states"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded.States) != dfa.Size() {
		t.Errorf("JSON has %d states, automaton has %d", len(decoded.States), dfa.Size())
	}
	if decoded.States[0].ID != 1 {
		t.Errorf("first JSON state has id %d, expected 1", decoded.States[0].ID)
	}
	withLookahead := false
	for _, s := range decoded.States {
		if len(s.Items) == 0 {
			t.Errorf("state %d exports no items", s.ID)
		}
		for _, item := range s.Items {
			if len(item.Lookahead) > 0 {
				withLookahead = true
			}
		}
	}
	if !withLookahead {
		t.Errorf("LALR export should carry lookahead arrays")
	}
	if _, ok := decoded.States[0].Transitions["S"]; !ok {
		t.Errorf("start state lacks its transition on S")
	}
}

func TestAutomatonAsGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.export")
	defer teardown()
	//
	aug, err := grammar.Augment(abGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	dfa := automaton.BuildLR0(aug, automaton.DefaultConfig())
	var buf bytes.Buffer
	AutomatonAsGraphViz(dfa, &buf)
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph {") {
		t.Errorf("Dot output does not start with digraph")
	}
	for _, want := range []string{"s001", "lightgray", "->", "}\n"} {
		if !strings.Contains(dot, want) {
			t.Errorf("Dot output lacks %q", want)
		}
	}
}

func TestTablesAsHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.export")
	defer teardown()
	//
	p, err := parser.New(parser.SLR, abGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	TablesAsHTML(p.Table(), &buf)
	html := buf.String()
	for _, want := range []string{"<table", "acc", "state 1", "</html>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML output lacks %q", want)
		}
	}
}

// ----------------------------------------------------------------------

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
