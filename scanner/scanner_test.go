package scanner

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	granal "github.com/SmileLaughter/Grammer-Analysis"
	"github.com/SmileLaughter/Grammer-Analysis/grammar"
)

func TestFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.scanner")
	defer teardown()
	//
	fields := Fields("  id +  id ")
	if !reflect.DeepEqual(fields, []string{"id", "+", "id"}) {
		t.Errorf("Fields = %v", fields)
	}
}

func TestGrammarScannerSentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.scanner")
	defer teardown()
	//
	gs, err := NewGrammarScanner(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	sentence, err := gs.Sentence("id+id*(id)")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"id", "+", "id", "*", "(", "id", ")"}
	if !reflect.DeepEqual(sentence, want) {
		t.Errorf("sentence = %v, expected %v", sentence, want)
	}
}

func TestGrammarScannerWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.scanner")
	defer teardown()
	//
	gs, err := NewGrammarScanner(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	sentence, err := gs.Sentence("  id \t+\n id ")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sentence, []string{"id", "+", "id"}) {
		t.Errorf("sentence = %v", sentence)
	}
}

func TestGrammarScannerEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.scanner")
	defer teardown()
	//
	gs, err := NewGrammarScanner(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	stream, err := gs.Scanner("")
	if err != nil {
		t.Fatal(err)
	}
	tok := stream.NextToken()
	if tok.TokType() != granal.EOF {
		t.Errorf("expected EOF on empty input, got %v", tok)
	}
	if tok.Terminal() != grammar.EndMarker {
		t.Errorf("EOF token should map to the end marker, got %q", tok.Terminal())
	}
}

func TestGrammarScannerTokenSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "granal.scanner")
	defer teardown()
	//
	gs, err := NewGrammarScanner(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	stream, err := gs.Scanner("id+id")
	if err != nil {
		t.Fatal(err)
	}
	tok := stream.NextToken()
	if tok.Lexeme() != "id" || tok.Terminal() != "id" {
		t.Errorf("first token = %v/%q", tok.Terminal(), tok.Lexeme())
	}
	tok = stream.NextToken()
	if tok.Terminal() != "+" {
		t.Errorf("second token = %q, expected +", tok.Terminal())
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
