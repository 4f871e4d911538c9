/*
Package scanner turns raw input text into the terminal sequences the parser
runtime consumes.

Two tokenizers are provided: a trivial one splitting the input at whitespace,
and a lexmachine-backed one whose DFA is derived from the terminal set of a
grammar, so "id+id*id" tokenizes without spaces between symbols.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scanner

import (
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	granal "github.com/SmileLaughter/Grammer-Analysis"
	"github.com/SmileLaughter/Grammer-Analysis/grammar"
)

// tracer traces with key 'granal.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("granal.scanner")
}

// Tokenizer is a scanner interface: a stream of tokens over one input.
type Tokenizer interface {
	NextToken() granal.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Tokens ----------------------------------------------------------------

// Token is the token type produced by the tokenizers of this package.
type Token struct {
	kind     granal.TokType
	terminal string
	lexeme   string
	span     granal.Span
}

var _ granal.Token = Token{}

// MakeToken wraps scanned data into a token.
func MakeToken(kind granal.TokType, terminal, lexeme string, span granal.Span) Token {
	return Token{kind: kind, terminal: terminal, lexeme: lexeme, span: span}
}

// TokType returns the token category, i.e. the ordinal of the terminal.
func (t Token) TokType() granal.TokType {
	return t.kind
}

// Terminal returns the grammar terminal this token stands for.
func (t Token) Terminal() string {
	return t.terminal
}

// Lexeme returns the matched input text.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Span returns the input positions the token covers.
func (t Token) Span() granal.Span {
	return t.span
}

// --- Whitespace splitting --------------------------------------------------

// Fields splits an input sentence at whitespace into a symbol sequence.
// This is the cheap way to feed the parser when symbols are space-separated.
func Fields(input string) []string {
	return strings.Fields(input)
}

// --- Grammar-derived scanner -----------------------------------------------

// GrammarScanner is a lexmachine-backed scanner whose DFA is compiled from
// the terminal set of a grammar. Terminal ordinals follow the grammar's
// lexicographic terminal order; the end marker is excluded and reported as
// granal.EOF when the input is exhausted.
type GrammarScanner struct {
	lexer *lexmachine.Lexer
	g     *grammar.Grammar
}

// NewGrammarScanner compiles a scanner DFA from the terminals of a grammar.
// Word-like terminals (identifier syntax) are matched as keywords; all other
// terminals are matched as escaped literals. Whitespace is skipped.
func NewGrammarScanner(g *grammar.Grammar) (*GrammarScanner, error) {
	gs := &GrammarScanner{lexer: lexmachine.NewLexer(), g: g}
	gs.lexer.Add([]byte("( |\t|\n|\r)+"), skip)
	for n, term := range g.Terminals() {
		if term == grammar.EndMarker {
			continue
		}
		if wordlike(term) {
			gs.lexer.Add([]byte(term), makeToken(term, n))
		} else {
			r := "\\" + strings.Join(strings.Split(term, ""), "\\")
			gs.lexer.Add([]byte(r), makeToken(term, n))
		}
	}
	if err := gs.lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return gs, nil
}

// Scanner creates a token stream for a given input. The stream implements
// the Tokenizer interface.
func (gs *GrammarScanner) Scanner(input string) (*Stream, error) {
	s, err := gs.lexer.Scanner([]byte(input))
	if err != nil {
		return &Stream{}, err
	}
	return &Stream{scanner: s, terminals: gs.g.Terminals(), Error: logError}, nil
}

// Sentence tokenizes an input string into the terminal symbol sequence the
// parser runtime consumes. Unmatched input is reported through the error
// handler and skipped.
func (gs *GrammarScanner) Sentence(input string) ([]string, error) {
	stream, err := gs.Scanner(input)
	if err != nil {
		return nil, err
	}
	var scanerr error
	stream.SetErrorHandler(func(e error) {
		logError(e)
		if scanerr == nil {
			scanerr = e
		}
	})
	sentence := make([]string, 0, 16)
	for {
		tok := stream.NextToken()
		if tok.TokType() == granal.EOF {
			break
		}
		sentence = append(sentence, tok.Terminal())
	}
	return sentence, scanerr
}

// Stream is a token stream over one input, implementing Tokenizer.
type Stream struct {
	scanner   *lexmachine.Scanner
	terminals []string
	Error     func(error)
}

var _ Tokenizer = (*Stream)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (st *Stream) SetErrorHandler(h func(error)) {
	if h == nil {
		st.Error = logError
		return
	}
	st.Error = h
}

// NextToken is part of the Tokenizer interface.
func (st *Stream) NextToken() granal.Token {
	tok, err, eof := st.scanner.Next()
	for err != nil {
		st.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			st.scanner.TC = ui.FailTC
		}
		tok, err, eof = st.scanner.Next()
	}
	if eof {
		return MakeToken(granal.EOF, grammar.EndMarker, "", granal.Span{})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("tok is %q/%d", string(token.Lexeme), token.Type)
	return MakeToken(
		granal.TokType(token.Type),
		st.terminals[token.Type],
		string(token.Lexeme),
		granal.Span{uint64(token.StartColumn), uint64(token.EndColumn)},
	)
}

// skip is a scanner action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a scanner action which wraps a scanned match into a token.
func makeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// wordlike is true for terminals with identifier syntax, which are matched
// as keywords rather than escaped literals.
func wordlike(term string) bool {
	for n, r := range term {
		if unicode.IsLetter(r) || r == '_' || (n > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return len(term) > 0
}
