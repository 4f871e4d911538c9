package granal

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Token types correspond to the
// terminal symbols of a grammar; scanners assign them when they are built
// from a grammar's terminal set.
type TokType int

// EOF is the token type every scanner produces when its input is exhausted.
// It corresponds to the end-of-input marker '$' of the parse tables.
const EOF TokType = -1

// TokTypeStringer is a type to be provided by a scanner/parser combination to
// be able to print out token categories.
type TokTypeStringer func(TokType) string

// Token represents an input token. Tokens are usually produced by a scanner
// and reflect terminal symbols of a grammar.
//
// An example would be a token for an identifier:
//
//	TokType = 3           // ordinal of terminal "id" in the grammar
//	Lexeme  = "count"     // lexeme as it appeared in the input stream
//	Terminal = "id"       // grammar terminal this token stands for
//	Span    = 12…17       // occurred from position 12 in the input stream
type Token interface {
	TokType() TokType
	Terminal() string
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
