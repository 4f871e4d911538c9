/*
Package grammar implements context-free grammars and their static analysis.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
productions, consisting of non-terminal and terminal symbols. Grammars may
contain epsilon-productions.

Example:

    b := grammar.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()   // S  ->  A a
    b.LHS("A").N("B").N("D").End()   // A  ->  B D
    b.LHS("B").T("b").End()          // B  ->  b
    b.LHS("B").Epsilon()             // B  ->
    b.LHS("D").T("d").End()          // D  ->  d
    b.LHS("D").Epsilon()             // D  ->

Alternatively, grammars may be read from text in the common notation

    E -> E + T | T
    T -> T * F | F
    F -> ( E ) | id

where non-terminals are written as runs of upper-case letters, optionally
primed (E, EXPR, S').

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an Analysis object, which computes the NULLABLE,
FIRST and FOLLOW sets for the grammar by iterative fixpoint.

Although these sets are mainly intended to be used for internal purposes of
constructing parser tables, methods for getting NULLABLE, FIRST(N),
FOLLOW(N) and SELECT of productions are defined to be public.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'granal.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("granal.grammar")
}
