/*
Package parser builds LR parser tables and runs a shift-reduce-goto parser
on top of them.

A single generic table builder walks the states of an automaton and fills
ACTION and GOTO cells; the difference between the LR variants is confined to
a ReducePolicy, which decides for which terminals a reducible item emits a
reduce action. Conflicting actions are never rejected: every cell keeps all
recorded actions and each collision is reported as a Conflict, so clients can
inspect why a grammar falls outside a table class.

Clients usually go through the Parser front end, which ties grammar
augmentation, analysis, automaton construction and table building together:

	p, err := parser.New(parser.SLR, g)
	if err != nil { ... }
	if p.Table().HasConflicts() { ... }
	result, err := p.Parse([]string{"id", "+", "id"})

Parse returns a Result with the acceptance verdict, a step record per parser
action, and the parse tree of an accepted input. On unresolved conflicts the
runtime prefers a shift when one is present and otherwise takes the first
recorded action.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'granal.parser'.
func tracer() tracing.Trace {
	return tracing.Select("granal.parser")
}
