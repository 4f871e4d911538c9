/*
Package automaton constructs canonical collections of LR item sets.

An item pairs a production with a dot position (and, for LR(1), a lookahead
terminal). States are item sets held in an arena and addressed by a 1-based
integer id; transitions form a map (state id, symbol) → state id rather than
a pointer graph, which keeps the automaton trivially serializable.

Construction is a BFS over the closure and goto operators:

    aug, _ := grammar.Augment(g)
    dfa := automaton.BuildLR0(aug, automaton.DefaultConfig())

LR(1) construction additionally needs the grammar analysis for FIRST-set
lookahead propagation, and LALR(1) merges the LR(1) states sharing a core:

    ga := grammar.Analyze(g)
    dfa, err := automaton.BuildLALR(aug, ga, automaton.DefaultConfig())

With a deterministic Config the builders sort all iteration orders, so the
same grammar always yields the same state numbering. In non-deterministic
mode the automaton is still isomorphic, merely numbered differently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'granal.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("granal.automaton")
}
