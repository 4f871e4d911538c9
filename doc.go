/*
Package granal is a toolkit for deterministic bottom-up parsing tables.

Grammer-Analysis constructs the canonical collections of LR item sets for the
LR(0), SLR(1), LR(1) and LALR(1) algorithms, derives ACTION/GOTO tables from
them, detects shift/reduce and reduce/reduce conflicts, and executes
table-driven parses that build a parse tree. Package structure is as follows:

■ grammar: Package grammar holds the grammar model (productions, terminals,
non-terminals, start symbol), a fluent grammar builder, a text reader for
grammar files, grammar augmentation, and the static grammar analysis
computing NULLABLE, FIRST, FOLLOW and SELECT sets.

■ automaton: Package automaton implements LR(0) and LR(1) items, canonical
item sets, the closure and goto operators, BFS construction of the canonical
collection of states, and LALR(1) state merging.

■ parser: Package parser converts an automaton into ACTION/GOTO tables under
a per-variant reduce policy, records conflicts, and runs the
shift-reduce-goto parse loop producing a step trace and a parse tree.

■ scanner: Package scanner turns raw input into the terminal sequences the
parser consumes.

■ export: Package export renders automata and tables as JSON, Graphviz Dot
and HTML for external tooling.

■ sparse: Package sparse holds a small COO sparse matrix type backing the
GOTO tables.

The base package contains token and span types which are used throughout all
the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package granal
