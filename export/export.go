/*
Package export serializes automata and parser tables: the automaton as JSON
or Graphviz Dot, the ACTION/GOTO tables as an HTML table.

The JSON schema groups item lookaheads per core, so an LALR automaton
exports one item entry per core with its merged lookahead array:

	{"states": [
	  {"id": 1,
	   "items": [{"lhs": "S'", "rhs": ["S"], "dot": 0, "lookahead": ["$"]}, …],
	   "transitions": {"S": 2, "a": 3}},
	  …]}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/SmileLaughter/Grammer-Analysis/automaton"
	"github.com/SmileLaughter/Grammer-Analysis/parser"
)

// tracer traces with key 'granal.export'.
func tracer() tracing.Trace {
	return tracing.Select("granal.export")
}

// --- JSON ------------------------------------------------------------------

type jsonItem struct {
	LHS       string   `json:"lhs"`
	RHS       []string `json:"rhs"`
	Dot       int      `json:"dot"`
	Lookahead []string `json:"lookahead,omitempty"`
}

type jsonState struct {
	ID          int            `json:"id"`
	Items       []jsonItem     `json:"items"`
	Transitions map[string]int `json:"transitions"`
}

type jsonAutomaton struct {
	States []jsonState `json:"states"`
}

// AutomatonAsJSON writes the automaton to w as indented JSON. Items are
// grouped by core; for automata with lookaheads each item entry carries the
// lookahead set of its core.
func AutomatonAsJSON(dfa *automaton.Automaton, w io.Writer) error {
	out := jsonAutomaton{States: make([]jsonState, 0, dfa.Size())}
	for _, s := range dfa.States() {
		js := jsonState{ID: s.ID, Transitions: make(map[string]int)}
		for _, core := range s.Cores() {
			prod := dfa.Grammar().Rule(core.Serial)
			rhs := append([]string{}, prod.RHS()...)
			js.Items = append(js.Items, jsonItem{
				LHS:       prod.LHS,
				RHS:       rhs,
				Dot:       core.Dot,
				Lookahead: s.LookaheadSet(core),
			})
		}
		dfa.Grammar().EachSymbol(func(sym string, isTerminal bool) {
			if target, ok := dfa.Transition(s.ID, sym); ok {
				js.Transitions[sym] = target
			}
		})
		out.States = append(out.States, js)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		tracer().Errorf("cannot export automaton as JSON: %v", err)
		return err
	}
	return nil
}

// --- Graphviz --------------------------------------------------------------

// AutomatonAsGraphViz writes the automaton to w in Graphviz Dot format.
// States are record nodes listing their items, accepting states are shaded,
// edges carry the grammar symbol as label.
func AutomatonAsGraphViz(dfa *automaton.Automaton, w io.Writer) {
	io.WriteString(w, `digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range dfa.States() {
		fmt.Fprintf(w, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s))
	}
	dfa.EachEdge(func(from, to int, label string) {
		fmt.Fprintf(w, "s%03d -> s%03d [label=\"%s\"]\n", from, to, label)
	})
	io.WriteString(w, "}\n")
}

func nodecolor(s *automaton.State) string {
	if s.Accepting() {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(s *automaton.State) string {
	var b strings.Builder
	for _, item := range s.Items() {
		b.WriteString(item.String())
		b.WriteString("\\l")
	}
	return b.String()
}

// --- HTML ------------------------------------------------------------------

// TablesAsHTML exports the ACTION and GOTO tables as one HTML table: one row
// per state, ACTION columns for the terminals, GOTO columns for the
// non-terminals. Conflicting ACTION cells list all actions.
func TablesAsHTML(t *parser.Table, w io.Writer) {
	g := t.Grammar()
	io.WriteString(w, "<html><body>\n")
	fmt.Fprintf(w, "ACTION and GOTO tables for %s<p>", g.Name)
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	g.EachSymbol(func(sym string, isTerminal bool) {
		fmt.Fprintf(w, "<td>%s</td>", sym)
	})
	io.WriteString(w, "</tr>\n")
	for state := 1; state <= t.States(); state++ {
		fmt.Fprintf(w, "<tr><td>state %d</td>\n", state)
		g.EachSymbol(func(sym string, isTerminal bool) {
			io.WriteString(w, "<td>")
			io.WriteString(w, htmlCell(t, state, sym, isTerminal))
			io.WriteString(w, "</td>\n")
		})
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}

func htmlCell(t *parser.Table, state int, sym string, isTerminal bool) string {
	if isTerminal {
		actions := t.Actions(state, sym)
		if len(actions) == 0 {
			return "&nbsp;"
		}
		strs := make([]string, len(actions))
		for n, a := range actions {
			strs[n] = a.String()
		}
		return strings.Join(strs, "/")
	}
	if target, ok := t.Goto(state, sym); ok {
		return fmt.Sprintf("%d", target)
	}
	return "&nbsp;"
}
