package automaton

import (
	"fmt"
	"strings"

	"github.com/SmileLaughter/Grammer-Analysis/grammar"
)

// Item is an LR item: a production with a dot position in [0, len(RHS)].
// For LR(1) items La holds the lookahead terminal; LR(0) items leave it
// empty. Items are value types; two LR(0) items are equal iff production and
// dot match, two LR(1) items additionally compare the lookahead.
type Item struct {
	Prod *grammar.Production
	Dot  int
	La   string
}

// StartItem returns the item [S' → ·S…] for the augmenting production of the
// given (augmented) grammar, with an optional lookahead.
func StartItem(g *grammar.Grammar, la string) Item {
	return Item{Prod: g.Rule(0), Dot: 0, La: la}
}

// Reducible is true when the dot has reached the end of the right-hand side.
func (i Item) Reducible() bool {
	return i.Dot >= i.Prod.Len()
}

// PeekSymbol returns the symbol after the dot, or "" for a reducible item.
func (i Item) PeekSymbol() string {
	if i.Reducible() {
		return ""
	}
	return i.Prod.RHS()[i.Dot]
}

// Suffix returns a copy of the symbols after the one following the dot,
// i.e. β for an item A → α·Xβ. The copy is safe to append to.
func (i Item) Suffix() []string {
	rhs := i.Prod.RHS()
	if i.Dot+1 >= len(rhs) {
		return nil
	}
	beta := make([]string, len(rhs)-i.Dot-1)
	copy(beta, rhs[i.Dot+1:])
	return beta
}

// Advance returns the item with the dot moved one symbol to the right.
// Advancing a reducible item is illegal.
func (i Item) Advance() Item {
	if i.Reducible() {
		panic("advancing a reducible item")
	}
	return Item{Prod: i.Prod, Dot: i.Dot + 1, La: i.La}
}

// Core returns the lookahead-independent identity of the item.
func (i Item) Core() Core {
	return Core{Serial: i.Prod.Serial, Dot: i.Dot}
}

func (i Item) String() string {
	rhs := i.Prod.RHS()
	parts := make([]string, 0, len(rhs)+1)
	parts = append(parts, rhs[:i.Dot]...)
	parts = append(parts, "·")
	parts = append(parts, rhs[i.Dot:]...)
	body := strings.Join(parts, " ")
	if i.La == "" {
		return fmt.Sprintf("%s → %s", i.Prod.LHS, body)
	}
	return fmt.Sprintf("[%s → %s, %s]", i.Prod.LHS, body, i.La)
}

// Core is the part of an item that is ignored when comparing LR(0)/LR(1)
// structure across automata or when merging states for LALR(1): the
// production serial and the dot position.
type Core struct {
	Serial int
	Dot    int
}

func (c Core) String() string {
	return fmt.Sprintf("(%d,%d)", c.Serial, c.Dot)
}

// itemLess establishes the canonical item order: by production serial, then
// dot position, then lookahead.
func itemLess(a, b Item) bool {
	if a.Prod.Serial != b.Prod.Serial {
		return a.Prod.Serial < b.Prod.Serial
	}
	if a.Dot != b.Dot {
		return a.Dot < b.Dot
	}
	return a.La < b.La
}

func itemEq(a, b Item) bool {
	return a.Prod.Serial == b.Prod.Serial && a.Dot == b.Dot && a.La == b.La
}
