package automaton

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/utils"
)

// State is a state of the LR automaton: an immutable, canonically sorted set
// of items plus a serial ID. State IDs start at 1; ID 0 is reserved as the
// error state in parser tables.
type State struct {
	ID    int
	items []Item
}

// itemKey is the value identity of an item, used for hashing item sets.
type itemKey struct {
	Serial int
	Dot    int
	La     string
}

// newState creates a state from an item set. The items are copied, sorted
// into canonical order and deduplicated; the argument is not retained.
func newState(id int, items []Item) *State {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(a, b int) bool {
		return itemLess(sorted[a], sorted[b])
	})
	dedup := sorted[:0]
	for _, it := range sorted {
		if len(dedup) == 0 || !itemEq(dedup[len(dedup)-1], it) {
			dedup = append(dedup, it)
		}
	}
	return &State{ID: id, items: dedup}
}

// Items returns the items of the state in canonical order. Callers must not
// modify the returned slice.
func (s *State) Items() []Item {
	return s.items
}

// Size returns the number of items in the state.
func (s *State) Size() int {
	return len(s.items)
}

// Equals compares two states by their item sets, ignoring the IDs.
func (s *State) Equals(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.items) != len(other.items) {
		return false
	}
	for n, it := range s.items {
		if !itemEq(it, other.items[n]) {
			return false
		}
	}
	return true
}

// Accepting is true if the state contains a completed start production,
// i.e. an item for production #0 with the dot at the end.
func (s *State) Accepting() bool {
	for _, it := range s.items {
		if it.Prod.Serial == 0 && it.Reducible() {
			return true
		}
	}
	return false
}

// Cores returns the distinct item cores of the state, in canonical order.
func (s *State) Cores() []Core {
	cores := make([]Core, 0, len(s.items))
	for _, it := range s.items {
		c := it.Core()
		if len(cores) == 0 || cores[len(cores)-1] != c {
			cores = append(cores, c)
		}
	}
	return cores
}

// LookaheadSet returns the sorted set of lookahead terminals attached to the
// given core within this state. For automata built without lookaheads the
// result is empty.
func (s *State) LookaheadSet(c Core) []string {
	las := make([]string, 0, 2)
	for _, it := range s.items {
		if it.Core() == c && it.La != "" {
			las = append(las, it.La)
		}
	}
	return las
}

// signature produces a hash over the full item set, lookaheads included.
func (s *State) signature() string {
	return hashItems(s.items, false)
}

// coreSignature produces a hash over the item cores only. LR(1) states that
// differ just in lookaheads share a core signature.
func (s *State) coreSignature() string {
	return hashItems(s.items, true)
}

func hashItems(items []Item, coreOnly bool) string {
	keys := make([]itemKey, 0, len(items))
	for _, it := range items {
		k := itemKey{Serial: it.Prod.Serial, Dot: it.Dot}
		if !coreOnly {
			k.La = it.La
		}
		if coreOnly && len(keys) > 0 && keys[len(keys)-1] == k {
			continue
		}
		keys = append(keys, k)
	}
	hash, err := structhash.Hash(keys, 1)
	if err != nil {
		panic(fmt.Sprintf("cannot hash item set: %v", err))
	}
	return hash
}

// Dump is a debugging helper, logging all items of the state.
func (s *State) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	for _, it := range s.items {
		tracer().Debugf("    %v", it)
	}
	tracer().Debugf("-------------------------")
}

func (s *State) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, len(s.items))
}

// Sorts states by serial ID within the state set.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*State)
	c2 := s2.(*State)
	return utils.IntComparator(c1.ID, c2.ID)
}
