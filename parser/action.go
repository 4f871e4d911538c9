package parser

import "fmt"

// ActionType discriminates the parser actions stored in ACTION table cells.
type ActionType int

// The three LR parser actions. Errors are not stored; an empty cell is the
// error entry.
const (
	Shift ActionType = iota
	Reduce
	Accept
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	}
	return "unknown"
}

// Action is one entry of an ACTION table cell. For a shift, Target is the
// successor state ID; for a reduce, Target is the production serial.
type Action struct {
	Type   ActionType
	Target int
}

func (a Action) String() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("s%d", a.Target)
	case Reduce:
		return fmt.Sprintf("r%d", a.Target)
	case Accept:
		return "acc"
	}
	return "?"
}

// ConflictKind classifies a table conflict.
type ConflictKind int

const (
	ShiftReduce ConflictKind = iota
	ReduceReduce
	OtherConflict
)

func (k ConflictKind) String() string {
	switch k {
	case ShiftReduce:
		return "shift/reduce"
	case ReduceReduce:
		return "reduce/reduce"
	}
	return "conflict"
}

// Conflict records two actions competing for the same ACTION table cell.
// Conflicts do not invalidate a table; the cell keeps both actions and the
// runtime picks one.
type Conflict struct {
	State    int
	Symbol   string
	Kind     ConflictKind
	Existing Action
	Incoming Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s conflict in state %d on %q: %s vs %s",
		c.Kind, c.State, c.Symbol, c.Existing, c.Incoming)
}
