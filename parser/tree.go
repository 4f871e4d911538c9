package parser

import (
	"strings"

	"github.com/SmileLaughter/Grammer-Analysis/grammar"
)

// TreeNode is a node of the parse tree built during an accepted parse.
// Interior nodes carry the production they were reduced by; leaves are
// shifted terminals, or a single ε leaf under an epsilon reduction.
type TreeNode struct {
	Symbol     string
	Terminal   bool
	Production *grammar.Production // nil for leaves
	Children   []*TreeNode
}

// Leaves returns the leaves of the tree in left-to-right order.
func (n *TreeNode) Leaves() []*TreeNode {
	if n == nil {
		return nil
	}
	if len(n.Children) == 0 {
		return []*TreeNode{n}
	}
	leaves := make([]*TreeNode, 0, len(n.Children))
	for _, c := range n.Children {
		leaves = append(leaves, c.Leaves()...)
	}
	return leaves
}

// Sentence returns the terminal symbols at the leaves, skipping ε leaves.
// For a tree of an accepted parse this reproduces the input sentence.
func (n *TreeNode) Sentence() []string {
	leaves := n.Leaves()
	sentence := make([]string, 0, len(leaves))
	for _, l := range leaves {
		if l.Symbol == grammar.Epsilon {
			continue
		}
		sentence = append(sentence, l.Symbol)
	}
	return sentence
}

func (n *TreeNode) String() string {
	if len(n.Children) == 0 {
		return n.Symbol
	}
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(n.Symbol)
	for _, c := range n.Children {
		b.WriteString(" ")
		b.WriteString(c.String())
	}
	b.WriteString(")")
	return b.String()
}
