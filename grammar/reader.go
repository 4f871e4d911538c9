package grammar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read parses a grammar from text in the common production notation
//
//	E -> E + T | T
//	T -> T * F | F
//	F -> ( E ) | id
//
// A line holds one left-hand side with one or more alternatives separated by
// '|'. The separator between LHS and RHS may be '->' or ':'. Symbols within
// an alternative are separated by whitespace. An alternative consisting of
// 'ε' (or nothing) denotes an epsilon production. Lines starting with '#'
// and blank lines are skipped.
//
// Non-terminals are runs of upper-case letters, optionally followed by
// primes (E, EXPR, S'); every other symbol is a terminal. The LHS of the
// first production becomes the start symbol.
func Read(name string, r io.Reader) (*Grammar, error) {
	b := NewGrammarBuilder(name)
	scan := bufio.NewScanner(r)
	lineno := 0
	for scan.Scan() {
		lineno++
		line := scan.Text()
		if lineno == 1 {
			line = strings.TrimPrefix(line, "\uFEFF") // byte order mark
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := readProductionLine(b, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return b.Grammar()
}

// ReadString parses a grammar from a string; see Read.
func ReadString(name, text string) (*Grammar, error) {
	return Read(name, strings.NewReader(text))
}

// ReadFile parses a grammar from a file; see Read.
func ReadFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(path, f)
}

func readProductionLine(b *GrammarBuilder, line string) error {
	sep := "->"
	if !strings.Contains(line, sep) {
		sep = ":"
	}
	parts := strings.SplitN(line, sep, 2)
	if len(parts) != 2 {
		return fmt.Errorf("production lacks '->' or ':' separator: %q", line)
	}
	lhs := strings.TrimSpace(parts[0])
	if !IsNonTerminalName(lhs) {
		return fmt.Errorf("left-hand side %q is not a non-terminal name", lhs)
	}
	for _, alt := range strings.Split(parts[1], "|") {
		alt = strings.TrimSpace(alt)
		rb := b.LHS(lhs)
		if alt == "" || alt == Epsilon {
			rb.Epsilon()
			continue
		}
		for _, sym := range strings.Fields(alt) {
			if IsNonTerminalName(sym) {
				rb.N(sym)
			} else {
				rb.T(sym)
			}
		}
		rb.End()
	}
	return nil
}

// IsNonTerminalName reports whether a symbol name denotes a non-terminal in
// the textual grammar notation: one or more upper-case letters, optionally
// followed by primes or an underscore-digit suffix (S, EXPR, S', E_0).
func IsNonTerminalName(sym string) bool {
	if sym == "" {
		return false
	}
	if sym[0] < 'A' || sym[0] > 'Z' {
		return false
	}
	rest := sym
	if i := strings.IndexByte(sym, '_'); i > 0 {
		rest = sym[:i]
		for _, c := range sym[i+1:] {
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	for _, c := range rest {
		if !(c >= 'A' && c <= 'Z' || c == '\'') {
			return false
		}
	}
	return true
}
