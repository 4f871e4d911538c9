package automaton

// Config controls automaton construction. It is passed explicitly to the
// builders; there is no package-global configuration.
type Config struct {
	// Deterministic makes construction order reproducible: symbols are
	// expanded in sorted order and merged states are numbered by the
	// smallest original state ID. Two builds of the same grammar then yield
	// identical state numbering and transitions.
	Deterministic bool
}

// DefaultConfig returns the configuration used when clients pass the zero
// value nowhere: deterministic construction.
func DefaultConfig() Config {
	return Config{Deterministic: true}
}
