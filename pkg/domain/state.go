package domain

// State is an opaque state identifier drawn from the machine's state set.
// Only equality is meaningful.
type State string

// Symbol is an opaque identifier drawn from the machine's alphabet.
type Symbol string

// SymbolsOf splits text into one symbol per character.
func SymbolsOf(text string) []Symbol {
	symbols := make([]Symbol, 0, len(text))
	for _, r := range text {
		symbols = append(symbols, Symbol(string(r)))
	}
	return symbols
}

// Run captures a single evaluation.
type Run struct {
	// Path lists every state occupied, starting with the initial state.
	// It always has len(input)+1 entries on success.
	Path []State `json:"path"`

	// Final is the state reached after consuming the whole input.
	Final State `json:"final"`

	// Output is the value mapped to Final.
	Output int `json:"output"`
}
