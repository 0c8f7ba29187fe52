package domain

import (
	"maps"
	"slices"
)

// TransitionTable is the transition function δ: Q × Σ → Q, keyed by source state then symbol.
// It may be partial; a missing entry is an error at evaluation time, never a default.
type TransitionTable map[State]map[Symbol]State

// OutputTable maps states to the value reported when a run ends there.
type OutputTable map[State]int

// Clone returns a deep copy of the table.
func (t TransitionTable) Clone() TransitionTable {
	if t == nil {
		return nil
	}
	out := make(TransitionTable, len(t))
	for state, row := range t {
		out[state] = maps.Clone(row)
	}
	return out
}

// Lookup returns δ(state, symbol).
func (t TransitionTable) Lookup(state State, symbol Symbol) (State, bool) {
	next, ok := t[state][symbol]
	return next, ok
}

// Sources returns the source states in sorted order.
func (t TransitionTable) Sources() []State {
	return slices.Sorted(maps.Keys(t))
}

// Transition is a single edge of the table, used by presentation code.
type Transition struct {
	From   State  `json:"from" yaml:"from"`
	Symbol Symbol `json:"on" yaml:"on"`
	To     State  `json:"to" yaml:"to"`
}

// Edges flattens the table following the given state and alphabet order.
// Pairs without an entry are skipped.
func (t TransitionTable) Edges(states []State, alphabet []Symbol) []Transition {
	var edges []Transition
	for _, from := range states {
		for _, sym := range alphabet {
			if to, ok := t.Lookup(from, sym); ok {
				edges = append(edges, Transition{From: from, Symbol: sym, To: to})
			}
		}
	}
	return edges
}
