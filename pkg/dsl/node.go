package dsl

import "github.com/aretw0/modthree/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	id          domain.State
	transitions map[domain.Symbol]domain.State
	output      int
	hasOutput   bool
	final       bool
	builder     *Builder
}

// Initial marks the state as q0. The last call wins.
func (s *StateBuilder) Initial() *StateBuilder {
	s.builder.initial = s.id
	return s
}

// Output maps the state to a value. Unless Final is called on some state,
// every state with an output is terminal.
func (s *StateBuilder) Output(value int) *StateBuilder {
	s.output = value
	s.hasOutput = true
	return s
}

// Final marks the state as terminal explicitly.
func (s *StateBuilder) Final() *StateBuilder {
	s.final = true
	return s
}

// On adds the transition δ(state, symbol) = target. Targets may be declared later.
func (s *StateBuilder) On(symbol domain.Symbol, target domain.State) *StateBuilder {
	s.transitions[symbol] = target
	return s
}

// State is a shortcut back to the parent builder.
func (s *StateBuilder) State(id domain.State) *StateBuilder {
	return s.builder.State(id)
}
