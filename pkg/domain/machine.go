package domain

import (
	"fmt"
	"maps"
	"slices"
)

// MachineSpec is the declarative, decodable description of a deterministic automaton.
// It carries no invariants of its own; NewMachine validates it.
type MachineSpec struct {
	Name        string           `json:"name" yaml:"name"`
	States      []State          `json:"states" yaml:"states"`
	Alphabet    []Symbol         `json:"alphabet" yaml:"alphabet"`
	Initial     State            `json:"initial" yaml:"initial"`
	Finals      []State          `json:"finals,omitempty" yaml:"finals,omitempty"`
	Transitions TransitionTable  `json:"transitions" yaml:"transitions"`
	Outputs     OutputTable      `json:"outputs" yaml:"outputs"`
	EmptyInput  EmptyInputPolicy `json:"empty_input,omitempty" yaml:"empty_input,omitempty"`
}

// Machine is a validated, immutable automaton configuration.
// It is safe for concurrent use by any number of evaluations.
type Machine struct {
	name        string
	states      []State
	stateSet    map[State]struct{}
	alphabet    []Symbol
	symbolSet   map[Symbol]struct{}
	initial     State
	finals      map[State]struct{}
	transitions TransitionTable
	outputs     OutputTable
	emptyInput  EmptyInputPolicy
}

// NewMachine validates spec and returns an immutable Machine holding a private copy of it.
// All violations are reported together in an *AggregateError.
//
// Partial transition tables are accepted; completeness is a property of the reachable
// part of the machine and is reported by the validator, or at evaluation time.
func NewMachine(spec MachineSpec) (*Machine, error) {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	m := &Machine{
		name:        spec.Name,
		states:      slices.Clone(spec.States),
		stateSet:    make(map[State]struct{}, len(spec.States)),
		alphabet:    slices.Clone(spec.Alphabet),
		symbolSet:   make(map[Symbol]struct{}, len(spec.Alphabet)),
		initial:     spec.Initial,
		finals:      make(map[State]struct{}),
		transitions: spec.Transitions.Clone(),
		outputs:     maps.Clone(spec.Outputs),
		emptyInput:  spec.EmptyInput,
	}
	if m.transitions == nil {
		m.transitions = TransitionTable{}
	}
	if m.outputs == nil {
		m.outputs = OutputTable{}
	}
	if m.emptyInput == "" {
		m.emptyInput = EmptyInputInitialOutput
	}

	// 1. State set and alphabet
	if len(m.states) == 0 {
		fail("states", "at least one state is required")
	}
	for _, s := range m.states {
		if s == "" {
			fail("states", "state identifiers cannot be empty")
			continue
		}
		if _, dup := m.stateSet[s]; dup {
			fail("states", "duplicate state %s", s)
		}
		m.stateSet[s] = struct{}{}
	}
	if len(m.alphabet) == 0 {
		fail("alphabet", "at least one symbol is required")
	}
	for _, sym := range m.alphabet {
		if sym == "" {
			fail("alphabet", "symbols cannot be empty")
			continue
		}
		if _, dup := m.symbolSet[sym]; dup {
			fail("alphabet", "duplicate symbol %q", string(sym))
		}
		m.symbolSet[sym] = struct{}{}
	}

	// 2. q0 ∈ Q
	if m.initial == "" {
		fail("initial", "initial state is required")
	} else if !m.HasState(m.initial) {
		fail("initial", "initial state %s is not in states", m.initial)
	}

	// 3. Transition keys, symbols and targets
	for _, from := range m.transitions.Sources() {
		field := "transitions." + string(from)
		if !m.HasState(from) {
			fail(field, "source state %s is not in states", from)
		}
		row := m.transitions[from]
		for _, sym := range slices.Sorted(maps.Keys(row)) {
			if !m.Accepts(sym) {
				fail(field, "symbol %q is not in alphabet", string(sym))
			}
			if to := row[sym]; !m.HasState(to) {
				fail(field, "target state %s is not in states", to)
			}
		}
	}

	// 4. Outputs and finals
	for _, s := range slices.Sorted(maps.Keys(m.outputs)) {
		if !m.HasState(s) {
			fail("outputs", "state %s is not in states", s)
		}
	}
	if len(spec.Finals) == 0 {
		// Every output-bearing state is terminal.
		for s := range m.outputs {
			if m.HasState(s) {
				m.finals[s] = struct{}{}
			}
		}
	}
	for _, s := range spec.Finals {
		if !m.HasState(s) {
			fail("finals", "state %s is not in states", s)
			continue
		}
		m.finals[s] = struct{}{}
	}

	if !m.emptyInput.Valid() {
		fail("empty_input", "unknown policy %q (want %q or %q)", m.emptyInput, EmptyInputInitialOutput, EmptyInputError)
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return m, nil
}

// MustMachine is like NewMachine but panics if the spec is invalid.
// It is intended for machines defined as program constants.
func MustMachine(spec MachineSpec) *Machine {
	m, err := NewMachine(spec)
	if err != nil {
		panic(fmt.Sprintf("domain: invalid machine %q: %v", spec.Name, err))
	}
	return m
}

// Name returns the machine's identifier (may be empty).
func (m *Machine) Name() string { return m.name }

// Initial returns q0.
func (m *Machine) Initial() State { return m.initial }

// EmptyInput returns the policy applied to zero-length inputs.
func (m *Machine) EmptyInput() EmptyInputPolicy { return m.emptyInput }

// States returns Q in declaration order.
func (m *Machine) States() []State { return slices.Clone(m.states) }

// Alphabet returns Σ in declaration order.
func (m *Machine) Alphabet() []Symbol { return slices.Clone(m.alphabet) }

// Finals returns the terminal states in declaration order.
func (m *Machine) Finals() []State {
	out := make([]State, 0, len(m.finals))
	for _, s := range m.states {
		if m.IsFinal(s) {
			out = append(out, s)
		}
	}
	return out
}

// HasState reports whether s ∈ Q.
func (m *Machine) HasState(s State) bool {
	_, ok := m.stateSet[s]
	return ok
}

// Accepts reports whether sym ∈ Σ.
func (m *Machine) Accepts(sym Symbol) bool {
	_, ok := m.symbolSet[sym]
	return ok
}

// IsFinal reports whether s is a terminal state.
func (m *Machine) IsFinal(s State) bool {
	_, ok := m.finals[s]
	return ok
}

// Next returns δ(state, sym).
func (m *Machine) Next(state State, sym Symbol) (State, bool) {
	return m.transitions.Lookup(state, sym)
}

// Output returns the value mapped to state.
func (m *Machine) Output(state State) (int, bool) {
	v, ok := m.outputs[state]
	return v, ok
}

// Edges returns every defined transition in state/alphabet declaration order.
func (m *Machine) Edges() []Transition {
	return m.transitions.Edges(m.states, m.alphabet)
}

// WithEmptyInput returns a copy of the machine using another empty-input policy.
func (m *Machine) WithEmptyInput(policy EmptyInputPolicy) (*Machine, error) {
	if !policy.Valid() {
		return nil, &ConfigError{Field: "empty_input", Reason: fmt.Sprintf("unknown policy %q", policy)}
	}
	cp := *m
	cp.emptyInput = policy
	return &cp, nil
}

// WithName returns a copy of the machine under another name.
func (m *Machine) WithName(name string) *Machine {
	cp := *m
	cp.name = name
	return &cp
}

// Spec returns a deep copy of the machine's declarative form.
func (m *Machine) Spec() MachineSpec {
	return MachineSpec{
		Name:        m.name,
		States:      m.States(),
		Alphabet:    m.Alphabet(),
		Initial:     m.initial,
		Finals:      m.Finals(),
		Transitions: m.transitions.Clone(),
		Outputs:     maps.Clone(m.outputs),
		EmptyInput:  m.emptyInput,
	}
}
