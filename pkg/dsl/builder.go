package dsl

import (
	"github.com/aretw0/modthree/pkg/domain"
)

// Builder manages the machine construction.
type Builder struct {
	name       string
	alphabet   []domain.Symbol
	initial    domain.State
	emptyInput domain.EmptyInputPolicy
	order      []domain.State
	states     map[domain.State]*StateBuilder
}

// New creates a new machine builder.
func New(name string) *Builder {
	return &Builder{
		name:   name,
		states: make(map[domain.State]*StateBuilder),
	}
}

// Alphabet appends symbols to Σ.
func (b *Builder) Alphabet(symbols ...domain.Symbol) *Builder {
	b.alphabet = append(b.alphabet, symbols...)
	return b
}

// EmptyInput sets the policy for zero-length inputs.
func (b *Builder) EmptyInput(policy domain.EmptyInputPolicy) *Builder {
	b.emptyInput = policy
	return b
}

// State declares a state (in declaration order) and returns its builder.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(id domain.State) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{
		id:          id,
		transitions: make(map[domain.Symbol]domain.State),
		builder:     b,
	}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Spec assembles the declarative form without validating it.
func (b *Builder) Spec() domain.MachineSpec {
	spec := domain.MachineSpec{
		Name:        b.name,
		States:      append([]domain.State(nil), b.order...),
		Alphabet:    append([]domain.Symbol(nil), b.alphabet...),
		Initial:     b.initial,
		Transitions: make(domain.TransitionTable, len(b.order)),
		Outputs:     make(domain.OutputTable, len(b.order)),
		EmptyInput:  b.emptyInput,
	}

	for _, id := range b.order {
		sb := b.states[id]
		if len(sb.transitions) > 0 {
			row := make(map[domain.Symbol]domain.State, len(sb.transitions))
			for sym, to := range sb.transitions {
				row[sym] = to
			}
			spec.Transitions[id] = row
		}
		if sb.hasOutput {
			spec.Outputs[id] = sb.output
		}
		if sb.final {
			spec.Finals = append(spec.Finals, id)
		}
	}
	return spec
}

// Build validates and compiles the machine.
func (b *Builder) Build() (*domain.Machine, error) {
	return domain.NewMachine(b.Spec())
}
