package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/modthree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() domain.MachineSpec {
	return domain.MachineSpec{
		Name:     "parity",
		States:   []domain.State{"even", "odd"},
		Alphabet: []domain.Symbol{"0", "1"},
		Initial:  "even",
		Transitions: domain.TransitionTable{
			"even": {"0": "even", "1": "odd"},
			"odd":  {"0": "odd", "1": "even"},
		},
		Outputs: domain.OutputTable{"even": 0, "odd": 1},
	}
}

func TestNewMachine_Valid(t *testing.T) {
	m, err := domain.NewMachine(validSpec())
	require.NoError(t, err)

	assert.Equal(t, "parity", m.Name())
	assert.Equal(t, domain.State("even"), m.Initial())
	assert.Equal(t, domain.EmptyInputInitialOutput, m.EmptyInput(), "zero policy defaults to initial_output")
	assert.Equal(t, []domain.State{"even", "odd"}, m.Finals(), "finals default to output-bearing states")

	next, ok := m.Next("odd", "1")
	assert.True(t, ok)
	assert.Equal(t, domain.State("even"), next)

	_, ok = m.Next("odd", "2")
	assert.False(t, ok)

	v, ok := m.Output("odd")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestNewMachine_IsImmutable(t *testing.T) {
	spec := validSpec()
	m, err := domain.NewMachine(spec)
	require.NoError(t, err)

	// Mutating the source spec must not leak into the machine
	spec.Transitions["even"]["1"] = "even"
	spec.Outputs["odd"] = 42
	spec.States[0] = "mutated"

	next, _ := m.Next("even", "1")
	assert.Equal(t, domain.State("odd"), next)
	v, _ := m.Output("odd")
	assert.Equal(t, 1, v)
	assert.Equal(t, domain.State("even"), m.States()[0])

	// Neither must mutating what the accessors return
	out := m.Spec()
	out.Transitions["odd"]["0"] = "even"
	next, _ = m.Next("odd", "0")
	assert.Equal(t, domain.State("odd"), next)
}

func TestNewMachine_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.MachineSpec)
		field  string
	}{
		{"no states", func(s *domain.MachineSpec) { s.States = nil }, "states"},
		{"duplicate state", func(s *domain.MachineSpec) { s.States = append(s.States, "odd") }, "states"},
		{"no alphabet", func(s *domain.MachineSpec) { s.Alphabet = nil }, "alphabet"},
		{"duplicate symbol", func(s *domain.MachineSpec) { s.Alphabet = append(s.Alphabet, "1") }, "alphabet"},
		{"missing initial", func(s *domain.MachineSpec) { s.Initial = "" }, "initial"},
		{"unknown initial", func(s *domain.MachineSpec) { s.Initial = "nowhere" }, "initial"},
		{"unknown source", func(s *domain.MachineSpec) { s.Transitions["ghost"] = map[domain.Symbol]domain.State{"0": "even"} }, "transitions.ghost"},
		{"unknown target", func(s *domain.MachineSpec) { s.Transitions["even"]["0"] = "ghost" }, "transitions.even"},
		{"symbol outside alphabet", func(s *domain.MachineSpec) { s.Transitions["odd"]["x"] = "odd" }, "transitions.odd"},
		{"output for unknown state", func(s *domain.MachineSpec) { s.Outputs["ghost"] = 3 }, "outputs"},
		{"unknown final", func(s *domain.MachineSpec) { s.Finals = []domain.State{"ghost"} }, "finals"},
		{"unknown policy", func(s *domain.MachineSpec) { s.EmptyInput = "maybe" }, "empty_input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)

			m, err := domain.NewMachine(spec)
			require.Error(t, err)
			assert.Nil(t, m)

			errs := domain.ConfigErrors(err)
			require.NotEmpty(t, errs)

			var cfgErr *domain.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNewMachine_AggregatesAllViolations(t *testing.T) {
	spec := validSpec()
	spec.Initial = "nowhere"
	spec.Outputs["ghost"] = 1
	spec.EmptyInput = "maybe"

	_, err := domain.NewMachine(spec)
	require.Error(t, err)
	assert.Len(t, domain.ConfigErrors(err), 3)
	assert.Contains(t, err.Error(), "3 configuration errors")
}

func TestNewMachine_PartialTableIsAccepted(t *testing.T) {
	spec := validSpec()
	delete(spec.Transitions, "odd")

	m, err := domain.NewMachine(spec)
	require.NoError(t, err)
	_, ok := m.Next("odd", "0")
	assert.False(t, ok)
}

func TestMustMachine_Panics(t *testing.T) {
	assert.Panics(t, func() {
		domain.MustMachine(domain.MachineSpec{Name: "broken"})
	})
}

func TestMachine_WithEmptyInput(t *testing.T) {
	m := domain.MustMachine(validSpec())

	strict, err := m.WithEmptyInput(domain.EmptyInputError)
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyInputError, strict.EmptyInput())
	assert.Equal(t, domain.EmptyInputInitialOutput, m.EmptyInput(), "original is untouched")

	_, err = m.WithEmptyInput("sometimes")
	assert.Error(t, err)
}

func TestMachine_Edges(t *testing.T) {
	m := domain.MustMachine(validSpec())
	edges := m.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, domain.Transition{From: "even", Symbol: "0", To: "even"}, edges[0])
	assert.Equal(t, domain.Transition{From: "odd", Symbol: "1", To: "even"}, edges[3])
}

func TestSymbolsOf(t *testing.T) {
	assert.Empty(t, domain.SymbolsOf(""))
	assert.Equal(t, []domain.Symbol{"1", "0", "é"}, domain.SymbolsOf("10é"))
}

func TestErrors_WrapInvalidMachine(t *testing.T) {
	assert.True(t, errors.Is(&domain.MissingTransitionError{State: "S0", Symbol: "1"}, domain.ErrInvalidMachine))
	assert.True(t, errors.Is(&domain.UndefinedOutputError{State: "S0"}, domain.ErrInvalidMachine))
	assert.False(t, errors.Is(&domain.InvalidSymbolError{Symbol: "2"}, domain.ErrInvalidMachine))

	err := &domain.InvalidSymbolError{Symbol: "2", Position: 3}
	assert.Equal(t, `invalid input symbol "2" at position 3`, err.Error())
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnEvaluateStart: func(context.Context, *domain.EvaluateEvent) { calls = append(calls, "a") },
	}
	b := domain.LifecycleHooks{
		OnEvaluateStart: func(context.Context, *domain.EvaluateEvent) { calls = append(calls, "b") },
		OnEvaluateEnd:   func(context.Context, *domain.ResultEvent) { calls = append(calls, "b-end") },
	}

	merged := a.Merge(b)
	merged.OnEvaluateStart(context.Background(), &domain.EvaluateEvent{})
	merged.OnEvaluateEnd(context.Background(), &domain.ResultEvent{})
	assert.Nil(t, merged.OnTransition)
	assert.Equal(t, []string{"a", "b", "b-end"}, calls)
}
