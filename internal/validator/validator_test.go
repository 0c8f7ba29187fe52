package validator_test

import (
	"testing"

	"github.com/aretw0/modthree/internal/validator"
	"github.com/aretw0/modthree/pkg/domain"
	"github.com/aretw0/modthree/pkg/machines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMachine_ModThreeIsComplete(t *testing.T) {
	report := validator.ValidateMachine(machines.ModThree())

	assert.True(t, report.Complete())
	assert.NoError(t, report.Err())
	assert.Empty(t, report.Findings)
	assert.Equal(t, []domain.State{"S0", "S1", "S2"}, report.Reachable)
}

func TestValidateMachine_Findings(t *testing.T) {
	m := domain.MustMachine(domain.MachineSpec{
		Name:     "broken",
		States:   []domain.State{"A", "B", "C", "Orphan"},
		Alphabet: []domain.Symbol{"0", "1"},
		Initial:  "A",
		Transitions: domain.TransitionTable{
			"A":      {"0": "A", "1": "B"},
			"B":      {"0": "C"},
			"C":      {"0": "C", "1": "A"},
			"Orphan": {"0": "A", "1": "A"},
		},
		Outputs: domain.OutputTable{"A": 0, "B": 1, "Orphan": 9},
	})

	report := validator.ValidateMachine(m)
	require.False(t, report.Complete())
	assert.Equal(t, []domain.State{"A", "B", "C"}, report.Reachable)

	errs := report.Errors()
	require.Len(t, errs, 2)

	var missing *domain.MissingTransitionError
	require.ErrorAs(t, errs[0].Err, &missing)
	assert.Equal(t, domain.State("B"), missing.State)
	assert.Equal(t, domain.Symbol("1"), missing.Symbol)

	var undefined *domain.UndefinedOutputError
	require.ErrorAs(t, errs[1].Err, &undefined)
	assert.Equal(t, domain.State("C"), undefined.State)

	warnings := report.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, domain.State("Orphan"), warnings[0].State)

	err := report.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 2 errors")
}

func TestValidateMachine_UnreachableGapsAreIgnored(t *testing.T) {
	// Dead has no transitions and no output, but is never reached.
	m := domain.MustMachine(domain.MachineSpec{
		States:   []domain.State{"A", "Dead"},
		Alphabet: []domain.Symbol{"x"},
		Initial:  "A",
		Transitions: domain.TransitionTable{
			"A": {"x": "A"},
		},
		Outputs: domain.OutputTable{"A": 1},
	})

	report := validator.ValidateMachine(m)
	assert.True(t, report.Complete())
	assert.Len(t, report.Warnings(), 1)
}
