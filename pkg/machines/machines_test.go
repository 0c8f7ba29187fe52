package machines_test

import (
	"testing"

	"github.com/aretw0/modthree/pkg/domain"
	"github.com/aretw0/modthree/pkg/machines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModThree_Table(t *testing.T) {
	m := machines.ModThree()

	assert.Equal(t, machines.ModThreeID, m.Name())
	assert.Equal(t, domain.State("S0"), m.Initial())
	assert.Equal(t, []domain.Symbol{"0", "1"}, m.Alphabet())
	assert.Equal(t, domain.EmptyInputInitialOutput, m.EmptyInput())

	// (2r + b) mod 3, unrolled
	for r := 0; r < 3; r++ {
		for b := 0; b < 2; b++ {
			from := domain.State([]string{"S0", "S1", "S2"}[r])
			want := domain.State([]string{"S0", "S1", "S2"}[(2*r+b)%3])
			next, ok := m.Next(from, domain.Symbol([]string{"0", "1"}[b]))
			require.True(t, ok)
			assert.Equal(t, want, next, "δ(%s, %d)", from, b)
		}
	}

	for i, s := range m.States() {
		v, ok := m.Output(s)
		require.True(t, ok)
		assert.Equal(t, i, v, "state name encodes its remainder")
		assert.True(t, m.IsFinal(s))
	}
}

func TestModThree_ReturnsFreshValues(t *testing.T) {
	a := machines.ModThree()
	b := machines.ModThree()
	assert.NotSame(t, a, b)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestModThreeStrict(t *testing.T) {
	m := machines.ModThreeStrict()
	assert.Equal(t, machines.ModThreeStrictID, m.Name())
	assert.Equal(t, domain.EmptyInputError, m.EmptyInput())
	assert.Equal(t, machines.ModThree().Edges(), m.Edges())
}

func TestPresets(t *testing.T) {
	presets := machines.Presets()
	require.Len(t, presets, 2)
	assert.Contains(t, presets, machines.ModThreeID)
	assert.Contains(t, presets, machines.ModThreeStrictID)
}

func TestResidue_MatchesModThree(t *testing.T) {
	m, err := machines.Residue(2, 3)
	require.NoError(t, err)
	assert.Equal(t, machines.ModThree().Edges(), m.Edges())
	assert.Equal(t, machines.ModThree().States(), m.States())
}

func TestResidue_Decimal(t *testing.T) {
	m, err := machines.Residue(10, 7)
	require.NoError(t, err)

	assert.Len(t, m.States(), 7)
	assert.Len(t, m.Alphabet(), 10)

	// Walk "1234" by hand: 1234 mod 7 == 2
	state := m.Initial()
	for _, sym := range domain.SymbolsOf("1234") {
		next, ok := m.Next(state, sym)
		require.True(t, ok)
		state = next
	}
	v, ok := m.Output(state)
	require.True(t, ok)
	assert.Equal(t, 1234%7, v)
}

func TestResidue_InvalidArguments(t *testing.T) {
	tests := []struct {
		name          string
		base, modulus int
	}{
		{"base too small", 1, 3},
		{"base too large", 11, 3},
		{"zero modulus", 2, 0},
		{"negative modulus", 2, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := machines.Residue(tt.base, tt.modulus)
			assert.Error(t, err)
		})
	}
}

func TestResidue_ModulusOne(t *testing.T) {
	m, err := machines.Residue(2, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.State{"S0"}, m.States())
	next, _ := m.Next("S0", "1")
	assert.Equal(t, domain.State("S0"), next)
}
