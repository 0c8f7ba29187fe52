package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/modthree/pkg/domain"
	"github.com/aretw0/modthree/pkg/machines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSelfTest_BothPolicies(t *testing.T) {
	for _, m := range []*domain.Machine{machines.ModThree(), machines.ModThreeStrict()} {
		t.Run(m.Name(), func(t *testing.T) {
			engine, err := createEngine(m, createLogger(false), false)
			require.NoError(t, err)

			report := RunSelfTest(context.Background(), engine, ModThreeCases(m.EmptyInput()))
			assert.Equal(t, 8, report.Passed)
			assert.Zero(t, report.Failed)
		})
	}
}

func TestRunSelfTest_ReportsFailures(t *testing.T) {
	residue, err := machines.Residue(2, 5)
	require.NoError(t, err)
	engine, err := createEngine(residue, createLogger(false), false)
	require.NoError(t, err)

	report := RunSelfTest(context.Background(), engine, ModThreeCases(residue.EmptyInput()))
	assert.Positive(t, report.Failed)
	assert.Equal(t, len(report.Results), report.Passed+report.Failed)
}

func TestSelfTest_Output(t *testing.T) {
	streams, out, _ := testStreams("")
	require.NoError(t, SelfTest(context.Background(), Options{}, true, streams))

	s := out.String()
	assert.Contains(t, s, "PASS 110")
	assert.Contains(t, s, "mod3: 8 passed, 0 failed")
	assert.Contains(t, s, `modthree_evaluations_total{machine="mod3",outcome="ok"} 8`)
}

func TestSelfTest_StrictEmptyInput(t *testing.T) {
	streams, out, _ := testStreams("")
	require.NoError(t, SelfTest(context.Background(), Options{Source: Source{Machine: "mod3-strict"}}, true, streams))
	assert.Contains(t, out.String(), `outcome="empty_input"} 1`)
}

func TestBehavesLikeModThree(t *testing.T) {
	binaryResidue, err := machines.Residue(2, 3)
	require.NoError(t, err)
	mod5, err := machines.Residue(2, 5)
	require.NoError(t, err)
	decimal, err := machines.Residue(10, 3)
	require.NoError(t, err)

	renamed := domain.MustMachine(domain.MachineSpec{
		States:   []domain.State{"zero", "one", "two"},
		Alphabet: []domain.Symbol{"1", "0"},
		Initial:  "zero",
		Transitions: domain.TransitionTable{
			"zero": {"0": "zero", "1": "one"},
			"one":  {"0": "two", "1": "zero"},
			"two":  {"0": "one", "1": "two"},
		},
		Outputs: domain.OutputTable{"zero": 0, "one": 1, "two": 2},
	})

	tests := []struct {
		name string
		m    *domain.Machine
		want bool
	}{
		{name: "mod3", m: machines.ModThree(), want: true},
		{name: "mod3-strict", m: machines.ModThreeStrict(), want: true},
		{name: "binary residue", m: binaryResidue, want: true},
		{name: "renamed states", m: renamed, want: true},
		{name: "mod5", m: mod5},
		{name: "decimal", m: decimal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, behavesLikeModThree(tt.m))
		})
	}
}

func TestSelfTest_RefusesOtherMachines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parity.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`states: [even, odd]
alphabet: ["0", "1"]
initial: even
transitions:
  even: {"0": even, "1": odd}
  odd: {"0": odd, "1": even}
outputs: {even: 0, odd: 1}
`), 0o644))

	streams, out, _ := testStreams("")
	err := SelfTest(context.Background(), Options{Source: Source{File: path}}, false, streams)
	require.ErrorIs(t, err, ErrNotModThree)
	assert.Contains(t, err.Error(), "parity")
	assert.Empty(t, out.String())
}
