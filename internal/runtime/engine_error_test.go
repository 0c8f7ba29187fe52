package runtime_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/modthree/internal/runtime"
	"github.com/aretw0/modthree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// partialMachine has no transition out of B on "1" and no output for C.
func partialMachine(t *testing.T) *domain.Machine {
	t.Helper()
	m, err := domain.NewMachine(domain.MachineSpec{
		Name:     "partial",
		States:   []domain.State{"A", "B", "C"},
		Alphabet: []domain.Symbol{"0", "1"},
		Initial:  "A",
		Transitions: domain.TransitionTable{
			"A": {"0": "A", "1": "B"},
			"B": {"0": "C"},
			"C": {"0": "C", "1": "A"},
		},
		Outputs: domain.OutputTable{"A": 0, "B": 1},
	})
	require.NoError(t, err)
	return m
}

func TestEngine_InvalidSymbol(t *testing.T) {
	engine := newModThree(t)

	tests := []struct {
		input    string
		symbol   domain.Symbol
		position int
	}{
		{"2", "2", 0},
		{"10a1", "a", 2},
		{"111 ", " ", 3},
		{"1-0", "-", 1},
		{"１", "１", 0}, // full-width digit
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := engine.Evaluate(context.Background(), domain.SymbolsOf(tt.input))
			require.Error(t, err)

			var symErr *domain.InvalidSymbolError
			require.ErrorAs(t, err, &symErr)
			assert.Equal(t, tt.symbol, symErr.Symbol)
			assert.Equal(t, tt.position, symErr.Position)
			assert.NotErrorIs(t, err, domain.ErrInvalidMachine)
		})
	}
}

func TestEngine_MultiCharacterSymbolIsInvalid(t *testing.T) {
	engine := newModThree(t)
	_, err := engine.Evaluate(context.Background(), []domain.Symbol{"10"})

	var symErr *domain.InvalidSymbolError
	require.ErrorAs(t, err, &symErr, "multi-character symbols are not part of the alphabet")
}

func TestEngine_MissingTransition(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	engine, err := runtime.NewEngine(partialMachine(t), runtime.WithLogger(logger))
	require.NoError(t, err)

	_, err = engine.Evaluate(context.Background(), domain.SymbolsOf("011"))
	require.Error(t, err)

	var missing *domain.MissingTransitionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.State("B"), missing.State)
	assert.Equal(t, domain.Symbol("1"), missing.Symbol)
	assert.Equal(t, 2, missing.Position)
	assert.ErrorIs(t, err, domain.ErrInvalidMachine)

	// Configuration bugs are logged loudly
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "machine configuration error")
}

func TestEngine_UndefinedOutput(t *testing.T) {
	engine, err := runtime.NewEngine(partialMachine(t))
	require.NoError(t, err)

	_, err = engine.Evaluate(context.Background(), domain.SymbolsOf("10"))
	require.Error(t, err)

	var undefined *domain.UndefinedOutputError
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, domain.State("C"), undefined.State)
	assert.ErrorIs(t, err, domain.ErrInvalidMachine)

	// Reachable states with outputs still evaluate
	got, err := engine.Evaluate(context.Background(), domain.SymbolsOf("1"))
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestEngine_TraceReturnsNilRunOnError(t *testing.T) {
	engine := newModThree(t)
	run, err := engine.Trace(context.Background(), domain.SymbolsOf("12"))
	assert.Error(t, err)
	assert.Nil(t, run)
}

func TestEngine_CanceledContext(t *testing.T) {
	engine := newModThree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Evaluate(ctx, domain.SymbolsOf("1011"))
	assert.ErrorIs(t, err, context.Canceled)
}
