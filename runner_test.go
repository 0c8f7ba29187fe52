package modthree_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/aretw0/modthree"
	"github.com/aretw0/modthree/internal/runtime"
	"github.com/aretw0/modthree/pkg/domain"
	"github.com/aretw0/modthree/pkg/machines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Headless(t *testing.T) {
	eng, err := modthree.New("")
	require.NoError(t, err)

	var out bytes.Buffer
	r := modthree.NewRunner()
	r.Input = strings.NewReader("110\n 1011 \n12\n1111")
	r.Output = &out
	r.Headless = true

	require.NoError(t, r.Run(context.Background(), eng))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Result: 0", lines[0])
	assert.Equal(t, "Result: 2", lines[1])
	assert.Contains(t, lines[2], "Error: invalid input symbol")
	assert.Equal(t, "Result: 0", lines[3], "last line without newline is evaluated")
}

func TestRunner_Interactive(t *testing.T) {
	eng, err := modthree.New("")
	require.NoError(t, err)

	var out bytes.Buffer
	r := &modthree.Runner{
		Input:  strings.NewReader("10\nquit\n1\n"),
		Output: &out,
		Renderer: func(line string, run *domain.Run) string {
			return fmt.Sprintf("%s => %d via %v", line, run.Output, run.Path)
		},
	}
	require.NoError(t, r.Run(context.Background(), eng))

	s := out.String()
	assert.Contains(t, s, "--- modthree (mod3) ---")
	assert.Contains(t, s, "10 => 2 via [S0 S1 S2]")
	assert.Contains(t, s, "Bye!")
	assert.NotContains(t, s, "1 => 1", "input after quit is not read")
}

func TestRunner_ParserRejects(t *testing.T) {
	eng, err := modthree.New("")
	require.NoError(t, err)

	var out bytes.Buffer
	r := &modthree.Runner{
		Input:    strings.NewReader("abc\n"),
		Output:   &out,
		Headless: true,
		Parser: func(*domain.Machine, string) ([]domain.Symbol, error) {
			return nil, fmt.Errorf("nope")
		},
	}
	require.NoError(t, r.Run(context.Background(), eng))
	assert.Equal(t, "Error: nope\n", out.String())
}

func TestRunner_RequiresIO(t *testing.T) {
	eng, err := modthree.New("")
	require.NoError(t, err)

	assert.Error(t, modthree.NewRunner().Run(context.Background(), eng))
	assert.Error(t, (&modthree.Runner{Input: strings.NewReader("")}).Run(context.Background(), eng))
}

func TestRunner_AcceptsAnyEvaluator(t *testing.T) {
	rt, err := runtime.NewEngine(machines.ModThreeStrict())
	require.NoError(t, err)

	var out bytes.Buffer
	r := &modthree.Runner{Input: strings.NewReader("\n1111\n"), Output: &out, Headless: true}
	require.NoError(t, r.Run(context.Background(), rt))
	assert.Equal(t, "Error: empty input\nResult: 0\n", out.String())
}
