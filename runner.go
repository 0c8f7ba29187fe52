package modthree

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/modthree/pkg/domain"
	"github.com/aretw0/modthree/pkg/ports"
)

// Runner handles a read-evaluate-print loop over the provided IO.
// This allows for easy testing and integration with different frontends (CLI, pipes, etc).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Parser   InputParser
	Renderer ResultRenderer
}

// InputParser turns a raw line into symbols for the machine.
// Returning an error rejects the line without evaluating it.
type InputParser func(m *domain.Machine, line string) ([]domain.Symbol, error)

// ResultRenderer formats a successful evaluation.
type ResultRenderer func(line string, run *domain.Run) string

// NewRunner creates a new Runner. Input and Output must be set before Run.
func NewRunner() *Runner {
	return &Runner{}
}

// DefaultParser trims whitespace and splits the line into one symbol per character.
func DefaultParser(_ *domain.Machine, line string) ([]domain.Symbol, error) {
	return domain.SymbolsOf(strings.TrimSpace(line)), nil
}

// DefaultRenderer prints "Result: <n>".
func DefaultRenderer(_ string, run *domain.Run) string {
	return fmt.Sprintf("Result: %d", run.Output)
}

// Run evaluates one line at a time until EOF, "exit"/"quit" or context cancellation.
// Rejected inputs are reported and the loop continues; configuration errors stop it.
func (r *Runner) Run(ctx context.Context, engine ports.Evaluator) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	parse := r.Parser
	if parse == nil {
		parse = DefaultParser
	}
	render := r.Renderer
	if render == nil {
		render = DefaultRenderer
	}

	lineReader := bufio.NewReader(r.Input)
	if !r.Headless {
		fmt.Fprintf(r.Output, "--- modthree (%s) ---\n", engine.Machine().Name())
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}

		text, err := lineReader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && text != "") {
			if errors.Is(err, io.EOF) {
				// Graceful exit on EOF
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}
		line := strings.TrimSpace(text)

		if line == "exit" || line == "quit" {
			if !r.Headless {
				fmt.Fprintln(r.Output, "Bye!")
			}
			return nil
		}

		symbols, perr := parse(engine.Machine(), line)
		if perr != nil {
			fmt.Fprintf(r.Output, "Error: %v\n", perr)
			continue
		}

		run, everr := engine.Trace(ctx, symbols)
		switch {
		case everr == nil:
			fmt.Fprintln(r.Output, render(line, run))
		case errors.Is(everr, domain.ErrInvalidMachine), errors.Is(everr, context.Canceled):
			return everr
		default:
			fmt.Fprintf(r.Output, "Error: %v\n", everr)
		}
	}
}
