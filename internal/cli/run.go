package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/modthree"
	"github.com/aretw0/modthree/internal/presentation/graph"
	"github.com/aretw0/modthree/internal/presentation/tui"
	"github.com/aretw0/modthree/internal/validator"
	"github.com/aretw0/modthree/pkg/adapters/file"
	"github.com/aretw0/modthree/pkg/domain"
)

// Options contains the configuration shared by every command.
type Options struct {
	Source
	Debug  bool
	Format string
}

func (o Options) engine() (*modthree.Engine, error) {
	m, err := LoadMachine(o.Source)
	if err != nil {
		return nil, err
	}
	return createEngine(m, createLogger(o.Debug), o.Debug)
}

// Eval evaluates each input and prints one result per input.
// With no inputs, lines are read from streams.In (unless it is a terminal).
// Rejected inputs are reported on streams.Err and evaluation continues;
// configuration errors stop it.
func Eval(ctx context.Context, opts Options, inputs []string, streams Streams) error {
	if err := validFormat(opts.Format); err != nil {
		return err
	}
	engine, err := opts.engine()
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		if isTerminal(streams.In) {
			return fmt.Errorf("no input given: pass binary strings as arguments or pipe them on stdin")
		}
		scanner := bufio.NewScanner(streams.In)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("input error: %w", err)
		}
	}

	failed := 0
	for _, raw := range inputs {
		run, err := evaluate(ctx, engine, raw)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidMachine) || ctx.Err() != nil {
				return err
			}
			failed++
			fmt.Fprintf(streams.Err, "Error: %v\n", err)
			continue
		}
		if err := WriteResult(streams.Out, opts.Format, strings.TrimSpace(raw), run); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs rejected", failed, len(inputs))
	}
	return nil
}

func evaluate(ctx context.Context, engine *modthree.Engine, raw string) (*domain.Run, error) {
	symbols, err := ParseInput(engine.Machine(), raw)
	if err != nil {
		return nil, err
	}
	return engine.Trace(ctx, symbols)
}

// Repl runs the interactive read-evaluate-print loop.
func Repl(ctx context.Context, opts Options, streams Streams) error {
	if err := validFormat(opts.Format); err != nil {
		return err
	}
	engine, err := opts.engine()
	if err != nil {
		return err
	}

	interactive := isTerminal(streams.In)
	if interactive {
		tui.PrintBanner(streams.Out)
	}

	r := modthree.NewRunner()
	r.Input = streams.In
	r.Output = streams.Out
	r.Headless = !interactive
	r.Parser = ParseInput
	if opts.Format == FormatJSON {
		r.Renderer = func(line string, run *domain.Run) string {
			data, _ := json.Marshal(Result{Input: line, Result: run.Output, Path: run.Path})
			return string(data)
		}
	}

	if err := r.Run(ctx, engine); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Validate crawls the machine and prints its findings.
// It fails when some input over the alphabet would hit a configuration gap.
func Validate(opts Options, streams Streams) error {
	if err := validFormat(opts.Format); err != nil {
		return err
	}
	m, err := LoadMachine(opts.Source)
	if err != nil {
		return err
	}

	report := validator.ValidateMachine(m)
	if opts.Format == FormatJSON {
		enc := json.NewEncoder(streams.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
		return report.Err()
	}

	palette := tui.NewPalette(streams.Out)
	for _, f := range report.Findings {
		marker := palette.Fail("ERROR")
		if f.Severity == validator.SeverityWarning {
			marker = palette.Faint("WARN ")
		}
		fmt.Fprintf(streams.Out, "%s %s\n", marker, f.Message)
	}
	if err := report.Err(); err != nil {
		return err
	}
	fmt.Fprintf(streams.Out, "%s machine %s is complete (%d reachable states)\n",
		palette.Pass("OK"), m.Name(), len(report.Reachable))
	return nil
}

// Graph prints the Mermaid diagram of the machine. A non-nil input is traced
// and its path highlighted.
func Graph(ctx context.Context, opts Options, input *string, streams Streams) error {
	engine, err := opts.engine()
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if input != nil {
		run, err := evaluate(ctx, engine, *input)
		if err != nil {
			return err
		}
		overlay = graph.OverlayFromRun(run)
	}

	_, err = fmt.Fprint(streams.Out, graph.GenerateMermaid(engine.Machine(), overlay))
	return err
}

// Describe formats accepted by the describe command.
const (
	DescribeMarkdown = "markdown"
	DescribeYAML     = "yaml"
	DescribeJSON     = "json"
)

// Describe prints the machine definition. Markdown is rendered through glamour
// when streams.Out is a terminal and raw is false.
func Describe(opts Options, format string, raw bool, streams Streams) error {
	m, err := LoadMachine(opts.Source)
	if err != nil {
		return err
	}

	switch format {
	case DescribeYAML, DescribeJSON:
		data, err := file.EncodeMachine(m, format)
		if err != nil {
			return err
		}
		_, err = streams.Out.Write(data)
		return err
	case DescribeMarkdown, "":
	default:
		return fmt.Errorf("unknown describe format %q", format)
	}

	md := tui.DescribeMachine(m)
	if raw || !isTerminal(streams.Out) {
		_, err = fmt.Fprint(streams.Out, md)
		return err
	}

	render, err := tui.NewRenderer()
	if err != nil {
		return err
	}
	out, err := render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = fmt.Fprint(streams.Out, out)
	return err
}

// List prints the machine IDs available from the source, one per line.
func List(opts Options, streams Streams) error {
	ids, err := ListMachines(opts.Source)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(streams.Out, id)
	}
	return nil
}
