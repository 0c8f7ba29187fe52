package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/modthree/internal/logging"
	"github.com/aretw0/modthree/pkg/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Engine is the core automaton runner.
// It is bound to one machine and holds no per-evaluation state, so a single
// Engine may serve concurrent callers.
type Engine struct {
	machine *domain.Machine
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	tracer  trace.Tracer
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithTracer sets the OpenTelemetry tracer used to record one span per evaluation.
// By default the global tracer provider is used, which is a no-op unless the host configures one.
func WithTracer(tracer trace.Tracer) EngineOption {
	return func(e *Engine) {
		if tracer != nil {
			e.tracer = tracer
		}
	}
}

// NewEngine creates a new engine bound to machine.
func NewEngine(machine *domain.Machine, opts ...EngineOption) (*Engine, error) {
	if machine == nil {
		return nil, fmt.Errorf("runtime: machine is required")
	}

	e := &Engine{
		machine: machine,
		logger:  logging.NewNop(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Machine returns the configuration the engine is bound to.
func (e *Engine) Machine() *domain.Machine {
	return e.machine
}

// Evaluate consumes input from the initial state and returns the output mapped to the final state.
func (e *Engine) Evaluate(ctx context.Context, input []domain.Symbol) (int, error) {
	run, err := e.Trace(ctx, input)
	if err != nil {
		return 0, err
	}
	return run.Output, nil
}

// Trace is like Evaluate but returns the whole run, including the visited path.
func (e *Engine) Trace(ctx context.Context, input []domain.Symbol) (*domain.Run, error) {
	start := time.Now()
	ctx, span := e.startSpan(ctx, len(input))

	e.emitEvaluateStart(ctx, len(input))
	run, err := e.run(ctx, input)
	e.emitEvaluateEnd(ctx, len(input), run, err, time.Since(start))

	endSpan(span, run, err)
	e.logOutcome(ctx, len(input), run, err)

	if err != nil {
		return nil, err
	}
	return run, nil
}

// cancelCheckInterval bounds how many symbols are consumed between context checks.
const cancelCheckInterval = 4096

// run is the single-pass DFA traversal.
func (e *Engine) run(ctx context.Context, input []domain.Symbol) (*domain.Run, error) {
	m := e.machine

	if len(input) == 0 && m.EmptyInput() == domain.EmptyInputError {
		return nil, domain.ErrEmptyInput
	}

	current := m.Initial()
	path := make([]domain.State, 1, len(input)+1)
	path[0] = current

	for i, sym := range input {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if !m.Accepts(sym) {
			return nil, &domain.InvalidSymbolError{Symbol: sym, Position: i}
		}

		next, ok := m.Next(current, sym)
		if !ok {
			return nil, &domain.MissingTransitionError{State: current, Symbol: sym, Position: i}
		}

		e.emitTransition(ctx, i, current, sym, next)
		current = next
		path = append(path, current)
	}

	out, ok := m.Output(current)
	if !ok {
		return nil, &domain.UndefinedOutputError{State: current}
	}

	return &domain.Run{Path: path, Final: current, Output: out}, nil
}
