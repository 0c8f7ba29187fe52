package modthree

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/modthree/internal/logging"
	"github.com/aretw0/modthree/internal/runtime"
	loamAdapter "github.com/aretw0/modthree/pkg/adapters/loam"
	"github.com/aretw0/modthree/pkg/adapters/memory"
	"github.com/aretw0/modthree/pkg/domain"
	"github.com/aretw0/modthree/pkg/machines"
	"github.com/aretw0/modthree/pkg/ports"
	"go.opentelemetry.io/otel/trace"
)

// Engine is the high-level entry point for the modthree library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	loader  ports.MachineLoader
	machine *domain.Machine
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	tracer  trace.Tracer
	Name    string
}

var _ ports.Evaluator = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
// Calling it more than once merges the hooks in call order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLoader injects a custom MachineLoader, replacing the built-in presets.
func WithLoader(l ports.MachineLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithMachine binds the engine to an already built machine, bypassing any loader.
func WithMachine(m *domain.Machine) Option {
	return func(e *Engine) {
		e.machine = m
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTracer sets the OpenTelemetry tracer used for evaluation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = tracer
	}
}

// New initializes a new Engine for the machine with the given ID.
// By default the built-in presets are used ("mod3", "mod3-strict"), and an empty
// ID selects "mod3". With WithMachine, machineID is ignored.
func New(machineID string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.machine == nil {
		if eng.loader == nil {
			eng.loader = memory.Presets()
		}
		if machineID == "" {
			machineID = machines.ModThreeID
		}
		m, err := eng.loader.GetMachine(machineID)
		if err != nil {
			return nil, fmt.Errorf("failed to load machine %q: %w", machineID, err)
		}
		eng.machine = m
	}
	eng.Name = eng.machine.Name()

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("machine", eng.Name)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	}
	if eng.tracer != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithTracer(eng.tracer))
	}

	rt, err := runtime.NewEngine(eng.machine, runtimeOpts...)
	if err != nil {
		return nil, err
	}
	eng.runtime = rt
	return eng, nil
}

// Open initializes an Engine backed by a Loam repository of machine documents at dir.
func Open(dir, machineID string, opts ...Option) (*Engine, error) {
	loader, err := loamAdapter.Open(dir)
	if err != nil {
		return nil, err
	}
	return New(machineID, append(opts, WithLoader(loader))...)
}

// Evaluate runs the machine over input and returns the output mapped to the final state.
func (e *Engine) Evaluate(ctx context.Context, input []domain.Symbol) (int, error) {
	return e.runtime.Evaluate(ctx, input)
}

// EvaluateString splits s into one symbol per character and evaluates it.
func (e *Engine) EvaluateString(ctx context.Context, s string) (int, error) {
	return e.runtime.Evaluate(ctx, domain.SymbolsOf(s))
}

// Trace is like Evaluate but also returns the visited states.
func (e *Engine) Trace(ctx context.Context, input []domain.Symbol) (*domain.Run, error) {
	return e.runtime.Trace(ctx, input)
}

// Machine returns the configuration the engine evaluates.
func (e *Engine) Machine() *domain.Machine {
	return e.machine
}

// Loader returns the loader the machine came from, or nil when WithMachine was used.
func (e *Engine) Loader() ports.MachineLoader {
	return e.loader
}
