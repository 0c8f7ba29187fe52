package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/modthree"
	"github.com/aretw0/modthree/pkg/adapters/file"
	"github.com/aretw0/modthree/pkg/adapters/loam"
	"github.com/aretw0/modthree/pkg/adapters/memory"
	"github.com/aretw0/modthree/pkg/domain"
	"github.com/aretw0/modthree/pkg/machines"
	"github.com/aretw0/modthree/pkg/ports"
)

// Directory backends for Source.Dir.
const (
	BackendLoam  = "loam"
	BackendFiles = "files"
)

// Source selects where the CLI reads machines from.
// File wins over Dir; with neither, the built-in presets are used.
type Source struct {
	Machine string
	File    string
	Dir     string
	// Backend picks how Dir is read: a Loam repository (default) or plain
	// <id>.yaml/.yml/.json files.
	Backend string
}

func (s Source) loader() (ports.MachineLoader, error) {
	switch {
	case s.File != "":
		m, err := file.LoadMachine(s.File)
		if err != nil {
			return nil, err
		}
		return memory.NewLoader(map[string]*domain.Machine{m.Name(): m}), nil
	case s.Dir != "":
		switch s.Backend {
		case BackendLoam, "":
			return loam.Open(s.Dir)
		case BackendFiles:
			return file.NewLoader(s.Dir), nil
		}
		return nil, fmt.Errorf("unknown backend %q (want %q or %q)", s.Backend, BackendLoam, BackendFiles)
	}
	return memory.Presets(), nil
}

// LoadMachine resolves the selected machine. Without --machine the "mod3" preset
// (or the repository document with that ID) is used.
func LoadMachine(src Source) (*domain.Machine, error) {
	if src.File != "" {
		// A definition file holds exactly one machine.
		return file.LoadMachine(src.File)
	}

	l, err := src.loader()
	if err != nil {
		return nil, err
	}
	id := src.Machine
	if id == "" {
		id = machines.ModThreeID
	}
	return l.GetMachine(id)
}

// ListMachines returns the IDs available from the source.
func ListMachines(src Source) ([]string, error) {
	l, err := src.loader()
	if err != nil {
		return nil, err
	}
	return l.ListMachines()
}

// createEngine initializes an engine with standard CLI conventions.
func createEngine(m *domain.Machine, logger *slog.Logger, debug bool, hooks ...domain.LifecycleHooks) (*modthree.Engine, error) {
	engineOpts := []modthree.Option{
		modthree.WithMachine(m),
		modthree.WithLogger(logger),
	}
	if debug {
		engineOpts = append(engineOpts, modthree.WithLifecycleHooks(createDebugHooks(logger)))
	}
	for _, h := range hooks {
		engineOpts = append(engineOpts, modthree.WithLifecycleHooks(h))
	}

	engine, err := modthree.New("", engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluateStart: func(ctx context.Context, e *domain.EvaluateEvent) {
			logger.DebugContext(ctx, "Evaluate Start", "length", e.Length)
		},
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.DebugContext(ctx, "Transition",
				"position", e.Position,
				"from", e.From,
				"symbol", e.Symbol,
				"to", e.To)
		},
		OnEvaluateEnd: func(ctx context.Context, e *domain.ResultEvent) {
			if e.Err != nil {
				logger.DebugContext(ctx, "Evaluate End (Error)", "err", e.Err, "duration", e.Duration)
			} else {
				logger.DebugContext(ctx, "Evaluate End", "final", e.Final, "output", e.Output, "duration", e.Duration)
			}
		},
	}
}
