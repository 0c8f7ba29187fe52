package memory

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/aretw0/modthree/pkg/domain"
	"github.com/aretw0/modthree/pkg/machines"
)

// Loader implements ports.MachineLoader using an in-memory registry.
// Safe for concurrent use.
type Loader struct {
	machines map[string]*domain.Machine
	mu       sync.RWMutex
}

// NewLoader creates a new Loader from machines keyed by ID.
func NewLoader(data map[string]*domain.Machine) *Loader {
	return &Loader{
		machines: maps.Clone(data),
	}
}

// NewFromMachines creates a new Loader keyed by each machine's name.
func NewFromMachines(ms ...*domain.Machine) (*Loader, error) {
	l := NewLoader(nil)
	for _, m := range ms {
		if err := l.Register(m.Name(), m); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Presets returns a Loader serving the built-in machines.
func Presets() *Loader {
	return NewLoader(machines.Presets())
}

// Register adds m under id. Registering an existing ID is an error.
func (l *Loader) Register(id string, m *domain.Machine) error {
	if id == "" {
		return fmt.Errorf("machine missing ID")
	}
	if m == nil {
		return fmt.Errorf("machine %s is nil", id)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.machines == nil {
		l.machines = make(map[string]*domain.Machine)
	}
	if _, exists := l.machines[id]; exists {
		return fmt.Errorf("machine %s already registered", id)
	}
	l.machines[id] = m
	return nil
}

// GetMachine retrieves a machine by ID.
func (l *Loader) GetMachine(id string) (*domain.Machine, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	m, ok := l.machines[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMachineNotFound, id)
	}
	return m, nil
}

// ListMachines returns all available machine IDs.
func (l *Loader) ListMachines() ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Sorted(maps.Keys(l.machines)), nil // Deterministic order
}
