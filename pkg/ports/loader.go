package ports

import "github.com/aretw0/modthree/pkg/domain"

// MachineLoader defines how hosts retrieve machine definitions.
// This allows the definition source (Presets, Files, Loam) to be decoupled.
type MachineLoader interface {
	// GetMachine returns the validated machine registered under id.
	// It returns an error wrapping domain.ErrMachineNotFound if id is unknown.
	GetMachine(id string) (*domain.Machine, error)

	// ListMachines returns the IDs of all available machines in a deterministic order.
	ListMachines() ([]string, error)
}
