package machines

import "github.com/aretw0/modthree/pkg/domain"

// Preset identifiers.
const (
	ModThreeID       = "mod3"
	ModThreeStrictID = "mod3-strict"
)

// ModThreeSpec is the declarative mod-3 automaton over binary input, read most-significant bit first.
//
// Each state names the running remainder r, and reading bit b moves to (2r + b) mod 3.
func ModThreeSpec() domain.MachineSpec {
	return domain.MachineSpec{
		Name:     ModThreeID,
		States:   []domain.State{"S0", "S1", "S2"},
		Alphabet: []domain.Symbol{"0", "1"},
		Initial:  "S0",
		Finals:   []domain.State{"S0", "S1", "S2"},
		Transitions: domain.TransitionTable{
			"S0": {"0": "S0", "1": "S1"},
			"S1": {"0": "S2", "1": "S0"},
			"S2": {"0": "S1", "1": "S2"},
		},
		Outputs: domain.OutputTable{
			"S0": 0,
			"S1": 1,
			"S2": 2,
		},
		EmptyInput: domain.EmptyInputInitialOutput,
	}
}

// ModThree returns the mod-3 machine. Empty input yields 0, the remainder of zero.
func ModThree() *domain.Machine {
	return domain.MustMachine(ModThreeSpec())
}

// ModThreeStrict returns the mod-3 machine that rejects empty input with domain.ErrEmptyInput.
func ModThreeStrict() *domain.Machine {
	spec := ModThreeSpec()
	spec.Name = ModThreeStrictID
	spec.EmptyInput = domain.EmptyInputError
	return domain.MustMachine(spec)
}

// Presets returns the built-in machines keyed by ID.
func Presets() map[string]*domain.Machine {
	return map[string]*domain.Machine{
		ModThreeID:       ModThree(),
		ModThreeStrictID: ModThreeStrict(),
	}
}
