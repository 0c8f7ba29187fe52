package machines

import (
	"fmt"
	"strconv"

	"github.com/aretw0/modthree/pkg/domain"
)

// MaxBase is the largest radix Residue supports (single-character decimal digits).
const MaxBase = 10

// Residue builds the automaton computing n mod modulus for a number n written in
// the given base, digits read most-significant first.
//
// State Sr holds the running remainder r; digit d moves Sr to S((r*base + d) mod modulus).
func Residue(base, modulus int) (*domain.Machine, error) {
	if base < 2 || base > MaxBase {
		return nil, fmt.Errorf("base must be between 2 and %d, got %d", MaxBase, base)
	}
	if modulus < 1 {
		return nil, fmt.Errorf("modulus must be positive, got %d", modulus)
	}

	spec := domain.MachineSpec{
		Name:        fmt.Sprintf("mod%d-base%d", modulus, base),
		Initial:     stateFor(0),
		Transitions: make(domain.TransitionTable, modulus),
		Outputs:     make(domain.OutputTable, modulus),
		EmptyInput:  domain.EmptyInputInitialOutput,
	}

	for d := 0; d < base; d++ {
		spec.Alphabet = append(spec.Alphabet, domain.Symbol(strconv.Itoa(d)))
	}

	for r := 0; r < modulus; r++ {
		s := stateFor(r)
		spec.States = append(spec.States, s)
		spec.Outputs[s] = r

		row := make(map[domain.Symbol]domain.State, base)
		for d := 0; d < base; d++ {
			row[spec.Alphabet[d]] = stateFor((r*base + d) % modulus)
		}
		spec.Transitions[s] = row
	}
	spec.Finals = spec.States

	return domain.NewMachine(spec)
}

func stateFor(r int) domain.State {
	return domain.State("S" + strconv.Itoa(r))
}
