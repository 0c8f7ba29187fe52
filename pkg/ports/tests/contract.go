package tests

import (
	"errors"
	"slices"
	"testing"

	"github.com/aretw0/modthree/pkg/domain"
	"github.com/aretw0/modthree/pkg/ports"
)

// MachineLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.MachineLoader.
// expected maps every machine ID the loader must serve to the machine it should resolve to.
func MachineLoaderContractTest(t *testing.T, loader ports.MachineLoader, expected map[string]*domain.Machine) {
	t.Helper()

	// 1. Test GetMachine (Success)
	t.Run("GetMachine_Success", func(t *testing.T) {
		for id, want := range expected {
			got, err := loader.GetMachine(id)
			if err != nil {
				t.Fatalf("unexpected error getting machine %s: %v", id, err)
			}
			assertSameMachine(t, id, want, got)
		}
	})

	// 2. Test GetMachine (NotFound)
	t.Run("GetMachine_NotFound", func(t *testing.T) {
		_, err := loader.GetMachine("non-existent-machine")
		if err == nil {
			t.Fatal("expected error for non-existent machine, got nil")
		}
		if !errors.Is(err, domain.ErrMachineNotFound) {
			t.Errorf("expected ErrMachineNotFound, got %v", err)
		}
	})

	// 3. Test ListMachines
	t.Run("ListMachines", func(t *testing.T) {
		ids, err := loader.ListMachines()
		if err != nil {
			t.Fatalf("unexpected error listing machines: %v", err)
		}

		if len(ids) != len(expected) {
			t.Errorf("expected %d machines, got %d (%v)", len(expected), len(ids), ids)
		}
		if !slices.IsSorted(ids) {
			t.Errorf("expected sorted IDs, got %v", ids)
		}

		for id := range expected {
			if !slices.Contains(ids, id) {
				t.Errorf("machine %s missing from list", id)
			}
		}
	})

	// 4. Every listed ID must resolve
	t.Run("ListMachines_Resolvable", func(t *testing.T) {
		ids, err := loader.ListMachines()
		if err != nil {
			t.Fatalf("unexpected error listing machines: %v", err)
		}
		for _, id := range ids {
			if _, err := loader.GetMachine(id); err != nil {
				t.Errorf("listed machine %s cannot be loaded: %v", id, err)
			}
		}
	})
}

func assertSameMachine(t *testing.T, id string, want, got *domain.Machine) {
	t.Helper()

	if got.Initial() != want.Initial() {
		t.Errorf("%s: initial mismatch. got %s, want %s", id, got.Initial(), want.Initial())
	}
	if got.EmptyInput() != want.EmptyInput() {
		t.Errorf("%s: empty input policy mismatch. got %s, want %s", id, got.EmptyInput(), want.EmptyInput())
	}
	if !slices.Equal(got.States(), want.States()) {
		t.Errorf("%s: states mismatch. got %v, want %v", id, got.States(), want.States())
	}
	if !slices.Equal(got.Alphabet(), want.Alphabet()) {
		t.Errorf("%s: alphabet mismatch. got %v, want %v", id, got.Alphabet(), want.Alphabet())
	}
	if !slices.Equal(got.Edges(), want.Edges()) {
		t.Errorf("%s: transitions mismatch. got %v, want %v", id, got.Edges(), want.Edges())
	}
	for _, s := range want.States() {
		w, wok := want.Output(s)
		g, gok := got.Output(s)
		if w != g || wok != gok {
			t.Errorf("%s: output mismatch for %s. got %d (%t), want %d (%t)", id, s, g, gok, w, wok)
		}
	}
}
