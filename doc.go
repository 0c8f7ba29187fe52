/*
Package modthree is a table-driven finite-state machine engine (a deterministic
finite automaton with outputs) whose flagship configuration computes the remainder
of a binary number divided by three.

The engine is generic: a machine is plain configuration (states, alphabet, initial
state, transition table and output table) validated once and then shared read-only.
The mod-3 automaton is just one machine among those that can be loaded from presets,
YAML/JSON files, a Loam repository, or built with the pkg/dsl builder.

# Concept

Reading a binary number left to right, the remainder r of the prefix seen so far
becomes (2r + bit) mod 3 after the next bit. Three states (S0, S1, S2) hold the
three possible remainders, so the final state's output is the answer.

	| state | on '0' | on '1' | output |
	|-------|--------|--------|--------|
	| S0    | S0     | S1     | 0      |
	| S1    | S2     | S0     | 1      |
	| S2    | S1     | S2     | 2      |

# Usage

	eng, err := modthree.New("mod3")
	if err != nil {
		log.Fatal(err)
	}

	r, err := eng.EvaluateString(context.Background(), "1011") // 2

# Empty input

The empty string is configurable per machine through the empty_input policy:
"initial_output" (the default) yields the initial state's output, "error" fails
with domain.ErrEmptyInput. The "mod3-strict" preset uses the latter.

# Errors

Symbols outside the alphabet fail with *domain.InvalidSymbolError. Gaps in the
configuration (a missing transition or output on the path taken) fail with errors
that satisfy errors.Is(err, domain.ErrInvalidMachine) and are logged at Error level.
*/
package modthree
