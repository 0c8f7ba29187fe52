package domain

// EmptyInputPolicy decides what an evaluation of a zero-length input yields.
type EmptyInputPolicy string

const (
	// EmptyInputInitialOutput returns the output of the initial state (vacuous run).
	EmptyInputInitialOutput EmptyInputPolicy = "initial_output"
	// EmptyInputError rejects the input with ErrEmptyInput.
	EmptyInputError EmptyInputPolicy = "error"
)

// Valid reports whether p is a known policy. The zero value is not valid;
// NewMachine replaces it with EmptyInputInitialOutput before checking.
func (p EmptyInputPolicy) Valid() bool {
	switch p {
	case EmptyInputInitialOutput, EmptyInputError:
		return true
	}
	return false
}
