package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a zero-length input is evaluated by a machine
// whose EmptyInputPolicy is EmptyInputError.
var ErrEmptyInput = errors.New("empty input")

// ErrInvalidMachine marks configuration authoring bugs: a well-formed machine never produces it.
var ErrInvalidMachine = errors.New("invalid machine")

// ErrMachineNotFound is returned when a loader has no machine with the requested ID.
var ErrMachineNotFound = errors.New("machine not found")

// InvalidSymbolError is returned when the input contains a symbol outside the alphabet.
type InvalidSymbolError struct {
	Symbol   Symbol
	Position int // zero-based index in the input
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid input symbol %q at position %d", string(e.Symbol), e.Position)
}

// MissingTransitionError is returned when the table has no entry for a reached (state, symbol) pair.
type MissingTransitionError struct {
	State    State
	Symbol   Symbol
	Position int
}

func (e *MissingTransitionError) Error() string {
	return fmt.Sprintf("no transition defined for state %s with input %q (position %d)", e.State, string(e.Symbol), e.Position)
}

// Unwrap allows errors.Is(err, ErrInvalidMachine).
func (e *MissingTransitionError) Unwrap() error { return ErrInvalidMachine }

// UndefinedOutputError is returned when the final state has no mapped output.
type UndefinedOutputError struct {
	State State
}

func (e *UndefinedOutputError) Error() string {
	return fmt.Sprintf("no output defined for state %s", e.State)
}

// Unwrap allows errors.Is(err, ErrInvalidMachine).
func (e *UndefinedOutputError) Unwrap() error { return ErrInvalidMachine }

// ConfigError represents a single machine configuration failure.
type ConfigError struct {
	Field  string // e.g. "initial", "transitions.S0"
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// AggregateError represents multiple configuration failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d configuration errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is/As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// ConfigErrors returns all failures if err is an AggregateError.
// Otherwise returns nil.
func ConfigErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
