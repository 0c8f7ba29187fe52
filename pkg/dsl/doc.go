/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing machines.

It allows developers to declare an automaton with a fluent builder instead of
writing a MachineSpec literal or a YAML file. This is particularly useful for
generated machines, unit testing, and leveraging IDE autocompletion.

Example usage:

	b := dsl.New("mod3").Alphabet("0", "1")

	b.State("S0").Initial().Output(0).On("0", "S0").On("1", "S1")
	b.State("S1").Output(1).On("0", "S2").On("1", "S0")
	b.State("S2").Output(2).On("0", "S1").On("1", "S2")

	machine, err := b.Build()
*/
package dsl
