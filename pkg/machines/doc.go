// Package machines provides ready-made automata, most notably the base-2 mod-3 machine.
//
// Every constructor returns a fresh, immutable *domain.Machine; there is no shared
// package-level configuration.
package machines
