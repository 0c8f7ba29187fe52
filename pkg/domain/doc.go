/*
Package domain contains the core models of the modthree automaton engine.

It defines the declarative machine configuration (states, alphabet, transition
table, output table), the evaluation result, lifecycle events and the error
taxonomy. This package is kept pure and free of I/O, logging or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - MachineSpec: plain, decodable description of an automaton (YAML/JSON/frontmatter).
  - Machine: the validated, immutable configuration built from a MachineSpec.
  - Run: the path and output of a single evaluation.
  - LifecycleHooks: callbacks used by hosts for observability.
*/
package domain
