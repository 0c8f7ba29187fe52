/*
Package ports defines the driven ports (interfaces) for the modthree engine.

These interfaces decouple the evaluation core from where machine definitions come
from, allowing the engine to work with built-in presets, definition files or a
Loam document repository interchangeably.

# Key Interfaces

  - MachineLoader: Responsible for resolving Machine definitions by ID.
  - Evaluator: The evaluation boundary exposed to input/presentation collaborators.
*/
package ports
