/*
Package observability provides tools for monitoring the modthree engine.

Metrics translates engine lifecycle hooks into Prometheus collectors, so any
evaluation (library call, CLI, self-test) can be counted without the engine
depending on a metrics backend.
*/
package observability
