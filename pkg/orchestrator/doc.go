// Package orchestrator wires the loader, transformer, decorator, audit and
// renderer steps into a single Generate call, with dependency injection
// friendly options for callers that need to swap any stage.
package orchestrator
