// Package flow provides a fluent Chain[T] for sequencing deferred Result
// steps with short-circuit semantics.
//
// A chain has two observable states: running-success and short-circuited
// failure. Each operator applies its step only while the chain is still
// successful; the first failure rides through every remaining step untouched
// and surfaces from Run. Steps execute strictly in attachment order — a step
// awaits its predecessor's deferred result before running.
//
// Key operations:
// - Begin/Start/StartDeferred: open a chain from a value, Result, or deferred
// - Map/MapAsync: transform the successful value (T -> U)
// - Then/ThenAsync: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Ensure: predicate gate failing with a supplied error
// - Tee: run side effects on success without changing the result
// - Run/RunDeferred/Finally: resolve the chain
//
// Type-changing steps are free functions because Go methods cannot introduce
// type parameters; same-type steps are methods.
package flow
