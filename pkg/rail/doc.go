// Package rail defines the Result[T] value at the heart of the library:
// a two-variant container that is either a success carrying exactly one
// payload or a failure carrying exactly one error.
//
// Results are immutable; the variant and payload are fixed at construction
// by Success or Fail and never change. Failures are opaque carriers: the
// core never inspects the error, it only moves it forward. FailFrom retags
// a failure across payload types without touching the error, so the same
// failure value rides a whole pipeline unchanged.
//
// Higher-level composition lives in subpackages:
// - async: deferred results and the Map/AndThen/Try operator family
// - flow: fluent chaining over deferred results
// - adapt: bridges between Result and (value, error) / validation outcomes
// - pipe: channel-lifted processing of many results over worker lines
package rail
