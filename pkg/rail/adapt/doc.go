// Package adapt bridges Result values with the shapes the rest of a Go
// program speaks: (value, error) pairs, deferred computations, and external
// validation outcomes.
//
// Unwrap and Await are the only places where a failure turns back into a
// language-level error; inside the core a failure is ordinary data.
package adapt
