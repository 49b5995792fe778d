// Package async provides Deferred[T], a memoized single-value future, and
// the operator family that sequences Result values through it.
//
// Each operator takes a deferred result and a user function and returns a new
// deferred result. The return shape of the function picks the operator:
// - Map: T -> U, wrapped as success
// - AndThen: T -> Result[U], taken as-is (join, no double wrap)
// - MapAsync / AndThenAsync: deferred twins of the above
// - Try: T -> (U, error), non-nil error becomes failure
// - Validate: predicate gate failing with a supplied error
// - Tee: success-only side effect
//
// Shared contract: on a failure input the user function is never invoked and
// the failure is carried forward untouched; on a success input the function
// runs inside Protect, which converts a panic into a failure carrying the
// recovered value. Operators never panic and never produce errors of their
// own.
package async
