package adapt

import (
	"context"
	"errors"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/async"
)

// ErrValidation is reported when a validation outcome carries no error of
// its own.
var ErrValidation = errors.New("validation failed")

// FromTuple converts a standard (value, error) pair into a Result.
func FromTuple[T any](value T, err error) rail.Result[T] {
	if err != nil {
		return rail.Fail[T](err)
	}
	return rail.Success(value)
}

// Unwrap converts a Result back into a (value, error) pair; a failure
// surfaces as a non-nil error.
func Unwrap[T any](r rail.Result[T]) (T, error) {
	if r.IsFailure() {
		var zero T
		return zero, r.Err()
	}
	return r.Result(), nil
}

// Await resolves a deferred Result into a (value, error) pair, rejecting
// on failure.
func Await[T any](d *async.Deferred[rail.Result[T]]) (T, error) {
	return Unwrap(d.Await())
}

// Future launches a fallible computation as a deferred Result. A panic in
// fn is absorbed into a failure, matching the operator contract.
func Future[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *async.Deferred[rail.Result[T]] {
	return async.Go(func() rail.Result[T] {
		return async.Protect(func() rail.Result[T] {
			return FromTuple(fn(ctx))
		})
	})
}

// Outcome mirrors the report shape of external validation libraries:
// a verdict flag, an optional payload, and an optional error.
type Outcome[T any] struct {
	Valid bool
	Data  *T
	Err   error
}

// Validation maps a validation outcome onto a Result. Only a valid outcome
// with a present payload succeeds; anything else fails with the outcome's
// error, or ErrValidation when none was supplied.
func Validation[T any](o Outcome[T]) rail.Result[T] {
	if o.Valid && o.Data != nil {
		return rail.Success(*o.Data)
	}
	if o.Err != nil {
		return rail.Fail[T](o.Err)
	}
	return rail.Fail[T](ErrValidation)
}
