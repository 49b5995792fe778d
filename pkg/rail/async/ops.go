package async

import (
	"context"
	"fmt"

	"github.com/ib-77/rail/pkg/rail"
)

// PanicError carries a non-error panic value absorbed by an operator.
// Value holds the recovered value verbatim.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AsError converts a recovered panic value into an error, keeping error
// values as-is.
func AsError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return PanicError{Value: v}
}

// Protect invokes fn and converts a panic into a failure result. Operators
// route every user-supplied function through this single boundary, so the
// operators themselves never panic.
func Protect[T any](fn func() rail.Result[T]) (res rail.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = rail.Fail[T](AsError(r))
		}
	}()
	return fn()
}

// Map transforms a successful deferred value with a pure function.
func Map[In, Out any](ctx context.Context, d *Deferred[rail.Result[In]],
	onSuccess func(ctx context.Context, r In) Out) *Deferred[rail.Result[Out]] {

	return Go(func() rail.Result[Out] {
		input := d.Await()
		if input.IsFailure() {
			return rail.FailFrom[In, Out](input)
		}
		return Protect(func() rail.Result[Out] {
			return rail.Success(onSuccess(ctx, input.Result()))
		})
	})
}

// AndThen switches to the result returned by onSuccess. The returned result
// is taken as-is, never wrapped again.
func AndThen[In, Out any](ctx context.Context, d *Deferred[rail.Result[In]],
	onSuccess func(ctx context.Context, r In) rail.Result[Out]) *Deferred[rail.Result[Out]] {

	return Go(func() rail.Result[Out] {
		input := d.Await()
		if input.IsFailure() {
			return rail.FailFrom[In, Out](input)
		}
		return Protect(func() rail.Result[Out] {
			return onSuccess(ctx, input.Result())
		})
	})
}

// MapAsync transforms a successful deferred value with a function that is
// itself deferred. Semantically identical to Map; kept for call sites that
// hand off to another goroutine.
func MapAsync[In, Out any](ctx context.Context, d *Deferred[rail.Result[In]],
	onSuccess func(ctx context.Context, r In) *Deferred[Out]) *Deferred[rail.Result[Out]] {

	return Go(func() rail.Result[Out] {
		input := d.Await()
		if input.IsFailure() {
			return rail.FailFrom[In, Out](input)
		}
		return Protect(func() rail.Result[Out] {
			return rail.Success(onSuccess(ctx, input.Result()).Await())
		})
	})
}

// AndThenAsync switches to a deferred result, awaiting it before handing the
// inner result on. Like AndThen, the inner result is never double-wrapped.
func AndThenAsync[In, Out any](ctx context.Context, d *Deferred[rail.Result[In]],
	onSuccess func(ctx context.Context, r In) *Deferred[rail.Result[Out]]) *Deferred[rail.Result[Out]] {

	return Go(func() rail.Result[Out] {
		input := d.Await()
		if input.IsFailure() {
			return rail.FailFrom[In, Out](input)
		}
		return Protect(func() rail.Result[Out] {
			return onSuccess(ctx, input.Result()).Await()
		})
	})
}

// Try calls a function returning (Out, error) and converts a non-nil error
// into a failure.
func Try[In, Out any](ctx context.Context, d *Deferred[rail.Result[In]],
	onTryExecute func(ctx context.Context, r In) (Out, error)) *Deferred[rail.Result[Out]] {

	return Go(func() rail.Result[Out] {
		input := d.Await()
		if input.IsFailure() {
			return rail.FailFrom[In, Out](input)
		}
		return Protect(func() rail.Result[Out] {
			out, err := onTryExecute(ctx, input.Result())
			if err != nil {
				return rail.Fail[Out](err)
			}
			return rail.Success(out)
		})
	})
}

// Validate keeps a successful value that satisfies the predicate and fails
// it with err otherwise. The failure state is checked before the predicate
// runs, so an existing failure is never masked.
func Validate[T any](ctx context.Context, d *Deferred[rail.Result[T]],
	predicate func(ctx context.Context, r T) bool, err error) *Deferred[rail.Result[T]] {

	return Go(func() rail.Result[T] {
		input := d.Await()
		if input.IsFailure() {
			return input
		}
		return Protect(func() rail.Result[T] {
			if predicate(ctx, input.Result()) {
				return input
			}
			return rail.Fail[T](err)
		})
	})
}

// Tee runs a side effect on a successful value without changing the result.
func Tee[T any](ctx context.Context, d *Deferred[rail.Result[T]],
	onSuccess func(ctx context.Context, r T)) *Deferred[rail.Result[T]] {

	return Go(func() rail.Result[T] {
		input := d.Await()
		if input.IsFailure() {
			return input
		}
		return Protect(func() rail.Result[T] {
			onSuccess(ctx, input.Result())
			return input
		})
	})
}
