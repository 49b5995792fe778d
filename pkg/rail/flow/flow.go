package flow

import (
	"context"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/async"
)

// Chain wraps a deferred rail.Result with context to enable fluent chaining.
// Every operator returns a new Chain; the wrapped deferred is never replaced
// in place.
type Chain[T any] struct {
	ctx context.Context
	d   *async.Deferred[rail.Result[T]]
}

// Begin creates a new chain from a successful value.
func Begin[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rail.Success(value))
}

// Start creates a new chain from a rail.Result.
func Start[T any](ctx context.Context, result rail.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		d:   async.Resolved(result),
	}
}

// StartDeferred creates a new chain from an in-flight deferred result.
func StartDeferred[T any](ctx context.Context, d *async.Deferred[rail.Result[T]]) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		d:   d,
	}
}

// Context returns the chain's context.
func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

// Run resolves the chain and returns the final result. Safe to call more
// than once; the underlying deferred yields a stable value once resolved.
func (c *Chain[T]) Run() rail.Result[T] {
	return c.d.Await()
}

// RunDeferred returns the wrapped deferred without awaiting it, for callers
// composing with select (timeouts, racing).
func (c *Chain[T]) RunDeferred() *async.Deferred[rail.Result[T]] {
	return c.d
}

// Map chains a pure transformation function.
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		d:   async.Map(c.ctx, c.d, onSuccess),
	}
}

// MapAsync chains a transformation that hands off to another goroutine.
func MapAsync[T, U any](c *Chain[T], onSuccess func(context.Context, T) *async.Deferred[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		d:   async.MapAsync(c.ctx, c.d, onSuccess),
	}
}

// Then chains a function that returns rail.Result[U].
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rail.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		d:   async.AndThen(c.ctx, c.d, onSuccess),
	}
}

// ThenAsync chains a function that returns a deferred rail.Result[U].
func ThenAsync[T, U any](c *Chain[T], onSuccess func(context.Context, T) *async.Deferred[rail.Result[U]]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		d:   async.AndThenAsync(c.ctx, c.d, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error) — like repo calls.
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		d:   async.Try(c.ctx, c.d, tryOnSuccess),
	}
}

// Ensure gates the running value on a predicate, failing with err when the
// predicate rejects it. On an already-failed chain the predicate never runs.
func (c *Chain[T]) Ensure(predicate func(context.Context, T) bool, err error) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		d:   async.Validate(c.ctx, c.d, predicate, err),
	}
}

// Tee performs a side effect on success without changing the result.
func (c *Chain[T]) Tee(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		d:   async.Tee(c.ctx, c.d, onSuccess),
	}
}

// Finally collapses the chain into a final value via handlers.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {

	res := c.d.Await()
	if res.IsSuccess() {
		return onSuccess(c.ctx, res.Result())
	}
	return onFailure(c.ctx, res.Err())
}
