package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/rail/pkg/rail"
)

// ToChanResults feeds values into a channel as successful results.
func ToChanResults[T any](ctx context.Context, values ...T) <-chan rail.Result[T] {
	in := make(chan rail.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- rail.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChan feeds a single value into a channel.
func ToChan[T any](ctx context.Context, value T) <-chan rail.Result[T] {
	return ToChanResults(ctx, value)
}

// Collect drains the channel into a slice, stopping on context done.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}

// FirstOrDefault returns the first value from the channel, or defaultV when
// the channel closes empty or the context is done.
func FirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	res := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = v
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return res
}
