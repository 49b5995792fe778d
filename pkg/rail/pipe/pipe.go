package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/async"
)

// Engine processes one result into one deferred result.
type Engine[In, Out any] func(ctx context.Context, input rail.Result[In]) *async.Deferred[rail.Result[Out]]

// Run fans the engine over the input channel on the given number of worker
// lines, keeping the payload type.
func Run[T any](ctx context.Context, inputCh <-chan rail.Result[T],
	engine Engine[T, T], lines int) <-chan rail.Result[T] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout fans the engine over the input channel on the given number of
// worker lines, switching the payload type. The output channel closes after
// all lines drain.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In],
	engine Engine[In, Out], lines int) <-chan rail.Result[Out] {

	out := make(chan rail.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// locomotive is one worker line: pull an input, drive the engine, push the
// resolved output. The context gates every channel hop.
func locomotive[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In],
	outCh chan<- rail.Result[Out], engine Engine[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			d := engine(ctx, in)

			select {
			case <-ctx.Done():
				return
			case <-d.Done():
			}

			select {
			case <-ctx.Done():
				return
			case outCh <- d.Await():
			}
		}
	}
}

// LiftMap turns a pure transformation into an engine.
func LiftMap[In, Out any](onSuccess func(ctx context.Context, r In) Out) Engine[In, Out] {
	return func(ctx context.Context, input rail.Result[In]) *async.Deferred[rail.Result[Out]] {
		return async.Map(ctx, async.Resolved(input), onSuccess)
	}
}

// LiftThen turns a result-returning function into an engine.
func LiftThen[In, Out any](onSuccess func(ctx context.Context, r In) rail.Result[Out]) Engine[In, Out] {
	return func(ctx context.Context, input rail.Result[In]) *async.Deferred[rail.Result[Out]] {
		return async.AndThen(ctx, async.Resolved(input), onSuccess)
	}
}

// LiftTry turns a (value, error) function into an engine.
func LiftTry[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return func(ctx context.Context, input rail.Result[In]) *async.Deferred[rail.Result[Out]] {
		return async.Try(ctx, async.Resolved(input), onTryExecute)
	}
}

// LiftValidate turns a predicate and error into an engine.
func LiftValidate[T any](predicate func(ctx context.Context, r T) bool, err error) Engine[T, T] {
	return func(ctx context.Context, input rail.Result[T]) *async.Deferred[rail.Result[T]] {
		return async.Validate(ctx, async.Resolved(input), predicate, err)
	}
}

// Finalize maps every result on the channel to a plain value via handlers.
func Finalize[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				var v Out
				if in.IsSuccess() {
					v = onSuccess(ctx, in.Result())
				} else {
					v = onFailure(ctx, in.Err())
				}

				select {
				case <-ctx.Done():
					return
				case out <- v:
				}
			}
		}
	}()

	return out
}
