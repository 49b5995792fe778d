package async

// Deferred is a single-value future. It resolves exactly once; Await blocks
// until then and afterwards returns the same stored value on every call.
type Deferred[T any] struct {
	done     chan struct{}
	val      T
	panicked any
}

// Go starts fn on its own goroutine and returns a handle to its result.
// A panic in fn is captured and re-raised at Await on the awaiting
// goroutine, where the operator layer absorbs it into a failure.
func Go[T any](fn func() T) *Deferred[T] {
	d := &Deferred[T]{done: make(chan struct{})}

	go func() {
		defer close(d.done)
		defer func() {
			if r := recover(); r != nil {
				d.panicked = r
			}
		}()
		d.val = fn()
	}()

	return d
}

// Resolved returns an already-resolved handle holding v.
func Resolved[T any](v T) *Deferred[T] {
	d := &Deferred[T]{done: make(chan struct{}), val: v}
	close(d.done)
	return d
}

// Await blocks until the deferred value is resolved and returns it.
// A panic captured from the producing function is re-raised here.
func (d *Deferred[T]) Await() T {
	<-d.done
	if d.panicked != nil {
		panic(d.panicked)
	}
	return d.val
}

// Done exposes the resolution signal for select-based composition,
// e.g. racing a chain against a timeout.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

// IsResolved reports whether Await would return without blocking.
func (d *Deferred[T]) IsResolved() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}
