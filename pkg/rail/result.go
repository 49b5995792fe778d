package rail

import (
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

// FailFrom carries a failure across payload types; id and createdAt are
// preserved so the failure is the same observable value downstream.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		hasResult: false,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
