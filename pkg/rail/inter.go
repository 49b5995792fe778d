package rail

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}
