package bvh

import "errors"

var (
	// ErrConcurrentModification is returned by a Cursor when the tree it was
	// built from has been mutated since the cursor was constructed.
	ErrConcurrentModification = errors.New("bvh: tree modified during iteration")

	// ErrInvalidIteratorState is returned by Item/Key when called before the
	// first Next, or after Next has returned false.
	ErrInvalidIteratorState = errors.New("bvh: iterator not positioned on an element")

	// ErrInvalidConfig is returned by the tree constructors when an Option
	// produces a nonsensical configuration.
	ErrInvalidConfig = errors.New("bvh: invalid configuration")
)
