// Package unrolled provides an unrolled linked list: an indexable sequence
// stored as a chain of fixed-capacity chunks, with cheap insertion and
// removal and better locality than a node-per-element list.
package unrolled

import "errors"

// Index errors
var (
	// ErrIndexOutOfRange indicates that an index is outside the legal bound
	// for the operation.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmpty indicates that an element was requested from an empty list.
	ErrEmpty = errors.New("list is empty")
)

// Cursor errors
var (
	// ErrInvalidCursor indicates that a cursor has stepped off the list.
	ErrInvalidCursor = errors.New("cursor is not on an element")
)

// Configuration errors
var (
	// ErrInvalidCapacity indicates a negative chunk capacity in Options.
	ErrInvalidCapacity = errors.New("chunk capacity must be positive")
)

// Chain structure errors
var (
	// ErrCorrupted indicates that the chunk chain disagrees with the list's
	// bookkeeping (should not happen). Operations that detect it panic.
	ErrCorrupted = errors.New("chunk chain corrupted")
)
