// Package kverrors defines the sentinel errors shared by the bt and bs
// index engines.
package kverrors

import "errors"

var (
	// ErrIoFailure wraps any underlying read/write/seek/open/truncate
	// failure. Returned from Open/BuildIndex/OpenIndex; inside a lookup it
	// collapses the search to not-found instead of surfacing here.
	ErrIoFailure = errors.New("kvidx: io failure")

	// ErrInvalidMode is returned when a mutation is attempted on an engine
	// that is closed or open in read mode.
	ErrInvalidMode = errors.New("kvidx: invalid mode for operation")

	// ErrDuplicateKey is returned by Insert when the key already exists.
	// The tree is left unchanged: the error surfaces after the recursion
	// has already touched the working buffer but before numItems is
	// incremented, so on-disk state stays consistent.
	ErrDuplicateKey = errors.New("kvidx: duplicate key")

	// ErrEmptyBuffer is returned by BuildIndex when no records were added.
	ErrEmptyBuffer = errors.New("kvidx: builder has no records")

	// ErrNotOpen is returned by read operations on a closed reader/engine.
	ErrNotOpen = errors.New("kvidx: index not open")
)
