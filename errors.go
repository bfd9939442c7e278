package rqr

import "errors"

// Sentinel errors returned by this package. Callers should match them
// with errors.Is; wrapped context is added via fmt.Errorf's %w.
var (
	// ErrCapacityExceeded is returned when no version in [1,40] has
	// enough capacity for the requested mode, error correction level,
	// and input length, or when a caller-forced version is too small
	// for the input.
	ErrCapacityExceeded = errors.New("rqr: capacity exceeded")

	// ErrInvalidMode is returned when a caller-forced mode cannot
	// represent the given input without loss.
	ErrInvalidMode = errors.New("rqr: mode cannot represent input")

	// ErrInvalidVersion is returned when a caller-forced version is
	// outside [1,40].
	ErrInvalidVersion = errors.New("rqr: invalid version")

	// ErrInvalidMask is returned when a caller-forced mask is outside
	// [0,7].
	ErrInvalidMask = errors.New("rqr: invalid mask")
)
