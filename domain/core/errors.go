package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidArgument covers malformed caller input: empty samples,
	// bad percentile counts, non-ascending percentile sequences,
	// mismatched name lists.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrShapeMismatch is returned when CDFs of different lengths are
	// combined.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIndexMismatch is returned when CDFs with incompatible tick
	// indices are combined.
	ErrIndexMismatch = errors.New("index mismatch")

	// ErrDataNotFound is returned when a requested modality or record is
	// absent from a dataset.
	ErrDataNotFound = errors.New("data not found")
)

// Error constructors with context

func NewInvalidArgumentError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, field, reason)
}

func NewShapeMismatchError(want, got int) error {
	return fmt.Errorf("%w: expected CDF length %d, got %d", ErrShapeMismatch, want, got)
}

func NewIndexMismatchError(want, got int) error {
	return fmt.Errorf("%w: expected tick base %d, got %d", ErrIndexMismatch, want, got)
}

func NewDataNotFoundError(kind string, key string) error {
	return fmt.Errorf("%w: %s %q", ErrDataNotFound, kind, key)
}

// Error checking helpers

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsShapeMismatch(err error) bool {
	return errors.Is(err, ErrShapeMismatch)
}

func IsIndexMismatch(err error) bool {
	return errors.Is(err, ErrIndexMismatch)
}

func IsDataNotFound(err error) bool {
	return errors.Is(err, ErrDataNotFound)
}
