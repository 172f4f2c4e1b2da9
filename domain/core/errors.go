package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Configuration errors
	ErrConfig         = errors.New("invalid analysis configuration")
	ErrMissingSampler = fmt.Errorf("%w: no sampler specification supplied", ErrConfig)

	// Input errors
	ErrInput           = errors.New("malformed sample input")
	ErrEmptyInput      = fmt.Errorf("%w: empty sample table", ErrInput)
	ErrRunLabel        = fmt.Errorf("%w: bad run label", ErrInput)
	ErrRunGap          = fmt.Errorf("%w: run index gap", ErrInput)
	ErrOutputIndex     = fmt.Errorf("%w: output index out of range", ErrInput)
	ErrMissingQoIValue = fmt.Errorf("%w: quantity of interest missing from table", ErrInput)

	// Shape errors
	ErrShape         = errors.New("sample shape mismatch")
	ErrBlockSize     = fmt.Errorf("%w: sample count not divisible by block size", ErrShape)
	ErrUnevenWidths  = fmt.Errorf("%w: evaluations differ in width", ErrShape)
	ErrEmptySequence = fmt.Errorf("%w: empty evaluation sequence", ErrShape)
)

// Error constructors with context
func NewConfigError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrConfig, field, reason)
}

func NewShapeError(reason string) error {
	return fmt.Errorf("%w: %s", ErrShape, reason)
}

func NewBlockSizeError(count, blockSize int) error {
	return fmt.Errorf("%w: %d samples, block size %d", ErrBlockSize, count, blockSize)
}

func NewRunLabelError(label string) error {
	return fmt.Errorf("%w: %q", ErrRunLabel, label)
}

func NewOutputIndexError(index, width int) error {
	return fmt.Errorf("%w: index %d, width %d", ErrOutputIndex, index, width)
}

// Error checking helpers
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfig)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrInput)
}

func IsShapeError(err error) bool {
	return errors.Is(err, ErrShape)
}
