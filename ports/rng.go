package ports

import (
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic resampling
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named
	// operation. The same name and seed must always yield the same stream, so
	// bootstrap results are reproducible and testable.
	SeededStream(name string, seed int64) (*rand.Rand, error)
}
