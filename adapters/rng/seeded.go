// Package rng provides the seeded random source used for bootstrap
// resampling. Streams are derived deterministically from an operation
// name and a caller-supplied seed, so repeated analyses reproduce the
// same resampling indices.
package rng

import (
	"math/rand"
)

// SeededSource implements ports.RNGPort with math/rand streams derived
// from a name hash combined with the seed.
type SeededSource struct{}

// NewSeededSource creates a seeded RNG source.
func NewSeededSource() *SeededSource {
	return &SeededSource{}
}

// SeededStream creates a deterministic random number generator for a named operation
func (s *SeededSource) SeededStream(name string, seed int64) (*rand.Rand, error) {
	// Combine the operation name with the seed so distinct operations in one
	// analysis draw from independent streams
	if name != "" {
		seed += int64(hashString(name))
	}
	return rand.New(rand.NewSource(seed)), nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
