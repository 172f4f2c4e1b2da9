package resample

import (
	"sobolkit/domain/core"
)

// DefaultMemThreshold caps the element count (n_mc * n_bootstrap *
// n_elements) up to which the vectorized strategy is used.
const DefaultMemThreshold = 10_000_000

// DefaultAlpha gives (1-alpha)*100 percent confidence intervals.
const DefaultAlpha = 0.05

// DefaultNBootstrap is the default number of bootstrap trials.
const DefaultNBootstrap = 1000

// Config holds the bootstrap parameters.
type Config struct {
	// Alpha is the confidence level complement, in the open interval (0,1).
	Alpha float64
	// NBootstrap is the number of bootstrap trials.
	NBootstrap int
	// MemThreshold selects the resampling strategy: vectorized at or below,
	// sequential above. Zero means DefaultMemThreshold.
	MemThreshold int
	// Seed drives index resampling through the RNG port.
	Seed int64
}

// DefaultConfig returns the standard bootstrap configuration.
func DefaultConfig() Config {
	return Config{
		Alpha:        DefaultAlpha,
		NBootstrap:   DefaultNBootstrap,
		MemThreshold: DefaultMemThreshold,
	}
}

func (c Config) withDefaults() Config {
	if c.MemThreshold == 0 {
		c.MemThreshold = DefaultMemThreshold
	}
	return c
}

// Validate checks the bootstrap parameters.
func (c Config) Validate() error {
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return core.NewConfigError("alpha", "must be in the open interval (0,1)")
	}
	if c.NBootstrap <= 0 {
		return core.NewConfigError("n_bootstrap", "must be positive")
	}
	return nil
}
