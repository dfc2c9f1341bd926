package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains configuration passed to the puzzle screen.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for reproducible grids, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}

// ResolveSeed replaces a zero seed with a time-based one and returns it.
func (c *RuntimeConfig) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// NewRand returns a generator seeded from the config.
// A zero seed is resolved first so the seed used can be logged and replayed.
func (c *RuntimeConfig) NewRand() *rand.Rand {
	return rand.New(rand.NewSource(c.ResolveSeed()))
}
