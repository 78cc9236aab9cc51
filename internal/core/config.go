package core

// RuntimeConfig contains configuration passed to hosts at initialization.
type RuntimeConfig struct {
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning; 0 means time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}
