package game

import "strconv"

// Config holds the rules of a session.
type Config struct {
	// StartingTime is the countdown budget in seconds.
	StartingTime float64
	// ReflectionCap ends the session once this many reflections happened.
	ReflectionCap int
	// Seed feeds the start-direction RNG.
	Seed int64
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		StartingTime:  10,
		ReflectionCap: 10,
		Seed:          42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["starting_time"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.StartingTime = parsed
		}
	}
	if v, ok := cfg["reflection_cap"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ReflectionCap = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
