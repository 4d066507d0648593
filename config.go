package longestmatch

import "errors"

// ErrTooManyPatterns is returned when a pattern set exceeds Config.MaxPatterns.
var ErrTooManyPatterns = errors.New("longestmatch: too many patterns")

// Config controls how a Matcher is built.
//
// Example:
//
//	config := longestmatch.DefaultConfig()
//	config.EnablePrefilter = false // always run the automaton from the offset
//	m, err := longestmatch.NewWithConfig(patterns, config)
type Config struct {
	// EnablePrefilter lets searches jump to the next byte that can start a
	// pattern before running the automaton. Results are identical either way.
	// Default: true
	EnablePrefilter bool

	// VerifyInvariants checks the built automaton's structural invariants and
	// panics on violation. The check is linear in the automaton size.
	// Default: true
	VerifyInvariants bool

	// MaxPatterns caps the pattern set size.
	// Default: 100,000
	MaxPatterns int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:  true,
		VerifyInvariants: true,
		MaxPatterns:      100_000,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxPatterns: 1 to 10,000,000
func (c Config) Validate() error {
	if c.MaxPatterns < 1 || c.MaxPatterns > 10_000_000 {
		return &ConfigError{
			Field:   "MaxPatterns",
			Message: "must be between 1 and 10,000,000",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "longestmatch: invalid config: " + e.Field + ": " + e.Message
}
