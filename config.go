package grover

import "fmt"

// Config describes a search problem: the register width and the basis
// states the oracle marks.
type Config struct {
	NumQubits    int
	MarkedStates []int
}

func NewConfig(numQubits int, markedStates ...int) *Config {
	return &Config{
		NumQubits:    numQubits,
		MarkedStates: markedStates,
	}
}

// Validate checks the configuration against the register bounds. This is
// the only place invalid input is rejected; every operator downstream
// assumes a valid state.
func (c *Config) Validate() error {
	if c.NumQubits < 1 {
		return &ConfigurationError{
			Field:  "NumQubits",
			Reason: fmt.Sprintf("must be at least 1, got %d", c.NumQubits),
		}
	}

	numStates := 1 << c.NumQubits
	for _, index := range c.MarkedStates {
		if index < 0 || index >= numStates {
			return &ConfigurationError{
				Field:  "MarkedStates",
				Reason: fmt.Sprintf("index %d outside [0, %d)", index, numStates),
			}
		}
	}

	return nil
}

// ConfigurationError reports an invalid search configuration.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}
