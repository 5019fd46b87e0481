package grover

import (
	"math"

	"github.com/theapemachine/errnie"
)

/*
InitializeState builds the uniform superposition for a configuration: every
amplitude set to 1/sqrt(N), iteration zero, and the optimal iteration count
precomputed from the rotation geometry. It is the one fallible boundary of
the engine; a *ConfigurationError comes back when the register width or a
marked index is out of bounds.
*/
func InitializeState(cfg *Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	numStates := 1 << cfg.NumQubits
	amplitudes := make([]float64, numStates)
	initial := 1.0 / math.Sqrt(float64(numStates))
	for i := range amplitudes {
		amplitudes[i] = initial
	}

	marked := make([]int, len(cfg.MarkedStates))
	copy(marked, cfg.MarkedStates)

	state := &State{
		NumQubits:         cfg.NumQubits,
		NumStates:         numStates,
		MarkedStates:      marked,
		Amplitudes:        amplitudes,
		Iteration:         0,
		OptimalIterations: CalculateOptimalIterations(numStates, len(marked)),
		ProbabilityMarked: markedProbability(amplitudes, marked),
		Phase:             PhaseInitial,
	}

	errnie.Info(
		"InitializeState - qubits %v, states %v, marked %v, optimal %v",
		cfg.NumQubits,
		numStates,
		len(marked),
		state.OptimalIterations,
	)

	return state, nil
}
