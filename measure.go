package grover

import (
	"fmt"
	"math/rand"
)

// Measurement is one sampled outcome: the basis-state index and whether it
// is a marked state.
type Measurement struct {
	Result   int
	IsMarked bool
}

/*
Measure samples one outcome from the register's probability distribution:
square each amplitude, draw r in [0,1), and walk the cumulative sum in
index order until it exceeds r. The read does not mutate or replace the
caller's state; unlike physical measurement there is no collapse, so a
caller can keep iterating after sampling. Callers that want the measured
label on a display state apply it through WithPhase.
*/
func Measure(s *State) Measurement {
	return measure(s, rand.Float64())
}

// MeasureUsing draws from an explicit randomness source, for deterministic
// sampling in tests and scripted runs.
func MeasureUsing(s *State, rng *rand.Rand) Measurement {
	return measure(s, rng.Float64())
}

func measure(s *State, r float64) Measurement {
	// Fallback to the final index when rounding leaves the cumulative sum
	// short of 1 before the walk runs out.
	result := s.NumStates - 1

	cumulative := 0.0
	for i, amplitude := range s.Amplitudes {
		cumulative += amplitude * amplitude
		if r < cumulative {
			result = i
			break
		}
	}

	return Measurement{
		Result:   result,
		IsMarked: s.IsMarked(result),
	}
}

// FormatBinary zero-pads the binary representation of index to numQubits
// digits, e.g. FormatBinary(7, 4) == "0111".
func FormatBinary(index, numQubits int) string {
	return fmt.Sprintf("%0*b", numQubits, index)
}
