package grover

import "sort"

// Phase tags which operator most recently produced a state. It is display
// bookkeeping only; no operator branches on it.
type Phase string

const (
	PhaseInitial   Phase = "initial"
	PhaseOracle    Phase = "oracle"
	PhaseDiffusion Phase = "diffusion"
	PhaseMeasured  Phase = "measured"
	PhaseIdle      Phase = "idle"
)

/*
State is one immutable snapshot of the simulated register. Every operator
builds a new State from the old one, so independent lineages (a live session
plus a history replay) can coexist and be read without locks. Callers must
not mutate a returned State in place; recorded snapshots rely on that.

Amplitudes are real-valued. The oracle is a sign flip and the diffuser a real
reflection, so a register starting from the real uniform superposition never
acquires an imaginary component.
*/
type State struct {
	NumQubits         int
	NumStates         int // 1 << NumQubits, fixed at construction
	MarkedStates      []int
	Amplitudes        []float64
	Iteration         int
	OptimalIterations int
	ProbabilityMarked float64
	Phase             Phase
}

// Clone returns a deep copy. It is the single defensive-copy primitive the
// operators build on.
func (s *State) Clone() *State {
	amplitudes := make([]float64, len(s.Amplitudes))
	copy(amplitudes, s.Amplitudes)

	marked := make([]int, len(s.MarkedStates))
	copy(marked, s.MarkedStates)

	clone := *s
	clone.Amplitudes = amplitudes
	clone.MarkedStates = marked
	return &clone
}

// TotalProbability sums the squared amplitudes. It stays within floating
// tolerance of 1 at every reachable state; both operators are
// magnitude-preserving.
func (s *State) TotalProbability() float64 {
	total := 0.0
	for _, amplitude := range s.Amplitudes {
		total += amplitude * amplitude
	}
	return total
}

// IsMarked reports whether index is one of the marked states.
func (s *State) IsMarked(index int) bool {
	for _, marked := range s.MarkedStates {
		if marked == index {
			return true
		}
	}
	return false
}

// WithPhase returns a copy of the state carrying the given phase label.
// Measurement does not replace the caller's state, so the measured and idle
// labels are applied through here by whoever drives the display.
func WithPhase(s *State, phase Phase) *State {
	clone := s.Clone()
	clone.Phase = phase
	return clone
}

// AmplitudeEntry pairs a basis-state index with its amplitude and
// probability, for display.
type AmplitudeEntry struct {
	Index       int
	Amplitude   float64
	Probability float64
}

// TopAmplitudes returns the k entries with the largest probability, in
// descending order. Ties resolve to the lower index.
func (s *State) TopAmplitudes(k int) []AmplitudeEntry {
	entries := make([]AmplitudeEntry, len(s.Amplitudes))
	for i, amplitude := range s.Amplitudes {
		entries[i] = AmplitudeEntry{
			Index:       i,
			Amplitude:   amplitude,
			Probability: amplitude * amplitude,
		}
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Probability > entries[b].Probability
	})

	if k > len(entries) {
		k = len(entries)
	}
	return entries[:k]
}

func markedProbability(amplitudes []float64, marked []int) float64 {
	total := 0.0
	for _, index := range marked {
		total += amplitudes[index] * amplitudes[index]
	}
	return total
}
