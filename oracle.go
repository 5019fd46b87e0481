package grover

/*
ApplyOracle flips the sign of every marked amplitude and leaves the rest
untouched. Magnitudes are preserved, so ProbabilityMarked carries over
unchanged, and the iteration counter does not move; an iteration is the
oracle+diffusion pair and the diffuser owns the increment. Applying the
oracle twice restores the original amplitudes exactly.
*/
func ApplyOracle(s *State) *State {
	next := s.Clone()
	for _, index := range next.MarkedStates {
		next.Amplitudes[index] = -next.Amplitudes[index]
	}
	next.Phase = PhaseOracle
	return next
}
