package grover

/*
ApplyDiffusion reflects every amplitude about the vector mean, the standard
Grover diffuser 2|s⟩⟨s|−I expressed in the computational basis. The
reflection is orthogonal, so total probability is conserved. This is the
operator that completes an iteration: the counter advances by one and
ProbabilityMarked is recomputed from the new amplitudes.
*/
func ApplyDiffusion(s *State) *State {
	next := s.Clone()

	mean := 0.0
	for _, amplitude := range next.Amplitudes {
		mean += amplitude
	}
	mean /= float64(next.NumStates)

	for i := range next.Amplitudes {
		next.Amplitudes[i] = 2*mean - next.Amplitudes[i]
	}

	next.Iteration++
	next.ProbabilityMarked = markedProbability(next.Amplitudes, next.MarkedStates)
	next.Phase = PhaseDiffusion
	return next
}
