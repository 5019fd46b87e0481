package grover

// PerformIteration runs one full Grover step: oracle, then diffusion.
func PerformIteration(s *State) *State {
	return ApplyDiffusion(ApplyOracle(s))
}

// RunIterations applies count full steps in sequence. Zero is a no-op.
// Splitting a run commutes with composing it: running a+b steps equals
// running a steps and then b.
func RunIterations(s *State, count int) *State {
	for i := 0; i < count; i++ {
		s = PerformIteration(s)
	}
	return s
}

// RunToOptimal advances the state to its precomputed optimal iteration
// count. At or past the optimum it returns the state unchanged.
func RunToOptimal(s *State) *State {
	remaining := s.OptimalIterations - s.Iteration
	if remaining <= 0 {
		return s
	}
	return RunIterations(s, remaining)
}
