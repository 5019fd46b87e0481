package grover

/*
Snapshot records one point of a search trajectory: the iteration count, a
defensive copy of the amplitudes, the simulated marked-state probability,
and the closed-form rotation angle at that iteration. The angle comes from
the geometry alone, so a recorded trajectory carries its own analytic
reference curve alongside the simulated one.
*/
type Snapshot struct {
	Iteration         int
	Amplitudes        []float64
	ProbabilityMarked float64
	GeometricAngle    float64
}

/*
IterationHistory replays a search from scratch and records a snapshot
before any iteration and after each of maxIterations full steps,
maxIterations+1 snapshots in total. The replay drives its own fresh state,
so recording a trajectory never disturbs a live session, and each snapshot
copies its amplitudes so later activity cannot reach back into the record.
*/
func IterationHistory(cfg *Config, maxIterations int) ([]Snapshot, error) {
	state, err := InitializeState(cfg)
	if err != nil {
		return nil, err
	}

	theta0 := CalculateTheta0(state.NumStates, len(state.MarkedStates))

	snapshots := make([]Snapshot, 0, maxIterations+1)
	snapshots = append(snapshots, record(state, theta0))

	for i := 0; i < maxIterations; i++ {
		state = PerformIteration(state)
		snapshots = append(snapshots, record(state, theta0))
	}

	return snapshots, nil
}

func record(s *State, theta0 float64) Snapshot {
	amplitudes := make([]float64, len(s.Amplitudes))
	copy(amplitudes, s.Amplitudes)

	return Snapshot{
		Iteration:         s.Iteration,
		Amplitudes:        amplitudes,
		ProbabilityMarked: s.ProbabilityMarked,
		GeometricAngle:    float64(2*s.Iteration+1) * theta0,
	}
}
