// geometry.go
package grover

import "math"

/*
GeometricState is the closed-form view of a register. Each full Grover step
rotates the state vector by 2*theta0 in the plane spanned by the marked and
unmarked superpositions, so after k steps the angle is (2k+1)*theta0. The
analytic angle is computed from N, M and the iteration count alone, which
makes it an independent reference the simulated amplitudes must agree with.
*/
type GeometricState struct {
	Theta      float64
	Theta0     float64
	DeltaTheta float64
}

// PredictedProbability is sin²(theta), the analytic marked-state
// probability at this point of the rotation.
func (g GeometricState) PredictedProbability() float64 {
	s := math.Sin(g.Theta)
	return s * s
}

// CalculateTheta0 returns asin(sqrt(M/N)), the half-angle between the
// uniform superposition and the all-unmarked axis. Degenerate inputs
// resolve to 0 rather than producing NaN.
func CalculateTheta0(n, m int) float64 {
	if m == 0 || n == 0 {
		return 0
	}
	return math.Asin(math.Sqrt(float64(m) / float64(n)))
}

// CalculateOptimalIterations returns round((π/4)·sqrt(N/M)), the iteration
// count that maximizes marked-state probability. Zero when nothing is
// marked or everything is; amplification has no target then.
func CalculateOptimalIterations(n, m int) int {
	if m == 0 || m >= n {
		return 0
	}
	return int(math.Round(math.Pi / 4 * math.Sqrt(float64(n)/float64(m))))
}

// CalculateSuccessProbability returns sin²((2k+1)·theta0), the marked-state
// probability after k full iterations, independent of any live state.
func CalculateSuccessProbability(n, m, k int) float64 {
	theta0 := CalculateTheta0(n, m)
	s := math.Sin(float64(2*k+1) * theta0)
	return s * s
}

// GetGeometricState computes the rotation angles for a register at its
// current iteration.
func GetGeometricState(s *State) GeometricState {
	theta0 := CalculateTheta0(s.NumStates, len(s.MarkedStates))
	return GeometricState{
		Theta:      float64(2*s.Iteration+1) * theta0,
		Theta0:     theta0,
		DeltaTheta: 2 * theta0,
	}
}
