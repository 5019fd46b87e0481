package grover

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestInitializeState(t *testing.T) {
	Convey("Given a 4-qubit configuration with state 7 marked", t, func() {
		state, err := InitializeState(NewConfig(4, 7))
		So(err, ShouldBeNil)

		Convey("The register should be the uniform superposition", func() {
			So(state.NumStates, ShouldEqual, 16)
			So(state.Amplitudes, ShouldHaveLength, 16)
			for _, amplitude := range state.Amplitudes {
				So(amplitude, ShouldAlmostEqual, 0.25, 1e-12)
			}
		})

		Convey("The bookkeeping should be primed", func() {
			So(state.Iteration, ShouldEqual, 0)
			So(state.OptimalIterations, ShouldEqual, 3)
			So(state.ProbabilityMarked, ShouldAlmostEqual, 1.0/16.0, 1e-12)
			So(state.Phase, ShouldEqual, PhaseInitial)
		})
	})

	Convey("Given invalid configurations", t, func() {
		Convey("A zero-qubit register should be rejected", func() {
			_, err := InitializeState(NewConfig(0, 1))
			So(err, ShouldNotBeNil)

			var cfgErr *ConfigurationError
			So(errors.As(err, &cfgErr), ShouldBeTrue)
			So(cfgErr.Field, ShouldEqual, "NumQubits")
		})

		Convey("A marked index past the register should be rejected", func() {
			_, err := InitializeState(NewConfig(4, 16))
			So(err, ShouldNotBeNil)

			var cfgErr *ConfigurationError
			So(errors.As(err, &cfgErr), ShouldBeTrue)
			So(cfgErr.Field, ShouldEqual, "MarkedStates")
		})

		Convey("A negative marked index should be rejected", func() {
			_, err := InitializeState(NewConfig(4, -1))
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a configuration with nothing marked", t, func() {
		state, err := InitializeState(NewConfig(4))
		So(err, ShouldBeNil)

		Convey("The degenerate case should initialize cleanly", func() {
			So(state.OptimalIterations, ShouldEqual, 0)
			So(state.ProbabilityMarked, ShouldEqual, 0)
			So(RunToOptimal(state), ShouldEqual, state)
		})
	})
}

func TestOperators(t *testing.T) {
	Convey("Given an initialized 4-qubit search", t, func() {
		state, err := InitializeState(NewConfig(4, 7))
		So(err, ShouldBeNil)

		Convey("The oracle should flip only the marked amplitude", func() {
			flipped := ApplyOracle(state)

			So(flipped.Amplitudes[7], ShouldAlmostEqual, -0.25, 1e-12)
			for i, amplitude := range flipped.Amplitudes {
				if i != 7 {
					So(amplitude, ShouldAlmostEqual, 0.25, 1e-12)
				}
			}
			So(flipped.Iteration, ShouldEqual, 0)
			So(flipped.Phase, ShouldEqual, PhaseOracle)
		})

		Convey("The oracle should be its own inverse, bit for bit", func() {
			twice := ApplyOracle(ApplyOracle(state))
			So(twice.Amplitudes, ShouldResemble, state.Amplitudes)
		})

		Convey("Operators should never mutate their input", func() {
			_ = ApplyOracle(state)
			_ = ApplyDiffusion(state)
			for _, amplitude := range state.Amplitudes {
				So(amplitude, ShouldAlmostEqual, 0.25, 1e-12)
			}
			So(state.Phase, ShouldEqual, PhaseInitial)
		})

		Convey("The diffuser should advance the iteration and rebook probability", func() {
			next := ApplyDiffusion(ApplyOracle(state))
			So(next.Iteration, ShouldEqual, 1)
			So(next.Phase, ShouldEqual, PhaseDiffusion)
			So(next.ProbabilityMarked, ShouldAlmostEqual,
				markedProbability(next.Amplitudes, next.MarkedStates), 1e-12)
		})
	})
}

func TestIteration(t *testing.T) {
	Convey("Given an initialized 4-qubit search", t, func() {
		state, err := InitializeState(NewConfig(4, 7))
		So(err, ShouldBeNil)

		Convey("Probability should be conserved across arbitrary runs", func() {
			current := state
			for i := 0; i < 25; i++ {
				current = PerformIteration(current)
				So(current.TotalProbability(), ShouldAlmostEqual, 1, 1e-9)
			}
		})

		Convey("The simulation should track the closed form at every step", func() {
			current := state
			for k := 1; k <= 6; k++ {
				current = PerformIteration(current)
				So(current.ProbabilityMarked, ShouldAlmostEqual,
					CalculateSuccessProbability(16, 1, k), 1e-9)
			}
		})

		Convey("Split runs should compose exactly", func() {
			whole := RunIterations(state, 5)
			split := RunIterations(RunIterations(state, 2), 3)
			So(split.Amplitudes, ShouldResemble, whole.Amplitudes)
			So(split.Iteration, ShouldEqual, whole.Iteration)
		})

		Convey("Zero iterations should be a no-op", func() {
			same := RunIterations(state, 0)
			So(same, ShouldEqual, state)
		})

		Convey("RunToOptimal should land on the precomputed optimum", func() {
			optimal := RunToOptimal(state)
			So(optimal.Iteration, ShouldEqual, 3)
			So(optimal.ProbabilityMarked, ShouldAlmostEqual, 0.961, 1e-3)

			Convey("And running it again should change nothing", func() {
				So(RunToOptimal(optimal), ShouldEqual, optimal)
			})
		})

		Convey("The marked state should dominate after the optimal run", func() {
			top := RunToOptimal(state).TopAmplitudes(1)
			So(top, ShouldHaveLength, 1)
			So(top[0].Index, ShouldEqual, 7)
			So(top[0].Probability, ShouldBeGreaterThan, 0.9)
		})
	})

	Convey("Given a search with several marked states", t, func() {
		state, err := InitializeState(NewConfig(6, 3, 17, 42))
		So(err, ShouldBeNil)

		Convey("Conservation and the closed form should both hold", func() {
			current := RunIterations(state, state.OptimalIterations)
			So(current.TotalProbability(), ShouldAlmostEqual, 1, 1e-9)
			So(current.ProbabilityMarked, ShouldAlmostEqual,
				CalculateSuccessProbability(64, 3, current.Iteration), 1e-9)
		})
	})
}

func TestStateBookkeeping(t *testing.T) {
	Convey("Given a live state", t, func() {
		state, err := InitializeState(NewConfig(3, 5))
		So(err, ShouldBeNil)

		Convey("Clone should detach the amplitude storage", func() {
			clone := state.Clone()
			clone.Amplitudes[0] = 99

			So(state.Amplitudes[0], ShouldAlmostEqual, 1/math.Sqrt(8), 1e-12)
		})

		Convey("WithPhase should label a copy and leave the original alone", func() {
			labeled := WithPhase(state, PhaseMeasured)
			So(labeled.Phase, ShouldEqual, PhaseMeasured)
			So(state.Phase, ShouldEqual, PhaseInitial)
			So(labeled.Amplitudes, ShouldResemble, state.Amplitudes)
		})

		Convey("IsMarked should follow the marked set", func() {
			So(state.IsMarked(5), ShouldBeTrue)
			So(state.IsMarked(4), ShouldBeFalse)
		})
	})
}
