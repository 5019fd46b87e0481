// Command grover drives the amplitude-vector Grover engine from the
// terminal. It prints the records the engine produces; charting and
// animation belong to callers of the library, not to this binary.
//
// Usage:
//
//	grover run -q 4 -m 7
//	grover history -q 4 -m 7 -n 8
//	grover measure -q 4 -m 7 --shots 1000 --seed 42
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/theapemachine/grover"
)

var (
	numQubits  int
	marked     []int
	iterations int
	shots      int
	seed       int64

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	markedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
)

var rootCmd = &cobra.Command{
	Use:   "grover",
	Short: "Classical simulation of Grover's quantum search",
	Long: "Simulates Grover's search as a real-valued amplitude vector: " +
		"uniform superposition, phase-flip oracle, inversion-about-mean " +
		"diffusion, with the closed-form rotation geometry printed alongside " +
		"as an independent reference.",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a search to its optimal iteration count",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := grover.InitializeState(grover.NewConfig(numQubits, marked...))
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf(
			"Grover search: %d qubits, %d states, marked %v, optimal %d iterations",
			state.NumQubits, state.NumStates, state.MarkedStates, state.OptimalIterations,
		)))
		fmt.Println(labelStyle.Render("iter    P(marked)    analytic    theta"))

		printRow(state)
		for state.Iteration < state.OptimalIterations {
			state = grover.PerformIteration(state)
			printRow(state)
		}

		top := state.TopAmplitudes(1)[0]
		label := grover.FormatBinary(top.Index, state.NumQubits)
		fmt.Printf("most likely outcome: %s (p=%.4f)\n", markedStyle.Render("|"+label+"⟩"), top.Probability)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the snapshot trail for a fixed number of iterations",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshots, err := grover.IterationHistory(grover.NewConfig(numQubits, marked...), iterations)
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf(
			"history: %d qubits, marked %v, %d snapshots", numQubits, marked, len(snapshots),
		)))
		fmt.Println(labelStyle.Render("iter    P(marked)    angle       bar"))

		for _, snapshot := range snapshots {
			bar := strings.Repeat("█", int(snapshot.ProbabilityMarked*40))
			fmt.Printf("%4d    %.6f     %.5f     %s\n",
				snapshot.Iteration, snapshot.ProbabilityMarked, snapshot.GeometricAngle, bar)
		}
		return nil
	},
}

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Sample repeated measurements at the optimal iteration",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := grover.InitializeState(grover.NewConfig(numQubits, marked...))
		if err != nil {
			return err
		}
		state = grover.RunToOptimal(state)

		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		counts := make([]int, state.NumStates)
		markedHits := 0
		for i := 0; i < shots; i++ {
			outcome := grover.MeasureUsing(state, rng)
			counts[outcome.Result]++
			if outcome.IsMarked {
				markedHits++
			}
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf(
			"%d shots at iteration %d, P(marked)=%.4f", shots, state.Iteration, state.ProbabilityMarked,
		)))
		for index, count := range counts {
			if count == 0 {
				continue
			}
			label := "|" + grover.FormatBinary(index, state.NumQubits) + "⟩"
			if state.IsMarked(index) {
				label = markedStyle.Render(label)
			}
			fmt.Printf("%s  %5d  %s\n", label, count, strings.Repeat("▪", count*60/shots))
		}
		fmt.Printf("marked frequency: %.4f\n", float64(markedHits)/float64(shots))
		return nil
	},
}

func printRow(s *grover.State) {
	geo := grover.GetGeometricState(s)
	fmt.Printf("%4d    %.6f     %.6f    %.5f\n",
		s.Iteration, s.ProbabilityMarked, geo.PredictedProbability(), geo.Theta)
}

func main() {
	rootCmd.PersistentFlags().IntVarP(&numQubits, "qubits", "q", 4, "number of simulated qubits")
	rootCmd.PersistentFlags().IntSliceVarP(&marked, "marked", "m", []int{7}, "marked basis-state indices")
	historyCmd.Flags().IntVarP(&iterations, "iterations", "n", 8, "iterations to record")
	measureCmd.Flags().IntVar(&shots, "shots", 1000, "number of measurement samples")
	measureCmd.Flags().Int64Var(&seed, "seed", 0, "randomness seed (0 = time-based)")

	rootCmd.AddCommand(runCmd, historyCmd, measureCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
