package cmd

import (
	"fmt"
	"strconv"

	"github.com/soumzer/ferro/internal/storage"
	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var swapExerciseCmd = &cobra.Command{
	Use:   "swap-ex [exercise-index] [new-exercise-name]",
	Short: "Swap an exercise in the current session with another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session currently")
		}

		exerciseIndex, err := strconv.Atoi(args[0])
		if err != nil || exerciseIndex < 1 {
			return fmt.Errorf("Invalid exercise index")
		}
		exerciseIndex--

		st := storage.NewStorage()
		engine, state, err := resumeEngine(st)
		if err != nil {
			return err
		}

		if exerciseIndex >= len(state.Exercises) {
			return fmt.Errorf("Exercise index out of range")
		}

		newExercise, err := st.GetExerciseByName(args[1])
		if err != nil {
			return fmt.Errorf("Failed to find exercise %s: %w", args[1], err)
		}

		engine.Substitute(exerciseIndex, newExercise.ID, newExercise.Name)

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		fmt.Printf("✅ Swapped exercise to %s\n", newExercise.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapExerciseCmd)
}
