package cmd

import (
	"fmt"

	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var completeExCmd = &cobra.Command{
	Use:   "complete-ex",
	Short: "Mark the current exercise done and advance to the next one",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		engine, state, err := resumeEngine(nil)
		if err != nil {
			return err
		}

		if engine.IsSessionComplete() {
			return fmt.Errorf("Session is already complete")
		}

		done := engine.CurrentExercise().Name
		engine.CompleteExercise()

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("✅ Completed %s\n", done)
		if engine.IsSessionComplete() {
			fmt.Println("   Session done, run end-session to save it")
		} else {
			fmt.Printf("   Next up: %s\n", engine.CurrentExercise().Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeExCmd)
}
