package cmd

import (
	"fmt"

	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var freeCmd = &cobra.Command{
	Use:   "free",
	Short: "Mark the equipment as free again",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		engine, state, err := resumeEngine(nil)
		if err != nil {
			return err
		}

		engine.MarkMachineFree()

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Println("✅ Equipment free, back to work")
		return nil
	},
}

var fillerDoneCmd = &cobra.Command{
	Use:   "filler-done [exercise-name]",
	Short: "Record a filler exercise as done so it is not suggested again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		engine, state, err := resumeEngine(nil)
		if err != nil {
			return err
		}

		engine.RecordFiller(args[0])

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("✅ Filler %s recorded\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(freeCmd)
	rootCmd.AddCommand(fillerDoneCmd)
}
