package cmd

import (
	"fmt"

	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Cancel the current training session without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session to cancel")
		}

		// Name what is being thrown away, nothing here reaches the database.
		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session: %w", err)
		}

		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to cancel session: %w", err)
		}

		fmt.Printf("✅ Cancelled %s, no sets were saved\n", state.ProgramSessionName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelSessionCmd)
}
