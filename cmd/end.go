package cmd

import (
	"fmt"
	"time"

	"github.com/soumzer/ferro/internal/storage"
	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "End the current training session and save it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session: %w", err)
		}

		st := storage.NewStorage()

		if err := st.SaveSession(state); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to clear session: %w", err)
		}

		duration := time.Since(state.StartTime).Round(time.Minute)
		fmt.Printf("✅ Saved %s (%s)\n", state.ProgramSessionName, duration)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endSessionCmd)
}
