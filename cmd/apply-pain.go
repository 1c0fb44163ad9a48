package cmd

import (
	"fmt"

	"github.com/soumzer/ferro/internal/pain"
	"github.com/soumzer/ferro/internal/storage"
	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var applyPainCmd = &cobra.Command{
	Use:   "apply-pain",
	Short: "Re-resolve recent pain feedback against the remaining exercises",
	Long: `Recomputes pain-driven overrides from the rolling pain window and applies
them to the live session. Useful after logging a painful set mid-session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		st := storage.NewStorage()
		engine, state, err := resumeEngine(st)
		if err != nil {
			return err
		}

		feedback, err := st.GetPainFeedback(painWindowDays())
		if err != nil {
			return fmt.Errorf("Failed to load pain feedback: %w", err)
		}
		if len(feedback) == 0 {
			fmt.Println("No recent pain reports, nothing to adjust")
			return nil
		}

		catalog, err := st.GetExerciseCatalog()
		if err != nil {
			return fmt.Errorf("Failed to load exercise catalog: %w", err)
		}
		refs, err := st.GetReferenceWeights()
		if err != nil {
			return fmt.Errorf("Failed to load reference weights: %w", err)
		}

		adjustments := pain.CalculateAdjustments(feedback, engine.Exercises(), catalog, refs)
		if len(adjustments) == 0 {
			fmt.Println("No exercises affected")
			return nil
		}
		engine.ApplyPainAdjustments(adjustments)

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		for _, adj := range adjustments {
			fmt.Printf("⚠️  %s: %s (%s)\n", catalog[adj.ExerciseID].Name, adj.Action, adj.Reason)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyPainCmd)
}
