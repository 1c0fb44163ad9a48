package cmd

import (
	"fmt"
	"strings"

	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/storage"
	"github.com/spf13/cobra"
)

// historyCmd shows the most recent logged performance of an exercise.
var historyCmd = &cobra.Command{
	Use:   "history [exercise-name]",
	Short: "Show the last logged performance of an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		ex, err := st.GetExerciseByName(args[0])
		if err != nil {
			return fmt.Errorf("Failed to find exercise %s: %w", args[0], err)
		}

		history, err := st.GetExerciseHistory([]string{ex.ID})
		if err != nil {
			return fmt.Errorf("Failed to load exercise history: %w", err)
		}

		entry, ok := history[ex.ID]
		if !ok {
			fmt.Printf("No logged sessions for %s yet\n", ex.Name)
			return nil
		}

		fmt.Print(formatHistoryEntry(ex.Name, entry))
		return nil
	},
}

// formatHistoryEntry renders one exercise's last performance.
func formatHistoryEntry(name string, entry models.ExerciseHistoryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", name)
	fmt.Fprintf(&b, "  Weight: %.1f kg\n", entry.WeightKg)
	for i, reps := range entry.RepsPerSet {
		fmt.Fprintf(&b, "  Set %d: %d reps\n", i+1, reps)
	}
	fmt.Fprintf(&b, "  Avg RIR: %.1f | Avg rest: %.0f sec\n", entry.AvgRIR, entry.AvgRestSeconds)
	return b.String()
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
