package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var showSessionCmd = &cobra.Command{
	Use:   "show-session",
	Short: "Show current session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		engine, state, err := resumeEngine(nil)
		if err != nil {
			return err
		}

		duration := time.Since(state.StartTime).Round(time.Second)

		// Define color functions.
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		fmt.Printf("%s\n", green(state.ProgramSessionName))
		if state.Phase == models.PhaseDeload {
			fmt.Printf("%s deload\n", yellow("Phase:"))
		}
		fmt.Printf("%s %s\n", red("Started:"), utils.FormatLocal(state.StartTime))
		fmt.Printf("%s %s\n", red("Duration:"), duration)
		if state.Occupied {
			fmt.Printf("%s equipment occupied\n", yellow("Waiting:"))
		}
		fmt.Println()

		for i, ex := range state.Exercises {
			marker := "  "
			if i == engine.CurrentIndex() {
				marker = cyan("> ")
			}
			status := ""
			if ex.Status == models.ExerciseStatusCompleted {
				status = green(" ✓")
			}
			fmt.Printf("%s%d. %s  %d x %d @ %.1f kg (%d/%d sets)%s\n",
				marker, i+1, ex.Name,
				ex.PrescribedSets, ex.PrescribedReps, ex.PrescribedWeightKg,
				len(ex.LoggedSets), ex.PrescribedSets, status)
		}

		printBucket := func(title string, list []models.RehabExercise) {
			if len(list) == 0 {
				return
			}
			fmt.Printf("\n%s\n", yellow(title))
			for _, ex := range list {
				fmt.Printf("   %s  %d x %s\n", ex.Name, ex.Sets, ex.Reps)
			}
		}
		printBucket("Rehab warm-up:", state.WarmupRehab)
		printBucket("Active-wait pool:", state.ActiveWaitPool)
		printBucket("Rehab cooldown:", state.CooldownRehab)

		if engine.IsSessionComplete() {
			fmt.Printf("\n%s\n", green("Session complete, run end-session to save it"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
