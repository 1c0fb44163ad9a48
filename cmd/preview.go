package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/session"
	"github.com/soumzer/ferro/internal/storage"
	"github.com/spf13/cobra"
)

var previewProgramName string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the next prescription for each exercise of a program session",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		program, err := st.GetProgramSessionByName(previewProgramName)
		if err != nil {
			return fmt.Errorf("Failed to find program session %s: %w", previewProgramName, err)
		}

		ids := make([]string, 0, len(program.Exercises))
		for _, ex := range program.Exercises {
			ids = append(ids, ex.ExerciseID)
		}
		history, err := st.GetExerciseHistory(ids)
		if err != nil {
			return fmt.Errorf("Failed to load exercise history: %w", err)
		}
		catalog, err := st.GetExerciseCatalog()
		if err != nil {
			return fmt.Errorf("Failed to load exercise catalog: %w", err)
		}

		engine := session.New(*program, history, buildOptions(catalog, models.PhaseNormal))

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("%s\n", green(program.Name))
		for _, pe := range program.Exercises {
			res := engine.Progression(pe)
			fmt.Printf("%s  %d x %d @ %.1f kg  %s\n",
				catalog[pe.ExerciseID].Name, pe.Sets, res.NextReps, res.NextWeightKg, cyan(res.Action))
			fmt.Printf("   %s\n", res.Reason)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewProgramName, "program", "p", "", "Program session name")
	previewCmd.MarkFlagRequired("program")
	rootCmd.AddCommand(previewCmd)
}
