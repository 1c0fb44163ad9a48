package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/soumzer/ferro/internal/config"
	"github.com/soumzer/ferro/internal/progression"
	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var warmupCmd = &cobra.Command{
	Use:   "warmup",
	Short: "Show the warm-up ramp for the current exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		engine, _, err := resumeEngine(nil)
		if err != nil {
			return err
		}

		if engine.IsSessionComplete() {
			return fmt.Errorf("Session is already complete")
		}

		var weights []float64
		if cfg, err := config.LoadConfig(); err == nil {
			weights = cfg.Training.AvailableWeights
		}

		ex := engine.CurrentExercise()
		sets := progression.GenerateWarmupSets(ex.PrescribedWeightKg, weights)

		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Printf("%s %s (working weight %.1f kg)\n", cyan("Warm-up for"), ex.Name, ex.PrescribedWeightKg)
		if len(sets) == 0 {
			fmt.Println("   No warm-up needed")
			return nil
		}
		for i, set := range sets {
			if set.WeightKg == 0 {
				fmt.Printf("   %d. bodyweight x %d\n", i+1, set.Reps)
			} else {
				fmt.Printf("   %d. %.1f kg x %d\n", i+1, set.WeightKg, set.Reps)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(warmupCmd)
}
