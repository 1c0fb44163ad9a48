package cmd

import (
	"fmt"
	"time"

	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var (
	logSetWeight    float64
	logSetReps      int
	logSetRIR       int
	logSetRest      int
	logSetPainZone  string
	logSetPainLevel int
)

var logSetCmd = &cobra.Command{
	Use:   "log-set",
	Short: "Log a completed set for the current exercise",
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

		ex := engine.CurrentExercise()
		set := models.SessionSet{
			PrescribedReps:        ex.PrescribedReps,
			PrescribedWeightKg:    ex.PrescribedWeightKg,
			ActualReps:            logSetReps,
			ActualWeightKg:        logSetWeight,
			RepsInReserve:         logSetRIR,
			RestPrescribedSeconds: ex.RestSeconds,
			RestActualSeconds:     logSetRest,
			CompletedAt:           time.Now().UTC(),
		}
		if logSetPainZone != "" {
			set.PainReported = true
			set.PainZone = logSetPainZone
			set.PainLevel = logSetPainLevel
		}

		engine.LogSet(set)

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("✅ Logged set %d of %d for %s\n", len(ex.LoggedSets), ex.PrescribedSets, ex.Name)
		if engine.IsCurrentExerciseComplete() {
			fmt.Println("   All prescribed sets done, run complete-ex to move on")
		} else {
			fmt.Printf("   Rest %ds, then set %d\n", ex.RestSeconds, engine.CurrentSetNumber())
		}
		return nil
	},
}

func init() {
	logSetCmd.Flags().Float64VarP(&logSetWeight, "weight", "w", 0, "Weight used for the set")
	logSetCmd.Flags().IntVarP(&logSetReps, "reps", "r", 0, "Reps performed")
	logSetCmd.Flags().IntVar(&logSetRIR, "rir", 0, "Reps in reserve")
	logSetCmd.Flags().IntVar(&logSetRest, "rest", 0, "Actual rest taken before the set, in seconds")
	logSetCmd.Flags().StringVar(&logSetPainZone, "pain-zone", "", "Body zone if pain came up during the set")
	logSetCmd.Flags().IntVar(&logSetPainLevel, "pain-level", 0, "Pain level 0-10")
	logSetCmd.MarkFlagRequired("reps")
	rootCmd.AddCommand(logSetCmd)
}
