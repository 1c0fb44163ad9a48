package cmd

import (
	"fmt"

	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/pain"
	"github.com/soumzer/ferro/internal/rehab"
	"github.com/soumzer/ferro/internal/session"
	"github.com/soumzer/ferro/internal/storage"
	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var (
	startProgramName string
	startDeload      bool
)

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Start a new training session from a program session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.SessionExists() {
			return fmt.Errorf("A session is already in progress, end or cancel it first")
		}

		st := storage.NewStorage()

		program, err := st.GetProgramSessionByName(startProgramName)
		if err != nil {
			return fmt.Errorf("Failed to find program session %s: %w", startProgramName, err)
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

		phase := models.PhaseNormal
		if startDeload {
			phase = models.PhaseDeload
		}

		engine := session.New(*program, history, buildOptions(catalog, phase))

		// Pain-driven overrides from the recent rolling window.
		feedback, err := st.GetPainFeedback(painWindowDays())
		if err != nil {
			return fmt.Errorf("Failed to load pain feedback: %w", err)
		}
		if len(feedback) > 0 {
			refs, err := st.GetReferenceWeights()
			if err != nil {
				return fmt.Errorf("Failed to load reference weights: %w", err)
			}
			adjustments := pain.CalculateAdjustments(feedback, engine.Exercises(), catalog, refs)
			engine.ApplyPainAdjustments(adjustments)
			for _, adj := range adjustments {
				fmt.Printf("⚠️  %s: %s (%s)\n", catalog[adj.ExerciseID].Name, adj.Action, adj.Reason)
			}
		}

		// Slot rehab work for any active conditions.
		conditions, err := st.GetConditions()
		if err != nil {
			return fmt.Errorf("Failed to load conditions: %w", err)
		}
		rehabCatalog, err := st.GetRehabCatalog()
		if err != nil {
			return fmt.Errorf("Failed to load rehab catalog: %w", err)
		}
		buckets := rehab.Integrate(conditions, rehabCatalog)

		state := engine.State()
		state.WarmupRehab = buckets.Warmup
		state.ActiveWaitPool = buckets.ActiveWait
		state.CooldownRehab = buckets.Cooldown

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("✅ Started session %s (%s, %d exercises)\n", state.SessionID, program.Name, len(state.Exercises))
		if len(buckets.Warmup) > 0 {
			fmt.Printf("   %d rehab exercises queued for warm-up\n", len(buckets.Warmup))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&startProgramName, "program", "p", "", "Program session name")
	startCmd.Flags().BoolVar(&startDeload, "deload", false, "Run this session as a deload")
	startCmd.MarkFlagRequired("program")
}
