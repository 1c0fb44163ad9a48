package cmd

import (
	"fmt"
	"sort"

	"github.com/soumzer/ferro/internal/filler"
	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/storage"
	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var occupiedCmd = &cobra.Command{
	Use:   "occupied",
	Short: "Mark the current equipment as taken and get a filler suggestion",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		st := storage.NewStorage()
		engine, state, err := resumeEngine(st)
		if err != nil {
			return err
		}

		if engine.IsSessionComplete() {
			return fmt.Errorf("Session is already complete")
		}

		engine.MarkOccupied()

		catalog, err := st.GetExerciseCatalog()
		if err != nil {
			return fmt.Errorf("Failed to load exercise catalog: %w", err)
		}

		var catalogList []models.Exercise
		for _, ex := range catalog {
			catalogList = append(catalogList, ex)
		}
		sort.Slice(catalogList, func(i, j int) bool { return catalogList[i].Name < catalogList[j].Name })

		current := engine.CurrentExercise()
		suggestion := filler.Suggest(filler.Input{
			ActiveWaitPool:      state.ActiveWaitPool,
			NextExerciseMuscles: catalog[current.ExerciseID].PrimaryMuscles,
			CompletedFillers:    state.CompletedFillers,
			Catalog:             catalogList,
		})

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("⏳ Waiting for equipment for %s\n", current.Name)
		if suggestion == nil {
			fmt.Println("   No filler available, just rest")
			return nil
		}
		fmt.Printf("   Meanwhile: %s, %d x %s (~%d min)\n",
			suggestion.Name, suggestion.Sets, suggestion.Reps, suggestion.DurationMinutes)
		if suggestion.Notes != "" {
			fmt.Printf("   %s\n", suggestion.Notes)
		}
		fmt.Println("   Run filler-done when finished, free when the equipment opens up")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(occupiedCmd)
}
