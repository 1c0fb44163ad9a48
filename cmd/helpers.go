package cmd

import (
	"fmt"

	"github.com/soumzer/ferro/internal/config"
	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/session"
	"github.com/soumzer/ferro/internal/storage"
	"github.com/soumzer/ferro/internal/utils"
)

// buildOptions assembles engine options from the config file and the
// exercise catalog. A missing config just means no plate list and no
// bodyweight estimate.
func buildOptions(catalog map[string]models.Exercise, phase string) session.Options {
	opts := session.Options{
		Phase:      phase,
		Categories: make(map[string]string),
		Names:      make(map[string]string),
	}

	if cfg, err := config.LoadConfig(); err == nil {
		opts.AvailableWeights = cfg.Training.AvailableWeights
		opts.BodyweightKg = cfg.Training.BodyweightKg
	}

	for id, ex := range catalog {
		opts.Categories[id] = ex.Category
		opts.Names[id] = ex.Name
	}

	return opts
}

// resumeEngine rebuilds the engine around the persisted session state.
func resumeEngine(st *storage.Storage) (*session.Engine, *models.SessionState, error) {
	state, err := utils.LoadSessionState()
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to load session state: %w", err)
	}

	var history models.ExerciseHistory
	var opts session.Options
	if st != nil {
		ids := make([]string, 0, len(state.Exercises))
		for _, ex := range state.Exercises {
			ids = append(ids, ex.ExerciseID)
		}
		history, err = st.GetExerciseHistory(ids)
		if err != nil {
			return nil, nil, err
		}
		catalog, err := st.GetExerciseCatalog()
		if err != nil {
			return nil, nil, err
		}
		opts = buildOptions(catalog, state.Phase)
	}

	return session.Resume(state, history, opts), state, nil
}

func painWindowDays() int {
	if cfg, err := config.LoadConfig(); err == nil {
		return cfg.Training.PainWindowDays
	}
	return 14
}
