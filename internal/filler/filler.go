package filler

import (
	"fmt"
	"math"
	"strings"

	"github.com/soumzer/ferro/internal/models"
)

const (
	defaultSetSeconds     = 45
	betweenSetRestSeconds = 30
	catalogEstimateMin    = 2
)

type Input struct {
	ActiveWaitPool      []models.RehabExercise
	NextExerciseMuscles []string
	CompletedFillers    []string
	Catalog             []models.Exercise // Optional fallback.
}

// Suggest picks a short exercise to bridge an equipment-occupied gap,
// preferring rehab work from the active-wait pool that does not tire the
// muscles the next exercise needs. The cascade degrades deliberately: as a
// last resort it returns a conflicting pool item rather than nothing.
func Suggest(in Input) *models.FillerSuggestion {
	next := ClassifyMuscles(in.NextExerciseMuscles)
	done := map[string]bool{}
	for _, name := range in.CompletedFillers {
		done[name] = true
	}

	// 1. Fresh pool item that stays out of the next exercise's way.
	for _, ex := range in.ActiveWaitPool {
		if !done[ex.Name] && !Clashes(ClassifyName(ex.Name), next) {
			s := fromRehab(ex)
			return &s
		}
	}

	// 2. Catalog mobility/cooldown work, or rehab-friendly core.
	for _, ex := range in.Catalog {
		if done[ex.Name] {
			continue
		}
		suitable := ex.Category == models.CategoryMobility ||
			ex.Category == models.CategoryCooldown ||
			(ex.IsRehab && ClassifyMuscles(ex.PrimaryMuscles) == RegionCore)
		if suitable && !Clashes(ClassifyMuscles(ex.PrimaryMuscles), next) {
			return &models.FillerSuggestion{
				Name:            ex.Name,
				Sets:            2,
				Reps:            "10",
				DurationMinutes: catalogEstimateMin,
				Notes:           ex.Instructions,
				IsRehab:         ex.IsRehab,
			}
		}
	}

	// 3. Cycle back into the pool ignoring completion state.
	for _, ex := range in.ActiveWaitPool {
		if !Clashes(ClassifyName(ex.Name), next) {
			s := fromRehab(ex)
			return &s
		}
	}

	// 4. Better a conflicting filler than an idle wait.
	if len(in.ActiveWaitPool) > 0 {
		s := fromRehab(in.ActiveWaitPool[0])
		return &s
	}

	return nil
}

func fromRehab(ex models.RehabExercise) models.FillerSuggestion {
	return models.FillerSuggestion{
		Name:            ex.Name,
		Sets:            ex.Sets,
		Reps:            ex.Reps,
		DurationMinutes: estimateMinutes(ex.Sets, ex.Reps),
		Notes:           ex.Notes,
		IsRehab:         true,
	}
}

// estimateMinutes assumes 45 seconds per set unless the rep string is a
// hold ("30 sec"), plus 30 seconds of rest between sets.
func estimateMinutes(sets int, reps string) int {
	if sets < 1 {
		sets = 1
	}
	perSet := defaultSetSeconds
	if secs, ok := parseHoldSeconds(reps); ok {
		perSet = secs
	}
	total := sets*perSet + (sets-1)*betweenSetRestSeconds
	minutes := int(math.Round(float64(total) / 60))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func parseHoldSeconds(reps string) (int, bool) {
	var secs int
	if _, err := fmt.Sscanf(strings.TrimSpace(reps), "%d sec", &secs); err == nil && secs > 0 {
		return secs, true
	}
	return 0, false
}
