package pain

import (
	"fmt"

	"github.com/soumzer/ferro/internal/models"
)

const reduceMultiplier = 0.8

// Severity order for conflicting adjustments on one exercise.
func rank(action string) int {
	switch action {
	case models.PainActionSkip:
		return 3
	case models.PainActionReduceWeight:
		return 2
	case models.PainActionNoProgression:
		return 1
	}
	return 0
}

func actionForLevel(level int) string {
	switch {
	case level >= 7:
		return models.PainActionSkip
	case level >= 5:
		return models.PainActionReduceWeight
	case level >= 3:
		return models.PainActionNoProgression
	}
	return ""
}

// CalculateAdjustments maps recent pain per body zone onto the session's
// exercises. At most one adjustment survives per exercise; when several
// rules match, the highest-severity action wins and the rest are dropped.
// The result does not depend on the order of the feedback entries.
func CalculateAdjustments(
	feedback []models.PainFeedbackEntry,
	exercises []models.SessionExercise,
	catalog map[string]models.Exercise,
	referenceWeights map[string]float64,
) []models.PainAdjustment {
	var out []models.PainAdjustment

	for _, ex := range exercises {
		var best models.PainAdjustment

		for _, fb := range feedback {
			action := actionForLevel(fb.MaxPainLevel)
			if action != "" && contraindicated(catalog[ex.ExerciseID], fb.Zone) {
				adj := models.PainAdjustment{
					ExerciseID: ex.ExerciseID,
					Action:     action,
					Reason:     fmt.Sprintf("pain level %d reported in %s", fb.MaxPainLevel, fb.Zone),
				}
				if action == models.PainActionReduceWeight {
					adj.WeightMultiplier = reduceMultiplier
					// Reduce off the last pain-free weight when known, so
					// repeated reductions do not compound on each other.
					if ref, ok := referenceWeights[ex.ExerciseID]; ok {
						adj.ReferenceWeightKg = ref
					}
				}
				best = pickSeverest(best, adj)
			}

			// Pain reported mid-set on this exact exercise blocks
			// progression regardless of how mild the zone reading is.
			for _, name := range fb.DuringExercises {
				if name == ex.Name {
					best = pickSeverest(best, models.PainAdjustment{
						ExerciseID: ex.ExerciseID,
						Action:     models.PainActionNoProgression,
						Reason:     fmt.Sprintf("pain reported during %s last session", ex.Name),
					})
				}
			}
		}

		if best.Action != "" {
			out = append(out, best)
		}
	}

	return out
}

func pickSeverest(current, candidate models.PainAdjustment) models.PainAdjustment {
	if rank(candidate.Action) > rank(current.Action) {
		return candidate
	}
	return current
}

func contraindicated(ex models.Exercise, zone string) bool {
	for _, z := range ex.Contraindications {
		if z == zone {
			return true
		}
	}
	return false
}
