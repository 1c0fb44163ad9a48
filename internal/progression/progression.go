package progression

import (
	"math"

	"github.com/soumzer/ferro/internal/models"
)

const (
	incrementCompound  = 2.5
	incrementIsolation = 1.25

	// How far a snapped weight may sit from current + increment before we
	// give up and take the next plate above instead.
	snapTolerance = 1.0

	// Below this fraction of the planned volume the load comes down.
	regressionThreshold = 0.75
)

type Input struct {
	History          *models.ExerciseHistoryEntry // nil = first exposure.
	TargetReps       int
	Sets             int
	Intensity        string
	Category         string
	AvailableWeights []float64
}

// RepCeiling is the rep count at which progression switches from adding
// reps to adding weight.
func RepCeiling(intensity string) int {
	if intensity == models.IntensityHeavy || intensity == models.IntensityStrength {
		return 8
	}
	return 12
}

// Calculate derives the next prescription from the last actual performance
// and the current program target. Pure and deterministic; ties always
// resolve toward the less aggressive action.
func Calculate(in Input) models.ProgressionResult {
	if in.History == nil || len(in.History.RepsPerSet) == 0 {
		var weight float64
		if in.History != nil {
			weight = in.History.WeightKg
		}
		return models.ProgressionResult{
			NextWeightKg: weight,
			NextReps:     in.TargetReps,
			Action:       models.ActionMaintain,
			Reason:       "no prior session data",
		}
	}

	h := in.History
	ceiling := RepCeiling(in.Intensity)

	total := 0
	minReps := h.RepsPerSet[0]
	for _, r := range h.RepsPerSet {
		total += r
		if r < minReps {
			minReps = r
		}
	}
	avgReps := float64(total) / float64(len(h.RepsPerSet))
	expected := in.Sets * in.TargetReps

	// Regression is checked before anything else.
	if expected > 0 && float64(total) < regressionThreshold*float64(expected) {
		if below, ok := NextBelow(h.WeightKg, in.AvailableWeights); ok {
			return models.ProgressionResult{
				NextWeightKg: below,
				NextReps:     in.TargetReps,
				Action:       models.ActionDecrease,
				Reason:       "missed more than a quarter of the target volume",
			}
		}
		return models.ProgressionResult{
			NextWeightKg: h.WeightKg,
			NextReps:     in.TargetReps,
			Action:       models.ActionMaintain,
			Reason:       "volume missed but no lighter weight available",
		}
	}

	hitTarget := minReps >= in.TargetReps

	// Every set comfortably past target: load goes up, reps come back down.
	if hitTarget && h.AvgRIR >= 2 && avgReps >= float64(in.TargetReps)+2 {
		next, ok := nextWorkingWeight(h.WeightKg, in.Category, in.AvailableWeights)
		if !ok {
			return models.ProgressionResult{
				NextWeightKg: h.WeightKg,
				NextReps:     int(math.Round(avgReps)),
				Action:       models.ActionMaintain,
				Reason:       "no heavier weight available, holding at current load",
			}
		}
		return models.ProgressionResult{
			NextWeightKg: next,
			NextReps:     in.TargetReps,
			Action:       models.ActionIncreaseWeight,
			Reason:       "all sets at or above target with reps in reserve",
		}
	}

	if hitTarget && h.AvgRIR >= 1 {
		next := in.TargetReps + 1
		if next > ceiling {
			return models.ProgressionResult{
				NextWeightKg: h.WeightKg,
				NextReps:     in.TargetReps,
				Action:       models.ActionMaintain,
				Reason:       "rep ceiling reached",
			}
		}
		reason := "target hit with reps to spare"
		if h.AvgRIR < 2 {
			reason = "target hit at moderate effort"
		}
		return models.ProgressionResult{
			NextWeightKg: h.WeightKg,
			NextReps:     next,
			Action:       models.ActionIncreaseReps,
			Reason:       reason,
		}
	}

	return models.ProgressionResult{
		NextWeightKg: h.WeightKg,
		NextReps:     in.TargetReps,
		Action:       models.ActionMaintain,
		Reason:       "target missed or effort near maximal",
	}
}

// nextWorkingWeight picks the next load above current: current plus the
// category increment, snapped to the nearest available weight when one sits
// within tolerance, else the smallest available weight above current.
func nextWorkingWeight(current float64, category string, weights []float64) (float64, bool) {
	if len(weights) == 0 {
		return 0, false
	}

	increment := incrementCompound
	if category == models.CategoryIsolation {
		increment = incrementIsolation
	}
	candidate := current + increment

	snapped := SnapNearest(candidate, weights)
	if snapped > current && math.Abs(snapped-candidate) <= snapTolerance {
		return snapped, true
	}
	return NextAbove(current, weights)
}
