package progression

import "github.com/soumzer/ferro/internal/models"

// GenerateWarmupSets builds the ramp up to a working weight. Percentages
// snap to the available-weight set when one is supplied, otherwise to the
// nearest 2.5 units.
func GenerateWarmupSets(workingWeightKg float64, availableWeights []float64) []models.WarmupSet {
	switch {
	case workingWeightKg <= 0:
		return nil

	case workingWeightKg < 8:
		return []models.WarmupSet{{WeightKg: 0, Reps: 10}}

	case workingWeightKg <= 20:
		sets := []models.WarmupSet{{WeightKg: 0, Reps: 10}}
		half := snapWarmup(0.5*workingWeightKg, availableWeights)
		// A half set that lands on bodyweight or on the working weight
		// itself adds nothing.
		if half > 0 && half != workingWeightKg {
			sets = append(sets, models.WarmupSet{WeightKg: half, Reps: 8})
		}
		return sets

	default:
		return []models.WarmupSet{
			{WeightKg: 0, Reps: 10},
			{WeightKg: snapWarmup(0.50*workingWeightKg, availableWeights), Reps: 8},
			{WeightKg: snapWarmup(0.70*workingWeightKg, availableWeights), Reps: 5},
			{WeightKg: snapWarmup(0.85*workingWeightKg, availableWeights), Reps: 3},
		}
	}
}

func snapWarmup(v float64, weights []float64) float64 {
	if len(weights) > 0 {
		return SnapNearest(v, weights)
	}
	return RoundTo(v, 2.5)
}
