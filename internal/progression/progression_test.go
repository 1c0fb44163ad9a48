package progression

import (
	"reflect"
	"testing"

	"github.com/soumzer/ferro/internal/models"
)

var gymWeights = []float64{30, 32.5, 35, 37.5, 40, 42.5, 45, 47.5, 50}

func TestCalculateNoHistory(t *testing.T) {
	res := Calculate(Input{TargetReps: 8, Sets: 3, AvailableWeights: gymWeights})

	if res.Action != models.ActionMaintain {
		t.Fatalf("action = %s, want %s", res.Action, models.ActionMaintain)
	}
	if res.NextReps != 8 {
		t.Errorf("next reps = %d, want 8", res.NextReps)
	}
	if res.NextWeightKg != 0 {
		t.Errorf("next weight = %v, want 0", res.NextWeightKg)
	}
}

func TestCalculateScenarios(t *testing.T) {
	tests := []struct {
		name       string
		history    models.ExerciseHistoryEntry
		targetReps int
		sets       int
		weights    []float64
		wantAction string
		wantWeight float64
		wantReps   int
	}{
		{
			name:       "all sets two past target with reserve increases weight",
			history:    models.ExerciseHistoryEntry{WeightKg: 40, RepsPerSet: []int{8, 8, 8, 8}, AvgRIR: 2},
			targetReps: 6,
			sets:       4,
			weights:    []float64{37.5, 40, 42.5, 45},
			wantAction: models.ActionIncreaseWeight,
			wantWeight: 42.5,
			wantReps:   6,
		},
		{
			name:       "target exactly hit with reserve adds a rep",
			history:    models.ExerciseHistoryEntry{WeightKg: 40, RepsPerSet: []int{6, 6, 6, 6}, AvgRIR: 2},
			targetReps: 6,
			sets:       4,
			weights:    []float64{37.5, 40, 42.5, 45},
			wantAction: models.ActionIncreaseReps,
			wantWeight: 40,
			wantReps:   7,
		},
		{
			name:       "big volume deficit drops to next weight below",
			history:    models.ExerciseHistoryEntry{WeightKg: 40, RepsPerSet: []int{6, 5, 5, 4}, AvgRIR: 0},
			targetReps: 8,
			sets:       4,
			weights:    []float64{35, 37.5, 40, 42.5},
			wantAction: models.ActionDecrease,
			wantWeight: 37.5,
			wantReps:   8,
		},
		{
			name:       "moderate effort still adds a rep",
			history:    models.ExerciseHistoryEntry{WeightKg: 40, RepsPerSet: []int{6, 6, 6}, AvgRIR: 1.5},
			targetReps: 6,
			sets:       3,
			weights:    gymWeights,
			wantAction: models.ActionIncreaseReps,
			wantWeight: 40,
			wantReps:   7,
		},
		{
			name:       "maximal effort maintains",
			history:    models.ExerciseHistoryEntry{WeightKg: 40, RepsPerSet: []int{6, 6, 6}, AvgRIR: 0.5},
			targetReps: 6,
			sets:       3,
			weights:    gymWeights,
			wantAction: models.ActionMaintain,
			wantWeight: 40,
			wantReps:   6,
		},
		{
			name:       "missed target without big deficit maintains",
			history:    models.ExerciseHistoryEntry{WeightKg: 40, RepsPerSet: []int{6, 6, 5}, AvgRIR: 2},
			targetReps: 6,
			sets:       3,
			weights:    gymWeights,
			wantAction: models.ActionMaintain,
			wantWeight: 40,
			wantReps:   6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Calculate(Input{
				History:          &tt.history,
				TargetReps:       tt.targetReps,
				Sets:             tt.sets,
				Category:         models.CategoryCompound,
				AvailableWeights: tt.weights,
			})

			if res.Action != tt.wantAction {
				t.Fatalf("action = %s, want %s (reason: %s)", res.Action, tt.wantAction, res.Reason)
			}
			if res.NextWeightKg != tt.wantWeight {
				t.Errorf("next weight = %v, want %v", res.NextWeightKg, tt.wantWeight)
			}
			if res.NextReps != tt.wantReps {
				t.Errorf("next reps = %d, want %d", res.NextReps, tt.wantReps)
			}
		})
	}
}

func TestCalculateIsolationIncrement(t *testing.T) {
	res := Calculate(Input{
		History:          &models.ExerciseHistoryEntry{WeightKg: 10, RepsPerSet: []int{14, 14, 14}, AvgRIR: 3},
		TargetReps:       12,
		Sets:             3,
		Category:         models.CategoryIsolation,
		AvailableWeights: []float64{10, 11.25, 12.5, 15},
	})

	if res.Action != models.ActionIncreaseWeight {
		t.Fatalf("action = %s, want %s", res.Action, models.ActionIncreaseWeight)
	}
	if res.NextWeightKg != 11.25 {
		t.Errorf("next weight = %v, want 11.25", res.NextWeightKg)
	}
}

func TestCalculateNoHeavierWeight(t *testing.T) {
	res := Calculate(Input{
		History:          &models.ExerciseHistoryEntry{WeightKg: 50, RepsPerSet: []int{8, 8, 8}, AvgRIR: 3},
		TargetReps:       6,
		Sets:             3,
		Category:         models.CategoryCompound,
		AvailableWeights: []float64{45, 47.5, 50},
	})

	if res.Action != models.ActionMaintain {
		t.Fatalf("action = %s, want %s", res.Action, models.ActionMaintain)
	}
	if res.NextWeightKg != 50 {
		t.Errorf("next weight = %v, want 50", res.NextWeightKg)
	}
	if res.NextReps != 8 {
		t.Errorf("next reps = %d, want average reps 8", res.NextReps)
	}
}

func TestCalculateEmptyWeightList(t *testing.T) {
	// Neither a weight increase nor a regression can pick a plate from an
	// empty list; both fall back to maintain instead of blowing up.
	tests := []struct {
		name    string
		history models.ExerciseHistoryEntry
	}{
		{"increase path", models.ExerciseHistoryEntry{WeightKg: 40, RepsPerSet: []int{8, 8, 8, 8}, AvgRIR: 3}},
		{"regression path", models.ExerciseHistoryEntry{WeightKg: 40, RepsPerSet: []int{2, 2, 2, 2}, AvgRIR: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Calculate(Input{History: &tt.history, TargetReps: 6, Sets: 4})

			if res.Action != models.ActionMaintain {
				t.Fatalf("action = %s, want %s", res.Action, models.ActionMaintain)
			}
			if res.NextWeightKg != 40 {
				t.Errorf("next weight = %v, want 40", res.NextWeightKg)
			}
		})
	}
}

func TestCalculateRepCeiling(t *testing.T) {
	// Target already at the ceiling and not enough surplus for a weight
	// increase: adding a rep is off the table.
	res := Calculate(Input{
		History:          &models.ExerciseHistoryEntry{WeightKg: 40, RepsPerSet: []int{8, 8, 8}, AvgRIR: 2},
		TargetReps:       8,
		Sets:             3,
		Intensity:        models.IntensityHeavy,
		Category:         models.CategoryCompound,
		AvailableWeights: gymWeights,
	})

	if res.Action != models.ActionMaintain {
		t.Fatalf("action = %s, want %s (reason: %s)", res.Action, models.ActionMaintain, res.Reason)
	}
	if res.NextReps != 8 {
		t.Errorf("next reps = %d, want 8", res.NextReps)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	in := Input{
		History:          &models.ExerciseHistoryEntry{WeightKg: 42.5, RepsPerSet: []int{9, 8, 8}, AvgRIR: 2.3},
		TargetReps:       6,
		Sets:             3,
		Category:         models.CategoryCompound,
		AvailableWeights: gymWeights,
	}

	first := Calculate(in)
	for i := 0; i < 10; i++ {
		if got := Calculate(in); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: result %+v differs from first %+v", i, got, first)
		}
	}
}

func TestRegressionProperty(t *testing.T) {
	// Any history with more than a quarter of the volume missed must come
	// down to a weight below the last one when a lower weight exists.
	histories := [][]int{
		{6, 5, 5, 4},
		{4, 4, 4, 4},
		{8, 2, 2, 2},
		{0, 0, 0, 0},
	}
	for _, reps := range histories {
		res := Calculate(Input{
			History:          &models.ExerciseHistoryEntry{WeightKg: 40, RepsPerSet: reps, AvgRIR: 0},
			TargetReps:       8,
			Sets:             4,
			Category:         models.CategoryCompound,
			AvailableWeights: gymWeights,
		})

		if res.Action != models.ActionDecrease {
			t.Errorf("reps %v: action = %s, want %s", reps, res.Action, models.ActionDecrease)
		}
		if res.NextWeightKg >= 40 {
			t.Errorf("reps %v: next weight = %v, want below 40", reps, res.NextWeightKg)
		}
	}
}

func TestIncreaseWeightPicksAvailableWeight(t *testing.T) {
	// Whatever the current weight, an increase must land on a real plate.
	currents := []float64{30, 32.5, 35, 37.5, 40, 42.5, 45, 47.5}
	for _, current := range currents {
		res := Calculate(Input{
			History:          &models.ExerciseHistoryEntry{WeightKg: current, RepsPerSet: []int{8, 8, 8}, AvgRIR: 3},
			TargetReps:       6,
			Sets:             3,
			Category:         models.CategoryCompound,
			AvailableWeights: gymWeights,
		})

		if res.Action != models.ActionIncreaseWeight {
			t.Fatalf("current %v: action = %s, want %s", current, res.Action, models.ActionIncreaseWeight)
		}
		member := false
		for _, w := range gymWeights {
			if w == res.NextWeightKg {
				member = true
				break
			}
		}
		if !member {
			t.Errorf("current %v: next weight %v not in available set", current, res.NextWeightKg)
		}
		if res.NextWeightKg <= current {
			t.Errorf("current %v: next weight %v did not increase", current, res.NextWeightKg)
		}
	}
}
