package progression

import (
	"testing"

	"github.com/soumzer/ferro/internal/models"
)

func TestGenerateWarmupSets(t *testing.T) {
	tests := []struct {
		name    string
		working float64
		weights []float64
		want    []models.WarmupSet
	}{
		{
			name:    "zero working weight",
			working: 0,
			want:    nil,
		},
		{
			name:    "very light weight gets one bodyweight set",
			working: 5,
			want:    []models.WarmupSet{{WeightKg: 0, Reps: 10}},
		},
		{
			name:    "light weight gets bodyweight plus half",
			working: 20,
			want: []models.WarmupSet{
				{WeightKg: 0, Reps: 10},
				{WeightKg: 10, Reps: 8},
			},
		},
		{
			name:    "half set omitted when it rounds onto the working weight",
			working: 10,
			weights: []float64{10},
			want:    []models.WarmupSet{{WeightKg: 0, Reps: 10}},
		},
		{
			name:    "full ramp at 80 with 2.5 rounding",
			working: 80,
			want: []models.WarmupSet{
				{WeightKg: 0, Reps: 10},
				{WeightKg: 40, Reps: 8},
				{WeightKg: 55, Reps: 5},
				{WeightKg: 67.5, Reps: 3},
			},
		},
		{
			name:    "full ramp snaps to available weights",
			working: 100,
			weights: []float64{20, 40, 60, 70, 85, 100},
			want: []models.WarmupSet{
				{WeightKg: 0, Reps: 10},
				{WeightKg: 40, Reps: 8},
				{WeightKg: 70, Reps: 5},
				{WeightKg: 85, Reps: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateWarmupSets(tt.working, tt.weights)

			if len(got) != len(tt.want) {
				t.Fatalf("got %d sets, want %d (%+v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("set %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSnapHelpers(t *testing.T) {
	weights := []float64{20, 25, 30, 35}

	if v := SnapNearest(26, weights); v != 25 {
		t.Errorf("SnapNearest(26) = %v, want 25", v)
	}
	if v := SnapNearest(26, nil); v != 25 {
		t.Errorf("SnapNearest(26, nil) = %v, want 25", v)
	}
	if v, ok := NextBelow(25, weights); !ok || v != 20 {
		t.Errorf("NextBelow(25) = %v,%v, want 20,true", v, ok)
	}
	if _, ok := NextBelow(20, weights); ok {
		t.Error("NextBelow(20) should report no lower weight")
	}
	if v, ok := NextAbove(25, weights); !ok || v != 30 {
		t.Errorf("NextAbove(25) = %v,%v, want 30,true", v, ok)
	}
	if _, ok := NextAbove(35, weights); ok {
		t.Error("NextAbove(35) should report no higher weight")
	}
	if v := SnapDown(27, weights); v != 25 {
		t.Errorf("SnapDown(27) = %v, want 25", v)
	}
	if v := SnapDown(10, weights); v != 20 {
		t.Errorf("SnapDown(10) = %v, want smallest weight 20", v)
	}
}
