package models

// ExerciseHistoryEntry is what actually happened the last time an exercise
// was performed. It intentionally has no prescribed-reps or prescribed-rest
// fields: prescriptions are always rebuilt from the current program target,
// so a past target can never leak back into a new one.
type ExerciseHistoryEntry struct {
	WeightKg       float64 `json:"weight_kg"`
	RepsPerSet     []int   `json:"reps_per_set"`
	AvgRIR         float64 `json:"avg_rir"`
	AvgRestSeconds float64 `json:"avg_rest_seconds"`
}

// ExerciseHistory maps exercise ID to its most recent performance.
type ExerciseHistory map[string]ExerciseHistoryEntry
