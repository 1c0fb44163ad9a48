package models

const (
	PainActionSkip          = "skip"
	PainActionReduceWeight  = "reduce_weight"
	PainActionNoProgression = "no_progression"
)

// PainFeedbackEntry is the rolling-window pain summary for one body zone.
type PainFeedbackEntry struct {
	Zone            string   `json:"zone"`
	MaxPainLevel    int      `json:"max_pain_level"` // 0-10.
	DuringExercises []string `json:"during_exercises"`
}

// PainAdjustment is a single surviving override for one session exercise.
type PainAdjustment struct {
	ExerciseID        string  `json:"exercise_id"`
	Action            string  `json:"action"`
	WeightMultiplier  float64 `json:"weight_multiplier,omitempty"`
	ReferenceWeightKg float64 `json:"reference_weight_kg,omitempty"`
	Reason            string  `json:"reason"`
}
