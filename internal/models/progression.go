package models

const (
	ActionIncreaseWeight = "increase_weight"
	ActionIncreaseReps   = "increase_reps"
	ActionMaintain       = "maintain"
	ActionDecrease       = "decrease"
)

type ProgressionResult struct {
	NextWeightKg float64 `json:"next_weight_kg"`
	NextReps     int     `json:"next_reps"`
	Action       string  `json:"action"`
	Reason       string  `json:"reason"`
}

type WarmupSet struct {
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
}
