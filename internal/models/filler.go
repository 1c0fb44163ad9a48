package models

// FillerSuggestion is a short exercise to fill an equipment-occupied gap.
// Computed on demand, never persisted.
type FillerSuggestion struct {
	Name            string `json:"name"`
	Sets            int    `json:"sets"`
	Reps            string `json:"reps"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes,omitempty"`
	IsRehab         bool   `json:"is_rehab"`
}
