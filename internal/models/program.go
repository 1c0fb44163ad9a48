package models

import "time"

const (
	IntensityHeavy    = "heavy"
	IntensityStrength = "strength"
	IntensityVolume   = "volume"
)

type ProgramSession struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Intensity string            `json:"intensity,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Exercises []ProgramExercise `json:"exercises"`
}

type ProgramExercise struct {
	ID          string `json:"id"`
	ExerciseID  string `json:"exercise_id"`
	Order       int    `json:"order"`
	Sets        int    `json:"sets"`
	TargetReps  int    `json:"target_reps"`
	RestSeconds int    `json:"rest_seconds"`
	IsRehab     bool   `json:"is_rehab"`
}

//
// For TOML parsing only
//

type ProgramSessionTOML struct {
	Name      string                `toml:"name"`
	Intensity string                `toml:"intensity,omitempty"`
	Exercises []ProgramExerciseTOML `toml:"exercise"`
}

type ProgramExerciseTOML struct {
	Name        string `toml:"name"`
	Sets        int    `toml:"sets"`
	TargetReps  int    `toml:"target_reps"`
	RestSeconds int    `toml:"rest_seconds"`
	IsRehab     bool   `toml:"is_rehab,omitempty"`
}
