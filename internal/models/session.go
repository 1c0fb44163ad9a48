package models

import "time"

const (
	PhaseNormal = "normal"
	PhaseDeload = "deload"
)

const (
	ExerciseStatusPending   = "pending"
	ExerciseStatusCompleted = "completed"
)

type SessionSet struct {
	SetNumber             int       `json:"set_number" toml:"set_number"`
	PrescribedReps        int       `json:"prescribed_reps" toml:"prescribed_reps"`
	PrescribedWeightKg    float64   `json:"prescribed_weight_kg" toml:"prescribed_weight_kg"`
	ActualReps            int       `json:"actual_reps" toml:"actual_reps"`
	ActualWeightKg        float64   `json:"actual_weight_kg" toml:"actual_weight_kg"`
	RepsInReserve         int       `json:"reps_in_reserve" toml:"reps_in_reserve"`
	PainReported          bool      `json:"pain_reported" toml:"pain_reported"`
	PainZone              string    `json:"pain_zone,omitempty" toml:"pain_zone,omitempty"`
	PainLevel             int       `json:"pain_level,omitempty" toml:"pain_level,omitempty"`
	RestPrescribedSeconds int       `json:"rest_prescribed_seconds" toml:"rest_prescribed_seconds"`
	RestActualSeconds     int       `json:"rest_actual_seconds,omitempty" toml:"rest_actual_seconds,omitempty"`
	CompletedAt           time.Time `json:"completed_at" toml:"completed_at"`
}

type SessionExercise struct {
	ExerciseID         string       `json:"exercise_id" toml:"exercise_id"`
	Name               string       `json:"name" toml:"name"`
	Order              int          `json:"order" toml:"order"`
	PrescribedSets     int          `json:"prescribed_sets" toml:"prescribed_sets"`
	PrescribedReps     int          `json:"prescribed_reps" toml:"prescribed_reps"`
	PrescribedWeightKg float64      `json:"prescribed_weight_kg" toml:"prescribed_weight_kg"`
	RestSeconds        int          `json:"rest_seconds" toml:"rest_seconds"`
	IsRehab            bool         `json:"is_rehab" toml:"is_rehab"`
	LoggedSets         []SessionSet `json:"logged_sets" toml:"logged_sets"`
	Status             string       `json:"status" toml:"status"`
}

// SessionState is the whole live session, persisted between CLI invocations
// as a TOML file. The session engine owns it while a command runs.
type SessionState struct {
	SessionID          string            `toml:"session_id"`
	ProgramSessionID   string            `toml:"program_session_id"`
	ProgramSessionName string            `toml:"program_session_name"`
	Intensity          string            `toml:"intensity,omitempty"`
	Phase              string            `toml:"phase"`
	StartTime          time.Time         `toml:"start_time"`
	Exercises          []SessionExercise `toml:"exercises"`
	CurrentIndex       int               `toml:"current_index"`
	Occupied           bool              `toml:"occupied"`
	WarmupRehab        []RehabExercise   `toml:"warmup_rehab,omitempty"`
	ActiveWaitPool     []RehabExercise   `toml:"active_wait_pool,omitempty"`
	CooldownRehab      []RehabExercise   `toml:"cooldown_rehab,omitempty"`
	CompletedFillers   []string          `toml:"completed_fillers,omitempty"`
}
