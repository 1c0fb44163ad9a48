package models

import "time"

const (
	PlacementWarmup     = "warmup"
	PlacementActiveWait = "active_wait"
	PlacementCooldown   = "cooldown"
	PlacementRestDay    = "rest_day"
)

type RehabExercise struct {
	Name      string `json:"name" toml:"name"`
	Sets      int    `json:"sets" toml:"sets"`
	Reps      string `json:"reps" toml:"reps"` // e.g. "12" or "30 sec".
	Placement string `json:"placement" toml:"placement"`
	Notes     string `json:"notes,omitempty" toml:"notes,omitempty"`
}

// RehabProtocol groups corrective exercises for one body zone.
// Lower priority means more urgent.
type RehabProtocol struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Zone      string          `json:"zone"`
	Priority  int             `json:"priority"`
	Exercises []RehabExercise `json:"exercises"`
}

type Condition struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Zone      string    `json:"zone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

//
// For TOML parsing only
//

type RehabProtocolTOML struct {
	Name      string              `toml:"name"`
	Zone      string              `toml:"zone"`
	Priority  int                 `toml:"priority"`
	Exercises []RehabExerciseTOML `toml:"exercise"`
}

type RehabExerciseTOML struct {
	Name      string `toml:"name"`
	Sets      int    `toml:"sets"`
	Reps      string `toml:"reps"`
	Placement string `toml:"placement"`
	Notes     string `toml:"notes,omitempty"`
}

type RehabImport struct {
	Protocols []RehabProtocolTOML `toml:"protocol"`
}
