package models

import "time"

const (
	CategoryCompound  = "compound"
	CategoryIsolation = "isolation"
	CategoryMobility  = "mobility"
	CategoryCooldown  = "cooldown"
)

type Exercise struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	PrimaryMuscles    []string  `json:"primary_muscles"`
	Contraindications []string  `json:"contraindications"` // Body zones this exercise loads.
	Instructions      string    `json:"instructions"`
	IsRehab           bool      `json:"is_rehab"`
	CreatedAt         time.Time `json:"created_at"`
}

//
// For TOML parsing only
//

type ExerciseDefTOML struct {
	Name              string   `toml:"name"`
	Category          string   `toml:"category"`
	PrimaryMuscles    []string `toml:"primary_muscles"`
	Contraindications []string `toml:"contraindications"`
	Instructions      string   `toml:"instructions"`
	IsRehab           bool     `toml:"is_rehab"`
}

type ExerciseImport struct {
	Exercises []ExerciseDefTOML `toml:"exercise"`
}
