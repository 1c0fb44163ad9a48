package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/utils"
)

func (s *Storage) ImportExercises(imp *models.ExerciseImport) (int, error) {
	count := 0
	for _, def := range imp.Exercises {
		exists, err := s.ExerciseExists(def.Name)
		if err != nil {
			return count, err
		}
		if exists {
			continue
		}

		muscles, _ := json.Marshal(def.PrimaryMuscles)
		contras, _ := json.Marshal(def.Contraindications)

		_, err = s.DB.Exec(
			`INSERT INTO exercises
            (id, name, category, primary_muscles, contraindications, instructions, is_rehab, created_at)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(),
			def.Name,
			def.Category,
			string(muscles),
			string(contras),
			def.Instructions,
			utils.BoolToInt(def.IsRehab),
			time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			return count, fmt.Errorf("Failed to insert exercise %s: %w", def.Name, err)
		}
		count++
	}
	return count, nil
}

func (s *Storage) ExerciseExists(name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM exercises WHERE name = ?)",
		name,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("Failed to check exercise existence: %w", err)
	}

	return exists, nil
}

func (s *Storage) GetExerciseByName(name string) (*models.Exercise, error) {
	row := s.DB.QueryRow(
		`SELECT id, name, category, primary_muscles, contraindications, instructions, is_rehab, created_at
        FROM exercises WHERE name = ?`,
		name,
	)
	return scanExercise(row)
}

func (s *Storage) GetExerciseByID(id string) (*models.Exercise, error) {
	row := s.DB.QueryRow(
		`SELECT id, name, category, primary_muscles, contraindications, instructions, is_rehab, created_at
        FROM exercises WHERE id = ?`,
		id,
	)
	return scanExercise(row)
}

func scanExercise(row *sql.Row) (*models.Exercise, error) {
	var ex models.Exercise
	var muscles, contras, createdAt string
	var isRehab int

	err := row.Scan(
		&ex.ID,
		&ex.Name,
		&ex.Category,
		&muscles,
		&contras,
		&ex.Instructions,
		&isRehab,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(muscles), &ex.PrimaryMuscles); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal primary muscles: %w", err)
	}
	if err := json.Unmarshal([]byte(contras), &ex.Contraindications); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal contraindications: %w", err)
	}
	ex.IsRehab = isRehab == 1
	ex.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &ex, nil
}

// GetExerciseCatalog loads every exercise keyed by ID, for conflict checks
// and name/category lookups.
func (s *Storage) GetExerciseCatalog() (map[string]models.Exercise, error) {
	rows, err := s.DB.Query(
		`SELECT id, name, category, primary_muscles, contraindications, instructions, is_rehab, created_at
        FROM exercises`,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to load exercise catalog: %w", err)
	}
	defer rows.Close()

	catalog := make(map[string]models.Exercise)
	for rows.Next() {
		var ex models.Exercise
		var muscles, contras, createdAt string
		var isRehab int

		if err := rows.Scan(
			&ex.ID,
			&ex.Name,
			&ex.Category,
			&muscles,
			&contras,
			&ex.Instructions,
			&isRehab,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("Failed to scan exercise: %w", err)
		}

		json.Unmarshal([]byte(muscles), &ex.PrimaryMuscles)
		json.Unmarshal([]byte(contras), &ex.Contraindications)
		ex.IsRehab = isRehab == 1
		ex.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		catalog[ex.ID] = ex
	}

	return catalog, rows.Err()
}
