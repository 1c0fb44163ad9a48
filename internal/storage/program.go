package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/utils"
)

// ImportProgramSession stores a TOML program session, resolving exercise
// names to IDs. Every referenced exercise must already exist.
func (s *Storage) ImportProgramSession(toml *models.ProgramSessionTOML) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sessionID := uuid.New().String()
	_, err = tx.Exec(
		`INSERT INTO program_sessions (id, name, intensity, created_at)
        VALUES (?, ?, ?, ?)`,
		sessionID,
		toml.Name,
		toml.Intensity,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to insert program session: %w", err)
	}

	for i, ex := range toml.Exercises {
		exercise, err := s.GetExerciseByName(ex.Name)
		if err != nil {
			return fmt.Errorf("Failed to find exercise %s: %w", ex.Name, err)
		}

		_, err = tx.Exec(
			`INSERT INTO program_exercises
            (id, program_session_id, exercise_id, order_index, sets, target_reps, rest_seconds, is_rehab)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(),
			sessionID,
			exercise.ID,
			i+1,
			ex.Sets,
			ex.TargetReps,
			ex.RestSeconds,
			utils.BoolToInt(ex.IsRehab),
		)
		if err != nil {
			return fmt.Errorf("Failed to insert program exercise %s: %w", ex.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}

	return nil
}

func (s *Storage) GetProgramSessionByName(name string) (*models.ProgramSession, error) {
	var session models.ProgramSession
	var createdAt string

	err := s.DB.QueryRow(
		`SELECT id, name, COALESCE(intensity, ''), created_at
        FROM program_sessions WHERE name = ?`,
		name,
	).Scan(
		&session.ID,
		&session.Name,
		&session.Intensity,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	session.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	rows, err := s.DB.Query(
		`SELECT id, exercise_id, order_index, sets, target_reps, rest_seconds, is_rehab
        FROM program_exercises
        WHERE program_session_id = ?
        ORDER BY order_index`,
		session.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to load program exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ex models.ProgramExercise
		var isRehab int
		if err := rows.Scan(
			&ex.ID,
			&ex.ExerciseID,
			&ex.Order,
			&ex.Sets,
			&ex.TargetReps,
			&ex.RestSeconds,
			&isRehab,
		); err != nil {
			return nil, fmt.Errorf("Failed to scan program exercise: %w", err)
		}
		ex.IsRehab = isRehab == 1
		session.Exercises = append(session.Exercises, ex)
	}

	return &session, rows.Err()
}
