package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/utils"
)

// SaveSession writes a finished live session back to the database: the
// session row, one row per exercise, and every logged set.
func (s *Storage) SaveSession(state *models.SessionState) error {
	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO training_sessions
        (id, program_session_id, phase, start_time, end_time)
        VALUES (?, ?, ?, ?, ?)`,
		state.SessionID,
		state.ProgramSessionID,
		state.Phase,
		state.StartTime.Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to create training session: %w", err)
	}

	for i, exercise := range state.Exercises {
		sessionExID := uuid.New().String()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO session_exercises
            (id, training_session_id, exercise_id, order_index)
            VALUES (?, ?, ?, ?)`,
			sessionExID,
			state.SessionID,
			exercise.ExerciseID,
			i+1,
		)
		if err != nil {
			return fmt.Errorf("Failed to create session exercise: %w", err)
		}

		for _, set := range exercise.LoggedSets {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO exercise_sets
                (id, session_exercise_id, set_number, prescribed_reps, prescribed_weight,
                 actual_reps, actual_weight, rir, pain_reported, pain_zone, pain_level,
                 rest_prescribed, rest_actual, completed_at)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				uuid.New().String(),
				sessionExID,
				set.SetNumber,
				set.PrescribedReps,
				set.PrescribedWeightKg,
				set.ActualReps,
				set.ActualWeightKg,
				set.RepsInReserve,
				utils.BoolToInt(set.PainReported),
				set.PainZone,
				set.PainLevel,
				set.RestPrescribedSeconds,
				set.RestActualSeconds,
				set.CompletedAt.Format(time.RFC3339),
			)
			if err != nil {
				return fmt.Errorf("Failed to save set: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}

	return nil
}
