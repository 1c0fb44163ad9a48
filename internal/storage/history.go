package storage

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/soumzer/ferro/internal/models"
)

// GetExerciseHistory builds the last-performance map for a set of
// exercises. Only actual logged performance goes in: weight lifted, reps
// per set, average RIR and rest. Prescriptions from past sessions are
// deliberately never read back.
func (s *Storage) GetExerciseHistory(exerciseIDs []string) (models.ExerciseHistory, error) {
	history := make(models.ExerciseHistory)

	for _, id := range exerciseIDs {
		var sessionExID string
		err := s.DB.QueryRow(
			`SELECT se.id
            FROM session_exercises se
            JOIN training_sessions ts ON ts.id = se.training_session_id
            WHERE se.exercise_id = ? AND ts.end_time IS NOT NULL
            ORDER BY ts.start_time DESC
            LIMIT 1`,
			id,
		).Scan(&sessionExID)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("Failed to find last session for exercise %s: %w", id, err)
		}

		rows, err := s.DB.Query(
			`SELECT actual_reps, actual_weight, COALESCE(rir, 0), COALESCE(rest_actual, 0)
            FROM exercise_sets
            WHERE session_exercise_id = ?
            ORDER BY set_number`,
			sessionExID,
		)
		if err != nil {
			return nil, fmt.Errorf("Failed to load sets for exercise %s: %w", id, err)
		}

		var entry models.ExerciseHistoryEntry
		var rirSum, restSum float64
		count := 0
		for rows.Next() {
			var reps, rir, rest int
			var weight float64
			if err := rows.Scan(&reps, &weight, &rir, &rest); err != nil {
				rows.Close()
				return nil, fmt.Errorf("Failed to scan set: %w", err)
			}
			entry.RepsPerSet = append(entry.RepsPerSet, reps)
			if weight > entry.WeightKg {
				entry.WeightKg = weight
			}
			rirSum += float64(rir)
			restSum += float64(rest)
			count++
		}
		rows.Close()

		if count == 0 {
			continue
		}
		entry.AvgRIR = rirSum / float64(count)
		entry.AvgRestSeconds = restSum / float64(count)
		history[id] = entry
	}

	return history, nil
}

// GetPainFeedback reduces set-level pain reports within the rolling window
// to one entry per body zone.
func (s *Storage) GetPainFeedback(windowDays int) ([]models.PainFeedbackEntry, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays).Format(time.RFC3339)

	rows, err := s.DB.Query(
		`SELECT COALESCE(es.pain_zone, ''), COALESCE(es.pain_level, 0), e.name
        FROM exercise_sets es
        JOIN session_exercises se ON se.id = es.session_exercise_id
        JOIN exercises e ON e.id = se.exercise_id
        WHERE es.pain_reported = 1 AND es.completed_at >= ?`,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to load pain reports: %w", err)
	}
	defer rows.Close()

	byZone := make(map[string]*models.PainFeedbackEntry)
	for rows.Next() {
		var zone, exName string
		var level int
		if err := rows.Scan(&zone, &level, &exName); err != nil {
			return nil, fmt.Errorf("Failed to scan pain report: %w", err)
		}
		if zone == "" {
			continue
		}

		entry, ok := byZone[zone]
		if !ok {
			entry = &models.PainFeedbackEntry{Zone: zone}
			byZone[zone] = entry
		}
		if level > entry.MaxPainLevel {
			entry.MaxPainLevel = level
		}
		seen := false
		for _, n := range entry.DuringExercises {
			if n == exName {
				seen = true
				break
			}
		}
		if !seen {
			entry.DuringExercises = append(entry.DuringExercises, exName)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var feedback []models.PainFeedbackEntry
	for _, entry := range byZone {
		feedback = append(feedback, *entry)
	}
	sort.Slice(feedback, func(i, j int) bool { return feedback[i].Zone < feedback[j].Zone })

	return feedback, nil
}

// GetReferenceWeights returns the latest weight logged pain-free per
// exercise, the anchor for pain-driven weight reductions.
func (s *Storage) GetReferenceWeights() (map[string]float64, error) {
	rows, err := s.DB.Query(
		`SELECT se.exercise_id, es.actual_weight, es.completed_at
        FROM exercise_sets es
        JOIN session_exercises se ON se.id = es.session_exercise_id
        WHERE es.pain_reported = 0 AND es.actual_weight > 0
        ORDER BY es.completed_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to load reference weights: %w", err)
	}
	defer rows.Close()

	refs := make(map[string]float64)
	for rows.Next() {
		var id, completedAt string
		var weight float64
		if err := rows.Scan(&id, &weight, &completedAt); err != nil {
			return nil, fmt.Errorf("Failed to scan reference weight: %w", err)
		}
		// Rows arrive oldest first, so the last write per exercise wins.
		refs[id] = weight
	}

	return refs, rows.Err()
}
