package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soumzer/ferro/internal/models"
)

// ImportRehabProtocols replaces the protocol for each imported zone; the
// catalog is authored as a whole, not patched row by row.
func (s *Storage) ImportRehabProtocols(imp *models.RehabImport) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range imp.Protocols {
		_, err = tx.Exec("DELETE FROM rehab_protocols WHERE zone = ?", p.Zone)
		if err != nil {
			return fmt.Errorf("Failed to clear protocol for zone %s: %w", p.Zone, err)
		}

		protocolID := uuid.New().String()
		_, err = tx.Exec(
			`INSERT INTO rehab_protocols (id, name, zone, priority)
            VALUES (?, ?, ?, ?)`,
			protocolID,
			p.Name,
			p.Zone,
			p.Priority,
		)
		if err != nil {
			return fmt.Errorf("Failed to insert protocol %s: %w", p.Name, err)
		}

		for i, ex := range p.Exercises {
			_, err = tx.Exec(
				`INSERT INTO rehab_exercises
                (id, protocol_id, name, sets, reps, placement, notes, order_index)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				uuid.New().String(),
				protocolID,
				ex.Name,
				ex.Sets,
				ex.Reps,
				ex.Placement,
				ex.Notes,
				i+1,
			)
			if err != nil {
				return fmt.Errorf("Failed to insert rehab exercise %s: %w", ex.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}

	return nil
}

func (s *Storage) GetRehabCatalog() ([]models.RehabProtocol, error) {
	rows, err := s.DB.Query(
		`SELECT id, name, zone, priority FROM rehab_protocols ORDER BY priority`,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to load rehab protocols: %w", err)
	}
	defer rows.Close()

	var catalog []models.RehabProtocol
	for rows.Next() {
		var p models.RehabProtocol
		if err := rows.Scan(&p.ID, &p.Name, &p.Zone, &p.Priority); err != nil {
			return nil, fmt.Errorf("Failed to scan protocol: %w", err)
		}
		catalog = append(catalog, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range catalog {
		exRows, err := s.DB.Query(
			`SELECT name, sets, reps, placement, COALESCE(notes, '')
            FROM rehab_exercises
            WHERE protocol_id = ?
            ORDER BY order_index`,
			catalog[i].ID,
		)
		if err != nil {
			return nil, fmt.Errorf("Failed to load rehab exercises: %w", err)
		}

		for exRows.Next() {
			var ex models.RehabExercise
			if err := exRows.Scan(&ex.Name, &ex.Sets, &ex.Reps, &ex.Placement, &ex.Notes); err != nil {
				exRows.Close()
				return nil, fmt.Errorf("Failed to scan rehab exercise: %w", err)
			}
			catalog[i].Exercises = append(catalog[i].Exercises, ex)
		}
		exRows.Close()
	}

	return catalog, nil
}

func (s *Storage) AddCondition(name, zone string) error {
	_, err := s.DB.Exec(
		`INSERT INTO conditions (id, name, zone, active, created_at)
        VALUES (?, ?, ?, 1, ?)`,
		uuid.New().String(),
		name,
		zone,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to add condition: %w", err)
	}
	return nil
}

func (s *Storage) ResolveCondition(zone string) error {
	_, err := s.DB.Exec("UPDATE conditions SET active = 0 WHERE zone = ?", zone)
	if err != nil {
		return fmt.Errorf("Failed to resolve condition: %w", err)
	}
	return nil
}

func (s *Storage) GetConditions() ([]models.Condition, error) {
	rows, err := s.DB.Query(
		`SELECT id, COALESCE(name, ''), zone, active, created_at FROM conditions ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to load conditions: %w", err)
	}
	defer rows.Close()

	var conditions []models.Condition
	for rows.Next() {
		var c models.Condition
		var active int
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Zone, &active, &createdAt); err != nil {
			return nil, fmt.Errorf("Failed to scan condition: %w", err)
		}
		c.Active = active == 1
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		conditions = append(conditions, c)
	}

	return conditions, rows.Err()
}
