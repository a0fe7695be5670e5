package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/claude/runstrong/internal/models"
)

const exerciseColumns = `id, name, muscle_group, equipment_needed, instructions, runner_benefit, created_at`

// Exercises returns the full catalog, oldest first.
func (db *DB) Exercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+exerciseColumns+` FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// ExercisesByEquipment returns every exercise whose equipment_needed list
// overlaps the given set. Overlap, not subset: one shared tag qualifies.
func (db *DB) ExercisesByEquipment(ctx context.Context, equipment []models.Equipment) ([]models.Exercise, error) {
	tags := make([]string, len(equipment))
	for i, e := range equipment {
		tags[i] = string(e)
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE equipment_needed ?| $1 ORDER BY id`,
		tags)
	if err != nil {
		return nil, fmt.Errorf("querying exercises by equipment: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// InsertExercise inserts one catalog entry and returns it with its assigned
// id and creation timestamp.
func (db *DB) InsertExercise(ctx context.Context, in models.NewExercise) (*models.Exercise, error) {
	needed, err := json.Marshal(in.EquipmentNeeded)
	if err != nil {
		return nil, fmt.Errorf("encoding equipment: %w", err)
	}

	ex := models.Exercise{
		Name:            in.Name,
		MuscleGroup:     in.MuscleGroup,
		EquipmentNeeded: in.EquipmentNeeded,
		Instructions:    in.Instructions,
		RunnerBenefit:   in.RunnerBenefit,
	}
	err = db.Pool.QueryRow(ctx,
		`INSERT INTO exercises (name, muscle_group, equipment_needed, instructions, runner_benefit)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		in.Name, in.MuscleGroup, needed, in.Instructions, in.RunnerBenefit,
	).Scan(&ex.ID, &ex.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting exercise: %w", err)
	}
	return &ex, nil
}

// CountExercises returns the catalog size.
func (db *DB) CountExercises(ctx context.Context) (int, error) {
	var count int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting exercises: %w", err)
	}
	return count, nil
}

// SeedExercises batch-inserts catalog entries. Returns count inserted.
func (db *DB) SeedExercises(ctx context.Context, entries []models.NewExercise) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	query := `INSERT INTO exercises (name, muscle_group, equipment_needed, instructions, runner_benefit) VALUES `
	args := make([]any, 0, len(entries)*5)
	valueStrings := make([]string, 0, len(entries))

	for i, e := range entries {
		needed, err := json.Marshal(e.EquipmentNeeded)
		if err != nil {
			return 0, fmt.Errorf("encoding equipment for %q: %w", e.Name, err)
		}
		base := i * 5
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5,
		))
		args = append(args, e.Name, e.MuscleGroup, needed, e.Instructions, e.RunnerBenefit)
	}

	query += strings.Join(valueStrings, ",")

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("seeding exercises: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanExercises(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]models.Exercise, error) {
	var result []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		var needed []byte
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.MuscleGroup, &needed,
			&ex.Instructions, &ex.RunnerBenefit, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		if err := json.Unmarshal(needed, &ex.EquipmentNeeded); err != nil {
			return nil, fmt.Errorf("decoding equipment: %w", err)
		}
		result = append(result, ex)
	}
	return result, rows.Err()
}
