package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/claude/runstrong/internal/models"
	"github.com/jackc/pgx/v5"
)

const workoutColumns = `id, user_id, name, duration_minutes, equipment_used, is_completed, completed_at, created_at`

// CreateWorkout inserts a workout row and its assignment batch in one
// transaction, so a failure between the two writes leaves no orphaned workout.
// Returns the workout and its assignment rows sorted by order_index.
func (db *DB) CreateWorkout(ctx context.Context, w models.NewWorkout, items []models.NewWorkoutExercise) (*models.Workout, []models.WorkoutExercise, error) {
	if len(items) == 0 {
		return nil, nil, fmt.Errorf("creating workout: no exercises given")
	}
	used, err := json.Marshal(w.EquipmentUsed)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding equipment: %w", err)
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	workout := models.Workout{
		UserID:          w.UserID,
		Name:            w.Name,
		DurationMinutes: w.DurationMinutes,
		EquipmentUsed:   w.EquipmentUsed,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO workouts (user_id, name, duration_minutes, equipment_used, is_completed, completed_at)
		 VALUES ($1, $2, $3, $4, FALSE, NULL)
		 RETURNING id, is_completed, completed_at, created_at`,
		w.UserID, w.Name, w.DurationMinutes, used,
	).Scan(&workout.ID, &workout.IsCompleted, &workout.CompletedAt, &workout.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("inserting workout: %w", err)
	}

	query := `INSERT INTO workout_exercises (workout_id, exercise_id, sets, reps, rest_seconds, order_index) VALUES `
	args := make([]any, 0, len(items)*6)
	valueStrings := make([]string, 0, len(items))

	for i, item := range items {
		base := i * 6
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
		))
		args = append(args, workout.ID, item.ExerciseID, item.Sets, item.Reps, item.RestSeconds, item.OrderIndex)
	}

	query += strings.Join(valueStrings, ",") +
		" RETURNING id, workout_id, exercise_id, sets, reps, rest_seconds, order_index, created_at"

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("inserting workout exercises: %w", err)
	}

	var assignments []models.WorkoutExercise
	for rows.Next() {
		var a models.WorkoutExercise
		if err := rows.Scan(&a.ID, &a.WorkoutID, &a.ExerciseID, &a.Sets, &a.Reps,
			&a.RestSeconds, &a.OrderIndex, &a.CreatedAt); err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("scanning workout exercise: %w", err)
		}
		assignments = append(assignments, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading workout exercises: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("committing workout: %w", err)
	}

	sort.Slice(assignments, func(i, j int) bool { return assignments[i].OrderIndex < assignments[j].OrderIndex })
	return &workout, assignments, nil
}

// CompleteWorkout marks a workout completed with a fresh timestamp,
// overwriting any previous completion. Returns ErrWorkoutNotFound when the id
// does not exist.
func (db *DB) CompleteWorkout(ctx context.Context, workoutID int) (*models.Workout, error) {
	row := db.Pool.QueryRow(ctx,
		`UPDATE workouts SET is_completed = TRUE, completed_at = NOW()
		 WHERE id = $1
		 RETURNING `+workoutColumns,
		workoutID)

	workout, err := scanWorkout(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("completing workout: %w", err)
	}
	return workout, nil
}

// WorkoutsByUser returns all of a user's workouts, most recent first, each
// with its assignments joined to exercise details and sorted by order_index.
func (db *DB) WorkoutsByUser(ctx context.Context, userID string) ([]models.WorkoutWithExercises, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+workoutColumns+` FROM workouts
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	result := []models.WorkoutWithExercises{}
	ids := make([]int, 0)
	index := make(map[int]int) // workout id → position in result
	for rows.Next() {
		workout, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		index[workout.ID] = len(result)
		ids = append(ids, workout.ID)
		result = append(result, models.WorkoutWithExercises{
			Workout:   *workout,
			Exercises: []models.WorkoutExerciseDetail{},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return result, nil
	}

	detailRows, err := db.Pool.Query(ctx,
		`SELECT we.id, we.workout_id, we.exercise_id, e.name, e.muscle_group, e.instructions, e.runner_benefit,
		        we.sets, we.reps, we.rest_seconds, we.order_index
		 FROM workout_exercises we
		 JOIN exercises e ON e.id = we.exercise_id
		 WHERE we.workout_id = ANY($1)
		 ORDER BY we.workout_id, we.order_index`,
		ids)
	if err != nil {
		return nil, fmt.Errorf("querying workout exercises: %w", err)
	}
	defer detailRows.Close()

	for detailRows.Next() {
		var workoutID int
		var d models.WorkoutExerciseDetail
		if err := detailRows.Scan(&d.ID, &workoutID, &d.ExerciseID, &d.Name, &d.MuscleGroup,
			&d.Instructions, &d.RunnerBenefit, &d.Sets, &d.Reps, &d.RestSeconds, &d.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning workout exercise: %w", err)
		}
		pos, ok := index[workoutID]
		if !ok {
			continue
		}
		result[pos].Exercises = append(result[pos].Exercises, d)
	}
	return result, detailRows.Err()
}

func scanWorkout(row interface{ Scan(dest ...any) error }) (*models.Workout, error) {
	var w models.Workout
	var used []byte
	if err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.DurationMinutes, &used,
		&w.IsCompleted, &w.CompletedAt, &w.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(used, &w.EquipmentUsed); err != nil {
		return nil, fmt.Errorf("decoding equipment: %w", err)
	}
	return &w, nil
}
