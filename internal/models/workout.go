package models

import (
	"fmt"
	"time"
)

// Workout is one generated training session for a user.
type Workout struct {
	ID              int         `json:"id"`
	UserID          string      `json:"user_id"`
	Name            string      `json:"name"`
	DurationMinutes int         `json:"duration_minutes"`
	EquipmentUsed   []Equipment `json:"equipment_used"`
	IsCompleted     bool        `json:"is_completed"`
	CompletedAt     *time.Time  `json:"completed_at"`
	CreatedAt       time.Time   `json:"created_at"`
}

// NewWorkout is a workout ready for insertion.
type NewWorkout struct {
	UserID          string
	Name            string
	DurationMinutes int
	EquipmentUsed   []Equipment
}

// WorkoutExercise is one row of the workout_exercises junction table: an
// exercise's placement within a specific workout.
type WorkoutExercise struct {
	ID          int       `json:"id"`
	WorkoutID   int       `json:"workout_id"`
	ExerciseID  int       `json:"exercise_id"`
	Sets        int       `json:"sets"`
	Reps        string    `json:"reps"`
	RestSeconds int       `json:"rest_seconds"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewWorkoutExercise is a junction row ready for insertion alongside its workout.
type NewWorkoutExercise struct {
	ExerciseID  int
	Sets        int
	Reps        string
	RestSeconds int
	OrderIndex  int
}

// WorkoutExerciseDetail is an assignment denormalized with the referenced
// exercise's descriptive fields, as returned to clients.
type WorkoutExerciseDetail struct {
	ID            int    `json:"id"`
	ExerciseID    int    `json:"exercise_id"`
	Name          string `json:"name"`
	MuscleGroup   string `json:"muscle_group"`
	Instructions  string `json:"instructions"`
	RunnerBenefit string `json:"runner_benefit"`
	Sets          int    `json:"sets"`
	Reps          string `json:"reps"`
	RestSeconds   int    `json:"rest_seconds"`
	OrderIndex    int    `json:"order_index"`
}

// WorkoutWithExercises is the denormalized workout payload: workout fields
// plus its assignments sorted ascending by order_index.
type WorkoutWithExercises struct {
	Workout
	Exercises []WorkoutExerciseDetail `json:"exercises"`
}

// GenerateWorkoutInput is the request to generate a new workout.
type GenerateWorkoutInput struct {
	UserID             string      `json:"user_id"`
	DurationMinutes    int         `json:"duration_minutes"`
	AvailableEquipment []Equipment `json:"available_equipment"`
}

// Validate checks the duration range and equipment set before any store access.
func (in GenerateWorkoutInput) Validate() error {
	if in.UserID == "" {
		return fmt.Errorf("%w: user_id must not be empty", ErrValidation)
	}
	if in.DurationMinutes < 15 || in.DurationMinutes > 120 {
		return fmt.Errorf("%w: duration_minutes must be between 15 and 120", ErrValidation)
	}
	return ValidateEquipmentList("available_equipment", in.AvailableEquipment)
}

// SeedResult reports the outcome of a seed run.
type SeedResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
