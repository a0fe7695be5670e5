package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync"

	"github.com/claude/runstrong/internal/models"
)

// ErrNoMatchingExercises is returned when neither the requested equipment nor
// the bodyweight fallback yields any candidate exercises.
var ErrNoMatchingExercises = errors.New("no exercises found for the available equipment")

// Store is the storage surface the generator needs: candidate lookup and the
// atomic workout-plus-assignments write.
type Store interface {
	ExercisesByEquipment(ctx context.Context, equipment []models.Equipment) ([]models.Exercise, error)
	CreateWorkout(ctx context.Context, w models.NewWorkout, items []models.NewWorkoutExercise) (*models.Workout, []models.WorkoutExercise, error)
}

// Service generates workouts. The rand source is injectable so tests can pass
// a fixed seed; it is guarded by a mutex since *rand.Rand is not safe for
// concurrent use.
type Service struct {
	store Store
	log   *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a generator Service using the given randomness source.
func New(store Store, rng *rand.Rand, log *slog.Logger) *Service {
	return &Service{store: store, rng: rng, log: log}
}

// Generate builds and persists a workout for the given user, duration, and
// equipment. The two writes (workout row, assignment batch) happen in a single
// transaction inside the store, so a failure leaves no orphaned workout.
func (s *Service) Generate(ctx context.Context, in models.GenerateWorkoutInput) (*models.WorkoutWithExercises, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	candidates, err := s.store.ExercisesByEquipment(ctx, in.AvailableEquipment)
	if err != nil {
		return nil, fmt.Errorf("selecting candidates: %w", err)
	}

	// Two-tier fallback: if nothing matches the requested equipment, retry
	// restricted to bodyweight-only exercises. This runs even when
	// bodyweight_only was already in the request.
	if len(candidates) == 0 {
		candidates, err = s.store.ExercisesByEquipment(ctx, []models.Equipment{models.EquipmentBodyweightOnly})
		if err != nil {
			return nil, fmt.Errorf("selecting bodyweight fallback: %w", err)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoMatchingExercises
	}

	s.mu.Lock()
	selected := sample(s.rng, candidates, targetCount(in.DurationMinutes))
	s.mu.Unlock()

	sets, reps, rest := tierParams(in.DurationMinutes)
	items := make([]models.NewWorkoutExercise, len(selected))
	for i, ex := range selected {
		items[i] = models.NewWorkoutExercise{
			ExerciseID:  ex.ID,
			Sets:        sets,
			Reps:        reps,
			RestSeconds: rest,
			OrderIndex:  i,
		}
	}

	workout, rows, err := s.store.CreateWorkout(ctx, models.NewWorkout{
		UserID:          in.UserID,
		Name:            workoutName(in.DurationMinutes, selected),
		DurationMinutes: in.DurationMinutes,
		EquipmentUsed:   in.AvailableEquipment,
	}, items)
	if err != nil {
		return nil, fmt.Errorf("persisting workout: %w", err)
	}

	s.log.Info("workout generated",
		"workout_id", workout.ID,
		"user_id", workout.UserID,
		"exercises", len(rows),
		"duration_minutes", in.DurationMinutes,
	)

	return assemble(workout, rows, selected), nil
}

// assemble joins persisted assignment rows with the selected exercises'
// descriptive fields and sorts by order_index.
func assemble(w *models.Workout, rows []models.WorkoutExercise, selected []models.Exercise) *models.WorkoutWithExercises {
	byID := make(map[int]models.Exercise, len(selected))
	for _, ex := range selected {
		byID[ex.ID] = ex
	}

	details := make([]models.WorkoutExerciseDetail, 0, len(rows))
	for _, row := range rows {
		ex := byID[row.ExerciseID]
		details = append(details, models.WorkoutExerciseDetail{
			ID:            row.ID,
			ExerciseID:    row.ExerciseID,
			Name:          ex.Name,
			MuscleGroup:   ex.MuscleGroup,
			Instructions:  ex.Instructions,
			RunnerBenefit: ex.RunnerBenefit,
			Sets:          row.Sets,
			Reps:          row.Reps,
			RestSeconds:   row.RestSeconds,
			OrderIndex:    row.OrderIndex,
		})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].OrderIndex < details[j].OrderIndex })

	return &models.WorkoutWithExercises{Workout: *w, Exercises: details}
}
