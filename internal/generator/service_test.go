package generator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/claude/runstrong/internal/models"
)

type stubStore struct {
	// exercises returned per ExercisesByEquipment call, consumed in order.
	// A single entry is reused for every call.
	responses [][]models.Exercise
	queryErr  error
	createErr error

	queries     [][]models.Equipment
	createdWith *models.NewWorkout
	createdItems []models.NewWorkoutExercise
}

func (s *stubStore) ExercisesByEquipment(_ context.Context, equipment []models.Equipment) ([]models.Exercise, error) {
	s.queries = append(s.queries, equipment)
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	idx := len(s.queries) - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

func (s *stubStore) CreateWorkout(_ context.Context, w models.NewWorkout, items []models.NewWorkoutExercise) (*models.Workout, []models.WorkoutExercise, error) {
	if s.createErr != nil {
		return nil, nil, s.createErr
	}
	s.createdWith = &w
	s.createdItems = items

	now := time.Now()
	workout := &models.Workout{
		ID:              1,
		UserID:          w.UserID,
		Name:            w.Name,
		DurationMinutes: w.DurationMinutes,
		EquipmentUsed:   w.EquipmentUsed,
		CreatedAt:       now,
	}
	rows := make([]models.WorkoutExercise, len(items))
	for i, it := range items {
		rows[i] = models.WorkoutExercise{
			ID:          i + 1,
			WorkoutID:   1,
			ExerciseID:  it.ExerciseID,
			Sets:        it.Sets,
			Reps:        it.Reps,
			RestSeconds: it.RestSeconds,
			OrderIndex:  it.OrderIndex,
			CreatedAt:   now,
		}
	}
	return workout, rows, nil
}

func testCatalog(n int) []models.Exercise {
	groups := []string{"Legs", "Core", "Back", "Glutes"}
	exercises := make([]models.Exercise, n)
	for i := range exercises {
		exercises[i] = models.Exercise{
			ID:              i + 1,
			Name:            "Exercise",
			MuscleGroup:     groups[i%len(groups)],
			EquipmentNeeded: []models.Equipment{models.EquipmentBodyweightOnly},
			Instructions:    "Do the movement.",
			RunnerBenefit:   "Helps running.",
		}
	}
	return exercises
}

func testService(store Store) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, rand.New(rand.NewSource(42)), log)
}

func TestGenerate(t *testing.T) {
	store := &stubStore{responses: [][]models.Exercise{testCatalog(10)}}
	svc := testService(store)

	got, err := svc.Generate(context.Background(), models.GenerateWorkoutInput{
		UserID:             "user-1",
		DurationMinutes:    45,
		AvailableEquipment: []models.Equipment{models.EquipmentDumbbells, models.EquipmentBench},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(got.Exercises) != 8 {
		t.Errorf("len(Exercises) = %d, want 8 for 45min", len(got.Exercises))
	}
	for i, ex := range got.Exercises {
		if ex.OrderIndex != i {
			t.Errorf("Exercises[%d].OrderIndex = %d, want %d", i, ex.OrderIndex, i)
		}
		if ex.Sets != 3 || ex.Reps != "8-12" || ex.RestSeconds != 60 {
			t.Errorf("Exercises[%d] params = (%d, %q, %d), want (3, %q, 60)",
				i, ex.Sets, ex.Reps, ex.RestSeconds, "8-12")
		}
		if ex.Name == "" || ex.MuscleGroup == "" {
			t.Errorf("Exercises[%d] missing denormalized exercise fields", i)
		}
	}

	if !strings.HasPrefix(got.Name, "45min ") || !strings.HasSuffix(got.Name, " Workout") {
		t.Errorf("workout name = %q, want 45min ... Workout", got.Name)
	}
	if got.UserID != "user-1" || got.DurationMinutes != 45 {
		t.Errorf("workout = %q/%d, want user-1/45", got.UserID, got.DurationMinutes)
	}
	if len(got.EquipmentUsed) != 2 || got.EquipmentUsed[0] != models.EquipmentDumbbells {
		t.Errorf("EquipmentUsed = %v, want request equipment in order", got.EquipmentUsed)
	}
	if got.IsCompleted || got.CompletedAt != nil {
		t.Errorf("new workout should not be completed")
	}

	if len(store.queries) != 1 {
		t.Errorf("store queried %d times, want 1", len(store.queries))
	}
}

func TestGenerateShortDuration(t *testing.T) {
	store := &stubStore{responses: [][]models.Exercise{testCatalog(10)}}
	svc := testService(store)

	got, err := svc.Generate(context.Background(), models.GenerateWorkoutInput{
		UserID:             "user-1",
		DurationMinutes:    20,
		AvailableEquipment: []models.Equipment{models.EquipmentBodyweightOnly},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got.Exercises) != 5 {
		t.Errorf("len(Exercises) = %d, want 5 for 20min", len(got.Exercises))
	}
	for _, ex := range got.Exercises {
		if ex.Sets != 2 || ex.Reps != "10-15" || ex.RestSeconds != 45 {
			t.Errorf("params = (%d, %q, %d), want (2, %q, 45)", ex.Sets, ex.Reps, ex.RestSeconds, "10-15")
		}
	}
}

func TestGenerateFewCandidates(t *testing.T) {
	store := &stubStore{responses: [][]models.Exercise{testCatalog(2)}}
	svc := testService(store)

	got, err := svc.Generate(context.Background(), models.GenerateWorkoutInput{
		UserID:             "user-1",
		DurationMinutes:    60,
		AvailableEquipment: []models.Equipment{models.EquipmentSquatRack},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got.Exercises) != 2 {
		t.Errorf("len(Exercises) = %d, want 2 when only 2 candidates exist", len(got.Exercises))
	}
}

func TestGenerateBodyweightFallback(t *testing.T) {
	store := &stubStore{responses: [][]models.Exercise{nil, testCatalog(4)}}
	svc := testService(store)

	got, err := svc.Generate(context.Background(), models.GenerateWorkoutInput{
		UserID:             "user-1",
		DurationMinutes:    30,
		AvailableEquipment: []models.Equipment{models.EquipmentCableMachine},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(got.Exercises) == 0 {
		t.Fatal("fallback produced no exercises")
	}

	if len(store.queries) != 2 {
		t.Fatalf("store queried %d times, want 2 (request + fallback)", len(store.queries))
	}
	fallback := store.queries[1]
	if len(fallback) != 1 || fallback[0] != models.EquipmentBodyweightOnly {
		t.Errorf("fallback query = %v, want [bodyweight_only]", fallback)
	}

	// The stored workout still records the equipment the user asked for.
	if len(got.EquipmentUsed) != 1 || got.EquipmentUsed[0] != models.EquipmentCableMachine {
		t.Errorf("EquipmentUsed = %v, want the requested equipment", got.EquipmentUsed)
	}
}

func TestGenerateNoMatchingExercises(t *testing.T) {
	store := &stubStore{responses: [][]models.Exercise{nil, nil}}
	svc := testService(store)

	_, err := svc.Generate(context.Background(), models.GenerateWorkoutInput{
		UserID:             "user-1",
		DurationMinutes:    30,
		AvailableEquipment: []models.Equipment{models.EquipmentLegPress},
	})
	if !errors.Is(err, ErrNoMatchingExercises) {
		t.Fatalf("err = %v, want ErrNoMatchingExercises", err)
	}
	if store.createdWith != nil {
		t.Error("CreateWorkout called despite empty candidate set")
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   models.GenerateWorkoutInput
	}{
		{"empty user", models.GenerateWorkoutInput{DurationMinutes: 30, AvailableEquipment: []models.Equipment{models.EquipmentDumbbells}}},
		{"duration too short", models.GenerateWorkoutInput{UserID: "u", DurationMinutes: 14, AvailableEquipment: []models.Equipment{models.EquipmentDumbbells}}},
		{"duration too long", models.GenerateWorkoutInput{UserID: "u", DurationMinutes: 121, AvailableEquipment: []models.Equipment{models.EquipmentDumbbells}}},
		{"no equipment", models.GenerateWorkoutInput{UserID: "u", DurationMinutes: 30}},
		{"unknown equipment", models.GenerateWorkoutInput{UserID: "u", DurationMinutes: 30, AvailableEquipment: []models.Equipment{"treadmill"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{responses: [][]models.Exercise{testCatalog(10)}}
			svc := testService(store)

			_, err := svc.Generate(context.Background(), tt.in)
			if !errors.Is(err, models.ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			if len(store.queries) != 0 {
				t.Error("store queried despite invalid input")
			}
		})
	}
}

func TestGenerateStoreError(t *testing.T) {
	boom := errors.New("connection refused")
	store := &stubStore{queryErr: boom}
	svc := testService(store)

	_, err := svc.Generate(context.Background(), models.GenerateWorkoutInput{
		UserID:             "u",
		DurationMinutes:    30,
		AvailableEquipment: []models.Equipment{models.EquipmentDumbbells},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
}
