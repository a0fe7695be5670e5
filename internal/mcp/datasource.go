package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/runstrong/internal/generator"
	"github.com/claude/runstrong/internal/models"
	"github.com/claude/runstrong/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Local (direct DB +
// generator) and HTTPClient (remote via REST API) both satisfy it.
type DataSource interface {
	GenerateWorkout(ctx context.Context, in models.GenerateWorkoutInput) (*models.WorkoutWithExercises, error)
	UserWorkouts(ctx context.Context, userID string) ([]models.WorkoutWithExercises, error)
	CompleteWorkout(ctx context.Context, workoutID int) (*models.Workout, error)
	Exercises(ctx context.Context) ([]models.Exercise, error)
	CreateExercise(ctx context.Context, in models.NewExercise) (*models.Exercise, error)
	Seed(ctx context.Context) (*models.SeedResult, error)
}

// Local serves MCP tools straight from the database and generator service.
type Local struct {
	db  *storage.DB
	gen *generator.Service
	log *slog.Logger
}

// Compile-time check: *Local satisfies DataSource.
var _ DataSource = (*Local)(nil)

// NewLocal creates a DataSource backed by the local database.
func NewLocal(db *storage.DB, gen *generator.Service, log *slog.Logger) *Local {
	return &Local{db: db, gen: gen, log: log}
}

func (l *Local) GenerateWorkout(ctx context.Context, in models.GenerateWorkoutInput) (*models.WorkoutWithExercises, error) {
	return l.gen.Generate(ctx, in)
}

func (l *Local) UserWorkouts(ctx context.Context, userID string) ([]models.WorkoutWithExercises, error) {
	return l.db.WorkoutsByUser(ctx, userID)
}

func (l *Local) CompleteWorkout(ctx context.Context, workoutID int) (*models.Workout, error) {
	return l.db.CompleteWorkout(ctx, workoutID)
}

func (l *Local) Exercises(ctx context.Context) ([]models.Exercise, error) {
	return l.db.Exercises(ctx)
}

func (l *Local) CreateExercise(ctx context.Context, in models.NewExercise) (*models.Exercise, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return l.db.InsertExercise(ctx, in)
}

func (l *Local) Seed(ctx context.Context) (*models.SeedResult, error) {
	return l.db.Seed(ctx, l.log)
}
