package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/claude/runstrong/internal/models"
	"github.com/claude/runstrong/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Store is the storage surface the HTTP handlers need. *storage.DB satisfies
// it; tests substitute a stub.
type Store interface {
	Exercises(ctx context.Context) ([]models.Exercise, error)
	InsertExercise(ctx context.Context, in models.NewExercise) (*models.Exercise, error)
	WorkoutsByUser(ctx context.Context, userID string) ([]models.WorkoutWithExercises, error)
	CompleteWorkout(ctx context.Context, workoutID int) (*models.Workout, error)
	Seed(ctx context.Context, log *slog.Logger) (*models.SeedResult, error)
}

// Compile-time check: *storage.DB satisfies Store.
var _ Store = (*storage.DB)(nil)

// Generator produces workouts. Satisfied by *generator.Service.
type Generator interface {
	Generate(ctx context.Context, in models.GenerateWorkoutInput) (*models.WorkoutWithExercises, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  Store
	gen    Generator
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store Store, gen Generator, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		gen:    gen,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/healthz", s.handleHealthcheck)

	s.router.Post("/api/v1/workouts/generate", s.handleGenerateWorkout)
	s.router.Get("/api/v1/workouts", s.handleUserWorkouts)
	s.router.Post("/api/v1/workouts/{id}/complete", s.handleCompleteWorkout)
	s.router.Get("/api/v1/exercises", s.handleExercises)

	// Catalog mutation endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/exercises", s.handleCreateExercise)
		r.Post("/api/v1/seed", s.handleSeed)
	})
}
