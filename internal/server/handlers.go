package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/runstrong/internal/generator"
	"github.com/claude/runstrong/internal/models"
	"github.com/claude/runstrong/internal/storage"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleGenerateWorkout(w http.ResponseWriter, r *http.Request) {
	var in models.GenerateWorkoutInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	result, err := s.gen.Generate(r.Context(), in)
	if err != nil {
		s.writeError(w, "generate workout", err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleUserWorkouts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id parameter required"})
		return
	}

	workouts, err := s.store.WorkoutsByUser(r.Context(), userID)
	if err != nil {
		s.writeError(w, "list workouts", err)
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	workout, err := s.store.CompleteWorkout(r.Context(), id)
	if err != nil {
		s.writeError(w, "complete workout", err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.store.Exercises(r.Context())
	if err != nil {
		s.writeError(w, "list exercises", err)
		return
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var in models.NewExercise
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := in.Validate(); err != nil {
		s.writeError(w, "create exercise", err)
		return
	}

	exercise, err := s.store.InsertExercise(r.Context(), in)
	if err != nil {
		s.writeError(w, "create exercise", err)
		return
	}
	writeJSON(w, http.StatusCreated, exercise)
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	result, err := s.store.Seed(r.Context(), s.log)
	if err != nil {
		s.writeError(w, "seed database", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeError maps domain errors to status codes; anything unexpected is a 500
// and gets logged.
func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, storage.ErrWorkoutNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, generator.ErrNoMatchingExercises):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		s.log.Error(op, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
