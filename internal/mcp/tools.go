package mcp

import (
	"context"
	"strings"

	"github.com/claude/runstrong/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseEquipmentList splits a comma-separated equipment string into enum
// values, preserving input order. Validation of membership happens downstream.
func parseEquipmentList(s string) []models.Equipment {
	var list []models.Equipment
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			list = append(list, models.Equipment(part))
		}
	}
	return list
}

// --- Tool definitions ---

var toolGenerateWorkout = mcp.NewTool("generate_workout",
	mcp.WithDescription("Generate a randomized strength-training workout for a runner. Picks exercises matching the available equipment (falling back to bodyweight-only), sized and parameterized by session duration."),
	mcp.WithString("user_id", mcp.Required(), mcp.Description("Opaque user identifier the workout belongs to")),
	mcp.WithNumber("duration_minutes", mcp.Required(), mcp.Description("Session length in minutes, 15-120")),
	mcp.WithString("available_equipment", mcp.Required(), mcp.Description("Comma-separated equipment list (e.g. 'dumbbells,bench,bodyweight_only'). Valid values: dumbbells, barbell, kettlebells, resistance_bands, pull_up_bar, bench, cable_machine, leg_press, squat_rack, bodyweight_only")),
)

var toolGetUserWorkouts = mcp.NewTool("get_user_workouts",
	mcp.WithDescription("List all workouts for a user, most recent first, each with its ordered exercise assignments."),
	mcp.WithString("user_id", mcp.Required(), mcp.Description("User identifier")),
)

var toolCompleteWorkout = mcp.NewTool("complete_workout",
	mcp.WithDescription("Mark a workout as completed with the current timestamp. Re-completing refreshes the timestamp."),
	mcp.WithNumber("workout_id", mcp.Required(), mcp.Description("Workout id")),
)

var toolGetExercises = mcp.NewTool("get_exercises",
	mcp.WithDescription("List the full exercise catalog with muscle groups, required equipment, instructions, and runner benefits."),
)

var toolCreateExercise = mcp.NewTool("create_exercise",
	mcp.WithDescription("Add a new exercise to the catalog."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exercise name")),
	mcp.WithString("muscle_group", mcp.Required(), mcp.Description("Primary muscle group (e.g. 'Legs', 'Core')")),
	mcp.WithString("equipment_needed", mcp.Required(), mcp.Description("Comma-separated equipment list")),
	mcp.WithString("instructions", mcp.Required(), mcp.Description("Step-by-step execution instructions")),
	mcp.WithString("runner_benefit", mcp.Required(), mcp.Description("Why this exercise helps runners")),
)

var toolSeedDatabase = mcp.NewTool("seed_database",
	mcp.WithDescription("Seed the exercise catalog with the fixed starter set. No-op when the catalog is already populated."),
)

// --- Tool handlers ---

func (h *handlers) generateWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id parameter is required"), nil
	}
	duration, err := req.RequireInt("duration_minutes")
	if err != nil {
		return mcp.NewToolResultError("duration_minutes parameter is required"), nil
	}
	equipmentStr, err := req.RequireString("available_equipment")
	if err != nil {
		return mcp.NewToolResultError("available_equipment parameter is required"), nil
	}

	workout, err := h.ds.GenerateWorkout(ctx, models.GenerateWorkoutInput{
		UserID:             userID,
		DurationMinutes:    duration,
		AvailableEquipment: parseEquipmentList(equipmentStr),
	})
	if err != nil {
		h.log.Error("mcp generate_workout", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workout)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getUserWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id parameter is required"), nil
	}

	workouts, err := h.ds.UserWorkouts(ctx, userID)
	if err != nil {
		h.log.Error("mcp get_user_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) completeWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workoutID, err := req.RequireInt("workout_id")
	if err != nil {
		return mcp.NewToolResultError("workout_id parameter is required"), nil
	}

	workout, err := h.ds.CompleteWorkout(ctx, workoutID)
	if err != nil {
		h.log.Error("mcp complete_workout", "error", err)
		return mcp.NewToolResultError("completion failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workout)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.Exercises(ctx)
	if err != nil {
		h.log.Error("mcp get_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) createExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := models.NewExercise{}
	var err error
	if in.Name, err = req.RequireString("name"); err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	if in.MuscleGroup, err = req.RequireString("muscle_group"); err != nil {
		return mcp.NewToolResultError("muscle_group parameter is required"), nil
	}
	equipmentStr, err := req.RequireString("equipment_needed")
	if err != nil {
		return mcp.NewToolResultError("equipment_needed parameter is required"), nil
	}
	in.EquipmentNeeded = parseEquipmentList(equipmentStr)
	if in.Instructions, err = req.RequireString("instructions"); err != nil {
		return mcp.NewToolResultError("instructions parameter is required"), nil
	}
	if in.RunnerBenefit, err = req.RequireString("runner_benefit"); err != nil {
		return mcp.NewToolResultError("runner_benefit parameter is required"), nil
	}

	exercise, err := h.ds.CreateExercise(ctx, in)
	if err != nil {
		h.log.Error("mcp create_exercise", "error", err)
		return mcp.NewToolResultError("creation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercise)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) seedDatabase(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seeded, err := h.ds.Seed(ctx)
	if err != nil {
		h.log.Error("mcp seed_database", "error", err)
		return mcp.NewToolResultError("seeding failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(seeded)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
