package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestEquipmentValid(t *testing.T) {
	for _, e := range AllEquipment {
		if !e.Valid() {
			t.Errorf("%q should be valid", e)
		}
	}
	for _, e := range []Equipment{"", "treadmill", "Dumbbells", "body weight"} {
		if e.Valid() {
			t.Errorf("%q should be invalid", e)
		}
	}
}

func TestValidateEquipmentList(t *testing.T) {
	if err := ValidateEquipmentList("available_equipment", nil); !errors.Is(err, ErrValidation) {
		t.Errorf("empty list: err = %v, want ErrValidation", err)
	}
	if err := ValidateEquipmentList("available_equipment", []Equipment{EquipmentDumbbells, "rowing_machine"}); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown member: err = %v, want ErrValidation", err)
	}
	if err := ValidateEquipmentList("available_equipment", []Equipment{EquipmentDumbbells, EquipmentBodyweightOnly}); err != nil {
		t.Errorf("valid list: err = %v", err)
	}
}

func TestNewExerciseValidate(t *testing.T) {
	valid := NewExercise{
		Name:            "Goblet Squats",
		MuscleGroup:     "Legs",
		EquipmentNeeded: []Equipment{EquipmentDumbbells, EquipmentKettlebells},
		Instructions:    "Hold a weight at chest height and squat.",
		RunnerBenefit:   "Builds quad strength for hills.",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid exercise: err = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*NewExercise)
	}{
		{"empty name", func(e *NewExercise) { e.Name = "" }},
		{"empty muscle group", func(e *NewExercise) { e.MuscleGroup = "" }},
		{"empty instructions", func(e *NewExercise) { e.Instructions = "" }},
		{"empty runner benefit", func(e *NewExercise) { e.RunnerBenefit = "" }},
		{"no equipment", func(e *NewExercise) { e.EquipmentNeeded = nil }},
		{"bad equipment", func(e *NewExercise) { e.EquipmentNeeded = []Equipment{"sled"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			if err := e.Validate(); !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestGenerateWorkoutInputValidate(t *testing.T) {
	valid := GenerateWorkoutInput{
		UserID:             "user-1",
		DurationMinutes:    45,
		AvailableEquipment: []Equipment{EquipmentDumbbells},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid input: err = %v", err)
	}

	for _, d := range []int{15, 120} {
		in := valid
		in.DurationMinutes = d
		if err := in.Validate(); err != nil {
			t.Errorf("duration %d should be accepted: %v", d, err)
		}
	}
	for _, d := range []int{0, 14, 121, -5} {
		in := valid
		in.DurationMinutes = d
		if err := in.Validate(); !errors.Is(err, ErrValidation) {
			t.Errorf("duration %d: err = %v, want ErrValidation", d, err)
		}
	}
}

// TestWorkoutJSON pins the wire shape clients depend on, in particular that
// completed_at serializes as null until the workout is completed.
func TestWorkoutJSON(t *testing.T) {
	w := WorkoutWithExercises{
		Workout: Workout{
			ID:              7,
			UserID:          "user-1",
			Name:            "30min Legs & Core Workout",
			DurationMinutes: 30,
			EquipmentUsed:   []Equipment{EquipmentDumbbells},
		},
		Exercises: []WorkoutExerciseDetail{},
	}

	raw, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if v, ok := decoded["completed_at"]; !ok || v != nil {
		t.Errorf("completed_at = %v, want explicit null", v)
	}
	if decoded["is_completed"] != false {
		t.Errorf("is_completed = %v, want false", decoded["is_completed"])
	}
	if _, ok := decoded["exercises"].([]any); !ok {
		t.Errorf("exercises should serialize as an array, got %T", decoded["exercises"])
	}
	for _, key := range []string{"user_id", "duration_minutes", "equipment_used"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing field %q", key)
		}
	}
}
