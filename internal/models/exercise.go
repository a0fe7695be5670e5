package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation is wrapped by all input validation failures so callers can
// map them to a 400-class response with errors.Is.
var ErrValidation = errors.New("validation failed")

// Equipment is one of the closed set of equipment tags an exercise can require.
type Equipment string

const (
	EquipmentDumbbells       Equipment = "dumbbells"
	EquipmentBarbell         Equipment = "barbell"
	EquipmentKettlebells     Equipment = "kettlebells"
	EquipmentResistanceBands Equipment = "resistance_bands"
	EquipmentPullUpBar       Equipment = "pull_up_bar"
	EquipmentBench           Equipment = "bench"
	EquipmentCableMachine    Equipment = "cable_machine"
	EquipmentLegPress        Equipment = "leg_press"
	EquipmentSquatRack       Equipment = "squat_rack"
	EquipmentBodyweightOnly  Equipment = "bodyweight_only"
)

// AllEquipment lists every valid equipment value.
var AllEquipment = []Equipment{
	EquipmentDumbbells,
	EquipmentBarbell,
	EquipmentKettlebells,
	EquipmentResistanceBands,
	EquipmentPullUpBar,
	EquipmentBench,
	EquipmentCableMachine,
	EquipmentLegPress,
	EquipmentSquatRack,
	EquipmentBodyweightOnly,
}

// Valid reports whether e is a member of the closed equipment set.
func (e Equipment) Valid() bool {
	for _, known := range AllEquipment {
		if e == known {
			return true
		}
	}
	return false
}

// ValidateEquipmentList checks that the list is non-empty and every member is
// a known equipment value. Input ordering is preserved by callers; this only
// validates membership.
func ValidateEquipmentList(field string, list []Equipment) error {
	if len(list) == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrValidation, field)
	}
	for _, e := range list {
		if !e.Valid() {
			return fmt.Errorf("%w: %s contains unknown equipment %q", ErrValidation, field, e)
		}
	}
	return nil
}

// Exercise is one reusable movement from the catalog.
type Exercise struct {
	ID              int         `json:"id"`
	Name            string      `json:"name"`
	MuscleGroup     string      `json:"muscle_group"`
	EquipmentNeeded []Equipment `json:"equipment_needed"`
	Instructions    string      `json:"instructions"`
	RunnerBenefit   string      `json:"runner_benefit"`
	CreatedAt       time.Time   `json:"created_at"`
}

// NewExercise is an exercise ready for insertion (no id or timestamp yet).
type NewExercise struct {
	Name            string      `json:"name"`
	MuscleGroup     string      `json:"muscle_group"`
	EquipmentNeeded []Equipment `json:"equipment_needed"`
	Instructions    string      `json:"instructions"`
	RunnerBenefit   string      `json:"runner_benefit"`
}

// Validate checks the non-empty string and equipment constraints.
func (e NewExercise) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if e.MuscleGroup == "" {
		return fmt.Errorf("%w: muscle_group must not be empty", ErrValidation)
	}
	if e.Instructions == "" {
		return fmt.Errorf("%w: instructions must not be empty", ErrValidation)
	}
	if e.RunnerBenefit == "" {
		return fmt.Errorf("%w: runner_benefit must not be empty", ErrValidation)
	}
	return ValidateEquipmentList("equipment_needed", e.EquipmentNeeded)
}
