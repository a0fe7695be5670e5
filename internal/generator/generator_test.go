package generator

import (
	"math/rand"
	"testing"

	"github.com/claude/runstrong/internal/models"
)

// TestTargetCount verifies the duration→exercise-count formula, including the
// clamp at both ends.
func TestTargetCount(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{15, 3},  // floor(3.75) = 3
		{16, 4},
		{20, 5},
		{30, 7},
		{32, 8},
		{45, 8},  // floor = 11, clamped to 8
		{60, 8},
		{120, 8},
	}

	for _, tt := range tests {
		if got := targetCount(tt.duration); got != tt.want {
			t.Errorf("targetCount(%d) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

// TestTierParams verifies the three duration tiers and their boundaries.
func TestTierParams(t *testing.T) {
	tests := []struct {
		duration int
		sets     int
		reps     string
		rest     int
	}{
		{15, 2, "10-15", 45},
		{30, 2, "10-15", 45},
		{31, 3, "8-12", 60},
		{45, 3, "8-12", 60},
		{59, 3, "8-12", 60},
		{60, 4, "6-10", 90},
		{120, 4, "6-10", 90},
	}

	for _, tt := range tests {
		sets, reps, rest := tierParams(tt.duration)
		if sets != tt.sets || reps != tt.reps || rest != tt.rest {
			t.Errorf("tierParams(%d) = (%d, %q, %d), want (%d, %q, %d)",
				tt.duration, sets, reps, rest, tt.sets, tt.reps, tt.rest)
		}
	}
}

func catalogOf(n int) []models.Exercise {
	exercises := make([]models.Exercise, n)
	for i := range exercises {
		exercises[i] = models.Exercise{ID: i + 1, Name: "Exercise", MuscleGroup: "Legs"}
	}
	return exercises
}

// TestSample verifies cardinality and membership only, never the identity of
// the selected exercises, since selection is random.
func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	candidates := catalogOf(10)

	selected := sample(rng, candidates, 4)
	if len(selected) != 4 {
		t.Fatalf("len(selected) = %d, want 4", len(selected))
	}

	seen := make(map[int]bool)
	for _, ex := range selected {
		if ex.ID < 1 || ex.ID > 10 {
			t.Errorf("selected exercise %d not in candidate set", ex.ID)
		}
		if seen[ex.ID] {
			t.Errorf("exercise %d selected twice", ex.ID)
		}
		seen[ex.ID] = true
	}
}

// TestSampleFewerCandidates verifies sampling is capped at the candidate count.
func TestSampleFewerCandidates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	selected := sample(rng, catalogOf(2), 8)
	if len(selected) != 2 {
		t.Errorf("len(selected) = %d, want 2", len(selected))
	}
}

// TestSampleLeavesInputIntact verifies the candidate slice is not reordered.
func TestSampleLeavesInputIntact(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	candidates := catalogOf(10)

	sample(rng, candidates, 5)

	for i, ex := range candidates {
		if ex.ID != i+1 {
			t.Fatalf("candidates[%d].ID = %d after sampling, want %d", i, ex.ID, i+1)
		}
	}
}

// TestWorkoutName verifies name composition from duration and the first two
// distinct muscle groups in first-occurrence order.
func TestWorkoutName(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		groups   []string
		want     string
	}{
		{"two groups", 45, []string{"Legs", "Core"}, "45min Legs & Core Workout"},
		{"single group", 30, []string{"Legs", "Legs"}, "30min Legs Workout"},
		{"more than two", 60, []string{"Back", "Core", "Glutes"}, "60min Back & Core Workout"},
		{"duplicates before second", 20, []string{"Core", "Core", "Legs", "Glutes"}, "20min Core & Legs Workout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := make([]models.Exercise, len(tt.groups))
			for i, g := range tt.groups {
				selected[i] = models.Exercise{ID: i + 1, MuscleGroup: g}
			}
			if got := workoutName(tt.duration, selected); got != tt.want {
				t.Errorf("workoutName(%d, %v) = %q, want %q", tt.duration, tt.groups, got, tt.want)
			}
		})
	}
}
