package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/claude/runstrong/internal/models"
)

// targetCount returns the number of exercises for a session, assuming roughly
// four minutes per exercise including rest, clamped to [3, 8] so short
// sessions keep some variety and long ones stay manageable.
func targetCount(durationMinutes int) int {
	n := durationMinutes / 4
	if n < 3 {
		return 3
	}
	if n > 8 {
		return 8
	}
	return n
}

// tierParams returns the set/rep/rest values for a duration tier. Every
// exercise in a workout gets the same tuple.
func tierParams(durationMinutes int) (sets int, reps string, restSeconds int) {
	switch {
	case durationMinutes <= 30:
		return 2, "10-15", 45
	case durationMinutes >= 60:
		return 4, "6-10", 90
	default:
		return 3, "8-12", 60
	}
}

// sample draws n exercises without replacement via a uniform shuffle of a
// copy, leaving the candidate slice untouched.
func sample(rng *rand.Rand, candidates []models.Exercise, n int) []models.Exercise {
	shuffled := make([]models.Exercise, len(candidates))
	copy(shuffled, candidates)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// workoutName builds the display name from the duration and the first two
// distinct muscle groups among the selected exercises, in first-occurrence
// order.
func workoutName(durationMinutes int, selected []models.Exercise) string {
	var groups []string
	seen := make(map[string]bool)
	for _, ex := range selected {
		if !seen[ex.MuscleGroup] {
			seen[ex.MuscleGroup] = true
			groups = append(groups, ex.MuscleGroup)
		}
	}
	if len(groups) > 2 {
		groups = groups[:2]
	}
	return fmt.Sprintf("%dmin %s Workout", durationMinutes, strings.Join(groups, " & "))
}
