package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/claude/runstrong/internal/models"
)

// starterCatalog is the fixed exercise catalog inserted on first seed. It
// spans leg, upper-body, core, glute, and full-body groups so every duration
// tier and equipment combination has material to draw from.
var starterCatalog = []models.NewExercise{
	// Lower body
	{
		Name:            "Squats",
		MuscleGroup:     "Legs",
		EquipmentNeeded: []models.Equipment{models.EquipmentBodyweightOnly},
		Instructions:    "1. Stand with feet shoulder-width apart\n2. Lower your body by bending knees and hips\n3. Keep chest up and knees aligned with toes\n4. Lower until thighs are parallel to ground\n5. Push through heels to return to starting position",
		RunnerBenefit:   "Builds quadriceps, glutes, and core strength essential for powerful running stride and injury prevention",
	},
	{
		Name:            "Goblet Squats",
		MuscleGroup:     "Legs",
		EquipmentNeeded: []models.Equipment{models.EquipmentDumbbells, models.EquipmentKettlebells},
		Instructions:    "1. Hold a dumbbell or kettlebell at chest level\n2. Stand with feet slightly wider than shoulder-width\n3. Squat down keeping chest up and elbows inside knees\n4. Push through heels to return to start\n5. Keep weight close to body throughout movement",
		RunnerBenefit:   "Strengthens legs while improving mobility and core stability for better running posture",
	},
	{
		Name:            "Single-Leg Deadlifts",
		MuscleGroup:     "Legs",
		EquipmentNeeded: []models.Equipment{models.EquipmentDumbbells, models.EquipmentBodyweightOnly},
		Instructions:    "1. Stand on one leg with slight bend in knee\n2. Hinge at hip, reaching opposite hand toward ground\n3. Keep back straight and lift non-standing leg behind you\n4. Return to upright position with control\n5. Complete all reps before switching legs",
		RunnerBenefit:   "Develops unilateral strength, balance, and posterior chain power crucial for running efficiency",
	},
	{
		Name:            "Bulgarian Split Squats",
		MuscleGroup:     "Legs",
		EquipmentNeeded: []models.Equipment{models.EquipmentBench, models.EquipmentDumbbells},
		Instructions:    "1. Stand 2-3 feet in front of bench, place rear foot on bench\n2. Lower body until front thigh is parallel to ground\n3. Keep most weight on front leg\n4. Push through front heel to return to start\n5. Complete all reps before switching legs",
		RunnerBenefit:   "Builds single-leg strength and addresses muscle imbalances common in runners",
	},
	{
		Name:            "Calf Raises",
		MuscleGroup:     "Calves",
		EquipmentNeeded: []models.Equipment{models.EquipmentBodyweightOnly, models.EquipmentDumbbells},
		Instructions:    "1. Stand with balls of feet on elevated surface\n2. Let heels drop below level of toes\n3. Rise up on toes as high as possible\n4. Lower with control to starting position\n5. Keep legs straight throughout movement",
		RunnerBenefit:   "Strengthens calf muscles for better push-off power and Achilles tendon health",
	},

	// Upper body
	{
		Name:            "Push-ups",
		MuscleGroup:     "Chest",
		EquipmentNeeded: []models.Equipment{models.EquipmentBodyweightOnly},
		Instructions:    "1. Start in plank position with hands slightly wider than shoulders\n2. Lower body until chest nearly touches ground\n3. Keep body in straight line from head to heels\n4. Push back to starting position\n5. Engage core throughout movement",
		RunnerBenefit:   "Builds upper body and core strength for better arm swing and posture during long runs",
	},
	{
		Name:            "Dumbbell Rows",
		MuscleGroup:     "Back",
		EquipmentNeeded: []models.Equipment{models.EquipmentDumbbells, models.EquipmentBench},
		Instructions:    "1. Place one knee and hand on bench for support\n2. Hold dumbbell in opposite hand with arm extended\n3. Pull dumbbell to side of torso, squeezing shoulder blade\n4. Lower weight with control\n5. Complete all reps before switching sides",
		RunnerBenefit:   "Strengthens upper back and rear delts to counteract forward head posture from running",
	},
	{
		Name:            "Overhead Press",
		MuscleGroup:     "Shoulders",
		EquipmentNeeded: []models.Equipment{models.EquipmentDumbbells, models.EquipmentBarbell},
		Instructions:    "1. Stand with feet shoulder-width apart\n2. Hold weights at shoulder height with palms facing forward\n3. Press weights straight up until arms are fully extended\n4. Lower weights back to shoulder height with control\n5. Keep core engaged throughout movement",
		RunnerBenefit:   "Develops shoulder stability and strength for efficient arm swing mechanics",
	},
	{
		Name:            "Pull-ups",
		MuscleGroup:     "Back",
		EquipmentNeeded: []models.Equipment{models.EquipmentPullUpBar},
		Instructions:    "1. Hang from pull-up bar with palms facing away\n2. Pull body up until chin clears the bar\n3. Focus on squeezing shoulder blades together\n4. Lower body with control to full arm extension\n5. Avoid swinging or using momentum",
		RunnerBenefit:   "Builds lat strength and grip endurance while improving overall upper body power",
	},

	// Core
	{
		Name:            "Plank",
		MuscleGroup:     "Core",
		EquipmentNeeded: []models.Equipment{models.EquipmentBodyweightOnly},
		Instructions:    "1. Start in push-up position on forearms\n2. Keep body in straight line from head to heels\n3. Engage core and glutes\n4. Breathe normally while holding position\n5. Avoid sagging hips or raising butt",
		RunnerBenefit:   "Develops core stability and endurance essential for maintaining proper running form over distance",
	},
	{
		Name:            "Russian Twists",
		MuscleGroup:     "Core",
		EquipmentNeeded: []models.Equipment{models.EquipmentBodyweightOnly, models.EquipmentDumbbells},
		Instructions:    "1. Sit with knees bent and feet slightly off ground\n2. Lean back to create V-shape with torso and thighs\n3. Rotate torso left and right, touching ground beside hips\n4. Keep chest up and core engaged\n5. Add weight for increased difficulty",
		RunnerBenefit:   "Strengthens obliques and rotational core stability for better torso control while running",
	},
	{
		Name:            "Dead Bug",
		MuscleGroup:     "Core",
		EquipmentNeeded: []models.Equipment{models.EquipmentBodyweightOnly},
		Instructions:    "1. Lie on back with arms extended toward ceiling\n2. Bring knees to 90-degree angle over hips\n3. Slowly extend opposite arm and leg away from body\n4. Return to starting position with control\n5. Alternate sides while keeping core engaged",
		RunnerBenefit:   "Improves core stability and coordination while teaching proper hip and shoulder dissociation",
	},
	{
		Name:            "Mountain Climbers",
		MuscleGroup:     "Core",
		EquipmentNeeded: []models.Equipment{models.EquipmentBodyweightOnly},
		Instructions:    "1. Start in push-up position\n2. Bring one knee toward chest while keeping other leg extended\n3. Quickly switch leg positions\n4. Continue alternating legs at rapid pace\n5. Keep hips level and core tight",
		RunnerBenefit:   "Builds core strength while improving cardiovascular fitness and running-specific movement patterns",
	},

	// Glutes
	{
		Name:            "Glute Bridges",
		MuscleGroup:     "Glutes",
		EquipmentNeeded: []models.Equipment{models.EquipmentBodyweightOnly, models.EquipmentDumbbells},
		Instructions:    "1. Lie on back with knees bent and feet flat on ground\n2. Squeeze glutes and lift hips toward ceiling\n3. Create straight line from knees to shoulders\n4. Hold briefly at top, then lower with control\n5. Focus on glute activation, not just hip height",
		RunnerBenefit:   "Activates and strengthens glutes for better hip extension power and reduced knee stress",
	},
	{
		Name:            "Lateral Lunges",
		MuscleGroup:     "Legs",
		EquipmentNeeded: []models.Equipment{models.EquipmentBodyweightOnly, models.EquipmentDumbbells},
		Instructions:    "1. Stand with feet together\n2. Step wide to one side, bending that knee\n3. Keep other leg straight and chest up\n4. Push off bent leg to return to center\n5. Alternate sides or complete all reps on one side first",
		RunnerBenefit:   "Strengthens glutes and improves lateral stability to prevent IT band issues and improve running efficiency",
	},

	// Full body
	{
		Name:            "Burpees",
		MuscleGroup:     "Full Body",
		EquipmentNeeded: []models.Equipment{models.EquipmentBodyweightOnly},
		Instructions:    "1. Start standing, drop into squat position\n2. Place hands on ground and jump feet back to plank\n3. Perform push-up (optional)\n4. Jump feet back to squat position\n5. Jump up with arms overhead to complete one rep",
		RunnerBenefit:   "Builds total-body strength and cardiovascular endurance while improving explosive power",
	},
	{
		Name:            "Kettlebell Swings",
		MuscleGroup:     "Full Body",
		EquipmentNeeded: []models.Equipment{models.EquipmentKettlebells},
		Instructions:    "1. Stand with feet wider than shoulder-width, hold kettlebell with both hands\n2. Hinge at hips and swing kettlebell between legs\n3. Drive hips forward explosively to swing kettlebell to chest height\n4. Let kettlebell fall naturally while hinging at hips\n5. Keep core engaged and back straight throughout",
		RunnerBenefit:   "Develops explosive hip extension and posterior chain power crucial for running speed and efficiency",
	},
	{
		Name:            "Step-ups",
		MuscleGroup:     "Legs",
		EquipmentNeeded: []models.Equipment{models.EquipmentBench, models.EquipmentDumbbells},
		Instructions:    "1. Stand facing bench or step\n2. Step up with one foot, placing entire foot on surface\n3. Drive through heel to lift body up\n4. Step down with control\n5. Complete all reps on one leg before switching",
		RunnerBenefit:   "Builds unilateral leg strength and power transfer similar to running stride mechanics",
	},
}

// Seed inserts the starter catalog unless the exercises table already has
// rows. Idempotent: a second run reports count 0 and changes nothing.
func (db *DB) Seed(ctx context.Context, log *slog.Logger) (*models.SeedResult, error) {
	count, err := db.CountExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking catalog: %w", err)
	}
	if count > 0 {
		log.Info("catalog already seeded", "existing", count)
		return &models.SeedResult{Message: "Database already seeded", Count: 0}, nil
	}

	inserted, err := db.SeedExercises(ctx, starterCatalog)
	if err != nil {
		return nil, err
	}
	for i, e := range starterCatalog {
		log.Info("seeded exercise", "n", i+1, "name", e.Name, "muscle_group", e.MuscleGroup)
	}
	return &models.SeedResult{Message: "Database seeded successfully", Count: inserted}, nil
}
