package catalog

import (
	"net/url"
	"strings"

	"gauravfit/coach-app/internal/domain"
)

func demoLink(query string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
}

var homeGym = []domain.Location{domain.LocationHome, domain.LocationGym}
var homeOnly = []domain.Location{domain.LocationHome}
var gymOnly = []domain.Location{domain.LocationGym}

// exercises is the immutable exercise reference catalog, keyed by id.
var exercises = map[string]domain.Exercise{
	// Bone density: impact
	"jump-rope": {
		ID: "jump-rope", Name: "Jump Rope / Pogo Hops",
		Description: "Bounce on the balls of the feet; the impact drives bone density.",
		MuscleGroup: "Calves", Prescription: "3 sets x 1 min",
		DemoLink: demoLink("how to jump rope properly"),
		Locations: homeGym, Pattern: domain.PatternGait,
	},
	"box-jumps": {
		ID: "box-jumps", Name: "Box Jumps",
		Description: "Explode up onto the box, land softly, step down to save the achilles.",
		MuscleGroup: "Quads", Prescription: "3 sets x 8 reps",
		DemoLink: demoLink("box jump technique"),
		Locations: gymOnly, Pattern: domain.PatternSquat,
	},
	"broad-jumps": {
		ID: "broad-jumps", Name: "Broad Jumps",
		Description: "Hinge, swing the arms and jump forward; land quietly in a squat.",
		MuscleGroup: "Glutes", Prescription: "3 sets x 6 reps",
		DemoLink: demoLink("standing broad jump form"),
		Locations: homeGym, Pattern: domain.PatternHinge,
	},

	// Bone density: axial loading
	"trap-bar-deadlift": {
		ID: "trap-bar-deadlift", Name: "Trap Bar Deadlift",
		Description: "Axial loading with less shear on the spine than a straight bar.",
		MuscleGroup: "Back", Prescription: "3 sets x 6-8 reps",
		DemoLink: demoLink("trap bar deadlift form"),
		Locations: gymOnly, Pattern: domain.PatternHinge,
	},
	"front-squat": {
		ID: "front-squat", Name: "Front Squat",
		Description: "Bar racked on the front delts, torso as vertical as possible.",
		MuscleGroup: "Quads", Prescription: "3 sets x 8 reps",
		DemoLink: demoLink("front squat form"),
		Locations: gymOnly, Pattern: domain.PatternSquat,
	},
	"weighted-step-ups": {
		ID: "weighted-step-ups", Name: "Weighted Step-Ups",
		Description: "Drive through the top heel; do not push off the bottom foot.",
		MuscleGroup: "Glutes", Prescription: "3 sets x 10/leg",
		DemoLink: demoLink("weighted step up form"),
		Locations: homeGym, Pattern: domain.PatternLunge,
	},
	"rucking": {
		ID: "rucking", Name: "Rucking (Weighted Walk)",
		Description: "Brisk walk under a weighted backpack; low-impact axial loading.",
		MuscleGroup: "Legs", Prescription: "20-30 min walk",
		DemoLink: demoLink("how to ruck properly"),
		Locations: homeGym, Pattern: domain.PatternGait,
	},

	// Push
	"pushups": {
		ID: "pushups", Name: "Standard Push-Up",
		Description: "Body in a straight line, elbows at 45 degrees, chest to the floor.",
		MuscleGroup: "Chest", Prescription: "3 sets x 10-15 reps",
		DemoLink: demoLink("perfect pushup form"),
		Locations: homeOnly, Pattern: domain.PatternPush,
	},
	"pike-pushups": {
		ID: "pike-pushups", Name: "Pike Push-Up",
		Description: "Hips high, lower the head between the hands.",
		MuscleGroup: "Shoulders", Prescription: "3 sets x 8-12 reps",
		DemoLink: demoLink("pike pushup progression"),
		Locations: homeOnly, Pattern: domain.PatternPush,
	},
	"chair-dips": {
		ID: "chair-dips", Name: "Tricep Chair Dips",
		Description: "Lower until the elbows reach 90 degrees; no deeper.",
		MuscleGroup: "Triceps", Prescription: "3 sets x 12-15 reps",
		DemoLink: demoLink("how to do chair dips"),
		Locations: homeOnly, Pattern: domain.PatternPush,
	},
	"bench-press": {
		ID: "bench-press", Name: "Barbell Bench Press",
		Description: "Bar to mid-chest with control, feet flat, no bouncing.",
		MuscleGroup: "Chest", Prescription: "3 sets x 8-10 reps",
		DemoLink: demoLink("bench press form"),
		Locations: gymOnly, Pattern: domain.PatternPush,
	},
	"overhead-press": {
		ID: "overhead-press", Name: "Overhead Press (OHP)",
		Description: "Press straight overhead to lockout; glutes braced to guard the back.",
		MuscleGroup: "Shoulders", Prescription: "3 sets x 8-10 reps",
		DemoLink: demoLink("overhead press form"),
		Locations: homeGym, Pattern: domain.PatternPush,
	},

	// Pull
	"pullups": {
		ID: "pullups", Name: "Pull-Ups",
		Description: "Chest towards the bar, full dead hang at the bottom.",
		MuscleGroup: "Lats", Prescription: "3 sets x Max reps",
		DemoLink: demoLink("how to do pullups"),
		Locations: homeGym, Pattern: domain.PatternPull,
	},
	"dumbbell-row": {
		ID: "dumbbell-row", Name: "Dumbbell/Backpack Row",
		Description: "Hinge at the hips, pull the weight to the hip pocket, spine neutral.",
		MuscleGroup: "Lats", Prescription: "3 sets x 12 reps",
		DemoLink: demoLink("dumbbell row form"),
		Locations: homeGym, Pattern: domain.PatternPull,
	},
	"lat-pulldown": {
		ID: "lat-pulldown", Name: "Lat Pulldown",
		Description: "Bar to the upper chest, elbows driven down, slow return.",
		MuscleGroup: "Lats", Prescription: "3 sets x 10-12 reps",
		DemoLink: demoLink("lat pulldown form"),
		Locations: gymOnly, Pattern: domain.PatternPull,
	},
	"cable-row": {
		ID: "cable-row", Name: "Seated Cable Row",
		Description: "Handle to the stomach, shoulder blades squeezed, back straight.",
		MuscleGroup: "Back", Prescription: "3 sets x 12 reps",
		DemoLink: demoLink("seated cable row form"),
		Locations: gymOnly, Pattern: domain.PatternPull,
	},
	"face-pulls": {
		ID: "face-pulls", Name: "Face Pulls",
		Description: "Rope to the forehead with external rotation; posture fixer.",
		MuscleGroup: "Rear Delts", Prescription: "3 sets x 15 reps",
		DemoLink: demoLink("face pull exercise"),
		Locations: homeGym, Pattern: domain.PatternPull,
	},

	// Legs
	"goblet-squat": {
		ID: "goblet-squat", Name: "Goblet Squat",
		Description: "Weight at chest height, sit back, chest up, drive through the heels.",
		MuscleGroup: "Quads", Prescription: "4 sets x 10-12 reps",
		DemoLink: demoLink("goblet squat form"),
		Locations: homeGym, Pattern: domain.PatternSquat,
	},
	"rdl": {
		ID: "rdl", Name: "Romanian Deadlift (RDL)",
		Description: "Hips back with a flat back until the hamstrings stretch.",
		MuscleGroup: "Hamstrings", Prescription: "3 sets x 10 reps",
		DemoLink: demoLink("rdl form"),
		Locations: homeGym, Pattern: domain.PatternHinge,
	},
	"farmer-carry": {
		ID: "farmer-carry", Name: "Farmer Carry",
		Description: "Heavy weight in each hand, tall posture, controlled steps.",
		MuscleGroup: "Forearms", Prescription: "3 sets x 45 sec",
		DemoLink: demoLink("farmer carry form"),
		Locations: homeGym, Pattern: domain.PatternGait,
	},
	"tibialis-raise": {
		ID: "tibialis-raise", Name: "Tibialis Raise",
		Description: "Lean against a wall and raise the toes; prevents shin splints.",
		MuscleGroup: "Shins", Prescription: "3 sets x 20 reps",
		DemoLink: demoLink("tibialis raise at home"),
		Locations: homeGym, Pattern: domain.PatternIsolation,
	},

	// Core & mobility
	"plank": {
		ID: "plank", Name: "Plank",
		Description: "Forearms down, body straight, glutes and abs squeezed.",
		MuscleGroup: "Core", Prescription: "3 sets x 45-60s",
		DemoLink: demoLink("perfect plank form"),
		Locations: homeGym, Pattern: domain.PatternCore,
	},
	"dead-bug": {
		ID: "dead-bug", Name: "Dead Bug",
		Description: "Opposite arm and leg lowered with the lower back pressed flat.",
		MuscleGroup: "Core", Prescription: "3 sets x 12 reps",
		DemoLink: demoLink("dead bug exercise"),
		Locations: homeGym, Pattern: domain.PatternCore,
	},
	"cat-cow": {
		ID: "cat-cow", Name: "Cat-Cow Stretch",
		Description: "Gentle spinal flexion and extension on hands and knees.",
		MuscleGroup: "Spine", Prescription: "1 min",
		DemoLink: demoLink("cat cow stretch"),
		Locations: homeGym, Pattern: domain.PatternMobility,
	},
	"zone2-cardio": {
		ID: "zone2-cardio", Name: "Zone 2 Cardio",
		Description: "Brisk walk or easy jog holding roughly 130 bpm.",
		MuscleGroup: "Cardio", Prescription: "30 min",
		DemoLink: demoLink("zone 2 cardio explained"),
		Locations: homeGym, Pattern: domain.PatternGait,
	},

	// Pelvic floor & posture
	"kegel-basic": {
		ID: "kegel-basic", Name: "Kegel Hold (Level 1)",
		Description: "Contract the pelvic floor upward for 3s, relax fully for 3s.",
		MuscleGroup: "Pelvic Floor", Prescription: "3 sets x 10 reps (3s hold)",
		DemoLink: demoLink("kegel exercises for men"),
		Locations: homeOnly, Pattern: domain.PatternIsolation,
	},
	"kegel-pulsing": {
		ID: "kegel-pulsing", Name: "Kegel Rapid Fire (Level 2)",
		Description: "Fast rhythmic squeeze-and-release for fast-twitch endurance.",
		MuscleGroup: "Pelvic Floor", Prescription: "3 sets x 20 reps (1s speed)",
		DemoLink: demoLink("rapid kegels for men"),
		Locations: homeOnly, Pattern: domain.PatternIsolation,
	},
	"reverse-kegel": {
		ID: "reverse-kegel", Name: "Reverse Kegel (Level 3)",
		Description: "Inhale into the belly and gently expand the pelvic floor out.",
		MuscleGroup: "Pelvic Floor", Prescription: "3 sets x 30s hold",
		DemoLink: demoLink("how to do reverse kegel"),
		Locations: homeOnly, Pattern: domain.PatternMobility,
	},
	"chin-tuck": {
		ID: "chin-tuck", Name: "Chin Tucks",
		Description: "Pull the head straight back into a double chin and hold 2s.",
		MuscleGroup: "Neck", Prescription: "20 reps",
		DemoLink: demoLink("chin tucks for posture"),
		Locations: homeOnly, Pattern: domain.PatternMobility,
	},

	// Daily habits carried in the morning/evening routines
	"hydration-sunlight": {
		ID: "hydration-sunlight", Name: "Hydration + Sunlight",
		Description: "500ml water with a pinch of salt and lime, taken outside.",
		MuscleGroup: "Habit", Prescription: "2 min",
		Locations: homeGym, Pattern: domain.PatternHabit,
	},
	"box-breathing": {
		ID: "box-breathing", Name: "Box Breathing",
		Description: "4-4-4-4 breathing for cortisol control.",
		MuscleGroup: "Breathwork", Prescription: "4 min",
		Locations: homeGym, Pattern: domain.PatternHabit,
	},
	"decompression-stretch": {
		ID: "decompression-stretch", Name: "Evening Decompression",
		Description: "Child's pose and pigeon holds to relax the day's tension.",
		MuscleGroup: "Full Body", Prescription: "8 min",
		DemoLink: demoLink("evening decompression stretch"),
		Locations: homeGym, Pattern: domain.PatternMobility,
	},
}

// Lookup returns the catalog entry for id. Unknown ids never fail:
// a placeholder entry is synthesized with a display name derived from
// the id ("foo-bar" -> "Foo Bar") and a generic description.
func Lookup(id string) domain.Exercise {
	if ex, ok := exercises[id]; ok {
		return ex
	}
	return domain.Exercise{
		ID:           id,
		Name:         titleFromID(id),
		Description:  "Follow standard form.",
		MuscleGroup:  "General",
		Prescription: "3 sets x 10 reps",
		DemoLink:     demoLink(id + " exercise"),
		Locations:    homeGym,
		Pattern:      domain.PatternOther,
	}
}

// Known reports whether id is a real catalog entry.
func Known(id string) bool {
	_, ok := exercises[id]
	return ok
}

// Exercises returns a copy of all catalog entries.
func Exercises() []domain.Exercise {
	out := make([]domain.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		out = append(out, ex)
	}
	return out
}

// Alternatives lists catalog entries sharing the movement pattern of
// the given exercise and eligible at the given location, excluding the
// exercise itself. Used by the task-swap feature.
func Alternatives(id string, loc domain.Location) []domain.Exercise {
	base := Lookup(id)
	var out []domain.Exercise
	for _, ex := range exercises {
		if ex.ID == id || ex.Pattern != base.Pattern {
			continue
		}
		if ex.EligibleAt(loc) {
			out = append(out, ex)
		}
	}
	return out
}

func titleFromID(id string) string {
	words := strings.Split(strings.ReplaceAll(id, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
