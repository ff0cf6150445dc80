package catalog

import (
	"time"

	"gauravfit/coach-app/internal/domain"
)

// DayConfig is the canonical weekday record: the display focus label
// and both location-keyed exercise lists live together so they cannot
// drift apart. A day with empty Home and Gym lists is a rest day; a
// day where Home and Gym are the same list ignores the location.
type DayConfig struct {
	Focus string   `json:"focus"`
	Home  []string `json:"home"`
	Gym   []string `json:"gym"`
}

// WorkoutFor selects the exercise list for a location.
func (d DayConfig) WorkoutFor(loc domain.Location) []string {
	if loc == domain.LocationGym {
		return d.Gym
	}
	return d.Home
}

// clone guards the table's backing arrays against caller mutation.
func (d DayConfig) clone() DayConfig {
	d.Home = append([]string{}, d.Home...)
	d.Gym = append([]string{}, d.Gym...)
	return d
}

// Morning and Evening routines are fixed and independent of the date.
// The morning set carries the pelvic-floor exercise variant.
var (
	MorningRoutine = []string{"hydration-sunlight", "cat-cow", "box-breathing", "kegel-basic", "chin-tuck"}
	EveningRoutine = []string{"decompression-stretch"}
)

var recoveryFlow = []string{"cat-cow", "dead-bug"}
var saturdayFlow = []string{"zone2-cardio", "dead-bug", "plank"}

// week maps every weekday to its canonical configuration.
var week = map[time.Weekday]DayConfig{
	time.Monday: {
		Focus: "Upper Body Strength (Push Focus) + Bone Loading",
		Home:  []string{"pushups", "pike-pushups", "chair-dips", "plank", "farmer-carry"},
		Gym:   []string{"bench-press", "overhead-press", "chair-dips", "plank", "farmer-carry"},
	},
	time.Tuesday: {
		Focus: "Lower Body (Squat/Lunge) + Tibialis Work",
		Home:  []string{"goblet-squat", "rdl", "weighted-step-ups", "tibialis-raise"},
		Gym:   []string{"front-squat", "rdl", "weighted-step-ups", "tibialis-raise"},
	},
	time.Wednesday: {
		Focus: "Active Recovery (Yoga + Core + Mobility)",
		Home:  recoveryFlow,
		Gym:   recoveryFlow,
	},
	time.Thursday: {
		Focus: "Upper Body Strength (Pull Focus) + Posture",
		Home:  []string{"pullups", "dumbbell-row", "chin-tuck", "rucking"},
		Gym:   []string{"lat-pulldown", "cable-row", "face-pulls", "trap-bar-deadlift"},
	},
	time.Friday: {
		Focus: "Full Body Functional + High Impact (Bone density)",
		Home:  []string{"broad-jumps", "pushups", "jump-rope"},
		Gym:   []string{"box-jumps", "trap-bar-deadlift", "jump-rope"},
	},
	time.Saturday: {
		Focus: "Cardio Zone 2 + Deep Stretch",
		Home:  saturdayFlow,
		Gym:   saturdayFlow,
	},
	time.Sunday: {
		Focus: "Rest + Meal Prep + Mental Reset",
	},
}

// restDay is the fallback for anything outside the seven known
// weekdays: an empty workout, never an error.
var restDay = week[time.Sunday]

// Day returns the canonical configuration for a weekday. Unknown
// values fall back to the rest-day record.
func Day(wd time.Weekday) DayConfig {
	if cfg, ok := week[wd]; ok {
		return cfg.clone()
	}
	return restDay.clone()
}

// WeekDay pairs a weekday name with its configuration for display.
type WeekDay struct {
	Day string `json:"day"`
	DayConfig
}

// Week returns the full weekday table in calendar order starting from
// Monday, for display of the weekly split.
func Week() []WeekDay {
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	out := make([]WeekDay, 0, len(order))
	for _, wd := range order {
		out = append(out, WeekDay{Day: wd.String(), DayConfig: week[wd].clone()})
	}
	return out
}
