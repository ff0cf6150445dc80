package domain

// Location is a place a workout can happen. It selects which exercise
// variant list applies for a given weekday.
type Location string

const (
	LocationHome Location = "Home"
	LocationGym  Location = "Gym"
)

// ParseLocation maps free-form input onto a Location, defaulting to Home.
func ParseLocation(s string) Location {
	if s == string(LocationGym) {
		return LocationGym
	}
	return LocationHome
}

// MovementPattern tags an exercise with its fundamental movement.
type MovementPattern string

const (
	PatternPush      MovementPattern = "Push"
	PatternPull      MovementPattern = "Pull"
	PatternSquat     MovementPattern = "Squat"
	PatternLunge     MovementPattern = "Lunge"
	PatternHinge     MovementPattern = "Hinge"
	PatternGait      MovementPattern = "Gait"
	PatternCore      MovementPattern = "Core"
	PatternMobility  MovementPattern = "Mobility"
	PatternIsolation MovementPattern = "Isolation"
	PatternHabit     MovementPattern = "Habit"
	PatternOther     MovementPattern = "Other"
)

// Exercise is one entry of the immutable exercise reference catalog.
type Exercise struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	MuscleGroup  string          `json:"muscleGroup,omitempty"`
	Prescription string          `json:"prescription,omitempty"` // free-text sets/reps/duration
	DemoLink     string          `json:"demoLink,omitempty"`
	Locations    []Location      `json:"locations"`
	Pattern      MovementPattern `json:"movementPattern"`
}

// EligibleAt reports whether the exercise can be performed at the
// given workout location.
func (e Exercise) EligibleAt(loc Location) bool {
	for _, l := range e.Locations {
		if l == loc {
			return true
		}
	}
	return false
}
