package domain

// ExperienceLevel grades training experience.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "Beginner"
	LevelIntermediate ExperienceLevel = "Intermediate"
	LevelAdvanced     ExperienceLevel = "Advanced"
)

// UserProfile holds the single user's settings for the session.
// There is exactly one logical profile per running instance.
type UserProfile struct {
	Name            string          `bson:"name" json:"name"`
	WeightKg        float64         `bson:"weightKg" json:"weightKg"`
	HeightLabel     string          `bson:"heightLabel" json:"heightLabel"`
	DietType        DietType        `bson:"dietType" json:"dietType"`
	WorkoutLocation Location        `bson:"workoutLocation" json:"workoutLocation"`
	ExperienceLevel ExperienceLevel `bson:"experienceLevel" json:"experienceLevel"`
	Injuries        []string        `bson:"injuries,omitempty" json:"injuries,omitempty"`
	KegelLevel      int             `bson:"kegelLevel" json:"kegelLevel"`
}

// ProfileUpdate carries a partial profile change. Only the non-nil
// fields are applied; absent fields keep their current value.
type ProfileUpdate struct {
	Name            *string          `json:"name,omitempty"`
	WeightKg        *float64         `json:"weightKg,omitempty"`
	HeightLabel     *string          `json:"heightLabel,omitempty"`
	DietType        *DietType        `json:"dietType,omitempty"`
	WorkoutLocation *Location        `json:"workoutLocation,omitempty"`
	ExperienceLevel *ExperienceLevel `json:"experienceLevel,omitempty"`
	Injuries        *[]string        `json:"injuries,omitempty"`
	KegelLevel      *int             `json:"kegelLevel,omitempty"`
}
