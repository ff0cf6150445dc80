package domain

// DietType distinguishes the two supported meal plans.
type DietType string

const (
	DietVeg    DietType = "Veg"
	DietNonVeg DietType = "Non-veg"
)

// ParseDietType maps free-form input onto a DietType, defaulting to Non-veg.
func ParseDietType(s string) DietType {
	if s == string(DietVeg) {
		return DietVeg
	}
	return DietNonVeg
}

// MealSlot is one of the four daily meal slots.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotSnack     MealSlot = "snack"
	SlotDinner    MealSlot = "dinner"
)

// MealSlots lists the slots in serving order.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotSnack, SlotDinner}

// MealTemplate is one fixed meal suggestion for a diet type and slot.
type MealTemplate struct {
	Name         string   `json:"name"`
	Calories     int      `json:"calories"`
	ProteinGrams int      `json:"protein"`
	Ingredients  []string `json:"ingredients,omitempty"`
}

// NutritionTargets are the fixed daily nutrition/activity goals.
type NutritionTargets struct {
	Calories     int     `json:"calories"`
	ProteinGrams int     `json:"protein"`
	WaterLiters  float64 `json:"water"`
	Steps        int     `json:"steps"`
}
