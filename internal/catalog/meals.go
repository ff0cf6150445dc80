package catalog

import "gauravfit/coach-app/internal/domain"

// Targets are the fixed daily nutrition and activity goals.
var Targets = domain.NutritionTargets{
	Calories:     2300,
	ProteinGrams: 120,
	WaterLiters:  3.5,
	Steps:        9000,
}

// mealTemplates holds the fixed meal plan per diet type and slot.
var mealTemplates = map[domain.DietType]map[domain.MealSlot]domain.MealTemplate{
	domain.DietNonVeg: {
		domain.SlotBreakfast: {
			Name: "Eggs & Toast", Calories: 500, ProteinGrams: 25,
			Ingredients: []string{"3 Eggs", "2 Brown Bread", "Butter"},
		},
		domain.SlotLunch: {
			Name: "Chicken Curry & Rice", Calories: 700, ProteinGrams: 40,
			Ingredients: []string{"Chicken Breast 150g", "Rice 1 cup", "Veg Salad"},
		},
		domain.SlotSnack: {
			Name: "Protein Shake & Fruit", Calories: 250, ProteinGrams: 25,
			Ingredients: []string{"Whey Scoop", "Apple"},
		},
		domain.SlotDinner: {
			Name: "Fish/Chicken & Veggies", Calories: 500, ProteinGrams: 35,
			Ingredients: []string{"Fish/Chicken 150g", "Mixed Veggies", "1 Roti"},
		},
	},
	domain.DietVeg: {
		domain.SlotBreakfast: {
			Name: "Paneer Sandwich / Sprouts", Calories: 450, ProteinGrams: 20,
			Ingredients: []string{"Paneer 100g", "Bread", "Sprouts"},
		},
		domain.SlotLunch: {
			Name: "Dal, Paneer & Rice", Calories: 700, ProteinGrams: 25,
			Ingredients: []string{"Dal 1 bowl", "Paneer 100g", "Rice"},
		},
		domain.SlotSnack: {
			Name: "Greek Yogurt / Whey", Calories: 250, ProteinGrams: 25,
			Ingredients: []string{"Yogurt/Whey", "Berries"},
		},
		domain.SlotDinner: {
			Name: "Soya Chunks Stir Fry", Calories: 450, ProteinGrams: 30,
			Ingredients: []string{"Soya Chunks 50g", "Veggies", "Olive Oil"},
		},
	},
}

// MealPlan returns the four slot templates for a diet type in serving
// order. Unknown diet types resolve to the Non-veg plan.
func MealPlan(diet domain.DietType) map[domain.MealSlot]domain.MealTemplate {
	plan, ok := mealTemplates[diet]
	if !ok {
		plan = mealTemplates[domain.DietNonVeg]
	}
	out := make(map[domain.MealSlot]domain.MealTemplate, len(plan))
	for slot, meal := range plan {
		out[slot] = meal
	}
	return out
}
