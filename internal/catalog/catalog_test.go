package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gauravfit/coach-app/internal/domain"
)

func TestLookup_KnownEntry(t *testing.T) {
	ex := Lookup("bench-press")
	assert.Equal(t, "bench-press", ex.ID)
	assert.True(t, Known("bench-press"))
	assert.NotEmpty(t, ex.Name)
	assert.NotEmpty(t, ex.Prescription)
	assert.NotEmpty(t, ex.DemoLink)
}

func TestLookup_UnknownIDSynthesizesPlaceholder(t *testing.T) {
	ex := Lookup("foo-bar")
	assert.Equal(t, "foo-bar", ex.ID)
	assert.Equal(t, "Foo Bar", ex.Name)
	assert.Equal(t, "3 sets x 10 reps", ex.Prescription)
	assert.Equal(t, domain.PatternOther, ex.Pattern)
	assert.True(t, ex.EligibleAt(domain.LocationHome))
	assert.True(t, ex.EligibleAt(domain.LocationGym))
	assert.False(t, Known("foo-bar"))
}

func TestTitleFromID(t *testing.T) {
	assert.Equal(t, "Foo Bar", titleFromID("foo-bar"))
	assert.Equal(t, "Plank", titleFromID("plank"))
	assert.Equal(t, "Zone2 Cardio", titleFromID("zone2-cardio"))
}

func TestAlternatives_SharePatternAndLocation(t *testing.T) {
	alts := Alternatives("pushups", domain.LocationHome)
	require.NotEmpty(t, alts)
	for _, alt := range alts {
		assert.NotEqual(t, "pushups", alt.ID)
		assert.Equal(t, domain.PatternPush, alt.Pattern)
		assert.True(t, alt.EligibleAt(domain.LocationHome), alt.ID)
	}
}

func TestAlternatives_GymOnlyEntriesExcludedAtHome(t *testing.T) {
	for _, alt := range Alternatives("bench-press", domain.LocationHome) {
		assert.True(t, alt.EligibleAt(domain.LocationHome), alt.ID)
	}
}

// Every id referenced by the weekday table and the fixed routines must
// resolve to a real catalog entry, not a synthesized placeholder.
func TestWeekTable_AllIDsAreCatalogued(t *testing.T) {
	check := func(ids []string, ctx string) {
		for _, id := range ids {
			assert.True(t, Known(id), "%s references unknown id %q", ctx, id)
		}
	}
	check(MorningRoutine, "morning routine")
	check(EveningRoutine, "evening routine")
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := Day(wd)
		check(day.Home, wd.String()+" home")
		check(day.Gym, wd.String()+" gym")
	}
}

func TestWeek_MondayFirstOrder(t *testing.T) {
	week := Week()
	require.Len(t, week, 7)
	assert.Equal(t, "Monday", week[0].Day)
	assert.Equal(t, "Sunday", week[6].Day)
	// Sunday is the rest day.
	assert.Empty(t, week[6].Home)
	assert.Empty(t, week[6].Gym)
}

func TestDay_ResultIsIsolatedFromCallerMutation(t *testing.T) {
	day := Day(time.Monday)
	require.NotEmpty(t, day.Home)
	day.Home[0] = "mutated"
	day.Gym[0] = "mutated"

	fresh := Day(time.Monday)
	assert.Equal(t, "pushups", fresh.Home[0])
	assert.Equal(t, "bench-press", fresh.Gym[0])
}

func TestWeek_ResultIsIsolatedFromCallerMutation(t *testing.T) {
	week := Week()
	week[0].Gym[0] = "mutated"

	assert.Equal(t, "bench-press", Week()[0].Gym[0])
}

func TestDay_UnknownWeekdayFallsBackToRest(t *testing.T) {
	day := Day(time.Weekday(42))
	assert.Empty(t, day.Home)
	assert.Empty(t, day.Gym)
	assert.NotEmpty(t, day.Focus)
}

func TestMealPlan_BothDietsCoverAllSlots(t *testing.T) {
	for _, diet := range []domain.DietType{domain.DietVeg, domain.DietNonVeg} {
		plan := MealPlan(diet)
		require.Len(t, plan, len(domain.MealSlots), diet)
		for _, slot := range domain.MealSlots {
			meal, ok := plan[slot]
			require.True(t, ok, "%s missing %s", diet, slot)
			assert.NotEmpty(t, meal.Name)
			assert.Positive(t, meal.Calories)
			assert.Positive(t, meal.ProteinGrams)
			assert.NotEmpty(t, meal.Ingredients)
		}
	}
}

func TestMealPlan_UnknownDietDefaultsToNonVeg(t *testing.T) {
	assert.Equal(t, MealPlan(domain.DietNonVeg), MealPlan(domain.DietType("Pescatarian")))
}

func TestMealPlan_ReturnsCopy(t *testing.T) {
	plan := MealPlan(domain.DietVeg)
	plan[domain.SlotBreakfast] = domain.MealTemplate{Name: "mutated"}
	assert.NotEqual(t, "mutated", MealPlan(domain.DietVeg)[domain.SlotBreakfast].Name)
}
