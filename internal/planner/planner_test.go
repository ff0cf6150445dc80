package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gauravfit/coach-app/internal/domain"
)

// 2026-03-02 is a Monday; the rest of the week follows.
func weekday(t *testing.T, wd time.Weekday) time.Time {
	t.Helper()
	monday := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	for d := 0; d < 7; d++ {
		if day := monday.AddDate(0, 0, d); day.Weekday() == wd {
			return day
		}
	}
	t.Fatalf("no %s in test week", wd)
	return time.Time{}
}

func TestDerive_MondayLists(t *testing.T) {
	monday := weekday(t, time.Monday)

	gym := Derive(monday, domain.LocationGym)
	assert.Equal(t, []string{"bench-press", "overhead-press", "chair-dips", "plank", "farmer-carry"}, gym.Workout)

	home := Derive(monday, domain.LocationHome)
	assert.Equal(t, []string{"pushups", "pike-pushups", "chair-dips", "plank", "farmer-carry"}, home.Workout)

	// Morning and evening routines do not depend on the location.
	assert.Equal(t, gym.Morning, home.Morning)
	assert.Equal(t, gym.Evening, home.Evening)
}

func TestDerive_TotalOverAllWeekdays(t *testing.T) {
	weekdays := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	for _, wd := range weekdays {
		for _, loc := range []domain.Location{domain.LocationHome, domain.LocationGym} {
			plan := Derive(weekday(t, wd), loc)
			require.NotNil(t, plan.Morning, "%s %s", wd, loc)
			require.NotNil(t, plan.Workout, "%s %s", wd, loc)
			require.NotNil(t, plan.Evening, "%s %s", wd, loc)
			assert.Equal(t, wd.String(), plan.DayName)
			assert.Equal(t, loc, plan.Mode)
			assert.NotEmpty(t, plan.Focus)
		}
	}
}

func TestDerive_SundayIsRestRegardlessOfLocation(t *testing.T) {
	sunday := weekday(t, time.Sunday)

	for _, loc := range []domain.Location{domain.LocationHome, domain.LocationGym} {
		plan := Derive(sunday, loc)
		assert.Empty(t, plan.Workout)
		assert.True(t, plan.IsRestDay())
		// Routines still apply on rest days.
		assert.NotEmpty(t, plan.Morning)
		assert.NotEmpty(t, plan.Evening)
	}
}

func TestDerive_RecoveryDaysIgnoreLocation(t *testing.T) {
	for _, wd := range []time.Weekday{time.Wednesday, time.Saturday} {
		home := Derive(weekday(t, wd), domain.LocationHome)
		gym := Derive(weekday(t, wd), domain.LocationGym)
		assert.Equal(t, home.Workout, gym.Workout, wd)
		assert.NotEmpty(t, home.Workout, wd)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	friday := weekday(t, time.Friday)
	a := Derive(friday, domain.LocationGym)
	b := Derive(friday, domain.LocationGym)
	assert.Equal(t, a, b)
}

func TestDerive_ResultIsIsolatedFromCallerMutation(t *testing.T) {
	monday := weekday(t, time.Monday)

	first := Derive(monday, domain.LocationGym)
	first.Workout[0] = "mutated"
	first.Morning[0] = "mutated"

	second := Derive(monday, domain.LocationGym)
	assert.Equal(t, "bench-press", second.Workout[0])
	assert.NotEqual(t, "mutated", second.Morning[0])
}

func TestPlan_TaskIDsOrder(t *testing.T) {
	plan := Derive(weekday(t, time.Monday), domain.LocationHome)
	ids := plan.TaskIDs()

	want := len(plan.Morning) + len(plan.Workout) + len(plan.Evening)
	require.Len(t, ids, want)
	assert.Equal(t, plan.Morning, ids[:len(plan.Morning)])
	assert.Equal(t, plan.Evening, ids[len(ids)-len(plan.Evening):])
}
