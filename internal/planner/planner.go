// Package planner derives the day's workout plan from the canonical
// weekday table. Derivation is pure: same date and location always
// produce the same plan, and nothing here reads or mutates session
// state.
package planner

import (
	"time"

	"gauravfit/coach-app/internal/catalog"
	"gauravfit/coach-app/internal/domain"
)

// Derive maps a date and workout location onto the day's plan. It is
// total over all weekdays; the rest day yields an empty main workout
// regardless of location, and no input can make it fail.
func Derive(date time.Time, loc domain.Location) domain.Plan {
	day := catalog.Day(date.Weekday())
	return domain.Plan{
		Date:    date.Format("2006-01-02"),
		DayName: date.Weekday().String(),
		Focus:   day.Focus,
		Mode:    loc,
		Morning: clone(catalog.MorningRoutine),
		Workout: clone(day.WorkoutFor(loc)),
		Evening: clone(catalog.EveningRoutine),
	}
}

// clone guards the catalog's backing arrays against caller mutation.
func clone(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
