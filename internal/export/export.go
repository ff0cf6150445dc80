// Package export renders on-demand download artifacts: a markdown day
// sheet for the derived plan and a JSON dump of profile and history.
// Neither format is stable across versions and there is no import
// path back in.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"gauravfit/coach-app/internal/catalog"
	"gauravfit/coach-app/internal/domain"
)

// DaySheet renders the day's plan as a shareable markdown checklist.
func DaySheet(plan domain.Plan, profile domain.UserProfile, targets domain.NutritionTargets) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s Fit Coach — Today's Plan\n\n", profile.Name)
	fmt.Fprintf(&sb, "**Date:** %s (%s)\n", plan.Date, plan.DayName)
	fmt.Fprintf(&sb, "**Focus:** %s\n", plan.Focus)
	fmt.Fprintf(&sb, "**Mode:** %s\n\n", plan.Mode)

	writeSection(&sb, "Morning Routine", plan.Morning)
	if plan.IsRestDay() {
		sb.WriteString("## Main Workout\n\nRest day. Walk, foam roll, prep meals.\n\n")
	} else {
		writeSection(&sb, "Main Workout", plan.Workout)
	}
	writeSection(&sb, "Evening & Recovery", plan.Evening)

	sb.WriteString("## Nutrition Targets\n\n")
	fmt.Fprintf(&sb, "| Calories | Protein | Water | Steps |\n")
	fmt.Fprintf(&sb, "|---|---|---|---|\n")
	fmt.Fprintf(&sb, "| %d kcal | %d g | %.1f L | %d |\n",
		targets.Calories, targets.ProteinGrams, targets.WaterLiters, targets.Steps)

	return sb.String()
}

func writeSection(sb *strings.Builder, title string, ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n\n", title)
	for _, id := range ids {
		ex := catalog.Lookup(id)
		fmt.Fprintf(sb, "- [ ] **%s** (%s) — %s", ex.Name, id, ex.Prescription)
		if ex.DemoLink != "" {
			fmt.Fprintf(sb, " · [demo](%s)", ex.DemoLink)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// exportedState is the persisted-state export shape: the full profile
// and history sequence, without the day counters.
type exportedState struct {
	Profile domain.UserProfile    `json:"profile"`
	History []domain.HistoryEntry `json:"history"`
}

// StateJSON renders the profile and history as an indented JSON
// document for download.
func StateJSON(snap domain.SessionSnapshot) ([]byte, error) {
	return json.MarshalIndent(exportedState{
		Profile: snap.Profile,
		History: snap.History,
	}, "", "  ")
}
