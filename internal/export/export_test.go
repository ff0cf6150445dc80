package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gauravfit/coach-app/internal/catalog"
	"gauravfit/coach-app/internal/domain"
	"gauravfit/coach-app/internal/planner"
)

func TestDaySheet_ContainsEveryTask(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	plan := planner.Derive(monday, domain.LocationGym)
	profile := domain.UserProfile{Name: "Gaurav"}

	sheet := DaySheet(plan, profile, catalog.Targets)

	assert.Contains(t, sheet, "# Gaurav Fit Coach")
	assert.Contains(t, sheet, "2026-03-02 (Monday)")
	for _, id := range plan.TaskIDs() {
		assert.Contains(t, sheet, "("+id+")")
	}
	// Checklist entries render unticked.
	assert.Contains(t, sheet, "- [ ] **Barbell Bench Press** (bench-press)")
	assert.Contains(t, sheet, "| 2300 kcal | 120 g | 3.5 L | 9000 |")
}

func TestDaySheet_RestDay(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	plan := planner.Derive(sunday, domain.LocationHome)

	sheet := DaySheet(plan, domain.UserProfile{Name: "Gaurav"}, catalog.Targets)
	assert.Contains(t, sheet, "Rest day")
	// The routines still show up on rest days.
	assert.Contains(t, sheet, "## Morning Routine")
	assert.Contains(t, sheet, "## Evening & Recovery")
}

func TestStateJSON(t *testing.T) {
	snap := domain.SessionSnapshot{
		Profile: domain.UserProfile{Name: "Gaurav", WeightKg: 60},
		Log:     domain.NewDailyLog(),
		History: []domain.HistoryEntry{
			{Date: "2026-03-01", WeightKg: 60.2, TaskCount: 11},
		},
	}

	data, err := StateJSON(snap)
	require.NoError(t, err)

	var decoded struct {
		Profile domain.UserProfile    `json:"profile"`
		History []domain.HistoryEntry `json:"history"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, snap.Profile, decoded.Profile)
	assert.Equal(t, snap.History, decoded.History)

	// Day counters are deliberately not part of the export.
	assert.NotContains(t, string(data), "proteinGrams")
}
