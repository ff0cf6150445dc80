package domain

// Plan is the triple of exercise-id lists derived for one day.
// An empty Workout list signals a rest/recovery day.
type Plan struct {
	Date    string   `json:"date"` // YYYY-MM-DD
	DayName string   `json:"dayName"`
	Focus   string   `json:"focus"`
	Mode    Location `json:"mode"`
	Morning []string `json:"morning"`
	Workout []string `json:"workout"`
	Evening []string `json:"evening"`
}

// IsRestDay reports whether the plan carries no main workout.
func (p Plan) IsRestDay() bool {
	return len(p.Workout) == 0
}

// TaskIDs returns all exercise ids of the plan in display order.
func (p Plan) TaskIDs() []string {
	ids := make([]string, 0, len(p.Morning)+len(p.Workout)+len(p.Evening))
	ids = append(ids, p.Morning...)
	ids = append(ids, p.Workout...)
	ids = append(ids, p.Evening...)
	return ids
}
