package domain

// DailyLog tracks macro/water/step counters and task completion.
// It resets only by explicit user action, not by calendar day, so
// completed task ids can outlive the plan that produced them.
type DailyLog struct {
	ProteinGrams     int             `bson:"proteinGrams" json:"proteinGrams"`
	WaterLiters      float64         `bson:"waterLiters" json:"waterLiters"`
	Steps            int             `bson:"steps" json:"steps"`
	CompletedTaskIDs map[string]bool `bson:"completedTaskIds" json:"completedTaskIds"`
	SorenessScore    int             `bson:"sorenessScore" json:"sorenessScore"` // 0-10 expected, not enforced
}

// NewDailyLog returns a zeroed log with an empty completed-task set.
func NewDailyLog() DailyLog {
	return DailyLog{CompletedTaskIDs: make(map[string]bool)}
}

// CompletedCount returns the size of the completed-task set.
func (l DailyLog) CompletedCount() int {
	return len(l.CompletedTaskIDs)
}

// HistoryEntry is one append-only progress record. Date is the ISO
// calendar date; duplicates are possible when logging twice in a day.
type HistoryEntry struct {
	Date      string  `bson:"date" json:"date"` // YYYY-MM-DD
	WeightKg  float64 `bson:"weightKg" json:"weightKg"`
	TaskCount int     `bson:"taskCount" json:"taskCount"`
}
