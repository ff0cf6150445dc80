package domain

// SessionSnapshot is the serializable shape of the session state: the
// profile, today's log and the progress history. It is both the
// persistence contract and the exported-state document.
type SessionSnapshot struct {
	Profile UserProfile    `bson:"profile" json:"profile"`
	Log     DailyLog       `bson:"log" json:"log"`
	History []HistoryEntry `bson:"history" json:"history"`
}
