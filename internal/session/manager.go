// Package session owns all mutable application state: the user
// profile, today's log, the progress history and the coach chat log.
// State lives in memory for the lifetime of the session; when a
// SessionRepository is supplied, every mutation is mirrored into it so
// a restart resumes where the user left off.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gauravfit/coach-app/internal/domain"
	"gauravfit/coach-app/internal/repository"
)

// DefaultProfile returns the fixed profile the session starts with.
func DefaultProfile() domain.UserProfile {
	return domain.UserProfile{
		Name:            "Gaurav",
		WeightKg:        60,
		HeightLabel:     `5'7"`,
		DietType:        domain.DietNonVeg,
		WorkoutLocation: domain.LocationHome,
		ExperienceLevel: domain.LevelIntermediate,
		Injuries:        []string{},
		KegelLevel:      1,
	}
}

// demoTaskCounts keeps the seeded history deterministic so a reset
// always reproduces the exact same state.
var demoTaskCounts = [5]int{11, 12, 10, 12, 11}

// Manager is the single owner of session state. All access goes
// through its methods; the mutex covers the goroutine-per-request
// model of the HTTP server.
type Manager struct {
	mu    sync.Mutex
	repo  repository.SessionRepository // nil means memory-only
	now   func() time.Time
	state *domain.SessionSnapshot // nil until first access
	chat  []domain.ChatMessage
}

// NewManager creates a session manager. repo may be nil to run
// without persistence.
func NewManager(repo repository.SessionRepository) *Manager {
	return &Manager{repo: repo, now: time.Now}
}

// initializeIfAbsent populates the state on first access. Repeated
// calls are no-ops once state exists. A persisted snapshot, when
// available, wins over the demo seed. Callers must hold mu.
func (m *Manager) initializeIfAbsent(ctx context.Context) {
	if m.state != nil {
		return
	}
	if m.repo != nil {
		snap, err := m.repo.Load(ctx)
		if err == nil {
			m.state = snap
			if m.state.Log.CompletedTaskIDs == nil {
				m.state.Log.CompletedTaskIDs = make(map[string]bool)
			}
			return
		}
		if !errors.Is(err, repository.ErrNotFound) {
			logrus.WithError(err).Warn("session: failed to load persisted snapshot, seeding fresh state")
		}
	}
	m.state = m.seed()
	m.persist(ctx)
}

// seed builds the initial demo state: default profile, zeroed log and
// five synthetic history entries one day apart with slightly
// decreasing weight.
func (m *Manager) seed() *domain.SessionSnapshot {
	profile := DefaultProfile()
	today := m.now()
	history := make([]domain.HistoryEntry, 0, len(demoTaskCounts))
	for i := len(demoTaskCounts); i >= 1; i-- {
		history = append(history, domain.HistoryEntry{
			Date:      today.AddDate(0, 0, -i).Format("2006-01-02"),
			WeightKg:  profile.WeightKg + 0.2*float64(i),
			TaskCount: demoTaskCounts[len(demoTaskCounts)-i],
		})
	}
	return &domain.SessionSnapshot{
		Profile: profile,
		Log:     domain.NewDailyLog(),
		History: history,
	}
}

// persist mirrors the current state into the repository. Persistence
// is best-effort: a storage failure must not break the session.
func (m *Manager) persist(ctx context.Context) {
	if m.repo == nil || m.state == nil {
		return
	}
	if err := m.repo.Save(ctx, m.state); err != nil {
		logrus.WithError(err).Warn("session: failed to persist snapshot")
	}
}

// Snapshot returns a deep copy of the full session state, seeding it
// first if this is the first access.
func (m *Manager) Snapshot(ctx context.Context) domain.SessionSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initializeIfAbsent(ctx)
	return copySnapshot(m.state)
}

// Profile returns a copy of the current user profile.
func (m *Manager) Profile(ctx context.Context) domain.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initializeIfAbsent(ctx)
	return copyProfile(&m.state.Profile)
}

// ToggleTask flips the completion state of an exercise id and reports
// the new state. Any id may be toggled; there is no validation against
// the current day's plan.
func (m *Manager) ToggleTask(ctx context.Context, exerciseID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initializeIfAbsent(ctx)
	log := &m.state.Log
	if log.CompletedTaskIDs[exerciseID] {
		delete(log.CompletedTaskIDs, exerciseID)
	} else {
		log.CompletedTaskIDs[exerciseID] = true
	}
	m.persist(ctx)
	return log.CompletedTaskIDs[exerciseID]
}

// AddProtein adds grams to the protein counter. No bounds, no sign
// validation: callers pass fixed positive increments.
func (m *Manager) AddProtein(ctx context.Context, grams int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initializeIfAbsent(ctx)
	m.state.Log.ProteinGrams += grams
	m.persist(ctx)
	return m.state.Log.ProteinGrams
}

// AddWater adds liters to the water counter.
func (m *Manager) AddWater(ctx context.Context, liters float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initializeIfAbsent(ctx)
	m.state.Log.WaterLiters += liters
	m.persist(ctx)
	return m.state.Log.WaterLiters
}

// AddSteps adds to the step counter.
func (m *Manager) AddSteps(ctx context.Context, steps int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initializeIfAbsent(ctx)
	m.state.Log.Steps += steps
	m.persist(ctx)
	return m.state.Log.Steps
}

// RecordSoreness sets the soreness score directly. The 0-10 range is
// expected but not enforced.
func (m *Manager) RecordSoreness(ctx context.Context, score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initializeIfAbsent(ctx)
	m.state.Log.SorenessScore = score
	m.persist(ctx)
}

// AppendHistoryEntry logs today's weight. The entry carries the
// current completed-task count, the profile weight is updated to the
// new value, and duplicate dates are allowed.
func (m *Manager) AppendHistoryEntry(ctx context.Context, weightKg float64) domain.HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initializeIfAbsent(ctx)
	entry := domain.HistoryEntry{
		Date:      m.now().Format("2006-01-02"),
		WeightKg:  weightKg,
		TaskCount: m.state.Log.CompletedCount(),
	}
	m.state.History = append(m.state.History, entry)
	m.state.Profile.WeightKg = weightKg
	m.persist(ctx)
	return entry
}

// UpdateProfile applies a partial update: only the fields present in
// the request change. It never partial-fails.
func (m *Manager) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) domain.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initializeIfAbsent(ctx)
	p := &m.state.Profile
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.WeightKg != nil {
		p.WeightKg = *upd.WeightKg
	}
	if upd.HeightLabel != nil {
		p.HeightLabel = *upd.HeightLabel
	}
	if upd.DietType != nil {
		p.DietType = *upd.DietType
	}
	if upd.WorkoutLocation != nil {
		p.WorkoutLocation = *upd.WorkoutLocation
	}
	if upd.ExperienceLevel != nil {
		p.ExperienceLevel = *upd.ExperienceLevel
	}
	if upd.Injuries != nil {
		p.Injuries = append([]string{}, (*upd.Injuries)...)
	}
	if upd.KegelLevel != nil {
		p.KegelLevel = *upd.KegelLevel
	}
	m.persist(ctx)
	return copyProfile(p)
}

// ResetAll tears the session down to never-initialized: the next read
// re-seeds fresh demo data. The chat log and any persisted snapshot go
// with it.
func (m *Manager) ResetAll(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = nil
	m.chat = nil
	if m.repo != nil {
		if err := m.repo.Delete(ctx); err != nil {
			logrus.WithError(err).Warn("session: failed to delete persisted snapshot")
		}
	}
}

// Messages returns a copy of the coach conversation, oldest first.
func (m *Manager) Messages() []domain.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ChatMessage, len(m.chat))
	copy(out, m.chat)
	return out
}

// AppendMessage appends one turn to the coach conversation.
func (m *Manager) AppendMessage(role domain.ChatRole, content string) domain.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg := domain.ChatMessage{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
	}
	m.chat = append(m.chat, msg)
	return msg
}

// ResetChat clears the conversation wholesale.
func (m *Manager) ResetChat() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chat = nil
}

func copySnapshot(s *domain.SessionSnapshot) domain.SessionSnapshot {
	out := domain.SessionSnapshot{
		Profile: copyProfile(&s.Profile),
		Log:     s.Log,
		History: append([]domain.HistoryEntry{}, s.History...),
	}
	out.Log.CompletedTaskIDs = make(map[string]bool, len(s.Log.CompletedTaskIDs))
	for id, done := range s.Log.CompletedTaskIDs {
		out.Log.CompletedTaskIDs[id] = done
	}
	return out
}

func copyProfile(p *domain.UserProfile) domain.UserProfile {
	out := *p
	out.Injuries = append([]string{}, p.Injuries...)
	return out
}
