package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gauravfit/coach-app/internal/domain"
	"gauravfit/coach-app/internal/repository"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
}

func newTestManager() *Manager {
	m := NewManager(nil)
	m.now = fixedNow
	return m
}

func TestSnapshot_SeedsOnFirstRead(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	snap := m.Snapshot(ctx)
	assert.Equal(t, DefaultProfile(), snap.Profile)
	assert.Zero(t, snap.Log.ProteinGrams)
	assert.Zero(t, snap.Log.Steps)
	assert.Empty(t, snap.Log.CompletedTaskIDs)

	require.Len(t, snap.History, 5)
	// Five days back to yesterday, weight trending down to the profile
	// baseline.
	assert.Equal(t, "2026-02-25", snap.History[0].Date)
	assert.Equal(t, "2026-03-01", snap.History[4].Date)
	assert.InDelta(t, 61.0, snap.History[0].WeightKg, 1e-9)
	assert.InDelta(t, 60.2, snap.History[4].WeightKg, 1e-9)
	assert.Equal(t, 11, snap.History[0].TaskCount)
	assert.Equal(t, 11, snap.History[4].TaskCount)
}

func TestToggleTask_IsSelfInverse(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	assert.True(t, m.ToggleTask(ctx, "plank"))
	assert.True(t, m.Snapshot(ctx).Log.CompletedTaskIDs["plank"])

	assert.False(t, m.ToggleTask(ctx, "plank"))
	assert.NotContains(t, m.Snapshot(ctx).Log.CompletedTaskIDs, "plank")
}

func TestToggleTask_AcceptsUncataloguedIDs(t *testing.T) {
	m := newTestManager()
	assert.True(t, m.ToggleTask(context.Background(), "foo-bar"))
}

func TestAccumulators(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	assert.Equal(t, 25, m.AddProtein(ctx, 25))
	assert.Equal(t, 55, m.AddProtein(ctx, 30))
	assert.InDelta(t, 0.75, m.AddWater(ctx, 0.75), 1e-9)
	assert.InDelta(t, 1.0, m.AddWater(ctx, 0.25), 1e-9)
	assert.Equal(t, 4500, m.AddSteps(ctx, 4500))

	m.RecordSoreness(ctx, 7)
	snap := m.Snapshot(ctx)
	assert.Equal(t, 55, snap.Log.ProteinGrams)
	assert.InDelta(t, 1.0, snap.Log.WaterLiters, 1e-9)
	assert.Equal(t, 4500, snap.Log.Steps)
	assert.Equal(t, 7, snap.Log.SorenessScore)
}

func TestRecordSoreness_Overwrites(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()
	m.RecordSoreness(ctx, 9)
	m.RecordSoreness(ctx, 3)
	assert.Equal(t, 3, m.Snapshot(ctx).Log.SorenessScore)
}

func TestAppendHistoryEntry(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.ToggleTask(ctx, "plank")
	m.ToggleTask(ctx, "pushups")

	entry := m.AppendHistoryEntry(ctx, 59.5)
	assert.Equal(t, "2026-03-02", entry.Date)
	assert.InDelta(t, 59.5, entry.WeightKg, 1e-9)
	assert.Equal(t, 2, entry.TaskCount)

	snap := m.Snapshot(ctx)
	require.Len(t, snap.History, 6)
	assert.Equal(t, entry, snap.History[5])
	// The weigh-in also becomes the profile weight.
	assert.InDelta(t, 59.5, snap.Profile.WeightKg, 1e-9)
}

func TestAppendHistoryEntry_DuplicateDatesAllowed(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()
	m.AppendHistoryEntry(ctx, 59.8)
	m.AppendHistoryEntry(ctx, 59.6)
	assert.Len(t, m.Snapshot(ctx).History, 7)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	loc := domain.LocationGym
	weight := 62.5
	updated := m.UpdateProfile(ctx, domain.ProfileUpdate{
		WorkoutLocation: &loc,
		WeightKg:        &weight,
	})

	assert.Equal(t, domain.LocationGym, updated.WorkoutLocation)
	assert.InDelta(t, 62.5, updated.WeightKg, 1e-9)
	// Untouched fields keep their seeded values.
	assert.Equal(t, "Gaurav", updated.Name)
	assert.Equal(t, domain.DietNonVeg, updated.DietType)
	assert.Equal(t, 1, updated.KegelLevel)
}

func TestResetAll_ReproducesSeedExactly(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	seeded := m.Snapshot(ctx)
	m.ToggleTask(ctx, "plank")
	m.AddProtein(ctx, 80)
	m.AppendHistoryEntry(ctx, 58.0)
	m.AppendMessage(domain.RoleUser, "hello")

	m.ResetAll(ctx)

	assert.Equal(t, seeded, m.Snapshot(ctx))
	assert.Empty(t, m.Messages())
}

func TestSnapshot_IsIsolatedFromInternalState(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	snap := m.Snapshot(ctx)
	snap.Log.CompletedTaskIDs["plank"] = true
	snap.Profile.Name = "mutated"
	snap.History[0].WeightKg = 0

	fresh := m.Snapshot(ctx)
	assert.Empty(t, fresh.Log.CompletedTaskIDs)
	assert.Equal(t, "Gaurav", fresh.Profile.Name)
	assert.InDelta(t, 61.0, fresh.History[0].WeightKg, 1e-9)
}

func TestChatLog(t *testing.T) {
	m := newTestManager()

	first := m.AppendMessage(domain.RoleUser, "how much protein?")
	second := m.AppendMessage(domain.RoleModel, "aim for 120 g")
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	msgs := m.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
	assert.Equal(t, domain.RoleModel, msgs[1].Role)

	m.ResetChat()
	assert.Empty(t, m.Messages())
}

// stubRepo records calls and can serve a canned snapshot.
type stubRepo struct {
	saved   *domain.SessionSnapshot
	stored  *domain.SessionSnapshot
	deleted bool
	loadErr error
	saveErr error
}

func (r *stubRepo) Save(_ context.Context, snap *domain.SessionSnapshot) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = snap
	return nil
}

func (r *stubRepo) Load(_ context.Context) (*domain.SessionSnapshot, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.stored, nil
}

func (r *stubRepo) Delete(_ context.Context) error {
	r.deleted = true
	return nil
}

func TestInitialize_PersistedSnapshotWinsOverSeed(t *testing.T) {
	stored := &domain.SessionSnapshot{
		Profile: domain.UserProfile{Name: "Restored", WeightKg: 58.2},
		Log:     domain.NewDailyLog(),
	}
	repo := &stubRepo{stored: stored}

	m := NewManager(repo)
	m.now = fixedNow

	snap := m.Snapshot(context.Background())
	assert.Equal(t, "Restored", snap.Profile.Name)
	assert.Empty(t, snap.History)
}

func TestInitialize_SeedsWhenNothingPersisted(t *testing.T) {
	repo := &stubRepo{loadErr: repository.ErrNotFound}
	m := NewManager(repo)
	m.now = fixedNow

	snap := m.Snapshot(context.Background())
	assert.Equal(t, DefaultProfile(), snap.Profile)
	// The fresh seed is mirrored into the repository.
	require.NotNil(t, repo.saved)
	assert.Equal(t, DefaultProfile(), repo.saved.Profile)
}

func TestPersist_FailureDoesNotBreakSession(t *testing.T) {
	repo := &stubRepo{loadErr: repository.ErrNotFound, saveErr: errors.New("mongo down")}
	m := NewManager(repo)
	m.now = fixedNow

	assert.Equal(t, 30, m.AddProtein(context.Background(), 30))
}

func TestResetAll_DeletesPersistedSnapshot(t *testing.T) {
	repo := &stubRepo{loadErr: repository.ErrNotFound}
	m := NewManager(repo)
	m.now = fixedNow

	m.ResetAll(context.Background())
	assert.True(t, repo.deleted)
}
