package store

import (
	"testing"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, st Store) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.New(),
		Email:     uuid.NewString() + "@example.com",
		Name:      "Test User",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.CreateUserAccount(user, models.NewDefaultUniverse(user.ID)))
	return user
}

func TestMissionCompleteIfPendingClaimsOnce(t *testing.T) {
	st := NewMemory()
	user := seedUser(t, st)

	claimed, err := st.Missions().CompleteIfPending(user.ID, "2026-09-01")
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = st.Missions().CompleteIfPending(user.ID, "2026-09-01")
	require.NoError(t, err)
	assert.False(t, claimed)

	// Other dates and other users are independent.
	claimed, err = st.Missions().CompleteIfPending(user.ID, "2026-09-02")
	require.NoError(t, err)
	assert.True(t, claimed)

	other := seedUser(t, st)
	claimed, err = st.Missions().CompleteIfPending(other.ID, "2026-09-01")
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestTipCompleteIfPendingKeepsFirstScore(t *testing.T) {
	st := NewMemory()
	user := seedUser(t, st)

	first, second := 3, 5
	now := time.Now().UTC()

	claimed, err := st.Tips().CompleteIfPending(&models.TipProgress{
		ID: uuid.New(), UserID: user.ID, TipID: "tip-1",
		QuizCompleted: true, QuizScore: &first, CompletedAt: &now,
	})
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = st.Tips().CompleteIfPending(&models.TipProgress{
		ID: uuid.New(), UserID: user.ID, TipID: "tip-1",
		QuizCompleted: true, QuizScore: &second, CompletedAt: &now,
	})
	require.NoError(t, err)
	assert.False(t, claimed)

	progress, err := st.Tips().ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	require.NotNil(t, progress[0].QuizScore)
	assert.Equal(t, first, *progress[0].QuizScore)
}

func TestApplyProgressAccumulates(t *testing.T) {
	st := NewMemory()
	user := seedUser(t, st)

	streak := 4
	date := "2026-09-01"
	require.NoError(t, st.Users().ApplyProgress(user.ID, ProgressUpdate{
		CoinDelta: 10, PlanetDelta: 1, Streak: &streak, LastPostDate: &date,
	}))
	require.NoError(t, st.Users().ApplyProgress(user.ID, ProgressUpdate{CoinDelta: 10}))

	reloaded, err := st.Users().FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, reloaded.Coins)
	assert.Equal(t, 1, reloaded.CurrentPlanet)
	assert.Equal(t, 4, reloaded.Streak)
	require.NotNil(t, reloaded.LastPostDate)
	assert.Equal(t, date, *reloaded.LastPostDate)
}

func TestPurgeUserRemovesOwnedRows(t *testing.T) {
	st := NewMemory()
	user := seedUser(t, st)

	require.NoError(t, st.Sessions().Create(&models.Session{
		ID: uuid.New(), UserID: user.ID, Token: "tok",
		ExpiresAt: time.Now().UTC().Add(time.Hour), CreatedAt: time.Now().UTC(),
	}))
	_, err := st.Missions().CompleteIfPending(user.ID, "2026-09-01")
	require.NoError(t, err)
	require.NoError(t, st.Analysis().Upsert(&models.AnalysisEntry{
		ID: uuid.New(), UserID: user.ID, EntryID: "entry-1",
	}))

	require.NoError(t, st.PurgeUser(user.ID))

	_, err = st.Users().FindByID(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Sessions().FindByToken("tok")
	assert.ErrorIs(t, err, ErrNotFound)
	entries, err := st.Analysis().ListByUser(user.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
