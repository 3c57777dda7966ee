package storyfinder

import (
	"testing"

	"github.com/KimShota/Universe/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBeforeAnySaveReturnsEmpty(t *testing.T) {
	svc := NewService(store.NewMemory())

	rows, err := svc.Get(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestPutRoundTrips(t *testing.T) {
	svc := NewService(store.NewMemory())
	userID := uuid.New()

	rows := []Row{
		{ID: "r1", Problem: "couldn't stay consistent", Pursuit: "tried 30-day challenge", Payoff: "posted 30 reels", YourStory: "my first viral reel"},
		{ID: "r2", Problem: "no ideas", Pursuit: "stole from comments", Payoff: "endless backlog"},
	}
	require.NoError(t, svc.Put(userID, rows))

	got, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestPutReplacesSheet(t *testing.T) {
	svc := NewService(store.NewMemory())
	userID := uuid.New()

	require.NoError(t, svc.Put(userID, []Row{{ID: "r1", Problem: "old"}}))
	require.NoError(t, svc.Put(userID, []Row{{ID: "r2", Problem: "new"}}))

	got, err := svc.Get(userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r2", got[0].ID)
}

func TestPutNilClearsSheet(t *testing.T) {
	svc := NewService(store.NewMemory())
	userID := uuid.New()

	require.NoError(t, svc.Put(userID, []Row{{ID: "r1"}}))
	require.NoError(t, svc.Put(userID, nil))

	got, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
