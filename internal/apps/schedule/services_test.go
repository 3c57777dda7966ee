package schedule

import (
	"testing"

	"github.com/KimShota/Universe/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSeedsEmptyWeek(t *testing.T) {
	svc := NewService(store.NewMemory())
	userID := uuid.New()

	days, updatedAt, err := svc.Get(userID)
	require.NoError(t, err)
	assert.False(t, updatedAt.IsZero())
	require.Len(t, days, 7)
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		plan, ok := days[day]
		require.True(t, ok, day)
		assert.Empty(t, plan.Idea)
		assert.Empty(t, plan.Format)
	}
}

func TestPutRoundTrips(t *testing.T) {
	svc := NewService(store.NewMemory())
	userID := uuid.New()

	week := DefaultDays()
	week["Monday"] = DayPlan{Idea: "Hook breakdown", Format: "Reel"}
	week["Thursday"] = DayPlan{Idea: "Day in the life", Format: "Story"}

	putAt, err := svc.Put(userID, week)
	require.NoError(t, err)
	assert.False(t, putAt.IsZero())

	days, gotAt, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, week, days)
	assert.Equal(t, putAt.Unix(), gotAt.Unix())
}

func TestPutReplacesWholeWeek(t *testing.T) {
	svc := NewService(store.NewMemory())
	userID := uuid.New()

	week := DefaultDays()
	week["Monday"] = DayPlan{Idea: "old", Format: "Reel"}
	_, err := svc.Put(userID, week)
	require.NoError(t, err)

	replacement := DefaultDays()
	replacement["Friday"] = DayPlan{Idea: "new", Format: "Carousel"}
	_, err = svc.Put(userID, replacement)
	require.NoError(t, err)

	days, _, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Empty(t, days["Monday"].Idea)
	assert.Equal(t, "new", days["Friday"].Idea)
}
