package tips

import (
	"sync"
	"testing"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, st store.Store) *models.User {
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

func TestCompleteQuizAwardsOncePerTip(t *testing.T) {
	st := store.NewMemory()
	svc := NewService(st)
	user := seedUser(t, st)

	updated, coins, err := svc.CompleteQuiz(user, "tip-1", 3)
	require.NoError(t, err)
	assert.Equal(t, 10, coins)
	assert.Equal(t, 10, updated.Coins)

	// Repeat submission is accepted but pays nothing and keeps the
	// stored score.
	updated, coins, err = svc.CompleteQuiz(updated, "tip-1", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, coins)
	assert.Equal(t, 10, updated.Coins)

	progress, err := svc.Progress(user.ID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, "tip-1", progress[0].TipID)
	assert.True(t, progress[0].QuizCompleted)
	require.NotNil(t, progress[0].QuizScore)
	assert.Equal(t, 3, *progress[0].QuizScore)
}

func TestCompleteQuizDifferentTipsPayIndependently(t *testing.T) {
	st := store.NewMemory()
	svc := NewService(st)
	user := seedUser(t, st)

	updated, _, err := svc.CompleteQuiz(user, "tip-1", 3)
	require.NoError(t, err)
	updated, _, err = svc.CompleteQuiz(updated, "tip-2", 4)
	require.NoError(t, err)

	assert.Equal(t, 20, updated.Coins)
}

func TestCompleteQuizInvalidTipID(t *testing.T) {
	st := store.NewMemory()
	svc := NewService(st)
	user := seedUser(t, st)

	_, _, err := svc.CompleteQuiz(user, "", 3)
	assert.ErrorIs(t, err, ErrInvalidTipID)

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	_, _, err = svc.CompleteQuiz(user, string(long), 3)
	assert.ErrorIs(t, err, ErrInvalidTipID)
}

func TestCompleteQuizConcurrentDuplicatePaysOnce(t *testing.T) {
	st := store.NewMemory()
	svc := NewService(st)
	user := seedUser(t, st)

	var wg sync.WaitGroup
	coins := make([]int, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, coins[i], errs[i] = svc.CompleteQuiz(user, "tip-race", 5)
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, 10, coins[0]+coins[1])

	reloaded, err := st.Users().FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, reloaded.Coins)
}
