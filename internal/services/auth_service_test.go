package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProviderServer(t *testing.T, handler http.HandlerFunc) *ProviderClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewProviderClient(srv.URL, 2*time.Second)
}

func okProvider(t *testing.T, email, name, token string) *ProviderClient {
	return newProviderServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Session-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ext-1","email":"` + email + `","name":"` + name + `","picture":null,"session_token":"` + token + `"}`))
	})
}

func TestExchangeSessionCreatesUserAndUniverse(t *testing.T) {
	st := store.NewMemory()
	auth := NewAuthService(st, okProvider(t, "shota@example.com", "Shota", "tok-1"), 7*24*time.Hour)

	user, token, err := auth.ExchangeSession("sess-abc")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "shota@example.com", user.Email)
	assert.Equal(t, 0, user.Coins)
	assert.Equal(t, 0, user.Streak)
	assert.Equal(t, 0, user.CurrentPlanet)
	assert.Nil(t, user.LastPostDate)

	// The default creator universe is seeded atomically with the user.
	universe, err := st.Universes().FindByUser(user.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(models.DefaultContentPillars()), string(universe.ContentPillars))
	assert.Empty(t, universe.OverarchingGoal)
}

func TestExchangeSessionReusesUserByEmail(t *testing.T) {
	st := store.NewMemory()

	first := NewAuthService(st, okProvider(t, "shota@example.com", "Shota", "tok-1"), time.Hour)
	user1, _, err := first.ExchangeSession("sess-1")
	require.NoError(t, err)

	second := NewAuthService(st, okProvider(t, "shota@example.com", "Shota K", "tok-2"), time.Hour)
	user2, token2, err := second.ExchangeSession("sess-2")
	require.NoError(t, err)

	assert.Equal(t, user1.ID, user2.ID)
	assert.Equal(t, "tok-2", token2)
}

func TestExchangeSessionRevokesPriorSession(t *testing.T) {
	st := store.NewMemory()

	first := NewAuthService(st, okProvider(t, "a@example.com", "A", "tok-old"), time.Hour)
	_, oldToken, err := first.ExchangeSession("sess-1")
	require.NoError(t, err)

	second := NewAuthService(st, okProvider(t, "a@example.com", "A", "tok-new"), time.Hour)
	_, newToken, err := second.ExchangeSession("sess-2")
	require.NoError(t, err)

	// Only the latest token resolves: one active session per account.
	_, err = second.ResolveSession(oldToken)
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = second.ResolveSession(newToken)
	assert.NoError(t, err)
}

func TestExchangeSessionProviderErrors(t *testing.T) {
	st := store.NewMemory()

	cases := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "rejected session id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			want: ErrInvalidSessionID,
		},
		{
			name: "provider server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: ErrProviderUnavailable,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			want: ErrMalformedResponse,
		},
		{
			name: "missing required fields",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":"x","email":"x@example.com"}`))
			},
			want: ErrMalformedResponse,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := NewAuthService(st, newProviderServer(t, tc.handler), time.Hour)
			_, _, err := auth.ExchangeSession("sess-x")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestExchangeSessionProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	auth := NewAuthService(store.NewMemory(), NewProviderClient(url, time.Second), time.Hour)
	_, _, err := auth.ExchangeSession("sess-x")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestResolveSession(t *testing.T) {
	st := store.NewMemory()
	auth := NewAuthService(st, okProvider(t, "b@example.com", "B", "tok-live"), time.Hour)

	user, token, err := auth.ExchangeSession("sess-1")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		resolved, err := auth.ResolveSession(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, resolved.ID)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := auth.ResolveSession("nonsense")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("expired session", func(t *testing.T) {
		expired := &models.Session{
			ID:        uuid.New(),
			UserID:    user.ID,
			Token:     "tok-expired",
			ExpiresAt: time.Now().UTC().Add(-time.Minute),
			CreatedAt: time.Now().UTC().Add(-time.Hour),
		}
		require.NoError(t, st.Sessions().Create(expired))

		_, err := auth.ResolveSession("tok-expired")
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("orphaned session", func(t *testing.T) {
		orphan := &models.Session{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			Token:     "tok-orphan",
			ExpiresAt: time.Now().UTC().Add(time.Hour),
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, st.Sessions().Create(orphan))

		_, err := auth.ResolveSession("tok-orphan")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestLogoutRevokesSessions(t *testing.T) {
	st := store.NewMemory()
	auth := NewAuthService(st, okProvider(t, "c@example.com", "C", "tok-c"), time.Hour)

	user, token, err := auth.ExchangeSession("sess-1")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(user.ID))

	_, err = auth.ResolveSession(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestDeleteAccountPurgesEverything(t *testing.T) {
	st := store.NewMemory()
	auth := NewAuthService(st, okProvider(t, "d@example.com", "D", "tok-d"), time.Hour)

	user, token, err := auth.ExchangeSession("sess-1")
	require.NoError(t, err)

	_, err = st.Missions().CompleteIfPending(user.ID, "2026-09-01")
	require.NoError(t, err)

	require.NoError(t, auth.DeleteAccount(user.ID))

	_, err = st.Users().FindByID(user.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Universes().FindByUser(user.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Missions().FindByUserAndDate(user.ID, "2026-09-01")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = auth.ResolveSession(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
