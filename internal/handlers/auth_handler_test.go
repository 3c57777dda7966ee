package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KimShota/Universe/internal/middleware"
	"github.com/KimShota/Universe/internal/services"
	"github.com/KimShota/Universe/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T) (*fiber.App, store.Store) {
	t.Helper()
	st := store.NewMemory()

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ext-1","email":"shota@example.com","name":"Shota","picture":null,"session_token":"tok-1"}`))
	}))
	t.Cleanup(provider.Close)

	authService := services.NewAuthService(st, services.NewProviderClient(provider.URL, time.Second), 7*24*time.Hour)
	handler := NewAuthHandler(authService, 7*24*time.Hour)

	app := fiber.New()
	app.Post("/api/auth/session", handler.ExchangeSession)
	protected := app.Group("/api", middleware.SessionProtected(authService))
	protected.Get("/auth/me", handler.Me)
	protected.Post("/auth/logout", handler.Logout)
	protected.Delete("/auth/account", handler.DeleteAccount)
	return app, st
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestExchangeSessionSetsCookie(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/session?session_id=sess-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	assert.Equal(t, "tok-1", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(7*24*time.Hour/time.Second), cookie.MaxAge)

	var body struct {
		SessionToken string `json:"session_token"`
		User         struct {
			Email string `json:"email"`
			Coins int    `json:"coins"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tok-1", body.SessionToken)
	assert.Equal(t, "shota@example.com", body.User.Email)
	assert.Equal(t, 0, body.User.Coins)
}

func TestExchangeSessionMissingSessionID(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/session", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "invalid_request", body.Code)
}

func TestMeRoundTrip(t *testing.T) {
	app, _ := newAuthApp(t)

	login := httptest.NewRequest(http.MethodPost, "/api/auth/session?session_id=sess-1", nil)
	loginResp, err := app.Test(login)
	require.NoError(t, err)
	cookie := sessionCookie(t, loginResp)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Email  string `json:"email"`
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "shota@example.com", body.Email)
	assert.NotEmpty(t, body.UserID)
}

func TestLogoutClearsSession(t *testing.T) {
	app, _ := newAuthApp(t)

	login := httptest.NewRequest(http.MethodPost, "/api/auth/session?session_id=sess-1", nil)
	loginResp, err := app.Test(login)
	require.NoError(t, err)
	cookie := sessionCookie(t, loginResp)

	logout := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	logout.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	logoutResp, err := app.Test(logout)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, logoutResp.StatusCode)

	cleared := sessionCookie(t, logoutResp)
	assert.Empty(t, cleared.Value)

	// The revoked token no longer resolves.
	me := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	me.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	meResp, err := app.Test(me)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, meResp.StatusCode)
}

func TestDeleteAccount(t *testing.T) {
	app, st := newAuthApp(t)

	login := httptest.NewRequest(http.MethodPost, "/api/auth/session?session_id=sess-1", nil)
	loginResp, err := app.Test(login)
	require.NoError(t, err)
	cookie := sessionCookie(t, loginResp)

	del := httptest.NewRequest(http.MethodDelete, "/api/auth/account", nil)
	del.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	delResp, err := app.Test(del)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, delResp.StatusCode)

	_, err = st.Users().FindByEmail("shota@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
