package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/services"
	"github.com/KimShota/Universe/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T) (*fiber.App, store.Store) {
	t.Helper()
	st := store.NewMemory()
	auth := services.NewAuthService(st, nil, time.Hour)

	app := fiber.New()
	app.Get("/whoami", SessionProtected(auth), func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		require.NoError(t, err)
		return c.JSON(fiber.Map{"email": user.Email})
	})
	return app, st
}

func seedSession(t *testing.T, st store.Store, token string, expiresAt time.Time) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.New(),
		Email:     uuid.NewString() + "@example.com",
		Name:      "Test User",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.CreateUserAccount(user, models.NewDefaultUniverse(user.ID)))
	require.NoError(t, st.Sessions().Create(&models.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}))
	return user
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Code
}

func TestSessionProtectedNoCredential(t *testing.T) {
	app, _ := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "unauthenticated", errorCode(t, resp))
}

func TestSessionProtectedUnknownToken(t *testing.T) {
	app, _ := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid_session", errorCode(t, resp))
}

func TestSessionProtectedExpiredToken(t *testing.T) {
	app, st := newProtectedApp(t)
	seedSession(t, st, "tok-expired", time.Now().UTC().Add(-time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-expired"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "session_expired", errorCode(t, resp))
}

func TestSessionProtectedCookie(t *testing.T) {
	app, st := newProtectedApp(t)
	user := seedSession(t, st, "tok-live", time.Now().UTC().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-live"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, user.Email, body.Email)
}

func TestSessionProtectedBearerFallback(t *testing.T) {
	app, st := newProtectedApp(t)
	seedSession(t, st, "tok-bearer", time.Now().UTC().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer tok-bearer")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionProtectedCookieWinsOverBearer(t *testing.T) {
	app, st := newProtectedApp(t)
	seedSession(t, st, "tok-cookie", time.Now().UTC().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-cookie"})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer tok-garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
