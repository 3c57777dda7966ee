package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/google/uuid"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrSessionExpired = errors.New("session expired")
	ErrUserNotFound   = errors.New("user not found")
)

// SessionExchanger is the external auth provider surface AuthService
// depends on.
type SessionExchanger interface {
	FetchSessionData(sessionID string) (*SessionData, error)
}

type AuthService struct {
	store    store.Store
	provider SessionExchanger
	ttl      time.Duration
}

func NewAuthService(st store.Store, provider SessionExchanger, sessionTTL time.Duration) *AuthService {
	return &AuthService{store: st, provider: provider, ttl: sessionTTL}
}

// ExchangeSession trades an opaque session id for a logged-in user and a
// session token. Users are keyed by email: a returning identity reuses
// its record, a new one is created together with its default creator
// universe. Any prior session for the user is revoked — one active
// session per account.
func (s *AuthService) ExchangeSession(sessionID string) (*models.User, string, error) {
	data, err := s.provider.FetchSessionData(sessionID)
	if err != nil {
		return nil, "", err
	}

	user, err := s.store.Users().FindByEmail(data.Email)
	if errors.Is(err, store.ErrNotFound) {
		user = &models.User{
			ID:        uuid.New(),
			Email:     data.Email,
			Name:      data.Name,
			Picture:   data.Picture,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.store.CreateUserAccount(user, models.NewDefaultUniverse(user.ID)); err != nil {
			return nil, "", fmt.Errorf("failed to create user: %w", err)
		}
		slog.Info("user created", "user_id", user.ID.String())
	} else if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.store.Sessions().DeleteByUser(user.ID); err != nil {
		return nil, "", fmt.Errorf("failed to revoke previous sessions: %w", err)
	}

	session := &models.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     data.SessionToken,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Sessions().Create(session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	return user, data.SessionToken, nil
}

// ResolveSession maps a bearer credential to a live user record. Expiry
// is checked at read time against UTC now; expired rows stay in place
// until the next login supersedes them.
func (s *AuthService) ResolveSession(token string) (*models.User, error) {
	session, err := s.store.Sessions().FindByToken(token)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.ExpiresAt.UTC().Before(time.Now().UTC()) {
		return nil, ErrSessionExpired
	}

	user, err := s.store.Users().FindByID(session.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

func (s *AuthService) Logout(userID uuid.UUID) error {
	return s.store.Sessions().DeleteByUser(userID)
}

// DeleteAccount removes the user and everything they own: sessions,
// missions, SOS history, creator universe, analysis entries, schedule,
// story finder, tip progress and batching scripts.
func (s *AuthService) DeleteAccount(userID uuid.UUID) error {
	if err := s.store.PurgeUser(userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	slog.Info("account deleted", "user_id", userID.String())
	return nil
}
