package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

var (
	ErrInvalidSessionID    = errors.New("auth provider rejected the session id")
	ErrProviderUnavailable = errors.New("auth provider unavailable")
	ErrMalformedResponse   = errors.New("malformed auth provider response")
)

// SessionData is the identity payload the external auth provider returns
// for a valid session id.
type SessionData struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture"`
	SessionToken string  `json:"session_token"`
}

// ProviderClient exchanges an opaque session id for verified identity
// fields. The provider is trusted completely; nothing is re-verified
// locally.
type ProviderClient struct {
	url    string
	client *http.Client
}

func NewProviderClient(url string, timeout time.Duration) *ProviderClient {
	return &ProviderClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *ProviderClient) FetchSessionData(sessionID string) (*SessionData, error) {
	req, err := http.NewRequest(http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth provider request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := p.client.Do(req)
	if err != nil {
		slog.Error("auth provider request failed", "error", err)
		return nil, ErrProviderUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		slog.Error("auth provider returned server error", "status", resp.StatusCode)
		return nil, ErrProviderUnavailable
	case resp.StatusCode >= 400:
		slog.Warn("auth provider rejected session id", "status", resp.StatusCode)
		return nil, ErrInvalidSessionID
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		slog.Error("failed to decode auth provider response", "error", err)
		return nil, ErrMalformedResponse
	}
	if data.ID == "" || data.Email == "" || data.Name == "" || data.SessionToken == "" {
		slog.Error("auth provider response missing required fields")
		return nil, ErrMalformedResponse
	}
	return &data, nil
}
