package dto

import "github.com/KimShota/Universe/internal/models"

// Stable machine-readable error codes carried next to the HTTP status.
const (
	CodeUnauthenticated       = "unauthenticated"
	CodeInvalidSession        = "invalid_session"
	CodeSessionExpired        = "session_expired"
	CodeUserNotFound          = "user_not_found"
	CodeAlreadyCompleted      = "already_completed"
	CodeProviderUnavailable   = "auth_provider_unavailable"
	CodeInvalidSessionID      = "invalid_session_id"
	CodeMalformedAuthResponse = "malformed_auth_response"
	CodeNotFound              = "not_found"
	CodeInvalidRequest        = "invalid_request"
	CodeDatabaseError         = "database_error"
)

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type LoginResponse struct {
	User         *models.User `json:"user"`
	SessionToken string       `json:"session_token"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}
