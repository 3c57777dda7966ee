package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SOSCompletion records one run of the SOS self-affirmation flow.
type SOSCompletion struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	IssueType    string         `gorm:"size:100" json:"issue_type"`
	Asteroids    datatypes.JSON `gorm:"type:jsonb" json:"asteroids"`
	Affirmations datatypes.JSON `gorm:"type:jsonb" json:"affirmations"`
	CompletedAt  time.Time      `gorm:"index" json:"completed_at"`
}
