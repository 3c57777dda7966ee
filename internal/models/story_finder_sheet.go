package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StoryFinderSheet is the per-user story-finder worksheet, stored as a
// single rows array.
type StoryFinderSheet struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Rows      datatypes.JSON `gorm:"type:jsonb" json:"rows"`
	UpdatedAt time.Time      `json:"updated_at"`
}
