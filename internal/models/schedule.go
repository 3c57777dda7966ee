package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Schedule is the per-user weekly posting plan: a weekday-keyed map of
// {idea, format} slots stored as one document.
type Schedule struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Days      datatypes.JSON `gorm:"type:jsonb" json:"schedule"`
	UpdatedAt time.Time      `json:"updated_at"`
}
