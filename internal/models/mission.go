package models

import (
	"time"

	"github.com/google/uuid"
)

// Mission is a once-per-calendar-day action. The composite unique index
// backs the conditional upsert that makes completion idempotent under
// concurrent requests.
type Mission struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_missions_user_date" json:"user_id"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_missions_user_date" json:"date"`
	Completed bool      `gorm:"default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
