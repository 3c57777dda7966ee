package models

import (
	"time"

	"github.com/google/uuid"
)

// TipProgress tracks quiz completion per content tip. The composite
// unique index backs the conditional upsert that keeps the coin grant
// idempotent per tip.
type TipProgress struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tip_progress_user_tip" json:"user_id"`
	TipID         string     `gorm:"size:64;not null;uniqueIndex:idx_tip_progress_user_tip" json:"tip_id"`
	QuizCompleted bool       `gorm:"default:false" json:"quiz_completed"`
	QuizScore     *int       `json:"quiz_score"`
	CompletedAt   *time.Time `json:"completed_at"`
}
