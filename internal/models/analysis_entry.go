package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisEntry is one row of the content-analysis worksheet. EntryID is
// client supplied; JSON field names follow the worksheet columns the app
// sends.
type AnalysisEntry struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_analysis_user_entry" json:"-"`
	EntryID      string    `gorm:"size:64;not null;uniqueIndex:idx_analysis_user_entry" json:"id"`
	Title        string    `gorm:"size:255" json:"title,omitempty"`
	ReelLink     string    `gorm:"type:text" json:"reelLink"`
	Views        string    `gorm:"size:50" json:"views"`
	VisualHook   string    `gorm:"type:text" json:"visualHook"`
	TextHook     string    `gorm:"type:text" json:"textHook"`
	Format       string    `gorm:"size:100" json:"format"`
	Duration     string    `gorm:"size:50" json:"duration"`
	TextDuration string    `gorm:"size:50" json:"textDuration"`
	Pacing       string    `gorm:"size:100" json:"pacing"`
	Audio        string    `gorm:"size:255" json:"audio"`
	StoryArc     string    `gorm:"type:text" json:"storyArc"`
	CallToAction string    `gorm:"type:text" json:"callToAction"`
	Notes        string    `gorm:"type:text" json:"notes"`
	EntryDate    string    `gorm:"size:10" json:"date,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
