package models

import (
	"time"

	"github.com/google/uuid"
)

// BatchingScript is one script card from the batching planner. ScriptID
// is client supplied; JSON field names follow the card fields the app
// sends.
type BatchingScript struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_batching_user_script" json:"-"`
	ScriptID      string    `gorm:"size:64;not null;uniqueIndex:idx_batching_user_script" json:"id"`
	Title         string    `gorm:"size:255" json:"title"`
	Mission       string    `gorm:"type:text" json:"mission"`
	TitleHook     string    `gorm:"type:text" json:"titleHook"`
	VisualHook    string    `gorm:"type:text" json:"visualHook"`
	VerbalHook    string    `gorm:"type:text" json:"verbalHook"`
	Problem       string    `gorm:"type:text" json:"problem"`
	Promise       string    `gorm:"type:text" json:"promise"`
	Credibility   string    `gorm:"type:text" json:"credibility"`
	Delivery      string    `gorm:"type:text" json:"delivery"`
	CallToAction  string    `gorm:"type:text" json:"callToAction"`
	FootageNeeded string    `gorm:"type:text" json:"footageNeeded"`
	Audio         string    `gorm:"size:255" json:"audio"`
	Caption       string    `gorm:"type:text" json:"caption"`
	TextVisual    string    `gorm:"type:text" json:"textVisual"`
	ScriptDate    string    `gorm:"size:10" json:"date,omitempty"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
