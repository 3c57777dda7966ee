package models

import (
	"time"

	"github.com/google/uuid"
)

// User holds identity plus the gamification counters driven by mission,
// SOS and quiz completions. Coins and current_planet only ever grow;
// clients cannot set them directly.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	Email         string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name          string    `gorm:"size:255" json:"name"`
	Picture       *string   `gorm:"type:text" json:"picture"`
	Coins         int       `gorm:"default:0" json:"coins"`
	Streak        int       `gorm:"default:0" json:"streak"`
	CurrentPlanet int       `gorm:"default:0" json:"current_planet"`
	LastPostDate  *string   `gorm:"size:10" json:"last_post_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"-"`
}
