package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CreatorUniverse is the singleton profile document behind the
// creator-universe tab: an overarching goal plus free-form content
// pillars, avatar and identity blobs the backend stores but never
// interprets.
type CreatorUniverse struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	OverarchingGoal string         `gorm:"type:text" json:"overarching_goal"`
	ContentPillars  datatypes.JSON `gorm:"type:jsonb" json:"content_pillars"`
	Avatar          datatypes.JSON `gorm:"type:jsonb" json:"avatar"`
	Identity        datatypes.JSON `gorm:"type:jsonb" json:"identity"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// DefaultContentPillars is the pillar set seeded for every new account.
func DefaultContentPillars() datatypes.JSON {
	return datatypes.JSON(`[{"title":"Content Pillar 1","ideas":[]},{"title":"Content Pillar 2","ideas":[]},{"title":"Content Pillar 3","ideas":[]},{"title":"Content Pillar 4","ideas":[]}]`)
}

// NewDefaultUniverse builds the creator universe seeded alongside a new
// user: four empty content pillars, no avatar, no identity.
func NewDefaultUniverse(userID uuid.UUID) *CreatorUniverse {
	return &CreatorUniverse{
		ID:             uuid.New(),
		UserID:         userID,
		ContentPillars: DefaultContentPillars(),
		UpdatedAt:      time.Now().UTC(),
	}
}
