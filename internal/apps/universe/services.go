// Package universe implements the creator-universe document: the
// per-user profile holding the overarching goal, content pillars,
// avatar and identity sections.
package universe

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Get returns the user's creator universe, seeding the default document
// on first read. Accounts created through login are seeded at signup;
// this covers rows lost to partial deletions or older accounts.
func (s *Service) Get(userID uuid.UUID) (*models.CreatorUniverse, error) {
	universe, err := s.store.Universes().FindByUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		universe = models.NewDefaultUniverse(userID)
		if err := s.store.Universes().Save(universe); err != nil {
			return nil, fmt.Errorf("failed to seed creator universe: %w", err)
		}
		return universe, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load creator universe: %w", err)
	}
	return universe, nil
}

// UpdateRequest carries a partial update: only fields present in the
// request body are applied, absent ones keep their stored value.
type UpdateRequest struct {
	OverarchingGoal *string         `json:"overarching_goal"`
	ContentPillars  json.RawMessage `json:"content_pillars"`
	Avatar          json.RawMessage `json:"avatar"`
	Identity        json.RawMessage `json:"identity"`
}

func (s *Service) Update(userID uuid.UUID, req UpdateRequest) (*models.CreatorUniverse, error) {
	universe, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.OverarchingGoal != nil {
		universe.OverarchingGoal = *req.OverarchingGoal
	}
	if req.ContentPillars != nil {
		universe.ContentPillars = datatypes.JSON(req.ContentPillars)
	}
	if req.Avatar != nil {
		universe.Avatar = datatypes.JSON(req.Avatar)
	}
	if req.Identity != nil {
		universe.Identity = datatypes.JSON(req.Identity)
	}
	universe.UpdatedAt = time.Now().UTC()

	if err := s.store.Universes().Save(universe); err != nil {
		return nil, fmt.Errorf("failed to save creator universe: %w", err)
	}
	return universe, nil
}
