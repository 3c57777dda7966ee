// Package batching implements the batching planner: script cards the
// user drafts ahead of filming days.
package batching

import (
	"errors"
	"fmt"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/google/uuid"
)

const listLimit = 500

var (
	ErrInvalidScriptID = errors.New("invalid script id")
	ErrScriptNotFound  = errors.New("script not found")
)

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) List(userID uuid.UUID) ([]models.BatchingScript, error) {
	scripts, err := s.store.Scripts().ListByUser(userID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list batching scripts: %w", err)
	}
	return scripts, nil
}

// Save upserts the script keyed by its client-supplied id.
func (s *Service) Save(userID uuid.UUID, script models.BatchingScript) (*models.BatchingScript, error) {
	if script.ScriptID == "" || len(script.ScriptID) > 64 {
		return nil, ErrInvalidScriptID
	}

	script.ID = uuid.New()
	script.UserID = userID
	script.UpdatedAt = time.Now().UTC()
	if err := s.store.Scripts().Upsert(&script); err != nil {
		return nil, fmt.Errorf("failed to save batching script: %w", err)
	}
	return &script, nil
}

func (s *Service) Delete(userID uuid.UUID, scriptID string) error {
	if scriptID == "" || len(scriptID) > 64 {
		return ErrInvalidScriptID
	}

	err := s.store.Scripts().Delete(userID, scriptID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrScriptNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete batching script: %w", err)
	}
	return nil
}
