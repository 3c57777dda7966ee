// Package analysis implements the content-analysis worksheet: rows the
// user fills in while breaking down reference reels.
package analysis

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
	ErrInvalidEntryID = errors.New("invalid entry id")
	ErrEntryNotFound  = errors.New("entry not found")
)

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) List(userID uuid.UUID) ([]models.AnalysisEntry, error) {
	entries, err := s.store.Analysis().ListByUser(userID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis entries: %w", err)
	}
	return entries, nil
}

// Save upserts the entry keyed by its client-supplied id. Ids are
// opaque strings, capped so clients cannot grow the index key.
func (s *Service) Save(userID uuid.UUID, entry models.AnalysisEntry) (*models.AnalysisEntry, error) {
	if entry.EntryID == "" || len(entry.EntryID) > 64 {
		return nil, ErrInvalidEntryID
	}

	entry.ID = uuid.New()
	entry.UserID = userID
	entry.UpdatedAt = time.Now().UTC()
	if err := s.store.Analysis().Upsert(&entry); err != nil {
		return nil, fmt.Errorf("failed to save analysis entry: %w", err)
	}
	return &entry, nil
}

func (s *Service) Delete(userID uuid.UUID, entryID string) error {
	if entryID == "" || len(entryID) > 64 {
		return ErrInvalidEntryID
	}

	err := s.store.Analysis().Delete(userID, entryID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrEntryNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete analysis entry: %w", err)
	}
	return nil
}
