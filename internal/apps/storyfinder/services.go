// Package storyfinder implements the story-finder worksheet: rows of
// problem / pursuit / payoff / your-story the user mines for content
// ideas.
package storyfinder

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/google/uuid"
)

// Row is one worksheet row. ID is client supplied.
type Row struct {
	ID        string `json:"id"`
	Problem   string `json:"problem"`
	Pursuit   string `json:"pursuit"`
	Payoff    string `json:"payoff"`
	YourStory string `json:"your_story"`
}

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Get returns the user's worksheet rows; an account that never saved
// one gets an empty list, nothing is written.
func (s *Service) Get(userID uuid.UUID) ([]Row, error) {
	sheet, err := s.store.StoryFinder().FindByUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load story finder sheet: %w", err)
	}

	var rows []Row
	if err := json.Unmarshal(sheet.Rows, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode story finder sheet: %w", err)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// Put replaces the whole sheet.
func (s *Service) Put(userID uuid.UUID, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	encoded, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to encode story finder sheet: %w", err)
	}

	sheet := &models.StoryFinderSheet{
		ID:        uuid.New(),
		UserID:    userID,
		Rows:      encoded,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.store.StoryFinder().Save(sheet); err != nil {
		return fmt.Errorf("failed to save story finder sheet: %w", err)
	}
	return nil
}
