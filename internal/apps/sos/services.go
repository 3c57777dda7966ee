// Package sos implements the SOS flow: a guided self-talk exercise the
// user runs when stuck, recorded with a coin reward on completion.
package sos

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const coinsPerSOS = 10

const historyLimit = 100

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Complete records one SOS run and awards coins. Unlike missions, SOS
// is repeatable: every completion pays out.
func (s *Service) Complete(user *models.User, issueType string, asteroids, affirmations []string) (*models.User, int, error) {
	asteroidsJSON, err := json.Marshal(asteroids)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode asteroids: %w", err)
	}
	affirmationsJSON, err := json.Marshal(affirmations)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode affirmations: %w", err)
	}

	completion := &models.SOSCompletion{
		ID:           uuid.New(),
		UserID:       user.ID,
		IssueType:    issueType,
		Asteroids:    datatypes.JSON(asteroidsJSON),
		Affirmations: datatypes.JSON(affirmationsJSON),
		CompletedAt:  time.Now().UTC(),
	}
	if err := s.store.SOS().Create(completion); err != nil {
		return nil, 0, fmt.Errorf("failed to record SOS completion: %w", err)
	}

	if err := s.store.Users().ApplyProgress(user.ID, store.ProgressUpdate{CoinDelta: coinsPerSOS}); err != nil {
		return nil, 0, fmt.Errorf("failed to apply SOS reward: %w", err)
	}

	updated, err := s.store.Users().FindByID(user.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to reload user: %w", err)
	}

	slog.Info("sos completed",
		"user_id", user.ID.String(),
		"issue_type", issueType,
		"action", "sos_complete")
	return updated, coinsPerSOS, nil
}

// History returns the user's SOS completions, newest first.
func (s *Service) History(user *models.User) ([]models.SOSCompletion, error) {
	completions, err := s.store.SOS().ListByUser(user.ID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list SOS history: %w", err)
	}
	return completions, nil
}
