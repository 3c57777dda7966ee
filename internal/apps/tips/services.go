// Package tips implements content-tip quiz progress: completing a tip's
// quiz pays out coins once per tip, repeat submissions are accepted but
// award nothing.
package tips

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/google/uuid"
)

const coinsPerQuiz = 10

var ErrInvalidTipID = errors.New("invalid tip id")

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// CompleteQuiz records the quiz result for a tip. The first completion
// per tip awards coins; later ones return the user unchanged with zero
// coins earned. The grant is claimed atomically, so concurrent
// submissions for the same tip pay out once.
func (s *Service) CompleteQuiz(user *models.User, tipID string, score int) (*models.User, int, error) {
	if tipID == "" || len(tipID) > 64 {
		return nil, 0, ErrInvalidTipID
	}

	now := time.Now().UTC()
	progress := &models.TipProgress{
		ID:            uuid.New(),
		UserID:        user.ID,
		TipID:         tipID,
		QuizCompleted: true,
		QuizScore:     &score,
		CompletedAt:   &now,
	}
	claimed, err := s.store.Tips().CompleteIfPending(progress)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to record quiz completion: %w", err)
	}
	if !claimed {
		return user, 0, nil
	}

	if err := s.store.Users().ApplyProgress(user.ID, store.ProgressUpdate{CoinDelta: coinsPerQuiz}); err != nil {
		return nil, 0, fmt.Errorf("failed to apply quiz reward: %w", err)
	}

	updated, err := s.store.Users().FindByID(user.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to reload user: %w", err)
	}

	slog.Info("quiz completed",
		"user_id", user.ID.String(),
		"tip_id", tipID,
		"action", "quiz_complete")
	return updated, coinsPerQuiz, nil
}

// Progress lists the user's per-tip quiz state.
func (s *Service) Progress(userID uuid.UUID) ([]models.TipProgress, error) {
	progress, err := s.store.Tips().ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tip progress: %w", err)
	}
	return progress, nil
}
