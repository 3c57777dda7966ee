// Package mission implements the daily mission: a once-per-day action
// that advances the streak and awards coins and planet progress.
package mission

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
)

const (
	coinsPerMission  = 10
	planetPerMission = 1
)

var (
	ErrAlreadyCompleted = errors.New("mission already completed")
	ErrInvalidDate      = errors.New("invalid mission date")
)

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Complete marks the mission for the given date done and applies the
// rewards. The mission row is claimed with an atomic conditional upsert,
// so a date can only ever pay out once no matter how many requests race
// for it. Returns the refreshed user and the coins earned.
func (s *Service) Complete(user *models.User, date string) (*models.User, int, error) {
	canonical, err := canonicalDate(date)
	if err != nil {
		return nil, 0, ErrInvalidDate
	}

	claimed, err := s.store.Missions().CompleteIfPending(user.ID, canonical)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to record mission: %w", err)
	}
	if !claimed {
		return nil, 0, ErrAlreadyCompleted
	}

	streak := nextStreak(user.LastPostDate, canonical, user.Streak)
	update := store.ProgressUpdate{
		CoinDelta:    coinsPerMission,
		PlanetDelta:  planetPerMission,
		Streak:       &streak,
		LastPostDate: &canonical,
	}
	if err := s.store.Users().ApplyProgress(user.ID, update); err != nil {
		return nil, 0, fmt.Errorf("failed to apply mission rewards: %w", err)
	}

	updated, err := s.store.Users().FindByID(user.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to reload user: %w", err)
	}

	slog.Info("mission completed",
		"user_id", user.ID.String(),
		"date", canonical,
		"streak", updated.Streak,
		"action", "mission_complete")
	return updated, coinsPerMission, nil
}

// TodayStatus reports whether today's (UTC) mission is already done.
func (s *Service) TodayStatus(user *models.User) (bool, string, error) {
	today := time.Now().UTC().Format("2006-01-02")
	mission, err := s.store.Missions().FindByUserAndDate(user.ID, today)
	if errors.Is(err, store.ErrNotFound) {
		return false, today, nil
	}
	if err != nil {
		return false, today, fmt.Errorf("failed to look up mission: %w", err)
	}
	return mission.Completed, today, nil
}

func canonicalDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

// nextStreak applies the streak rule against the previous mission date:
// a first mission starts at 1, the consecutive day increments, a gap
// resets to 1, and a same-day or earlier date leaves the streak alone.
func nextStreak(lastPostDate *string, date string, current int) int {
	if lastPostDate == nil || *lastPostDate == "" {
		return 1
	}
	last, err := time.Parse("2006-01-02", *lastPostDate)
	if err != nil {
		return 1
	}
	completed, _ := time.Parse("2006-01-02", date)

	diff := int(completed.Sub(last).Hours() / 24)
	switch {
	case diff == 1:
		return current + 1
	case diff > 1:
		return 1
	default:
		return current
	}
}
