// Package schedule implements the weekly posting schedule: a
// weekday-keyed map of {idea, format} slots stored as one document per
// user.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"github.com/KimShota/Universe/internal/store"
	"github.com/google/uuid"
)

// DayPlan is one weekday slot.
type DayPlan struct {
	Idea   string `json:"idea"`
	Format string `json:"format"`
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DefaultDays is the empty seven-day plan seeded on first read.
func DefaultDays() map[string]DayPlan {
	days := make(map[string]DayPlan, len(weekdays))
	for _, day := range weekdays {
		days[day] = DayPlan{}
	}
	return days
}

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Get returns the user's schedule, seeding the empty week on first
// read.
func (s *Service) Get(userID uuid.UUID) (map[string]DayPlan, time.Time, error) {
	stored, err := s.store.Schedules().FindByUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		days := DefaultDays()
		saved, err := s.save(userID, days)
		if err != nil {
			return nil, time.Time{}, err
		}
		return days, saved.UpdatedAt, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to load schedule: %w", err)
	}

	var days map[string]DayPlan
	if err := json.Unmarshal(stored.Days, &days); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return days, stored.UpdatedAt, nil
}

// Put replaces the whole week.
func (s *Service) Put(userID uuid.UUID, days map[string]DayPlan) (time.Time, error) {
	saved, err := s.save(userID, days)
	if err != nil {
		return time.Time{}, err
	}
	return saved.UpdatedAt, nil
}

func (s *Service) save(userID uuid.UUID, days map[string]DayPlan) (*models.Schedule, error) {
	encoded, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schedule: %w", err)
	}

	schedule := &models.Schedule{
		ID:        uuid.New(),
		UserID:    userID,
		Days:      encoded,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.store.Schedules().Save(schedule); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}
	return schedule, nil
}
