package store

import (
	"errors"

	"github.com/KimShota/Universe/internal/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned by every store when no row matches.
var ErrNotFound = errors.New("record not found")

// ProgressUpdate describes a change to a user's gamification counters.
// Deltas are applied as increments in a single statement so concurrent
// grants never lose coins; Streak and LastPostDate overwrite when set.
type ProgressUpdate struct {
	CoinDelta    int
	PlanetDelta  int
	Streak       *int
	LastPostDate *string
}

type UserStore interface {
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	ApplyProgress(id uuid.UUID, update ProgressUpdate) error
}

type SessionStore interface {
	FindByToken(token string) (*models.Session, error)
	Create(session *models.Session) error
	DeleteByUser(userID uuid.UUID) error
}

type MissionStore interface {
	FindByUserAndDate(userID uuid.UUID, date string) (*models.Mission, error)

	// CompleteIfPending marks the mission for (user, date) completed and
	// reports whether this call did the completing. It is atomic: of two
	// concurrent calls for the same date exactly one sees true.
	CompleteIfPending(userID uuid.UUID, date string) (bool, error)
}

type SOSStore interface {
	Create(completion *models.SOSCompletion) error
	// ListByUser returns completions newest first, at most limit.
	ListByUser(userID uuid.UUID, limit int) ([]models.SOSCompletion, error)
}

type UniverseStore interface {
	FindByUser(userID uuid.UUID) (*models.CreatorUniverse, error)
	// Save upserts the singleton document keyed by user id.
	Save(universe *models.CreatorUniverse) error
}

type AnalysisStore interface {
	ListByUser(userID uuid.UUID, limit int) ([]models.AnalysisEntry, error)
	// Upsert inserts or replaces the entry keyed by (user id, entry id).
	Upsert(entry *models.AnalysisEntry) error
	Delete(userID uuid.UUID, entryID string) error
}

type ScheduleStore interface {
	FindByUser(userID uuid.UUID) (*models.Schedule, error)
	Save(schedule *models.Schedule) error
}

type StoryFinderStore interface {
	FindByUser(userID uuid.UUID) (*models.StoryFinderSheet, error)
	Save(sheet *models.StoryFinderSheet) error
}

type TipStore interface {
	ListByUser(userID uuid.UUID) ([]models.TipProgress, error)

	// CompleteIfPending records the quiz completion and reports whether
	// this call did the completing. An already-completed tip leaves the
	// stored score untouched and returns false.
	CompleteIfPending(progress *models.TipProgress) (bool, error)
}

type ScriptStore interface {
	ListByUser(userID uuid.UUID, limit int) ([]models.BatchingScript, error)
	Upsert(script *models.BatchingScript) error
	Delete(userID uuid.UUID, scriptID string) error
}

// Store is the single persistence surface of the backend. Handlers and
// services depend on it rather than on a database handle, so tests run
// against the in-memory implementation.
type Store interface {
	Users() UserStore
	Sessions() SessionStore
	Missions() MissionStore
	SOS() SOSStore
	Universes() UniverseStore
	Analysis() AnalysisStore
	Schedules() ScheduleStore
	StoryFinder() StoryFinderStore
	Tips() TipStore
	Scripts() ScriptStore

	// CreateUserAccount inserts the user together with their seeded
	// creator universe in one atomic step.
	CreateUserAccount(user *models.User, universe *models.CreatorUniverse) error

	// PurgeUser removes the user and every resource they own.
	PurgeUser(userID uuid.UUID) error
}
