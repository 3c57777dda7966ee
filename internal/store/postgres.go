package store

import (
	"errors"
	"fmt"

	"github.com/KimShota/Universe/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresStore struct {
	db *gorm.DB
}

// NewPostgres returns the GORM-backed Store used in production.
func NewPostgres(db *gorm.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Users() UserStore              { return &pgUsers{db: s.db} }
func (s *postgresStore) Sessions() SessionStore        { return &pgSessions{db: s.db} }
func (s *postgresStore) Missions() MissionStore        { return &pgMissions{db: s.db} }
func (s *postgresStore) SOS() SOSStore                 { return &pgSOS{db: s.db} }
func (s *postgresStore) Universes() UniverseStore      { return &pgUniverses{db: s.db} }
func (s *postgresStore) Analysis() AnalysisStore       { return &pgAnalysis{db: s.db} }
func (s *postgresStore) Schedules() ScheduleStore      { return &pgSchedules{db: s.db} }
func (s *postgresStore) StoryFinder() StoryFinderStore { return &pgStoryFinder{db: s.db} }
func (s *postgresStore) Tips() TipStore                { return &pgTips{db: s.db} }
func (s *postgresStore) Scripts() ScriptStore          { return &pgScripts{db: s.db} }

func (s *postgresStore) CreateUserAccount(user *models.User, universe *models.CreatorUniverse) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := tx.Create(universe).Error; err != nil {
			return fmt.Errorf("failed to seed creator universe: %w", err)
		}
		return nil
	})
}

func (s *postgresStore) PurgeUser(userID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&models.Session{},
			&models.Mission{},
			&models.SOSCompletion{},
			&models.CreatorUniverse{},
			&models.AnalysisEntry{},
			&models.Schedule{},
			&models.StoryFinderSheet{},
			&models.TipProgress{},
			&models.BatchingScript{},
		}
		for _, model := range owned {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to purge user data: %w", err)
			}
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- users ---

type pgUsers struct {
	db *gorm.DB
}

func (s *pgUsers) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *pgUsers) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *pgUsers) ApplyProgress(id uuid.UUID, update ProgressUpdate) error {
	fields := map[string]interface{}{}
	if update.CoinDelta != 0 {
		fields["coins"] = gorm.Expr("coins + ?", update.CoinDelta)
	}
	if update.PlanetDelta != 0 {
		fields["current_planet"] = gorm.Expr("current_planet + ?", update.PlanetDelta)
	}
	if update.Streak != nil {
		fields["streak"] = *update.Streak
	}
	if update.LastPostDate != nil {
		fields["last_post_date"] = *update.LastPostDate
	}
	if len(fields) == 0 {
		return nil
	}
	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- sessions ---

type pgSessions struct {
	db *gorm.DB
}

func (s *pgSessions) FindByToken(token string) (*models.Session, error) {
	var session models.Session
	if err := s.db.First(&session, "token = ?", token).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (s *pgSessions) Create(session *models.Session) error {
	return s.db.Create(session).Error
}

func (s *pgSessions) DeleteByUser(userID uuid.UUID) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.Session{}).Error
}

// --- missions ---

type pgMissions struct {
	db *gorm.DB
}

func (s *pgMissions) FindByUserAndDate(userID uuid.UUID, date string) (*models.Mission, error) {
	var mission models.Mission
	if err := s.db.First(&mission, "user_id = ? AND date = ?", userID, date).Error; err != nil {
		return nil, translate(err)
	}
	return &mission, nil
}

func (s *pgMissions) CompleteIfPending(userID uuid.UUID, date string) (bool, error) {
	mission := models.Mission{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Completed: true,
	}
	// ON CONFLICT ... DO UPDATE ... WHERE completed = false: an already
	// completed row matches nothing and RowsAffected stays zero.
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"completed": true}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Name: "completed"}, Value: false},
		}},
	}).Create(&mission)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// --- sos ---

type pgSOS struct {
	db *gorm.DB
}

func (s *pgSOS) Create(completion *models.SOSCompletion) error {
	return s.db.Create(completion).Error
}

func (s *pgSOS) ListByUser(userID uuid.UUID, limit int) ([]models.SOSCompletion, error) {
	var history []models.SOSCompletion
	err := s.db.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&history).Error
	return history, err
}

// --- creator universe ---

type pgUniverses struct {
	db *gorm.DB
}

func (s *pgUniverses) FindByUser(userID uuid.UUID) (*models.CreatorUniverse, error) {
	var universe models.CreatorUniverse
	if err := s.db.First(&universe, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &universe, nil
}

func (s *pgUniverses) Save(universe *models.CreatorUniverse) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"overarching_goal", "content_pillars", "avatar", "identity", "updated_at"}),
	}).Create(universe).Error
}

// --- analysis entries ---

type pgAnalysis struct {
	db *gorm.DB
}

func (s *pgAnalysis) ListByUser(userID uuid.UUID, limit int) ([]models.AnalysisEntry, error) {
	var entries []models.AnalysisEntry
	err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (s *pgAnalysis) Upsert(entry *models.AnalysisEntry) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "entry_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "reel_link", "views", "visual_hook", "text_hook", "format",
			"duration", "text_duration", "pacing", "audio", "story_arc",
			"call_to_action", "notes", "entry_date", "updated_at",
		}),
	}).Create(entry).Error
}

func (s *pgAnalysis) Delete(userID uuid.UUID, entryID string) error {
	result := s.db.Where("user_id = ? AND entry_id = ?", userID, entryID).Delete(&models.AnalysisEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- schedule ---

type pgSchedules struct {
	db *gorm.DB
}

func (s *pgSchedules) FindByUser(userID uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := s.db.First(&schedule, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &schedule, nil
}

func (s *pgSchedules) Save(schedule *models.Schedule) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"days", "updated_at"}),
	}).Create(schedule).Error
}

// --- story finder ---

type pgStoryFinder struct {
	db *gorm.DB
}

func (s *pgStoryFinder) FindByUser(userID uuid.UUID) (*models.StoryFinderSheet, error) {
	var sheet models.StoryFinderSheet
	if err := s.db.First(&sheet, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &sheet, nil
}

func (s *pgStoryFinder) Save(sheet *models.StoryFinderSheet) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rows", "updated_at"}),
	}).Create(sheet).Error
}

// --- content tips ---

type pgTips struct {
	db *gorm.DB
}

func (s *pgTips) ListByUser(userID uuid.UUID) ([]models.TipProgress, error) {
	var progress []models.TipProgress
	err := s.db.Where("user_id = ?", userID).Find(&progress).Error
	return progress, err
}

func (s *pgTips) CompleteIfPending(progress *models.TipProgress) (bool, error) {
	result := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "tip_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quiz_completed": true,
			"quiz_score":     progress.QuizScore,
			"completed_at":   progress.CompletedAt,
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Name: "quiz_completed"}, Value: false},
		}},
	}).Create(progress)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// --- batching scripts ---

type pgScripts struct {
	db *gorm.DB
}

func (s *pgScripts) ListByUser(userID uuid.UUID, limit int) ([]models.BatchingScript, error) {
	var scripts []models.BatchingScript
	err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(limit).
		Find(&scripts).Error
	return scripts, err
}

func (s *pgScripts) Upsert(script *models.BatchingScript) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "script_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "mission", "title_hook", "visual_hook", "verbal_hook",
			"problem", "promise", "credibility", "delivery", "call_to_action",
			"footage_needed", "audio", "caption", "text_visual", "script_date",
			"updated_at",
		}),
	}).Create(script).Error
}

func (s *pgScripts) Delete(userID uuid.UUID, scriptID string) error {
	result := s.db.Where("user_id = ? AND script_id = ?", userID, scriptID).Delete(&models.BatchingScript{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
