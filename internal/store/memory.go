package store

import (
	"sort"
	"sync"

	"github.com/KimShota/Universe/internal/models"
	"github.com/google/uuid"
)

// memoryStore is a map-backed Store with the same semantics as the
// Postgres implementation, including the conditional-upsert contracts.
// It backs the test suites and is handy for running the server without a
// database.
type memoryStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]models.User
	sessions  map[string]models.Session
	missions  map[uuid.UUID]map[string]models.Mission
	sos       map[uuid.UUID][]models.SOSCompletion
	universes map[uuid.UUID]models.CreatorUniverse
	analysis  map[uuid.UUID]map[string]models.AnalysisEntry
	schedules map[uuid.UUID]models.Schedule
	sheets    map[uuid.UUID]models.StoryFinderSheet
	tips      map[uuid.UUID]map[string]models.TipProgress
	scripts   map[uuid.UUID]map[string]models.BatchingScript
}

// NewMemory returns an empty in-memory Store.
func NewMemory() Store {
	return &memoryStore{
		users:     make(map[uuid.UUID]models.User),
		sessions:  make(map[string]models.Session),
		missions:  make(map[uuid.UUID]map[string]models.Mission),
		sos:       make(map[uuid.UUID][]models.SOSCompletion),
		universes: make(map[uuid.UUID]models.CreatorUniverse),
		analysis:  make(map[uuid.UUID]map[string]models.AnalysisEntry),
		schedules: make(map[uuid.UUID]models.Schedule),
		sheets:    make(map[uuid.UUID]models.StoryFinderSheet),
		tips:      make(map[uuid.UUID]map[string]models.TipProgress),
		scripts:   make(map[uuid.UUID]map[string]models.BatchingScript),
	}
}

func (s *memoryStore) Users() UserStore              { return &memUsers{s} }
func (s *memoryStore) Sessions() SessionStore        { return &memSessions{s} }
func (s *memoryStore) Missions() MissionStore        { return &memMissions{s} }
func (s *memoryStore) SOS() SOSStore                 { return &memSOS{s} }
func (s *memoryStore) Universes() UniverseStore      { return &memUniverses{s} }
func (s *memoryStore) Analysis() AnalysisStore       { return &memAnalysis{s} }
func (s *memoryStore) Schedules() ScheduleStore      { return &memSchedules{s} }
func (s *memoryStore) StoryFinder() StoryFinderStore { return &memStoryFinder{s} }
func (s *memoryStore) Tips() TipStore                { return &memTips{s} }
func (s *memoryStore) Scripts() ScriptStore          { return &memScripts{s} }

func (s *memoryStore) CreateUserAccount(user *models.User, universe *models.CreatorUniverse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
	s.universes[universe.UserID] = *universe
	return nil
}

func (s *memoryStore) PurgeUser(userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, token)
		}
	}
	delete(s.missions, userID)
	delete(s.sos, userID)
	delete(s.universes, userID)
	delete(s.analysis, userID)
	delete(s.schedules, userID)
	delete(s.sheets, userID)
	delete(s.scripts, userID)
	delete(s.tips, userID)
	delete(s.users, userID)
	return nil
}

// --- users ---

type memUsers struct {
	s *memoryStore
}

func (m *memUsers) FindByID(id uuid.UUID) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	user, ok := m.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *memUsers) FindByEmail(email string) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, user := range m.s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memUsers) ApplyProgress(id uuid.UUID, update ProgressUpdate) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	user, ok := m.s.users[id]
	if !ok {
		return ErrNotFound
	}
	user.Coins += update.CoinDelta
	user.CurrentPlanet += update.PlanetDelta
	if update.Streak != nil {
		user.Streak = *update.Streak
	}
	if update.LastPostDate != nil {
		date := *update.LastPostDate
		user.LastPostDate = &date
	}
	m.s.users[id] = user
	return nil
}

// --- sessions ---

type memSessions struct {
	s *memoryStore
}

func (m *memSessions) FindByToken(token string) (*models.Session, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	session, ok := m.s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (m *memSessions) Create(session *models.Session) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.sessions[session.Token] = *session
	return nil
}

func (m *memSessions) DeleteByUser(userID uuid.UUID) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for token, session := range m.s.sessions {
		if session.UserID == userID {
			delete(m.s.sessions, token)
		}
	}
	return nil
}

// --- missions ---

type memMissions struct {
	s *memoryStore
}

func (m *memMissions) FindByUserAndDate(userID uuid.UUID, date string) (*models.Mission, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	mission, ok := m.s.missions[userID][date]
	if !ok {
		return nil, ErrNotFound
	}
	return &mission, nil
}

func (m *memMissions) CompleteIfPending(userID uuid.UUID, date string) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	byDate := m.s.missions[userID]
	if byDate == nil {
		byDate = make(map[string]models.Mission)
		m.s.missions[userID] = byDate
	}
	if existing, ok := byDate[date]; ok && existing.Completed {
		return false, nil
	}
	byDate[date] = models.Mission{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Completed: true,
	}
	return true, nil
}

// --- sos ---

type memSOS struct {
	s *memoryStore
}

func (m *memSOS) Create(completion *models.SOSCompletion) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.sos[completion.UserID] = append(m.s.sos[completion.UserID], *completion)
	return nil
}

func (m *memSOS) ListByUser(userID uuid.UUID, limit int) ([]models.SOSCompletion, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	all := m.s.sos[userID]
	history := make([]models.SOSCompletion, 0, len(all))
	for i := len(all) - 1; i >= 0 && len(history) < limit; i-- {
		history = append(history, all[i])
	}
	return history, nil
}

// --- creator universe ---

type memUniverses struct {
	s *memoryStore
}

func (m *memUniverses) FindByUser(userID uuid.UUID) (*models.CreatorUniverse, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	universe, ok := m.s.universes[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &universe, nil
}

func (m *memUniverses) Save(universe *models.CreatorUniverse) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.universes[universe.UserID] = *universe
	return nil
}

// --- analysis entries ---

type memAnalysis struct {
	s *memoryStore
}

func (m *memAnalysis) ListByUser(userID uuid.UUID, limit int) ([]models.AnalysisEntry, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	entries := make([]models.AnalysisEntry, 0, len(m.s.analysis[userID]))
	for _, entry := range m.s.analysis[userID] {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].EntryID < entries[j].EntryID
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *memAnalysis) Upsert(entry *models.AnalysisEntry) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	byID := m.s.analysis[entry.UserID]
	if byID == nil {
		byID = make(map[string]models.AnalysisEntry)
		m.s.analysis[entry.UserID] = byID
	}
	if existing, ok := byID[entry.EntryID]; ok {
		entry.CreatedAt = existing.CreatedAt
	}
	byID[entry.EntryID] = *entry
	return nil
}

func (m *memAnalysis) Delete(userID uuid.UUID, entryID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.analysis[userID][entryID]; !ok {
		return ErrNotFound
	}
	delete(m.s.analysis[userID], entryID)
	return nil
}

// --- schedule ---

type memSchedules struct {
	s *memoryStore
}

func (m *memSchedules) FindByUser(userID uuid.UUID) (*models.Schedule, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	schedule, ok := m.s.schedules[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &schedule, nil
}

func (m *memSchedules) Save(schedule *models.Schedule) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.schedules[schedule.UserID] = *schedule
	return nil
}

// --- story finder ---

type memStoryFinder struct {
	s *memoryStore
}

func (m *memStoryFinder) FindByUser(userID uuid.UUID) (*models.StoryFinderSheet, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	sheet, ok := m.s.sheets[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &sheet, nil
}

func (m *memStoryFinder) Save(sheet *models.StoryFinderSheet) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.sheets[sheet.UserID] = *sheet
	return nil
}

// --- content tips ---

type memTips struct {
	s *memoryStore
}

func (m *memTips) ListByUser(userID uuid.UUID) ([]models.TipProgress, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	progress := make([]models.TipProgress, 0, len(m.s.tips[userID]))
	for _, p := range m.s.tips[userID] {
		progress = append(progress, p)
	}
	sort.Slice(progress, func(i, j int) bool { return progress[i].TipID < progress[j].TipID })
	return progress, nil
}

func (m *memTips) CompleteIfPending(progress *models.TipProgress) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	byTip := m.s.tips[progress.UserID]
	if byTip == nil {
		byTip = make(map[string]models.TipProgress)
		m.s.tips[progress.UserID] = byTip
	}
	if existing, ok := byTip[progress.TipID]; ok && existing.QuizCompleted {
		return false, nil
	}
	byTip[progress.TipID] = *progress
	return true, nil
}

// --- batching scripts ---

type memScripts struct {
	s *memoryStore
}

func (m *memScripts) ListByUser(userID uuid.UUID, limit int) ([]models.BatchingScript, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	scripts := make([]models.BatchingScript, 0, len(m.s.scripts[userID]))
	for _, script := range m.s.scripts[userID] {
		scripts = append(scripts, script)
	}
	sort.Slice(scripts, func(i, j int) bool {
		if scripts[i].CreatedAt.Equal(scripts[j].CreatedAt) {
			return scripts[i].ScriptID < scripts[j].ScriptID
		}
		return scripts[i].CreatedAt.Before(scripts[j].CreatedAt)
	})
	if len(scripts) > limit {
		scripts = scripts[:limit]
	}
	return scripts, nil
}

func (m *memScripts) Upsert(script *models.BatchingScript) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	byID := m.s.scripts[script.UserID]
	if byID == nil {
		byID = make(map[string]models.BatchingScript)
		m.s.scripts[script.UserID] = byID
	}
	if existing, ok := byID[script.ScriptID]; ok {
		script.CreatedAt = existing.CreatedAt
	}
	byID[script.ScriptID] = *script
	return nil
}

func (m *memScripts) Delete(userID uuid.UUID, scriptID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.scripts[userID][scriptID]; !ok {
		return ErrNotFound
	}
	delete(m.s.scripts[userID], scriptID)
	return nil
}
