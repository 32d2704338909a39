package save

import (
	"encoding/json"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// profileRecord is the single-row table holding the JSON-encoded profile.
// The save file stays an opaque blob so profile fields can evolve without
// schema migrations.
type profileRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Data      []byte // JSON-encoded Profile
	UpdatedAt time.Time
}

// Store persists the player profile in a local SQLite database. All
// operations are synchronous read-modify-write; a single active session is
// assumed. Load never fails: missing or corrupt data degrades to defaults.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens (or creates) the save database at the given path.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&profileRecord{}); err != nil {
		return nil, err
	}
	return &Store{db: db, log: log}, nil
}

// Load returns the persisted profile, or the default structure when nothing
// has been saved yet or the stored blob does not parse. Corruption is logged
// and recovered, never surfaced to the player.
func (s *Store) Load() *Profile {
	var rec profileRecord
	err := s.db.First(&rec).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			s.log.Warn().Err(err).Msg("save data unreadable, using defaults")
		}
		return DefaultProfile()
	}

	profile := DefaultProfile()
	if err := json.Unmarshal(rec.Data, profile); err != nil {
		s.log.Warn().Err(err).Msg("save data corrupt, using defaults")
		return DefaultProfile()
	}
	profile.normalize()
	return profile
}

// Save writes the profile, replacing any previous record.
// Returns true on success.
func (s *Store) Save(p *Profile) bool {
	p.normalize()
	data, err := json.Marshal(p)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode save data")
		return false
	}

	rec := profileRecord{ID: 1, Data: data}
	if err := s.db.Save(&rec).Error; err != nil {
		s.log.Error().Err(err).Msg("failed to write save data")
		return false
	}
	return true
}

// AddStars credits stars and returns the new balance.
func (s *Store) AddStars(amount int) int {
	p := s.Load()
	p.MetaCurrency += amount
	s.Save(p)
	return p.MetaCurrency
}

// SpendStars debits stars if the balance allows it. Returns false (and
// changes nothing) when the balance is insufficient.
func (s *Store) SpendStars(amount int) bool {
	p := s.Load()
	if p.MetaCurrency < amount {
		return false
	}
	p.MetaCurrency -= amount
	s.Save(p)
	return true
}

// AddPermanentUpgrade records ownership of a permanent upgrade. Returns
// false if it was already owned (the effect must not be doubled).
func (s *Store) AddPermanentUpgrade(id string) bool {
	p := s.Load()
	if p.HasPermanentUpgrade(id) {
		return false
	}
	p.PermanentUpgrades = append(p.PermanentUpgrades, id)
	s.Save(p)
	return true
}

// UnlockCharacter records a character unlock. Returns false if already
// unlocked.
func (s *Store) UnlockCharacter(id string) bool {
	p := s.Load()
	if p.HasCharacter(id) {
		return false
	}
	p.UnlockedCharacters = append(p.UnlockedCharacters, id)
	s.Save(p)
	return true
}

// SelectCharacter persists the active character choice. Selecting a locked
// character is rejected.
func (s *Store) SelectCharacter(id string) bool {
	p := s.Load()
	if !p.HasCharacter(id) {
		return false
	}
	p.SelectedCharacter = id
	s.Save(p)
	return true
}

// RunResult is what a finished run reports into the profile.
type RunResult struct {
	Level         int
	CarsCompleted int
	CashEarned    int
	Score         int
}

// RecordRun appends a finished run to the lifetime statistics and the
// capped high-score list.
func (s *Store) RecordRun(r RunResult) {
	p := s.Load()
	p.Statistics.TotalRuns++
	p.Statistics.TotalCarsCompleted += r.CarsCompleted
	p.Statistics.TotalCashEarned += r.CashEarned
	if r.Level > p.Statistics.HighestLevel {
		p.Statistics.HighestLevel = r.Level
	}
	if r.Score > p.Statistics.BestScore {
		p.Statistics.BestScore = r.Score
	}
	p.HighScores = append(p.HighScores, HighScore{
		Score: r.Score,
		Level: r.Level,
		Date:  time.Now(),
	})
	s.Save(p)
}
