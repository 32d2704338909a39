package save

import (
	"sort"
	"time"

	"github.com/golangdaddy/grimeshine/pkg/catalog"
)

// maxHighScores caps the persisted high-score list.
const maxHighScores = 10

// HighScore is one entry in the persisted top-10 list.
type HighScore struct {
	Score int       `json:"score"`
	Level int       `json:"level"`
	Date  time.Time `json:"date"`
}

// Statistics accumulates lifetime totals across all runs.
type Statistics struct {
	TotalRuns          int `json:"total_runs"`
	TotalCarsCompleted int `json:"total_cars_completed"`
	TotalCashEarned    int `json:"total_cash_earned"`
	HighestLevel       int `json:"highest_level"`
	BestScore          int `json:"best_score"`
}

// Profile is the cross-run save state: star balance, permanent upgrades,
// unlocked characters, lifetime statistics and the high-score table.
type Profile struct {
	MetaCurrency       int         `json:"meta_currency"` // Stars
	PermanentUpgrades  []string    `json:"permanent_upgrades"`
	UnlockedCharacters []string    `json:"unlocked_characters"`
	Statistics         Statistics  `json:"statistics"`
	HighScores         []HighScore `json:"high_scores"`
	SelectedCharacter  string      `json:"selected_character"`
}

// DefaultProfile returns the save structure a fresh install starts from.
func DefaultProfile() *Profile {
	return &Profile{
		MetaCurrency:       0,
		PermanentUpgrades:  []string{},
		UnlockedCharacters: []string{catalog.DefaultCharacterID},
		Statistics:         Statistics{HighestLevel: 1},
		HighScores:         []HighScore{},
		SelectedCharacter:  catalog.DefaultCharacterID,
	}
}

// normalize repairs invariants after loading possibly stale or hand-edited
// data: the base character is always unlocked, a character is always
// selected, and the high-score list is sorted and capped.
func (p *Profile) normalize() {
	if !contains(p.UnlockedCharacters, catalog.DefaultCharacterID) {
		p.UnlockedCharacters = append([]string{catalog.DefaultCharacterID}, p.UnlockedCharacters...)
	}
	if p.SelectedCharacter == "" || !contains(p.UnlockedCharacters, p.SelectedCharacter) {
		p.SelectedCharacter = catalog.DefaultCharacterID
	}
	if p.Statistics.HighestLevel < 1 {
		p.Statistics.HighestLevel = 1
	}
	sort.SliceStable(p.HighScores, func(i, j int) bool {
		return p.HighScores[i].Score > p.HighScores[j].Score
	})
	if len(p.HighScores) > maxHighScores {
		p.HighScores = p.HighScores[:maxHighScores]
	}
}

// HasPermanentUpgrade reports whether the given upgrade is owned.
func (p *Profile) HasPermanentUpgrade(id string) bool {
	return contains(p.PermanentUpgrades, id)
}

// HasCharacter reports whether the given character is unlocked.
func (p *Profile) HasCharacter(id string) bool {
	return contains(p.UnlockedCharacters, id)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
