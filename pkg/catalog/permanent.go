package catalog

// PermanentUpgrade is a meta-progression upgrade purchased with stars in the
// shop. Ownership persists across runs; effects apply at every run start.
type PermanentUpgrade struct {
	ID          string
	Name        string
	Description string
	Cost        int    // Star price
	Requires    string // ID of a prerequisite upgrade, empty if none
	Effect      Effect
}

// PermanentUpgrades is the static star-shop catalog.
var PermanentUpgrades = []PermanentUpgrade{
	{ID: "perm_time_1", Name: "Extra Time I", Description: "Start each level with +5 seconds", Cost: 50, Effect: Effect{Kind: EffectTimeBonus, Value: 5}},
	{ID: "perm_time_2", Name: "Extra Time II", Description: "Start each level with +10 seconds", Cost: 150, Requires: "perm_time_1", Effect: Effect{Kind: EffectTimeBonus, Value: 10}},
	{ID: "perm_speed_1", Name: "Quick Start", Description: "Start with 10% faster cleaning and vacuuming", Cost: 75, Effect: Effect{Kind: EffectCleanSpeed, Value: 0.9}},
	{ID: "perm_loot_1", Name: "Lucky Finder", Description: "Start with 15% better loot from searches", Cost: 75, Effect: Effect{Kind: EffectSearchLoot, Value: 1.15}},
	{ID: "perm_alarm_1", Name: "Stealth Training", Description: "Start with 20% reduced alarm chance", Cost: 100, Effect: Effect{Kind: EffectSearchAlarm, Value: 0.8}},
	{ID: "perm_starting_cash", Name: "Nest Egg", Description: "Start each run with $50", Cost: 100, Effect: Effect{Kind: EffectStartingCash, Value: 50}},
	{ID: "perm_char_unlock_1", Name: "Unlock Speedster", Description: "Unlock the Speedster character", Cost: 200, Effect: Effect{Kind: EffectUnlockCharacter, CharacterID: "speedster"}},
	{ID: "perm_char_unlock_2", Name: "Unlock Lucky", Description: "Unlock the Lucky character", Cost: 400, Effect: Effect{Kind: EffectUnlockCharacter, CharacterID: "lucky"}},
	{ID: "perm_char_unlock_3", Name: "Unlock Ghost", Description: "Unlock the Ghost character", Cost: 600, Effect: Effect{Kind: EffectUnlockCharacter, CharacterID: "ghost"}},
}

// FindPermanentUpgrade looks up a permanent upgrade by ID.
// Returns nil if no such upgrade exists.
func FindPermanentUpgrade(id string) *PermanentUpgrade {
	for i := range PermanentUpgrades {
		if PermanentUpgrades[i].ID == id {
			return &PermanentUpgrades[i]
		}
	}
	return nil
}

// quickStartVacuum is the vacuum half of Quick Start, applied alongside its
// clean-speed effect. The catalog keeps one Effect per entry, so paired
// effects are listed here.
var pairedPermanentEffects = map[string][]Effect{
	"perm_speed_1": {{Kind: EffectVacuumSpeed, Value: 0.9}},
}

// PermanentEffects returns every stat effect a permanent upgrade carries,
// including paired secondary effects.
func PermanentEffects(id string) []Effect {
	pu := FindPermanentUpgrade(id)
	if pu == nil {
		return nil
	}
	effects := []Effect{pu.Effect}
	effects = append(effects, pairedPermanentEffects[id]...)
	return effects
}
