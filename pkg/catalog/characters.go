package catalog

// DefaultCharacterID is always present in the unlocked set.
const DefaultCharacterID = "base"

// Character is a playable character. Its ability applies once per run; the
// run engine guards against reapplying it at every level so multiplier
// abilities do not compound.
type Character struct {
	ID          string
	Name        string
	Description string
	Cost        int // Cash price when unlocking from the upgrade screen
	Rarity      Rarity
	Ability     Effect
}

// Characters is the static roster.
var Characters = []Character{
	{ID: "base", Name: "Rookie", Description: "Standard cleaner with no special abilities.", Cost: 0, Rarity: RarityCommon, Ability: Effect{Kind: EffectNone}},
	{ID: "speedster", Name: "Speedster", Description: "Cleans and vacuums 20% faster.", Cost: 500, Rarity: RarityUncommon, Ability: Effect{Kind: EffectCleanSpeed, Value: 0.8}},
	{ID: "lucky", Name: "Lucky", Description: "Finds 30% more loot.", Cost: 1000, Rarity: RarityRare, Ability: Effect{Kind: EffectSearchLoot, Value: 1.3}},
	{ID: "ghost", Name: "Ghost", Description: "Reduces alarm chance by 50%.", Cost: 2000, Rarity: RarityEpic, Ability: Effect{Kind: EffectSearchAlarm, Value: 0.5}},
}

// pairedAbilityEffects lists secondary ability effects for characters whose
// ability touches more than one stat.
var pairedAbilityEffects = map[string][]Effect{
	"speedster": {{Kind: EffectVacuumSpeed, Value: 0.8}},
}

// AbilityEffects returns every stat effect of a character's ability.
func AbilityEffects(id string) []Effect {
	c := FindCharacter(id)
	if c == nil || c.Ability.Kind == EffectNone {
		return nil
	}
	effects := []Effect{c.Ability}
	effects = append(effects, pairedAbilityEffects[id]...)
	return effects
}

// FindCharacter looks up a character by ID. Returns nil if not found.
func FindCharacter(id string) *Character {
	for i := range Characters {
		if Characters[i].ID == id {
			return &Characters[i]
		}
	}
	return nil
}
