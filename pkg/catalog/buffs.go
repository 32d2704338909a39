package catalog

// TempBuff is a cash-purchased effect that applies once at the start of the
// next level and is then discarded.
type TempBuff struct {
	Name        string
	Description string
	Rarity      Rarity
	Effect      Effect
}

// TempBuffs is the static pool of temporary buffs.
var TempBuffs = []TempBuff{
	{Name: "Stronger Cleaning Fluid", Description: "Clean cars 30% faster this level.", Rarity: RarityCommon, Effect: Effect{Kind: EffectCleanSpeed, Value: 0.7}},
	{Name: "Turbo Vacuum", Description: "Vacuum cars 30% faster this level.", Rarity: RarityCommon, Effect: Effect{Kind: EffectVacuumSpeed, Value: 0.7}},
	{Name: "Lucky Charm", Description: "Find 20% more loot this level.", Rarity: RarityUncommon, Effect: Effect{Kind: EffectSearchLoot, Value: 1.2}},
	{Name: "Silent Gloves", Description: "Reduce alarm chance by 20% this level.", Rarity: RarityUncommon, Effect: Effect{Kind: EffectSearchAlarm, Value: 0.8}},
}

// BuffCost returns the cash price of a temporary buff by rarity. Buffs are
// cheaper than upgrades because they only last one level.
func BuffCost(r Rarity) int {
	switch r {
	case RarityCommon:
		return 20
	case RarityUncommon:
		return 40
	case RarityRare:
		return 60
	case RarityLegendary:
		return 80
	}
	return 20
}
