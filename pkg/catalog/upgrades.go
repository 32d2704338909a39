package catalog

// Upgrade is a run-scoped upgrade offered between levels and purchased with
// cash. Its effect applies immediately and lasts for the rest of the run.
type Upgrade struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
	Effect      Effect
}

// Upgrades is the static pool of run upgrades offered between levels.
var Upgrades = []Upgrade{
	// Common
	{ID: "clean1", Name: "Faster Cleaning", Description: "Clean cars 15% faster.", Rarity: RarityCommon, Effect: Effect{Kind: EffectCleanSpeed, Value: 0.85}},
	{ID: "vacuum1", Name: "Faster Vacuuming", Description: "Vacuum cars 15% faster.", Rarity: RarityCommon, Effect: Effect{Kind: EffectVacuumSpeed, Value: 0.85}},
	{ID: "search1", Name: "Better Loot Sense", Description: "Slightly increase loot found.", Rarity: RarityCommon, Effect: Effect{Kind: EffectSearchLoot, Value: 1.1}},
	{ID: "search2", Name: "Quieter Search", Description: "Slightly reduce alarm chance.", Rarity: RarityCommon, Effect: Effect{Kind: EffectSearchAlarm, Value: 0.9}},
	{ID: "move1", Name: "Running Shoes", Description: "Move 5% faster.", Rarity: RarityCommon, Effect: Effect{Kind: EffectMoveSpeed, Value: 1.05}},
	{ID: "tipjar", Name: "Tip Jar", Description: "5% chance to receive a small tip after completing a car.", Rarity: RarityCommon, Effect: Effect{Kind: EffectTipChance, Value: 0.05}},
	{ID: "gloves", Name: "Rubber Gloves", Description: "20% faster cleaning on dirty cars.", Rarity: RarityCommon, Effect: Effect{Kind: EffectDirtyCarBonus, Value: 0.2}},

	// Uncommon
	{ID: "clean2", Name: "Power Washer", Description: "Clean cars 25% faster.", Rarity: RarityUncommon, Effect: Effect{Kind: EffectCleanSpeed, Value: 0.75}},
	{ID: "vacuum2", Name: "Turbo Vacuum", Description: "Vacuum cars 25% faster.", Rarity: RarityUncommon, Effect: Effect{Kind: EffectVacuumSpeed, Value: 0.75}},
	{ID: "search3", Name: "Lucky Find", Description: "Increase loot found by 20%.", Rarity: RarityUncommon, Effect: Effect{Kind: EffectSearchLoot, Value: 1.2}},
	{ID: "search4", Name: "Silent Search", Description: "Reduce alarm chance by 25%.", Rarity: RarityUncommon, Effect: Effect{Kind: EffectSearchAlarm, Value: 0.75}},
	{ID: "move2", Name: "Sprint Sneakers", Description: "Move 10% faster.", Rarity: RarityUncommon, Effect: Effect{Kind: EffectMoveSpeed, Value: 1.10}},
	{ID: "efficiency", Name: "Efficiency Expert", Description: "Completing cars faster gives bonus cash.", Rarity: RarityUncommon, Effect: Effect{Kind: EffectEfficiencyExpert}},

	// Rare
	{ID: "clean3", Name: "Nano Cleaner", Description: "Clean cars 40% faster.", Rarity: RarityRare, Effect: Effect{Kind: EffectCleanSpeed, Value: 0.6}},
	{ID: "vacuum3", Name: "Hyper Vacuum", Description: "Vacuum cars 40% faster.", Rarity: RarityRare, Effect: Effect{Kind: EffectVacuumSpeed, Value: 0.6}},
	{ID: "search5", Name: "Treasure Hunter", Description: "Increase loot found by 30%.", Rarity: RarityRare, Effect: Effect{Kind: EffectSearchLoot, Value: 1.3}},
	{ID: "search6", Name: "Ghost Touch", Description: "Reduce alarm chance by 35%.", Rarity: RarityRare, Effect: Effect{Kind: EffectSearchAlarm, Value: 0.65}},
	{ID: "move3", Name: "Jet Boots", Description: "Move 15% faster.", Rarity: RarityRare, Effect: Effect{Kind: EffectMoveSpeed, Value: 1.15}},
	{ID: "connections", Name: "Customer Connections", Description: "15% chance to receive a large tip after completing a car.", Rarity: RarityRare, Effect: Effect{Kind: EffectLargeTipChance, Value: 0.15}},
	{ID: "steamcleaner", Name: "Steam Cleaner", Description: "Cleaning also vacuums the car (2-in-1 action).", Rarity: RarityRare, Effect: Effect{Kind: EffectSteamCleaner}},
	{ID: "magnetvac", Name: "Magnetic Vacuum", Description: "Vacuuming also searches for loose change.", Rarity: RarityRare, Effect: Effect{Kind: EffectMagneticVacuum}},

	// Legendary
	{ID: "clean4", Name: "Instant Wash", Description: "Clean cars instantly!", Rarity: RarityLegendary, Effect: Effect{Kind: EffectCleanSpeed, Value: 0.1}},
	{ID: "vacuum4", Name: "Black Hole Vacuum", Description: "Vacuum cars instantly!", Rarity: RarityLegendary, Effect: Effect{Kind: EffectVacuumSpeed, Value: 0.1}},
	{ID: "search7", Name: "Master Thief", Description: "Double loot found.", Rarity: RarityLegendary, Effect: Effect{Kind: EffectSearchLoot, Value: 2.0}},
	{ID: "search8", Name: "Phantom Hands", Description: "No alarm chance at all.", Rarity: RarityLegendary, Effect: Effect{Kind: EffectSearchAlarm, Value: 0}},
	{ID: "timewarp", Name: "Time Warp Watch", Description: "Permanently adds 5 seconds to your timer.", Rarity: RarityLegendary, Effect: Effect{Kind: EffectTimeBonus, Value: 5}},
	{ID: "move4", Name: "Quantum Dash", Description: "Move 20% faster.", Rarity: RarityLegendary, Effect: Effect{Kind: EffectMoveSpeed, Value: 1.20}},
	{ID: "vipservice", Name: "VIP Service", Description: "Every 5th car completed gives a significant cash bonus.", Rarity: RarityLegendary, Effect: Effect{Kind: EffectVIPService}},
	{ID: "xrayvision", Name: "X-Ray Goggles", Description: "See special properties before interacting.", Rarity: RarityLegendary, Effect: Effect{Kind: EffectXRayVision}},
	{ID: "multitask", Name: "Multitasker", Description: "Perform all 3 actions on a car (takes 2x time, 3x rewards).", Rarity: RarityLegendary, Effect: Effect{Kind: EffectMultitask}},
}

// UpgradeCost returns the cash price of a run upgrade by rarity.
func UpgradeCost(r Rarity) int {
	switch r {
	case RarityCommon:
		return 50
	case RarityUncommon:
		return 100
	case RarityRare:
		return 150
	case RarityLegendary:
		return 200
	}
	return 50
}

// OfferWeights are the rarity weights for the between-level offer pool.
var OfferWeights = map[Rarity]int{
	RarityCommon:    60,
	RarityUncommon:  25,
	RarityRare:      10,
	RarityLegendary: 5,
}
