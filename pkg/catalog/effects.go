package catalog

import "github.com/golangdaddy/grimeshine/pkg/models"

// EffectKind identifies what an upgrade, buff, event or character ability
// changes. Effects are plain data interpreted by Apply, so catalog entries
// stay serialisable and testable instead of carrying closures.
type EffectKind int

const (
	EffectNone EffectKind = iota

	// Stat multipliers (Value multiplies the named stat)
	EffectCleanSpeed
	EffectVacuumSpeed
	EffectSearchLoot
	EffectSearchAlarm
	EffectMoveSpeed

	// Additive stat effects
	EffectTimeBonus      // Value = seconds added to every level timer
	EffectTipChance      // Value added to the small-tip chance
	EffectLargeTipChance // Value added to the large-tip chance
	EffectDirtyCarBonus  // Value added to the Extra Dirty cash bonus

	// Flag effects (Value unused)
	EffectVIPService
	EffectSteamCleaner
	EffectMagneticVacuum
	EffectXRayVision
	EffectMultitask
	EffectEfficiencyExpert

	// Run-level effects, interpreted by the run engine rather than Apply
	EffectExtraCars       // Value = cars added to this level's spawn request
	EffectStartingCash    // Value = cash granted at run start
	EffectUnlockCharacter // CharacterID names the character to unlock
)

// Effect is a tagged variant describing a single stat or run mutation.
type Effect struct {
	Kind        EffectKind
	Value       float64
	CharacterID string // Only set for EffectUnlockCharacter
}

// Apply interprets a stat-level effect against the given player stats.
// It returns false for run-level effects (extra cars, starting cash,
// character unlocks), which the run engine handles itself.
func Apply(e Effect, stats *models.PlayerStats) bool {
	switch e.Kind {
	case EffectCleanSpeed:
		stats.CleanSpeedMultiplier *= e.Value
	case EffectVacuumSpeed:
		stats.VacuumSpeedMultiplier *= e.Value
	case EffectSearchLoot:
		stats.SearchLootMultiplier *= e.Value
	case EffectSearchAlarm:
		stats.SearchAlarmModifier *= e.Value
	case EffectMoveSpeed:
		stats.MoveSpeedMultiplier *= e.Value
	case EffectTimeBonus:
		stats.TimeBonus += int(e.Value)
	case EffectTipChance:
		stats.TipChance += e.Value
	case EffectLargeTipChance:
		stats.LargeTipChance += e.Value
	case EffectDirtyCarBonus:
		stats.DirtyCarBonus += e.Value
	case EffectVIPService:
		stats.VIPService = true
	case EffectSteamCleaner:
		stats.SteamCleaner = true
	case EffectMagneticVacuum:
		stats.MagneticVacuum = true
	case EffectXRayVision:
		stats.XRayVision = true
	case EffectMultitask:
		stats.Multitask = true
	case EffectEfficiencyExpert:
		stats.EfficiencyExpert = true
	default:
		return false
	}
	return true
}
