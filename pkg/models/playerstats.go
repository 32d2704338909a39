package models

import "math"

// Action identifies one of the three things a player can do to a car.
type Action int

const (
	ActionSearch Action = iota
	ActionClean
	ActionVacuum
)

// String returns the lowercase action name used in logs and UI labels.
func (a Action) String() string {
	switch a {
	case ActionSearch:
		return "search"
	case ActionClean:
		return "clean"
	case ActionVacuum:
		return "vacuum"
	}
	return "unknown"
}

// PlayerStats represents the player's run-scoped multipliers and base times.
// Speed multipliers below 1.0 mean faster actions; SearchAlarmModifier below
// 1.0 means safer searches. Multipliers compound multiplicatively across
// upgrades and buffs and are only reset when a run ends.
type PlayerStats struct {
	// Action speed and outcome multipliers
	CleanSpeedMultiplier  float64 // Multiplies clean duration (lower = faster)
	VacuumSpeedMultiplier float64 // Multiplies vacuum duration (lower = faster)
	SearchLootMultiplier  float64 // Multiplies loot payouts (and search duration)
	SearchAlarmModifier   float64 // Multiplies alarm penalty/chance (lower = safer)
	MoveSpeedMultiplier   float64 // Multiplies player walk speed

	// Base action times in seconds, before any multiplier
	BaseCleanTime  float64
	BaseVacuumTime float64
	BaseSearchTime float64

	// TimeBonus is added to the level countdown at every level start
	TimeBonus int

	// Bonus-effect chances and amounts (zero until an upgrade grants them)
	TipChance      float64 // Chance of a small tip after completing a car
	LargeTipChance float64 // Chance of a large tip after completing a car
	DirtyCarBonus  float64 // Extra cash fraction when cleaning Extra Dirty cars

	// Tool and service flags (off until an upgrade grants them)
	VIPService       bool // Every 5th completed car pays a cash bonus
	SteamCleaner     bool // Cleaning also vacuums the car
	MagneticVacuum   bool // Vacuuming also picks up loose change
	XRayVision       bool // Special properties are visible before interacting
	Multitask        bool // Reserved: combined-action mode
	EfficiencyExpert bool // Reserved: speed-completion bonus
}

// NewPlayerStats returns the default stats a run starts from, before any
// permanent upgrades or character abilities are applied.
func NewPlayerStats() *PlayerStats {
	return &PlayerStats{
		CleanSpeedMultiplier:  1.0,
		VacuumSpeedMultiplier: 1.0,
		SearchLootMultiplier:  1.0,
		SearchAlarmModifier:   1.0,
		MoveSpeedMultiplier:   1.0,
		BaseCleanTime:         5,
		BaseVacuumTime:        5,
		BaseSearchTime:        5,
		TimeBonus:             0,
	}
}

// SpeedPercent formats a speed-style multiplier (lower = better) as a
// bonus percentage for display, e.g. 0.7 -> 30.
func SpeedPercent(multiplier float64) int {
	return int(math.Round((1 - multiplier) * 100))
}

// BonusPercent formats a payout-style multiplier (higher = better) as a
// bonus percentage for display, e.g. 1.2 -> 20.
func BonusPercent(multiplier float64) int {
	return int(math.Round((multiplier - 1) * 100))
}
