package run

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/golangdaddy/grimeshine/pkg/models"
)

// OutcomeKind classifies what a completed action did.
type OutcomeKind int

const (
	OutcomeLoot    OutcomeKind = iota // Search found loot
	OutcomeAlarm                      // Search tripped the alarm
	OutcomeNeutral                    // Search found nothing special
	OutcomeCleaned
	OutcomeVacuumed
)

// Award is a follow-up cash bonus attached to an outcome (steam cleaner,
// magnetic vacuum, tips, VIP service).
type Award struct {
	Source string
	Cash   int
}

// Outcome is the result of resolving one action on one car.
type Outcome struct {
	Kind        OutcomeKind
	Cash        int     // Cash credited by the action itself
	TimePenalty int     // Seconds removed from the timer (alarm only)
	Message     string  // Player-facing summary
	Awards      []Award // Tool-driven follow-up bonuses
}

// Resolver computes action durations and rewards. One uniform draw decides
// between the three search outcomes, so they are mutually exclusive and
// exhaustive by construction.
type Resolver struct {
	rng *rand.Rand
	log zerolog.Logger
}

// NewResolver creates a resolver on the given RNG.
func NewResolver(rng *rand.Rand, log zerolog.Logger) *Resolver {
	return &Resolver{rng: rng, log: log}
}

// Duration returns the action's length in seconds: the player's base time
// (scaled by their multiplier) times the car type's modifier, with a 1.5x
// penalty for Extra Dirty cleans and Complex Interior vacuums.
func (r *Resolver) Duration(action models.Action, car *Car, stats *models.PlayerStats) float64 {
	var base float64
	switch action {
	case models.ActionSearch:
		base = stats.BaseSearchTime * stats.SearchLootMultiplier
	case models.ActionClean:
		base = stats.BaseCleanTime * stats.CleanSpeedMultiplier
		if car.Special == SpecialExtraDirty {
			base *= 1.5
		}
	case models.ActionVacuum:
		base = stats.BaseVacuumTime * stats.VacuumSpeedMultiplier
		if car.Special == SpecialComplexInterior {
			base *= 1.5
		}
	default:
		base = 5
	}
	return base * car.Type.Modifier(action)
}

// Resolve computes the outcome of a completed action. It only reads state;
// the run applies cash and time changes so mutation ordering stays in one
// place.
func (r *Resolver) Resolve(action models.Action, car *Car, stats *models.PlayerStats) Outcome {
	switch action {
	case models.ActionSearch:
		return r.resolveSearch(car, stats)
	case models.ActionClean:
		return r.resolveClean(car, stats)
	case models.ActionVacuum:
		return r.resolveVacuum(car, stats)
	}
	return Outcome{Kind: OutcomeNeutral, Message: "Nothing happened"}
}

// SearchChances returns the capped loot and alarm chances for a search on
// this car. Exposed so the probabilities are testable apart from the draw.
func SearchChances(car *Car) (loot, alarm float64) {
	lootBase := 0.3
	alarmBase := 0.2
	switch car.Special {
	case SpecialHiddenCompartment:
		lootBase *= 1.5
	case SpecialVIPOwner:
		alarmBase = 0
		lootBase *= 1.3
	case SpecialSuspicious:
		alarmBase *= 1.5
		lootBase *= 1.4
	}

	modifier := car.Type.SearchModifier
	loot = math.Min(lootBase*modifier, 0.9)
	alarm = math.Min(alarmBase*modifier, 0.7)
	return loot, alarm
}

func (r *Resolver) resolveSearch(car *Car, stats *models.PlayerStats) Outcome {
	modifier := car.Type.SearchModifier
	lootChance, alarmChance := SearchChances(car)

	roll := r.rng.Float64()
	switch {
	case roll < lootChance:
		loot := int(math.Floor((r.rng.Float64()*20 + 10) * modifier * stats.SearchLootMultiplier * car.Type.CashMultiplier))
		switch car.Special {
		case SpecialHiddenCompartment:
			loot = int(math.Floor(float64(loot) * 1.5))
		case SpecialVIPOwner:
			loot = int(math.Floor(float64(loot) * 1.3))
		case SpecialSuspicious:
			loot = int(math.Floor(float64(loot) * 1.4))
		}
		return Outcome{
			Kind:    OutcomeLoot,
			Cash:    loot,
			Message: fmt.Sprintf("Found Loot! +$%d", loot),
		}

	case roll < lootChance+alarmChance:
		penalty := int(math.Round(10 * modifier * stats.SearchAlarmModifier))
		return Outcome{
			Kind:        OutcomeAlarm,
			TimePenalty: penalty,
			Message:     fmt.Sprintf("Alarm! -%ds", penalty),
		}

	default:
		// Found nothing special: small consolation payout. VIP Owner cars
		// still pay this floor; only their alarm chance is zeroed.
		cash := int(math.Round(5 * modifier * car.Type.CashMultiplier))
		return Outcome{
			Kind:    OutcomeNeutral,
			Cash:    cash,
			Message: fmt.Sprintf("Searched. +$%d", cash),
		}
	}
}

func (r *Resolver) resolveClean(car *Car, stats *models.PlayerStats) Outcome {
	modifier := car.Type.CleanModifier
	base := 10.0
	message := "Cleaned!"

	if car.Special == SpecialExtraDirty {
		base *= 1.5
		if stats.DirtyCarBonus > 0 {
			// Rubber Gloves pay extra on filthy cars
			base *= 1 + stats.DirtyCarBonus*0.5
		}
		message = "Cleaned! (Dirty Bonus!)"
	}

	cash := int(math.Round(base * modifier * car.Type.CashMultiplier))
	out := Outcome{
		Kind:    OutcomeCleaned,
		Cash:    cash,
		Message: fmt.Sprintf("%s +$%d", message, cash),
	}

	if stats.SteamCleaner && car.NeedsVacuumOrSearch {
		bonus := int(math.Round(15 * modifier * car.Type.CashMultiplier))
		out.Awards = append(out.Awards, Award{Source: "Steam Bonus!", Cash: bonus})
	}
	return out
}

func (r *Resolver) resolveVacuum(car *Car, stats *models.PlayerStats) Outcome {
	modifier := car.Type.VacuumModifier
	base := 15.0
	message := "Vacuumed!"

	if car.Special == SpecialComplexInterior {
		base *= 1.5
		message = "Vacuumed! (Complex!)"
	}

	cash := int(math.Round(base * modifier * car.Type.CashMultiplier))
	out := Outcome{
		Kind:    OutcomeVacuumed,
		Cash:    cash,
		Message: fmt.Sprintf("%s +$%d", message, cash),
	}

	if stats.MagneticVacuum {
		bonus := int(math.Floor((r.rng.Float64()*10 + 5) * car.Type.CashMultiplier))
		out.Awards = append(out.Awards, Award{Source: "Magnet Bonus!", Cash: bonus})
	}
	return out
}

// CompletionBonuses evaluates the post-action bonus layer, independent of
// action type, once per completed interaction. carsServed counts cars
// finished since VIP Service was acquired, including the one just finished;
// the bonus pays on every 5th of those.
func (r *Resolver) CompletionBonuses(stats *models.PlayerStats, level, carsServed int) []Award {
	var awards []Award

	if stats.TipChance > 0 && r.rng.Float64() < stats.TipChance {
		tip := r.rng.Intn(10) + 5 // $5-14
		awards = append(awards, Award{Source: "Tip!", Cash: tip})
	}

	if stats.LargeTipChance > 0 && r.rng.Float64() < stats.LargeTipChance {
		tip := r.rng.Intn(30) + 20 // $20-49
		awards = append(awards, Award{Source: "Large Tip!", Cash: tip})
	}

	if stats.VIPService && carsServed%5 == 0 {
		awards = append(awards, Award{Source: "VIP Bonus!", Cash: 100 + level*20})
	}

	return awards
}
