package catalog

import (
	"math/rand"

	"github.com/golangdaddy/grimeshine/pkg/models"
)

// Rarity tiers for cars, upgrades, buffs and characters.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
	RarityEpic      Rarity = "epic"
)

// CarType defines a kind of car that can appear in the lot. Modifiers scale
// both the time an action takes and, for cash, its payout. Every modifier is
// strictly positive.
type CarType struct {
	Name           string
	Sprite         string  // Sprite identifier for the presentation layer
	Width          float64 // Footprint in world units
	Height         float64
	SearchModifier float64 // Search time and loot chance scale
	CleanModifier  float64 // Cleaning time scale
	VacuumModifier float64 // Vacuuming time scale
	CashMultiplier float64 // Base cash reward scale
	Rarity         Rarity
	Description    string
}

// Modifier returns the car type's duration/chance modifier for an action.
func (ct *CarType) Modifier(a models.Action) float64 {
	switch a {
	case models.ActionSearch:
		return ct.SearchModifier
	case models.ActionClean:
		return ct.CleanModifier
	case models.ActionVacuum:
		return ct.VacuumModifier
	}
	return 1.0
}

// CarTypes is the static car catalog.
var CarTypes = []CarType{
	{
		Name: "Sedan", Sprite: "sedan", Width: 80, Height: 120,
		SearchModifier: 1.0, CleanModifier: 1.0, VacuumModifier: 1.0, CashMultiplier: 1.0,
		Rarity: RarityCommon, Description: "Standard family car",
	},
	{
		Name: "Compact", Sprite: "compact", Width: 70, Height: 110,
		SearchModifier: 0.8, CleanModifier: 0.8, VacuumModifier: 0.7, CashMultiplier: 0.8,
		Rarity: RarityCommon, Description: "Small and quick to service",
	},
	{
		Name: "Sports Car", Sprite: "sportscar", Width: 85, Height: 115,
		SearchModifier: 1.2, CleanModifier: 0.8, VacuumModifier: 0.9, CashMultiplier: 1.3,
		Rarity: RarityUncommon, Description: "Fast to clean, good loot potential",
	},
	{
		Name: "SUV", Sprite: "suv", Width: 90, Height: 130,
		SearchModifier: 1.1, CleanModifier: 1.2, VacuumModifier: 1.3, CashMultiplier: 1.2,
		Rarity: RarityUncommon, Description: "Large vehicle, takes longer to service",
	},
	{
		Name: "Pickup", Sprite: "pickup", Width: 85, Height: 125,
		SearchModifier: 1.0, CleanModifier: 1.1, VacuumModifier: 1.2, CashMultiplier: 1.1,
		Rarity: RarityUncommon, Description: "Work truck with decent rewards",
	},
	{
		Name: "Van", Sprite: "van", Width: 95, Height: 135,
		SearchModifier: 1.3, CleanModifier: 1.3, VacuumModifier: 1.5, CashMultiplier: 1.4,
		Rarity: RarityRare, Description: "Large van, high rewards but time-consuming",
	},
	{
		Name: "Luxury", Sprite: "luxury", Width: 85, Height: 120,
		SearchModifier: 1.4, CleanModifier: 1.0, VacuumModifier: 1.2, CashMultiplier: 1.6,
		Rarity: RarityRare, Description: "Luxury car with excellent loot potential",
	},
	{
		Name: "Junker", Sprite: "junker", Width: 80, Height: 120,
		SearchModifier: 0.9, CleanModifier: 1.4, VacuumModifier: 1.3, CashMultiplier: 0.9,
		Rarity: RarityRare, Description: "Old car, very dirty but quick to search",
	},
}

// CarRarityWeights returns the rarity weights used for car draws at the
// given level. Rare weight grows by 2 per level capped at +40; common
// shrinks by the same amount floored at 20; uncommon is fixed.
func CarRarityWeights(level int) map[Rarity]int {
	bonus := level * 2
	if bonus > 40 {
		bonus = 40
	}
	common := 60 - bonus
	if common < 20 {
		common = 20
	}
	return map[Rarity]int{
		RarityCommon:   common,
		RarityUncommon: 30,
		RarityRare:     10 + bonus,
	}
}

// RandomCarType draws a car type for the given level using rarity-weighted
// selection: each type is repeated in a flat pool per its rarity weight and
// one entry is picked uniformly.
func RandomCarType(rng *rand.Rand, level int) *CarType {
	weights := CarRarityWeights(level)

	pool := make([]*CarType, 0, len(CarTypes)*60)
	for i := range CarTypes {
		weight, ok := weights[CarTypes[i].Rarity]
		if !ok {
			weight = 10
		}
		for j := 0; j < weight; j++ {
			pool = append(pool, &CarTypes[i])
		}
	}

	return pool[rng.Intn(len(pool))]
}
