package run

import (
	"math/rand"

	"github.com/golangdaddy/grimeshine/pkg/catalog"
)

// Offer is one purchasable slot on the between-level screen: either a run
// upgrade or a temporary buff, priced by rarity.
type Offer struct {
	IsBuff  bool
	Upgrade *catalog.Upgrade
	Buff    *catalog.TempBuff
	Cost    int
}

// Name returns the display name of the offered item.
func (o Offer) Name() string {
	if o.IsBuff {
		return o.Buff.Name
	}
	return o.Upgrade.Name
}

// Description returns the display description of the offered item.
func (o Offer) Description() string {
	if o.IsBuff {
		return o.Buff.Description
	}
	return o.Upgrade.Description
}

// Rarity returns the rarity of the offered item.
func (o Offer) Rarity() catalog.Rarity {
	if o.IsBuff {
		return o.Buff.Rarity
	}
	return o.Upgrade.Rarity
}

// RollOffers draws count distinct offers from the merged upgrade and buff
// pool. Every eligible item repeats in a flat pool per its rarity's offer
// weight and each draw is one uniform pick, the same way car types are
// drawn; duplicate picks are rerolled. owned filters out upgrades the player
// already has so an offer can always be bought.
func RollOffers(rng *rand.Rand, count int, owned map[string]bool) []Offer {
	pool := offerPool(owned)
	if len(pool) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	offers := make([]Offer, 0, count)

	// A reroll cap keeps the loop bounded when the eligible pool holds
	// fewer distinct items than count.
	for attempts := 0; len(offers) < count && attempts < 100; attempts++ {
		offer := pool[rng.Intn(len(pool))]
		if seen[offer.Name()] {
			continue
		}
		seen[offer.Name()] = true
		offers = append(offers, offer)
	}

	return offers
}

// offerPool builds the flat weighted pool: each non-owned upgrade and each
// buff appears once per its rarity's offer weight.
func offerPool(owned map[string]bool) []Offer {
	var pool []Offer
	for i := range catalog.Upgrades {
		u := &catalog.Upgrades[i]
		if owned[u.ID] {
			continue
		}
		offer := Offer{Upgrade: u, Cost: catalog.UpgradeCost(u.Rarity)}
		for n := 0; n < catalog.OfferWeights[u.Rarity]; n++ {
			pool = append(pool, offer)
		}
	}
	for i := range catalog.TempBuffs {
		b := &catalog.TempBuffs[i]
		offer := Offer{IsBuff: true, Buff: b, Cost: catalog.BuffCost(b.Rarity)}
		for n := 0; n < catalog.OfferWeights[b.Rarity]; n++ {
			pool = append(pool, offer)
		}
	}
	return pool
}
