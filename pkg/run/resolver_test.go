package run

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/grimeshine/pkg/catalog"
	"github.com/golangdaddy/grimeshine/pkg/models"
)

func newTestResolver(seed int64) *Resolver {
	return NewResolver(rand.New(rand.NewSource(seed)), zerolog.Nop())
}

func sedan() *catalog.CarType {
	for i := range catalog.CarTypes {
		if catalog.CarTypes[i].Name == "Sedan" {
			return &catalog.CarTypes[i]
		}
	}
	panic("sedan missing from catalog")
}

func TestSearchChances_Base(t *testing.T) {
	car := &Car{Type: sedan()}
	loot, alarm := SearchChances(car)
	assert.InDelta(t, 0.3, loot, 1e-9)
	assert.InDelta(t, 0.2, alarm, 1e-9)
}

func TestSearchChances_Specials(t *testing.T) {
	base := sedan()

	loot, alarm := SearchChances(&Car{Type: base, Special: SpecialHiddenCompartment})
	assert.InDelta(t, 0.45, loot, 1e-9)
	assert.InDelta(t, 0.2, alarm, 1e-9)

	loot, alarm = SearchChances(&Car{Type: base, Special: SpecialVIPOwner})
	assert.InDelta(t, 0.39, loot, 1e-9)
	assert.Zero(t, alarm, "VIP owners never trip the alarm")

	loot, alarm = SearchChances(&Car{Type: base, Special: SpecialSuspicious})
	assert.InDelta(t, 0.42, loot, 1e-9)
	assert.InDelta(t, 0.3, alarm, 1e-9)
}

func TestSearchChances_Capped(t *testing.T) {
	// A hypothetical very searchable car pushes both chances past their caps
	hot := &catalog.CarType{Name: "test", SearchModifier: 5, CleanModifier: 1, VacuumModifier: 1, CashMultiplier: 1}
	loot, alarm := SearchChances(&Car{Type: hot})
	assert.InDelta(t, 0.9, loot, 1e-9)
	assert.InDelta(t, 0.7, alarm, 1e-9)
}

func TestResolveSearch_OutcomesExclusive(t *testing.T) {
	r := newTestResolver(11)
	stats := models.NewPlayerStats()

	counts := map[OutcomeKind]int{}
	for i := 0; i < 2000; i++ {
		car := &Car{Type: sedan(), NeedsVacuumOrSearch: true}
		out := r.Resolve(models.ActionSearch, car, stats)

		switch out.Kind {
		case OutcomeLoot:
			assert.Greater(t, out.Cash, 0)
			assert.Zero(t, out.TimePenalty)
		case OutcomeAlarm:
			assert.Zero(t, out.Cash)
			assert.Greater(t, out.TimePenalty, 0)
		case OutcomeNeutral:
			assert.Equal(t, 5, out.Cash, "sedan consolation payout")
			assert.Zero(t, out.TimePenalty)
		default:
			t.Fatalf("search produced %v", out.Kind)
		}
		counts[out.Kind]++
	}

	// All three outcomes occur at sedan odds (30/20/50)
	assert.Greater(t, counts[OutcomeLoot], 0)
	assert.Greater(t, counts[OutcomeAlarm], 0)
	assert.Greater(t, counts[OutcomeNeutral], counts[OutcomeAlarm])
}

func TestResolveSearch_VIPNeverAlarms(t *testing.T) {
	r := newTestResolver(12)
	stats := models.NewPlayerStats()

	for i := 0; i < 1000; i++ {
		car := &Car{Type: sedan(), Special: SpecialVIPOwner, NeedsVacuumOrSearch: true}
		out := r.Resolve(models.ActionSearch, car, stats)
		assert.NotEqual(t, OutcomeAlarm, out.Kind)
	}
}

func TestResolveSearch_PhantomHandsZeroesAlarm(t *testing.T) {
	r := newTestResolver(13)
	stats := models.NewPlayerStats()
	stats.SearchAlarmModifier = 0

	// The alarm can still trip, but with the modifier at zero the time
	// penalty always rounds to nothing.
	for i := 0; i < 500; i++ {
		car := &Car{Type: sedan(), NeedsVacuumOrSearch: true}
		out := r.Resolve(models.ActionSearch, car, stats)
		assert.Zero(t, out.TimePenalty)
	}
}

func TestResolveClean_ExtraDirtyBonus(t *testing.T) {
	r := newTestResolver(14)
	stats := models.NewPlayerStats()

	// Plain sedan clean pays round(10 * 1.0 * 1.0) = 10
	out := r.Resolve(models.ActionClean, &Car{Type: sedan(), NeedsCleaning: true}, stats)
	assert.Equal(t, OutcomeCleaned, out.Kind)
	assert.Equal(t, 10, out.Cash)

	// Extra Dirty multiplies the base by 1.5
	out = r.Resolve(models.ActionClean, &Car{Type: sedan(), NeedsCleaning: true, Special: SpecialExtraDirty}, stats)
	assert.Equal(t, 15, out.Cash)

	// Rubber Gloves add dirtyBonus*0.5 on top
	stats.DirtyCarBonus = 0.2
	out = r.Resolve(models.ActionClean, &Car{Type: sedan(), NeedsCleaning: true, Special: SpecialExtraDirty}, stats)
	assert.Equal(t, 17, out.Cash) // round(10 * 1.5 * 1.1)
}

func TestResolveClean_SteamCleanerAward(t *testing.T) {
	r := newTestResolver(15)
	stats := models.NewPlayerStats()
	stats.SteamCleaner = true

	out := r.Resolve(models.ActionClean, &Car{Type: sedan(), NeedsCleaning: true}, stats)
	assert.Empty(t, out.Awards, "no vacuum state to steam")

	out = r.Resolve(models.ActionClean, &Car{Type: sedan(), NeedsVacuumOrSearch: true}, stats)
	require.Len(t, out.Awards, 1)
	assert.Equal(t, 15, out.Awards[0].Cash)
}

func TestResolveVacuum_Payouts(t *testing.T) {
	r := newTestResolver(16)
	stats := models.NewPlayerStats()

	out := r.Resolve(models.ActionVacuum, &Car{Type: sedan(), NeedsVacuumOrSearch: true}, stats)
	assert.Equal(t, OutcomeVacuumed, out.Kind)
	assert.Equal(t, 15, out.Cash)

	out = r.Resolve(models.ActionVacuum, &Car{Type: sedan(), NeedsVacuumOrSearch: true, Special: SpecialComplexInterior}, stats)
	assert.Equal(t, 23, out.Cash) // round(15 * 1.5)
}

func TestResolveVacuum_MagneticVacuumAward(t *testing.T) {
	r := newTestResolver(17)
	stats := models.NewPlayerStats()
	stats.MagneticVacuum = true

	out := r.Resolve(models.ActionVacuum, &Car{Type: sedan(), NeedsVacuumOrSearch: true}, stats)
	require.Len(t, out.Awards, 1)
	assert.GreaterOrEqual(t, out.Awards[0].Cash, 5)
	assert.LessOrEqual(t, out.Awards[0].Cash, 14)
}

func TestDuration_SearchScalesWithLootMultiplier(t *testing.T) {
	r := newTestResolver(18)
	stats := models.NewPlayerStats()
	car := &Car{Type: sedan()}

	assert.InDelta(t, 5.0, r.Duration(models.ActionSearch, car, stats), 1e-9)

	// Loot upgrades also lengthen the search
	stats.SearchLootMultiplier = 2
	assert.InDelta(t, 10.0, r.Duration(models.ActionSearch, car, stats), 1e-9)
}

func TestDuration_SpecialPenalties(t *testing.T) {
	r := newTestResolver(19)
	stats := models.NewPlayerStats()

	clean := r.Duration(models.ActionClean, &Car{Type: sedan(), Special: SpecialExtraDirty}, stats)
	assert.InDelta(t, 7.5, clean, 1e-9)

	vacuum := r.Duration(models.ActionVacuum, &Car{Type: sedan(), Special: SpecialComplexInterior}, stats)
	assert.InDelta(t, 7.5, vacuum, 1e-9)

	// The penalty only applies to the matching action
	cleanComplex := r.Duration(models.ActionClean, &Car{Type: sedan(), Special: SpecialComplexInterior}, stats)
	assert.InDelta(t, 5.0, cleanComplex, 1e-9)
}

func TestCompletionBonuses_Tips(t *testing.T) {
	r := newTestResolver(20)
	stats := models.NewPlayerStats()
	stats.TipChance = 1.0
	stats.LargeTipChance = 1.0

	awards := r.CompletionBonuses(stats, 1, 1)
	require.Len(t, awards, 2)
	assert.GreaterOrEqual(t, awards[0].Cash, 5)
	assert.LessOrEqual(t, awards[0].Cash, 14)
	assert.GreaterOrEqual(t, awards[1].Cash, 20)
	assert.LessOrEqual(t, awards[1].Cash, 49)
}

func TestCompletionBonuses_VIPEveryFifthCar(t *testing.T) {
	r := newTestResolver(21)
	stats := models.NewPlayerStats()
	stats.VIPService = true

	assert.Empty(t, r.CompletionBonuses(stats, 3, 4))

	awards := r.CompletionBonuses(stats, 3, 5)
	require.Len(t, awards, 1)
	assert.Equal(t, 160, awards[0].Cash) // 100 + 3*20
}
