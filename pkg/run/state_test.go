package run

import (
	"math"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/grimeshine/pkg/catalog"
	"github.com/golangdaddy/grimeshine/pkg/models"
	"github.com/golangdaddy/grimeshine/pkg/save"
)

// testConfig disables random level events so car counts and stats stay
// deterministic.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.EventChance = 0
	return cfg
}

func newTestState(t *testing.T, seed int64) (*State, *ManualClock, *save.Store) {
	t.Helper()
	store, err := save.Open(filepath.Join(t.TempDir(), "save.db"), zerolog.Nop())
	require.NoError(t, err)

	clock := NewManualClock()
	st := NewState(testConfig(), store, nil, clock, rand.New(rand.NewSource(seed)), zerolog.Nop())
	return st, clock, store
}

// serviceNextCar teleports an unserviced car to the player, runs a clean or
// vacuum on it and drives the scheduler until it completes. Returns the car
// it serviced.
func serviceNextCar(t *testing.T, st *State, clock *ManualClock) *Car {
	t.Helper()

	var car *Car
	for _, c := range st.Cars() {
		if !c.Interacted {
			car = c
			break
		}
	}
	require.NotNil(t, car, "no unserviced car left")

	car.X, car.Y = st.PlayerPos()
	require.NoError(t, st.OpenNearestMenu())

	action := models.ActionVacuum
	if car.NeedsCleaning {
		action = models.ActionClean
	}
	require.NoError(t, st.ChooseAction(action))

	clock.Advance(30 * time.Second)
	st.Tick(0)
	require.True(t, car.Interacted)
	return car
}

// expectedServicePayout mirrors the deterministic clean/vacuum payout for a
// player without payout upgrades, so cash deltas can be asserted exactly.
func expectedServicePayout(car *Car) int {
	if car.NeedsCleaning {
		base := 10.0
		if car.Special == SpecialExtraDirty {
			base *= 1.5
		}
		return int(math.Round(base * car.Type.CleanModifier * car.Type.CashMultiplier))
	}
	base := 15.0
	if car.Special == SpecialComplexInterior {
		base *= 1.5
	}
	return int(math.Round(base * car.Type.VacuumModifier * car.Type.CashMultiplier))
}

// expireTimer runs whole-second ticks until the level timer resolves.
func expireTimer(t *testing.T, st *State) {
	t.Helper()
	for i := 0; i < 200 && st.Phase() == PhaseRunning; i++ {
		st.Tick(1)
	}
	require.NotEqual(t, PhaseRunning, st.Phase(), "timer never resolved")
}

func TestStartRun_InitialState(t *testing.T) {
	st, _, _ := newTestState(t, 1)

	st.StartRun()
	assert.Equal(t, PhaseRunning, st.Phase())
	assert.Equal(t, 1, st.Level())
	assert.Equal(t, 0, st.Cash())
	assert.Equal(t, 60, st.TimeLeft())
	assert.Len(t, st.Cars(), 7) // 5 base + 2 per level
	assert.Equal(t, 0, st.CarsServiced())
}

func TestStartRun_PermanentUpgradesApply(t *testing.T) {
	st, _, store := newTestState(t, 1)

	store.AddPermanentUpgrade("perm_starting_cash")
	store.AddPermanentUpgrade("perm_time_1")

	st.StartRun()
	assert.Equal(t, 50, st.Cash(), "Nest Egg starting cash")
	assert.Equal(t, 65, st.TimeLeft(), "Extra Time I adds 5 seconds")
}

func TestStartRun_CharacterAbilityDoesNotCompound(t *testing.T) {
	st, clock, store := newTestState(t, 2)

	store.UnlockCharacter("speedster")
	require.True(t, store.SelectCharacter("speedster"))

	st.StartRun()
	assert.InDelta(t, 0.8, st.Stats().CleanSpeedMultiplier, 1e-9)

	for i := 0; i < 7; i++ {
		serviceNextCar(t, st, clock)
	}
	require.Equal(t, PhaseUpgrade, st.Phase())
	require.NoError(t, st.Skip())

	// Level 2: the ability applied once at run start, not again
	assert.Equal(t, 2, st.Level())
	assert.InDelta(t, 0.8, st.Stats().CleanSpeedMultiplier, 1e-9)
}

func TestLevelAdvancesWhenAllCarsServiced(t *testing.T) {
	st, clock, _ := newTestState(t, 3)

	st.StartRun()
	for i := 0; i < 7; i++ {
		serviceNextCar(t, st, clock)
	}

	// The transition happens immediately, with time still on the clock
	assert.Equal(t, PhaseUpgrade, st.Phase())
	assert.Greater(t, st.TimeLeft(), 0)
	assert.Len(t, st.Offers(), 3)

	require.NoError(t, st.Skip())
	assert.Equal(t, 2, st.Level())
	assert.Equal(t, PhaseRunning, st.Phase())
	assert.Len(t, st.Cars(), 9)
}

func TestTimeoutBelowThresholdEndsRun(t *testing.T) {
	st, clock, store := newTestState(t, 4)

	st.StartRun()
	for i := 0; i < 3; i++ {
		serviceNextCar(t, st, clock)
	}
	expireTimer(t, st)

	// 3/7 is under the 50% threshold
	assert.Equal(t, PhaseGameOver, st.Phase())
	summary := st.FinalSummary()
	assert.Equal(t, 3, summary.CarsCompleted)
	assert.Equal(t, 7, summary.TotalCars)
	assert.Equal(t, 0, summary.TimeRemaining)

	// The result is persisted: stars credited, statistics updated
	_, stars := st.FinalScore()
	profile := store.Load()
	assert.Equal(t, stars, profile.MetaCurrency)
	assert.Equal(t, 1, profile.Statistics.TotalRuns)
	assert.Equal(t, 3, profile.Statistics.TotalCarsCompleted)
}

func TestTimeoutAtThresholdAdvances(t *testing.T) {
	st, clock, _ := newTestState(t, 5)

	st.StartRun()
	for i := 0; i < 4; i++ {
		serviceNextCar(t, st, clock)
	}
	expireTimer(t, st)

	// 4/7 clears the 50% threshold
	assert.Equal(t, PhaseUpgrade, st.Phase())
}

func TestOpenNearestMenu_RequiresProximity(t *testing.T) {
	st, _, _ := newTestState(t, 6)

	st.StartRun()
	// All cars sit in the two bay rows, far from the bottom spawn point
	assert.ErrorIs(t, st.OpenNearestMenu(), ErrNoCarInRange)
	assert.Nil(t, st.MenuCar())
}

func TestChooseAction_RejectsMismatchedAction(t *testing.T) {
	st, _, _ := newTestState(t, 7)

	st.StartRun()
	car := st.Cars()[0]
	car.X, car.Y = st.PlayerPos()
	require.NoError(t, st.OpenNearestMenu())

	if car.NeedsCleaning {
		assert.ErrorIs(t, st.ChooseAction(models.ActionVacuum), ErrWrongAction)
		assert.ErrorIs(t, st.ChooseAction(models.ActionSearch), ErrWrongAction)
	} else {
		assert.ErrorIs(t, st.ChooseAction(models.ActionClean), ErrWrongAction)
	}
}

func TestChooseAction_SingleActionAtATime(t *testing.T) {
	st, _, _ := newTestState(t, 8)

	st.StartRun()
	car := st.Cars()[0]
	car.X, car.Y = st.PlayerPos()
	require.NoError(t, st.OpenNearestMenu())

	action := models.ActionVacuum
	if car.NeedsCleaning {
		action = models.ActionClean
	}
	require.NoError(t, st.ChooseAction(action))

	active, frac := st.ActionProgress()
	assert.True(t, active)
	assert.Zero(t, frac)

	// While busy, no new menu and no second action
	assert.ErrorIs(t, st.OpenNearestMenu(), ErrActionInProgress)
}

func TestMove_ClampsAndIgnoresWhileBusy(t *testing.T) {
	st, _, _ := newTestState(t, 9)

	st.StartRun()
	cfg := st.Config()

	// Push hard into the top-left corner
	for i := 0; i < 100; i++ {
		st.Move(-1, -1, 1)
	}
	x, y := st.PlayerPos()
	assert.Equal(t, cfg.PlayerSize/2, x)
	assert.Equal(t, cfg.PlayerSize/2, y)

	// With the menu open, movement is ignored
	car := st.Cars()[0]
	car.X, car.Y = st.PlayerPos()
	require.NoError(t, st.OpenNearestMenu())
	st.Move(1, 1, 1)
	x2, y2 := st.PlayerPos()
	assert.Equal(t, x, x2)
	assert.Equal(t, y, y2)
}

func TestPendingActionCancelledWhenRunEnds(t *testing.T) {
	st, clock, _ := newTestState(t, 10)

	st.StartRun()
	car := st.Cars()[0]
	car.X, car.Y = st.PlayerPos()
	require.NoError(t, st.OpenNearestMenu())

	action := models.ActionVacuum
	if car.NeedsCleaning {
		action = models.ActionClean
	}
	require.NoError(t, st.ChooseAction(action))

	// Let the timer run out with zero cars serviced; the run ends and the
	// exit hook must drop the in-flight action
	expireTimer(t, st)
	require.Equal(t, PhaseGameOver, st.Phase())

	clock.Advance(time.Minute)
	st.Tick(0)
	assert.False(t, car.Interacted, "stale action completed after run end")
	assert.Equal(t, 0, st.Cash())
}

func TestUpgradePhase_PurchaseAndSkip(t *testing.T) {
	st, clock, _ := newTestState(t, 11)

	st.StartRun()
	assert.ErrorIs(t, st.Purchase(0), ErrWrongPhase)
	assert.ErrorIs(t, st.Skip(), ErrWrongPhase)

	for i := 0; i < 7; i++ {
		serviceNextCar(t, st, clock)
	}
	require.Equal(t, PhaseUpgrade, st.Phase())
	require.Len(t, st.Offers(), 3)

	cashBefore := st.Cash()
	purchased := false
	for i, offer := range st.Offers() {
		if offer.Cost > cashBefore {
			assert.ErrorIs(t, st.Purchase(i), ErrInsufficientCash)
			continue
		}
		require.NoError(t, st.Purchase(i))
		assert.Equal(t, cashBefore-offer.Cost, st.Cash())
		if !offer.IsBuff {
			assert.True(t, st.OwnsUpgrade(offer.Upgrade.ID))
		}
		purchased = true
		break
	}
	if !purchased {
		require.NoError(t, st.Skip())
	}

	assert.Equal(t, PhaseRunning, st.Phase())
	assert.Equal(t, 2, st.Level())
}

func TestUnlockCharacter_RequiresCash(t *testing.T) {
	st, clock, store := newTestState(t, 12)

	st.StartRun()
	for i := 0; i < 7; i++ {
		serviceNextCar(t, st, clock)
	}
	require.Equal(t, PhaseUpgrade, st.Phase())

	// Seven serviced cars cannot reach the cheapest unlock price
	assert.ErrorIs(t, st.UnlockCharacter("speedster"), ErrInsufficientCash)
	assert.False(t, store.Load().HasCharacter("speedster"))
	assert.Equal(t, PhaseUpgrade, st.Phase())
}

func TestTempBuffPersistsForRestOfRun(t *testing.T) {
	st, clock, _ := newTestState(t, 15)

	st.StartRun()
	for i := 0; i < 7; i++ {
		serviceNextCar(t, st, clock)
	}
	require.Equal(t, PhaseUpgrade, st.Phase())

	// Queue Stronger Cleaning Fluid directly; the offer roll is random
	st.queuedBuffs = append(st.queuedBuffs, catalog.TempBuffs[0])
	require.NoError(t, st.Skip())

	assert.Equal(t, 2, st.Level())
	assert.InDelta(t, 0.7, st.Stats().CleanSpeedMultiplier, 1e-9)

	// Once landed, the effect stays with the run stats on later levels
	for i := 0; i < 9; i++ {
		serviceNextCar(t, st, clock)
	}
	require.Equal(t, PhaseUpgrade, st.Phase())
	require.NoError(t, st.Skip())

	assert.Equal(t, 3, st.Level())
	assert.InDelta(t, 0.7, st.Stats().CleanSpeedMultiplier, 1e-9)
}

func TestVIPServiceCountsFromAcquisition(t *testing.T) {
	st, clock, _ := newTestState(t, 14)

	st.StartRun()
	for i := 0; i < 2; i++ {
		serviceNextCar(t, st, clock)
	}
	assert.Equal(t, 0, st.vipServiced, "counter idle without the upgrade")

	// Acquire VIP Service mid-level: the bonus pays on the 5th car from now
	st.stats.VIPService = true
	for i := 0; i < 4; i++ {
		serviceNextCar(t, st, clock)
	}
	assert.Equal(t, 4, st.vipServiced)

	before := st.Cash()
	car := serviceNextCar(t, st, clock)
	assert.Equal(t, before+expectedServicePayout(car)+120, st.Cash(),
		"fifth car since acquisition pays 100+20*level")
}

func TestRunSummaryReportsFinalLevel(t *testing.T) {
	st, clock, _ := newTestState(t, 16)

	st.StartRun()
	for i := 0; i < 7; i++ {
		serviceNextCar(t, st, clock)
	}
	require.Equal(t, PhaseUpgrade, st.Phase())
	require.NoError(t, st.Skip())

	// Fail level 2 outright: the summary scores that level, not the run
	expireTimer(t, st)
	require.Equal(t, PhaseGameOver, st.Phase())

	summary := st.FinalSummary()
	assert.Equal(t, 2, summary.Level)
	assert.Equal(t, 0, summary.CarsCompleted)
	assert.Equal(t, 9, summary.TotalCars)
	assert.Equal(t, st.Cash(), summary.Cash)
	assert.Equal(t, 0, summary.TimeRemaining)
}

type recordingFeedback struct {
	msg   string
	shown bool
}

func (r *recordingFeedback) ShowMessage(text string, _ Tone) {
	r.msg = text
	r.shown = true
}

func (r *recordingFeedback) HideMessage() { r.shown = false }

func TestFeedback_AutoHides(t *testing.T) {
	st, clock, _ := newTestState(t, 13)
	fb := &recordingFeedback{}
	st.SetFeedback(fb)

	st.StartRun()
	serviceNextCar(t, st, clock)

	assert.True(t, fb.shown)
	assert.NotEmpty(t, fb.msg)

	clock.Advance(2 * time.Second)
	st.Tick(0)
	assert.False(t, fb.shown)
}
