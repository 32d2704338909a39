package run

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/golangdaddy/grimeshine/pkg/catalog"
	"github.com/golangdaddy/grimeshine/pkg/models"
	"github.com/golangdaddy/grimeshine/pkg/save"
)

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseIdle     Phase = iota // No run active
	PhaseRunning               // Level in progress, timer counting down
	PhaseUpgrade               // Between levels, offers on screen
	PhaseGameOver              // Run finished, summary available
)

// Tone hints how a feedback message should be presented.
type Tone int

const (
	ToneInfo Tone = iota
	ToneGood
	ToneBad
)

// Feedback receives transient player-facing messages. The engine schedules
// the auto-hide itself so a level transition also clears stale messages.
type Feedback interface {
	ShowMessage(text string, tone Tone)
	HideMessage()
}

// NopFeedback discards all messages. Used in tests.
type NopFeedback struct{}

func (NopFeedback) ShowMessage(string, Tone) {}
func (NopFeedback) HideMessage()             {}

var (
	ErrCarBusy          = errors.New("car already serviced")
	ErrActionInProgress = errors.New("an action is already in progress")
	ErrInsufficientCash = errors.New("not enough cash")
	ErrWrongPhase       = errors.New("operation not valid in this phase")
	ErrNoCarInRange     = errors.New("no car in range")
	ErrWrongAction      = errors.New("car does not accept that action")
	ErrAlreadyUnlocked  = errors.New("character already unlocked")
)

// feedbackDuration is how long a transient message stays on screen.
const feedbackDuration = 1500 * time.Millisecond

// State is the run engine. It owns every piece of mutable run state, the
// scheduler for delayed work, and the single RNG, and is driven by the game
// loop through Tick plus the player-input methods. Single-threaded.
type State struct {
	cfg      Config
	rng      *rand.Rand
	log      zerolog.Logger
	store    *save.Store
	clock    Clock
	sched    *Scheduler
	feedback Feedback
	spawner  *Spawner
	resolver *Resolver
	alloc    *SpotAllocator

	phase Phase
	level int
	cash  int

	// stats persists for the whole run: permanent upgrades and the selected
	// character's ability land once at run start, then level events, queued
	// buffs and purchased upgrades fold in as the run progresses. Rebuilt
	// from scratch only by StartRun.
	stats models.PlayerStats

	ownedUpgrades map[string]bool
	queuedBuffs   []catalog.TempBuff
	event         *catalog.LevelEvent

	cars             []*Car
	totalCarsLevel   int
	playerX, playerY float64
	timeLeft         int
	tickAccum        float64

	// Run-lifetime totals for the persisted statistics
	carsCompletedRun int
	cashEarnedRun    int

	// Cars finished since VIP Service was acquired
	vipServiced int

	menuCar *Car

	busyCar      *Car
	busyAction   models.Action
	busyHandle   int
	busyStarted  time.Time
	busyDuration time.Duration

	feedbackHide int

	offers []Offer

	summary    Summary
	finalScore int
	finalStars int
}

// NewState wires a run engine. The clock and rng are injected so tests can
// drive time and randomness deterministically.
func NewState(cfg Config, store *save.Store, feedback Feedback, clock Clock, rng *rand.Rand, log zerolog.Logger) *State {
	if feedback == nil {
		feedback = NopFeedback{}
	}
	sched := NewScheduler(clock)
	return &State{
		cfg:      cfg,
		rng:      rng,
		log:      log,
		store:    store,
		clock:    clock,
		sched:    sched,
		feedback: feedback,
		spawner:  NewSpawner(cfg, rng, log),
		resolver: NewResolver(rng, log),
		alloc:    NewSpotAllocator(),
		phase:    PhaseIdle,
	}
}

// SetFeedback swaps the feedback sink. The presentation layer needs the
// engine to exist before it can construct the screen that displays messages,
// so it wires itself in afterwards.
func (s *State) SetFeedback(f Feedback) {
	if f == nil {
		f = NopFeedback{}
	}
	s.feedback = f
}

// StartRun begins a fresh run: stats are rebuilt from scratch, permanent
// upgrades and the selected character's ability are applied exactly once,
// and level 1 starts. Character abilities never reapply at level
// transitions, so multiplier abilities cannot compound over a run.
func (s *State) StartRun() {
	profile := s.store.Load()

	s.stats = *models.NewPlayerStats()
	s.cash = 0
	s.level = 1
	s.carsCompletedRun = 0
	s.cashEarnedRun = 0
	s.vipServiced = 0
	s.ownedUpgrades = make(map[string]bool)
	s.queuedBuffs = nil

	for _, id := range profile.PermanentUpgrades {
		for _, effect := range catalog.PermanentEffects(id) {
			if catalog.Apply(effect, &s.stats) {
				continue
			}
			if effect.Kind == catalog.EffectStartingCash {
				s.cash += int(effect.Value)
			}
		}
	}

	for _, effect := range catalog.AbilityEffects(profile.SelectedCharacter) {
		catalog.Apply(effect, &s.stats)
	}

	s.log.Info().
		Str("character", profile.SelectedCharacter).
		Int("starting_cash", s.cash).
		Msg("run started")

	s.startLevel()
}

// startLevel sets up the current level: the exit hook clears everything
// pending, an event may roll, queued buffs land on the run stats, and cars
// are spawned. Event and buff effects stay with the stats for the rest of
// the run.
func (s *State) startLevel() {
	s.onExit()

	s.event = nil

	extraCars := 0
	if s.rng.Float64() < s.cfg.EventChance {
		s.event = catalog.RandomLevelEvent(s.rng)
		if !catalog.Apply(s.event.Effect, &s.stats) && s.event.Effect.Kind == catalog.EffectExtraCars {
			extraCars = int(s.event.Effect.Value)
		}
		s.log.Info().Str("event", s.event.Name).Int("level", s.level).Msg("level event rolled")
	}

	for _, buff := range s.queuedBuffs {
		catalog.Apply(buff.Effect, &s.stats)
	}
	s.queuedBuffs = nil

	s.alloc.Reset()
	s.cars = s.spawner.SpawnLevel(s.level, extraCars, s.alloc)
	s.totalCarsLevel = len(s.cars)

	s.timeLeft = s.cfg.LevelTime(s.level, s.stats.TimeBonus)
	s.tickAccum = 0
	s.playerX = s.cfg.CanvasWidth / 2
	s.playerY = s.cfg.CanvasHeight - s.cfg.PlayerSize

	s.phase = PhaseRunning

	if s.event != nil {
		s.showFeedback(s.event.Description, ToneInfo)
	}
}

// Tick advances the engine by dt seconds of game time: due callbacks fire,
// then the level countdown runs. When the timer expires, the level either
// advances (enough cars serviced) or the run ends.
func (s *State) Tick(dt float64) {
	s.sched.Fire()

	if s.phase != PhaseRunning {
		return
	}

	s.tickAccum += dt
	for s.tickAccum >= 1 && s.phase == PhaseRunning {
		s.tickAccum--
		s.timeLeft--
		if s.timeLeft <= 0 {
			s.timeLeft = 0
			s.onTimeUp()
		}
	}
}

// onTimeUp resolves a timer expiry: at or above the completion threshold the
// run continues to the upgrade screen, otherwise it ends. A level with no
// cars counts as zero percent complete.
func (s *State) onTimeUp() {
	fraction := 0.0
	if s.totalCarsLevel > 0 {
		fraction = float64(s.interactedCount()) / float64(s.totalCarsLevel)
	}
	if fraction >= s.cfg.CompleteThreshold {
		s.enterUpgrade()
	} else {
		s.endRun()
	}
}

// Move shifts the player by a direction vector scaled to speed and dt, then
// clamps to the canvas. Input is ignored while a menu is open or an action
// is running.
func (s *State) Move(dx, dy, dt float64) {
	if s.phase != PhaseRunning || s.menuCar != nil || s.busyCar != nil {
		return
	}

	speed := s.cfg.PlayerSpeed * s.stats.MoveSpeedMultiplier
	s.playerX += dx * speed * dt
	s.playerY += dy * speed * dt

	half := s.cfg.PlayerSize / 2
	s.playerX = clamp(s.playerX, half, s.cfg.CanvasWidth-half)
	s.playerY = clamp(s.playerY, half, s.cfg.CanvasHeight-half)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// OpenNearestMenu opens the interaction menu on the closest unserviced car
// within interaction range.
func (s *State) OpenNearestMenu() error {
	if s.phase != PhaseRunning {
		return ErrWrongPhase
	}
	if s.busyCar != nil {
		return ErrActionInProgress
	}

	var nearest *Car
	best := s.cfg.InteractionRange
	for _, car := range s.cars {
		if car.Interacted {
			continue
		}
		d := math.Hypot(car.X-s.playerX, car.Y-s.playerY)
		if d <= best {
			best = d
			nearest = car
		}
	}
	if nearest == nil {
		return ErrNoCarInRange
	}
	s.menuCar = nearest
	return nil
}

// CloseMenu dismisses the interaction menu.
func (s *State) CloseMenu() {
	s.menuCar = nil
}

// ChooseAction starts the chosen action on the menu's car. The action runs
// for its computed duration on the scheduler; its effects apply only when
// the completion callback fires.
func (s *State) ChooseAction(action models.Action) error {
	if s.phase != PhaseRunning || s.menuCar == nil {
		return ErrWrongPhase
	}
	if s.busyCar != nil {
		return ErrActionInProgress
	}

	car := s.menuCar
	if car.Interacted {
		s.menuCar = nil
		return ErrCarBusy
	}

	// The menu only offers actions matching the car's service state
	switch action {
	case models.ActionClean:
		if !car.NeedsCleaning {
			return ErrWrongAction
		}
	case models.ActionVacuum, models.ActionSearch:
		if !car.NeedsVacuumOrSearch {
			return ErrWrongAction
		}
	default:
		return ErrWrongAction
	}

	s.menuCar = nil
	s.busyCar = car
	s.busyAction = action
	s.busyStarted = s.clock.Now()
	s.busyDuration = time.Duration(s.resolver.Duration(action, car, &s.stats) * float64(time.Second))
	s.busyHandle = s.sched.After(s.busyDuration, func() {
		s.completeAction(car, action)
	})

	s.log.Debug().
		Str("action", action.String()).
		Int("spot", car.SpotID).
		Dur("duration", s.busyDuration).
		Msg("action started")
	return nil
}

// ActionProgress reports whether an action is running and how far along it
// is, for the progress bar.
func (s *State) ActionProgress() (bool, float64) {
	if s.busyCar == nil {
		return false, 0
	}
	if s.busyDuration <= 0 {
		return true, 1
	}
	frac := float64(s.clock.Now().Sub(s.busyStarted)) / float64(s.busyDuration)
	return true, clamp(frac, 0, 1)
}

// completeAction applies a finished action. All state mutation happens
// before the level-completion check so the check always sees the final car
// and cash state.
func (s *State) completeAction(car *Car, action models.Action) {
	s.busyCar = nil
	s.busyHandle = 0

	outcome := s.resolver.Resolve(action, car, &s.stats)

	car.Interacted = true
	s.carsCompletedRun++
	if s.stats.VIPService {
		s.vipServiced++
	}

	s.addCash(outcome.Cash)
	if outcome.TimePenalty > 0 {
		s.timeLeft -= outcome.TimePenalty
		if s.timeLeft < 0 {
			s.timeLeft = 0
		}
	}

	tone := ToneGood
	if outcome.Kind == OutcomeAlarm {
		tone = ToneBad
	}
	s.showFeedback(outcome.Message, tone)

	awards := append(outcome.Awards, s.resolver.CompletionBonuses(&s.stats, s.level, s.vipServiced)...)
	for _, award := range awards {
		s.addCash(award.Cash)
		s.log.Debug().Str("source", award.Source).Int("cash", award.Cash).Msg("bonus awarded")
	}

	// An alarm can drain the timer below the completion threshold; the
	// next Tick resolves that. Finishing every car advances immediately.
	if s.interactedCount() == s.totalCarsLevel {
		s.enterUpgrade()
	}
}

func (s *State) addCash(amount int) {
	s.cash += amount
	if amount > 0 {
		s.cashEarnedRun += amount
	}
}

func (s *State) interactedCount() int {
	n := 0
	for _, car := range s.cars {
		if car.Interacted {
			n++
		}
	}
	return n
}

// enterUpgrade moves to the between-level offer screen.
func (s *State) enterUpgrade() {
	s.onExit()
	s.offers = RollOffers(s.rng, 3, s.ownedUpgrades)
	s.phase = PhaseUpgrade
	s.log.Info().Int("level", s.level).Int("cash", s.cash).Msg("level complete")
}

// Purchase buys offer i and advances to the next level. Upgrades apply to
// the run stats immediately; buffs queue and land at the next level start.
func (s *State) Purchase(i int) error {
	if s.phase != PhaseUpgrade {
		return ErrWrongPhase
	}
	if i < 0 || i >= len(s.offers) {
		return ErrWrongPhase
	}

	offer := s.offers[i]
	if s.cash < offer.Cost {
		return ErrInsufficientCash
	}
	s.cash -= offer.Cost

	if offer.IsBuff {
		s.queuedBuffs = append(s.queuedBuffs, *offer.Buff)
	} else {
		s.ownedUpgrades[offer.Upgrade.ID] = true
		catalog.Apply(offer.Upgrade.Effect, &s.stats)
	}

	s.level++
	s.startLevel()
	return nil
}

// Skip declines every offer and advances to the next level.
func (s *State) Skip() error {
	if s.phase != PhaseUpgrade {
		return ErrWrongPhase
	}
	s.level++
	s.startLevel()
	return nil
}

// UnlockCharacter spends run cash on a locked character from the upgrade
// screen. The unlock persists, and the run drops back to level 1 with the
// remaining cash kept.
func (s *State) UnlockCharacter(id string) error {
	if s.phase != PhaseUpgrade {
		return ErrWrongPhase
	}
	char := catalog.FindCharacter(id)
	if char == nil {
		return ErrWrongPhase
	}
	if s.cash < char.Cost {
		return ErrInsufficientCash
	}
	if !s.store.UnlockCharacter(id) {
		return ErrAlreadyUnlocked
	}
	s.cash -= char.Cost
	s.showFeedback("Unlocked "+char.Name+"!", ToneGood)
	s.log.Info().Str("character", id).Msg("character unlocked mid-run")

	s.level = 1
	s.startLevel()
	return nil
}

// endRun finalizes the run: the scored summary is the level that ended it,
// with the cash balance as it stands. The result is persisted before the
// game-over phase is entered; lifetime statistics keep the run-wide totals.
func (s *State) endRun() {
	s.onExit()

	s.summary = Summary{
		Level:         s.level,
		CarsCompleted: s.interactedCount(),
		TotalCars:     s.totalCarsLevel,
		Cash:          s.cash,
		TimeRemaining: s.timeLeft,
	}
	s.finalScore = Score(s.summary)
	s.finalStars = Stars(s.finalScore, s.level)

	s.store.RecordRun(save.RunResult{
		Level:         s.level,
		CarsCompleted: s.carsCompletedRun,
		CashEarned:    s.cashEarnedRun,
		Score:         s.finalScore,
	})
	s.store.AddStars(s.finalStars)

	s.phase = PhaseGameOver
	s.log.Info().
		Int("score", s.finalScore).
		Int("stars", s.finalStars).
		Int("level", s.level).
		Msg("run over")
}

// onExit is the mandatory transition hook: every pending callback is
// cancelled and transient interaction state is cleared, so nothing scheduled
// in one phase can fire into the next.
func (s *State) onExit() {
	s.sched.CancelAll()
	s.busyCar = nil
	s.busyHandle = 0
	s.menuCar = nil
	s.feedbackHide = 0
	s.feedback.HideMessage()
}

// showFeedback displays a transient message and schedules its auto-hide,
// replacing any earlier hide so messages do not cut each other short.
func (s *State) showFeedback(text string, tone Tone) {
	s.feedback.ShowMessage(text, tone)
	if s.feedbackHide != 0 {
		s.sched.Cancel(s.feedbackHide)
	}
	s.feedbackHide = s.sched.After(feedbackDuration, func() {
		s.feedbackHide = 0
		s.feedback.HideMessage()
	})
}

// Accessors for the UI layer.

func (s *State) Phase() Phase { return s.phase }
func (s *State) Level() int { return s.level }
func (s *State) Cash() int { return s.cash }
func (s *State) TimeLeft() int { return s.timeLeft }
func (s *State) Cars() []*Car { return s.cars }
func (s *State) Spots() []Spot { return s.alloc.All() }
func (s *State) PlayerPos() (float64, float64) { return s.playerX, s.playerY }
func (s *State) Stats() *models.PlayerStats { return &s.stats }
func (s *State) Event() *catalog.LevelEvent { return s.event }
func (s *State) MenuCar() *Car { return s.menuCar }
func (s *State) Offers() []Offer { return s.offers }
func (s *State) CarsServiced() int { return s.interactedCount() }
func (s *State) TotalCars() int { return s.totalCarsLevel }
func (s *State) FinalSummary() Summary { return s.summary }
func (s *State) FinalScore() (int, int) { return s.finalScore, s.finalStars }
func (s *State) Config() Config { return s.cfg }
func (s *State) OwnsUpgrade(id string) bool { return s.ownedUpgrades[id] }
