package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/grimeshine/pkg/config"
	"github.com/golangdaddy/grimeshine/pkg/run"
	"github.com/golangdaddy/grimeshine/pkg/save"
	"github.com/golangdaddy/grimeshine/pkg/ui"
)

// GameState represents the current screen of the game
type GameState int

const (
	StateTitle GameState = iota
	StateRules
	StateCharacters
	StateShop
	StateInRun
	StateUpgrade
	StateGameOver
)

// Game implements ebiten.Game interface.
type Game struct {
	state GameState
	log   zerolog.Logger

	store    *save.Store
	runState *run.State

	titleScreen     *ui.TitleScreen
	rulesScreen     *ui.RulesScreen
	characterScreen *ui.CharacterScreen
	shopScreen      *ui.ShopScreen
	lotScreen       *ui.LotScreen
	upgradeScreen   *ui.UpgradeScreen
	gameOverScreen  *ui.GameOverScreen
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	switch g.state {
	case StateTitle:
		return g.titleScreen.Update()
	case StateRules:
		return g.rulesScreen.Update()
	case StateCharacters:
		return g.characterScreen.Update()
	case StateShop:
		return g.shopScreen.Update()
	case StateInRun:
		if err := g.lotScreen.Update(); err != nil {
			return err
		}
		g.followRunPhase()
	case StateUpgrade:
		if err := g.upgradeScreen.Update(); err != nil {
			return err
		}
		g.followRunPhase()
	case StateGameOver:
		return g.gameOverScreen.Update()
	}
	return nil
}

// followRunPhase keeps the active screen in sync with the run engine's
// lifecycle phase.
func (g *Game) followRunPhase() {
	switch g.runState.Phase() {
	case run.PhaseRunning:
		g.state = StateInRun
	case run.PhaseUpgrade:
		g.state = StateUpgrade
	case run.PhaseGameOver:
		g.state = StateGameOver
	}
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case StateTitle:
		g.titleScreen.Draw(screen)
	case StateRules:
		g.rulesScreen.Draw(screen)
	case StateCharacters:
		g.characterScreen.Draw(screen)
	case StateShop:
		g.shopScreen.Draw(screen)
	case StateInRun:
		g.lotScreen.Draw(screen)
	case StateUpgrade:
		g.upgradeScreen.Draw(screen)
	case StateGameOver:
		g.gameOverScreen.Draw(screen)
	}
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	cfg := g.runState.Config()
	return int(cfg.CanvasWidth), int(cfg.CanvasHeight)
}

// startRun begins a fresh run and switches to the lot.
func (g *Game) startRun() {
	g.runState.StartRun()
	g.state = StateInRun
}

// backToTitle returns to the main menu.
func (g *Game) backToTitle() {
	g.state = StateTitle
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if err := config.Load("."); err != nil {
		log.Fatal().Err(err).Msg("failed to read config")
	}
	if level, err := zerolog.ParseLevel(config.LogLevel()); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	store, err := save.Open(config.SavePath(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open save database")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	cfg := config.Game()

	game := &Game{state: StateTitle, log: log, store: store}
	game.runState = run.NewState(cfg, store, nil, run.SystemClock{}, rng, log)

	game.lotScreen = ui.NewLotScreen(game.runState)
	game.runState.SetFeedback(game.lotScreen)

	game.titleScreen = ui.NewTitleScreen(store,
		game.startRun,
		func() { game.state = StateCharacters },
		func() { game.state = StateShop },
		func() { game.state = StateRules },
	)
	game.rulesScreen = ui.NewRulesScreen(game.backToTitle)
	game.characterScreen = ui.NewCharacterScreen(store, game.backToTitle)
	game.shopScreen = ui.NewShopScreen(store, game.backToTitle)
	game.upgradeScreen = ui.NewUpgradeScreen(game.runState, store)
	game.gameOverScreen = ui.NewGameOverScreen(game.runState, game.backToTitle)

	ebiten.SetWindowSize(int(cfg.CanvasWidth), int(cfg.CanvasHeight))
	ebiten.SetWindowTitle("Grime & Shine")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game loop exited")
	}
}
