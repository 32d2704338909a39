package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/grimeshine/pkg/save"
)

// TitleScreen is the main menu: start a run, open the character roster, the
// star shop or the rules.
type TitleScreen struct {
	store     *save.Store
	startTime time.Time

	onStart      func()
	onCharacters func()
	onShop       func()
	onRules      func()
}

// NewTitleScreen creates the title screen.
func NewTitleScreen(store *save.Store, onStart, onCharacters, onShop, onRules func()) *TitleScreen {
	return &TitleScreen{
		store:        store,
		startTime:    time.Now(),
		onStart:      onStart,
		onCharacters: onCharacters,
		onShop:       onShop,
		onRules:      onRules,
	}
}

// Update handles menu input.
func (ts *TitleScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if ts.onStart != nil {
			ts.onStart()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if ts.onCharacters != nil {
			ts.onCharacters()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if ts.onShop != nil {
			ts.onShop()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if ts.onRules != nil {
			ts.onRules()
		}
	}
	return nil
}

// Draw renders the title screen.
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 20, 35, 255})

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := float64(w) / 2
	elapsed := time.Since(ts.startTime).Seconds()

	// Pulsing title
	pulse := 1.0 + 0.1*math.Sin(elapsed*2)
	brightness := 0.8 + 0.2*math.Abs(math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	drawTextCentered(screen, "GRIME & SHINE", centerX, float64(h)/4, 6*pulse, titleColor)
	drawTextCentered(screen, "Parking Lot Hustle", centerX, float64(h)/4+80, 2, color.RGBA{180, 180, 200, 255})

	profile := ts.store.Load()
	drawTextCentered(screen, fmt.Sprintf("Stars: %d", profile.MetaCurrency), centerX, float64(h)/2-20, 2, color.RGBA{255, 215, 0, 255})
	if profile.Statistics.BestScore > 0 {
		drawTextCentered(screen, fmt.Sprintf("Best Score: %d  (Level %d)", profile.Statistics.BestScore, profile.Statistics.HighestLevel),
			centerX, float64(h)/2+10, 1.5, color.RGBA{200, 200, 200, 255})
	}

	menuY := float64(h)/2 + 70
	lines := []string{
		"ENTER - Start Run",
		"C - Characters",
		"S - Star Shop",
		"R - How to Play",
	}
	for i, line := range lines {
		drawTextCentered(screen, line, centerX, menuY+float64(i)*30, 1.5, color.RGBA{150, 200, 255, 255})
	}

	// Blinking prompt
	if int(elapsed*2)%2 == 0 {
		drawTextCentered(screen, "Press ENTER to Start", centerX, float64(h)-80, 2, color.RGBA{255, 255, 255, 255})
	}
}
