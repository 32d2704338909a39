package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RulesScreen explains the controls and the run loop.
type RulesScreen struct {
	onBack func()
}

// NewRulesScreen creates the rules screen.
func NewRulesScreen(onBack func()) *RulesScreen {
	return &RulesScreen{onBack: onBack}
}

// Update waits for the back key.
func (rs *RulesScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if rs.onBack != nil {
			rs.onBack()
		}
	}
	return nil
}

// Draw renders the rules text.
func (rs *RulesScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})

	w := screen.Bounds().Dx()
	centerX := float64(w) / 2

	drawTextCentered(screen, "HOW TO PLAY", centerX, 40, 3, color.White)

	lines := []string{
		"Clean, vacuum and search cars before the timer runs out.",
		"",
		"WASD / Arrows - Move",
		"E or SPACE    - Interact with the nearest car",
		"1 / 2 / 3     - Choose an action in the menu",
		"ESC           - Close the menu",
		"",
		"Dirty cars need cleaning; the rest can be vacuumed or searched.",
		"Searching can find loot, but may trip the alarm and cost time.",
		"Watch for special cars: extra dirty, hidden compartments,",
		"VIP owners and suspicious vehicles all change the odds.",
		"",
		"Finish at least half the cars to reach the upgrade shop and",
		"keep the run going. Levels get shorter and busier as you climb.",
		"",
		"When the run ends, your score converts to stars. Spend them on",
		"permanent upgrades and new characters.",
	}
	y := 100.0
	for _, line := range lines {
		drawTextCentered(screen, line, centerX, y, 1.5, color.RGBA{210, 210, 220, 255})
		y += 26
	}

	drawTextCentered(screen, "ESC or ENTER to return", centerX, y+30, 1.5, color.RGBA{150, 200, 255, 255})
}
