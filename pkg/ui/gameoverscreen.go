package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/grimeshine/pkg/run"
)

// GameOverScreen shows the final score breakdown and the stars earned.
type GameOverScreen struct {
	state  *run.State
	onBack func()
}

// NewGameOverScreen creates the run summary screen.
func NewGameOverScreen(state *run.State, onBack func()) *GameOverScreen {
	return &GameOverScreen{state: state, onBack: onBack}
}

// Update waits for a key to return to the title.
func (gs *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if gs.onBack != nil {
			gs.onBack()
		}
	}
	return nil
}

// Draw renders the summary.
func (gs *GameOverScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 15, 15, 255})

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := float64(w) / 2

	summary := gs.state.FinalSummary()
	score, stars := gs.state.FinalScore()

	drawTextCentered(screen, "RUN OVER", centerX, float64(h)/6, 4, color.RGBA{255, 80, 80, 255})

	lines := []struct {
		label string
		value string
	}{
		{"Level Reached", fmt.Sprintf("%d", summary.Level)},
		{"Cars Completed", fmt.Sprintf("%d / %d", summary.CarsCompleted, summary.TotalCars)},
		{"Cash", fmt.Sprintf("$%d", summary.Cash)},
		{"Time Remaining", fmt.Sprintf("%ds", summary.TimeRemaining)},
	}
	y := float64(h)/6 + 90
	for _, line := range lines {
		drawText(screen, line.label, centerX-220, y, 1.8, color.RGBA{200, 200, 200, 255})
		drawText(screen, line.value, centerX+120, y, 1.8, color.White)
		y += 40
	}

	drawTextCentered(screen, fmt.Sprintf("SCORE: %d", score), centerX, y+30, 3, color.White)
	drawTextCentered(screen, fmt.Sprintf("+%d stars", stars), centerX, y+85, 2.5, color.RGBA{255, 215, 0, 255})

	drawTextCentered(screen, "Press ENTER to continue", centerX, float64(h)-80, 1.8, color.RGBA{150, 200, 255, 255})
}
