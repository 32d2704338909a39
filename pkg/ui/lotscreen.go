package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/grimeshine/pkg/models"
	"github.com/golangdaddy/grimeshine/pkg/run"
)

const tickSeconds = 1.0 / 60.0

// LotScreen renders the parking lot and feeds player input into the run
// engine. It also receives the engine's transient feedback messages, so it
// implements run.Feedback.
type LotScreen struct {
	state *run.State

	message     string
	messageTone run.Tone
}

// NewLotScreen creates the gameplay screen over a run engine.
func NewLotScreen(state *run.State) *LotScreen {
	return &LotScreen{state: state}
}

// ShowMessage displays a transient feedback message.
func (ls *LotScreen) ShowMessage(text string, tone run.Tone) {
	ls.message = text
	ls.messageTone = tone
}

// HideMessage clears the feedback message.
func (ls *LotScreen) HideMessage() {
	ls.message = ""
}

// Update forwards one tick of input and time to the engine.
func (ls *LotScreen) Update() error {
	st := ls.state

	if menuCar := st.MenuCar(); menuCar != nil {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			st.CloseMenu()
		case inpututil.IsKeyJustPressed(ebiten.Key1):
			if menuCar.NeedsCleaning {
				st.ChooseAction(models.ActionClean)
			} else {
				st.ChooseAction(models.ActionVacuum)
			}
		case inpututil.IsKeyJustPressed(ebiten.Key2):
			if menuCar.NeedsVacuumOrSearch {
				st.ChooseAction(models.ActionSearch)
			}
		}
	} else {
		var dx, dy float64
		if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
			dx -= 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
			dx += 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
			dy -= 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
			dy += 1
		}
		if dx != 0 || dy != 0 {
			st.Move(dx, dy, tickSeconds)
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			st.OpenNearestMenu()
		}
	}

	st.Tick(tickSeconds)
	return nil
}

// Draw renders the lot, the cars, the player and the HUD.
func (ls *LotScreen) Draw(screen *ebiten.Image) {
	st := ls.state
	cfg := st.Config()

	// Asphalt
	screen.Fill(color.RGBA{45, 45, 50, 255})

	// Painted parking bays
	for _, spot := range st.Spots() {
		drawRect(screen, spot.X, spot.Y, run.SpotWidth, 3, color.RGBA{200, 200, 60, 255})
		drawRect(screen, spot.X, spot.Y+run.SpotHeight, run.SpotWidth, 3, color.RGBA{200, 200, 60, 255})
		drawRect(screen, spot.X, spot.Y, 3, run.SpotHeight, color.RGBA{200, 200, 60, 255})
		drawRect(screen, spot.X+run.SpotWidth, spot.Y, 3, run.SpotHeight, color.RGBA{200, 200, 60, 255})
	}

	for _, car := range st.Cars() {
		ls.drawCar(screen, car)
	}

	// Player
	px, py := st.PlayerPos()
	half := cfg.PlayerSize / 2
	drawRect(screen, px-half, py-half, cfg.PlayerSize, cfg.PlayerSize, color.RGBA{80, 160, 255, 255})

	ls.drawHUD(screen)

	if menuCar := st.MenuCar(); menuCar != nil {
		ls.drawMenu(screen, menuCar)
	}

	if active, frac := st.ActionProgress(); active {
		barW := 200.0
		x := px - barW/2
		y := py - half - 24
		drawRect(screen, x, y, barW, 14, color.RGBA{30, 30, 30, 255})
		drawRect(screen, x, y, barW*frac, 14, color.RGBA{0, 220, 0, 255})
	}

	if ls.message != "" {
		clr := color.RGBA{255, 255, 255, 255}
		switch ls.messageTone {
		case run.ToneGood:
			clr = color.RGBA{0, 255, 0, 255}
		case run.ToneBad:
			clr = color.RGBA{255, 80, 80, 255}
		}
		drawTextCentered(screen, ls.message, cfg.CanvasWidth/2, cfg.CanvasHeight/2-100, 2.5, clr)
	}
}

func (ls *LotScreen) drawCar(screen *ebiten.Image, car *run.Car) {
	carW, carH := 90.0, 150.0
	body := rarityColor(string(car.Type.Rarity))
	if car.Interacted {
		body = color.RGBA{70, 70, 70, 255}
	}
	drawRect(screen, car.X-carW/2, car.Y-carH/2, carW, carH, body)

	// Windshield marks the facing
	glassY := car.Y - carH/2 + 12
	if car.Flipped {
		glassY = car.Y + carH/2 - 34
	}
	drawRect(screen, car.X-carW/2+10, glassY, carW-20, 22, color.RGBA{140, 200, 230, 255})

	if car.Interacted {
		return
	}

	// Service marker
	marker := "V/S"
	if car.NeedsCleaning {
		marker = "DIRT"
	}
	drawTextCentered(screen, marker, car.X, car.Y-8, 1.2, color.White)

	// Special marker; X-Ray Goggles reveal the property itself
	if car.Special != run.SpecialNone {
		label := "?"
		if ls.state.Stats().XRayVision {
			label = string(car.Special)
		}
		drawTextCentered(screen, label, car.X, car.Y-carH/2-20, 1.5, color.RGBA{255, 215, 0, 255})
	}
}

func (ls *LotScreen) drawHUD(screen *ebiten.Image) {
	st := ls.state
	cfg := st.Config()

	drawRect(screen, 0, 0, cfg.CanvasWidth, 34, color.RGBA{0, 0, 0, 180})
	drawText(screen, fmt.Sprintf("Level %d", st.Level()), 20, 8, 1.8, color.White)
	drawText(screen, fmt.Sprintf("Time: %ds", st.TimeLeft()), 180, 8, 1.8, timeColor(st.TimeLeft()))
	drawText(screen, fmt.Sprintf("Cash: $%d", st.Cash()), 360, 8, 1.8, color.RGBA{0, 255, 0, 255})
	drawText(screen, fmt.Sprintf("Cars: %d/%d", st.CarsServiced(), st.TotalCars()), 560, 8, 1.8, color.White)

	if event := st.Event(); event != nil {
		drawText(screen, event.Name, 760, 8, 1.8, color.RGBA{255, 215, 0, 255})
	}
}

func (ls *LotScreen) drawMenu(screen *ebiten.Image, car *run.Car) {
	cfg := ls.state.Config()
	menuW, menuH := 420.0, 180.0
	x := cfg.CanvasWidth/2 - menuW/2
	y := cfg.CanvasHeight/2 - menuH/2

	drawRect(screen, x, y, menuW, menuH, color.RGBA{20, 20, 50, 240})
	drawRect(screen, x, y, menuW, 4, color.RGBA{255, 215, 0, 255})

	drawTextCentered(screen, car.Type.Name, cfg.CanvasWidth/2, y+16, 2, rarityColor(string(car.Type.Rarity)))

	if car.NeedsCleaning {
		drawTextCentered(screen, "[1] Clean", cfg.CanvasWidth/2, y+70, 1.8, color.White)
	} else {
		drawTextCentered(screen, "[1] Vacuum", cfg.CanvasWidth/2, y+60, 1.8, color.White)
		drawTextCentered(screen, "[2] Search", cfg.CanvasWidth/2, y+95, 1.8, color.White)
	}
	drawTextCentered(screen, "ESC - Cancel", cfg.CanvasWidth/2, y+menuH-36, 1.5, color.RGBA{180, 180, 180, 255})
}

func timeColor(seconds int) color.Color {
	if seconds <= 10 {
		return color.RGBA{255, 60, 60, 255}
	}
	return color.White
}
