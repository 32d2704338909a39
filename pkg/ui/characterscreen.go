package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/grimeshine/pkg/catalog"
	"github.com/golangdaddy/grimeshine/pkg/save"
)

// CharacterScreen shows the roster and lets the player select an unlocked
// character with the number keys. Locked characters show their unlock price.
type CharacterScreen struct {
	store  *save.Store
	onBack func()
}

// NewCharacterScreen creates the character roster screen.
func NewCharacterScreen(store *save.Store, onBack func()) *CharacterScreen {
	return &CharacterScreen{store: store, onBack: onBack}
}

// Update handles selection and the back key.
func (cs *CharacterScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if cs.onBack != nil {
			cs.onBack()
		}
		return nil
	}

	for i := range catalog.Characters {
		key := ebiten.Key(int(ebiten.Key1) + i)
		if inpututil.IsKeyJustPressed(key) {
			cs.store.SelectCharacter(catalog.Characters[i].ID)
		}
	}
	return nil
}

// Draw renders the roster.
func (cs *CharacterScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})

	w := screen.Bounds().Dx()
	centerX := float64(w) / 2
	profile := cs.store.Load()

	drawTextCentered(screen, "CHARACTERS", centerX, 40, 3, color.White)
	drawTextCentered(screen, "Press a number key to select an unlocked character", centerX, 90, 1.5, color.RGBA{200, 200, 200, 255})

	y := 140.0
	for i, char := range catalog.Characters {
		unlocked := profile.HasCharacter(char.ID)
		selected := profile.SelectedCharacter == char.ID

		rowColor := color.RGBA{40, 40, 60, 255}
		if !unlocked {
			rowColor = color.RGBA{30, 30, 30, 255}
		} else if selected {
			rowColor = color.RGBA{0, 80, 0, 255}
		}
		drawRect(screen, 50, y-10, float64(w)-100, 80, rowColor)

		nameColor := rarityColor(string(char.Rarity))
		if !unlocked {
			nameColor = color.RGBA{120, 120, 120, 255}
		}
		drawText(screen, fmt.Sprintf("[%d] %s (%s)", i+1, char.Name, char.Rarity), 70, y, 2, nameColor)
		drawText(screen, char.Description, 70, y+35, 1.5, color.RGBA{200, 200, 200, 255})

		switch {
		case selected:
			drawText(screen, "SELECTED", float64(w)-220, y+10, 1.5, color.RGBA{0, 255, 0, 255})
		case !unlocked:
			drawText(screen, fmt.Sprintf("Unlock: $%d", char.Cost), float64(w)-240, y+10, 1.5, color.RGBA{255, 215, 0, 255})
		}

		y += 100
	}

	drawTextCentered(screen, "Locked characters unlock with cash during a run, or in the star shop", centerX, y+10, 1.5, color.RGBA{180, 180, 180, 255})
	drawTextCentered(screen, "ESC to return", centerX, y+40, 1.5, color.RGBA{150, 200, 255, 255})
}
