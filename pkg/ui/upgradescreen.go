package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/grimeshine/pkg/catalog"
	"github.com/golangdaddy/grimeshine/pkg/run"
	"github.com/golangdaddy/grimeshine/pkg/save"
)

// UpgradeScreen is the between-level shop: the engine's three rolled offers,
// a skip option, and (when affordable) ending the run early to unlock a
// character with cash.
type UpgradeScreen struct {
	state *run.State
	store *save.Store
}

// NewUpgradeScreen creates the between-level shop screen.
func NewUpgradeScreen(state *run.State, store *save.Store) *UpgradeScreen {
	return &UpgradeScreen{state: state, store: store}
}

// Update handles purchase, skip and unlock input.
func (us *UpgradeScreen) Update() error {
	st := us.state

	for i := range st.Offers() {
		key := ebiten.Key(int(ebiten.Key1) + i)
		if inpututil.IsKeyJustPressed(key) {
			st.Purchase(i)
			return nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		st.Skip()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if char := us.affordableLockedCharacter(); char != nil {
			st.UnlockCharacter(char.ID)
		}
	}
	return nil
}

// affordableLockedCharacter returns the cheapest locked character the
// current cash can buy, or nil.
func (us *UpgradeScreen) affordableLockedCharacter() *catalog.Character {
	profile := us.store.Load()
	var best *catalog.Character
	for i := range catalog.Characters {
		char := &catalog.Characters[i]
		if profile.HasCharacter(char.ID) || us.state.Cash() < char.Cost {
			continue
		}
		if best == nil || char.Cost < best.Cost {
			best = char
		}
	}
	return best
}

// Draw renders the offer list.
func (us *UpgradeScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{25, 20, 45, 255})

	st := us.state
	w := screen.Bounds().Dx()
	centerX := float64(w) / 2

	drawTextCentered(screen, fmt.Sprintf("LEVEL %d COMPLETE", st.Level()), centerX, 40, 3, color.RGBA{0, 255, 0, 255})
	drawTextCentered(screen, fmt.Sprintf("Cash: $%d", st.Cash()), centerX, 95, 2, color.RGBA{0, 255, 0, 255})

	y := 150.0
	for i, offer := range st.Offers() {
		affordable := st.Cash() >= offer.Cost

		rowColor := color.RGBA{40, 40, 60, 255}
		if !affordable {
			rowColor = color.RGBA{30, 30, 30, 255}
		}
		drawRect(screen, 80, y-10, float64(w)-160, 90, rowColor)

		kind := "Upgrade"
		if offer.IsBuff {
			kind = "Next Level Only"
		}
		title := fmt.Sprintf("[%d] %s (%s, %s)", i+1, offer.Name(), offer.Rarity(), kind)
		drawText(screen, title, 100, y, 1.8, rarityColor(string(offer.Rarity())))
		drawText(screen, offer.Description(), 100, y+35, 1.5, color.RGBA{200, 200, 200, 255})

		costColor := color.RGBA{255, 215, 0, 255}
		if !affordable {
			costColor = color.RGBA{255, 80, 80, 255}
		}
		drawText(screen, fmt.Sprintf("$%d", offer.Cost), float64(w)-180, y+15, 2, costColor)

		y += 110
	}

	drawTextCentered(screen, "[S] Skip - save your cash", centerX, y+10, 1.8, color.RGBA{150, 200, 255, 255})

	if char := us.affordableLockedCharacter(); char != nil {
		drawTextCentered(screen, fmt.Sprintf("[U] Restart run and unlock %s ($%d)", char.Name, char.Cost),
			centerX, y+50, 1.8, color.RGBA{255, 215, 0, 255})
	}
}
