package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/grimeshine/pkg/catalog"
	"github.com/golangdaddy/grimeshine/pkg/save"
)

// ShopScreen is the star shop for permanent upgrades. Purchases are
// persistent and idempotent; upgrades with an unmet prerequisite stay
// locked until the prerequisite is owned.
type ShopScreen struct {
	store  *save.Store
	onBack func()
}

// NewShopScreen creates the star shop screen.
func NewShopScreen(store *save.Store, onBack func()) *ShopScreen {
	return &ShopScreen{store: store, onBack: onBack}
}

// Update handles purchases and the back key.
func (ss *ShopScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ss.onBack != nil {
			ss.onBack()
		}
		return nil
	}

	for i := range catalog.PermanentUpgrades {
		key := ebiten.Key(int(ebiten.Key1) + i)
		if inpututil.IsKeyJustPressed(key) {
			ss.buy(&catalog.PermanentUpgrades[i])
		}
	}
	return nil
}

// buy attempts a purchase: requires the prerequisite, no prior ownership and
// enough stars.
func (ss *ShopScreen) buy(pu *catalog.PermanentUpgrade) {
	profile := ss.store.Load()
	if profile.HasPermanentUpgrade(pu.ID) {
		return
	}
	if pu.Requires != "" && !profile.HasPermanentUpgrade(pu.Requires) {
		return
	}
	if !ss.store.SpendStars(pu.Cost) {
		return
	}
	ss.store.AddPermanentUpgrade(pu.ID)
	if pu.Effect.Kind == catalog.EffectUnlockCharacter {
		ss.store.UnlockCharacter(pu.Effect.CharacterID)
	}
}

// Draw renders the shop catalog.
func (ss *ShopScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})

	w := screen.Bounds().Dx()
	centerX := float64(w) / 2
	profile := ss.store.Load()

	drawTextCentered(screen, "STAR SHOP", centerX, 30, 3, color.White)
	drawTextCentered(screen, fmt.Sprintf("Stars: %d", profile.MetaCurrency), centerX, 75, 2, color.RGBA{255, 215, 0, 255})

	y := 115.0
	for i, pu := range catalog.PermanentUpgrades {
		owned := profile.HasPermanentUpgrade(pu.ID)
		locked := pu.Requires != "" && !profile.HasPermanentUpgrade(pu.Requires)

		rowColor := color.RGBA{40, 40, 60, 255}
		if owned {
			rowColor = color.RGBA{0, 60, 0, 255}
		} else if locked {
			rowColor = color.RGBA{30, 30, 30, 255}
		}
		drawRect(screen, 50, y-8, float64(w)-100, 48, rowColor)

		label := fmt.Sprintf("[%d] %s - %s", i+1, pu.Name, pu.Description)
		drawText(screen, label, 70, y, 1.5, color.White)

		switch {
		case owned:
			drawText(screen, "OWNED", float64(w)-180, y, 1.5, color.RGBA{0, 255, 0, 255})
		case locked:
			req := catalog.FindPermanentUpgrade(pu.Requires)
			drawText(screen, fmt.Sprintf("Requires %s", req.Name), float64(w)-330, y, 1.5, color.RGBA{150, 150, 150, 255})
		default:
			drawText(screen, fmt.Sprintf("%d stars", pu.Cost), float64(w)-200, y, 1.5, color.RGBA{255, 215, 0, 255})
		}

		y += 54
	}

	drawTextCentered(screen, "Press a number key to buy, ESC to return", centerX, y+20, 1.5, color.RGBA{150, 200, 255, 255})
}
