package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// uiFace is the shared bitmap font face for all screens.
var uiFace = text.NewGoXFace(bitmapfont.Face)

// drawText draws a string at x,y with the given scale and color.
func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, uiFace, op)
}

// drawTextCentered draws a string horizontally centered on centerX.
func drawTextCentered(screen *ebiten.Image, s string, centerX, y, scale float64, clr color.Color) {
	w := text.Advance(s, uiFace) * scale
	drawText(screen, s, centerX-w/2, y, scale, clr)
}

// drawRect fills a rectangle. Small helper over ebiten's image blitting.
func drawRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w < 1 || h < 1 {
		return
	}
	img := ebiten.NewImage(int(w), int(h))
	img.Fill(clr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// rarityColor maps a catalog rarity name to its display color.
func rarityColor(rarity string) color.RGBA {
	switch rarity {
	case "uncommon":
		return color.RGBA{0, 128, 255, 255}
	case "rare":
		return color.RGBA{160, 32, 240, 255}
	case "legendary":
		return color.RGBA{255, 215, 0, 255}
	case "epic":
		return color.RGBA{255, 100, 255, 255}
	}
	return color.RGBA{200, 200, 200, 255}
}
