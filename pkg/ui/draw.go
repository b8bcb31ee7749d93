package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Face is the bitmap font used for all text, 16px at scale 1
var Face = text.NewGoXFace(bitmapfont.Face)

// DrawButton draws a button with background, border and centered label
func DrawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bgColor, false)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(width)-2, float32(height)-2, 2, color.RGBA{80, 80, 100, 255}, false)

	// bitmap font is 16px tall, baseline sits ~8px below the centre
	textWidth := text.Advance(label, Face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+width/2-textWidth/2, y+height/2-8)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, label, Face, op)
}

// DrawText draws text centered on (centerX, centerY) at the given pixel size
func DrawText(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color) {
	scale := size / 16.0
	width := text.Advance(str, Face) * scale
	DrawTextAt(screen, str, centerX-width/2, centerY, size, clr)
}

// DrawTextAt draws text with its left edge at x, vertically centered on y
func DrawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / 16.0
	scaledHeight := 16.0 * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-scaledHeight/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, Face, op)
}
