package game

import (
	"image/color"

	"github.com/golangdaddy/drifter/pkg/hud"
	"github.com/golangdaddy/drifter/pkg/models/car"
	"github.com/golangdaddy/drifter/pkg/skid"
	"github.com/golangdaddy/drifter/pkg/track"
	"github.com/golangdaddy/drifter/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const midlineSegments = 96

// newCarSprite draws a top-down car pointing along +x, so rotating it by the
// heading lines it up with the physics
func newCarSprite(body color.Color, length, width float64) *ebiten.Image {
	l, w := float32(length), float32(width)
	img := ebiten.NewImage(int(length), int(width))

	// Body and outline
	vector.DrawFilledRect(img, 0, 0, l, w, body, false)
	vector.StrokeRect(img, 1, 1, l-2, w-2, 2, color.RGBA{20, 20, 20, 255}, false)

	// Windshield at the front
	vector.DrawFilledRect(img, l*0.6, w*0.2, l*0.18, w*0.6, color.RGBA{150, 200, 255, 200}, false)

	// Wheels
	wheel := color.RGBA{30, 30, 30, 255}
	wheelLen, wheelWidth := l*0.2, w*0.18
	for _, x := range []float32{l * 0.12, l*0.88 - wheelLen} {
		vector.DrawFilledRect(img, x, 0, wheelLen, wheelWidth, wheel, false)
		vector.DrawFilledRect(img, x, w-wheelWidth, wheelLen, wheelWidth, wheel, false)
	}
	return img
}

// drawCar renders the sprite centred on the car's position
func drawCar(screen, sprite *ebiten.Image, s car.State) {
	b := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Rotate(s.Heading)
	op.GeoM.Translate(s.Position.X(), s.Position.Y())
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// drawSkids renders every live mark, fading with its remaining life
func drawSkids(screen *ebiten.Image, marks []skid.Mark) {
	for _, m := range marks {
		c := color.NRGBA{20, 20, 20, uint8(m.Alpha * 170)}
		vector.DrawFilledCircle(screen, float32(m.Pos.X()), float32(m.Pos.Y()), float32(m.Width/2), c, true)
	}
}

// drawMidline dashes the centre line of the lane
func drawMidline(screen *ebiten.Image, tr *track.Track) {
	pts := tr.Midline(midlineSegments)
	dash := color.RGBA{230, 230, 230, 160}
	for i := 0; i+1 < len(pts); i += 2 {
		a, b := pts[i], pts[i+1]
		vector.StrokeLine(screen, float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()), 2, dash, true)
	}
}

// drawFlashes renders the floating score messages
func drawFlashes(screen *ebiten.Image, flashes []hud.Flash) {
	for _, f := range flashes {
		c := color.NRGBA{120, 255, 140, 255}
		if f.Kind == hud.KindPenalty {
			c = color.NRGBA{255, 90, 90, 255}
		}
		c.A = uint8(f.Alpha() * 255)
		ui.DrawText(screen, f.Text, f.Pos.X(), f.Pos.Y()-30+f.Offset(), 20, c)
	}
}

// drawPanel renders the HUD panel in the top-left corner
func drawPanel(screen *ebiten.Image, lines []string, carName string) {
	x, y := 16.0, 16.0
	width, lineHeight := 220.0, 24.0
	height := lineHeight*float64(len(lines)+1) + 16

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, color.RGBA{100, 100, 120, 255}, false)

	ui.DrawTextAt(screen, carName, x+12, y+20, 16, color.RGBA{255, 200, 50, 255})
	for i, line := range lines {
		ui.DrawTextAt(screen, line, x+12, y+20+lineHeight*float64(i+1), 16, color.RGBA{230, 230, 240, 255})
	}
}

// drawBanner renders a centred state message over a dimmed screen
func drawBanner(screen *ebiten.Image, msg string) {
	if msg == "" {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{0, 0, 0, 110}, false)
	ui.DrawText(screen, msg, float64(w)/2, float64(h)/2, 32, color.RGBA{255, 255, 255, 255})
}
