package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/drifter/pkg/track"
)

// Palette
var (
	GrassColor   = color.RGBA{30, 100, 30, 255}
	AsphaltColor = color.RGBA{60, 60, 60, 255}
	KerbRed      = color.RGBA{200, 40, 40, 255}
	KerbWhite    = color.RGBA{235, 235, 235, 255}
)

// kerbBand is the normalized ellipse distance band painted as kerb
const kerbBand = 0.035

// Generator paints the static scenery behind the car
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateTrack paints grass, kerbs and asphalt for the track.
// Every pixel the track reports as road is asphalt or kerb, so what the
// player sees matches the wall test.
func (g *Generator) GenerateTrack(tr *track.Track, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := mgl64.Vec2{float64(x) + 0.5, float64(y) + 0.5}
			if tr.Contains(p) {
				img.SetRGBA(x, y, g.roadPixel(tr, p, rng))
				continue
			}
			// Varying shades of green
			c := GrassColor
			if rng.Intn(10) == 0 {
				c.G = uint8(80 + rng.Intn(60))
			}
			img.SetRGBA(x, y, c)
		}
	}

	// Vegetation on the infield and outside the outer wall
	for y := 0; y < g.Height; y += 14 {
		for x := 0; x < g.Width; x += 8 + rng.Intn(20) {
			drawX := x + rng.Intn(10) - 5
			drawY := y + rng.Intn(10) - 5
			if rng.Float64() > 0.35 || g.nearRoad(tr, drawX, drawY, 18) {
				continue
			}
			if rng.Float64() < 0.3 {
				g.drawTree(img, tr, drawX, drawY, rng)
			} else {
				g.drawBush(img, tr, drawX, drawY, rng)
			}
		}
	}

	return img
}

// roadPixel picks asphalt or the striped kerb along both edges
func (g *Generator) roadPixel(tr *track.Track, p mgl64.Vec2, rng *rand.Rand) color.RGBA {
	d := p.Sub(tr.Center)
	outer := math.Sqrt(sq(d.X()/tr.OuterRX) + sq(d.Y()/tr.OuterRY))
	inner := math.Sqrt(sq(d.X()/tr.InnerRX) + sq(d.Y()/tr.InnerRY))
	if outer > 1-kerbBand || inner < 1+kerbBand*2 {
		// alternate stripes by angle around the oval
		stripe := int(math.Floor((math.Atan2(d.Y(), d.X()) + math.Pi) * 24 / math.Pi))
		if stripe%2 == 0 {
			return KerbRed
		}
		return KerbWhite
	}
	c := AsphaltColor
	shade := uint8(rng.Intn(8))
	c.R += shade
	c.G += shade
	c.B += shade
	return c
}

// nearRoad reports whether anything within r pixels of (x, y) is road
func (g *Generator) nearRoad(tr *track.Track, x, y, r int) bool {
	for _, o := range [][2]int{{0, 0}, {-r, 0}, {r, 0}, {0, -r}, {0, r}, {-r, -r}, {r, r}, {-r, r}, {r, -r}} {
		if tr.Contains(mgl64.Vec2{float64(x + o[0]), float64(y + o[1])}) {
			return true
		}
	}
	return false
}

// drawTree draws a simple pine tree, skipping road pixels
func (g *Generator) drawTree(img *image.RGBA, tr *track.Track, x, y int, rng *rand.Rand) {
	height := 24 + rng.Intn(16)
	width := 12 + rng.Intn(8)

	trunkColor := color.RGBA{60, 40, 20, 255}
	trunkW := 2 + rng.Intn(3)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2+1; tx++ {
			g.plot(img, tr, x+tx, y-ty, trunkColor)
		}
	}

	leavesColor := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	for l := 0; l < 3; l++ {
		layerY := y - height/3 - l*height/5
		layerW := width - l*3
		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.plot(img, tr, x+lx, layerY-ly, leavesColor)
			}
		}
	}
}

// drawBush draws a round bush, skipping road pixels
func (g *Generator) drawBush(img *image.RGBA, tr *track.Track, x, y int, rng *rand.Rand) {
	radius := 3 + rng.Intn(6)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.plot(img, tr, x+dx, y+dy, c)
			}
		}
	}
}

func (g *Generator) plot(img *image.RGBA, tr *track.Track, x, y int, c color.RGBA) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	if tr.Contains(mgl64.Vec2{float64(x) + 0.5, float64(y) + 0.5}) {
		return
	}
	img.SetRGBA(x, y, c)
}

func sq(v float64) float64 {
	return v * v
}
