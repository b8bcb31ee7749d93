package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	// Any key or mouse click to start
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Spinning donut of skid marks behind the title
	for i := 0; i < 48; i++ {
		a := float64(i)/48*2*math.Pi + elapsed*1.5
		alpha := uint8(40 + 200*float64(i)/48)
		vector.DrawFilledCircle(screen,
			float32(centerX+160*math.Cos(a)), float32(centerY+60*math.Sin(a)),
			5, color.NRGBA{90, 90, 90, alpha}, true)
	}

	// Pulsing title
	pulse := 1.0 + 0.08*math.Sin(elapsed*2.0)
	DrawText(screen, "DRIFTER", centerX, centerY, 96*pulse, color.RGBA{255, 200, 50, 255})
	DrawText(screen, "Hold the slide, mind the wall", centerX, centerY+90, 28, color.RGBA{180, 180, 200, 255})

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		DrawText(screen, "Press ENTER or SPACE", centerX, float64(height)-100, 24, color.RGBA{150, 200, 255, 255})
	}
}
