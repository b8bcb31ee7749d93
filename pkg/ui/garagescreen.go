package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/drifter/pkg/config"
	"github.com/golangdaddy/drifter/pkg/models"
	"github.com/golangdaddy/drifter/pkg/models/car"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GarageScreen represents the car selection screen
type GarageScreen struct {
	selectedCarIndex int
	base             config.Tuning
	onCarSelected    func(*car.Car) // Callback when car is selected
}

// NewGarageScreen creates a new garage selection screen.
// base is used to show each car's effective numbers.
func NewGarageScreen(base config.Tuning, onCarSelected func(*car.Car)) *GarageScreen {
	return &GarageScreen{
		base:          base,
		onCarSelected: onCarSelected,
	}
}

// Update handles input for the garage screen
func (gs *GarageScreen) Update() error {
	cars := models.CarInventory.GetAllCars()
	if len(cars) == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		gs.selectedCarIndex--
		if gs.selectedCarIndex < 0 {
			gs.selectedCarIndex = len(cars) - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		gs.selectedCarIndex++
		if gs.selectedCarIndex >= len(cars) {
			gs.selectedCarIndex = 0
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if gs.onCarSelected != nil {
			gs.onCarSelected(cars[gs.selectedCarIndex])
		}
	}

	return nil
}

// Draw renders the garage screen
func (gs *GarageScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	centerX := float64(width) / 2
	DrawText(screen, "SELECT CAR", centerX, 60, 64, color.RGBA{255, 200, 50, 255})

	cars := models.CarInventory.GetAllCars()
	if len(cars) == 0 {
		DrawText(screen, "No cars available", centerX, float64(height)/2, 24, color.RGBA{255, 255, 255, 255})
		return
	}

	startY := 130.0
	carSpacing := 70.0
	buttonWidth := 640.0
	buttonHeight := 54.0
	buttonX := centerX - buttonWidth/2

	for i, c := range cars {
		carY := startY + float64(i)*carSpacing

		bgColor := color.RGBA{40, 40, 60, 255}
		textColor := color.RGBA{255, 255, 255, 255}
		if i == gs.selectedCarIndex {
			bgColor = color.RGBA{60, 100, 140, 255}
			textColor = color.RGBA{200, 240, 255, 255}
		}

		DrawButton(screen, formatCarInfo(c, gs.base), buttonX, carY, buttonWidth, buttonHeight, bgColor, textColor)
		// paint swatch
		vector.DrawFilledRect(screen, float32(buttonX+12), float32(carY+17), 20, 20, c.Color, false)
	}

	DrawText(screen, "Arrow Keys: Navigate | Enter: Select", centerX, float64(height)-40, 20, color.RGBA{150, 150, 150, 255})
}

// formatCarInfo formats car information for display
func formatCarInfo(c *car.Car, base config.Tuning) string {
	t := c.Tuning(base)
	return fmt.Sprintf("%s (%d) - Top: %.0f | Accel: %.0f | Steer: %.1f",
		c.Name(), c.Year, t.MaxSpeed, t.Accel, t.SteerRate)
}
