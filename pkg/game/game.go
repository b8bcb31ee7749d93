package game

import (
	"github.com/golangdaddy/drifter/internal/log"
	"github.com/golangdaddy/drifter/pkg/config"
	"github.com/golangdaddy/drifter/pkg/models/car"
	"github.com/golangdaddy/drifter/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Default window size, used until the first Layout call
const (
	DefaultWidth  = 1024
	DefaultHeight = 600
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// viewportAware screens are told when the window size changes
type viewportAware interface {
	SetViewport(width, height int)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	tuning        config.Tuning
	seed          int64
	currentScreen Screen
	onTitle       bool
	width, height int
}

// NewGame creates a new game instance starting on the title screen
func NewGame(tuning config.Tuning, seed int64) *Game {
	g := &Game{
		tuning: tuning,
		seed:   seed,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	g.showTitle()
	return g
}

// Update handles game logic updates
func (g *Game) Update() error {
	if !g.onTitle && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.showTitle()
		return nil
	}
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout follows the window size so the track always fills the viewport
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if v, ok := g.currentScreen.(viewportAware); ok {
			v.SetViewport(g.width, g.height)
		}
	}
	return g.width, g.height
}

func (g *Game) showTitle() {
	g.onTitle = true
	g.currentScreen = ui.NewTitleScreen(g.showGarage)
}

func (g *Game) showGarage() {
	g.onTitle = false
	g.currentScreen = ui.NewGarageScreen(g.tuning, g.startGameplay)
}

// startGameplay transitions to the actual gameplay
func (g *Game) startGameplay(selectedCar *car.Car) {
	log.Debug("car selected", "car", selectedCar.Name())
	g.onTitle = false
	g.currentScreen = NewGameplayScreen(selectedCar, g.tuning, g.width, g.height, g.seed)
}
