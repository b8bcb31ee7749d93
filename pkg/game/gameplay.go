package game

import (
	"image/color"

	"github.com/golangdaddy/drifter/internal/log"
	"github.com/golangdaddy/drifter/pkg/background"
	"github.com/golangdaddy/drifter/pkg/config"
	"github.com/golangdaddy/drifter/pkg/hud"
	"github.com/golangdaddy/drifter/pkg/models/car"
	"github.com/golangdaddy/drifter/pkg/session"
	"github.com/golangdaddy/drifter/pkg/track"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameplayScreen runs a drift session for the selected car
type GameplayScreen struct {
	ctrl        *session.Controller
	clock       session.Clock
	selectedCar *car.Car
	seed        int64
	flashes     hud.Feed

	sprite  *ebiten.Image
	bg      *ebiten.Image
	bgTrack *track.Track // Track the background was generated for
}

// NewGameplayScreen creates an idle session sized to the viewport
func NewGameplayScreen(selectedCar *car.Car, base config.Tuning, width, height int, seed int64) *GameplayScreen {
	tuning := selectedCar.Tuning(base)
	gs := &GameplayScreen{
		ctrl:        session.New(tuning, float64(width), float64(height), seed),
		clock:       session.SystemClock{},
		selectedCar: selectedCar,
		seed:        seed,
		sprite:      newCarSprite(selectedCar.Color, tuning.CarLength, tuning.CarWidth),
	}
	log.Info("gameplay ready", "car", selectedCar.Name(), "run", gs.ctrl.RunID().String())
	return gs
}

// SetViewport rebuilds the track when the window size changes
func (gs *GameplayScreen) SetViewport(width, height int) {
	gs.ctrl.Resize(float64(width), float64(height))
}

// Update handles the session keys and advances the simulation
func (gs *GameplayScreen) Update() error {
	now := gs.clock.Now()

	// One session key per frame: start, then pause, then reset
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		gs.ctrl.Start(now)
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		gs.ctrl.TogglePause(now)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		gs.ctrl.Reset()
		gs.flashes.Clear()
	}

	res, stepped := gs.ctrl.Tick(now, ReadInput())
	if stepped {
		gs.flashes.Push(res, gs.ctrl.World().Car.Position)
		gs.flashes.Tick(res.Dt)
	}
	return nil
}

// Draw renders the track, skids, car and HUD
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	world := gs.ctrl.World()
	screen.Fill(color.RGBA{0, 0, 0, 255})

	gs.ensureBackground(world.Track)
	screen.DrawImage(gs.bg, nil)
	drawMidline(screen, world.Track)
	drawSkids(screen, world.Trail.Marks())
	drawCar(screen, gs.sprite, world.Car)
	drawFlashes(screen, gs.flashes.Items())

	drawPanel(screen, hud.Lines(world), gs.selectedCar.Name())
	drawBanner(screen, hud.Banner(gs.ctrl.State()))
}

// ensureBackground regenerates the grass and asphalt image when the track
// has been rebuilt
func (gs *GameplayScreen) ensureBackground(tr *track.Track) {
	if gs.bg != nil && gs.bgTrack == tr {
		return
	}
	if gs.bg != nil {
		gs.bg.Deallocate()
	}
	gen := background.NewGenerator(int(tr.Width), int(tr.Height))
	gs.bg = ebiten.NewImageFromImage(gen.GenerateTrack(tr, gs.seed))
	gs.bgTrack = tr
}
