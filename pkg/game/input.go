package game

import (
	"github.com/golangdaddy/drifter/pkg/physics"
	"github.com/hajimehoshi/ebiten/v2"
)

// ReadInput samples the held driving keys. Arrows and WASD both work.
func ReadInput() physics.Input {
	return physics.Input{
		Accelerate: ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Brake:      ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:       ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:      ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}
