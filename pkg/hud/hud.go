// Package hud turns simulation state into the text shown over the track.
// It knows nothing about drawing; the game package renders what it returns.
package hud

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/drifter/pkg/physics"
	"github.com/golangdaddy/drifter/pkg/session"
)

const (
	// FlashTTL is how long a score flash stays on screen, in seconds
	FlashTTL = 1.0
	// flashRise is how far a flash floats upwards per second
	flashRise = 40.0
)

// Kind tells the renderer how to colour a flash
type Kind int

const (
	KindBonus Kind = iota
	KindPenalty
)

// Flash is a short-lived message anchored where something happened
type Flash struct {
	Text string
	Pos  mgl64.Vec2
	Age  float64
	Kind Kind
}

// Alpha fades the flash out over its lifetime
func (f Flash) Alpha() float64 {
	return math.Max(0, 1-f.Age/FlashTTL)
}

// Offset is the flash's vertical drift from its anchor, negative is up
func (f Flash) Offset() float64 {
	return -flashRise * f.Age
}

// Feed collects flashes produced by physics steps
type Feed struct {
	flashes []Flash
}

// Push records flashes for a step result. pos is where the car was.
func (f *Feed) Push(res physics.Result, pos mgl64.Vec2) {
	if res.DriftEnded && res.DriftBonus > 0 {
		f.flashes = append(f.flashes, Flash{
			Text: fmt.Sprintf("DRIFT +%d", int(res.DriftBonus)),
			Pos:  pos,
			Kind: KindBonus,
		})
	}
	if res.Collided {
		f.flashes = append(f.flashes, Flash{
			Text: fmt.Sprintf("WALL -%d", int(physics.CollisionPenalty)),
			Pos:  pos,
			Kind: KindPenalty,
		})
	}
}

// Tick ages every flash by dt and drops the expired ones
func (f *Feed) Tick(dt float64) {
	kept := f.flashes[:0]
	for _, fl := range f.flashes {
		fl.Age += dt
		if fl.Age < FlashTTL {
			kept = append(kept, fl)
		}
	}
	f.flashes = kept
}

// Items returns the live flashes, oldest first
func (f *Feed) Items() []Flash {
	return f.flashes
}

// Clear drops every flash
func (f *Feed) Clear() {
	f.flashes = f.flashes[:0]
}

// Lines returns the HUD panel text for the current world
func Lines(w *physics.World) []string {
	drift := "DRIFT  -"
	if w.Session.DriftActive {
		drift = fmt.Sprintf("DRIFT  %.1fs", w.Session.DriftTimer)
	}
	return []string{
		fmt.Sprintf("SCORE  %d", w.Session.DisplayScore()),
		fmt.Sprintf("SPEED  %d", int(math.Round(math.Abs(w.Car.Speed)))),
		drift,
		strings.ToUpper(w.Car.Grip.String()),
	}
}

// Banner returns the centred message for a lifecycle state, empty while running
func Banner(s session.State) string {
	switch s {
	case session.StateIdle:
		return "PRESS ENTER TO START"
	case session.StatePaused:
		return "PAUSED - P TO RESUME"
	default:
		return ""
	}
}
