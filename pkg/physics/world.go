// Package physics advances the drift simulation one frame at a time.
//
// A World is the whole simulation context: car, score, skid trail, track and
// tuning. Step is the only function that mutates the car and the score.
// Nothing here blocks or keeps a reference to any scheduler; the host calls
// Step once per frame with the elapsed time.
package physics

import (
	"github.com/golangdaddy/drifter/pkg/config"
	"github.com/golangdaddy/drifter/pkg/models"
	"github.com/golangdaddy/drifter/pkg/models/car"
	"github.com/golangdaddy/drifter/pkg/skid"
	"github.com/golangdaddy/drifter/pkg/track"
)

// Input is the control snapshot sampled once per frame
type Input struct {
	Accelerate bool
	Brake      bool // Brakes, then reverses once stopped
	Left       bool
	Right      bool
}

// Steering reports whether either steering control is held
func (in Input) Steering() bool {
	return in.Left || in.Right
}

// World holds everything a physics step reads and writes
type World struct {
	Car     car.State
	Session models.SessionState
	Trail   *skid.Trail
	Track   *track.Track
	Tuning  config.Tuning
}

// NewWorld creates a world with the car parked on the track's spawn point
func NewWorld(tuning config.Tuning, tr *track.Track, seed int64) *World {
	w := &World{
		Trail:  skid.NewTrail(seed),
		Track:  tr,
		Tuning: tuning,
	}
	w.Reset()
	return w
}

// Reset puts the car back on the spawn point, zeroes the session and
// clears the skid trail
func (w *World) Reset() {
	pos, heading := w.Track.Spawn()
	w.Car = car.NewState(pos, heading)
	w.Session = models.NewSessionState()
	w.Trail.Clear()
}

// Resize rebuilds the track for a new viewport. A car that hasn't started
// goes to the new spawn point; otherwise its position is carried onto the
// new road so it is never left on the grass.
func (w *World) Resize(viewportWidth, viewportHeight float64) bool {
	if w.Track.Matches(viewportWidth, viewportHeight) {
		return false
	}
	old := w.Track
	w.Track = track.New(viewportWidth, viewportHeight, w.Tuning.TrackMargin, w.Tuning.InnerOffset)

	if !w.Session.Running {
		w.Car.Position, w.Car.Heading = w.Track.Spawn()
		return true
	}
	w.Car.Position = w.Track.Remap(old, w.Car.Position)
	return true
}
