// Package session owns a drift simulation and decides when it advances.
package session

import (
	"log/slog"
	"time"

	"github.com/golangdaddy/drifter/internal/log"
	"github.com/golangdaddy/drifter/pkg/config"
	"github.com/golangdaddy/drifter/pkg/physics"
	"github.com/golangdaddy/drifter/pkg/track"
	"github.com/google/uuid"
)

// State represents the controller's lifecycle state
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Clock supplies monotonic frame times
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, which carries a monotonic reading
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Controller owns one simulation context and runs the Idle/Running/Paused
// state machine around it. It is not safe for concurrent use; the host calls
// it from its frame loop only.
type Controller struct {
	world  *physics.World
	runID  uuid.UUID
	last   time.Time // Reference for the next frame's elapsed time
	logger *slog.Logger
}

// New creates an idle controller with a fresh world for the given viewport
func New(tuning config.Tuning, viewportWidth, viewportHeight float64, seed int64) *Controller {
	tr := track.New(viewportWidth, viewportHeight, tuning.TrackMargin, tuning.InnerOffset)
	c := &Controller{
		world: physics.NewWorld(tuning, tr, seed),
		runID: uuid.New(),
	}
	c.logger = log.With("run", c.runID.String())
	return c
}

// World exposes the simulation for display. Callers must not mutate it.
func (c *Controller) World() *physics.World {
	return c.world
}

// RunID identifies the current run in logs
func (c *Controller) RunID() uuid.UUID {
	return c.runID
}

// State derives the lifecycle state from the session flags
func (c *Controller) State() State {
	switch {
	case !c.world.Session.Running:
		return StateIdle
	case c.world.Session.Paused:
		return StatePaused
	default:
		return StateRunning
	}
}

// Start moves Idle to Running. now becomes the elapsed-time reference so
// the first frame doesn't see the time spent idle.
func (c *Controller) Start(now time.Time) bool {
	if c.State() != StateIdle {
		return false
	}
	c.world.Session.Running = true
	c.world.Session.Paused = false
	c.last = now
	c.logger.Info("session started", "track_rx", c.world.Track.OuterRX, "track_ry", c.world.Track.OuterRY)
	return true
}

// TogglePause flips between Running and Paused. It does nothing when idle.
func (c *Controller) TogglePause(now time.Time) bool {
	switch c.State() {
	case StateRunning:
		c.world.Session.Paused = true
		c.logger.Info("session paused", "score", c.world.Session.DisplayScore())
	case StatePaused:
		c.world.Session.Paused = false
		c.last = now
		c.logger.Info("session resumed")
	default:
		return false
	}
	return true
}

// Reset returns to Idle and reinitializes the car, score and skid trail
func (c *Controller) Reset() {
	score := c.world.Session.DisplayScore()
	c.world.Reset()
	c.logger.Info("session reset", "final_score", score)
	c.runID = uuid.New()
	c.logger = log.With("run", c.runID.String())
}

// Resize rebuilds the track when the viewport changes
func (c *Controller) Resize(viewportWidth, viewportHeight float64) {
	if c.world.Resize(viewportWidth, viewportHeight) {
		c.logger.Info("track resized", "width", viewportWidth, "height", viewportHeight)
	}
}

// Tick handles one frame at time now. The elapsed-time reference always
// advances while running or paused; the physics only steps while running.
func (c *Controller) Tick(now time.Time, in physics.Input) (physics.Result, bool) {
	if c.State() == StateIdle {
		return physics.Result{}, false
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return c.Step(dt, in)
}

// Step runs a single physics step of dt seconds if the session is running
func (c *Controller) Step(dt float64, in physics.Input) (physics.Result, bool) {
	if c.State() != StateRunning {
		return physics.Result{}, false
	}
	res := physics.Step(c.world, in, dt)
	if res.Collided {
		c.logger.Debug("wall hit", "score", c.world.Session.DisplayScore(), "speed", c.world.Car.Speed)
	}
	if res.DriftEnded {
		c.logger.Debug("drift completed", "bonus", res.DriftBonus, "score", c.world.Session.DisplayScore())
	}
	return res, true
}
