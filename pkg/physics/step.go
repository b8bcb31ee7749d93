package physics

import (
	"math"

	"github.com/golangdaddy/drifter/pkg/models/car"
)

// MaxDt caps the elapsed time of a single step so a stalled frame can't
// tunnel the car through a wall
const MaxDt = 0.04

// Ratios of max speed
const (
	reverseSpeedRatio = 0.5  // Reverse speed cap
	steerSpeedRatio   = 0.45 // Speed at which steering reaches full authority
	driftSpeedRatio   = 0.35 // Above this, steering breaks traction
	skidSpeedRatio    = 0.3  // Above this, a drift leaves marks and scores
)

// Steering
const (
	reverseSteerScale = 0.6
	steerBase         = 0.8
	steerSpeedGain    = 0.4
)

// Scoring
const (
	DriftScoreRate   = 25.0 // Points per second of drift
	DriftBonusRate   = 10.0 // Completion bonus per second of drift, floored
	CollisionPenalty = 40.0
)

// Collision response
const (
	bounceBack     = 1.6   // Displacement undone, as a multiple of the attempted move
	bounceSpeed    = -0.35 // Speed multiplier after a hit
	skidRearOffset = 0.25  // Drift mark distance behind the car, in car lengths
)

// Result reports what happened during a step
type Result struct {
	Dt          float64 // Effective elapsed time after clamping
	Drifting    bool
	MarkEmitted bool
	DriftEnded  bool    // A drift finished without a collision
	DriftBonus  float64 // Bonus awarded when DriftEnded
	Collided    bool
}

// ClampDt returns the elapsed time actually simulated
func ClampDt(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	return math.Min(dt, MaxDt)
}

// Classify decides the grip state from the steering input and speed alone.
// There is no hysteresis: the same inputs always give the same answer.
func Classify(steering bool, speed, maxSpeed float64) car.Grip {
	if steering && math.Abs(speed) > maxSpeed*driftSpeedRatio {
		return car.Drifting
	}
	return car.Gripping
}

// Step advances the world by dt seconds
func Step(w *World, in Input, dt float64) Result {
	dt = ClampDt(dt)
	res := Result{Dt: dt}
	t := w.Tuning
	c := &w.Car
	s := &w.Session

	// Longitudinal
	c.Speed = throttle(c.Speed, in, t.Accel, t.Brake, t.Friction, dt)
	c.Speed = clamp(c.Speed, -t.MaxSpeed*reverseSpeedRatio, t.MaxSpeed)

	// Steering and grip
	steer := steerRate(c.Speed, in, t.SteerRate, t.MaxSpeed)
	c.Grip = Classify(in.Steering(), c.Speed, t.MaxSpeed)
	res.Drifting = c.IsDrifting()

	// Lower traction over-rotates the car
	c.Heading = car.NormalizeAngle(c.Heading + steer*dt*(1+(1-c.Traction())))

	// The velocity follows the heading even while sliding
	move := c.Forward().Mul(c.Speed * dt)
	c.Position = c.Position.Add(move)

	// Drift marks and score
	if c.IsDrifting() && math.Abs(c.Speed) > t.MaxSpeed*skidSpeedRatio {
		w.Trail.AddDrift(c.Position.Sub(c.Forward().Mul(skidRearOffset * t.CarLength)))
		res.MarkEmitted = true
		s.DriftTimer += dt
		s.DriftActive = true
		s.AddScore(dt * DriftScoreRate)
	} else if s.DriftActive {
		res.DriftEnded = true
		res.DriftBonus = math.Floor(s.DriftTimer * DriftBonusRate)
		s.AddScore(res.DriftBonus)
		s.EndDrift()
	}

	// Walls
	if !w.Track.Contains(c.Position) {
		c.Position = c.Position.Sub(move.Mul(bounceBack))
		c.Speed *= bounceSpeed
		w.Trail.AddCollision(c.Position)
		s.AddScore(-CollisionPenalty)
		s.EndDrift()
		res.Collided = true
	}

	w.Trail.Tick(dt)
	return res
}

// throttle applies accelerate, brake or coasting friction.
// Friction never carries the speed past zero.
func throttle(speed float64, in Input, accel, brake, friction, dt float64) float64 {
	switch {
	case in.Accelerate:
		return speed + accel*dt
	case in.Brake:
		return speed - brake*dt
	case speed > 0:
		return math.Max(0, speed-friction*dt)
	case speed < 0:
		return math.Min(0, speed+friction*dt)
	}
	return speed
}

// steerRate returns the signed angular rate in rad/s. Right wins when both
// directions are held.
func steerRate(speed float64, in Input, base, maxSpeed float64) float64 {
	speedFactor := clamp(math.Abs(speed)/(maxSpeed*steerSpeedRatio), 0, 1)
	if speed < 0 {
		base *= reverseSteerScale
	}
	rate := base * (steerBase + steerSpeedGain*speedFactor)

	steer := 0.0
	if in.Left {
		steer = -rate
	}
	if in.Right {
		steer = rate
	}
	return steer
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
