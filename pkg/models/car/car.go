package car

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/drifter/pkg/config"
)

// Traction values for each grip state
const (
	GripTraction  = 0.92 // Near-full grip
	DriftTraction = 0.35 // High slip
)

// Grip represents whether the tyres are holding or sliding.
// It is recomputed from scratch every physics step.
type Grip int

const (
	Gripping Grip = iota
	Drifting
)

// Traction returns the grip multiplier, 1.0 would be perfect grip
func (g Grip) Traction() float64 {
	if g == Drifting {
		return DriftTraction
	}
	return GripTraction
}

func (g Grip) String() string {
	if g == Drifting {
		return "drifting"
	}
	return "gripping"
}

// State represents the car's kinematic state on the track
type State struct {
	Position mgl64.Vec2 // World position in pixels
	Heading  float64    // Radians, 0 points along +x
	Speed    float64    // Signed, positive is forward
	Grip     Grip
}

// NewState places a stationary car at the given pose
func NewState(pos mgl64.Vec2, heading float64) State {
	return State{
		Position: pos,
		Heading:  heading,
		Grip:     Gripping,
	}
}

// Traction returns the current grip multiplier
func (s State) Traction() float64 {
	return s.Grip.Traction()
}

// IsDrifting reports whether the car slid during the last step
func (s State) IsDrifting() bool {
	return s.Grip == Drifting
}

// Forward returns the unit vector the car is pointing along
func (s State) Forward() mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(s.Heading), math.Sin(s.Heading)}
}

// NormalizeAngle wraps an angle into [-pi, pi]
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// Car represents a selectable drift car.
// Performance fields of zero fall back to the base tuning.
type Car struct {
	// Basic Information
	Make  string
	Model string
	Year  int
	Color color.RGBA

	// Performance overrides
	Accel     float64 // Speed gained per second
	Brake     float64 // Speed lost per second under braking
	MaxSpeed  float64 // Top speed in pixels per second
	SteerRate float64 // Base steering rate in rad/s
}

// NewCar creates a new car that drives on the base tuning
func NewCar(make, model string, year int, c color.RGBA) *Car {
	return &Car{
		Make:  make,
		Model: model,
		Year:  year,
		Color: c,
	}
}

// Tuning applies the car's overrides on top of base
func (c *Car) Tuning(base config.Tuning) config.Tuning {
	t := base
	if c.Accel > 0 {
		t.Accel = c.Accel
	}
	if c.Brake > 0 {
		t.Brake = c.Brake
	}
	if c.MaxSpeed > 0 {
		t.MaxSpeed = c.MaxSpeed
	}
	if c.SteerRate > 0 {
		t.SteerRate = c.SteerRate
	}
	return t
}

// Name returns the display name
func (c *Car) Name() string {
	return c.Make + " " + c.Model
}
