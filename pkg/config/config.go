// Package config holds the tunable scalars that drive the car and track.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidTuning is returned when a tuning value is out of range
var ErrInvalidTuning = errors.New("invalid tuning")

// EnvTuningPath names the environment variable consulted when no -tuning flag is given
const EnvTuningPath = "DRIFT_TUNING"

// Tuning represents the handful of arcade constants the simulation is built from.
// Units are world pixels and seconds.
type Tuning struct {
	// Car
	Accel     float64 `toml:"accel"`      // Speed gained per second while accelerating
	Brake     float64 `toml:"brake"`      // Speed lost per second while braking/reversing
	Friction  float64 `toml:"friction"`   // Coasting deceleration per second
	MaxSpeed  float64 `toml:"max_speed"`  // Forward speed cap, reverse is capped at half
	SteerRate float64 `toml:"steer_rate"` // Base angular rate in rad/s
	CarLength float64 `toml:"car_length"`
	CarWidth  float64 `toml:"car_width"`

	// Track
	TrackMargin float64 `toml:"track_margin"` // Gap between viewport edge and outer ellipse
	InnerOffset float64 `toml:"inner_offset"` // Road width, outer radii minus inner radii
}

// Default returns the stock tuning
func Default() Tuning {
	return Tuning{
		Accel:       320,
		Brake:       460,
		Friction:    160,
		MaxSpeed:    520,
		SteerRate:   2.4,
		CarLength:   42,
		CarWidth:    22,
		TrackMargin: 40,
		InnerOffset: 120,
	}
}

// Validate checks every value is usable by the physics step.
// The inner offset must stay below the smallest outer radius floor (140)
// so the inner ellipse never collapses.
func (t Tuning) Validate() error {
	checks := []struct {
		name      string
		value     float64
		allowZero bool
	}{
		{"accel", t.Accel, false},
		{"brake", t.Brake, false},
		{"friction", t.Friction, false},
		{"max_speed", t.MaxSpeed, false},
		{"steer_rate", t.SteerRate, false},
		{"car_length", t.CarLength, false},
		{"car_width", t.CarWidth, false},
		{"inner_offset", t.InnerOffset, false},
		{"track_margin", t.TrackMargin, true},
	}
	for _, c := range checks {
		// NaN slips through every comparison below
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidTuning, c.name, c.value)
		}
		if c.allowZero && c.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidTuning, c.name, c.value)
		}
		if !c.allowZero && c.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, c.name, c.value)
		}
	}
	if t.InnerOffset >= 140 {
		return fmt.Errorf("%w: inner_offset must be below 140, got %v", ErrInvalidTuning, t.InnerOffset)
	}
	return nil
}

// Load reads a TOML tuning file on top of the defaults.
// Keys missing from the file keep their default value.
func Load(filename string) (Tuning, error) {
	t := Default()
	if _, err := toml.DecodeFile(filename, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to decode tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Save writes the tuning to a TOML file
func Save(filename string, t Tuning) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create tuning file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(t); err != nil {
		return fmt.Errorf("failed to encode tuning file: %w", err)
	}
	return nil
}

// Resolve picks the tuning source: an explicit path, then $DRIFT_TUNING,
// then the defaults.
func Resolve(path string) (Tuning, error) {
	if path == "" {
		path = os.Getenv(EnvTuningPath)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
