package car

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/drifter/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.92, Gripping.Traction())
	assert.Equal(t, 0.35, Drifting.Traction())
	assert.Equal(t, "drifting", Drifting.String())

	s := NewState(mgl64.Vec2{1, 2}, 0)
	assert.False(t, s.IsDrifting())
	assert.Equal(t, 0.0, s.Speed)
	assert.Equal(t, GripTraction, s.Traction())
}

func TestNormalizeAngle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{7 * math.Pi / 2, -math.Pi / 2},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, NormalizeAngle(tc.in), 1e-9, "in=%v", tc.in)
	}
}

func TestForward(t *testing.T) {
	t.Parallel()

	s := NewState(mgl64.Vec2{}, math.Pi/2)
	f := s.Forward()
	assert.InDelta(t, 0, f.X(), 1e-9)
	assert.InDelta(t, 1, f.Y(), 1e-9)
}

func TestCarTuning(t *testing.T) {
	t.Parallel()

	base := config.Default()

	stock := NewCar("Mazda", "MX-5", 1990, color.RGBA{200, 30, 30, 255})
	assert.Equal(t, base, stock.Tuning(base))

	tuned := NewCar("Nissan", "Silvia", 1999, color.RGBA{240, 240, 240, 255})
	tuned.MaxSpeed = 600
	tuned.SteerRate = 2.8
	got := tuned.Tuning(base)
	assert.Equal(t, 600.0, got.MaxSpeed)
	assert.Equal(t, 2.8, got.SteerRate)
	assert.Equal(t, base.Accel, got.Accel)
	assert.Equal(t, "Nissan Silvia", tuned.Name())
}
