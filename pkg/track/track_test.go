package track

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNewRadii(t *testing.T) {
	t.Parallel()

	t.Run("large viewport", func(t *testing.T) {
		t.Parallel()
		tr := New(1024, 600, 40, 120)
		assert.Equal(t, mgl64.Vec2{512, 300}, tr.Center)
		assert.Equal(t, 432.0, tr.OuterRX) // 512 - 40 - 40
		assert.Equal(t, 220.0, tr.OuterRY) // 300 - 40 - 40
		assert.Equal(t, 312.0, tr.InnerRX)
		assert.Equal(t, 100.0, tr.InnerRY)
	})

	t.Run("tiny viewport uses floors", func(t *testing.T) {
		t.Parallel()
		tr := New(100, 100, 40, 120)
		assert.Equal(t, MinOuterRX, tr.OuterRX)
		assert.Equal(t, MinOuterRY, tr.OuterRY)
		assert.Less(t, tr.InnerRX, tr.OuterRX)
		assert.Less(t, tr.InnerRY, tr.OuterRY)
		assert.Greater(t, tr.InnerRY, 0.0)
	})
}

func TestContains(t *testing.T) {
	t.Parallel()

	tr := New(1024, 600, 40, 120)
	cases := []struct {
		name string
		p    mgl64.Vec2
		want bool
	}{
		{"center is infield", mgl64.Vec2{512, 300}, false},
		{"road midline bottom", mgl64.Vec2{512, 300 + 160}, true},
		{"road midline right", mgl64.Vec2{512 + 372, 300}, true},
		{"on outer ellipse", mgl64.Vec2{512 + 432, 300}, true},
		{"on inner ellipse", mgl64.Vec2{512, 300 - 100}, true},
		{"just outside outer", mgl64.Vec2{512 + 433, 300}, false},
		{"viewport corner", mgl64.Vec2{0, 0}, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tr.Contains(tc.p))
		})
	}
}

func TestSpawnIsOnRoad(t *testing.T) {
	t.Parallel()

	for _, size := range [][2]float64{{1024, 600}, {640, 480}, {100, 100}, {1920, 1080}} {
		tr := New(size[0], size[1], 40, 120)
		pos, heading := tr.Spawn()
		assert.True(t, tr.Contains(pos), "spawn off road for %v", size)
		assert.Equal(t, 0.0, heading)
	}
}

func TestMidline(t *testing.T) {
	t.Parallel()

	tr := New(1024, 600, 40, 120)
	points := tr.Midline(64)
	assert.Len(t, points, 64)
	for _, p := range points {
		assert.True(t, tr.Contains(p))
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	tr := New(800, 600, 40, 120)
	assert.True(t, tr.Matches(800, 600))
	assert.False(t, tr.Matches(801, 600))
}

func TestRemap(t *testing.T) {
	t.Parallel()

	small := New(1024, 600, 40, 120)
	big := New(1920, 1080, 40, 120)

	t.Run("midline maps to midline", func(t *testing.T) {
		t.Parallel()
		for _, p := range small.Midline(24) {
			q := big.Remap(small, p)
			assert.True(t, big.Contains(q), "%v -> %v", p, q)
			// normalized against the target midline stays at 1
			rx, ry := big.midRadii()
			assert.InDelta(t, 1.0, normalized(q, big.Center, rx, ry), 1e-9)
		}
	})

	t.Run("spawn stays on road both ways", func(t *testing.T) {
		t.Parallel()
		p, _ := small.Spawn()
		assert.True(t, big.Contains(big.Remap(small, p)))
		q, _ := big.Spawn()
		assert.True(t, small.Contains(small.Remap(big, q)))
	})

	t.Run("off road points land on the midline", func(t *testing.T) {
		t.Parallel()
		for _, p := range []mgl64.Vec2{small.Center, {0, 0}, {1024, 300}, {512, 599}} {
			q := big.Remap(small, p)
			assert.True(t, big.Contains(q), "%v -> %v", p, q)
		}
	})
}
