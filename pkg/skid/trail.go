// Package skid keeps the fading tyre marks left behind the car.
package skid

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MaxMarks bounds the trail, the oldest marks are dropped first
	MaxMarks = 1500

	// DefaultLife is how long a drift mark lasts in seconds
	DefaultLife = 1.2
	// CollisionLife is how long a wall-hit mark lasts in seconds.
	// Shorter than DefaultLife even though the mark is larger.
	CollisionLife = 0.8

	baseWidth       = 4.0
	widthJitter     = 2.0
	collisionWidth  = 10.0
	collisionJitter = 4.0
)

// Mark represents a single tyre mark
type Mark struct {
	Pos     mgl64.Vec2
	Life    float64 // Remaining life in seconds
	MaxLife float64
	Width   float64
	Alpha   float64 // Life / MaxLife, 0 to 1
}

// Trail is an ordered, bounded collection of marks, oldest first
type Trail struct {
	marks []Mark
	rng   *rand.Rand
}

// NewTrail creates an empty trail whose width jitter is driven by seed
func NewTrail(seed int64) *Trail {
	return &Trail{
		marks: make([]Mark, 0, 256),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Add appends a mark with the given life. The width is base plus up to
// jitter extra, drawn from the trail's random source.
func (t *Trail) Add(pos mgl64.Vec2, life, base, jitter float64) {
	t.marks = append(t.marks, Mark{
		Pos:     pos,
		Life:    life,
		MaxLife: life,
		Width:   base + t.rng.Float64()*jitter,
		Alpha:   1,
	})

	if over := len(t.marks) - MaxMarks; over > 0 {
		n := copy(t.marks, t.marks[over:])
		t.marks = t.marks[:n]
	}
}

// AddDrift appends a standard drift mark
func (t *Trail) AddDrift(pos mgl64.Vec2) {
	t.Add(pos, DefaultLife, baseWidth, widthJitter)
}

// AddCollision appends the large mark left by a wall hit
func (t *Trail) AddCollision(pos mgl64.Vec2) {
	t.Add(pos, CollisionLife, collisionWidth, collisionJitter)
}

// Tick ages every mark by dt, refreshes its alpha and drops expired marks
func (t *Trail) Tick(dt float64) {
	alive := t.marks[:0]
	for _, m := range t.marks {
		m.Life -= dt
		if m.Life <= 0 {
			continue
		}
		m.Alpha = math.Max(0, m.Life/m.MaxLife)
		alive = append(alive, m)
	}
	// clear the tail so dropped marks don't linger in the backing array
	for i := len(alive); i < len(t.marks); i++ {
		t.marks[i] = Mark{}
	}
	t.marks = alive
}

// Marks returns the live marks, oldest first. The slice must not be modified.
func (t *Trail) Marks() []Mark {
	return t.marks
}

// Len returns the number of live marks
func (t *Trail) Len() int {
	return len(t.marks)
}

// Clear removes every mark
func (t *Trail) Clear() {
	t.marks = t.marks[:0]
}
