package track

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Minimum outer radii, keep the oval drivable on tiny viewports
const (
	MinOuterRX = 220.0
	MinOuterRY = 140.0

	// Extra inset between the margin and the outer ellipse
	edgeInset = 40.0
)

// Track represents an oval road: the annulus between two concentric ellipses
type Track struct {
	Center  mgl64.Vec2
	OuterRX float64
	OuterRY float64
	InnerRX float64
	InnerRY float64

	// Viewport the radii were derived from
	Width  float64
	Height float64
}

// New builds the track for a viewport. Radii are floored so the inner
// ellipse always sits strictly inside the outer one.
func New(viewportWidth, viewportHeight, margin, innerOffset float64) *Track {
	rx := math.Max(MinOuterRX, viewportWidth/2-margin-edgeInset)
	ry := math.Max(MinOuterRY, viewportHeight/2-margin-edgeInset)
	return &Track{
		Center:  mgl64.Vec2{viewportWidth / 2, viewportHeight / 2},
		OuterRX: rx,
		OuterRY: ry,
		InnerRX: rx - innerOffset,
		InnerRY: ry - innerOffset,
		Width:   viewportWidth,
		Height:  viewportHeight,
	}
}

// Contains reports whether p lies on the road: inside (or on) the outer
// ellipse and outside (or on) the inner one
func (t *Track) Contains(p mgl64.Vec2) bool {
	return normalized(p, t.Center, t.OuterRX, t.OuterRY) <= 1 &&
		normalized(p, t.Center, t.InnerRX, t.InnerRY) >= 1
}

// Matches reports whether the track was built for this viewport size
func (t *Track) Matches(viewportWidth, viewportHeight float64) bool {
	return t.Width == viewportWidth && t.Height == viewportHeight
}

// Spawn returns the start pose: on the road midline at the bottom of the oval,
// facing +x
func (t *Track) Spawn() (mgl64.Vec2, float64) {
	return mgl64.Vec2{t.Center.X(), t.Center.Y() + (t.OuterRY+t.InnerRY)/2}, 0
}

// Midline returns n points around the centre line of the road, used for
// drawing the dashed divider
func (t *Track) Midline(n int) []mgl64.Vec2 {
	rx, ry := t.midRadii()
	points := make([]mgl64.Vec2, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, mgl64.Vec2{
			t.Center.X() + rx*math.Cos(a),
			t.Center.Y() + ry*math.Sin(a),
		})
	}
	return points
}

// Remap carries p from another track onto this one. The point keeps its
// angle around the centre and is scaled by the ratio of the midline radii.
// If that still lands off the road it is moved onto the midline.
func (t *Track) Remap(from *Track, p mgl64.Vec2) mgl64.Vec2 {
	d := p.Sub(from.Center)
	fx, fy := from.midRadii()
	tx, ty := t.midRadii()

	q := t.Center.Add(mgl64.Vec2{d.X() / fx * tx, d.Y() / fy * ty})
	if t.Contains(q) {
		return q
	}
	a := math.Atan2(d.Y()/fy, d.X()/fx)
	return t.Center.Add(mgl64.Vec2{tx * math.Cos(a), ty * math.Sin(a)})
}

func (t *Track) midRadii() (float64, float64) {
	return (t.OuterRX + t.InnerRX) / 2, (t.OuterRY + t.InnerRY) / 2
}

// normalized is the squared ellipse distance of p: 1 on the ellipse itself
func normalized(p, center mgl64.Vec2, rx, ry float64) float64 {
	d := p.Sub(center)
	nx := d.X() / rx
	ny := d.Y() / ry
	return nx*nx + ny*ny
}
