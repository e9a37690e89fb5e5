// Package viewport owns the interactive 3D presentation: an orbit camera,
// the projection of the retained scene into screen space, and the
// pointer-driven module drag protocol.
package viewport

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/surmesure/configurator/internal/scene"
)

const (
	minPitch    = -85.0
	maxPitch    = 85.0
	minDistance = 500.0
	maxDistance = 30000.0
	fovDeg      = 45.0

	// frameFactor places the camera proportionally to the model extent
	// after a rebuild; generous enough that nothing clips.
	frameFactor = 1.8
)

// Camera is an orbit-style manipulator around a target point.
type Camera struct {
	Target   r3.Vec
	Distance float64
	YawDeg   float64
	PitchDeg float64
}

// NewCamera returns a camera with a pleasant three-quarter starting angle.
func NewCamera() *Camera {
	return &Camera{Distance: 4000, YawDeg: 30, PitchDeg: 20}
}

// Orbit rotates the camera around the target, clamping pitch so the view
// never flips over the pole.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.YawDeg += dYaw
	c.PitchDeg += dPitch
	if c.PitchDeg < minPitch {
		c.PitchDeg = minPitch
	}
	if c.PitchDeg > maxPitch {
		c.PitchDeg = maxPitch
	}
}

// Zoom scales the orbit distance, clamped to a sane range.
func (c *Camera) Zoom(factor float64) {
	c.Distance *= factor
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
	if c.Distance > maxDistance {
		c.Distance = maxDistance
	}
}

// Frame re-targets the camera at the model's geometric center and backs
// off proportionally to its bounding extent.
func (c *Camera) Frame(a *scene.Arena) {
	if a.Len() == 0 {
		return
	}
	c.Target = a.Center()
	d := a.Extent() * frameFactor
	if d < minDistance {
		d = minDistance
	}
	c.Distance = d
}

// Position returns the camera's world position from its orbit parameters.
func (c *Camera) Position() r3.Vec {
	yaw := c.YawDeg * math.Pi / 180
	pitch := c.PitchDeg * math.Pi / 180
	return r3.Add(c.Target, r3.Vec{
		X: c.Distance * math.Cos(pitch) * math.Sin(yaw),
		Y: c.Distance * math.Sin(pitch),
		Z: c.Distance * math.Cos(pitch) * math.Cos(yaw),
	})
}

// Project maps a world point to screen coordinates for a viewport of the
// given pixel size. ok is false for points at or behind the eye plane.
func (c *Camera) Project(p r3.Vec, width, height float64) (x, y, depth float64, ok bool) {
	yaw := c.YawDeg * math.Pi / 180
	pitch := c.PitchDeg * math.Pi / 180

	v := r3.Sub(p, c.Position())

	// Rotate into view space: yaw around Y, then pitch around X.
	vx := v.X*math.Cos(-yaw) - v.Z*math.Sin(-yaw)
	vz := v.X*math.Sin(-yaw) + v.Z*math.Cos(-yaw)
	vy := v.Y*math.Cos(-pitch) - vz*math.Sin(-pitch)
	vz = v.Y*math.Sin(-pitch) + vz*math.Cos(-pitch)

	depth = -vz
	if depth <= 1 {
		return 0, 0, depth, false
	}
	focal := height / (2 * math.Tan(fovDeg*math.Pi/360))
	x = width/2 + vx*focal/depth
	y = height/2 - vy*focal/depth
	return x, y, depth, true
}

// Scale returns the screen pixels per world mm at the given depth.
func (c *Camera) Scale(depth, height float64) float64 {
	if depth <= 1 {
		return 0
	}
	focal := height / (2 * math.Tan(fovDeg*math.Pi/360))
	return focal / depth
}
