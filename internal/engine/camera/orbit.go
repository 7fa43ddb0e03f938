package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const polarEpsilon = 1e-6

// OrbitControls rotates, zooms and pans a camera around its target. Input
// accumulates into pending deltas; Update applies them. With damping enabled
// each Update applies DampingFactor of what is pending, giving inertia.
type OrbitControls struct {
	camera *Perspective

	EnableDamping bool
	DampingFactor float32

	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32

	MinDistance float32
	MaxDistance float32

	// Polar angle limits measured from +Y, radians.
	MinPolarAngle float32
	MaxPolarAngle float32

	deltaTheta float32
	deltaPhi   float32
	scale      float32
	panOffset  mgl32.Vec3
}

// NewOrbitControls attaches controls to a camera.
func NewOrbitControls(c *Perspective) *OrbitControls {
	return &OrbitControls{
		camera:        c,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MinDistance:   0,
		MaxDistance:   float32(math.Inf(1)),
		MinPolarAngle: 0,
		MaxPolarAngle: math.Pi,
		scale:         1,
	}
}

// Rotate queues a rotation from a pointer drag of (dx, dy) pixels on a
// viewport of the given height. A drag of the full height is one turn.
func (o *OrbitControls) Rotate(dx, dy float32, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	h := float32(viewportHeight)
	o.deltaTheta -= 2 * math.Pi * dx / h * o.RotateSpeed
	o.deltaPhi -= 2 * math.Pi * dy / h * o.RotateSpeed
}

// RotateAngles queues a rotation in radians.
func (o *OrbitControls) RotateAngles(theta, phi float32) {
	o.deltaTheta += theta
	o.deltaPhi += phi
}

// Zoom queues a dolly step. Positive steps move the camera closer.
func (o *OrbitControls) Zoom(steps float32) {
	factor := float32(math.Pow(0.95, float64(o.ZoomSpeed*abs(steps))))
	if steps > 0 {
		o.scale *= factor
	} else if steps < 0 {
		o.scale /= factor
	}
}

// Pan queues a target translation from a drag of (dx, dy) pixels.
func (o *OrbitControls) Pan(dx, dy float32, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	c := o.camera
	offset := c.Position.Sub(c.Target)
	dist := offset.Len() * float32(math.Tan(float64(mgl32.DegToRad(c.FOV/2))))

	forward := offset.Normalize()
	right := c.Up.Cross(forward).Normalize()
	up := forward.Cross(right)

	h := float32(viewportHeight)
	o.panOffset = o.panOffset.
		Sub(right.Mul(2 * dx * dist / h * o.PanSpeed)).
		Add(up.Mul(2 * dy * dist / h * o.PanSpeed))
}

// Update applies pending input to the camera. It returns true if the camera moved.
func (o *OrbitControls) Update() bool {
	c := o.camera
	offset := c.Position.Sub(c.Target)

	radius := offset.Len()
	var theta, phi float32
	if radius > 0 {
		theta = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
		phi = float32(math.Acos(float64(clamp(offset.Y()/radius, -1, 1))))
	}

	if o.EnableDamping {
		theta += o.deltaTheta * o.DampingFactor
		phi += o.deltaPhi * o.DampingFactor
	} else {
		theta += o.deltaTheta
		phi += o.deltaPhi
	}

	phi = clamp(phi, o.MinPolarAngle, o.MaxPolarAngle)
	phi = clamp(phi, polarEpsilon, math.Pi-polarEpsilon)

	radius = clamp(radius*o.scale, o.MinDistance, o.MaxDistance)

	if o.EnableDamping {
		c.Target = c.Target.Add(o.panOffset.Mul(o.DampingFactor))
	} else {
		c.Target = c.Target.Add(o.panOffset)
	}

	sinPhi := float32(math.Sin(float64(phi)))
	newOffset := mgl32.Vec3{
		radius * sinPhi * float32(math.Sin(float64(theta))),
		radius * float32(math.Cos(float64(phi))),
		radius * sinPhi * float32(math.Cos(float64(theta))),
	}
	prev := c.Position
	c.Position = c.Target.Add(newOffset)

	if o.EnableDamping {
		keep := 1 - o.DampingFactor
		o.deltaTheta *= keep
		o.deltaPhi *= keep
		o.panOffset = o.panOffset.Mul(keep)
	} else {
		o.deltaTheta = 0
		o.deltaPhi = 0
		o.panOffset = mgl32.Vec3{}
	}
	o.scale = 1

	return c.Position.Sub(prev).LenSqr() > 1e-12
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
