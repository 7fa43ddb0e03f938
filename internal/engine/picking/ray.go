// Package picking casts rays from screen positions into the scene.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are coordinates in the same units as viewportW/H, origin
// top-left. invViewProj is the inverse of projection * view.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // Flip Y

	// Unproject near and far points
	nearWorld := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, -1}, invViewProj)
	farWorld := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, 1}, invViewProj)

	dir := farWorld.Sub(nearWorld)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: nearWorld, Direction: dir}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	// Ray: P = Origin + t * Direction
	// Plane: Y = planeY
	if math.Abs(float64(r.Direction.Y())) < 0.001 {
		return 0, 0, false // Ray parallel to plane
	}

	t := (planeY - r.Origin.Y()) / r.Direction.Y()
	if t < 0 {
		return 0, 0, false // Intersection behind ray origin
	}

	p := r.At(t)
	return p.X(), p.Z(), true
}

// IntersectSurface finds where the ray meets a height field y = height(x, z)
// by repeatedly intersecting the horizontal plane at the last sampled
// height. It converges for surfaces that are shallow relative to the ray
// angle, which holds for water viewed from above.
func (r Ray) IntersectSurface(height func(x, z float32) float32, iterations int) (mgl32.Vec3, bool) {
	var y float32
	var x, z float32
	for i := 0; i < max(iterations, 1); i++ {
		var ok bool
		x, z, ok = r.IntersectPlaneY(y)
		if !ok {
			return mgl32.Vec3{}, false
		}
		y = height(x, z)
	}
	return mgl32.Vec3{x, y, z}, true
}
