// Package lighting converts between sun angles and light directions.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts azimuth and elevation angles in degrees to a unit
// vector pointing towards the sun. Azimuth rotates around +Y starting at +Z;
// elevation is measured up from the horizon.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	az := float64(mgl32.DegToRad(azimuth))
	el := float64(mgl32.DegToRad(elevation))

	x := float32(math.Cos(el) * math.Sin(az))
	y := float32(math.Sin(el))
	z := float32(math.Cos(el) * math.Cos(az))

	return mgl32.Vec3{x, y, z}
}

// SunAngles is the inverse of SunDirection. Azimuth is in [0, 360). A zero
// vector yields (0, 0).
func SunAngles(dir mgl32.Vec3) (azimuth, elevation float32) {
	if dir.Len() == 0 {
		return 0, 0
	}
	d := dir.Normalize()
	el := math.Asin(float64(mgl32.Clamp(d.Y(), -1, 1)))
	az := math.Atan2(float64(d.X()), float64(d.Z()))
	if az < 0 {
		az += 2 * math.Pi
	}
	return mgl32.RadToDeg(float32(az)), mgl32.RadToDeg(float32(el))
}
