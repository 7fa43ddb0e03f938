package water

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NormalShift is the finite-difference offset used to estimate normals.
const NormalShift = 0.01

// MaxSmallIterations bounds the small-wave noise layers.
const MaxSmallIterations = 5

// Params holds the tunable wave and color constants. No combination is
// rejected; flat or chaotic surfaces are valid output.
type Params struct {
	BigWavesElevation float32    `yaml:"big_waves_elevation"`
	BigWavesFrequency mgl32.Vec2 `yaml:"big_waves_frequency"`
	BigWavesSpeed     float32    `yaml:"big_waves_speed"`

	SmallWavesElevation float32 `yaml:"small_waves_elevation"`
	SmallWavesFrequency float32 `yaml:"small_waves_frequency"`
	SmallWavesSpeed     float32 `yaml:"small_waves_speed"`
	SmallIterations     int     `yaml:"small_iterations"`

	DepthColor      Color   `yaml:"depth_color"`
	SurfaceColor    Color   `yaml:"surface_color"`
	ColorOffset     float32 `yaml:"color_offset"`
	ColorMultiplier float32 `yaml:"color_multiplier"`
}

// DefaultParams returns the stock raging-sea look.
func DefaultParams() Params {
	return Params{
		BigWavesElevation: 0.2,
		BigWavesFrequency: mgl32.Vec2{4, 1.5},
		BigWavesSpeed:     0.75,

		SmallWavesElevation: 0.15,
		SmallWavesFrequency: 3,
		SmallWavesSpeed:     0.2,
		SmallIterations:     4,

		DepthColor:      MustParseHex("#ff4000"),
		SurfaceColor:    MustParseHex("#151c37"),
		ColorOffset:     0.925,
		ColorMultiplier: 1,
	}
}

// BigWaves returns the sine layer at (x, z) and time t.
func (p *Params) BigWaves(x, z, t float32) float32 {
	phase := float64(t * p.BigWavesSpeed)
	sx := math.Sin(float64(x*p.BigWavesFrequency[0]) + phase)
	sz := math.Sin(float64(z*p.BigWavesFrequency[1]) + phase)
	return float32(sx*sz) * p.BigWavesElevation
}

// SmallWaves returns the noise layer at (x, z) and time t. It is never
// positive: each iteration carves |noise| out of the surface, and iteration
// i contributes 1/(i+1) of the amplitude.
func (p *Params) SmallWaves(x, z, t float32) float32 {
	n := p.SmallIterations
	if n > MaxSmallIterations {
		n = MaxSmallIterations
	}
	var sum float64
	nz := float64(t * p.SmallWavesSpeed)
	for i := 1; i <= n; i++ {
		f := float64(p.SmallWavesFrequency) * float64(i)
		sample := Noise3(float64(x)*f, float64(z)*f, nz)
		sum -= math.Abs(sample) * float64(p.SmallWavesElevation) / float64(i)
	}
	return float32(sum)
}

// Elevation returns the vertical displacement at (x, z) and time t.
func (p *Params) Elevation(x, z, t float32) float32 {
	return p.BigWaves(x, z, t) + p.SmallWaves(x, z, t)
}

// Normal estimates the displaced surface normal at (x, z) by sampling the
// elevation at two neighbours along +X and -Z.
func (p *Params) Normal(x, z, t float32) mgl32.Vec3 {
	pos := mgl32.Vec3{x, p.Elevation(x, z, t), z}

	ax, bz := x+NormalShift, z-NormalShift
	a := mgl32.Vec3{ax, p.Elevation(ax, z, t), z}
	b := mgl32.Vec3{x, p.Elevation(x, bz, t), bz}

	toA := a.Sub(pos).Normalize()
	toB := b.Sub(pos).Normalize()
	return toA.Cross(toB).Normalize()
}

// ColorAt returns the surface color for the given elevation.
func (p *Params) ColorAt(elevation float32) Color {
	return Mix(p.DepthColor, p.SurfaceColor, MixFactor(elevation, p.ColorOffset, p.ColorMultiplier))
}

// Lighting is a single directional light applied to the mixed color.
type Lighting struct {
	Enabled   bool       `yaml:"enabled"`
	Direction mgl32.Vec3 `yaml:"direction"` // towards the light
	Ambient   float32    `yaml:"ambient"`
	Diffuse   float32    `yaml:"diffuse"`
}

// DefaultLighting returns a soft light from the side.
func DefaultLighting() Lighting {
	return Lighting{
		Enabled:   false,
		Direction: mgl32.Vec3{-1, 0.5, 0},
		Ambient:   0.6,
		Diffuse:   0.4,
	}
}

// Shade applies Lambert lighting for the given normal. A disabled light
// returns c unchanged.
func (l Lighting) Shade(c Color, normal mgl32.Vec3) Color {
	if !l.Enabled {
		return c
	}
	ndl := normal.Normalize().Dot(l.Direction.Normalize())
	if ndl < 0 {
		ndl = 0
	}
	return c.Scale(l.Ambient + l.Diffuse*ndl)
}
