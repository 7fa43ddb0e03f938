package tweak

import (
	"github.com/Faultbox/ragingsea/internal/engine/water"
)

// Knob keys for the water parameters.
const (
	KeyBigWavesElevation   = "bigWavesElevation"
	KeyBigWavesFrequencyX  = "bigWavesFrequencyX"
	KeyBigWavesFrequencyY  = "bigWavesFrequencyY"
	KeyBigWavesSpeed       = "bigWavesSpeed"
	KeySmallWavesElevation = "smallWavesElevation"
	KeySmallWavesFrequency = "smallWavesFrequency"
	KeySmallWavesSpeed     = "smallWavesSpeed"
	KeySmallIterations     = "smallIterations"
	KeyDepthColor          = "depthColor"
	KeySurfaceColor        = "surfaceColor"
	KeyColorOffset         = "colorOffset"
	KeyColorMultiplier     = "colorMultiplier"
	KeyLightAmbient        = "lightAmbient"
	KeyLightDiffuse        = "lightDiffuse"
)

const fine = 0.001

// BindWater adds a knob for every field of u except Time, which belongs
// to the render loop.
func BindWater(p *Panel, u *water.Uniforms) error {
	w := &u.Params
	l := &u.Lighting

	floats := []struct {
		key    string
		ptr    *float32
		lo, hi float32
	}{
		{KeyBigWavesElevation, &w.BigWavesElevation, 0, 1},
		{KeyBigWavesFrequencyX, &w.BigWavesFrequency[0], 0, 10},
		{KeyBigWavesFrequencyY, &w.BigWavesFrequency[1], 0, 10},
		{KeyBigWavesSpeed, &w.BigWavesSpeed, 0, 4},
		{KeySmallWavesElevation, &w.SmallWavesElevation, 0, 1},
		{KeySmallWavesFrequency, &w.SmallWavesFrequency, 0, 30},
		{KeySmallWavesSpeed, &w.SmallWavesSpeed, 0, 4},
	}
	for _, f := range floats {
		if _, err := p.AddFloat(f.key, f.ptr, f.lo, f.hi, fine); err != nil {
			return err
		}
	}

	if _, err := p.AddInt(KeySmallIterations, &w.SmallIterations, 0, water.MaxSmallIterations); err != nil {
		return err
	}
	if _, err := p.AddColor(KeyDepthColor, &w.DepthColor); err != nil {
		return err
	}
	if _, err := p.AddColor(KeySurfaceColor, &w.SurfaceColor); err != nil {
		return err
	}
	if _, err := p.AddFloat(KeyColorOffset, &w.ColorOffset, 0, 1, fine); err != nil {
		return err
	}
	if _, err := p.AddFloat(KeyColorMultiplier, &w.ColorMultiplier, 0, 10, fine); err != nil {
		return err
	}
	if _, err := p.AddFloat(KeyLightAmbient, &l.Ambient, 0, 1, 0.01); err != nil {
		return err
	}
	_, err := p.AddFloat(KeyLightDiffuse, &l.Diffuse, 0, 1, 0.01)
	return err
}
