package water

// Uniforms is the parameter state shared by the render loop, the tuning
// panel and the water mesh. It is owned by the application and passed by
// pointer.
//
// Writers: Time belongs to the render loop. Params and Lighting belong to
// the tuning panel (and to config loading before the loop starts). The mesh
// only reads, once per draw.
type Uniforms struct {
	Time     float32
	Params   Params
	Lighting Lighting
}

// NewUniforms returns uniforms at time zero.
func NewUniforms(p Params, l Lighting) *Uniforms {
	return &Uniforms{Params: p, Lighting: l}
}

// Elevation samples the surface at the current time.
func (u *Uniforms) Elevation(x, z float32) float32 {
	return u.Params.Elevation(x, z, u.Time)
}
