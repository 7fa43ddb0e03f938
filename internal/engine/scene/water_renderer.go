package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ragingsea/internal/engine/scene/shaders"
	"github.com/Faultbox/ragingsea/internal/engine/shader"
	"github.com/Faultbox/ragingsea/internal/engine/water"
)

// WaterMesh draws the displaced water grid.
type WaterMesh struct {
	program  *shader.Program
	uniforms *water.Uniforms
	model    mgl32.Mat4

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewWaterMesh compiles the water shaders and uploads the plane. The mesh
// reads from uniforms on every draw.
func NewWaterMesh(plane *water.Plane, uniforms *water.Uniforms) (*WaterMesh, error) {
	program, err := shader.NewProgram(shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}

	wm := &WaterMesh{
		program:  program,
		uniforms: uniforms,
		model:    water.ModelMatrix(),
	}
	wm.upload(plane)
	return wm, nil
}

func (wm *WaterMesh) upload(plane *water.Plane) {
	gl.GenVertexArrays(1, &wm.vao)
	gl.BindVertexArray(wm.vao)

	gl.GenBuffers(1, &wm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, wm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(plane.Vertices)*4, unsafe.Pointer(&plane.Vertices[0]), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &wm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, wm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(plane.Indices)*4, unsafe.Pointer(&plane.Indices[0]), gl.STATIC_DRAW)
	wm.indexCount = int32(len(plane.Indices))

	gl.BindVertexArray(0)
}

// sync uploads every uniform from the shared state. Called right before the
// draw so tuning changes take effect on the next frame.
func (wm *WaterMesh) sync(view, projection mgl32.Mat4) {
	p := wm.program
	u := wm.uniforms

	p.SetMat4("uModel", wm.model)
	p.SetMat4("uView", view)
	p.SetMat4("uProjection", projection)

	p.SetFloat("uTime", u.Time)

	p.SetFloat("uBigWavesElevation", u.Params.BigWavesElevation)
	p.SetVec2("uBigWavesFrequency", u.Params.BigWavesFrequency)
	p.SetFloat("uBigWavesSpeed", u.Params.BigWavesSpeed)

	p.SetFloat("uSmallWavesElevation", u.Params.SmallWavesElevation)
	p.SetFloat("uSmallWavesFrequency", u.Params.SmallWavesFrequency)
	p.SetFloat("uSmallWavesSpeed", u.Params.SmallWavesSpeed)
	p.SetInt("uSmallIterations", int32(min(u.Params.SmallIterations, water.MaxSmallIterations)))

	p.SetVec3("uDepthColor", u.Params.DepthColor.Vec3())
	p.SetVec3("uSurfaceColor", u.Params.SurfaceColor.Vec3())
	p.SetFloat("uColorOffset", u.Params.ColorOffset)
	p.SetFloat("uColorMultiplier", u.Params.ColorMultiplier)

	p.SetBool("uLighting", u.Lighting.Enabled)
	p.SetVec3("uLightDirection", u.Lighting.Direction)
	p.SetFloat("uLightAmbient", u.Lighting.Ambient)
	p.SetFloat("uLightDiffuse", u.Lighting.Diffuse)
}

// Draw renders the water from the given camera matrices.
func (wm *WaterMesh) Draw(view, projection mgl32.Mat4) {
	if wm.vao == 0 {
		return
	}

	wm.program.Use()
	wm.sync(view, projection)

	// Both faces are visible when the camera dips under the surface.
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(wm.vao)
	gl.DrawElements(gl.TRIANGLES, wm.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (wm *WaterMesh) Destroy() {
	if wm.vao != 0 {
		gl.DeleteVertexArrays(1, &wm.vao)
		wm.vao = 0
	}
	if wm.vbo != 0 {
		gl.DeleteBuffers(1, &wm.vbo)
		wm.vbo = 0
	}
	if wm.ebo != 0 {
		gl.DeleteBuffers(1, &wm.ebo)
		wm.ebo = 0
	}
	if wm.program != nil {
		wm.program.Delete()
	}
}
