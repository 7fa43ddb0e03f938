// Package water provides the water surface: grid geometry, wave
// displacement, normal estimation and elevation-based coloring.
package water

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane holds grid geometry ready for GPU upload. Only positions are
// generated; normals come from the displaced surface in the vertex stage.
type Plane struct {
	Vertices  []float32 // Flat array: x,y,z per vertex
	Indices   []uint32  // Two triangles per segment
	Width     float32
	Height    float32
	SegmentsX int
	SegmentsY int
}

// BuildPlane creates a width x height plane in the XY plane centered on the
// origin, subdivided into segX x segY quads. Rows run from +Y to -Y.
func BuildPlane(width, height float32, segX, segY int) (*Plane, error) {
	if segX < 1 || segY < 1 {
		return nil, fmt.Errorf("plane segments must be positive, got %dx%d", segX, segY)
	}

	gridX1 := segX + 1
	gridY1 := segY + 1
	segW := width / float32(segX)
	segH := height / float32(segY)

	vertices := make([]float32, 0, gridX1*gridY1*3)
	for iy := 0; iy < gridY1; iy++ {
		y := float32(iy)*segH - height/2
		for ix := 0; ix < gridX1; ix++ {
			x := float32(ix)*segW - width/2
			vertices = append(vertices, x, -y, 0)
		}
	}

	indices := make([]uint32, 0, segX*segY*6)
	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := uint32(ix + gridX1*iy)
			b := uint32(ix + gridX1*(iy+1))
			c := uint32(ix + 1 + gridX1*(iy+1))
			d := uint32(ix + 1 + gridX1*iy)
			indices = append(indices, a, b, d, b, c, d)
		}
	}

	return &Plane{
		Vertices:  vertices,
		Indices:   indices,
		Width:     width,
		Height:    height,
		SegmentsX: segX,
		SegmentsY: segY,
	}, nil
}

// VertexCount returns the number of vertices in the plane.
func (p *Plane) VertexCount() int {
	return len(p.Vertices) / 3
}

// ModelMatrix lays the plane flat so that the grid spans X and Z.
func ModelMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(-math.Pi / 2)
}

// DefaultSize is the plane edge length in world units.
const DefaultSize = 2.0

// DefaultSegments is the grid resolution per axis.
const DefaultSegments = 512
