// Package scene holds the objects drawn each frame.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Drawable is anything the renderer can draw from a camera.
type Drawable interface {
	Draw(view, projection mgl32.Mat4)
	Destroy()
}

// Scene is an ordered list of drawables.
type Scene struct {
	objects []Drawable
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends a drawable.
func (s *Scene) Add(d Drawable) {
	s.objects = append(s.objects, d)
}

// Len returns the number of drawables.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Draw draws every object in insertion order.
func (s *Scene) Draw(view, projection mgl32.Mat4) {
	for _, o := range s.objects {
		o.Draw(view, projection)
	}
}

// Destroy releases every object.
func (s *Scene) Destroy() {
	for _, o := range s.objects {
		o.Destroy()
	}
	s.objects = nil
}
