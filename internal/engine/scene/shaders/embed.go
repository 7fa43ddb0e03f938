// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WaterVertexShader displaces the grid and estimates normals.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader colors the surface by elevation.
//
//go:embed water.frag
var WaterFragmentShader string

// BlitVertexShader draws a fullscreen triangle.
//
//go:embed blit.vert
var BlitVertexShader string

// BlitFragmentShader copies the offscreen target to the screen with optional tone mapping.
//
//go:embed blit.frag
var BlitFragmentShader string
