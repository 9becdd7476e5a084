// Package model holds mesh data types shared between the resource
// wrappers and the demo.
package model

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Vertex is a mesh vertex
type Vertex struct {
	Pos   glm.Vec3
	Color glm.Vec4
}

// Uniform defines a model-view-projection object
type Uniform struct {
	Model      glm.Mat4
	View       glm.Mat4
	Projection glm.Mat4
}

// TriangleVertices returns the demo triangle, wound clockwise in
// normalized device coordinates.
func TriangleVertices() []Vertex {
	white := glm.Vec4{1, 1, 1, 1}
	return []Vertex{
		{Pos: glm.Vec3{-0.5, -0.5, 0}, Color: white},
		{Pos: glm.Vec3{0.5, -0.5, 0}, Color: white},
		{Pos: glm.Vec3{0, 0.5, 0}, Color: white},
	}
}

// Positions flattens the position attribute of vertices into the
// tightly packed layout vertex buffers expect.
func Positions(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*3)
	for _, vert := range vertices {
		out = append(out, vert.Pos.X(), vert.Pos.Y(), vert.Pos.Z())
	}
	return out
}

// Interleave flattens vertices into position-then-color order.
func Interleave(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*7)
	for _, vert := range vertices {
		out = append(out, vert.Pos.X(), vert.Pos.Y(), vert.Pos.Z())
		out = append(out, vert.Color.X(), vert.Color.Y(), vert.Color.Z(), vert.Color.W())
	}
	return out
}
