package model_test

import (
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/teal3d/teal/model"
)

func TestPositions(t *testing.T) {
	vertices := []model.Vertex{
		{Pos: glm.Vec3{1, 2, 3}, Color: glm.Vec4{1, 0, 0, 1}},
		{Pos: glm.Vec3{4, 5, 6}, Color: glm.Vec4{0, 1, 0, 1}},
	}

	got := model.Positions(vertices)
	want := []float32{1, 2, 3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInterleave(t *testing.T) {
	vertices := []model.Vertex{
		{Pos: glm.Vec3{1, 2, 3}, Color: glm.Vec4{0.1, 0.2, 0.3, 1}},
	}

	got := model.Interleave(vertices)
	want := []float32{1, 2, 3, 0.1, 0.2, 0.3, 1}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTriangleVertices(t *testing.T) {
	vertices := model.TriangleVertices()
	if len(vertices) != 3 {
		t.Fatalf("%d vertices, want 3", len(vertices))
	}
	for i, vert := range vertices {
		if vert.Pos.Z() != 0 {
			t.Errorf("vertex %d not in the z=0 plane", i)
		}
	}
}
