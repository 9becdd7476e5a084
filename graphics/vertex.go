package graphics

import (
	"github.com/teal3d/teal/validation"
)

var vertexArrayLifecycle = vertexLifecycle{
	kind: "vertex array",
	generate: func(v *validation.Layer, dst []uint32) {
		v.Do(func() { v.Driver().GenVertexArrays(dst) })
	},
	destroy: func(v *validation.Layer, handles []uint32) {
		v.Do(func() { v.Driver().DeleteVertexArrays(handles) })
	},
}

var bufferLifecycle = vertexLifecycle{
	kind: "buffer",
	generate: func(v *validation.Layer, dst []uint32) {
		v.Do(func() { v.Driver().GenBuffers(dst) })
	},
	destroy: func(v *validation.Layer, handles []uint32) {
		v.Do(func() { v.Driver().DeleteBuffers(handles) })
	},
}

// NewVertexArrays generates n vertex array objects in one driver call.
func NewVertexArrays(v *validation.Layer, n int) *VertexResource {
	return newVertexResource(v, n, vertexArrayLifecycle)
}

// NewVertexArray generates a single vertex array object.
func NewVertexArray(v *validation.Layer) *VertexResource {
	return NewVertexArrays(v, 1)
}

// NewBuffers generates n buffer objects in one driver call.
func NewBuffers(v *validation.Layer, n int) *VertexResource {
	return newVertexResource(v, n, bufferLifecycle)
}

// NewBuffer generates a single buffer object.
func NewBuffer(v *validation.Layer) *VertexResource {
	return NewBuffers(v, 1)
}
