package graphics

import (
	"github.com/teal3d/teal/core"
	"github.com/teal3d/teal/driver"
	"github.com/teal3d/teal/model"
	"github.com/teal3d/teal/validation"
)

// Triangle owns the vertex array and vertex buffer of the demo
// triangle, with the position attribute bound at location 0.
type Triangle struct {
	v   *validation.Layer
	vao *VertexResource
	vbo *VertexResource
}

// NewTriangle uploads the triangle mesh into a fresh vertex array and
// buffer pair.
func NewTriangle(v *validation.Layer) *Triangle {
	t := &Triangle{v: v}
	d := v.Driver()

	t.vao = NewVertexArray(v)
	v.Do(func() { d.BindVertexArray(t.vao.Handle().Index()) })

	t.vbo = NewBuffer(v)
	v.Do(func() { d.BindBuffer(driver.ARRAY_BUFFER, t.vbo.Handle().Index()) })

	data := core.Float32Bytes(model.Positions(model.TriangleVertices()))
	v.Do(func() { d.BufferData(driver.ARRAY_BUFFER, data, driver.STATIC_DRAW) })

	v.Do(func() { d.VertexAttribPointer(0, 3, driver.FLOAT, false, 3*4, 0) })
	v.Do(func() { d.EnableVertexAttribArray(0) })

	return t
}

// Draw issues the triangle draw call.
func (t *Triangle) Draw() {
	d := t.v.Driver()
	t.v.Do(func() { d.BindVertexArray(t.vao.Handle().Index()) })
	t.v.Do(func() { d.DrawArrays(driver.TRIANGLES, 0, 3) })
}

// Destroy releases the buffer and vertex array.
func (t *Triangle) Destroy() {
	t.vbo.Destroy()
	t.vao.Destroy()
}
