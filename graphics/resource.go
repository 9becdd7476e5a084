package graphics

import (
	"github.com/teal3d/teal/validation"
)

// vertexLifecycle binds a vertex resource kind to its bulk driver
// acquire and release calls.
type vertexLifecycle struct {
	kind     string
	generate func(v *validation.Layer, dst []uint32)
	destroy  func(v *validation.Layer, handles []uint32)
}

func newVertexResource(v *validation.Layer, n int, life vertexLifecycle) *VertexResource {
	raw := make([]uint32, n)
	life.generate(v, raw)

	handles := make([]Handle, n)
	for i, h := range raw {
		handles[i] = Handle(h)
	}
	return &VertexResource{
		v:       v,
		life:    life,
		handles: handles,
	}
}

// VertexResource owns a fixed set of driver handles of a single kind,
// generated together with one bulk call. Ownership is exclusive: do
// not copy the struct, and call Destroy exactly when the resource goes
// out of use. Destroy releases every handle with one bulk call and
// later calls are no-ops.
type VertexResource struct {
	v       *validation.Layer
	life    vertexLifecycle
	handles []Handle

	released bool
}

// Handle returns the lone handle of a single-handle resource.
func (r *VertexResource) Handle() Handle {
	return r.handles[0]
}

// HandleAt returns the handle at idx.
func (r *VertexResource) HandleAt(idx int) Handle {
	return r.handles[idx]
}

// Len returns the number of owned handles.
func (r *VertexResource) Len() int {
	return len(r.handles)
}

// Kind names the wrapped resource kind.
func (r *VertexResource) Kind() string {
	return r.life.kind
}

// Destroy releases all owned handles. Safe to call more than once;
// only the first call reaches the driver.
func (r *VertexResource) Destroy() {
	if r.released {
		return
	}
	r.released = true

	raw := make([]uint32, len(r.handles))
	for i, h := range r.handles {
		raw[i] = h.Index()
	}
	r.life.destroy(r.v, raw)
}
