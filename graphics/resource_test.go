package graphics_test

import (
	"sort"
	"testing"

	"github.com/teal3d/teal/driver/drivertest"
	"github.com/teal3d/teal/graphics"
	"github.com/teal3d/teal/validation"
)

// quietLayer wraps the fake without validation so call counts stay
// limited to what the code under test performs.
func quietLayer(fake *drivertest.Fake) *validation.Layer {
	return validation.New(fake, validation.WithMode(validation.None))
}

func TestBuffersGeneratedInBulk(t *testing.T) {
	fake := drivertest.New()
	v := quietLayer(fake)

	buffers := graphics.NewBuffers(v, 3)

	if fake.Calls["GenBuffers"] != 1 {
		t.Errorf("GenBuffers called %d times, want 1 bulk call", fake.Calls["GenBuffers"])
	}
	if buffers.Len() != 3 {
		t.Errorf("Len() = %d, want 3", buffers.Len())
	}
	if fake.LiveHandles() != 3 {
		t.Errorf("%d live handles, want 3", fake.LiveHandles())
	}
	seen := map[graphics.Handle]bool{}
	for i := 0; i < buffers.Len(); i++ {
		seen[buffers.HandleAt(i)] = true
	}
	if len(seen) != 3 {
		t.Errorf("handles not distinct: %v", seen)
	}
}

func TestDestroyReleasesOnce(t *testing.T) {
	fake := drivertest.New()
	v := quietLayer(fake)

	buffers := graphics.NewBuffers(v, 2)
	buffers.Destroy()
	buffers.Destroy()
	buffers.Destroy()

	if fake.Calls["DeleteBuffers"] != 1 {
		t.Errorf("DeleteBuffers called %d times, want 1", fake.Calls["DeleteBuffers"])
	}
	if fake.DeadReleases != 0 {
		t.Errorf("%d releases of dead handles", fake.DeadReleases)
	}
	if fake.LiveHandles() != 0 {
		t.Errorf("%d handles still live after Destroy", fake.LiveHandles())
	}
}

func TestVertexArrayAndBufferKinds(t *testing.T) {
	fake := drivertest.New()
	v := quietLayer(fake)

	vao := graphics.NewVertexArray(v)
	vbo := graphics.NewBuffer(v)

	if vao.Kind() != "vertex array" {
		t.Errorf("vao.Kind() = %q", vao.Kind())
	}
	if vbo.Kind() != "buffer" {
		t.Errorf("vbo.Kind() = %q", vbo.Kind())
	}

	kinds := fake.LiveKinds()
	sort.Strings(kinds)
	if len(kinds) != 2 || kinds[0] != "buffer" || kinds[1] != "vertex array" {
		t.Errorf("live kinds = %v", kinds)
	}

	vbo.Destroy()
	vao.Destroy()
	if fake.LiveHandles() != 0 {
		t.Errorf("%d handles leaked", fake.LiveHandles())
	}
}

func TestHandleIndexRoundTrip(t *testing.T) {
	fake := drivertest.New()
	v := quietLayer(fake)

	vao := graphics.NewVertexArray(v)
	if vao.Handle().Index() == 0 {
		t.Error("handle index is zero")
	}
	if vao.Handle() != vao.HandleAt(0) {
		t.Error("Handle() and HandleAt(0) disagree")
	}
}
