// Package driver defines the boundary between the abstraction layer and
// the native OpenGL driver. The core packages only ever talk to the
// Driver interface; the real binding lives in driver/opengl and a
// recording fake in driver/drivertest.
package driver

// Driver is the set of driver entry points the abstraction layer uses.
// All calls are synchronous and must happen on the thread that owns the
// rendering context.
type Driver interface {
	// Vertex resource lifecycle. The bulk calls fill or consume the
	// whole slice; callers never pass an empty one.
	GenVertexArrays(dst []uint32)
	DeleteVertexArrays(handles []uint32)
	GenBuffers(dst []uint32)
	DeleteBuffers(handles []uint32)

	// Shader build pipeline
	CreateShader(stage uint32) uint32
	DeleteShader(handle uint32)
	ShaderSource(handle uint32, source string)
	CompileShader(handle uint32)
	GetShaderParameter(handle, param uint32) int32
	GetShaderInfoLog(handle uint32, length int32) []byte
	CreateProgram() uint32
	DeleteProgram(handle uint32)
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(handle uint32)
	GetProgramParameter(handle, param uint32) int32
	GetProgramInfoLog(handle uint32, length int32) []byte
	UseProgram(handle uint32)

	// Buffers and drawing
	BindVertexArray(handle uint32)
	BindBuffer(target, handle uint32)
	BufferData(target uint32, data []byte, usage uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode uint32, first, count int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)

	// Diagnostics. GetDebugMessageLog pops at most one entry from the
	// structured debug log and reports whether one was available.
	GetError() uint32
	GetDebugMessageLog(bufSize int32) (DebugMessage, bool)
	GetInteger(param uint32) int32
	GetString(name uint32) string
}

// DebugMessage is one entry drained from the driver's structured debug
// message log. The numeric fields carry raw driver codes; decoding them
// is up to the caller.
type DebugMessage struct {
	Source   uint32
	Type     uint32
	ID       uint32
	Severity uint32
	Message  string
}
