// Package drivertest provides an in-memory Driver that records every
// call, for exercising the abstraction layer without a rendering
// context.
package drivertest

import (
	"strings"

	"github.com/teal3d/teal/driver"
)

// New returns a Fake with a healthy default state: every build
// succeeds, the error queue is empty and the reported version is 4.6.
func New() *Fake {
	return &Fake{
		Calls:                 make(map[string]int),
		VersionString:         "4.6.0 fake driver",
		VendorString:          "drivertest",
		RendererString:        "fake",
		MaxDebugMessageLength: 1024,
		sources:               make(map[uint32]string),
		attached:              make(map[[2]uint32]int),
		live:                  make(map[uint32]string),
	}
}

// Fake implements driver.Driver entirely in memory. Handles are
// allocated sequentially; every released handle is checked against the
// live set so double frees show up in DeadReleases instead of silently
// passing.
type Fake struct {
	// Calls counts invocations per entry point name.
	Calls map[string]int

	// DeadReleases counts deletes of handles that were not live.
	DeadReleases int

	// VersionString, VendorString and RendererString are returned by
	// GetString. Changing VersionString after the first query simulates
	// a driver state change.
	VersionString  string
	VendorString   string
	RendererString string

	// MaxDebugMessageLength is returned for the matching GetInteger
	// query.
	MaxDebugMessageLength int32

	// ErrorQueue is drained one code per GetError call; when empty,
	// GetError reports NO_ERROR.
	ErrorQueue []uint32

	// DebugMessages is drained one entry per GetDebugMessageLog call.
	DebugMessages []driver.DebugMessage

	// CompileShouldFail, when set, marks a shader build failed based on
	// its source text. FailLink marks every program link failed.
	CompileShouldFail func(source string) bool
	FailLink          bool

	// InfoLog is the diagnostic text reported for failed builds. The
	// driver-side length includes a trailing NUL.
	InfoLog string

	nextHandle uint32
	sources    map[uint32]string
	attached   map[[2]uint32]int
	live       map[uint32]string
}

var _ driver.Driver = (*Fake)(nil)

func (f *Fake) count(name string) {
	f.Calls[name]++
}

func (f *Fake) acquire(kind string) uint32 {
	f.nextHandle++
	f.live[f.nextHandle] = kind
	return f.nextHandle
}

func (f *Fake) release(handle uint32) {
	if _, ok := f.live[handle]; !ok {
		f.DeadReleases++
		return
	}
	delete(f.live, handle)
}

// LiveHandles returns the number of outstanding driver-side objects.
func (f *Fake) LiveHandles() int {
	return len(f.live)
}

// LiveKinds returns the kinds of all outstanding objects, in no
// particular order.
func (f *Fake) LiveKinds() []string {
	kinds := make([]string, 0, len(f.live))
	for _, kind := range f.live {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Attachments returns how many times shader was attached to program,
// minus detaches.
func (f *Fake) Attachments(program, shader uint32) int {
	return f.attached[[2]uint32{program, shader}]
}

// Detaches returns the total DetachShader call count.
func (f *Fake) Detaches() int {
	return f.Calls["DetachShader"]
}

// GenVertexArrays implements driver.Driver
func (f *Fake) GenVertexArrays(dst []uint32) {
	f.count("GenVertexArrays")
	for i := range dst {
		dst[i] = f.acquire("vertex array")
	}
}

// DeleteVertexArrays implements driver.Driver
func (f *Fake) DeleteVertexArrays(handles []uint32) {
	f.count("DeleteVertexArrays")
	for _, h := range handles {
		f.release(h)
	}
}

// GenBuffers implements driver.Driver
func (f *Fake) GenBuffers(dst []uint32) {
	f.count("GenBuffers")
	for i := range dst {
		dst[i] = f.acquire("buffer")
	}
}

// DeleteBuffers implements driver.Driver
func (f *Fake) DeleteBuffers(handles []uint32) {
	f.count("DeleteBuffers")
	for _, h := range handles {
		f.release(h)
	}
}

// CreateShader implements driver.Driver
func (f *Fake) CreateShader(stage uint32) uint32 {
	f.count("CreateShader")
	return f.acquire("shader")
}

// DeleteShader implements driver.Driver
func (f *Fake) DeleteShader(handle uint32) {
	f.count("DeleteShader")
	f.release(handle)
}

// ShaderSource implements driver.Driver
func (f *Fake) ShaderSource(handle uint32, source string) {
	f.count("ShaderSource")
	f.sources[handle] = source
}

// CompileShader implements driver.Driver
func (f *Fake) CompileShader(handle uint32) {
	f.count("CompileShader")
}

// GetShaderParameter implements driver.Driver
func (f *Fake) GetShaderParameter(handle, param uint32) int32 {
	f.count("GetShaderParameter")
	switch param {
	case driver.COMPILE_STATUS:
		if f.CompileShouldFail != nil && f.CompileShouldFail(f.sources[handle]) {
			return driver.FALSE
		}
		return driver.TRUE
	case driver.INFO_LOG_LENGTH:
		return f.infoLogLength()
	}
	return 0
}

// GetShaderInfoLog implements driver.Driver
func (f *Fake) GetShaderInfoLog(handle uint32, length int32) []byte {
	f.count("GetShaderInfoLog")
	return f.infoLogBytes(length)
}

// CreateProgram implements driver.Driver
func (f *Fake) CreateProgram() uint32 {
	f.count("CreateProgram")
	return f.acquire("program")
}

// DeleteProgram implements driver.Driver
func (f *Fake) DeleteProgram(handle uint32) {
	f.count("DeleteProgram")
	f.release(handle)
}

// AttachShader implements driver.Driver
func (f *Fake) AttachShader(program, shader uint32) {
	f.count("AttachShader")
	f.attached[[2]uint32{program, shader}]++
}

// DetachShader implements driver.Driver
func (f *Fake) DetachShader(program, shader uint32) {
	f.count("DetachShader")
	f.attached[[2]uint32{program, shader}]--
}

// LinkProgram implements driver.Driver
func (f *Fake) LinkProgram(handle uint32) {
	f.count("LinkProgram")
}

// GetProgramParameter implements driver.Driver
func (f *Fake) GetProgramParameter(handle, param uint32) int32 {
	f.count("GetProgramParameter")
	switch param {
	case driver.LINK_STATUS:
		if f.FailLink {
			return driver.FALSE
		}
		return driver.TRUE
	case driver.INFO_LOG_LENGTH:
		return f.infoLogLength()
	}
	return 0
}

// GetProgramInfoLog implements driver.Driver
func (f *Fake) GetProgramInfoLog(handle uint32, length int32) []byte {
	f.count("GetProgramInfoLog")
	return f.infoLogBytes(length)
}

// UseProgram implements driver.Driver
func (f *Fake) UseProgram(handle uint32) {
	f.count("UseProgram")
}

// BindVertexArray implements driver.Driver
func (f *Fake) BindVertexArray(handle uint32) {
	f.count("BindVertexArray")
}

// BindBuffer implements driver.Driver
func (f *Fake) BindBuffer(target, handle uint32) {
	f.count("BindBuffer")
}

// BufferData implements driver.Driver
func (f *Fake) BufferData(target uint32, data []byte, usage uint32) {
	f.count("BufferData")
}

// VertexAttribPointer implements driver.Driver
func (f *Fake) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	f.count("VertexAttribPointer")
}

// EnableVertexAttribArray implements driver.Driver
func (f *Fake) EnableVertexAttribArray(index uint32) {
	f.count("EnableVertexAttribArray")
}

// DrawArrays implements driver.Driver
func (f *Fake) DrawArrays(mode uint32, first, count int32) {
	f.count("DrawArrays")
}

// ClearColor implements driver.Driver
func (f *Fake) ClearColor(r, g, b, a float32) {
	f.count("ClearColor")
}

// Clear implements driver.Driver
func (f *Fake) Clear(mask uint32) {
	f.count("Clear")
}

// GetError implements driver.Driver
func (f *Fake) GetError() uint32 {
	f.count("GetError")
	if len(f.ErrorQueue) == 0 {
		return driver.NO_ERROR
	}
	code := f.ErrorQueue[0]
	f.ErrorQueue = f.ErrorQueue[1:]
	return code
}

// GetDebugMessageLog implements driver.Driver
func (f *Fake) GetDebugMessageLog(bufSize int32) (driver.DebugMessage, bool) {
	f.count("GetDebugMessageLog")
	if len(f.DebugMessages) == 0 {
		return driver.DebugMessage{}, false
	}
	msg := f.DebugMessages[0]
	f.DebugMessages = f.DebugMessages[1:]
	if int32(len(msg.Message)) > bufSize {
		msg.Message = msg.Message[:bufSize]
	}
	return msg, true
}

// GetInteger implements driver.Driver
func (f *Fake) GetInteger(param uint32) int32 {
	f.count("GetInteger")
	if param == driver.MAX_DEBUG_MESSAGE_LENGTH {
		return f.MaxDebugMessageLength
	}
	return 0
}

// GetString implements driver.Driver
func (f *Fake) GetString(name uint32) string {
	f.count("GetString")
	switch name {
	case driver.VERSION:
		return f.VersionString
	case driver.VENDOR:
		return f.VendorString
	case driver.RENDERER:
		return f.RendererString
	}
	return ""
}

func (f *Fake) infoLogLength() int32 {
	if f.InfoLog == "" {
		return 0
	}
	// Driver convention: reported length includes the NUL terminator.
	return int32(len(f.InfoLog)) + 1
}

func (f *Fake) infoLogBytes(length int32) []byte {
	if length <= 0 {
		return nil
	}
	padded := f.InfoLog + "\x00"
	if int32(len(padded)) > length {
		padded = padded[:length]
	}
	return []byte(padded + strings.Repeat("\x00", int(length)-len(padded)))
}
