// Package opengl is the go-gl backed Driver implementation. It assumes
// a current context on the calling thread; Init must have succeeded
// before any other call.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/teal3d/teal/driver"
)

// Init resolves the OpenGL entry points for the current context.
func Init() error {
	return gl.Init()
}

// New returns a Driver forwarding to the loaded OpenGL entry points.
func New() driver.Driver {
	return Backend{}
}

// Backend forwards every Driver call to go-gl.
type Backend struct{}

// GenVertexArrays implements driver.Driver
func (Backend) GenVertexArrays(dst []uint32) {
	gl.GenVertexArrays(int32(len(dst)), &dst[0])
}

// DeleteVertexArrays implements driver.Driver
func (Backend) DeleteVertexArrays(handles []uint32) {
	gl.DeleteVertexArrays(int32(len(handles)), &handles[0])
}

// GenBuffers implements driver.Driver
func (Backend) GenBuffers(dst []uint32) {
	gl.GenBuffers(int32(len(dst)), &dst[0])
}

// DeleteBuffers implements driver.Driver
func (Backend) DeleteBuffers(handles []uint32) {
	gl.DeleteBuffers(int32(len(handles)), &handles[0])
}

// CreateShader implements driver.Driver
func (Backend) CreateShader(stage uint32) uint32 {
	return gl.CreateShader(stage)
}

// DeleteShader implements driver.Driver
func (Backend) DeleteShader(handle uint32) {
	gl.DeleteShader(handle)
}

// ShaderSource implements driver.Driver
func (Backend) ShaderSource(handle uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(handle, 1, csources, nil)
}

// CompileShader implements driver.Driver
func (Backend) CompileShader(handle uint32) {
	gl.CompileShader(handle)
}

// GetShaderParameter implements driver.Driver
func (Backend) GetShaderParameter(handle, param uint32) int32 {
	var value int32
	gl.GetShaderiv(handle, param, &value)
	return value
}

// GetShaderInfoLog implements driver.Driver
func (Backend) GetShaderInfoLog(handle uint32, length int32) []byte {
	if length <= 0 {
		return nil
	}
	buf := make([]byte, length)
	gl.GetShaderInfoLog(handle, length, nil, &buf[0])
	return buf
}

// CreateProgram implements driver.Driver
func (Backend) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// DeleteProgram implements driver.Driver
func (Backend) DeleteProgram(handle uint32) {
	gl.DeleteProgram(handle)
}

// AttachShader implements driver.Driver
func (Backend) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// DetachShader implements driver.Driver
func (Backend) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

// LinkProgram implements driver.Driver
func (Backend) LinkProgram(handle uint32) {
	gl.LinkProgram(handle)
}

// GetProgramParameter implements driver.Driver
func (Backend) GetProgramParameter(handle, param uint32) int32 {
	var value int32
	gl.GetProgramiv(handle, param, &value)
	return value
}

// GetProgramInfoLog implements driver.Driver
func (Backend) GetProgramInfoLog(handle uint32, length int32) []byte {
	if length <= 0 {
		return nil
	}
	buf := make([]byte, length)
	gl.GetProgramInfoLog(handle, length, nil, &buf[0])
	return buf
}

// UseProgram implements driver.Driver
func (Backend) UseProgram(handle uint32) {
	gl.UseProgram(handle)
}

// BindVertexArray implements driver.Driver
func (Backend) BindVertexArray(handle uint32) {
	gl.BindVertexArray(handle)
}

// BindBuffer implements driver.Driver
func (Backend) BindBuffer(target, handle uint32) {
	gl.BindBuffer(target, handle)
}

// BufferData implements driver.Driver
func (Backend) BufferData(target uint32, data []byte, usage uint32) {
	gl.BufferData(target, len(data), gl.Ptr(data), usage)
}

// VertexAttribPointer implements driver.Driver
func (Backend) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

// EnableVertexAttribArray implements driver.Driver
func (Backend) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// DrawArrays implements driver.Driver
func (Backend) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

// ClearColor implements driver.Driver
func (Backend) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear implements driver.Driver
func (Backend) Clear(mask uint32) {
	gl.Clear(mask)
}

// GetError implements driver.Driver
func (Backend) GetError() uint32 {
	return gl.GetError()
}

// GetDebugMessageLog implements driver.Driver
func (Backend) GetDebugMessageLog(bufSize int32) (driver.DebugMessage, bool) {
	var (
		source, xtype, id, severity uint32
		length                      int32
	)
	buf := make([]byte, bufSize)
	var bufPtr *uint8
	if bufSize > 0 {
		bufPtr = &buf[0]
	}
	count := gl.GetDebugMessageLog(1, bufSize, &source, &xtype, &id, &severity, &length, bufPtr)
	if count == 0 {
		return driver.DebugMessage{}, false
	}
	var message string
	if length > 0 {
		// The reported length counts the NUL terminator.
		message = strings.TrimRight(string(buf[:length]), "\x00")
	}
	return driver.DebugMessage{
		Source:   source,
		Type:     xtype,
		ID:       id,
		Severity: severity,
		Message:  message,
	}, true
}

// GetInteger implements driver.Driver
func (Backend) GetInteger(param uint32) int32 {
	var value int32
	gl.GetIntegerv(param, &value)
	return value
}

// GetString implements driver.Driver
func (Backend) GetString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}
