package graphics

import (
	"fmt"
	"strings"

	"github.com/teal3d/teal/driver"
	"github.com/teal3d/teal/validation"
)

// Stage identifies a shader build stage.
type Stage uint32

// Supported shader stages
const (
	VertexStage   Stage = driver.VERTEX_SHADER
	FragmentStage Stage = driver.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// BuildError reports a failed compile or link together with the
// driver-provided diagnostic log.
type BuildError struct {
	// Kind is the resource kind, "shader" or "program".
	Kind string
	// BuildStage is "compilation" or "linking".
	BuildStage string
	// Log is the driver info log, trimmed of trailing NUL bytes.
	Log string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("error %s %s failed:\n%s", e.Kind, e.BuildStage, e.Log)
}

// ShaderResource owns a single shader handle.
type ShaderResource struct {
	v        *validation.Layer
	handle   Handle
	stage    Stage
	released bool
}

func newShaderResource(v *validation.Layer, stage Stage) *ShaderResource {
	var id uint32
	v.Do(func() { id = v.Driver().CreateShader(uint32(stage)) })
	return &ShaderResource{v: v, handle: Handle(id), stage: stage}
}

// Handle returns the owned shader handle.
func (r *ShaderResource) Handle() Handle {
	return r.handle
}

// Stage returns the shader's build stage.
func (r *ShaderResource) Stage() Stage {
	return r.stage
}

// Destroy deletes the shader. Only the first call reaches the driver.
func (r *ShaderResource) Destroy() {
	if r.released {
		return
	}
	r.released = true
	r.v.Do(func() { r.v.Driver().DeleteShader(r.handle.Index()) })
}

func (r *ShaderResource) built() builtResource {
	d := r.v.Driver()
	return builtResource{
		kind:       "shader",
		buildStage: "compilation",
		statusFlag: driver.COMPILE_STATUS,
		handle:     r.handle,
		parameter:  d.GetShaderParameter,
		infoLog:    d.GetShaderInfoLog,
	}
}

// ProgramResource owns a single program handle.
type ProgramResource struct {
	v        *validation.Layer
	handle   Handle
	released bool
}

func newProgramResource(v *validation.Layer) *ProgramResource {
	var id uint32
	v.Do(func() { id = v.Driver().CreateProgram() })
	return &ProgramResource{v: v, handle: Handle(id)}
}

// Handle returns the owned program handle.
func (r *ProgramResource) Handle() Handle {
	return r.handle
}

// Destroy deletes the program. Only the first call reaches the driver.
func (r *ProgramResource) Destroy() {
	if r.released {
		return
	}
	r.released = true
	r.v.Do(func() { r.v.Driver().DeleteProgram(r.handle.Index()) })
}

func (r *ProgramResource) built() builtResource {
	d := r.v.Driver()
	return builtResource{
		kind:       "program",
		buildStage: "linking",
		statusFlag: driver.LINK_STATUS,
		handle:     r.handle,
		parameter:  d.GetProgramParameter,
		infoLog:    d.GetProgramInfoLog,
	}
}

// builtResource describes how to query build status and diagnostics
// for a resource that goes through a compile-or-link stage.
type builtResource struct {
	kind       string
	buildStage string
	statusFlag uint32
	handle     Handle
	parameter  func(handle, param uint32) int32
	infoLog    func(handle uint32, length int32) []byte
}

func parameterValue(v *validation.Layer, r builtResource, param uint32) int32 {
	var value int32
	v.Do(func() { value = r.parameter(r.handle.Index(), param) })
	return value
}

// infoLog fetches the build diagnostic log. The length the driver
// reports includes the terminating NUL; the returned text has trailing
// NUL and whitespace bytes trimmed.
func infoLog(v *validation.Layer, r builtResource) string {
	length := parameterValue(v, r, driver.INFO_LOG_LENGTH)
	if length <= 0 {
		return ""
	}
	var raw []byte
	v.Do(func() { raw = r.infoLog(r.handle.Index(), length) })
	return strings.TrimRight(string(raw), "\x00 \t\r\n")
}

func checkBuild(v *validation.Layer, r builtResource) error {
	if parameterValue(v, r, r.statusFlag) == driver.FALSE {
		return &BuildError{Kind: r.kind, BuildStage: r.buildStage, Log: infoLog(v, r)}
	}
	return nil
}

// CompileShader compiles source for the given stage. On failure the
// intermediate shader handle is deleted before the error is returned.
func CompileShader(v *validation.Layer, stage Stage, source string) (*ShaderResource, error) {
	resource := newShaderResource(v, stage)
	d := v.Driver()
	handle := resource.Handle().Index()

	v.Do(func() { d.ShaderSource(handle, source) })
	v.Do(func() { d.CompileShader(handle) })

	if err := checkBuild(v, resource.built()); err != nil {
		resource.Destroy()
		return nil, err
	}
	return resource, nil
}

// attachment scopes a shader-to-program attachment. Release detaches
// exactly once no matter how often it runs, so it can sit in a defer
// and still be called early on failure paths.
type attachment struct {
	v        *validation.Layer
	program  Handle
	shader   Handle
	released bool
}

func attach(v *validation.Layer, program *ProgramResource, shader *ShaderResource) *attachment {
	v.Do(func() { v.Driver().AttachShader(program.Handle().Index(), shader.Handle().Index()) })
	return &attachment{v: v, program: program.Handle(), shader: shader.Handle()}
}

// Release detaches the shader from the program, once.
func (a *attachment) Release() {
	if a.released {
		return
	}
	a.released = true
	a.v.Do(func() { a.v.Driver().DetachShader(a.program.Index(), a.shader.Index()) })
}

// Program is a linked shader program ready for use.
type Program struct {
	resource *ProgramResource
}

// NewProgram resolves the vertex and fragment sources through the
// provider, compiles them and links a program.
func NewProgram(v *validation.Layer, provider SourceProvider, vertexName, fragmentName string) (*Program, error) {
	vertexSrc, err := provider.Source(vertexName)
	if err != nil {
		return nil, err
	}
	fragmentSrc, err := provider.Source(fragmentName)
	if err != nil {
		return nil, err
	}
	return LinkProgram(v, vertexSrc, fragmentSrc)
}

// NewProgramFromFiles reads both shader sources from disk and links a
// program.
func NewProgramFromFiles(v *validation.Layer, vertexPath, fragmentPath string) (*Program, error) {
	return NewProgram(v, FileSource{}, vertexPath, fragmentPath)
}

// LinkProgram compiles both sources and links them into a program.
// The compiled shaders are detached and deleted before it returns, and
// a failed build releases the partially created program as well, so no
// intermediate resource outlives the call.
func LinkProgram(v *validation.Layer, vertexSrc, fragmentSrc string) (*Program, error) {
	vertex, err := CompileShader(v, VertexStage, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer vertex.Destroy()

	fragment, err := CompileShader(v, FragmentStage, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer fragment.Destroy()

	resource := newProgramResource(v)

	vertexAttachment := attach(v, resource, vertex)
	defer vertexAttachment.Release()
	fragmentAttachment := attach(v, resource, fragment)
	defer fragmentAttachment.Release()

	handle := resource.Handle().Index()
	v.Do(func() { v.Driver().LinkProgram(handle) })

	if err := checkBuild(v, resource.built()); err != nil {
		// Detach before the program handle goes away.
		vertexAttachment.Release()
		fragmentAttachment.Release()
		resource.Destroy()
		return nil, err
	}
	return &Program{resource: resource}, nil
}

// Handle returns the linked program handle.
func (p *Program) Handle() Handle {
	return p.resource.Handle()
}

// Bind makes the program current.
func (p *Program) Bind() {
	v := p.resource.v
	handle := p.resource.Handle().Index()
	v.Do(func() { v.Driver().UseProgram(handle) })
}

// Destroy deletes the program. Only the first call reaches the driver.
func (p *Program) Destroy() {
	p.resource.Destroy()
}
