package graphics_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/teal3d/teal/driver/drivertest"
	"github.com/teal3d/teal/graphics"
)

const (
	vertexSrc   = "#version 330 core\nvoid main() { gl_Position = vec4(0.0); }\n"
	fragmentSrc = "#version 330 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
	brokenSrc   = "#version 330 core\nBROKEN\n"
)

func failOnBroken(source string) bool {
	return strings.Contains(source, "BROKEN")
}

func TestCompileShader(t *testing.T) {
	fake := drivertest.New()
	v := quietLayer(fake)

	shader, err := graphics.CompileShader(v, graphics.VertexStage, vertexSrc)
	if err != nil {
		t.Fatal(err)
	}
	if shader.Stage() != graphics.VertexStage {
		t.Errorf("Stage() = %s", shader.Stage())
	}
	if fake.Calls["ShaderSource"] != 1 || fake.Calls["CompileShader"] != 1 {
		t.Errorf("source/compile calls = %d/%d, want 1/1",
			fake.Calls["ShaderSource"], fake.Calls["CompileShader"])
	}

	shader.Destroy()
	shader.Destroy()
	if fake.Calls["DeleteShader"] != 1 {
		t.Errorf("DeleteShader called %d times, want 1", fake.Calls["DeleteShader"])
	}
	if fake.LiveHandles() != 0 {
		t.Errorf("%d handles leaked", fake.LiveHandles())
	}
}

func TestCompileShaderFailureReleasesHandle(t *testing.T) {
	fake := drivertest.New()
	fake.CompileShouldFail = failOnBroken
	fake.InfoLog = "0:2(1): error: syntax error, unexpected IDENTIFIER"
	v := quietLayer(fake)

	_, err := graphics.CompileShader(v, graphics.FragmentStage, brokenSrc)
	if err == nil {
		t.Fatal("compile of broken source succeeded")
	}

	var buildErr *graphics.BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("error type %T, want *BuildError", err)
	}
	if buildErr.BuildStage != "compilation" {
		t.Errorf("BuildStage = %q, want compilation", buildErr.BuildStage)
	}
	if buildErr.Log != fake.InfoLog {
		t.Errorf("Log = %q, want the driver diagnostic", buildErr.Log)
	}
	if !strings.Contains(err.Error(), "compilation") || !strings.Contains(err.Error(), "syntax error") {
		t.Errorf("message incomplete: %q", err.Error())
	}

	if fake.LiveHandles() != 0 {
		t.Errorf("%d handles leaked by the failure path", fake.LiveHandles())
	}
	if fake.DeadReleases != 0 {
		t.Errorf("%d releases of dead handles", fake.DeadReleases)
	}
}

func TestLinkProgram(t *testing.T) {
	fake := drivertest.New()
	v := quietLayer(fake)

	program, err := graphics.LinkProgram(v, vertexSrc, fragmentSrc)
	if err != nil {
		t.Fatal(err)
	}

	// Only the linked program survives; the intermediate shaders are
	// detached and deleted.
	if fake.LiveHandles() != 1 {
		t.Errorf("%d live handles, want the program alone", fake.LiveHandles())
	}
	if kinds := fake.LiveKinds(); len(kinds) != 1 || kinds[0] != "program" {
		t.Errorf("live kinds = %v", kinds)
	}
	if fake.Calls["DeleteShader"] != 2 {
		t.Errorf("DeleteShader called %d times, want 2", fake.Calls["DeleteShader"])
	}
	if fake.Detaches() != 2 {
		t.Errorf("DetachShader called %d times, want 2", fake.Detaches())
	}

	program.Bind()
	if fake.Calls["UseProgram"] != 1 {
		t.Errorf("UseProgram called %d times, want 1", fake.Calls["UseProgram"])
	}

	program.Destroy()
	program.Destroy()
	if fake.Calls["DeleteProgram"] != 1 {
		t.Errorf("DeleteProgram called %d times, want 1", fake.Calls["DeleteProgram"])
	}
	if fake.LiveHandles() != 0 {
		t.Errorf("%d handles leaked", fake.LiveHandles())
	}
}

func TestLinkProgramBrokenFragmentStopsEarly(t *testing.T) {
	fake := drivertest.New()
	fake.CompileShouldFail = failOnBroken
	fake.InfoLog = "unexpected token"
	v := quietLayer(fake)

	_, err := graphics.LinkProgram(v, vertexSrc, brokenSrc)
	if err == nil {
		t.Fatal("link with broken fragment source succeeded")
	}

	var buildErr *graphics.BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("error type %T, want *BuildError", err)
	}
	if buildErr.BuildStage != "compilation" {
		t.Errorf("BuildStage = %q, want compilation", buildErr.BuildStage)
	}
	if fake.Calls["CreateProgram"] != 0 {
		t.Error("program created although compilation failed")
	}
	if fake.LiveHandles() != 0 {
		t.Errorf("%d handles leaked", fake.LiveHandles())
	}
	if fake.DeadReleases != 0 {
		t.Errorf("%d releases of dead handles", fake.DeadReleases)
	}
}

func TestLinkProgramFailureDetachesBeforeRelease(t *testing.T) {
	fake := drivertest.New()
	fake.FailLink = true
	fake.InfoLog = "error: vertex shader lacks main()"
	v := quietLayer(fake)

	_, err := graphics.LinkProgram(v, vertexSrc, fragmentSrc)
	if err == nil {
		t.Fatal("link succeeded although the driver reported failure")
	}

	var buildErr *graphics.BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("error type %T, want *BuildError", err)
	}
	if buildErr.BuildStage != "linking" {
		t.Errorf("BuildStage = %q, want linking", buildErr.BuildStage)
	}
	if !strings.Contains(err.Error(), "linking") {
		t.Errorf("message missing stage: %q", err.Error())
	}

	if fake.Detaches() != 2 {
		t.Errorf("DetachShader called %d times, want 2", fake.Detaches())
	}
	if fake.Calls["DeleteProgram"] != 1 {
		t.Errorf("DeleteProgram called %d times, want 1", fake.Calls["DeleteProgram"])
	}
	if fake.LiveHandles() != 0 {
		t.Errorf("%d handles leaked", fake.LiveHandles())
	}
	if fake.DeadReleases != 0 {
		t.Errorf("%d releases of dead handles", fake.DeadReleases)
	}
}

func TestNewProgramMissingSourceTouchesNoDriverState(t *testing.T) {
	fake := drivertest.New()
	v := quietLayer(fake)

	_, err := graphics.NewProgramFromFiles(v, "no/such/dir/a.vert.glsl", "no/such/dir/a.frag.glsl")
	if err == nil {
		t.Fatal("program built from missing files")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not match fs.ErrNotExist", err)
	}
	if fake.Calls["CreateShader"] != 0 || fake.Calls["CreateProgram"] != 0 {
		t.Error("driver objects created before both sources resolved")
	}
}
