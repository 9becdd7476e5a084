package main

import (
	"os"
	"runtime"
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/gobuffalo/packr"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/teal3d/teal/core"
	"github.com/teal3d/teal/driver"
	"github.com/teal3d/teal/driver/opengl"
	"github.com/teal3d/teal/graphics"
	"github.com/teal3d/teal/utility/spak"
	"github.com/teal3d/teal/validation"
	"github.com/teal3d/teal/version"
)

func init() {
	runtime.LockOSThread()
}

const (
	vertexShaderName   = "identity.vert.glsl"
	fragmentShaderName = "monochrome.frag.glsl"
)

var shaderBox = packr.NewBox("./shaders")

func configuration() core.Configuration {
	// A .env next to the binary overrides defaults; absence is fine.
	_ = godotenv.Load()

	width, err := strconv.Atoi(envy.Get("TEAL_SCREEN_WIDTH", "800"))
	if err != nil {
		log.Fatalf("TEAL_SCREEN_WIDTH: %s", err)
	}
	height, err := strconv.Atoi(envy.Get("TEAL_SCREEN_HEIGHT", "600"))
	if err != nil {
		log.Fatalf("TEAL_SCREEN_HEIGHT: %s", err)
	}
	fps, err := strconv.Atoi(envy.Get("TEAL_FPS", "60"))
	if err != nil {
		log.Fatalf("TEAL_FPS: %s", err)
	}

	return core.Configuration{
		Time: core.TimeConfiguration{
			FramesPerSecond: fps,
			EventPollDelay:  10,
		},
		Renderer: core.RendererConfiguration{
			ScreenWidth:     uint32(width),
			ScreenHeight:    uint32(height),
			ShaderPack:      envy.Get("TEAL_SHADER_PACK", ""),
			ShaderDirectory: envy.Get("TEAL_SHADER_DIR", ""),
		},
	}
}

// boxSource serves the shader sources embedded in the binary.
type boxSource struct {
	box packr.Box
}

func (s boxSource) Source(name string) (string, error) {
	return s.box.FindString(name)
}

// shaderSource picks the source provider: a spak archive when one is
// configured, then a shader directory, then the embedded sources.
func shaderSource(cfg core.RendererConfiguration) graphics.SourceProvider {
	if cfg.ShaderPack != "" {
		f, err := os.Open(cfg.ShaderPack)
		if err != nil {
			log.Fatalf("open shader pack: %s", err)
		}
		archive, err := spak.Open(f)
		if err != nil {
			log.Fatalf("open shader pack: %s", err)
		}
		return graphics.NewPackSource(archive)
	}
	if cfg.ShaderDirectory != "" {
		return graphics.FileSource{Dir: cfg.ShaderDirectory}
	}
	return boxSource{box: shaderBox}
}

func newWindow(cfg core.RendererConfiguration) *sdl.Window {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 6)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	window, err := sdl.CreateWindow("teal",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.ScreenWidth),
		int32(cfg.ScreenHeight),
		sdl.WINDOW_OPENGL)
	if err != nil {
		log.Fatalf("sdl.CreateWindow(): %s", err)
	}
	return window
}

func main() {
	cfg := configuration()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatalf("sdl.Init(): %s", err)
	}
	defer sdl.Quit()

	window := newWindow(cfg.Renderer)
	defer window.Destroy()

	glContext, err := window.GLCreateContext()
	if err != nil {
		log.Fatalf("window.GLCreateContext(): %s", err)
	}
	defer sdl.GLDeleteContext(glContext)

	if err := opengl.Init(); err != nil {
		log.Fatalf("opengl.Init(): %s", err)
	}

	d := opengl.New()
	probe := version.NewProbe(d)
	v := validation.New(d, validation.WithProbe(probe))

	log.WithFields(log.Fields{
		"vendor":   probe.VendorString(),
		"renderer": probe.RendererString(),
		"version":  probe.VersionString(),
		"mode":     v.Mode(),
	}).Info("context ready")

	program, err := graphics.NewProgram(v, shaderSource(cfg.Renderer), vertexShaderName, fragmentShaderName)
	if err != nil {
		log.Fatalf("shader build: %s", err)
	}
	defer program.Destroy()

	triangle := graphics.NewTriangle(v)
	defer triangle.Destroy()

	time := core.NewTime(cfg.Time)
	defer time.Stop()
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("Event loop exited")
			break EventLoop
		case <-time.FpsTicker().C:
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}

			v.Do(func() { d.ClearColor(0.2, 0.3, 0.3, 1.0) })
			v.Do(func() { d.Clear(driver.COLOR_BUFFER_BIT) })
			program.Bind()
			triangle.Draw()
			window.GLSwap()
		}
	}
}
