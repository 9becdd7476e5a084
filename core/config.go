package core

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Renderer RendererConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the delay between event queue polls,
	// in milliseconds
	EventPollDelay int
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	ScreenWidth  uint32
	ScreenHeight uint32

	// ShaderPack is the path of a spak archive holding shader
	// sources. When empty, sources are resolved from embedded
	// resources or ShaderDirectory.
	ShaderPack string

	// ShaderDirectory is the directory shader source files
	// are loaded from
	ShaderDirectory string
}
