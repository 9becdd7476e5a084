package core

// BuildMode tells apart debug and release binaries. It is fixed when
// the binary is built and never changes at runtime.
type BuildMode uint8

// Supported build modes
const (
	Debug BuildMode = iota
	Release
)

func (m BuildMode) String() string {
	switch m {
	case Debug:
		return "debug"
	case Release:
		return "release"
	}
	return "unknown"
}

// CurrentBuildMode returns the mode this binary was built with.
// Building with the 'gldebug' tag selects Debug.
func CurrentBuildMode() BuildMode { return buildMode }

// IsDebugMode returns true when built with the 'gldebug' tag
func IsDebugMode() bool { return buildMode == Debug }

// IsReleaseMode returns true when built without the 'gldebug' tag
func IsReleaseMode() bool { return buildMode == Release }

// TargetPlatform is the operating system the binary targets
type TargetPlatform uint8

// Supported target platforms
const (
	Windows TargetPlatform = iota
	Mac
	Linux
)

func (p TargetPlatform) String() string {
	switch p {
	case Windows:
		return "windows"
	case Mac:
		return "mac"
	case Linux:
		return "linux"
	}
	return "unknown"
}

// CurrentPlatform returns the platform this binary targets
func CurrentPlatform() TargetPlatform { return targetPlatform }

// IsWindows returns true when targeting Windows
func IsWindows() bool { return targetPlatform == Windows }

// IsMac returns true when targeting Mac
func IsMac() bool { return targetPlatform == Mac }

// IsLinux returns true when targeting Linux
func IsLinux() bool { return targetPlatform == Linux }
