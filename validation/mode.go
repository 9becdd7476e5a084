package validation

import (
	"github.com/teal3d/teal/core"
)

// Mode selects how driver errors are detected after each call.
type Mode uint8

// Validation modes, from cheapest to most detailed. Dynamic picks
// between Basic and Advanced at runtime based on the context version.
const (
	None Mode = iota
	Basic
	Advanced
	Dynamic
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Basic:
		return "basic"
	case Advanced:
		return "advanced"
	case Dynamic:
		return "dynamic"
	}
	return "unknown"
}

// ModeFor derives the validation mode from a build mode and target
// platform. Release builds never validate. Windows drivers expose the
// debug message log reliably, Mac ones never do, and on Linux it
// depends on the context, so the decision is deferred to runtime.
func ModeFor(build core.BuildMode, platform core.TargetPlatform) Mode {
	switch {
	case build == core.Release:
		return None
	case platform == core.Windows:
		return Advanced
	case platform == core.Mac:
		return Basic
	default:
		return Dynamic
	}
}

// DefaultMode derives the mode from this binary's build configuration.
func DefaultMode() Mode {
	return ModeFor(core.CurrentBuildMode(), core.CurrentPlatform())
}
