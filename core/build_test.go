package core_test

import (
	"runtime"
	"testing"

	"github.com/teal3d/teal/core"
)

func TestBuildModeStrings(t *testing.T) {
	if core.Debug.String() != "debug" || core.Release.String() != "release" {
		t.Error("build mode names changed")
	}
	if core.BuildMode(200).String() != "unknown" {
		t.Error("out-of-range build mode not reported unknown")
	}
}

func TestCurrentBuildModeConsistent(t *testing.T) {
	if core.IsDebugMode() == core.IsReleaseMode() {
		t.Error("debug and release predicates agree")
	}
	if core.IsDebugMode() != (core.CurrentBuildMode() == core.Debug) {
		t.Error("IsDebugMode disagrees with CurrentBuildMode")
	}
}

func TestCurrentPlatform(t *testing.T) {
	var want core.TargetPlatform
	switch runtime.GOOS {
	case "windows":
		want = core.Windows
	case "darwin":
		want = core.Mac
	default:
		want = core.Linux
	}
	if got := core.CurrentPlatform(); got != want {
		t.Errorf("CurrentPlatform() = %s on %s", got, runtime.GOOS)
	}
}
