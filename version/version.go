// Package version probes the driver-reported OpenGL version. The probe
// queries once and caches for its lifetime, which matches the lifetime
// of the rendering context it was created against.
package version

import (
	"errors"
	"fmt"
	"sync"

	"github.com/teal3d/teal/driver"
)

// ErrNoVersion reports that the driver did not return a usable version
// string, usually because no context is current.
var ErrNoVersion = errors.New("no version string from driver")

// OpenGLVersion is the driver-reported context version.
type OpenGLVersion struct {
	Major int
	Minor int
}

func (v OpenGLVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// SupportsDebugMessageLog reports whether the structured debug message
// log can be queried. The rule is major > 3 && minor >= 3. Note the
// edges: every 3.x context reports false, including 3.3 where KHR_debug
// actually exists, and x.0 through x.2 report false for any major.
// Callers that get false fall back to the plain error queue, which is
// always safe.
func (v OpenGLVersion) SupportsDebugMessageLog() bool {
	return v.Major > 3 && v.Minor >= 3
}

// Latest returns the highest published OpenGL version, 4.6.
func Latest() OpenGLVersion {
	return OpenGLVersion{Major: 4, Minor: 6}
}

// NewProbe creates a probe against d. Create one per process once a
// context is current and share it; each probe queries the driver at
// most once.
func NewProbe(d driver.Driver) *Probe {
	return &Probe{d: d}
}

// Probe memoizes the parsed context version. The cache is filled on
// first use and never invalidated; contexts do not change version
// mid-life.
type Probe struct {
	d driver.Driver

	once sync.Once
	v    OpenGLVersion
	err  error
}

// Version returns the cached version pair, querying the driver on the
// first call only.
func (p *Probe) Version() (OpenGLVersion, error) {
	p.once.Do(func() {
		p.v, p.err = parse(p.d.GetString(driver.VERSION))
	})
	return p.v, p.err
}

// VersionString returns the raw version string from the driver.
func (p *Probe) VersionString() string {
	return p.d.GetString(driver.VERSION)
}

// VendorString returns the driver vendor string.
func (p *Probe) VendorString() string {
	return p.d.GetString(driver.VENDOR)
}

// RendererString returns the driver renderer string.
func (p *Probe) RendererString() string {
	return p.d.GetString(driver.RENDERER)
}

// parse reads the major and minor digits from the fixed positions of a
// "MAJOR.MINOR..." version string.
func parse(s string) (OpenGLVersion, error) {
	if len(s) < 3 || s[1] != '.' {
		return OpenGLVersion{}, fmt.Errorf("parsing version %q: %w", s, ErrNoVersion)
	}
	major := int(s[0] - '0')
	minor := int(s[2] - '0')
	if major < 0 || major > 9 || minor < 0 || minor > 9 {
		return OpenGLVersion{}, fmt.Errorf("parsing version %q: %w", s, ErrNoVersion)
	}
	return OpenGLVersion{Major: major, Minor: minor}, nil
}
