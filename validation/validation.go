// Package validation routes every driver call through a single choke
// point that polls the driver's error state afterwards. A non-empty
// error state is a programming error, not a runtime condition, so it
// terminates the process with the collected diagnostics. Release
// builds derive the None mode and skip the checks entirely.
package validation

import (
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/teal3d/teal/driver"
	"github.com/teal3d/teal/version"
)

// Option configures a Layer.
type Option func(*Layer)

// WithMode overrides the mode derived from the build configuration.
func WithMode(m Mode) Option {
	return func(l *Layer) {
		l.mode = m
	}
}

// WithFatal replaces the process-abort path taken when validation
// finds errors. Only tests should need this.
func WithFatal(f func(format string, args ...interface{})) Option {
	return func(l *Layer) {
		l.fatalf = f
	}
}

// WithProbe shares an existing version probe instead of creating one.
func WithProbe(p *version.Probe) Option {
	return func(l *Layer) {
		l.probe = p
	}
}

// New creates a validation layer over d. The default mode comes from
// the build configuration and the default failure path is
// logrus.Fatalf.
func New(d driver.Driver, opts ...Option) *Layer {
	l := &Layer{
		d:      d,
		mode:   DefaultMode(),
		fatalf: log.Fatalf,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.probe == nil {
		l.probe = version.NewProbe(d)
	}
	return l
}

// Layer is the choke point for driver calls. A single Layer serves the
// thread owning the rendering context; it is not safe for concurrent
// use.
type Layer struct {
	d      driver.Driver
	mode   Mode
	probe  *version.Probe
	fatalf func(format string, args ...interface{})

	maxLenOnce sync.Once
	maxLen     int32
}

// Driver returns the wrapped driver. Calls made on it directly bypass
// validation; route them through Do.
func (l *Layer) Driver() driver.Driver {
	return l.d
}

// Mode returns the active validation mode.
func (l *Layer) Mode() Mode {
	return l.mode
}

// Do executes f, then polls the driver error state according to the
// active mode. Validation failures do not return; they abort through
// the layer's fatal path with every drained diagnostic.
func (l *Layer) Do(f func()) {
	f()
	if l.mode == None {
		return
	}
	l.check()
}

func (l *Layer) check() {
	switch l.mode {
	case Basic:
		l.checkBasic()
	case Advanced:
		l.checkAdvanced()
	case Dynamic:
		if v, err := l.probe.Version(); err == nil && v.SupportsDebugMessageLog() {
			l.checkAdvanced()
		} else {
			l.checkBasic()
		}
	}
}

// checkBasic drains the simple error-flag queue and aborts with the
// concatenated codes if any were pending.
func (l *Layer) checkBasic() {
	var b strings.Builder
	for {
		code := errorCodeOf(l.d.GetError())
		if code == NoError {
			break
		}
		b.WriteString(code.String())
		b.WriteByte('\n')
	}

	if b.Len() > 0 {
		l.fatalf("driver validation failed:\n%s", b.String())
	}
}

// checkAdvanced drains the structured debug message log. Notifications
// are logged and tolerated; everything else aborts.
func (l *Layer) checkAdvanced() {
	var b strings.Builder
	for {
		msg, ok := l.d.GetDebugMessageLog(l.maxMessageLength())
		if !ok {
			break
		}
		text := formatDebugMessage(msg)
		if severityOf(msg.Severity) == SeverityNotification {
			log.Warn(text)
			continue
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}

	if b.Len() > 0 {
		l.fatalf("driver validation failed:\n%s", b.String())
	}
}

// maxMessageLength caches the driver's debug message size limit on
// first use.
func (l *Layer) maxMessageLength() int32 {
	l.maxLenOnce.Do(func() {
		l.maxLen = l.d.GetInteger(driver.MAX_DEBUG_MESSAGE_LENGTH)
	})
	return l.maxLen
}

func formatDebugMessage(msg driver.DebugMessage) string {
	return fmt.Sprintf(
		"Source: %s; Type: %s; Severity: %s\n%s",
		sourceOf(msg.Source),
		typeOf(msg.Type),
		severityOf(msg.Severity),
		msg.Message,
	)
}
