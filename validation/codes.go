package validation

import (
	"github.com/teal3d/teal/driver"
)

// ErrorCode is a decoded error-flag value from the driver's simple
// error queue.
type ErrorCode uint8

// Decoded error flags. Codes the driver reports that are not in this
// set decode to UnknownError rather than being trusted.
const (
	NoError ErrorCode = iota
	InvalidEnum
	InvalidValue
	InvalidOperation
	InvalidFramebufferOperation
	StackOverflow
	StackUnderflow
	OutOfMemory
	UnknownError
)

func (e ErrorCode) String() string {
	switch e {
	case NoError:
		return "NoError"
	case InvalidEnum:
		return "InvalidEnum"
	case InvalidValue:
		return "InvalidValue"
	case InvalidOperation:
		return "InvalidOperation"
	case InvalidFramebufferOperation:
		return "InvalidFramebufferOperation"
	case StackOverflow:
		return "StackOverflow"
	case StackUnderflow:
		return "StackUnderflow"
	case OutOfMemory:
		return "OutOfMemory"
	}
	return "UnknownError"
}

func errorCodeOf(raw uint32) ErrorCode {
	switch raw {
	case driver.NO_ERROR:
		return NoError
	case driver.INVALID_ENUM:
		return InvalidEnum
	case driver.INVALID_VALUE:
		return InvalidValue
	case driver.INVALID_OPERATION:
		return InvalidOperation
	case driver.INVALID_FRAMEBUFFER_OPERATION:
		return InvalidFramebufferOperation
	case driver.STACK_OVERFLOW:
		return StackOverflow
	case driver.STACK_UNDERFLOW:
		return StackUnderflow
	case driver.OUT_OF_MEMORY:
		return OutOfMemory
	}
	return UnknownError
}

// Severity is a decoded debug message severity.
type Severity uint8

// Decoded severities. Unknown raw values decode to SeverityUnknown and
// are treated like errors, never like notifications.
const (
	SeverityHigh Severity = iota
	SeverityMedium
	SeverityLow
	SeverityNotification
	SeverityUnknown
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "High"
	case SeverityMedium:
		return "Medium"
	case SeverityLow:
		return "Low"
	case SeverityNotification:
		return "Notification"
	}
	return "Unknown"
}

func severityOf(raw uint32) Severity {
	switch raw {
	case driver.DEBUG_SEVERITY_HIGH:
		return SeverityHigh
	case driver.DEBUG_SEVERITY_MEDIUM:
		return SeverityMedium
	case driver.DEBUG_SEVERITY_LOW:
		return SeverityLow
	case driver.DEBUG_SEVERITY_NOTIFICATION:
		return SeverityNotification
	}
	return SeverityUnknown
}

// MessageSource is a decoded debug message origin.
type MessageSource uint8

// Decoded message sources
const (
	SourceAPI MessageSource = iota
	SourceWindowSystem
	SourceShaderCompiler
	SourceThirdParty
	SourceApplication
	SourceOther
	SourceUnknown
)

func (s MessageSource) String() string {
	switch s {
	case SourceAPI:
		return "API"
	case SourceWindowSystem:
		return "WindowSystem"
	case SourceShaderCompiler:
		return "ShaderCompiler"
	case SourceThirdParty:
		return "ThirdParty"
	case SourceApplication:
		return "Application"
	case SourceOther:
		return "Other"
	}
	return "Unknown"
}

func sourceOf(raw uint32) MessageSource {
	switch raw {
	case driver.DEBUG_SOURCE_API:
		return SourceAPI
	case driver.DEBUG_SOURCE_WINDOW_SYSTEM:
		return SourceWindowSystem
	case driver.DEBUG_SOURCE_SHADER_COMPILER:
		return SourceShaderCompiler
	case driver.DEBUG_SOURCE_THIRD_PARTY:
		return SourceThirdParty
	case driver.DEBUG_SOURCE_APPLICATION:
		return SourceApplication
	case driver.DEBUG_SOURCE_OTHER:
		return SourceOther
	}
	return SourceUnknown
}

// MessageType is a decoded debug message category.
type MessageType uint8

// Decoded message types
const (
	TypeError MessageType = iota
	TypeDeprecatedBehaviour
	TypeUndefinedBehaviour
	TypePortability
	TypePerformance
	TypeMarker
	TypePushGroup
	TypePopGroup
	TypeOther
	TypeUnknown
)

func (t MessageType) String() string {
	switch t {
	case TypeError:
		return "Error"
	case TypeDeprecatedBehaviour:
		return "DeprecatedBehaviour"
	case TypeUndefinedBehaviour:
		return "UndefinedBehaviour"
	case TypePortability:
		return "Portability"
	case TypePerformance:
		return "Performance"
	case TypeMarker:
		return "Marker"
	case TypePushGroup:
		return "PushGroup"
	case TypePopGroup:
		return "PopGroup"
	case TypeOther:
		return "Other"
	}
	return "Unknown"
}

func typeOf(raw uint32) MessageType {
	switch raw {
	case driver.DEBUG_TYPE_ERROR:
		return TypeError
	case driver.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return TypeDeprecatedBehaviour
	case driver.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return TypeUndefinedBehaviour
	case driver.DEBUG_TYPE_PORTABILITY:
		return TypePortability
	case driver.DEBUG_TYPE_PERFORMANCE:
		return TypePerformance
	case driver.DEBUG_TYPE_MARKER:
		return TypeMarker
	case driver.DEBUG_TYPE_PUSH_GROUP:
		return TypePushGroup
	case driver.DEBUG_TYPE_POP_GROUP:
		return TypePopGroup
	case driver.DEBUG_TYPE_OTHER:
		return TypeOther
	}
	return TypeUnknown
}
