package driver

// The subset of OpenGL enumerants the layer needs, mirrored here so that
// packages built against the Driver interface do not pull in the cgo
// binding.
const (
	FALSE = 0
	TRUE  = 1

	VERTEX_SHADER   = 0x8B31
	FRAGMENT_SHADER = 0x8B30
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84

	ARRAY_BUFFER     = 0x8892
	STATIC_DRAW      = 0x88E4
	FLOAT            = 0x1406
	TRIANGLES        = 0x0004
	COLOR_BUFFER_BIT = 0x4000

	VENDOR   = 0x1F00
	RENDERER = 0x1F01
	VERSION  = 0x1F02

	NO_ERROR                      = 0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	STACK_OVERFLOW                = 0x0503
	STACK_UNDERFLOW               = 0x0504
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	MAX_DEBUG_MESSAGE_LENGTH = 0x9143

	DEBUG_SOURCE_API             = 0x8246
	DEBUG_SOURCE_WINDOW_SYSTEM   = 0x8247
	DEBUG_SOURCE_SHADER_COMPILER = 0x8248
	DEBUG_SOURCE_THIRD_PARTY     = 0x8249
	DEBUG_SOURCE_APPLICATION     = 0x824A
	DEBUG_SOURCE_OTHER           = 0x824B

	DEBUG_TYPE_ERROR               = 0x824C
	DEBUG_TYPE_DEPRECATED_BEHAVIOR = 0x824D
	DEBUG_TYPE_UNDEFINED_BEHAVIOR  = 0x824E
	DEBUG_TYPE_PORTABILITY         = 0x824F
	DEBUG_TYPE_PERFORMANCE         = 0x8250
	DEBUG_TYPE_OTHER               = 0x8251
	DEBUG_TYPE_MARKER              = 0x8268
	DEBUG_TYPE_PUSH_GROUP          = 0x8269
	DEBUG_TYPE_POP_GROUP           = 0x826A

	DEBUG_SEVERITY_HIGH         = 0x9146
	DEBUG_SEVERITY_MEDIUM       = 0x9147
	DEBUG_SEVERITY_LOW          = 0x9148
	DEBUG_SEVERITY_NOTIFICATION = 0x826B
)
