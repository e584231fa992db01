package glapi

// Values in this file are assigned by the OpenGL specification.

// Context capability flags.
const (
	Blend                  = 0x0BE2
	DepthTest              = 0x0B71
	CullFace               = 0x0B44
	ProgramPointSize       = 0x8642
	ScissorTest            = 0x0C11
	StencilTest            = 0x0B90
	PrimitiveRestart       = 0x8F9D
	TextureCubeMapSeamless = 0x884F
)

// Blend factors.
const (
	Zero             = 0x0000
	One              = 0x0001
	SrcColor         = 0x0300
	OneMinusSrcColor = 0x0301
	SrcAlpha         = 0x0302
	OneMinusSrcAlpha = 0x0303
	DstAlpha         = 0x0304
	OneMinusDstAlpha = 0x0305
	DstColor         = 0x0306
	OneMinusDstColor = 0x0307
)

// Blend equations.
const (
	FuncAdd             = 0x8006
	FuncSubtract        = 0x800A
	FuncReverseSubtract = 0x800B
	Min                 = 0x8007
	Max                 = 0x8008
)

// Error codes returned by GetError.
const (
	NoError                     = 0x0000
	InvalidEnum                 = 0x0500
	InvalidValue                = 0x0501
	InvalidOperation            = 0x0502
	StackOverflow               = 0x0503
	StackUnderflow              = 0x0504
	OutOfMemory                 = 0x0505
	InvalidFramebufferOperation = 0x0506
)

// Buffer targets and usage hints.
const (
	ArrayBuffer = 0x8892

	StreamDraw  = 0x88E0
	StaticDraw  = 0x88E4
	DynamicDraw = 0x88E8
)

// Texture targets and parameters.
const (
	Texture2D = 0x0DE1

	TextureMagFilter = 0x2800
	TextureMinFilter = 0x2801
	TextureWrapS     = 0x2802
	TextureWrapT     = 0x2803

	Nearest = 0x2600
	Linear  = 0x2601

	Repeat         = 0x2901
	ClampToEdge    = 0x812F
	ClampToBorder  = 0x812D
	MirroredRepeat = 0x8370
)

// Framebuffer targets, attachment points and statuses.
const (
	Framebuffer = 0x8D40

	ColorAttachment0 = 0x8CE0
	DepthAttachment  = 0x8D00
	Back             = 0x0405

	FramebufferComplete                    = 0x8CD5
	FramebufferIncompleteAttachment        = 0x8CD6
	FramebufferIncompleteMissingAttachment = 0x8CD7
	FramebufferIncompleteDimensions        = 0x8CD9
	FramebufferIncompleteFormats           = 0x8CDA
	FramebufferIncompleteDrawBuffer        = 0x8CDB
	FramebufferIncompleteReadBuffer        = 0x8CDC
	FramebufferUnsupported                 = 0x8CDD
	FramebufferIncompleteMultisample       = 0x8D56
)

// Clear bits.
const (
	DepthBufferBit = 0x0100
	ColorBufferBit = 0x4000
)

// Pixel transfer formats.
const (
	DepthComponent = 0x1902
	Red            = 0x1903
	RGB            = 0x1907
	RGBA           = 0x1908
	RG             = 0x8227
	RedInteger     = 0x8D94
	RGInteger      = 0x8228
	RGBInteger     = 0x8D98
	RGBAInteger    = 0x8D99
)

// Pixel component types.
const (
	Byte          = 0x1400
	UnsignedByte  = 0x1401
	Short         = 0x1402
	UnsignedShort = 0x1403
	Int           = 0x1404
	UnsignedInt   = 0x1405
	Float         = 0x1406
	HalfFloat     = 0x140B
)

// Sized internal formats.
const (
	R8                = 0x8229
	RG8               = 0x822B
	RGB8              = 0x8051
	RGBA8             = 0x8058
	R16F              = 0x822D
	R32F              = 0x822E
	RG16F             = 0x822F
	RG32F             = 0x8230
	RGBA16F           = 0x881A
	RGBA32F           = 0x8814
	DepthComponent24  = 0x81A6
	DepthComponent32F = 0x8CAC
	Depth24Stencil8   = 0x88F0
)

// State and limit names for GetInteger/GetFloat/GetString queries.
const (
	Vendor                 = 0x1F00
	Renderer               = 0x1F01
	Version                = 0x1F02
	ShadingLanguageVersion = 0x8B8C
	MajorVersion           = 0x821B
	MinorVersion           = 0x821C
	ContextProfileMask     = 0x9126
	ViewportRect           = 0x0BA2
	SampleBuffers          = 0x80A8
	SubpixelBits           = 0x0D50
	PatchVertices          = 0x8E72

	MaxTextureSize                       = 0x0D33
	MaxViewportDims                      = 0x0D3A
	Max3DTextureSize                     = 0x8073
	MaxArrayTextureLayers                = 0x88FF
	MaxColorAttachments                  = 0x8CDF
	MaxColorTextureSamples               = 0x910E
	MaxCombinedFragmentUniformComponents = 0x8A33
	MaxCombinedGeometryUniformComponents = 0x8A32
	MaxCombinedTextureImageUnits         = 0x8B4D
	MaxCombinedUniformBlocks             = 0x8A2E
	MaxCombinedVertexUniformComponents   = 0x8A31
	MaxCubeMapTextureSize                = 0x851C
	MaxDepthTextureSamples               = 0x910F
	MaxDrawBuffers                       = 0x8824
	MaxDualSourceDrawBuffers             = 0x88FC
	MaxElementsIndices                   = 0x80E9
	MaxElementsVertices                  = 0x80E8
	MaxFragmentInputComponents           = 0x9125
	MaxFragmentUniformBlocks             = 0x8A2D
	MaxFragmentUniformComponents         = 0x8B49
	MaxFragmentUniformVectors            = 0x8DFD
	MaxGeometryInputComponents           = 0x9123
	MaxGeometryOutputComponents          = 0x9124
	MaxGeometryTextureImageUnits         = 0x8C29
	MaxGeometryUniformBlocks             = 0x8A2C
	MaxGeometryUniformComponents         = 0x8DDF
	MaxIntegerSamples                    = 0x9110
	MaxRectangleTextureSize              = 0x84F8
	MaxRenderbufferSize                  = 0x84E8
	MaxSampleMaskWords                   = 0x8E59
	MaxSamples                           = 0x8D57
	MaxTextureBufferSize                 = 0x8C2B
	MaxTextureImageUnits                 = 0x8872
	MaxTextureMaxAnisotropy              = 0x84FF
	MaxUniformBlockSize                  = 0x8A30
	MaxUniformBufferBindings             = 0x8A2F
	MaxVaryingVectors                    = 0x8DFC
	MaxVertexAttribs                     = 0x8869
	MaxVertexOutputComponents            = 0x9122
	MaxVertexTextureImageUnits           = 0x8B4C
	MaxVertexUniformBlocks               = 0x8A2B
	MaxVertexUniformComponents           = 0x8B4A
	MaxVertexUniformVectors              = 0x8DFB
	UniformBufferOffsetAlignment         = 0x8A34
)

// errorNames maps GetError codes to their specification names.
var errorNames = map[uint32]string{
	InvalidEnum:                 "GL_INVALID_ENUM",
	InvalidValue:                "GL_INVALID_VALUE",
	InvalidOperation:            "GL_INVALID_OPERATION",
	InvalidFramebufferOperation: "GL_INVALID_FRAMEBUFFER_OPERATION",
	OutOfMemory:                 "GL_OUT_OF_MEMORY",
	StackUnderflow:              "GL_STACK_UNDERFLOW",
	StackOverflow:               "GL_STACK_OVERFLOW",
}

// ErrorString returns the specification name of an error code.
// NoError maps to the empty string; unrecognized codes map to
// "GL_UNKNOWN_ERROR" rather than failing.
func ErrorString(code uint32) string {
	if code == NoError {
		return ""
	}
	if name, ok := errorNames[code]; ok {
		return name
	}
	return "GL_UNKNOWN_ERROR"
}
