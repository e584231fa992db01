package glcontext

import "github.com/gogpu/glcontext/glapi"

// Limits is an immutable snapshot of device limits and version info.
//
// It is populated once when a Context is created and never mutated
// afterward. Values a driver does not implement simply come back zero;
// the queries themselves never fail, though a non-zero error code recorded
// during the sweep is logged as a warning.
type Limits struct {
	// Version info.
	MajorVersion           int32
	MinorVersion           int32
	Vendor                 string
	Renderer               string
	Version                string
	ShadingLanguageVersion string
	ContextProfileMask     int32

	// Rasterizer properties.
	SampleBuffers int32
	SubpixelBits  int32

	// Texture limits.
	MaxTextureSize               int32
	Max3DTextureSize             int32
	MaxArrayTextureLayers        int32
	MaxCubeMapTextureSize        int32
	MaxRectangleTextureSize      int32
	MaxTextureBufferSize         int32
	MaxTextureImageUnits         int32
	MaxCombinedTextureImageUnits int32
	MaxVertexTextureImageUnits   int32
	MaxGeometryTextureImageUnits int32
	MaxTextureMaxAnisotropy      float32

	// Framebuffer limits.
	MaxColorAttachments      int32
	MaxDrawBuffers           int32
	MaxDualSourceDrawBuffers int32
	MaxRenderbufferSize      int32
	MaxSamples               int32
	MaxColorTextureSamples   int32
	MaxDepthTextureSamples   int32
	MaxIntegerSamples        int32
	MaxSampleMaskWords       int32

	// Vertex processing limits.
	MaxVertexAttribs          int32
	MaxElementsVertices       int32
	MaxElementsIndices        int32
	MaxVertexOutputComponents int32
	MaxVaryingVectors         int32

	// Uniform limits.
	MaxUniformBlockSize                  int32
	MaxUniformBufferBindings             int32
	UniformBufferOffsetAlignment         int32
	MaxVertexUniformComponents           int32
	MaxVertexUniformVectors              int32
	MaxVertexUniformBlocks               int32
	MaxFragmentUniformComponents         int32
	MaxFragmentUniformVectors            int32
	MaxFragmentUniformBlocks             int32
	MaxFragmentInputComponents           int32
	MaxGeometryUniformComponents         int32
	MaxGeometryUniformBlocks             int32
	MaxGeometryInputComponents           int32
	MaxGeometryOutputComponents          int32
	MaxCombinedUniformBlocks             int32
	MaxCombinedVertexUniformComponents   int32
	MaxCombinedGeometryUniformComponents int32
	MaxCombinedFragmentUniformComponents int32

	// Viewport limits.
	MaxViewportDims [2]int32
}

// queryLimits reads the full limits snapshot from the device.
func queryLimits(api glapi.API) *Limits {
	l := &Limits{
		MajorVersion:           api.GetInteger(glapi.MajorVersion),
		MinorVersion:           api.GetInteger(glapi.MinorVersion),
		Vendor:                 api.GetString(glapi.Vendor),
		Renderer:               api.GetString(glapi.Renderer),
		Version:                api.GetString(glapi.Version),
		ShadingLanguageVersion: api.GetString(glapi.ShadingLanguageVersion),
		ContextProfileMask:     api.GetInteger(glapi.ContextProfileMask),

		SampleBuffers: api.GetInteger(glapi.SampleBuffers),
		SubpixelBits:  api.GetInteger(glapi.SubpixelBits),

		MaxTextureSize:               api.GetInteger(glapi.MaxTextureSize),
		Max3DTextureSize:             api.GetInteger(glapi.Max3DTextureSize),
		MaxArrayTextureLayers:        api.GetInteger(glapi.MaxArrayTextureLayers),
		MaxCubeMapTextureSize:        api.GetInteger(glapi.MaxCubeMapTextureSize),
		MaxRectangleTextureSize:      api.GetInteger(glapi.MaxRectangleTextureSize),
		MaxTextureBufferSize:         api.GetInteger(glapi.MaxTextureBufferSize),
		MaxTextureImageUnits:         api.GetInteger(glapi.MaxTextureImageUnits),
		MaxCombinedTextureImageUnits: api.GetInteger(glapi.MaxCombinedTextureImageUnits),
		MaxVertexTextureImageUnits:   api.GetInteger(glapi.MaxVertexTextureImageUnits),
		MaxGeometryTextureImageUnits: api.GetInteger(glapi.MaxGeometryTextureImageUnits),
		MaxTextureMaxAnisotropy:      api.GetFloat(glapi.MaxTextureMaxAnisotropy),

		MaxColorAttachments:      api.GetInteger(glapi.MaxColorAttachments),
		MaxDrawBuffers:           api.GetInteger(glapi.MaxDrawBuffers),
		MaxDualSourceDrawBuffers: api.GetInteger(glapi.MaxDualSourceDrawBuffers),
		MaxRenderbufferSize:      api.GetInteger(glapi.MaxRenderbufferSize),
		MaxSamples:               api.GetInteger(glapi.MaxSamples),
		MaxColorTextureSamples:   api.GetInteger(glapi.MaxColorTextureSamples),
		MaxDepthTextureSamples:   api.GetInteger(glapi.MaxDepthTextureSamples),
		MaxIntegerSamples:        api.GetInteger(glapi.MaxIntegerSamples),
		MaxSampleMaskWords:       api.GetInteger(glapi.MaxSampleMaskWords),

		MaxVertexAttribs:          api.GetInteger(glapi.MaxVertexAttribs),
		MaxElementsVertices:       api.GetInteger(glapi.MaxElementsVertices),
		MaxElementsIndices:        api.GetInteger(glapi.MaxElementsIndices),
		MaxVertexOutputComponents: api.GetInteger(glapi.MaxVertexOutputComponents),
		MaxVaryingVectors:         api.GetInteger(glapi.MaxVaryingVectors),

		MaxUniformBlockSize:                  api.GetInteger(glapi.MaxUniformBlockSize),
		MaxUniformBufferBindings:             api.GetInteger(glapi.MaxUniformBufferBindings),
		UniformBufferOffsetAlignment:         api.GetInteger(glapi.UniformBufferOffsetAlignment),
		MaxVertexUniformComponents:           api.GetInteger(glapi.MaxVertexUniformComponents),
		MaxVertexUniformVectors:              api.GetInteger(glapi.MaxVertexUniformVectors),
		MaxVertexUniformBlocks:               api.GetInteger(glapi.MaxVertexUniformBlocks),
		MaxFragmentUniformComponents:         api.GetInteger(glapi.MaxFragmentUniformComponents),
		MaxFragmentUniformVectors:            api.GetInteger(glapi.MaxFragmentUniformVectors),
		MaxFragmentUniformBlocks:             api.GetInteger(glapi.MaxFragmentUniformBlocks),
		MaxFragmentInputComponents:           api.GetInteger(glapi.MaxFragmentInputComponents),
		MaxGeometryUniformComponents:         api.GetInteger(glapi.MaxGeometryUniformComponents),
		MaxGeometryUniformBlocks:             api.GetInteger(glapi.MaxGeometryUniformBlocks),
		MaxGeometryInputComponents:           api.GetInteger(glapi.MaxGeometryInputComponents),
		MaxGeometryOutputComponents:          api.GetInteger(glapi.MaxGeometryOutputComponents),
		MaxCombinedUniformBlocks:             api.GetInteger(glapi.MaxCombinedUniformBlocks),
		MaxCombinedVertexUniformComponents:   api.GetInteger(glapi.MaxCombinedVertexUniformComponents),
		MaxCombinedGeometryUniformComponents: api.GetInteger(glapi.MaxCombinedGeometryUniformComponents),
		MaxCombinedFragmentUniformComponents: api.GetInteger(glapi.MaxCombinedFragmentUniformComponents),
	}

	var dims [2]int32
	api.GetIntegers(glapi.MaxViewportDims, dims[:])
	l.MaxViewportDims = dims

	if code := api.GetError(); code != glapi.NoError {
		Logger().Warn("error recorded while querying device limits",
			"error", glapi.ErrorString(code))
	}

	return l
}
