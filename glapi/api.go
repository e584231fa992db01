package glapi

// API is the set of native calls glcontext consumes.
//
// Calls are treated as infallible at the type level, matching the C API:
// failures surface through the global error code polled with GetError.
// All methods must be invoked from the thread that owns the native context.
type API interface {
	// Buffers.

	// CreateBuffer generates one buffer object name.
	CreateBuffer() uint32
	// BindBuffer binds a buffer object to the given target.
	BindBuffer(target, buffer uint32)
	// BufferData allocates size bytes of storage for the bound buffer and,
	// when data is non-nil, initializes it. The usage hint is one of the
	// *Draw constants.
	BufferData(target uint32, size int, data []byte, usage uint32)
	// BufferSubData updates a sub-range of the bound buffer's storage.
	BufferSubData(target uint32, offset int, data []byte)
	// GetBufferSubData reads a sub-range of the bound buffer into out.
	GetBufferSubData(target uint32, offset int, out []byte)
	// DeleteBuffer deletes a buffer object name.
	DeleteBuffer(buffer uint32)

	// Textures.

	// CreateTexture generates one texture object name.
	CreateTexture() uint32
	// BindTexture binds a texture object to the given target.
	BindTexture(target, texture uint32)
	// TexImage2D specifies storage and optional initial data for the bound
	// 2D texture.
	TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, data []byte)
	// TexParameteri sets an integer texture parameter on the bound texture.
	TexParameteri(target, pname uint32, param int32)
	// DeleteTexture deletes a texture object name.
	DeleteTexture(texture uint32)

	// Framebuffers.

	// CreateFramebuffer generates one framebuffer object name.
	CreateFramebuffer() uint32
	// BindFramebuffer binds a framebuffer object to the given target.
	// Binding name 0 restores the window-system framebuffer.
	BindFramebuffer(target, framebuffer uint32)
	// FramebufferTexture2D attaches a texture level to the bound framebuffer.
	FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32)
	// CheckFramebufferStatus returns the completeness status of the bound
	// framebuffer as one of the Framebuffer* status constants.
	CheckFramebufferStatus(target uint32) uint32
	// DrawBuffers selects the color attachments rendered to.
	DrawBuffers(bufs []uint32)
	// ReadBuffer selects the color attachment read by ReadPixels.
	ReadBuffer(src uint32)
	// ReadPixels reads a rectangle of pixel data from the bound framebuffer
	// into out, which must be large enough for the requested format.
	ReadPixels(x, y, width, height int32, format, xtype uint32, out []byte)
	// DeleteFramebuffer deletes a framebuffer object name.
	DeleteFramebuffer(framebuffer uint32)

	// Global state.

	// Enable turns on a server-side capability flag.
	Enable(capability uint32)
	// Disable turns off a server-side capability flag.
	Disable(capability uint32)
	// BlendFunc sets the source and destination blend factors.
	BlendFunc(sfactor, dfactor uint32)
	// PointSize sets the rasterized diameter of points.
	PointSize(size float32)
	// PrimitiveRestartIndex sets the vertex index that restarts primitives.
	PrimitiveRestartIndex(index uint32)
	// PatchParameteri sets an integer tessellation patch parameter.
	PatchParameteri(pname uint32, value int32)
	// DepthMask enables or disables writes to the depth buffer.
	DepthMask(flag bool)
	// ClearColor sets the color used by Clear, in normalized components.
	ClearColor(r, g, b, a float32)
	// ClearDepth sets the depth value used by Clear.
	ClearDepth(depth float64)
	// Clear clears the buffers selected by mask.
	Clear(mask uint32)
	// Scissor sets the scissor rectangle.
	Scissor(x, y, width, height int32)
	// Viewport sets the viewport rectangle.
	Viewport(x, y, width, height int32)

	// Queries.

	// GetInteger returns a single integer state value or limit.
	GetInteger(pname uint32) int32
	// GetIntegers fills out with a multi-component integer state value.
	GetIntegers(pname uint32, out []int32)
	// GetFloat returns a single float state value or limit.
	GetFloat(pname uint32) float32
	// GetString returns a string describing the implementation.
	GetString(pname uint32) string
	// GetError returns and clears the oldest recorded error code, or
	// NoError when none is set.
	GetError() uint32

	// Synchronization.

	// Finish blocks until all previously issued native calls complete.
	Finish()
	// Flush asks the driver to start executing queued calls. Non-blocking.
	Flush()

	// HasContext reports whether a native context is still current on the
	// calling thread. Deferred resource deletion consults this before
	// issuing delete calls; deleting into a torn-down context is skipped.
	HasContext() bool
}
