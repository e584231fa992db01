package glcontext

import (
	"fmt"

	"github.com/gogpu/glcontext/glapi"
)

// incompleteReasons translates native completeness statuses into messages.
// See the framebuffer completeness rules in the OpenGL specification.
var incompleteReasons = map[uint32]string{
	glapi.FramebufferUnsupported:                 "framebuffer unsupported, try another format",
	glapi.FramebufferIncompleteAttachment:        "incomplete attachment",
	glapi.FramebufferIncompleteMissingAttachment: "missing attachment",
	glapi.FramebufferIncompleteDimensions:        "unsupported dimensions",
	glapi.FramebufferIncompleteFormats:           "incomplete formats",
	glapi.FramebufferIncompleteDrawBuffer:        "incomplete draw buffer",
	glapi.FramebufferIncompleteReadBuffer:        "incomplete read buffer",
	glapi.FramebufferIncompleteMultisample:       "incomplete multisample",
}

// Framebuffer is an offscreen render target backed by texture attachments.
//
// Supplying textures as attachments keeps the rendered contents available
// for further work after the framebuffer is unbound. The default
// framebuffer (the window buffer) is represented by a sentinel with
// IsDefault true; sentinels are never created or destroyed by the
// lifecycle machinery.
type Framebuffer struct {
	ctx    *Context
	handle uint32

	width  int
	height int

	colorAttachments []*Texture
	depthAttachment  *Texture

	depthMask   bool
	drawBuffers []uint32
	isDefault   bool
}

// FramebufferOption configures framebuffer creation.
type FramebufferOption func(*framebufferOptions)

type framebufferOptions struct {
	depth *Texture
}

// WithDepthAttachment attaches a depth texture.
func WithDepthAttachment(depth *Texture) FramebufferOption {
	return func(o *framebufferOptions) {
		o.depth = depth
	}
}

// newDefaultFramebuffer builds the sentinel representing the window-system
// framebuffer (native name 0).
func newDefaultFramebuffer(ctx *Context, width, height int) *Framebuffer {
	return &Framebuffer{
		ctx:       ctx,
		width:     width,
		height:    height,
		depthMask: true,
		isDefault: true,
	}
}

// Framebuffer creates a framebuffer from one or more color attachments and
// an optional depth attachment.
//
//	// One 256x256 color attachment
//	tex, _ := ctx.Texture(256, 256)
//	fbo, err := ctx.Framebuffer([]*glcontext.Texture{tex})
//
// At least one color attachment is required and all attachments must
// report the same size; both are checked before any native binding
// happens. After attaching, the native completeness status is verified
// and any non-complete status fails with the specific reason.
func (c *Context) Framebuffer(colorAttachments []*Texture, opts ...FramebufferOption) (*Framebuffer, error) {
	options := framebufferOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if len(colorAttachments) == 0 {
		return nil, ErrNoColorAttachment
	}

	f := &Framebuffer{
		ctx:              c,
		colorAttachments: colorAttachments,
		depthAttachment:  options.depth,
		depthMask:        true,
	}

	width, height, err := f.detectSize()
	if err != nil {
		return nil, err
	}
	f.width, f.height = width, height

	f.handle = c.api.CreateFramebuffer()
	c.api.BindFramebuffer(glapi.Framebuffer, f.handle)

	for i, tex := range f.colorAttachments {
		c.api.FramebufferTexture2D(glapi.Framebuffer,
			glapi.ColorAttachment0+uint32(i), glapi.Texture2D, tex.Handle(), 0)
	}
	if f.depthAttachment != nil {
		c.api.FramebufferTexture2D(glapi.Framebuffer,
			glapi.DepthAttachment, glapi.Texture2D, f.depthAttachment.Handle(), 0)
	}

	if err := f.checkCompleteness(); err != nil {
		// The handle is freed right away; a framebuffer that failed its
		// completeness check never enters lifecycle management.
		c.api.DeleteFramebuffer(f.handle)
		f.handle = 0
		return nil, err
	}

	// Prepared list of attachment enums applied on every bind to activate
	// the color attachment layers.
	f.drawBuffers = make([]uint32, len(f.colorAttachments))
	for i := range f.colorAttachments {
		f.drawBuffers[i] = glapi.ColorAttachment0 + uint32(i)
	}

	c.stats.Incr(KindFramebuffer)
	return f, nil
}

// Handle returns the native framebuffer name. The default framebuffer
// reports 0.
func (f *Framebuffer) Handle() uint32 {
	return f.handle
}

// IsDefault reports whether this is the window-system framebuffer sentinel.
func (f *Framebuffer) IsDefault() bool {
	return f.isDefault
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Size returns the framebuffer size as (width, height).
func (f *Framebuffer) Size() (width, height int) {
	return f.width, f.height
}

// ColorAttachments returns the color attachment textures.
func (f *Framebuffer) ColorAttachments() []*Texture {
	return f.colorAttachments
}

// DepthAttachment returns the depth attachment, or nil.
func (f *Framebuffer) DepthAttachment() *Texture {
	return f.depthAttachment
}

// DepthMask reports whether depth values are written while this
// framebuffer is bound. The value is persistent and applied on every bind.
func (f *Framebuffer) DepthMask() bool {
	return f.depthMask
}

// SetDepthMask sets whether depth values are written while this
// framebuffer is bound.
func (f *Framebuffer) SetDepthMask(mask bool) {
	f.depthMask = mask
}

// Use binds the framebuffer, making it the target of all rendering
// commands, and records it as the context's active framebuffer.
//
// When the framebuffer is already tracked as active and force is false,
// the native bind is skipped; the active-framebuffer reference is updated
// regardless.
func (f *Framebuffer) Use(force bool) {
	f.use(force)
	f.ctx.active = f
}

// use issues the native bind without touching the active-framebuffer
// reference.
func (f *Framebuffer) use(force bool) {
	if f.ctx.active == f && !force {
		return
	}

	f.ctx.api.BindFramebuffer(glapi.Framebuffer, f.handle)
	if len(f.drawBuffers) > 0 {
		f.ctx.api.DrawBuffers(f.drawBuffers)
	}
	f.ctx.api.DepthMask(f.depthMask)
}

// Activate binds the framebuffer for the duration of fn, rebinding the
// previously active framebuffer on every exit path. Activations nest:
// each one restores the immediately prior framebuffer, not the outermost.
//
//	err := fbo.Activate(func() error {
//	    // render into fbo
//	    return nil
//	})
func (f *Framebuffer) Activate(fn func() error) error {
	prev := f.ctx.active
	f.Use(false)
	defer func() {
		if prev != nil {
			prev.Use(false)
		}
	}()
	return fn()
}

// ClearOption configures a Clear call.
type ClearOption func(*clearOptions)

type clearOptions struct {
	color    [4]float32
	depth    float64
	viewport *[4]int32
}

// WithClearColor sets the clear color from normalized components.
func WithClearColor(r, g, b, a float32) ClearOption {
	return func(o *clearOptions) {
		o.color = [4]float32{r, g, b, a}
	}
}

// WithClearColorBytes sets the clear color from 8-bit components, which
// are normalized by dividing by 255.
func WithClearColorBytes(r, g, b, a uint8) ClearOption {
	return func(o *clearOptions) {
		o.color = [4]float32{
			float32(r) / 255,
			float32(g) / 255,
			float32(b) / 255,
			float32(a) / 255,
		}
	}
}

// WithClearDepth sets the value the depth buffer is cleared to.
// Default is 1.
func WithClearDepth(depth float64) ClearOption {
	return func(o *clearOptions) {
		o.depth = depth
	}
}

// WithClearViewport restricts the clear to a rectangle, applied through
// the scissor box for the duration of the clear.
func WithClearViewport(x, y, width, height int) ClearOption {
	return func(o *clearOptions) {
		o.viewport = &[4]int32{int32(x), int32(y), int32(width), int32(height)}
	}
}

// Clear clears the framebuffer.
//
//	// Clear to opaque red
//	fbo.Clear(glcontext.WithClearColor(1, 0, 0, 1))
//	// Clear using 8-bit channel values
//	fbo.Clear(glcontext.WithClearColorBytes(0, 123, 124, 255))
//
// The depth buffer bit is cleared only when a depth attachment is present.
func (f *Framebuffer) Clear(opts ...ClearOption) {
	options := clearOptions{depth: 1}
	for _, opt := range opts {
		opt(&options)
	}

	//nolint:errcheck // the closure cannot fail
	f.Activate(func() error {
		api := f.ctx.api

		if options.viewport != nil {
			vp := *options.viewport
			api.Scissor(vp[0], vp[1], vp[2], vp[3])
			defer api.Scissor(0, 0, int32(f.width), int32(f.height))
		}

		c := options.color
		api.ClearColor(c[0], c[1], c[2], c[3])

		mask := uint32(glapi.ColorBufferBit)
		if f.depthAttachment != nil || f.isDefault {
			api.ClearDepth(options.depth)
			mask |= glapi.DepthBufferBit
		}
		api.Clear(mask)
		return nil
	})
}

// ReadOption configures a Read call.
type ReadOption func(*readOptions)

type readOptions struct {
	viewport   *[4]int32
	components int
	attachment int
	dtype      DType
}

// WithReadViewport restricts the read to a rectangle. Default is the full
// framebuffer extent.
func WithReadViewport(x, y, width, height int) ReadOption {
	return func(o *readOptions) {
		o.viewport = &[4]int32{int32(x), int32(y), int32(width), int32(height)}
	}
}

// WithReadComponents sets the number of components to read per pixel.
// Default is 3.
func WithReadComponents(components int) ReadOption {
	return func(o *readOptions) {
		o.components = components
	}
}

// WithReadAttachment selects which color attachment to read. Default is 0.
func WithReadAttachment(attachment int) ReadOption {
	return func(o *readOptions) {
		o.attachment = attachment
	}
}

// WithReadDType sets the component type to read. Default is DTypeUint8.
func WithReadDType(dtype DType) ReadOption {
	return func(o *readOptions) {
		o.dtype = dtype
	}
}

// Read reads back raw pixel bytes from the framebuffer.
//
//	// Full-extent RGB bytes
//	data, err := fbo.Read()
//	// RGBA floats from the second attachment
//	data, err := fbo.Read(
//	    glcontext.WithReadComponents(4),
//	    glcontext.WithReadAttachment(1),
//	    glcontext.WithReadDType(glcontext.DTypeFloat32),
//	)
//
// Unsupported (components, dtype) combinations fail with
// ErrInvalidReadFormat.
func (f *Framebuffer) Read(opts ...ReadOption) ([]byte, error) {
	options := readOptions{components: 3, dtype: DTypeUint8}
	for _, opt := range opts {
		opt(&options)
	}

	format, xtype, err := pixelTransferFormat(options.components, options.dtype)
	if err != nil {
		return nil, err
	}

	x, y := int32(0), int32(0)
	width, height := int32(f.width), int32(f.height)
	if options.viewport != nil {
		vp := *options.viewport
		x, y, width, height = vp[0], vp[1], vp[2], vp[3]
	}

	data := make([]byte, options.components*options.dtype.Size()*int(width)*int(height))

	activateErr := f.Activate(func() error {
		api := f.ctx.api
		if f.isDefault {
			api.ReadBuffer(glapi.Back)
		} else {
			api.ReadBuffer(glapi.ColorAttachment0 + uint32(options.attachment))
		}
		api.ReadPixels(x, y, width, height, format, xtype, data)
		return nil
	})
	if activateErr != nil {
		return nil, activateErr
	}
	return data, nil
}

// Resize re-reads the attachment sizes into the cached dimensions.
// There is no automatic change detection: after resizing an attachment
// the caller must invoke Resize to resynchronize.
func (f *Framebuffer) Resize() error {
	width, height, err := f.detectSize()
	if err != nil {
		return err
	}
	f.width, f.height = width, height
	return nil
}

// Release hands the framebuffer to the context's garbage collection
// policy. The default framebuffer sentinel is exempt and ignores Release.
func (f *Framebuffer) Release() {
	if f.isDefault {
		return
	}
	f.ctx.release(f, f.handle != 0)
}

// Delete destroys the native framebuffer immediately. Idempotent; skipped
// silently when the native context has been torn down. The default
// framebuffer sentinel is exempt.
func (f *Framebuffer) Delete() {
	if f.isDefault || f.handle == 0 {
		return
	}
	if f.ctx.api.HasContext() {
		f.ctx.api.DeleteFramebuffer(f.handle)
		f.ctx.stats.Decr(KindFramebuffer)
	}
	f.handle = 0
}

// detectSize reads the common attachment size, failing when any
// attachment disagrees.
func (f *Framebuffer) detectSize() (width, height int, err error) {
	expectedW, expectedH := f.colorAttachments[0].Size()
	for _, tex := range f.colorAttachments[1:] {
		w, h := tex.Size()
		if w != expectedW || h != expectedH {
			return 0, 0, fmt.Errorf("%w: %dx%d vs %dx%d",
				ErrAttachmentSizeMismatch, w, h, expectedW, expectedH)
		}
	}
	if f.depthAttachment != nil {
		w, h := f.depthAttachment.Size()
		if w != expectedW || h != expectedH {
			return 0, 0, fmt.Errorf("%w: depth %dx%d vs %dx%d",
				ErrAttachmentSizeMismatch, w, h, expectedW, expectedH)
		}
	}
	return expectedW, expectedH, nil
}

// checkCompleteness verifies the bound framebuffer forms a usable render
// target, naming the specific incompleteness reason on failure.
func (f *Framebuffer) checkCompleteness() error {
	status := f.ctx.api.CheckFramebufferStatus(glapi.Framebuffer)
	if status == glapi.FramebufferComplete {
		return nil
	}
	reason, ok := incompleteReasons[status]
	if !ok {
		reason = fmt.Sprintf("unknown status %#x", status)
	}
	return fmt.Errorf("%w: %s", ErrIncompleteFramebuffer, reason)
}

// String implements fmt.Stringer.
func (f *Framebuffer) String() string {
	return fmt.Sprintf("<Framebuffer handle=%d size=%dx%d>", f.handle, f.width, f.height)
}
