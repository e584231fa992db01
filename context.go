package glcontext

import (
	"container/list"
	"fmt"

	"github.com/gogpu/glcontext/glapi"
)

// Garbage collection modes.
const (
	// GCModeAuto frees a resource's native handle as soon as the resource
	// is released.
	GCModeAuto = "auto"

	// GCModeDeferred queues released resources and frees their native
	// handles only when Context.GC runs. This is the default: it lets an
	// application confine all native delete calls to its render thread.
	GCModeDeferred = "deferred"
)

// resource is a native-handle owner managed by the Context's lifecycle
// machinery. Delete must be idempotent.
type resource interface {
	Delete()
}

// Context owns the native resources and global state of one OpenGL context.
//
// All resource creation goes through factory methods on Context (Buffer,
// Texture, Framebuffer), so every resource carries a back-reference to the
// Context that manages its lifetime and statistics.
//
// Context follows a single-threaded cooperative model: every method issues
// native calls synchronously on the calling goroutine, in invocation order,
// with no batching or reordering. Concurrent use from multiple goroutines
// is unsupported.
type Context struct {
	api    glapi.API
	limits *Limits
	stats  *Stats

	glVersion [2]int

	// Texture unit used for incidental texture operations so the first
	// units keep their caller-bound textures.
	defaultTextureUnit int32

	gcMode  string
	pending *list.List // released resources awaiting GC, FIFO

	flags        flagSet
	blendFunc    BlendFunc
	pointSize    float32
	restartIndex int32

	screen *Framebuffer
	active *Framebuffer
}

// New creates a Context over the given native API.
//
// Construction queries the device limits snapshot, applies the hardcoded
// initial state (seamless cube maps, primitive restart at index -1,
// scissor test) and sets up the default framebuffer sentinel as the active
// render target.
func New(api glapi.API, opts ...Option) (*Context, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Context{
		api:     api,
		gcMode:  GCModeDeferred,
		pending: list.New(),
		flags:   newFlagSet(),
	}
	if err := c.SetGCMode(options.gcMode); err != nil {
		return nil, err
	}

	c.limits = queryLimits(api)
	c.glVersion = [2]int{int(c.limits.MajorVersion), int(c.limits.MinorVersion)}
	c.defaultTextureUnit = c.limits.MaxTextureImageUnits - 1
	c.stats = newStats(options.warnThreshold)

	// Hardcoded states.
	// Seamless filtering across cube map faces should always be on.
	api.Enable(glapi.TextureCubeMapSeamless)
	api.Enable(glapi.PrimitiveRestart)
	c.restartIndex = -1
	c.SetPrimitiveRestartIndex(c.restartIndex)
	// Scissor testing stays enabled and is kept in sync with the viewport
	// so the clear color cannot bleed outside it.
	api.Enable(glapi.ScissorTest)

	c.blendFunc = BlendDefault
	c.pointSize = 1.0

	width, height := options.screenWidth, options.screenHeight
	if options.querySize {
		var vp [4]int32
		api.GetIntegers(glapi.ViewportRect, vp[:])
		width, height = int(vp[2]), int(vp[3])
	}
	c.screen = newDefaultFramebuffer(c, width, height)
	c.active = c.screen

	return c, nil
}

// GLVersion returns the OpenGL version as (major, minor).
func (c *Context) GLVersion() (major, minor int) {
	return c.glVersion[0], c.glVersion[1]
}

// Limits returns the device limits snapshot taken at construction.
func (c *Context) Limits() *Limits {
	return c.limits
}

// Stats returns the resource usage counters for this context.
func (c *Context) Stats() *Stats {
	return c.stats
}

// DefaultTextureUnit returns the texture unit reserved for incidental
// texture operations.
func (c *Context) DefaultTextureUnit() int32 {
	return c.defaultTextureUnit
}

// Screen returns the default framebuffer sentinel. It is never created or
// destroyed by the lifecycle machinery.
func (c *Context) Screen() *Framebuffer {
	return c.screen
}

// ActiveFramebuffer returns the framebuffer currently tracked as the
// active render target.
func (c *Context) ActiveFramebuffer() *Framebuffer {
	return c.active
}

// GCMode returns the current garbage collection mode.
func (c *Context) GCMode() string {
	return c.gcMode
}

// SetGCMode sets the garbage collection mode to GCModeAuto or
// GCModeDeferred. Any other value fails with ErrInvalidGCMode and leaves
// the previous mode unchanged.
//
// Changing the mode affects only subsequently released resources; it does
// not retroactively convert deletions already queued.
func (c *Context) SetGCMode(mode string) error {
	switch mode {
	case GCModeAuto, GCModeDeferred:
		c.gcMode = mode
		return nil
	default:
		return fmt.Errorf("%w: %q (supported: %q, %q)",
			ErrInvalidGCMode, mode, GCModeAuto, GCModeDeferred)
	}
}

// enqueue appends a released resource to the pending deletion queue.
func (c *Context) enqueue(r resource) {
	c.pending.PushBack(r)
}

// GC deletes every resource in the pending queue and returns the number
// deleted. It is only needed when the mode is GCModeDeferred.
//
// Deleting one resource may release others as a side effect, so the loop
// re-checks the queue length after every pop rather than iterating over a
// snapshot; entries queued mid-drain are collected in the same call.
func (c *Context) GC() int {
	num := 0
	for c.pending.Len() > 0 {
		front := c.pending.Front()
		c.pending.Remove(front)
		front.Value.(resource).Delete()
		num++
	}
	return num
}

// PendingDeletions returns the number of resources queued for deferred
// deletion.
func (c *Context) PendingDeletions() int {
	return c.pending.Len()
}

// release routes a resource through the current GC mode. Under GCModeAuto
// the native handle is deleted immediately; under GCModeDeferred the
// resource is queued for the next GC call. live reports whether the
// resource still owns a handle, so already-deleted resources are never
// queued twice.
func (c *Context) release(r resource, live bool) {
	if !live {
		return
	}
	switch c.gcMode {
	case GCModeAuto:
		r.Delete()
	case GCModeDeferred:
		c.enqueue(r)
	}
}

// CheckError polls the native error code and returns its name, or the
// empty string when no error is recorded. Unknown codes map to
// "GL_UNKNOWN_ERROR".
//
// The code is diagnostic only: no other operation consults it, so callers
// that care must poll.
//
// Example:
//
//	if err := ctx.CheckError(); err != "" {
//	    log.Printf("OpenGL error: %s", err)
//	}
func (c *Context) CheckError() string {
	return glapi.ErrorString(c.api.GetError())
}

// Finish blocks until all previously issued native calls complete.
// This stalls the pipeline and can have severe performance implications.
func (c *Context) Finish() {
	c.api.Finish()
}

// Flush suggests that the driver start executing queued calls even though
// the queue is not full. Non-blocking, and only a suggestion.
func (c *Context) Flush() {
	c.api.Flush()
}
