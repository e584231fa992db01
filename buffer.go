package glcontext

import (
	"fmt"

	"github.com/gogpu/glcontext/glapi"
)

// BufferUsage hints how buffer contents will change over time.
type BufferUsage uint32

// Buffer usage hints.
const (
	// BufferUsageStatic contents are set once and drawn many times.
	BufferUsageStatic BufferUsage = glapi.StaticDraw
	// BufferUsageDynamic contents change occasionally between draws.
	BufferUsageDynamic BufferUsage = glapi.DynamicDraw
	// BufferUsageStream contents change every draw.
	BufferUsageStream BufferUsage = glapi.StreamDraw
)

// String returns the usage name.
func (u BufferUsage) String() string {
	switch u {
	case BufferUsageStatic:
		return "static"
	case BufferUsageDynamic:
		return "dynamic"
	case BufferUsageStream:
		return "stream"
	default:
		return fmt.Sprintf("Unknown(%#x)", uint32(u))
	}
}

// Buffer is an OpenGL buffer object owning exactly one native handle.
//
// A handle value of zero means the buffer has been deleted (or never
// created); it is never double-deleted.
type Buffer struct {
	ctx    *Context
	handle uint32
	size   int
	usage  BufferUsage
}

// BufferOption configures buffer creation.
type BufferOption func(*bufferOptions)

type bufferOptions struct {
	data    []byte
	reserve int
	usage   BufferUsage
}

// WithData sets the initial buffer contents. The buffer size is the data
// length.
func WithData(data []byte) BufferOption {
	return func(o *bufferOptions) {
		o.data = data
	}
}

// WithReserve allocates n bytes of uninitialized storage instead of
// supplying data.
func WithReserve(n int) BufferOption {
	return func(o *bufferOptions) {
		o.reserve = n
	}
}

// WithUsage sets the buffer usage hint. Default is BufferUsageStatic.
func WithUsage(usage BufferUsage) BufferOption {
	return func(o *bufferOptions) {
		o.usage = usage
	}
}

// Buffer creates a new buffer object.
//
//	// From data
//	buf, err := ctx.Buffer(glcontext.WithData(vertices))
//	// Reserve 1024 bytes for streaming
//	buf, err := ctx.Buffer(glcontext.WithReserve(1024),
//	    glcontext.WithUsage(glcontext.BufferUsageStream))
//
// Either data or a positive reserve size is required.
func (c *Context) Buffer(opts ...BufferOption) (*Buffer, error) {
	options := bufferOptions{usage: BufferUsageStatic}
	for _, opt := range opts {
		opt(&options)
	}

	switch options.usage {
	case BufferUsageStatic, BufferUsageDynamic, BufferUsageStream:
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBufferUsage, options.usage)
	}

	size := len(options.data)
	if size == 0 {
		if options.reserve <= 0 {
			return nil, ErrNoBufferData
		}
		size = options.reserve
	}

	b := &Buffer{
		ctx:    c,
		handle: c.api.CreateBuffer(),
		size:   size,
		usage:  options.usage,
	}

	c.api.BindBuffer(glapi.ArrayBuffer, b.handle)
	c.api.BufferData(glapi.ArrayBuffer, size, options.data, uint32(options.usage))

	c.stats.Incr(KindBuffer)
	return b, nil
}

// Handle returns the native buffer name, or zero after deletion.
func (b *Buffer) Handle() uint32 {
	return b.handle
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() int {
	return b.size
}

// Usage returns the usage hint the buffer was created with.
func (b *Buffer) Usage() BufferUsage {
	return b.usage
}

// Write copies data into the buffer storage at the given byte offset.
func (b *Buffer) Write(data []byte, offset int) error {
	if offset < 0 || offset+len(data) > b.size {
		return fmt.Errorf("%w: write of %d bytes at offset %d exceeds buffer size %d",
			ErrConfiguration, len(data), offset, b.size)
	}
	b.ctx.api.BindBuffer(glapi.ArrayBuffer, b.handle)
	b.ctx.api.BufferSubData(glapi.ArrayBuffer, offset, data)
	return nil
}

// Read copies size bytes starting at the given byte offset out of the
// buffer storage. A negative size reads to the end of the buffer.
func (b *Buffer) Read(size, offset int) ([]byte, error) {
	if size < 0 {
		size = b.size - offset
	}
	if offset < 0 || size < 0 || offset+size > b.size {
		return nil, fmt.Errorf("%w: read of %d bytes at offset %d exceeds buffer size %d",
			ErrConfiguration, size, offset, b.size)
	}
	out := make([]byte, size)
	b.ctx.api.BindBuffer(glapi.ArrayBuffer, b.handle)
	b.ctx.api.GetBufferSubData(glapi.ArrayBuffer, offset, out)
	return out, nil
}

// Release hands the buffer to the context's garbage collection policy:
// immediate deletion under GCModeAuto, queued under GCModeDeferred.
// The buffer must not be used afterwards.
func (b *Buffer) Release() {
	b.ctx.release(b, b.handle != 0)
}

// Delete destroys the native buffer immediately.
//
// Delete is idempotent: once the handle is zero the call is a no-op. If
// the native context has already been torn down the delete call and the
// statistics decrement are skipped, which is expected during shutdown
// races, not an error.
func (b *Buffer) Delete() {
	if b.handle == 0 {
		return
	}
	if b.ctx.api.HasContext() {
		b.ctx.api.DeleteBuffer(b.handle)
		b.ctx.stats.Decr(KindBuffer)
	}
	b.handle = 0
}
