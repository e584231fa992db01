package glcontext

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcontext/glapi"
)

// Texture is a 2D OpenGL texture owning exactly one native handle.
//
// Textures are the attachment type for framebuffers. Formats use the
// shared gputypes vocabulary and are mapped to OpenGL storage through an
// internal table; formats outside the table are rejected at creation.
type Texture struct {
	ctx    *Context
	handle uint32
	width  int
	height int
	format gputypes.TextureFormat
	gf     glFormat
}

// TextureOption configures texture creation.
type TextureOption func(*textureOptions)

type textureOptions struct {
	format gputypes.TextureFormat
	data   []byte
	filter [2]int32
}

// WithTextureFormat sets the texture format. Default is
// gputypes.TextureFormatRGBA8Unorm.
func WithTextureFormat(format gputypes.TextureFormat) TextureOption {
	return func(o *textureOptions) {
		o.format = format
	}
}

// WithTextureData supplies initial pixel data. The length must match
// width * height * bytes-per-pixel for the chosen format.
func WithTextureData(data []byte) TextureOption {
	return func(o *textureOptions) {
		o.data = data
	}
}

// WithFilter sets the minification and magnification filters.
// Default is linear for both.
func WithFilter(minFilter, magFilter int32) TextureOption {
	return func(o *textureOptions) {
		o.filter = [2]int32{minFilter, magFilter}
	}
}

// Texture creates a new 2D texture.
//
//	// 4-component 8-bit texture
//	tex, err := ctx.Texture(256, 256)
//	// Depth texture for a framebuffer depth attachment
//	depth, err := ctx.Texture(256, 256,
//	    glcontext.WithTextureFormat(gputypes.TextureFormatDepth24Plus))
func (c *Context) Texture(width, height int, opts ...TextureOption) (*Texture, error) {
	options := textureOptions{
		format: gputypes.TextureFormatRGBA8Unorm,
		filter: [2]int32{glapi.Linear, glapi.Linear},
	}
	for _, opt := range opts {
		opt(&options)
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, width, height)
	}
	gf, err := lookupTextureFormat(options.format)
	if err != nil {
		return nil, err
	}
	if options.data != nil {
		if want := width * height * gf.bytesPerPixel; len(options.data) != want {
			return nil, fmt.Errorf("%w: got %d bytes, want %d",
				ErrInvalidTextureData, len(options.data), want)
		}
	}

	t := &Texture{
		ctx:    c,
		handle: c.api.CreateTexture(),
		width:  width,
		height: height,
		format: options.format,
		gf:     gf,
	}

	c.api.BindTexture(glapi.Texture2D, t.handle)
	c.api.TexImage2D(glapi.Texture2D, 0, gf.internal,
		int32(width), int32(height), gf.format, gf.xtype, options.data)
	c.api.TexParameteri(glapi.Texture2D, glapi.TextureMinFilter, options.filter[0])
	c.api.TexParameteri(glapi.Texture2D, glapi.TextureMagFilter, options.filter[1])

	c.stats.Incr(KindTexture)
	return t, nil
}

// Handle returns the native texture name, or zero after deletion.
func (t *Texture) Handle() uint32 {
	return t.handle
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Size returns the texture size as (width, height).
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Format returns the texture format.
func (t *Texture) Format() gputypes.TextureFormat {
	return t.format
}

// IsDepth reports whether the format is usable as a depth attachment.
func (t *Texture) IsDepth() bool {
	return t.gf.depth
}

// Write replaces the full texture contents.
func (t *Texture) Write(data []byte) error {
	if want := t.width * t.height * t.gf.bytesPerPixel; len(data) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidTextureData, len(data), want)
	}
	t.ctx.api.BindTexture(glapi.Texture2D, t.handle)
	t.ctx.api.TexImage2D(glapi.Texture2D, 0, t.gf.internal,
		int32(t.width), int32(t.height), t.gf.format, t.gf.xtype, data)
	return nil
}

// Release hands the texture to the context's garbage collection policy.
func (t *Texture) Release() {
	t.ctx.release(t, t.handle != 0)
}

// Delete destroys the native texture immediately. Idempotent; skipped
// silently when the native context has been torn down.
func (t *Texture) Delete() {
	if t.handle == 0 {
		return
	}
	if t.ctx.api.HasContext() {
		t.ctx.api.DeleteTexture(t.handle)
		t.ctx.stats.Decr(KindTexture)
	}
	t.handle = 0
}
