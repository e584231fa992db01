package gl41

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glcontext/glapi"
)

// Backend implements glapi.API over the OpenGL 4.1 core profile.
//
// All methods must run on the thread that owns the current context; the
// usual arrangement is runtime.LockOSThread in main before creating the
// window.
type Backend struct{}

// New loads the OpenGL function pointers from the current context.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl41: loading OpenGL function pointers: %w", err)
	}
	return &Backend{}, nil
}

// ptrOrNil returns a pointer to the slice data, or nil for an empty slice
// so storage is allocated uninitialized.
func ptrOrNil(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// Buffers.

func (b *Backend) CreateBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (b *Backend) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (b *Backend) BufferData(target uint32, size int, data []byte, usage uint32) {
	gl.BufferData(target, size, ptrOrNil(data), usage)
}

func (b *Backend) BufferSubData(target uint32, offset int, data []byte) {
	gl.BufferSubData(target, offset, len(data), gl.Ptr(data))
}

func (b *Backend) GetBufferSubData(target uint32, offset int, out []byte) {
	gl.GetBufferSubData(target, offset, len(out), gl.Ptr(out))
}

func (b *Backend) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

// Textures.

func (b *Backend) CreateTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (b *Backend) BindTexture(target, texture uint32) {
	gl.BindTexture(target, texture)
}

func (b *Backend) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, data []byte) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, ptrOrNil(data))
}

func (b *Backend) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (b *Backend) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

// Framebuffers.

func (b *Backend) CreateFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (b *Backend) BindFramebuffer(target, framebuffer uint32) {
	gl.BindFramebuffer(target, framebuffer)
}

func (b *Backend) FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32) {
	gl.FramebufferTexture2D(target, attachment, textarget, texture, level)
}

func (b *Backend) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (b *Backend) DrawBuffers(bufs []uint32) {
	gl.DrawBuffers(int32(len(bufs)), &bufs[0])
}

func (b *Backend) ReadBuffer(src uint32) {
	gl.ReadBuffer(src)
}

func (b *Backend) ReadPixels(x, y, width, height int32, format, xtype uint32, out []byte) {
	gl.ReadPixels(x, y, width, height, format, xtype, gl.Ptr(out))
}

func (b *Backend) DeleteFramebuffer(framebuffer uint32) {
	gl.DeleteFramebuffers(1, &framebuffer)
}

// Global state.

func (b *Backend) Enable(capability uint32) {
	gl.Enable(capability)
}

func (b *Backend) Disable(capability uint32) {
	gl.Disable(capability)
}

func (b *Backend) BlendFunc(sfactor, dfactor uint32) {
	gl.BlendFunc(sfactor, dfactor)
}

func (b *Backend) PointSize(size float32) {
	gl.PointSize(size)
}

func (b *Backend) PrimitiveRestartIndex(index uint32) {
	gl.PrimitiveRestartIndex(index)
}

func (b *Backend) PatchParameteri(pname uint32, value int32) {
	gl.PatchParameteri(pname, value)
}

func (b *Backend) DepthMask(flag bool) {
	gl.DepthMask(flag)
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	gl.ClearColor(r, g, bl, a)
}

func (b *Backend) ClearDepth(depth float64) {
	gl.ClearDepth(depth)
}

func (b *Backend) Clear(mask uint32) {
	gl.Clear(mask)
}

func (b *Backend) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

func (b *Backend) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// Queries.

func (b *Backend) GetInteger(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

func (b *Backend) GetIntegers(pname uint32, out []int32) {
	gl.GetIntegerv(pname, &out[0])
}

func (b *Backend) GetFloat(pname uint32) float32 {
	var v float32
	gl.GetFloatv(pname, &v)
	return v
}

func (b *Backend) GetString(pname uint32) string {
	return gl.GoStr(gl.GetString(pname))
}

func (b *Backend) GetError() uint32 {
	return gl.GetError()
}

// Synchronization.

func (b *Backend) Finish() {
	gl.Finish()
}

func (b *Backend) Flush() {
	gl.Flush()
}

// HasContext reports whether a native context is still current on the
// calling thread. Deletes are skipped once the window is gone.
func (b *Backend) HasContext() bool {
	return glfw.GetCurrentContext() != nil
}

var _ glapi.API = (*Backend)(nil)
