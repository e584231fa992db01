package glcontext

import (
	"fmt"

	"github.com/gogpu/glcontext/glapi"
)

// fakeAPI is an in-memory glapi.API for tests. It hands out sequential
// handles, records calls of interest, and simulates just enough pixel
// state (last clear color) for read-back round trips.
type fakeAPI struct {
	nextHandle uint32

	liveBuffers      map[uint32]bool
	liveTextures     map[uint32]bool
	liveFramebuffers map[uint32]bool

	bufferStore map[uint32][]byte
	boundBuffer uint32

	deletedBuffers      []uint32
	deletedTextures     []uint32
	deletedFramebuffers []uint32

	enabled   map[uint32]int // capability -> net enable count (enables - disables)
	enableLog []string       // "+cap"/"-cap" in call order

	blendCalls   [][2]uint32
	pointSizes   []float32
	restartIdxs  []uint32
	scissorCalls [][4]int32

	boundFramebuffer uint32
	clearColor       [4]float32
	clearCount       int
	clearedMask      uint32

	fbStatus uint32 // status returned by CheckFramebufferStatus

	integers map[uint32]int32
	floats   map[uint32]float32
	strings  map[uint32]string
	errCode  uint32

	finishCount int
	flushCount  int

	contextLost bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		liveBuffers:      make(map[uint32]bool),
		liveTextures:     make(map[uint32]bool),
		liveFramebuffers: make(map[uint32]bool),
		bufferStore:      make(map[uint32][]byte),
		enabled:          make(map[uint32]int),
		fbStatus:         glapi.FramebufferComplete,
		integers: map[uint32]int32{
			glapi.MajorVersion:         4,
			glapi.MinorVersion:         1,
			glapi.MaxTextureImageUnits: 16,
			glapi.MaxColorAttachments:  8,
			glapi.MaxTextureSize:       16384,
		},
		floats: map[uint32]float32{
			glapi.MaxTextureMaxAnisotropy: 16,
		},
		strings: map[uint32]string{
			glapi.Vendor:   "glcontext test",
			glapi.Renderer: "fake",
			glapi.Version:  "4.1 fake",
		},
	}
}

func (f *fakeAPI) handle() uint32 {
	f.nextHandle++
	return f.nextHandle
}

// Buffers.

func (f *fakeAPI) CreateBuffer() uint32 {
	h := f.handle()
	f.liveBuffers[h] = true
	return h
}

func (f *fakeAPI) BindBuffer(target, buffer uint32) { f.boundBuffer = buffer }

func (f *fakeAPI) BufferData(target uint32, size int, data []byte, usage uint32) {
	store := make([]byte, size)
	copy(store, data)
	f.bufferStore[f.boundBuffer] = store
}

func (f *fakeAPI) BufferSubData(target uint32, offset int, data []byte) {
	copy(f.bufferStore[f.boundBuffer][offset:], data)
}

func (f *fakeAPI) GetBufferSubData(target uint32, offset int, out []byte) {
	copy(out, f.bufferStore[f.boundBuffer][offset:])
}

func (f *fakeAPI) DeleteBuffer(buffer uint32) {
	delete(f.liveBuffers, buffer)
	f.deletedBuffers = append(f.deletedBuffers, buffer)
}

// Textures.

func (f *fakeAPI) CreateTexture() uint32 {
	h := f.handle()
	f.liveTextures[h] = true
	return h
}

func (f *fakeAPI) BindTexture(target, texture uint32) {}

func (f *fakeAPI) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, data []byte) {
}

func (f *fakeAPI) TexParameteri(target, pname uint32, param int32) {}

func (f *fakeAPI) DeleteTexture(texture uint32) {
	delete(f.liveTextures, texture)
	f.deletedTextures = append(f.deletedTextures, texture)
}

// Framebuffers.

func (f *fakeAPI) CreateFramebuffer() uint32 {
	h := f.handle()
	f.liveFramebuffers[h] = true
	return h
}

func (f *fakeAPI) BindFramebuffer(target, framebuffer uint32) {
	f.boundFramebuffer = framebuffer
}

func (f *fakeAPI) FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32) {
}

func (f *fakeAPI) CheckFramebufferStatus(target uint32) uint32 { return f.fbStatus }

func (f *fakeAPI) DrawBuffers(bufs []uint32) {}

func (f *fakeAPI) ReadBuffer(src uint32) {}

// ReadPixels fills out with the last clear color converted per component
// type. Only 8-bit normalized reads reproduce exact channel values; other
// types zero-fill, which is enough for size checks.
func (f *fakeAPI) ReadPixels(x, y, width, height int32, format, xtype uint32, out []byte) {
	if xtype != glapi.UnsignedByte {
		return
	}
	components := 0
	switch format {
	case glapi.Red:
		components = 1
	case glapi.RG:
		components = 2
	case glapi.RGB:
		components = 3
	case glapi.RGBA:
		components = 4
	default:
		return
	}
	pixel := make([]byte, components)
	for i := 0; i < components; i++ {
		v := f.clearColor[i]*255 + 0.5
		if v > 255 {
			v = 255
		}
		pixel[i] = byte(v)
	}
	for i := 0; i+components <= len(out); i += components {
		copy(out[i:], pixel)
	}
}

func (f *fakeAPI) DeleteFramebuffer(framebuffer uint32) {
	delete(f.liveFramebuffers, framebuffer)
	f.deletedFramebuffers = append(f.deletedFramebuffers, framebuffer)
}

// Global state.

func (f *fakeAPI) Enable(capability uint32) {
	f.enabled[capability]++
	f.enableLog = append(f.enableLog, fmt.Sprintf("+%#x", capability))
}

func (f *fakeAPI) Disable(capability uint32) {
	f.enabled[capability]--
	f.enableLog = append(f.enableLog, fmt.Sprintf("-%#x", capability))
}

func (f *fakeAPI) isEnabled(capability uint32) bool { return f.enabled[capability] > 0 }

func (f *fakeAPI) BlendFunc(sfactor, dfactor uint32) {
	f.blendCalls = append(f.blendCalls, [2]uint32{sfactor, dfactor})
}

func (f *fakeAPI) PointSize(size float32) { f.pointSizes = append(f.pointSizes, size) }

func (f *fakeAPI) PrimitiveRestartIndex(index uint32) {
	f.restartIdxs = append(f.restartIdxs, index)
}

func (f *fakeAPI) PatchParameteri(pname uint32, value int32) {
	f.integers[pname] = value
}

func (f *fakeAPI) DepthMask(flag bool) {}

func (f *fakeAPI) ClearColor(r, g, b, a float32) { f.clearColor = [4]float32{r, g, b, a} }

func (f *fakeAPI) ClearDepth(depth float64) {}

func (f *fakeAPI) Clear(mask uint32) {
	f.clearCount++
	f.clearedMask = mask
}

func (f *fakeAPI) Scissor(x, y, width, height int32) {
	f.scissorCalls = append(f.scissorCalls, [4]int32{x, y, width, height})
}

func (f *fakeAPI) Viewport(x, y, width, height int32) {}

// Queries.

func (f *fakeAPI) GetInteger(pname uint32) int32 { return f.integers[pname] }

func (f *fakeAPI) GetIntegers(pname uint32, out []int32) {
	if pname == glapi.ViewportRect && len(out) == 4 {
		out[2], out[3] = 640, 480
	}
}

func (f *fakeAPI) GetFloat(pname uint32) float32 { return f.floats[pname] }

func (f *fakeAPI) GetString(pname uint32) string { return f.strings[pname] }

func (f *fakeAPI) GetError() uint32 {
	code := f.errCode
	f.errCode = glapi.NoError
	return code
}

// Synchronization.

func (f *fakeAPI) Finish() { f.finishCount++ }

func (f *fakeAPI) Flush() { f.flushCount++ }

func (f *fakeAPI) HasContext() bool { return !f.contextLost }

var _ glapi.API = (*fakeAPI)(nil)

// newTestContext builds a Context over a fresh fakeAPI.
func newTestContext(t interface{ Fatalf(string, ...any) }, opts ...Option) (*Context, *fakeAPI) {
	api := newFakeAPI()
	ctx, err := New(api, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return ctx, api
}
