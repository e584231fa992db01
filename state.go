package glcontext

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/gogpu/glcontext/glapi"
)

// flagSet caches the enabled capability flags. The thread-unsafe variant
// matches the context's single-threaded model.
type flagSet = mapset.Set[uint32]

func newFlagSet(flags ...uint32) flagSet {
	return mapset.NewThreadUnsafeSet(flags...)
}

// syncedFlags is the enumerated set of capabilities EnableOnly synchronizes
// to the device. Flags outside this list are tracked in the cached set but
// not applied natively; that boundary is part of the EnableOnly contract.
var syncedFlags = [...]uint32{
	glapi.Blend,
	glapi.DepthTest,
	glapi.CullFace,
	glapi.ProgramPointSize,
}

// BlendFunc is a (source factor, destination factor) pair.
type BlendFunc struct {
	Src uint32
	Dst uint32
}

// Common blend function shortcuts.
var (
	// BlendDefault is standard alpha blending: SRC_ALPHA, ONE_MINUS_SRC_ALPHA.
	BlendDefault = BlendFunc{glapi.SrcAlpha, glapi.OneMinusSrcAlpha}
	// BlendAdditive is additive blending: ONE, ONE.
	BlendAdditive = BlendFunc{glapi.One, glapi.One}
	// BlendPremultipliedAlpha blends premultiplied alpha: SRC_ALPHA, ONE.
	BlendPremultipliedAlpha = BlendFunc{glapi.SrcAlpha, glapi.One}
)

// Enable turns on one or more context flags.
//
//	ctx.Enable(glapi.Blend)
//	ctx.Enable(glapi.DepthTest, glapi.CullFace)
func (c *Context) Enable(flags ...uint32) {
	for _, flag := range flags {
		c.flags.Add(flag)
		c.api.Enable(flag)
	}
}

// Disable turns off one or more context flags.
func (c *Context) Disable(flags ...uint32) {
	for _, flag := range flags {
		c.flags.Remove(flag)
		c.api.Disable(flag)
	}
}

// IsEnabled reports whether a context flag is in the cached enabled set.
func (c *Context) IsEnabled(flag uint32) bool {
	return c.flags.Contains(flag)
}

// EnableOnly replaces the enabled flag set wholesale. It is a simple way
// to make sure flag state is not lingering from other sections of a code
// base:
//
//	// Disable everything
//	ctx.EnableOnly()
//	// Make sure only blending is enabled
//	ctx.EnableOnly(glapi.Blend)
//
// Only the enumerated togglable capabilities (blend, depth test, face
// culling, program point size) are explicitly enabled or disabled on the
// device; any other flag passed in is tracked in the cached set but not
// synchronized.
func (c *Context) EnableOnly(flags ...uint32) {
	c.flags = newFlagSet(flags...)

	for _, flag := range syncedFlags {
		if c.flags.Contains(flag) {
			c.api.Enable(flag)
		} else {
			c.api.Disable(flag)
		}
	}
}

// Enabled runs fn with the given flags enabled on top of the current set,
// then restores the exact prior set on every exit path, including when fn
// returns an error or panics.
//
//	err := ctx.Enabled(func() error {
//	    // render something
//	    return nil
//	}, glapi.Blend, glapi.CullFace)
func (c *Context) Enabled(fn func() error, flags ...uint32) error {
	prev := c.flags.Clone()
	c.Enable(flags...)
	defer func() {
		added := c.flags.Difference(prev)
		c.Disable(added.ToSlice()...)
		c.Enable(prev.ToSlice()...)
	}()
	return fn()
}

// EnabledOnly runs fn with exactly the given flags enabled, then restores
// the prior set through EnableOnly on every exit path.
func (c *Context) EnabledOnly(fn func() error, flags ...uint32) error {
	prev := c.flags.Clone()
	c.EnableOnly(flags...)
	defer func() {
		c.EnableOnly(prev.ToSlice()...)
	}()
	return fn()
}

// BlendFunc returns the cached blend function pair.
func (c *Context) BlendFunc() BlendFunc {
	return c.blendFunc
}

// SetBlendFunc sets the blend function pair, applying it to the device
// immediately.
//
//	ctx.SetBlendFunc(glcontext.BlendAdditive)
func (c *Context) SetBlendFunc(bf BlendFunc) {
	c.blendFunc = bf
	c.api.BlendFunc(bf.Src, bf.Dst)
}

// PointSize returns the cached point size.
func (c *Context) PointSize() float32 {
	return c.pointSize
}

// SetPointSize sets the point size.
//
// The device receives the previously cached value before the cache is
// overwritten, so the size passed to the first call only reaches the
// device on the next call. Callers that need the new size applied in the
// same call can invoke SetPointSize twice with the same value.
func (c *Context) SetPointSize(size float32) {
	c.api.PointSize(c.pointSize)
	c.pointSize = size
}

// PrimitiveRestartIndex returns the cached primitive restart index.
// The default is -1, which in two's complement selects the all-bits-set
// vertex index and disables restart clipping in practice.
func (c *Context) PrimitiveRestartIndex() int32 {
	return c.restartIndex
}

// SetPrimitiveRestartIndex sets the primitive restart index, applying it
// to the device immediately.
func (c *Context) SetPrimitiveRestartIndex(index int32) {
	c.restartIndex = index
	c.api.PrimitiveRestartIndex(uint32(index))
}

// PatchVertices returns the number of vertices that make up a single
// tessellation patch primitive, read from the device.
func (c *Context) PatchVertices() int32 {
	return c.api.GetInteger(glapi.PatchVertices)
}

// SetPatchVertices sets the number of vertices per tessellation patch.
func (c *Context) SetPatchVertices(count int32) {
	c.api.PatchParameteri(glapi.PatchVertices, count)
}
