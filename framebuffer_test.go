package glcontext

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcontext/glapi"
)

func newTestFramebuffer(t *testing.T, ctx *Context, size int, opts ...FramebufferOption) *Framebuffer {
	t.Helper()
	tex, err := ctx.Texture(size, size)
	if err != nil {
		t.Fatalf("Texture() failed: %v", err)
	}
	fbo, err := ctx.Framebuffer([]*Texture{tex}, opts...)
	if err != nil {
		t.Fatalf("Framebuffer() failed: %v", err)
	}
	return fbo
}

func TestFramebufferCreate(t *testing.T) {
	ctx, _ := newTestContext(t)

	fbo := newTestFramebuffer(t, ctx, 64)
	if fbo.Handle() == 0 {
		t.Error("Handle() = 0 for a live framebuffer")
	}
	if w, h := fbo.Size(); w != 64 || h != 64 {
		t.Errorf("Size() = %dx%d, want 64x64", w, h)
	}
	if fbo.IsDefault() {
		t.Error("IsDefault() = true for an offscreen framebuffer")
	}
	if len(fbo.ColorAttachments()) != 1 {
		t.Errorf("ColorAttachments() length = %d, want 1", len(fbo.ColorAttachments()))
	}
	if fbo.DepthAttachment() != nil {
		t.Error("DepthAttachment() non-nil without a depth option")
	}
	if !fbo.DepthMask() {
		t.Error("DepthMask() = false, want true by default")
	}
	if got := ctx.Stats().Created(KindFramebuffer); got != 1 {
		t.Errorf("Created(framebuffer) = %d, want 1", got)
	}
}

func TestFramebufferNoColorAttachment(t *testing.T) {
	ctx, _ := newTestContext(t)

	_, err := ctx.Framebuffer(nil)
	if !errors.Is(err, ErrNoColorAttachment) {
		t.Errorf("Framebuffer(nil) error = %v, want ErrNoColorAttachment", err)
	}
}

func TestFramebufferAttachmentSizeMismatch(t *testing.T) {
	ctx, api := newTestContext(t)

	a, _ := ctx.Texture(32, 32)
	b, _ := ctx.Texture(64, 64)

	created := len(api.liveFramebuffers)
	_, err := ctx.Framebuffer([]*Texture{a, b})
	if !errors.Is(err, ErrAttachmentSizeMismatch) {
		t.Fatalf("Framebuffer() error = %v, want ErrAttachmentSizeMismatch", err)
	}
	// Size validation happens before any native allocation.
	if len(api.liveFramebuffers) != created {
		t.Error("a native framebuffer was created despite the size mismatch")
	}

	depth, _ := ctx.Texture(16, 16, WithTextureFormat(gputypes.TextureFormatDepth24Plus))
	_, err = ctx.Framebuffer([]*Texture{a}, WithDepthAttachment(depth))
	if !errors.Is(err, ErrAttachmentSizeMismatch) {
		t.Errorf("depth mismatch error = %v, want ErrAttachmentSizeMismatch", err)
	}
}

func TestFramebufferIncomplete(t *testing.T) {
	ctx, api := newTestContext(t)
	tex, _ := ctx.Texture(32, 32)

	tests := []struct {
		status uint32
		want   string
	}{
		{glapi.FramebufferUnsupported, "unsupported"},
		{glapi.FramebufferIncompleteMissingAttachment, "missing attachment"},
		{0xDEAD, "unknown status 0xdead"},
	}

	for _, tt := range tests {
		api.fbStatus = tt.status
		createdBefore := ctx.Stats().Created(KindFramebuffer)
		deletedBefore := len(api.deletedFramebuffers)

		_, err := ctx.Framebuffer([]*Texture{tex})
		if !errors.Is(err, ErrIncompleteFramebuffer) {
			t.Fatalf("status %#x: error = %v, want ErrIncompleteFramebuffer", tt.status, err)
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("status %#x: error %q does not name reason %q", tt.status, err, tt.want)
		}
		// A failed framebuffer is freed immediately and never counted.
		if len(api.deletedFramebuffers) != deletedBefore+1 {
			t.Errorf("status %#x: native handle not freed on failure", tt.status)
		}
		if got := ctx.Stats().Created(KindFramebuffer); got != createdBefore {
			t.Errorf("status %#x: stats counted a failed framebuffer", tt.status)
		}
	}
}

func TestFramebufferUse(t *testing.T) {
	ctx, api := newTestContext(t)
	fbo := newTestFramebuffer(t, ctx, 32)

	fbo.Use(false)
	if ctx.ActiveFramebuffer() != fbo {
		t.Fatal("Use did not update the active framebuffer")
	}
	if api.boundFramebuffer != fbo.Handle() {
		t.Fatalf("bound handle = %d, want %d", api.boundFramebuffer, fbo.Handle())
	}

	// Re-using the active framebuffer without force skips the native bind.
	api.boundFramebuffer = 999
	fbo.Use(false)
	if api.boundFramebuffer != 999 {
		t.Error("Use(false) rebound an already-active framebuffer")
	}

	fbo.Use(true)
	if api.boundFramebuffer != fbo.Handle() {
		t.Error("Use(true) did not force a native rebind")
	}
}

func TestFramebufferActivateNesting(t *testing.T) {
	ctx, _ := newTestContext(t)
	outer := newTestFramebuffer(t, ctx, 32)
	inner := newTestFramebuffer(t, ctx, 32)
	screen := ctx.Screen()

	err := outer.Activate(func() error {
		if ctx.ActiveFramebuffer() != outer {
			t.Error("outer not active inside its own scope")
		}
		err := inner.Activate(func() error {
			if ctx.ActiveFramebuffer() != inner {
				t.Error("inner not active inside nested scope")
			}
			return nil
		})
		if ctx.ActiveFramebuffer() != outer {
			t.Error("nested Activate did not restore the immediately prior framebuffer")
		}
		return err
	})
	if err != nil {
		t.Fatalf("Activate() returned %v", err)
	}
	if ctx.ActiveFramebuffer() != screen {
		t.Error("Activate did not restore the screen as active")
	}
}

func TestFramebufferActivateRestoresOnError(t *testing.T) {
	ctx, _ := newTestContext(t)
	fbo := newTestFramebuffer(t, ctx, 32)
	boom := errors.New("boom")

	err := fbo.Activate(func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Activate() error = %v, want %v", err, boom)
	}
	if ctx.ActiveFramebuffer() != ctx.Screen() {
		t.Error("prior framebuffer not restored after fn error")
	}
}

func TestFramebufferClearReadRoundTrip(t *testing.T) {
	ctx, _ := newTestContext(t)
	fbo := newTestFramebuffer(t, ctx, 2)

	fbo.Clear(WithClearColorBytes(0, 123, 124, 255))

	data, err := fbo.Read()
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if len(data) != 2*2*3 {
		t.Fatalf("Read() returned %d bytes, want %d", len(data), 2*2*3)
	}
	for i := 0; i < len(data); i += 3 {
		if data[i] != 0 || data[i+1] != 123 || data[i+2] != 124 {
			t.Fatalf("pixel at byte %d = (%d,%d,%d), want (0,123,124)",
				i, data[i], data[i+1], data[i+2])
		}
	}
}

func TestFramebufferClearMask(t *testing.T) {
	ctx, api := newTestContext(t)

	fbo := newTestFramebuffer(t, ctx, 8)
	fbo.Clear()
	if api.clearedMask != glapi.ColorBufferBit {
		t.Errorf("clear mask = %#x without depth attachment, want color bit only", api.clearedMask)
	}

	depth, _ := ctx.Texture(8, 8, WithTextureFormat(gputypes.TextureFormatDepth24Plus))
	tex, _ := ctx.Texture(8, 8)
	withDepth, err := ctx.Framebuffer([]*Texture{tex}, WithDepthAttachment(depth))
	if err != nil {
		t.Fatalf("Framebuffer() failed: %v", err)
	}
	withDepth.Clear()
	if api.clearedMask != glapi.ColorBufferBit|glapi.DepthBufferBit {
		t.Errorf("clear mask = %#x with depth attachment, want color|depth", api.clearedMask)
	}

	// The window framebuffer always owns a depth buffer.
	ctx.Screen().Clear()
	if api.clearedMask != glapi.ColorBufferBit|glapi.DepthBufferBit {
		t.Errorf("clear mask = %#x for the screen, want color|depth", api.clearedMask)
	}
}

func TestFramebufferClearViewportScissor(t *testing.T) {
	ctx, api := newTestContext(t)
	fbo := newTestFramebuffer(t, ctx, 16)

	api.scissorCalls = nil
	fbo.Clear(WithClearViewport(1, 2, 3, 4))

	if len(api.scissorCalls) != 2 {
		t.Fatalf("scissor calls = %d, want restrict and restore", len(api.scissorCalls))
	}
	if api.scissorCalls[0] != [4]int32{1, 2, 3, 4} {
		t.Errorf("scissor restrict = %v, want [1 2 3 4]", api.scissorCalls[0])
	}
	if api.scissorCalls[1] != [4]int32{0, 0, 16, 16} {
		t.Errorf("scissor restore = %v, want full extent", api.scissorCalls[1])
	}
}

func TestFramebufferReadOptions(t *testing.T) {
	ctx, _ := newTestContext(t)
	fbo := newTestFramebuffer(t, ctx, 4)

	// 4 components of f32 over a 2x2 viewport.
	data, err := fbo.Read(
		WithReadViewport(0, 0, 2, 2),
		WithReadComponents(4),
		WithReadDType(DTypeFloat32),
	)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if want := 2 * 2 * 4 * 4; len(data) != want {
		t.Errorf("Read() returned %d bytes, want %d", len(data), want)
	}

	if _, err := fbo.Read(WithReadComponents(5)); !errors.Is(err, ErrInvalidReadFormat) {
		t.Errorf("Read(components=5) error = %v, want ErrInvalidReadFormat", err)
	}
	if _, err := fbo.Read(WithReadDType(DType(200))); !errors.Is(err, ErrInvalidReadFormat) {
		t.Errorf("Read(unknown dtype) error = %v, want ErrInvalidReadFormat", err)
	}
}

func TestFramebufferResize(t *testing.T) {
	ctx, _ := newTestContext(t)
	fbo := newTestFramebuffer(t, ctx, 32)

	if err := fbo.Resize(); err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	if w, h := fbo.Size(); w != 32 || h != 32 {
		t.Errorf("Size() = %dx%d after Resize, want 32x32", w, h)
	}
}

func TestFramebufferDeleteIdempotent(t *testing.T) {
	ctx, api := newTestContext(t)
	fbo := newTestFramebuffer(t, ctx, 8)

	fbo.Delete()
	fbo.Delete()

	if fbo.Handle() != 0 {
		t.Errorf("Handle() = %d after Delete, want 0", fbo.Handle())
	}
	if len(api.deletedFramebuffers) != 1 {
		t.Errorf("native deletes = %d, want 1", len(api.deletedFramebuffers))
	}
}

func TestDefaultFramebufferExemptFromLifecycle(t *testing.T) {
	ctx, api := newTestContext(t)
	screen := ctx.Screen()

	screen.Release()
	screen.Delete()

	if got := ctx.PendingDeletions(); got != 0 {
		t.Errorf("PendingDeletions() = %d after releasing the screen, want 0", got)
	}
	if len(api.deletedFramebuffers) != 0 {
		t.Error("the default framebuffer issued a native delete")
	}
	if got := ctx.Stats().Freed(KindFramebuffer); got != 0 {
		t.Errorf("Freed(framebuffer) = %d, want 0", got)
	}
}

func TestFramebufferString(t *testing.T) {
	ctx, _ := newTestContext(t)
	fbo := newTestFramebuffer(t, ctx, 8)

	got := fbo.String()
	if !strings.Contains(got, "8x8") {
		t.Errorf("String() = %q, want size in it", got)
	}
}
