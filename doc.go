// Package glcontext provides a high-level wrapper around OpenGL buffer and
// framebuffer objects with context-managed resource lifetimes.
//
// # Overview
//
// A [Context] owns every native resource created through its factory
// methods and tracks global state (capability flags, blend function, point
// size, primitive restart index) as both an in-memory cache and the
// corresponding device state. The underlying OpenGL implementation is
// consumed through the [glapi.API] interface; backend/gl41 provides a
// production binding via go-gl.
//
// # Quick start
//
//	api, err := gl41.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx, err := glcontext.New(api)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tex, _ := ctx.Texture(256, 256)
//	fbo, _ := ctx.Framebuffer([]*glcontext.Texture{tex})
//	fbo.Clear(glcontext.WithClearColorBytes(0, 123, 124, 255))
//
// # Resource lifetimes
//
// OpenGL handles are manual resources living behind a garbage-collected
// host, so glcontext never relies on runtime finalizers. Every resource
// exposes an explicit Release method and an idempotent Delete. The context
// GC mode decides what Release does:
//
//   - GCModeAuto: the native handle is deleted immediately.
//   - GCModeDeferred (default): the resource is queued, and handles are
//     freed in batch when [Context.GC] runs. This confines all native
//     delete calls to one well-known point on the render thread.
//
// Double deletes and deletes after the native context is torn down are
// silent no-ops; they are expected races during shutdown, not errors.
//
// # Scoped state
//
// State-changing helpers with a fn parameter ([Context.Enabled],
// [Context.EnabledOnly], [Framebuffer.Activate]) restore the previous
// state on every exit path, including error returns and panics.
//
// # Concurrency
//
// Context and its resources follow a single-threaded cooperative model:
// native calls are issued synchronously, in invocation order, on the
// calling goroutine. Concurrent use is unsupported. Only the package
// logger (see [SetLogger]) is safe for concurrent use.
package glcontext
