// Package glapi defines the capability-provider interface between glcontext
// and an OpenGL implementation.
//
// # Overview
//
// glcontext never calls OpenGL directly. Every native operation goes through
// the [API] interface, which an implementation package provides:
//
//   - backend/gl41 binds API to a real OpenGL 4.1 core context via go-gl.
//   - Tests supply in-memory fakes that record calls and script results.
//
// The interface deliberately mirrors the flat C API: opaque uint32 handles,
// enum parameters, no richer types. Shaping those calls into a safe,
// lifecycle-managed surface is glcontext's job, not glapi's.
//
// # Enums
//
// The package also carries the OpenGL enum values glcontext needs (context
// flags, blend factors, framebuffer statuses, pixel transfer formats, limit
// names). Values are the ones assigned by the OpenGL specification, so they
// can be passed through to any conforming implementation unchanged.
package glapi
