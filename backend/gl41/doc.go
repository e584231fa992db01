// Package gl41 provides the OpenGL 4.1 core profile backend.
//
// It binds the glapi.API surface to github.com/go-gl/gl function pointers
// loaded into the current context. A window and context must exist before
// New is called; GLFW is the expected windowing layer and is also used to
// detect whether the native context is still current during teardown.
package gl41
