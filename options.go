package glcontext

// Option configures a Context during creation.
//
// Example:
//
//	ctx, err := glcontext.New(api,
//	    glcontext.WithGCMode(glcontext.GCModeAuto),
//	    glcontext.WithScreenSize(800, 600),
//	)
type Option func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	gcMode        string
	warnThreshold int
	screenWidth   int
	screenHeight  int
	querySize     bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		gcMode:        GCModeDeferred,
		warnThreshold: DefaultWarnThreshold,
		querySize:     true, // screen size comes from the current viewport
	}
}

// WithGCMode sets the initial garbage collection mode.
// Valid modes are GCModeAuto and GCModeDeferred; New fails with
// ErrInvalidGCMode for anything else.
func WithGCMode(mode string) Option {
	return func(o *contextOptions) {
		o.gcMode = mode
	}
}

// WithWarnThreshold sets the allocation count interval at which the
// statistics tracker logs. Non-positive values select the default.
func WithWarnThreshold(n int) Option {
	return func(o *contextOptions) {
		o.warnThreshold = n
	}
}

// WithScreenSize sets the size reported by the default framebuffer instead
// of reading it from the current viewport.
func WithScreenSize(width, height int) Option {
	return func(o *contextOptions) {
		o.screenWidth = width
		o.screenHeight = height
		o.querySize = false
	}
}
