package glcontext

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the base class for all errors caused by invalid
// arguments to a constructor or accessor. Every configuration sentinel
// below wraps it, so callers can match the whole family with
// errors.Is(err, ErrConfiguration) or an individual sentinel for the
// specific failure.
var ErrConfiguration = errors.New("glcontext: invalid configuration")

// Configuration errors. All raised synchronously at the call that detected
// them; none are deferred.
var (
	// ErrInvalidGCMode is returned by SetGCMode for any mode other than
	// GCModeAuto or GCModeDeferred.
	ErrInvalidGCMode = wrapConfig("unsupported gc mode")

	// ErrNoBufferData is returned when a buffer is created without data
	// or a reserve size.
	ErrNoBufferData = wrapConfig("buffer requires data or a reserve size")

	// ErrInvalidBufferUsage is returned for an unrecognized buffer usage hint.
	ErrInvalidBufferUsage = wrapConfig("invalid buffer usage")

	// ErrInvalidTextureSize is returned when texture dimensions are not
	// positive.
	ErrInvalidTextureSize = wrapConfig("texture dimensions must be positive")

	// ErrUnsupportedTextureFormat is returned when a texture format has no
	// OpenGL mapping.
	ErrUnsupportedTextureFormat = wrapConfig("unsupported texture format")

	// ErrInvalidTextureData is returned when initial texture data does not
	// match the computed storage size.
	ErrInvalidTextureData = wrapConfig("texture data length mismatch")

	// ErrNoColorAttachment is returned when a framebuffer is created
	// without color attachments.
	ErrNoColorAttachment = wrapConfig("framebuffer requires at least one color attachment")

	// ErrAttachmentSizeMismatch is returned when framebuffer attachments
	// report different sizes.
	ErrAttachmentSizeMismatch = wrapConfig("framebuffer attachments must have the same size")

	// ErrInvalidReadFormat is returned for an unsupported combination of
	// component count and data type in a pixel read.
	ErrInvalidReadFormat = wrapConfig("unsupported pixel read format")
)

// ErrIncompleteFramebuffer is returned when the native completeness check
// fails after attaching textures. The wrapped message names the specific
// incompleteness reason reported by the implementation.
var ErrIncompleteFramebuffer = errors.New("glcontext: framebuffer is incomplete")

func wrapConfig(msg string) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, msg)
}
