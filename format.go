package glcontext

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcontext/glapi"
)

// glFormat describes how a texture format maps onto OpenGL storage and
// pixel transfer parameters.
type glFormat struct {
	internal      int32  // sized internal format
	format        uint32 // pixel transfer format
	xtype         uint32 // pixel component type
	bytesPerPixel int
	depth         bool // usable as a depth attachment
}

// textureFormats maps the shared gputypes vocabulary onto OpenGL.
// Formats outside this table are rejected at texture creation.
var textureFormats = map[gputypes.TextureFormat]glFormat{
	gputypes.TextureFormatR8Unorm:     {glapi.R8, glapi.Red, glapi.UnsignedByte, 1, false},
	gputypes.TextureFormatRG8Unorm:    {glapi.RG8, glapi.RG, glapi.UnsignedByte, 2, false},
	gputypes.TextureFormatRGBA8Unorm:  {glapi.RGBA8, glapi.RGBA, glapi.UnsignedByte, 4, false},
	gputypes.TextureFormatR16Float:    {glapi.R16F, glapi.Red, glapi.HalfFloat, 2, false},
	gputypes.TextureFormatR32Float:    {glapi.R32F, glapi.Red, glapi.Float, 4, false},
	gputypes.TextureFormatRG16Float:   {glapi.RG16F, glapi.RG, glapi.HalfFloat, 4, false},
	gputypes.TextureFormatRG32Float:   {glapi.RG32F, glapi.RG, glapi.Float, 8, false},
	gputypes.TextureFormatRGBA16Float: {glapi.RGBA16F, glapi.RGBA, glapi.HalfFloat, 8, false},
	gputypes.TextureFormatRGBA32Float: {glapi.RGBA32F, glapi.RGBA, glapi.Float, 16, false},

	gputypes.TextureFormatDepth24Plus:  {glapi.DepthComponent24, glapi.DepthComponent, glapi.UnsignedInt, 4, true},
	gputypes.TextureFormatDepth32Float: {glapi.DepthComponent32F, glapi.DepthComponent, glapi.Float, 4, true},
}

func lookupTextureFormat(f gputypes.TextureFormat) (glFormat, error) {
	gf, ok := textureFormats[f]
	if !ok {
		return glFormat{}, fmt.Errorf("%w: %v", ErrUnsupportedTextureFormat, f)
	}
	return gf, nil
}

// DType selects the component type of a pixel read-back.
type DType uint8

// Pixel component types for Framebuffer.Read. DTypeUint8 reads normalized
// 8-bit components; the integer types read through the *_INTEGER transfer
// formats; the float types read raw half or single precision floats.
const (
	DTypeUint8 DType = iota
	DTypeInt8
	DTypeUint16
	DTypeInt16
	DTypeUint32
	DTypeInt32
	DTypeFloat16
	DTypeFloat32
)

// String returns the data type name.
func (d DType) String() string {
	switch d {
	case DTypeUint8:
		return "u8"
	case DTypeInt8:
		return "i8"
	case DTypeUint16:
		return "u16"
	case DTypeInt16:
		return "i16"
	case DTypeUint32:
		return "u32"
	case DTypeInt32:
		return "i32"
	case DTypeFloat16:
		return "f16"
	case DTypeFloat32:
		return "f32"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// Size returns the component size in bytes, or 0 for an unknown type.
func (d DType) Size() int {
	switch d {
	case DTypeUint8, DTypeInt8:
		return 1
	case DTypeUint16, DTypeInt16, DTypeFloat16:
		return 2
	case DTypeUint32, DTypeInt32, DTypeFloat32:
		return 4
	default:
		return 0
	}
}

// normalizedBaseFormats indexes pixel transfer formats by component count
// for normalized and float reads.
var normalizedBaseFormats = [5]uint32{0, glapi.Red, glapi.RG, glapi.RGB, glapi.RGBA}

// integerBaseFormats indexes pixel transfer formats by component count for
// integer reads.
var integerBaseFormats = [5]uint32{0, glapi.RedInteger, glapi.RGInteger, glapi.RGBInteger, glapi.RGBAInteger}

// pixelTransferFormat resolves a (components, dtype) pair to the matching
// native transfer format and component type.
func pixelTransferFormat(components int, dtype DType) (format, xtype uint32, err error) {
	if components < 1 || components > 4 {
		return 0, 0, fmt.Errorf("%w: components must be 1-4, got %d", ErrInvalidReadFormat, components)
	}

	switch dtype {
	case DTypeUint8:
		return normalizedBaseFormats[components], glapi.UnsignedByte, nil
	case DTypeFloat16:
		return normalizedBaseFormats[components], glapi.HalfFloat, nil
	case DTypeFloat32:
		return normalizedBaseFormats[components], glapi.Float, nil
	case DTypeInt8:
		return integerBaseFormats[components], glapi.Byte, nil
	case DTypeInt16:
		return integerBaseFormats[components], glapi.Short, nil
	case DTypeInt32:
		return integerBaseFormats[components], glapi.Int, nil
	case DTypeUint16:
		return integerBaseFormats[components], glapi.UnsignedShort, nil
	case DTypeUint32:
		return integerBaseFormats[components], glapi.UnsignedInt, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown dtype %v", ErrInvalidReadFormat, dtype)
	}
}
