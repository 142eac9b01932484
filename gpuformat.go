package pixel

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// TextureFormat maps the pixel format to its WebGPU texture format, the
// currency of the texture upload and render-target readback layers. Formats
// with no WebGPU equivalent (channel orders WebGPU does not define, the
// premultiplied DXT2/DXT4 variants) return an error.
func (f Format) TextureFormat() (gputypes.TextureFormat, error) {
	switch f {
	case FormatR8:
		return gputypes.TextureFormatR8Unorm, nil
	case FormatRG8:
		return gputypes.TextureFormatRG8Unorm, nil
	case FormatRGBA8, FormatRGBX8:
		return gputypes.TextureFormatRGBA8Unorm, nil
	case FormatBGRA8, FormatBGRX8:
		return gputypes.TextureFormatBGRA8Unorm, nil
	case FormatR16F:
		return gputypes.TextureFormatR16Float, nil
	case FormatRG16F:
		return gputypes.TextureFormatRG16Float, nil
	case FormatRGBA16F:
		return gputypes.TextureFormatRGBA16Float, nil
	case FormatR32F:
		return gputypes.TextureFormatR32Float, nil
	case FormatRG32F:
		return gputypes.TextureFormatRG32Float, nil
	case FormatRGBA32F:
		return gputypes.TextureFormatRGBA32Float, nil
	case FormatDXT1:
		return gputypes.TextureFormatBC1RGBAUnorm, nil
	case FormatDXT3:
		return gputypes.TextureFormatBC2RGBAUnorm, nil
	case FormatDXT5:
		return gputypes.TextureFormatBC3RGBAUnorm, nil
	case FormatD16:
		return gputypes.TextureFormatDepth16Unorm, nil
	case FormatD32:
		return gputypes.TextureFormatDepth32Float, nil
	case FormatD24S8:
		return gputypes.TextureFormatDepth24PlusStencil8, nil
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("pixel: no texture format for %s: %w", f, ErrNotImplemented)
}

// FromTextureFormat maps a WebGPU texture format back to a pixel format.
func FromTextureFormat(tf gputypes.TextureFormat) (Format, error) {
	switch tf {
	case gputypes.TextureFormatR8Unorm:
		return FormatR8, nil
	case gputypes.TextureFormatRG8Unorm:
		return FormatRG8, nil
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA8, nil
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRA8, nil
	case gputypes.TextureFormatR16Float:
		return FormatR16F, nil
	case gputypes.TextureFormatRG16Float:
		return FormatRG16F, nil
	case gputypes.TextureFormatRGBA16Float:
		return FormatRGBA16F, nil
	case gputypes.TextureFormatR32Float:
		return FormatR32F, nil
	case gputypes.TextureFormatRG32Float:
		return FormatRG32F, nil
	case gputypes.TextureFormatRGBA32Float:
		return FormatRGBA32F, nil
	case gputypes.TextureFormatBC1RGBAUnorm:
		return FormatDXT1, nil
	case gputypes.TextureFormatBC2RGBAUnorm:
		return FormatDXT3, nil
	case gputypes.TextureFormatBC3RGBAUnorm:
		return FormatDXT5, nil
	case gputypes.TextureFormatDepth16Unorm:
		return FormatD16, nil
	case gputypes.TextureFormatDepth32Float:
		return FormatD32, nil
	case gputypes.TextureFormatDepth24PlusStencil8:
		return FormatD24S8, nil
	}
	return FormatUnknown, fmt.Errorf("pixel: no pixel format for texture format %d: %w", tf, ErrNotImplemented)
}

// Extent returns the volume's window extents as a WebGPU Extent3D, ready
// for texture copy descriptors.
func (v *Volume) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              v.Width(),
		Height:             v.Height(),
		DepthOrArrayLayers: v.Depth(),
	}
}
