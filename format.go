package pixel

import "fmt"

// Format identifies a pixel encoding. The set is closed: adding a format
// means adding one descriptor row below and, if the format is not packable
// through masks and shifts, one case in the pack/unpack switches.
type Format uint32

const (
	FormatUnknown Format = iota

	// Uncompressed integer formats, 8 bits per channel. The name lists the
	// channels in memory order; X marks a padding byte carrying no data.
	FormatR8
	FormatRG8
	FormatRGB8
	FormatBGR8
	FormatARGB8
	FormatABGR8
	FormatBGRA8
	FormatRGBA8
	FormatXRGB8
	FormatXBGR8
	FormatRGBX8
	FormatBGRX8

	// Block-compressed formats. One unit encodes a 4x4 pixel block: 8 bytes
	// for DXT1, 16 bytes for DXT2 through DXT5. Treated as opaque blobs.
	FormatDXT1
	FormatDXT2
	FormatDXT3
	FormatDXT4
	FormatDXT5

	// Half-precision float formats, 16 bits per channel.
	FormatR16F
	FormatRG16F
	FormatRGB16F
	FormatRGBA16F

	// Single-precision float formats, 32 bits per channel.
	FormatR32F
	FormatRG32F
	FormatRGB32F
	FormatRGBA32F

	// Depth/stencil formats. Opaque to the pack/unpack engine.
	FormatD32S8X24
	FormatD24S8
	FormatD32
	FormatD16

	formatCount
)

// ComponentType is the data type of a single channel of a format.
type ComponentType uint8

const (
	ComponentByte ComponentType = iota
	ComponentHalf
	ComponentFloat32
)

type formatFlags uint32

const (
	flagHasAlpha formatFlags = 1 << iota
	flagFloat
	flagCompressed
	flagDepth
	// flagPackable marks formats whose whole pixel fits one machine word
	// and is encoded purely through per-channel masks and shifts.
	flagPackable
)

// formatDesc describes one pixel encoding: element size, channel layout and
// the masks/shifts used by the pack/unpack engine for packable formats.
type formatDesc struct {
	name      string
	elemBytes uint32
	flags     formatFlags
	compType  ComponentType
	compCount uint32

	rbits, gbits, bbits, abits uint32

	rmask, gmask, bmask, amask     uint32
	rshift, gshift, bshift, ashift uint32
}

// formatTable is the registry: immutable process-wide state, one row per
// Format, indexed densely by the enumeration. Never mutated after init.
var formatTable = [formatCount]formatDesc{
	FormatUnknown: {name: "Unknown"},

	FormatR8: {name: "R8", elemBytes: 1, compType: ComponentByte, compCount: 1,
		rbits: 8,
		rmask: 0x000000FF},
	FormatRG8: {name: "RG8", elemBytes: 2, compType: ComponentByte, compCount: 2,
		rbits: 8, gbits: 8,
		rmask: 0x000000FF, gmask: 0x0000FF00, gshift: 8},
	FormatRGB8: {name: "RGB8", elemBytes: 3, flags: flagPackable, compType: ComponentByte, compCount: 3,
		rbits: 8, gbits: 8, bbits: 8,
		rmask: 0x000000FF, gmask: 0x0000FF00, bmask: 0x00FF0000,
		gshift: 8, bshift: 16},
	FormatBGR8: {name: "BGR8", elemBytes: 3, flags: flagPackable, compType: ComponentByte, compCount: 3,
		rbits: 8, gbits: 8, bbits: 8,
		rmask: 0x00FF0000, gmask: 0x0000FF00, bmask: 0x000000FF,
		rshift: 16, gshift: 8},
	FormatARGB8: {name: "ARGB8", elemBytes: 4, flags: flagHasAlpha | flagPackable, compType: ComponentByte, compCount: 4,
		rbits: 8, gbits: 8, bbits: 8, abits: 8,
		rmask: 0x0000FF00, gmask: 0x00FF0000, bmask: 0xFF000000, amask: 0x000000FF,
		rshift: 8, gshift: 16, bshift: 24},
	FormatABGR8: {name: "ABGR8", elemBytes: 4, flags: flagHasAlpha | flagPackable, compType: ComponentByte, compCount: 4,
		rbits: 8, gbits: 8, bbits: 8, abits: 8,
		rmask: 0xFF000000, gmask: 0x00FF0000, bmask: 0x0000FF00, amask: 0x000000FF,
		rshift: 24, gshift: 16, bshift: 8},
	FormatBGRA8: {name: "BGRA8", elemBytes: 4, flags: flagHasAlpha | flagPackable, compType: ComponentByte, compCount: 4,
		rbits: 8, gbits: 8, bbits: 8, abits: 8,
		rmask: 0x00FF0000, gmask: 0x0000FF00, bmask: 0x000000FF, amask: 0xFF000000,
		rshift: 16, gshift: 8, ashift: 24},
	FormatRGBA8: {name: "RGBA8", elemBytes: 4, flags: flagHasAlpha | flagPackable, compType: ComponentByte, compCount: 4,
		rbits: 8, gbits: 8, bbits: 8, abits: 8,
		rmask: 0x000000FF, gmask: 0x0000FF00, bmask: 0x00FF0000, amask: 0xFF000000,
		gshift: 8, bshift: 16, ashift: 24},
	FormatXRGB8: {name: "XRGB8", elemBytes: 4, flags: flagPackable, compType: ComponentByte, compCount: 3,
		rbits: 8, gbits: 8, bbits: 8,
		rmask: 0x0000FF00, gmask: 0x00FF0000, bmask: 0xFF000000, amask: 0x000000FF,
		rshift: 8, gshift: 16, bshift: 24},
	FormatXBGR8: {name: "XBGR8", elemBytes: 4, flags: flagPackable, compType: ComponentByte, compCount: 3,
		rbits: 8, gbits: 8, bbits: 8,
		rmask: 0xFF000000, gmask: 0x00FF0000, bmask: 0x0000FF00, amask: 0x000000FF,
		rshift: 24, gshift: 16, bshift: 8},
	FormatRGBX8: {name: "RGBX8", elemBytes: 4, flags: flagPackable, compType: ComponentByte, compCount: 3,
		rbits: 8, gbits: 8, bbits: 8,
		rmask: 0x000000FF, gmask: 0x0000FF00, bmask: 0x00FF0000, amask: 0xFF000000,
		gshift: 8, bshift: 16},
	FormatBGRX8: {name: "BGRX8", elemBytes: 4, flags: flagPackable, compType: ComponentByte, compCount: 3,
		rbits: 8, gbits: 8, bbits: 8,
		rmask: 0x00FF0000, gmask: 0x0000FF00, bmask: 0x000000FF, amask: 0xFF000000,
		rshift: 16, gshift: 8},

	FormatDXT1: {name: "DXT1", flags: flagCompressed | flagHasAlpha, compType: ComponentByte, compCount: 3},
	FormatDXT2: {name: "DXT2", flags: flagCompressed | flagHasAlpha, compType: ComponentByte, compCount: 4},
	FormatDXT3: {name: "DXT3", flags: flagCompressed | flagHasAlpha, compType: ComponentByte, compCount: 4},
	FormatDXT4: {name: "DXT4", flags: flagCompressed | flagHasAlpha, compType: ComponentByte, compCount: 4},
	FormatDXT5: {name: "DXT5", flags: flagCompressed | flagHasAlpha, compType: ComponentByte, compCount: 4},

	FormatR16F: {name: "R16F", elemBytes: 2, flags: flagFloat, compType: ComponentHalf, compCount: 1,
		rbits: 16},
	FormatRG16F: {name: "RG16F", elemBytes: 4, flags: flagFloat, compType: ComponentHalf, compCount: 2,
		rbits: 16, gbits: 16},
	FormatRGB16F: {name: "RGB16F", elemBytes: 6, flags: flagFloat, compType: ComponentHalf, compCount: 3,
		rbits: 16, gbits: 16, bbits: 16},
	FormatRGBA16F: {name: "RGBA16F", elemBytes: 8, flags: flagFloat | flagHasAlpha, compType: ComponentHalf, compCount: 4,
		rbits: 16, gbits: 16, bbits: 16, abits: 16},

	FormatR32F: {name: "R32F", elemBytes: 4, flags: flagFloat, compType: ComponentFloat32, compCount: 1,
		rbits: 32},
	FormatRG32F: {name: "RG32F", elemBytes: 8, flags: flagFloat, compType: ComponentFloat32, compCount: 2,
		rbits: 32, gbits: 32},
	FormatRGB32F: {name: "RGB32F", elemBytes: 12, flags: flagFloat, compType: ComponentFloat32, compCount: 3,
		rbits: 32, gbits: 32, bbits: 32},
	FormatRGBA32F: {name: "RGBA32F", elemBytes: 16, flags: flagFloat | flagHasAlpha, compType: ComponentFloat32, compCount: 4,
		rbits: 32, gbits: 32, bbits: 32, abits: 32},

	FormatD32S8X24: {name: "D32S8X24", elemBytes: 8, flags: flagDepth | flagFloat, compType: ComponentFloat32, compCount: 2},
	FormatD24S8:    {name: "D24S8", elemBytes: 4, flags: flagDepth | flagFloat, compType: ComponentFloat32, compCount: 1},
	FormatD32:      {name: "D32", elemBytes: 4, flags: flagDepth | flagFloat, compType: ComponentFloat32, compCount: 1},
	FormatD16:      {name: "D16", elemBytes: 2, flags: flagDepth | flagFloat, compType: ComponentHalf, compCount: 1},
}

// desc returns the descriptor row for f. An out-of-range format is a
// programming error, not a runtime condition.
func (f Format) desc() *formatDesc {
	if f >= formatCount {
		panic(fmt.Sprintf("pixel: format %d out of range", uint32(f)))
	}
	return &formatTable[f]
}

// String returns the human-readable format name.
func (f Format) String() string { return f.desc().name }

// ElemBytes returns the size of one element in bytes. Block-compressed
// formats return 0; they are measured per 4x4 block instead.
func (f Format) ElemBytes() uint32 { return f.desc().elemBytes }

// ElemBits returns the size of one element in bits.
func (f Format) ElemBits() uint32 { return f.desc().elemBytes * 8 }

// ComponentType returns the data type of a single channel.
func (f Format) ComponentType() ComponentType { return f.desc().compType }

// ComponentCount returns the number of channels in the format.
func (f Format) ComponentCount() uint32 { return f.desc().compCount }

// BitDepths returns the per-channel bit widths in RGBA order.
func (f Format) BitDepths() [4]uint32 {
	d := f.desc()
	return [4]uint32{d.rbits, d.gbits, d.bbits, d.abits}
}

// BitMasks returns the per-channel bit masks in RGBA order. Only meaningful
// for packable formats.
func (f Format) BitMasks() [4]uint32 {
	d := f.desc()
	return [4]uint32{d.rmask, d.gmask, d.bmask, d.amask}
}

// BitShifts returns the per-channel bit shifts in RGBA order. Only
// meaningful for packable formats.
func (f Format) BitShifts() [4]uint32 {
	d := f.desc()
	return [4]uint32{d.rshift, d.gshift, d.bshift, d.ashift}
}

// HasAlpha reports whether the format carries an alpha channel.
func (f Format) HasAlpha() bool { return f.desc().flags&flagHasAlpha != 0 }

// IsFloat reports whether the format stores floating-point channels.
func (f Format) IsFloat() bool { return f.desc().flags&flagFloat != 0 }

// IsCompressed reports whether the format is block-compressed.
func (f Format) IsCompressed() bool { return f.desc().flags&flagCompressed != 0 }

// IsDepth reports whether the format is a depth/stencil format.
func (f Format) IsDepth() bool { return f.desc().flags&flagDepth != 0 }

func (f Format) isPackable() bool { return f.desc().flags&flagPackable != 0 }

// IsAccessible reports whether elements of the format can be generically
// packed and unpacked. Unknown, compressed and depth formats cannot.
func (f Format) IsAccessible() bool {
	if f == FormatUnknown {
		return false
	}
	return f.desc().flags&(flagCompressed|flagDepth) == 0
}

// MemorySize returns the number of bytes a width x height x depth image in
// this format occupies. Block-compressed formats round width and height up
// to whole 4x4 blocks.
func (f Format) MemorySize(width, height, depth uint32) (uint32, error) {
	if f.IsCompressed() {
		blocks := ((width + 3) / 4) * ((height + 3) / 4)
		switch f {
		case FormatDXT1:
			return blocks * 8 * depth, nil
		case FormatDXT2, FormatDXT3, FormatDXT4, FormatDXT5:
			return blocks * 16 * depth, nil
		default:
			return 0, fmt.Errorf("pixel: memory size of compressed format %s: %w", f, ErrInvalidParams)
		}
	}
	return width * height * depth * f.ElemBytes(), nil
}

// IsValidExtent reports whether the format can represent an image of the
// given dimensions. Block-compressed formats require width and height
// divisible by 4 and a depth of 1.
func (f Format) IsValidExtent(width, height, depth uint32) bool {
	if !f.IsCompressed() {
		return true
	}
	switch f {
	case FormatDXT1, FormatDXT2, FormatDXT3, FormatDXT4, FormatDXT5:
		return width&3 == 0 && height&3 == 0 && depth == 1
	}
	return true
}

// aliasWithAlpha returns the alpha-bearing sibling of a padded format, or
// FormatUnknown if the format has none. XRGB8 and ARGB8 share one byte
// layout and differ only in whether the fourth byte is interpreted.
func (f Format) aliasWithAlpha() Format {
	switch f {
	case FormatXRGB8:
		return FormatARGB8
	case FormatXBGR8:
		return FormatABGR8
	}
	return FormatUnknown
}

// MaxMipmapCount returns the number of mip levels in a full chain for an
// image of the given dimensions, counting the base level. Returns 0 when
// any dimension is zero.
func MaxMipmapCount(width, height, depth uint32) uint32 {
	if width == 0 || height == 0 || depth == 0 {
		return 0
	}
	count := uint32(1)
	for !(width == 1 && height == 1 && depth == 1) {
		if width > 1 {
			width /= 2
		}
		if height > 1 {
			height /= 2
		}
		if depth > 1 {
			depth /= 2
		}
		count++
	}
	return count
}
