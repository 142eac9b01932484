package pixel

import "fmt"

// PackColor encodes c into dst in the given format. For packable formats
// the channels are rescaled to their bit widths, shifted into one machine
// word and written out; half/float formats write raw channel values in the
// format's declared order. dst must hold at least ElemBytes bytes.
func PackColor(c Color, format Format, dst []byte) error {
	d := format.desc()
	if uint32(len(dst)) < d.elemBytes {
		return fmt.Errorf("pixel: pack to %s: %w", format, ErrBufferTooSmall)
	}

	if d.flags&flagPackable != 0 {
		value := (floatToFixed(c.R, d.rbits)<<d.rshift)&d.rmask |
			(floatToFixed(c.G, d.gbits)<<d.gshift)&d.gmask |
			(floatToFixed(c.B, d.bbits)<<d.bshift)&d.bmask |
			(floatToFixed(c.A, d.abits)<<d.ashift)&d.amask
		intWrite(dst, d.elemBytes, value)
		return nil
	}

	switch format {
	case FormatR32F:
		putFloat32(dst, c.R)
	case FormatRG32F:
		putFloat32(dst, c.R)
		putFloat32(dst[4:], c.G)
	case FormatRGB32F:
		putFloat32(dst, c.R)
		putFloat32(dst[4:], c.G)
		putFloat32(dst[8:], c.B)
	case FormatRGBA32F:
		putFloat32(dst, c.R)
		putFloat32(dst[4:], c.G)
		putFloat32(dst[8:], c.B)
		putFloat32(dst[12:], c.A)
	case FormatR16F:
		putHalf(dst, c.R)
	case FormatRG16F:
		putHalf(dst, c.R)
		putHalf(dst[2:], c.G)
	case FormatRGB16F:
		putHalf(dst, c.R)
		putHalf(dst[2:], c.G)
		putHalf(dst[4:], c.B)
	case FormatRGBA16F:
		putHalf(dst, c.R)
		putHalf(dst[2:], c.G)
		putHalf(dst[4:], c.B)
		putHalf(dst[6:], c.A)
	case FormatRG8:
		dst[0] = uint8(floatToFixed(c.R, 8))
		dst[1] = uint8(floatToFixed(c.G, 8))
	case FormatR8:
		dst[0] = uint8(floatToFixed(c.R, 8))
	default:
		return fmt.Errorf("pixel: pack to %s: %w", format, ErrNotImplemented)
	}
	return nil
}

// PackColorBytes encodes 8-bit channel values into dst. Packable formats
// rescale the bytes directly; anything else converts through the float
// path.
func PackColorBytes(r, g, b, a uint8, format Format, dst []byte) error {
	d := format.desc()
	if d.flags&flagPackable != 0 {
		if uint32(len(dst)) < d.elemBytes {
			return fmt.Errorf("pixel: pack to %s: %w", format, ErrBufferTooSmall)
		}
		value := (fixedToFixed(uint32(r), 8, d.rbits)<<d.rshift)&d.rmask |
			(fixedToFixed(uint32(g), 8, d.gbits)<<d.gshift)&d.gmask |
			(fixedToFixed(uint32(b), 8, d.bbits)<<d.bshift)&d.bmask |
			(fixedToFixed(uint32(a), 8, d.abits)<<d.ashift)&d.amask
		intWrite(dst, d.elemBytes, value)
		return nil
	}
	return PackColor(ColorFromBytes(r, g, b, a), format, dst)
}

// UnpackColor decodes one element of the given format from src into the
// native float color. Formats without an alpha channel unpack as fully
// opaque; 1- and 2-channel float formats replicate or zero the missing
// chroma channels the way the format's sampling semantics dictate.
func UnpackColor(format Format, src []byte) (Color, error) {
	d := format.desc()
	if uint32(len(src)) < d.elemBytes {
		return Color{}, fmt.Errorf("pixel: unpack from %s: %w", format, ErrBufferTooSmall)
	}

	if d.flags&flagPackable != 0 {
		value := intRead(src, d.elemBytes)
		c := Color{
			R: fixedToFloat((value&d.rmask)>>d.rshift, d.rbits),
			G: fixedToFloat((value&d.gmask)>>d.gshift, d.gbits),
			B: fixedToFloat((value&d.bmask)>>d.bshift, d.bbits),
			A: 1,
		}
		if d.flags&flagHasAlpha != 0 {
			c.A = fixedToFloat((value&d.amask)>>d.ashift, d.abits)
		}
		return c, nil
	}

	switch format {
	case FormatR32F:
		v := getFloat32(src)
		return Color{R: v, G: v, B: v, A: 1}, nil
	case FormatRG32F:
		g := getFloat32(src[4:])
		return Color{R: getFloat32(src), G: g, B: g, A: 1}, nil
	case FormatRGB32F:
		return Color{R: getFloat32(src), G: getFloat32(src[4:]), B: getFloat32(src[8:]), A: 1}, nil
	case FormatRGBA32F:
		return Color{R: getFloat32(src), G: getFloat32(src[4:]), B: getFloat32(src[8:]), A: getFloat32(src[12:])}, nil
	case FormatR16F:
		v := getHalf(src)
		return Color{R: v, G: v, B: v, A: 1}, nil
	case FormatRG16F:
		g := getHalf(src[2:])
		return Color{R: getHalf(src), G: g, B: g, A: 1}, nil
	case FormatRGB16F:
		return Color{R: getHalf(src), G: getHalf(src[2:]), B: getHalf(src[4:]), A: 1}, nil
	case FormatRGBA16F:
		return Color{R: getHalf(src), G: getHalf(src[2:]), B: getHalf(src[4:]), A: getHalf(src[6:])}, nil
	case FormatRG8:
		return Color{R: fixedToFloat(uint32(src[0]), 8), G: fixedToFloat(uint32(src[1]), 8), A: 1}, nil
	case FormatR8:
		return Color{R: fixedToFloat(uint32(src[0]), 8), A: 1}, nil
	}
	return Color{}, fmt.Errorf("pixel: unpack from %s: %w", format, ErrNotImplemented)
}

// UnpackColorBytes decodes one element into 8-bit channel values. Packable
// formats rescale directly; anything else converts through the float path.
func UnpackColorBytes(format Format, src []byte) (r, g, b, a uint8, err error) {
	d := format.desc()
	if d.flags&flagPackable != 0 {
		if uint32(len(src)) < d.elemBytes {
			return 0, 0, 0, 0, fmt.Errorf("pixel: unpack from %s: %w", format, ErrBufferTooSmall)
		}
		value := intRead(src, d.elemBytes)
		r = uint8(fixedToFixed((value&d.rmask)>>d.rshift, d.rbits, 8))
		g = uint8(fixedToFixed((value&d.gmask)>>d.gshift, d.gbits, 8))
		b = uint8(fixedToFixed((value&d.bmask)>>d.bshift, d.bbits, 8))
		a = 255
		if d.flags&flagHasAlpha != 0 {
			a = uint8(fixedToFixed((value&d.amask)>>d.ashift, d.abits, 8))
		}
		return r, g, b, a, nil
	}

	c, err := UnpackColor(format, src)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	r, g, b, a = c.Bytes()
	return r, g, b, a, nil
}
