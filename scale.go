package pixel

import "fmt"

// Filter selects the resampling algorithm used by Scale.
type Filter uint32

const (
	// FilterNearest picks the nearest source element, copying raw bytes
	// with no channel interpretation.
	FilterNearest Filter = iota
	// FilterLinear blends the surrounding elements (bilinear in 2D,
	// trilinear in 3D).
	FilterLinear
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	}
	return fmt.Sprintf("Filter(%d)", uint32(f))
}

// Scale resamples src into dst, which may have different extents and a
// different format. Both formats must be accessible. When a format change
// is needed the resampler runs into a same-format temporary sized like the
// destination, which is then recoded into dst via Convert; the temporary is
// always released before Scale returns.
func Scale(src, dst *Volume, filter Filter) error {
	if !src.format.IsAccessible() || !dst.format.IsAccessible() {
		return fmt.Errorf("pixel: scale %s to %s: %w", src.format, dst.format, ErrInvalidParams)
	}
	if src.data == nil || dst.data == nil {
		return fmt.Errorf("pixel: scale: %w", ErrNoBuffer)
	}

	switch filter {
	case FilterLinear:
		return scaleLinear(src, dst)
	default:
		return scaleNearestDispatch(src, dst)
	}
}

// withSameFormatTemp runs resample into dst directly when formats already
// match, or into a temporary in src's format followed by a Convert into
// dst. The temporary is released on every path.
func withSameFormatTemp(src, dst *Volume, resample func(src, dst *Volume) error) error {
	if src.format == dst.format {
		return resample(src, dst)
	}

	tmp := NewVolume(dst.Width(), dst.Height(), dst.Depth(), src.format)
	tmp.AllocateBuffer()
	defer tmp.FreeBuffer()

	if err := resample(src, tmp); err != nil {
		return err
	}
	return Convert(tmp, dst)
}

func scaleNearestDispatch(src, dst *Volume) error {
	return withSameFormatTemp(src, dst, func(src, dst *Volume) error {
		cp := elementCopier(src.format.ElemBytes())
		if cp == nil {
			return fmt.Errorf("pixel: nearest scale of %s: %w", src.format, ErrNotImplemented)
		}
		scaleNearest(src, dst, cp)
		return nil
	})
}

// elementCopier returns a fixed-size copy routine for the given element
// byte size. The sizes cover every accessible registry format; keeping the
// size constant inside each routine keeps per-element format lookups out of
// the hot loop.
func elementCopier(size uint32) func(dst, src []byte) {
	switch size {
	case 1:
		return func(d, s []byte) { d[0] = s[0] }
	case 2:
		return func(d, s []byte) { *(*[2]byte)(d) = *(*[2]byte)(s) }
	case 3:
		return func(d, s []byte) { *(*[3]byte)(d) = *(*[3]byte)(s) }
	case 4:
		return func(d, s []byte) { *(*[4]byte)(d) = *(*[4]byte)(s) }
	case 6:
		return func(d, s []byte) { *(*[6]byte)(d) = *(*[6]byte)(s) }
	case 8:
		return func(d, s []byte) { *(*[8]byte)(d) = *(*[8]byte)(s) }
	case 12:
		return func(d, s []byte) { *(*[12]byte)(d) = *(*[12]byte)(s) }
	case 16:
		return func(d, s []byte) { *(*[16]byte)(d) = *(*[16]byte)(s) }
	}
	return nil
}

// scaleNearest resamples with the point filter. Source coordinates advance
// in 16.48 fixed point, offset by half a step so sampling lands on pixel
// centers. No format conversion: src and dst share a format.
func scaleNearest(src, dst *Volume, cp func(dst, src []byte)) {
	elem := src.format.ElemBytes()
	sdata := src.data[src.originOffset():]
	ddata := dst.data[dst.originOffset():]

	stepX := (uint64(src.Width()) << 48) / uint64(dst.Width())
	stepY := (uint64(src.Height()) << 48) / uint64(dst.Height())
	stepZ := (uint64(src.Depth()) << 48) / uint64(dst.Depth())

	dp := uint32(0)
	curZ := (stepZ >> 1) - 1
	for z := uint32(0); z < dst.Depth(); z++ {
		offZ := uint32(curZ>>48) * src.slicePitch

		curY := (stepY >> 1) - 1
		for y := uint32(0); y < dst.Height(); y++ {
			offY := uint32(curY>>48) * src.rowPitch

			curX := (stepX >> 1) - 1
			for x := uint32(0); x < dst.Width(); x++ {
				offX := uint32(curX >> 48)
				sp := (offZ + offY + offX) * elem

				cp(ddata[dp:dp+elem], sdata[sp:sp+elem])
				dp += elem
				curX += stepX
			}

			dp += dst.RowSkip() * elem
			curY += stepY
		}

		dp += dst.SliceSkip() * elem
		curZ += stepZ
	}
}

// scaleLinear picks the fastest linear resampler the format pair allows:
// a byte-per-channel 2D bilinear specialization, a packed-float32
// specialization, or the generic trilinear path.
func scaleLinear(src, dst *Volume) error {
	switch src.format {
	case FormatRG8,
		FormatRGB8, FormatBGR8,
		FormatRGBA8, FormatBGRA8,
		FormatABGR8, FormatARGB8,
		FormatXBGR8, FormatXRGB8:
		return withSameFormatTemp(src, dst, func(src, dst *Volume) error {
			channels := src.format.ElemBytes()
			if channels < 1 || channels > 4 {
				return fmt.Errorf("pixel: linear byte scale of %s: %w", src.format, ErrNotImplemented)
			}
			return scaleLinearByte(src, dst, channels)
		})

	case FormatRGB32F, FormatRGBA32F:
		if dst.format == FormatRGB32F || dst.format == FormatRGBA32F {
			// float32 to float32, avoid unpack/repack overhead
			scaleLinearFloat32(src, dst)
			return nil
		}
	}

	// Fallback case, slow but works for any accessible pairing.
	Logger().Debug("pixel: generic linear resample", "src", src.format, "dst", dst.format)
	return scaleLinearGeneric(src, dst)
}

// linearTap maps one 16.16 fixed-point coordinate to its lower sample
// index, the clamped upper index and the float blend weight toward it. The
// 0x8000 half-texel correction keeps the first destination pixels from
// sampling before the first valid source texel.
func linearTap(cur uint64, srcExtent uint32) (lo, hi uint32, weight float32) {
	tmp := uint32(cur >> 32)
	if tmp > 0x8000 {
		tmp -= 0x8000
	} else {
		tmp = 0
	}
	lo = tmp >> 16
	hi = lo + 1
	if hi > srcExtent-1 {
		hi = srcExtent - 1
	}
	return lo, hi, float32(tmp&0xFFFF) / 65536
}

// scaleLinearGeneric resamples with an 8-tap trilinear blend through the
// pack/unpack engine. Handles arbitrary accessible formats and performs the
// format conversion itself.
func scaleLinearGeneric(src, dst *Volume) error {
	srcElem := src.format.ElemBytes()
	dstElem := dst.format.ElemBytes()
	sdata := src.data[src.originOffset():]
	ddata := dst.data[dst.originOffset():]

	stepX := (uint64(src.Width()) << 48) / uint64(dst.Width())
	stepY := (uint64(src.Height()) << 48) / uint64(dst.Height())
	stepZ := (uint64(src.Depth()) << 48) / uint64(dst.Depth())

	tap := func(x, y, z uint32) (Color, error) {
		off := (x + y*src.rowPitch + z*src.slicePitch) * srcElem
		return UnpackColor(src.format, sdata[off:off+srcElem])
	}

	dp := uint32(0)
	curZ := (stepZ >> 1) - 1
	for z := uint32(0); z < dst.Depth(); z++ {
		z1, z2, wz := linearTap(curZ, src.Depth())

		curY := (stepY >> 1) - 1
		for y := uint32(0); y < dst.Height(); y++ {
			y1, y2, wy := linearTap(curY, src.Height())

			curX := (stepX >> 1) - 1
			for x := uint32(0); x < dst.Width(); x++ {
				x1, x2, wx := linearTap(curX, src.Width())

				var accum Color
				for _, t := range [8]struct {
					x, y, z uint32
					w       float32
				}{
					{x1, y1, z1, (1 - wx) * (1 - wy) * (1 - wz)},
					{x2, y1, z1, wx * (1 - wy) * (1 - wz)},
					{x1, y2, z1, (1 - wx) * wy * (1 - wz)},
					{x2, y2, z1, wx * wy * (1 - wz)},
					{x1, y1, z2, (1 - wx) * (1 - wy) * wz},
					{x2, y1, z2, wx * (1 - wy) * wz},
					{x1, y2, z2, (1 - wx) * wy * wz},
					{x2, y2, z2, wx * wy * wz},
				} {
					c, err := tap(t.x, t.y, t.z)
					if err != nil {
						return err
					}
					accum = accum.add(c.scale(t.w))
				}

				if err := PackColor(accum, dst.format, ddata[dp:dp+dstElem]); err != nil {
					return err
				}
				dp += dstElem
				curX += stepX
			}

			dp += dst.RowSkip() * dstElem
			curY += stepY
		}

		dp += dst.SliceSkip() * dstElem
		curZ += stepZ
	}
	return nil
}

// scaleLinearByte is a 2D bilinear specialization for formats with one byte
// per channel. The blend runs directly on the encoded bytes with 12-bit
// fixed-point weights; no format conversion. Volumes with depth fall back
// to the generic path.
func scaleLinearByte(src, dst *Volume, channels uint32) error {
	if src.Depth() > 1 || dst.Depth() > 1 {
		// Only optimized for 2D.
		return scaleLinearGeneric(src, dst)
	}

	sdata := src.data[src.originOffset():]
	ddata := dst.data[dst.originOffset():]

	stepX := (uint64(src.Width()) << 48) / uint64(dst.Width())
	stepY := (uint64(src.Height()) << 48) / uint64(dst.Height())

	byteTap := func(cur uint64, srcExtent uint32) (lo, hi, weight uint32) {
		tmp := uint32(cur >> 36)
		if tmp > 0x800 {
			tmp -= 0x800
		} else {
			tmp = 0
		}
		lo = tmp >> 12
		hi = lo + 1
		if hi > srcExtent-1 {
			hi = srcExtent - 1
		}
		return lo, hi, tmp & 0xFFF
	}

	dp := uint32(0)
	curY := (stepY >> 1) - 1
	for y := uint32(0); y < dst.Height(); y++ {
		y1, y2, wy := byteTap(curY, src.Height())
		row1 := y1 * src.rowPitch
		row2 := y2 * src.rowPitch

		curX := (stepX >> 1) - 1
		for x := uint32(0); x < dst.Width(); x++ {
			x1, x2, wx := byteTap(curX, src.Width())

			wxy := wx * wy
			for k := uint32(0); k < channels; k++ {
				accum := uint32(sdata[(x1+row1)*channels+k])*(0x1000000-(wx<<12)-(wy<<12)+wxy) +
					uint32(sdata[(x2+row1)*channels+k])*((wx<<12)-wxy) +
					uint32(sdata[(x1+row2)*channels+k])*((wy<<12)-wxy) +
					uint32(sdata[(x2+row2)*channels+k])*wxy

				// Round up to byte size
				ddata[dp] = uint8((accum + 0x800000) >> 24)
				dp++
			}
			curX += stepX
		}

		dp += channels * dst.RowSkip()
		curY += stepY
	}
	return nil
}

// scaleLinearFloat32 resamples packed float32 RGB/RGBA data directly,
// skipping the pack/unpack engine. Used only when both sides are float32
// 3- or 4-channel formats; a 3-channel side forces the RGB blend with alpha
// synthesized as fully opaque.
func scaleLinearFloat32(src, dst *Volume) {
	srcCh := src.format.ElemBytes() / 4
	dstCh := dst.format.ElemBytes() / 4
	sdata := src.data[src.originOffset():]
	ddata := dst.data[dst.originOffset():]

	stepX := (uint64(src.Width()) << 48) / uint64(dst.Width())
	stepY := (uint64(src.Height()) << 48) / uint64(dst.Height())
	stepZ := (uint64(src.Depth()) << 48) / uint64(dst.Depth())

	rgbOnly := srcCh == 3 || dstCh == 3

	dp := uint32(0)
	curZ := (stepZ >> 1) - 1
	for z := uint32(0); z < dst.Depth(); z++ {
		z1, z2, wz := linearTap(curZ, src.Depth())

		curY := (stepY >> 1) - 1
		for y := uint32(0); y < dst.Height(); y++ {
			y1, y2, wy := linearTap(curY, src.Height())

			curX := (stepX >> 1) - 1
			for x := uint32(0); x < dst.Width(); x++ {
				x1, x2, wx := linearTap(curX, src.Width())

				var accum [4]float32
				taps := [8]struct {
					x, y, z uint32
					w       float32
				}{
					{x1, y1, z1, (1 - wx) * (1 - wy) * (1 - wz)},
					{x2, y1, z1, wx * (1 - wy) * (1 - wz)},
					{x1, y2, z1, (1 - wx) * wy * (1 - wz)},
					{x2, y2, z1, wx * wy * (1 - wz)},
					{x1, y1, z2, (1 - wx) * (1 - wy) * wz},
					{x2, y1, z2, wx * (1 - wy) * wz},
					{x1, y2, z2, (1 - wx) * wy * wz},
					{x2, y2, z2, wx * wy * wz},
				}
				if rgbOnly {
					for _, t := range taps {
						accumFloats(&accum, sdata, (t.x+t.y*src.rowPitch+t.z*src.slicePitch)*srcCh, 3, t.w)
					}
					accum[3] = 1
				} else {
					for _, t := range taps {
						accumFloats(&accum, sdata, (t.x+t.y*src.rowPitch+t.z*src.slicePitch)*srcCh, 4, t.w)
					}
				}

				for k := uint32(0); k < dstCh; k++ {
					putFloat32(ddata[dp+k*4:], accum[k])
				}
				dp += dstCh * 4
				curX += stepX
			}

			dp += dst.RowSkip() * dstCh * 4
			curY += stepY
		}

		dp += dst.SliceSkip() * dstCh * 4
		curZ += stepZ
	}
}

// accumFloats adds n weighted channels starting at float index offset into
// the accumulator.
func accumFloats(accum *[4]float32, data []byte, offset, n uint32, w float32) {
	base := offset * 4
	for k := uint32(0); k < n; k++ {
		accum[k] += getFloat32(data[base+k*4:]) * w
	}
}
