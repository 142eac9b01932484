package pixel

import "fmt"

// Convert copies and recodes src into dst. Both volumes must have equal
// window extents and attached buffers. Fast paths, in order: raw copy for
// matching compressed formats, raw or per-row copy for matching
// uncompressed formats, alias normalization for padded X8 formats, and a
// generic per-pixel unpack/repack fallback for everything else.
//
// Compressed formats cannot be recoded; converting between two different
// compressed formats (or to/from one) fails with ErrNotImplemented.
func Convert(src, dst *Volume) error {
	if src.Width() != dst.Width() || src.Height() != dst.Height() || src.Depth() != dst.Depth() {
		return fmt.Errorf("pixel: convert: extents %dx%dx%d vs %dx%dx%d: %w",
			src.Width(), src.Height(), src.Depth(),
			dst.Width(), dst.Height(), dst.Depth(), ErrInvalidParams)
	}
	if src.data == nil || dst.data == nil {
		return fmt.Errorf("pixel: convert: %w", ErrNoBuffer)
	}

	// Compressed data is an opaque blob: copy when the formats match,
	// refuse to compress, decompress or recode otherwise.
	if src.format.IsCompressed() || dst.format.IsCompressed() {
		if src.format != dst.format {
			return fmt.Errorf("pixel: convert cannot compress or decompress images: %w", ErrNotImplemented)
		}
		size := src.ConsecutiveSize()
		copy(dst.data[:size], src.data[:size])
		return nil
	}

	if src.format == dst.format {
		copySameFormat(src, dst)
		return nil
	}

	// Converting to a padded X8 format writes the same bytes as converting
	// to its alpha-bearing sibling, so reuse the sibling's fast paths.
	if alias := dst.format.aliasWithAlpha(); alias != FormatUnknown {
		tmp := *dst
		tmp.format = alias
		return Convert(src, &tmp)
	}

	// Converting from a padded X8 format matches converting from the
	// sibling whenever the destination has no alpha to receive the
	// padding byte.
	if alias := src.format.aliasWithAlpha(); alias != FormatUnknown && !dst.format.HasAlpha() {
		tmp := *src
		tmp.format = alias
		return Convert(&tmp, dst)
	}

	if !src.format.IsAccessible() || !dst.format.IsAccessible() {
		return fmt.Errorf("pixel: convert %s to %s: %w", src.format, dst.format, ErrNotImplemented)
	}
	return convertPerPixel(src, dst)
}

// copySameFormat copies equal-format volumes: one raw copy when both sides
// are consecutive, otherwise row by row honoring each side's pitches.
func copySameFormat(src, dst *Volume) {
	if src.IsConsecutive() && dst.IsConsecutive() {
		size := src.ConsecutiveSize()
		copy(dst.data[dst.originOffset():dst.originOffset()+size], src.data[src.originOffset():src.originOffset()+size])
		return
	}

	elem := src.format.ElemBytes()
	sp := src.originOffset()
	dp := dst.originOffset()

	srcRowPitchBytes := src.rowPitch * elem
	dstRowPitchBytes := dst.rowPitch * elem
	srcSliceSkipBytes := src.SliceSkip() * elem
	dstSliceSkipBytes := dst.SliceSkip() * elem
	rowBytes := src.Width() * elem

	for z := uint32(0); z < src.Depth(); z++ {
		for y := uint32(0); y < src.Height(); y++ {
			copy(dst.data[dp:dp+rowBytes], src.data[sp:sp+rowBytes])
			sp += srcRowPitchBytes
			dp += dstRowPitchBytes
		}
		sp += srcSliceSkipBytes
		dp += dstSliceSkipBytes
	}
}

// convertPerPixel is the brute-force fallback: unpack every source element
// to the native float color and repack it in the destination format. Must
// handle every accessible-format pairing.
func convertPerPixel(src, dst *Volume) error {
	Logger().Debug("pixel: per-pixel conversion", "src", src.format, "dst", dst.format,
		"width", src.Width(), "height", src.Height(), "depth", src.Depth())

	srcElem := src.format.ElemBytes()
	dstElem := dst.format.ElemBytes()
	sp := src.originOffset()
	dp := dst.originOffset()

	srcRowSkipBytes := src.RowSkip() * srcElem
	dstRowSkipBytes := dst.RowSkip() * dstElem
	srcSliceSkipBytes := src.SliceSkip() * srcElem
	dstSliceSkipBytes := dst.SliceSkip() * dstElem

	for z := uint32(0); z < src.Depth(); z++ {
		for y := uint32(0); y < src.Height(); y++ {
			for x := uint32(0); x < src.Width(); x++ {
				c, err := UnpackColor(src.format, src.data[sp:sp+srcElem])
				if err != nil {
					return err
				}
				if err := PackColor(c, dst.format, dst.data[dp:dp+dstElem]); err != nil {
					return err
				}
				sp += srcElem
				dp += dstElem
			}
			sp += srcRowSkipBytes
			dp += dstRowSkipBytes
		}
		sp += srcSliceSkipBytes
		dp += dstSliceSkipBytes
	}
	return nil
}
