package pixel

import "fmt"

// ApplyGamma multiplies the first three channels of every pixel in buf by
// gamma, in place. When any channel would exceed 255 all three are rescaled
// by one shared factor, preserving hue instead of clipping per channel.
//
// The buffer must use an RGB-leading byte layout with a stride of 3 or 4
// bytes (bitsPerPixel 24 or 32); other layouts are rejected. gamma == 1 is
// a no-op.
func ApplyGamma(buf []byte, gamma float32, size, bitsPerPixel uint32) error {
	if gamma == 1 {
		return nil
	}

	stride := bitsPerPixel >> 3
	if stride != 3 && stride != 4 {
		return fmt.Errorf("pixel: apply gamma with %d bits per pixel: %w", bitsPerPixel, ErrInvalidParams)
	}
	if uint32(len(buf)) < size {
		return fmt.Errorf("pixel: apply gamma: %w", ErrBufferTooSmall)
	}

	for p := uint32(0); p+stride <= size; p += stride {
		r := float32(buf[p+0]) * gamma
		g := float32(buf[p+1]) * gamma
		b := float32(buf[p+2]) * gamma

		scale := float32(1)
		if r > 255 && 255/r < scale {
			scale = 255 / r
		}
		if g > 255 && 255/g < scale {
			scale = 255 / g
		}
		if b > 255 && 255/b < scale {
			scale = 255 / b
		}

		buf[p+0] = uint8(r * scale)
		buf[p+1] = uint8(g * scale)
		buf[p+2] = uint8(b * scale)
	}
	return nil
}
