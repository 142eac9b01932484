package pixel

import (
	"encoding/binary"
	"math"
)

// Fixed-point and half-float channel arithmetic. All packed pixel words use
// little-endian byte order regardless of host platform, so a packed buffer
// is portable across every target the GoGPU stack supports.

// fixedToFixed rescales an unsigned fixed-point value from fromBits to
// toBits of precision, preserving relative magnitude. A zero-width source
// channel carries no information and rescales to zero.
func fixedToFixed(value uint32, fromBits, toBits uint32) uint32 {
	if fromBits == toBits {
		return value
	}
	if fromBits == 0 || toBits == 0 {
		return 0
	}
	if fromBits > toBits {
		return value >> (fromBits - toBits)
	}
	// More bits required than are there, do the fill.
	switch value {
	case 0:
		return 0
	case (1 << fromBits) - 1:
		return (1 << toBits) - 1
	default:
		return value * (1 << toBits) / ((1 << fromBits) - 1)
	}
}

// floatToFixed maps a float in [0,1] to an unsigned value occupying bits
// bits, clamping out-of-range input.
func floatToFixed(value float32, bits uint32) uint32 {
	if bits == 0 || value <= 0 {
		return 0
	}
	if value >= 1 {
		return (1 << bits) - 1
	}
	return uint32(value * float32(int64(1)<<bits))
}

// fixedToFloat maps an unsigned value occupying bits bits back to [0,1].
func fixedToFloat(value uint32, bits uint32) float32 {
	if bits == 0 {
		return 0
	}
	return float32(value) / float32((int64(1)<<bits)-1)
}

// floatToHalf converts a float32 to an IEEE 754 binary16 bit pattern.
func floatToHalf(f float32) uint16 {
	i := math.Float32bits(f)
	s := (i >> 16) & 0x8000
	e := int32((i>>23)&0xFF) - (127 - 15)
	m := i & 0x7FFFFF

	if e <= 0 {
		if e < -10 {
			// Too small to represent, flush to signed zero.
			return uint16(s)
		}
		m |= 0x800000
		return uint16(s | (m>>uint32(1-e))>>13)
	}
	if e == 0xFF-(127-15) {
		if m == 0 {
			return uint16(s | 0x7C00) // Inf
		}
		m >>= 13
		nan := m
		if nan == 0 {
			nan = 1 // NaN must keep a nonzero mantissa
		}
		return uint16(s | 0x7C00 | nan)
	}
	if e > 30 {
		return uint16(s | 0x7C00) // Overflow to Inf
	}
	return uint16(s | uint32(e)<<10 | m>>13)
}

// halfToFloat converts an IEEE 754 binary16 bit pattern to a float32.
func halfToFloat(h uint16) float32 {
	s := uint32(h>>15) & 1
	e := int32(h>>10) & 0x1F
	m := uint32(h) & 0x3FF

	switch {
	case e == 0:
		if m == 0 {
			return math.Float32frombits(s << 31)
		}
		// Subnormal half, renormalize.
		for m&0x400 == 0 {
			m <<= 1
			e--
		}
		e++
		m &^= 0x400
	case e == 31:
		if m == 0 {
			return math.Float32frombits(s<<31 | 0x7F800000) // Inf
		}
		return math.Float32frombits(s<<31 | 0x7F800000 | m<<13) // NaN
	}

	e += 127 - 15
	return math.Float32frombits(s<<31 | uint32(e)<<23 | m<<13)
}

// intRead reads an n-byte (1..4) little-endian unsigned integer from b.
func intRead(b []byte, n uint32) uint32 {
	switch n {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(b))
	case 3:
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	case 4:
		return binary.LittleEndian.Uint32(b)
	}
	panic("pixel: intRead: element size out of range")
}

// intWrite writes v as an n-byte (1..4) little-endian unsigned integer.
func intWrite(b []byte, n uint32, v uint32) {
	switch n {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 3:
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
	case 4:
		binary.LittleEndian.PutUint32(b, v)
	default:
		panic("pixel: intWrite: element size out of range")
	}
}

func getFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getHalf(b []byte) float32 {
	return halfToFloat(binary.LittleEndian.Uint16(b))
}

func putHalf(b []byte, v float32) {
	binary.LittleEndian.PutUint16(b, floatToHalf(v))
}
