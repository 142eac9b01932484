package pixel

import "image/color"

// Color is the native four-channel intermediate representation used when
// source and destination formats differ and no dedicated fast path exists.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float32
}

// ColorFromBytes creates a Color from 8-bit channel values.
func ColorFromBytes(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Bytes returns the color quantized to 8-bit channel values.
func (c Color) Bytes() (r, g, b, a uint8) {
	return uint8(floatToFixed(c.R, 8)),
		uint8(floatToFixed(c.G, 8)),
		uint8(floatToFixed(c.B, 8)),
		uint8(floatToFixed(c.A, 8))
}

// Color converts to the standard color.Color interface (non-premultiplied).
func (c Color) Color() color.Color {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ColorFromBytes(n.R, n.G, n.B, n.A)
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// scale multiplies every channel by f.
func (c Color) scale(f float32) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A * f}
}

// add sums two colors channel-wise.
func (c Color) add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B, A: c.A + other.A}
}
