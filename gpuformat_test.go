package pixel

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

// TestTextureFormatRoundTrip verifies the two-way mapping for formats with
// an exact WebGPU counterpart.
func TestTextureFormatRoundTrip(t *testing.T) {
	formats := []Format{
		FormatR8, FormatRG8, FormatRGBA8, FormatBGRA8,
		FormatR16F, FormatRG16F, FormatRGBA16F,
		FormatR32F, FormatRG32F, FormatRGBA32F,
		FormatDXT1, FormatDXT3, FormatDXT5,
		FormatD16, FormatD32, FormatD24S8,
	}
	for _, f := range formats {
		tf, err := f.TextureFormat()
		if err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		back, err := FromTextureFormat(tf)
		if err != nil {
			t.Errorf("%s: reverse: %v", f, err)
			continue
		}
		if back != f {
			t.Errorf("%s round-tripped to %s", f, back)
		}
	}
}

// TestTextureFormatPaddedAliases verifies the X8 variants upload as their
// alpha-bearing WebGPU layout.
func TestTextureFormatPaddedAliases(t *testing.T) {
	tf, err := FormatRGBX8.TextureFormat()
	if err != nil || tf != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("RGBX8 = %v, %v, want RGBA8Unorm", tf, err)
	}
	tf, err = FormatBGRX8.TextureFormat()
	if err != nil || tf != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("BGRX8 = %v, %v, want BGRA8Unorm", tf, err)
	}
}

// TestTextureFormatUnmapped verifies formats WebGPU cannot express.
func TestTextureFormatUnmapped(t *testing.T) {
	for _, f := range []Format{FormatRGB8, FormatARGB8, FormatDXT2, FormatDXT4, FormatRGB32F} {
		if _, err := f.TextureFormat(); !errors.Is(err, ErrNotImplemented) {
			t.Errorf("%s = %v, want ErrNotImplemented", f, err)
		}
	}
	if _, err := FromTextureFormat(gputypes.TextureFormatUndefined); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Undefined = %v, want ErrNotImplemented", err)
	}
}

// TestVolumeExtent3D verifies the copy-descriptor bridge.
func TestVolumeExtent3D(t *testing.T) {
	v := NewVolume(640, 480, 3, FormatRGBA8)
	ext := v.Extent()
	want := gputypes.Extent3D{Width: 640, Height: 480, DepthOrArrayLayers: 3}
	if ext != want {
		t.Errorf("Extent = %+v, want %+v", ext, want)
	}
}
