package pixel

import (
	"bytes"
	"errors"
	"testing"
)

// newFilled returns a consecutive volume with an allocated buffer holding
// the given bytes.
func newFilled(t *testing.T, w, h, d uint32, f Format, data []byte) *Volume {
	t.Helper()
	v := NewVolume(w, h, d, f)
	v.AllocateBuffer()
	if len(data) != len(v.Data()) {
		t.Fatalf("fill size %d does not match volume size %d", len(data), len(v.Data()))
	}
	copy(v.Data(), data)
	return v
}

// TestConvertIdentityConsecutive verifies that same-format conversion of a
// consecutive region is a byte-exact copy for every accessible format.
func TestConvertIdentityConsecutive(t *testing.T) {
	for _, f := range accessibleFormats() {
		size := f.ElemBytes() * 4
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i*7 + 3)
		}
		src := newFilled(t, 2, 2, 1, f, data)
		dst := NewVolume(2, 2, 1, f)
		dst.AllocateBuffer()

		if err := Convert(src, dst); err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if !bytes.Equal(dst.Data(), data) {
			t.Errorf("%s: identity conversion altered bytes", f)
		}
	}
}

// TestConvertIdentityWindowed verifies per-row copy between volumes with
// different pitches.
func TestConvertIdentityWindowed(t *testing.T) {
	// Source rows padded to a pitch of 6 elements; window is 4x2.
	src := NewVolume(4, 2, 1, FormatR8)
	if err := src.SetPitches(6, 12); err != nil {
		t.Fatal(err)
	}
	src.AllocateBuffer()
	copy(src.Data(), []byte{
		1, 2, 3, 4, 0xEE, 0xEE,
		5, 6, 7, 8, 0xEE, 0xEE,
	})

	dst := NewVolume(4, 2, 1, FormatR8)
	dst.AllocateBuffer()

	if err := Convert(src, dst); err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if !bytes.Equal(dst.Data(), want) {
		t.Errorf("windowed copy = %v, want %v", dst.Data(), want)
	}
}

// TestConvertSwizzle verifies cross-format channel reordering.
func TestConvertSwizzle(t *testing.T) {
	src := newFilled(t, 2, 1, 1, FormatRGBA8, []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})
	dst := NewVolume(2, 1, 1, FormatBGRA8)
	dst.AllocateBuffer()

	if err := Convert(src, dst); err != nil {
		t.Fatal(err)
	}
	want := []byte{3, 2, 1, 4, 7, 6, 5, 8}
	if !bytes.Equal(dst.Data(), want) {
		t.Errorf("RGBA8 to BGRA8 = %v, want %v", dst.Data(), want)
	}
}

// TestConvertToFloat verifies integer-to-float recoding through the
// per-pixel path.
func TestConvertToFloat(t *testing.T) {
	src := newFilled(t, 1, 1, 1, FormatRGBA8, []byte{255, 0, 128, 255})
	dst := NewVolume(1, 1, 1, FormatRGBA32F)
	dst.AllocateBuffer()

	if err := Convert(src, dst); err != nil {
		t.Fatal(err)
	}
	r := getFloat32(dst.Data())
	g := getFloat32(dst.Data()[4:])
	b := getFloat32(dst.Data()[8:])
	a := getFloat32(dst.Data()[12:])
	if r != 1 || g != 0 || a != 1 {
		t.Errorf("converted color = (%g,%g,%g,%g)", r, g, b, a)
	}
	if b < 0.5 || b > 0.51 {
		t.Errorf("B channel = %g, want ~128/255", b)
	}
}

// TestConvertAliasEquivalence verifies that converting to a padded X8
// format yields the same RGB bytes as converting to its alpha-bearing
// sibling.
func TestConvertAliasEquivalence(t *testing.T) {
	srcData := []byte{
		10, 20, 30, 40,
		50, 60, 70, 80,
		90, 100, 110, 120,
		130, 140, 150, 160,
	}
	src := newFilled(t, 2, 2, 1, FormatRGBA8, srcData)

	padded := NewVolume(2, 2, 1, FormatXRGB8)
	padded.AllocateBuffer()
	sibling := NewVolume(2, 2, 1, FormatARGB8)
	sibling.AllocateBuffer()

	if err := Convert(src, padded); err != nil {
		t.Fatal(err)
	}
	if err := Convert(src, sibling); err != nil {
		t.Fatal(err)
	}

	// ARGB8 stores bytes as [a r g b]; positions 1..3 carry the color.
	for px := 0; px < 4; px++ {
		for k := 1; k < 4; k++ {
			i := px*4 + k
			if padded.Data()[i] != sibling.Data()[i] {
				t.Errorf("byte %d: XRGB8=%d ARGB8=%d", i, padded.Data()[i], sibling.Data()[i])
			}
		}
	}
}

// TestConvertFromPaddedToAlphaless verifies the source-side alias rule.
func TestConvertFromPaddedToAlphaless(t *testing.T) {
	src := newFilled(t, 1, 1, 1, FormatXRGB8, []byte{0xEE, 10, 20, 30})
	dst := NewVolume(1, 1, 1, FormatRGB8)
	dst.AllocateBuffer()

	if err := Convert(src, dst); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst.Data(), []byte{10, 20, 30}) {
		t.Errorf("XRGB8 to RGB8 = %v, want [10 20 30]", dst.Data())
	}
}

// TestConvertPaddedToAlphaOpaque verifies padded four-byte sources produce
// fully opaque output when the destination gains an alpha channel.
func TestConvertPaddedToAlphaOpaque(t *testing.T) {
	for _, f := range []Format{FormatRGBX8, FormatBGRX8, FormatXRGB8, FormatXBGR8} {
		src := NewVolume(1, 1, 1, f)
		src.AllocateBuffer()
		if err := PackColorBytes(10, 20, 30, 255, f, src.Data()); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		dst := NewVolume(1, 1, 1, FormatRGBA8)
		dst.AllocateBuffer()

		if err := Convert(src, dst); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		want := []byte{10, 20, 30, 255}
		if !bytes.Equal(dst.Data(), want) {
			t.Errorf("%s to RGBA8 = %v, want %v", f, dst.Data(), want)
		}
	}
}

// TestConvertCompressed verifies the opaque-blob policy for block formats.
func TestConvertCompressed(t *testing.T) {
	data := make([]byte, 8) // one DXT1 block
	for i := range data {
		data[i] = byte(i + 1)
	}
	src := newFilled(t, 4, 4, 1, FormatDXT1, data)
	dst := NewVolume(4, 4, 1, FormatDXT1)
	dst.AllocateBuffer()

	if err := Convert(src, dst); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst.Data(), data) {
		t.Error("matching compressed formats must raw-copy")
	}

	other := NewVolume(4, 4, 1, FormatDXT3)
	other.AllocateBuffer()
	if err := Convert(src, other); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("DXT1 to DXT3 = %v, want ErrNotImplemented", err)
	}
}

// TestConvertExtentMismatch verifies the precondition check runs before any
// byte is written.
func TestConvertExtentMismatch(t *testing.T) {
	src := NewVolume(2, 2, 1, FormatRGBA8)
	src.AllocateBuffer()
	dst := NewVolume(4, 4, 1, FormatRGBA8)
	dst.AllocateBuffer()
	marker := append([]byte(nil), dst.Data()...)

	if err := Convert(src, dst); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("mismatched extents = %v, want ErrInvalidParams", err)
	}
	if !bytes.Equal(dst.Data(), marker) {
		t.Error("failed conversion mutated the destination")
	}
}

// TestConvertDepthFormats verifies depth data copies between identical
// formats and refuses recoding.
func TestConvertDepthFormats(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	src := newFilled(t, 2, 1, 1, FormatD32, data)
	dst := NewVolume(2, 1, 1, FormatD32)
	dst.AllocateBuffer()

	if err := Convert(src, dst); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst.Data(), data) {
		t.Error("same-format depth copy altered bytes")
	}

	rgba := NewVolume(2, 1, 1, FormatRGBA8)
	rgba.AllocateBuffer()
	if err := Convert(src, rgba); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("D32 to RGBA8 = %v, want ErrNotImplemented", err)
	}
}

// TestConvert3D verifies the per-pixel path honors slice strides in three
// dimensions.
func TestConvert3D(t *testing.T) {
	data := make([]byte, 2*2*2)
	for i := range data {
		data[i] = byte(i * 10)
	}
	src := newFilled(t, 2, 2, 2, FormatR8, data)
	dst := NewVolume(2, 2, 2, FormatRG8)
	dst.AllocateBuffer()

	if err := Convert(src, dst); err != nil {
		t.Fatal(err)
	}
	for i := range data {
		if got := dst.Data()[i*2]; got != data[i] {
			t.Errorf("voxel %d: R = %d, want %d", i, got, data[i])
		}
		if got := dst.Data()[i*2+1]; got != 0 {
			t.Errorf("voxel %d: G = %d, want 0", i, got)
		}
	}
}
