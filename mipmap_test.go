package pixel

import "testing"

// TestGenerateMipChainSizes verifies the chain halves every dimension down
// to 1x1x1 and excludes the base level.
func TestGenerateMipChainSizes(t *testing.T) {
	base := NewVolume(16, 8, 1, FormatRGBA8)
	base.AllocateBuffer()

	mips, err := GenerateMipChain(base, FilterNearest)
	if err != nil {
		t.Fatal(err)
	}
	want := [][3]uint32{
		{8, 4, 1},
		{4, 2, 1},
		{2, 1, 1},
		{1, 1, 1},
	}
	if len(mips) != len(want) {
		t.Fatalf("chain length = %d, want %d", len(mips), len(want))
	}
	for i, m := range mips {
		got := [3]uint32{m.Width(), m.Height(), m.Depth()}
		if got != want[i] {
			t.Errorf("level %d = %v, want %v", i+1, got, want[i])
		}
		if m.Format() != FormatRGBA8 {
			t.Errorf("level %d format = %s", i+1, m.Format())
		}
		if m.Data() == nil {
			t.Errorf("level %d has no buffer", i+1)
		}
	}
}

// TestGenerateMipChainContent verifies the levels carry resampled data, not
// zeroes, using a constant base image.
func TestGenerateMipChainContent(t *testing.T) {
	base := NewVolume(8, 8, 1, FormatRGBA8)
	base.AllocateBuffer()
	for i := 0; i < len(base.Data()); i += 4 {
		copy(base.Data()[i:], []byte{10, 20, 30, 40})
	}

	mips, err := GenerateMipChain(base, FilterLinear)
	if err != nil {
		t.Fatal(err)
	}
	for level, m := range mips {
		for i := 0; i < len(m.Data()); i += 4 {
			for k, want := range []byte{10, 20, 30, 40} {
				if m.Data()[i+k] != want {
					t.Fatalf("level %d pixel %d channel %d = %d, want %d",
						level+1, i/4, k, m.Data()[i+k], want)
				}
			}
		}
	}
}

// TestGenerateMipChainBaseOnly verifies a 1x1x1 base yields no levels.
func TestGenerateMipChainBaseOnly(t *testing.T) {
	base := NewVolume(1, 1, 1, FormatR8)
	base.AllocateBuffer()
	mips, err := GenerateMipChain(base, FilterNearest)
	if err != nil {
		t.Fatal(err)
	}
	if mips != nil {
		t.Errorf("1x1x1 chain = %d levels, want none", len(mips))
	}
}

// TestGenerateMipChainInaccessible verifies the resampler's format check
// propagates.
func TestGenerateMipChainInaccessible(t *testing.T) {
	base := NewVolume(8, 8, 1, FormatDXT1)
	base.AllocateBuffer()
	if _, err := GenerateMipChain(base, FilterNearest); err == nil {
		t.Error("expected error for compressed base")
	}
}
