package pixel

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Snapshot container: a fixed little-endian header followed by the
// volume's consecutive pixel payload as one zstd stream. Used to cache
// converted or resampled buffers on disk between runs.

var snapshotMagic = [4]byte{'P', 'X', 'S', 'N'}

const snapshotVersion = 1

type snapshotHeader struct {
	Magic   [4]byte
	Version uint32
	Width   uint32
	Height  uint32
	Depth   uint32
	Format  uint32
}

// EncodeSnapshot writes v to w as a compressed snapshot. Windowed volumes
// are first compacted into a consecutive copy so the payload is always one
// contiguous span.
func EncodeSnapshot(w io.Writer, v *Volume) error {
	if v.data == nil {
		return fmt.Errorf("pixel: encode snapshot: %w", ErrNoBuffer)
	}

	src := v
	if !v.IsConsecutive() {
		tmp := NewVolume(v.Width(), v.Height(), v.Depth(), v.Format())
		tmp.AllocateBuffer()
		defer tmp.FreeBuffer()
		if err := Convert(v, tmp); err != nil {
			return err
		}
		src = tmp
	}

	hdr := snapshotHeader{
		Magic:   snapshotMagic,
		Version: snapshotVersion,
		Width:   v.Width(),
		Height:  v.Height(),
		Depth:   v.Depth(),
		Format:  uint32(v.Format()),
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("pixel: encode snapshot header: %w", err)
	}

	zw, err := zstd.NewWriter(w,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return fmt.Errorf("pixel: zstd encoder: %w", err)
	}
	size := src.ConsecutiveSize()
	if _, err := zw.Write(src.data[src.originOffset() : src.originOffset()+size]); err != nil {
		zw.Close()
		return fmt.Errorf("pixel: encode snapshot payload: %w", err)
	}
	return zw.Close()
}

// DecodeSnapshot reads a snapshot from r into a freshly allocated
// consecutive volume.
func DecodeSnapshot(r io.Reader) (*Volume, error) {
	var hdr snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("pixel: decode snapshot header: %w", err)
	}
	if hdr.Magic != snapshotMagic {
		return nil, fmt.Errorf("pixel: not a snapshot stream: %w", ErrInvalidParams)
	}
	if hdr.Version != snapshotVersion {
		return nil, fmt.Errorf("pixel: unsupported snapshot version %d: %w", hdr.Version, ErrInvalidParams)
	}
	if hdr.Format >= uint32(formatCount) || Format(hdr.Format) == FormatUnknown {
		return nil, fmt.Errorf("pixel: snapshot names unknown format %d: %w", hdr.Format, ErrInvalidParams)
	}
	format := Format(hdr.Format)
	if !format.IsValidExtent(hdr.Width, hdr.Height, hdr.Depth) {
		return nil, fmt.Errorf("pixel: snapshot extent %dx%dx%d invalid for %s: %w",
			hdr.Width, hdr.Height, hdr.Depth, format, ErrInvalidParams)
	}

	v := NewVolume(hdr.Width, hdr.Height, hdr.Depth, format)
	v.AllocateBuffer()

	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("pixel: zstd decoder: %w", err)
	}
	defer zr.Close()

	if _, err := io.ReadFull(zr, v.data); err != nil {
		return nil, fmt.Errorf("pixel: decode snapshot payload: %w", err)
	}
	return v, nil
}
