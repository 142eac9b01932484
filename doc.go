// Package pixel describes, converts and resamples pixel buffers.
//
// # Overview
//
// pixel is a format-agnostic pixel data engine for the GoGPU ecosystem. It
// keeps a closed registry of pixel formats (integer, half-float, float32,
// block-compressed and depth encodings), packs and unpacks single elements
// through a native float color, converts whole 1D/2D/3D regions between any
// two accessible formats, and resamples regions with nearest-neighbor or
// linear filtering.
//
// # Quick Start
//
//	import "github.com/gogpu/pixel"
//
//	// Describe a source region borrowing an existing buffer.
//	src := pixel.NewVolume(256, 256, 1, pixel.FormatRGBA8)
//	src.SetBuffer(data)
//
//	// Convert it to BGRA8.
//	dst := pixel.NewVolume(256, 256, 1, pixel.FormatBGRA8)
//	dst.AllocateBuffer()
//	pixel.Convert(src, dst)
//
//	// Or shrink it to a thumbnail.
//	thumb := pixel.NewVolume(64, 64, 1, pixel.FormatRGBA8)
//	thumb.AllocateBuffer()
//	pixel.Scale(src, thumb, pixel.FilterLinear)
//
// # Regions
//
// A Volume describes a window into a flat buffer: extents, window bounds
// and row/slice pitches, all in elements. Pitch invariants are validated at
// construction, so a Volume never addresses memory outside its buffer. A
// Volume either borrows an external buffer or owns an allocated one.
//
// # Formats
//
// The format set is closed and indexed densely. Compressed and depth
// formats are opaque: they copy only between identical formats and cannot
// be packed or unpacked generically. All packed words and float channels
// use little-endian byte order.
//
// # Concurrency
//
// All operations are synchronous and reentrant. The registry is immutable
// after init; no call shares mutable state with another.
package pixel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
