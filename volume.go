package pixel

import "fmt"

// Volume describes a rectangular or volumetric window into a flat pixel
// buffer. Extents are measured in elements; the window (left, top, front to
// right, bottom, back) may sit inside a larger owning buffer described by
// the row and slice pitches.
//
// A Volume either borrows an externally owned buffer (SetBuffer) or owns an
// internally allocated one (AllocateBuffer) that FreeBuffer releases.
// Constructors and mutators validate the pitch/window invariants, so a
// Volume in hand never addresses memory outside its buffer.
type Volume struct {
	format Format

	left, top, front  uint32
	right, bottom, back uint32

	// rowPitch is the element stride between rows; slicePitch between depth
	// slices. Invariant: rowPitch >= Width, slicePitch >= Height*rowPitch.
	rowPitch   uint32
	slicePitch uint32

	data []byte
	owns bool
}

// NewVolume creates a consecutive volume of the given extents with no
// buffer attached. Attach one with SetBuffer or AllocateBuffer.
func NewVolume(width, height, depth uint32, format Format) *Volume {
	return &Volume{
		format:     format,
		right:      width,
		bottom:     height,
		back:       depth,
		rowPitch:   width,
		slicePitch: width * height,
	}
}

// NewVolumeWindow creates a volume describing the window [left,right) x
// [top,bottom) x [front,back) of a larger buffer. Pitches default to the
// window's right/bottom edges; widen them with SetPitches when the owning
// buffer extends past the window.
func NewVolumeWindow(left, top, front, right, bottom, back uint32, format Format) (*Volume, error) {
	if right < left || bottom < top || back < front {
		return nil, fmt.Errorf("pixel: window bounds out of order: %w", ErrInvalidParams)
	}
	return &Volume{
		format:     format,
		left:       left,
		top:        top,
		front:      front,
		right:      right,
		bottom:     bottom,
		back:       back,
		rowPitch:   right,
		slicePitch: right * bottom,
	}, nil
}

// SetPitches overrides the row and slice strides, in elements. Rejects
// strides smaller than the window requires. Must be called before a buffer
// is attached, since it changes the required buffer size.
func (v *Volume) SetPitches(rowPitch, slicePitch uint32) error {
	if rowPitch < v.right || slicePitch < v.bottom*rowPitch {
		return fmt.Errorf("pixel: pitch smaller than extent: %w", ErrInvalidParams)
	}
	if v.data != nil {
		return fmt.Errorf("pixel: cannot change pitches of a volume with an attached buffer: %w", ErrInvalidParams)
	}
	v.rowPitch = rowPitch
	v.slicePitch = slicePitch
	return nil
}

// requiredBytes is the minimum buffer length the window and pitches address.
func (v *Volume) requiredBytes() uint32 {
	if v.right == 0 || v.bottom == 0 || v.back == 0 {
		return 0
	}
	if v.format.IsCompressed() {
		size, err := v.format.MemorySize(v.Width(), v.Height(), v.Depth())
		if err != nil {
			return 0
		}
		return size
	}
	return ((v.back-1)*v.slicePitch + (v.bottom-1)*v.rowPitch + v.right) * v.format.ElemBytes()
}

// SetBuffer attaches an externally owned buffer. The volume takes no
// lifecycle responsibility for it.
func (v *Volume) SetBuffer(data []byte) error {
	if uint32(len(data)) < v.requiredBytes() {
		return fmt.Errorf("pixel: buffer of %d bytes, need %d: %w", len(data), v.requiredBytes(), ErrBufferTooSmall)
	}
	v.data = data
	v.owns = false
	return nil
}

// AllocateBuffer allocates an internal buffer sized for the volume's window
// and pitches, replacing any attached buffer.
func (v *Volume) AllocateBuffer() {
	v.data = make([]byte, v.requiredBytes())
	v.owns = true
}

// FreeBuffer releases an internally allocated buffer. Borrowed buffers are
// detached but not touched.
func (v *Volume) FreeBuffer() {
	v.data = nil
	v.owns = false
}

// Format returns the volume's pixel format.
func (v *Volume) Format() Format { return v.format }

// Data returns the raw backing buffer, or nil if none is attached.
func (v *Volume) Data() []byte { return v.data }

// Width returns the window extent along X.
func (v *Volume) Width() uint32 { return v.right - v.left }

// Height returns the window extent along Y.
func (v *Volume) Height() uint32 { return v.bottom - v.top }

// Depth returns the window extent along Z.
func (v *Volume) Depth() uint32 { return v.back - v.front }

// Window returns the window bounds (left, top, front, right, bottom, back).
func (v *Volume) Window() (left, top, front, right, bottom, back uint32) {
	return v.left, v.top, v.front, v.right, v.bottom, v.back
}

// RowPitch returns the element stride between rows.
func (v *Volume) RowPitch() uint32 { return v.rowPitch }

// SlicePitch returns the element stride between depth slices.
func (v *Volume) SlicePitch() uint32 { return v.slicePitch }

// RowSkip returns the padding elements between the end of one row and the
// start of the next.
func (v *Volume) RowSkip() uint32 { return v.rowPitch - v.Width() }

// SliceSkip returns the padding elements between the end of one depth slice
// and the start of the next.
func (v *Volume) SliceSkip() uint32 { return v.slicePitch - v.Height()*v.rowPitch }

// IsConsecutive reports whether the window covers its buffer with no row or
// slice padding, so the whole image is one contiguous byte span.
func (v *Volume) IsConsecutive() bool {
	return v.rowPitch == v.Width() && v.slicePitch == v.Width()*v.Height()
}

// ConsecutiveSize returns the byte size of the image as if it were stored
// without padding.
func (v *Volume) ConsecutiveSize() uint32 {
	size, err := v.format.MemorySize(v.Width(), v.Height(), v.Depth())
	if err != nil {
		return 0
	}
	return size
}

// originOffset is the byte offset of the window's first element.
func (v *Volume) originOffset() uint32 {
	return (v.front*v.slicePitch + v.top*v.rowPitch + v.left) * v.format.ElemBytes()
}
