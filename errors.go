package pixel

import "errors"

var (
	// ErrInvalidParams reports malformed caller input: mismatched region
	// extents, an extent a block-compressed format cannot represent, or an
	// unsupported stride.
	ErrInvalidParams = errors.New("pixel: invalid parameters")

	// ErrNotImplemented reports a pack, unpack or convert request for a
	// format (or format pairing) that has no channel-layout case. This is a
	// registry consistency fault, not a condition callers can recover from.
	ErrNotImplemented = errors.New("pixel: not implemented")

	// ErrBufferTooSmall reports a destination or attached buffer shorter
	// than the region's pitch/extent arithmetic requires.
	ErrBufferTooSmall = errors.New("pixel: buffer too small")

	// ErrNoBuffer reports an operation on a volume that has no backing
	// buffer attached or allocated.
	ErrNoBuffer = errors.New("pixel: volume has no buffer")
)
