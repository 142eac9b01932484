package pixel

// GenerateMipChain produces the mip levels below v: each level halves every
// dimension greater than 1, down to 1x1x1, resampled from the previous
// level with the given filter. The base level itself is not included. Every
// returned volume owns its buffer and uses v's format.
func GenerateMipChain(v *Volume, filter Filter) ([]*Volume, error) {
	count := MaxMipmapCount(v.Width(), v.Height(), v.Depth())
	if count <= 1 {
		return nil, nil
	}

	mips := make([]*Volume, 0, count-1)
	prev := v
	width, height, depth := v.Width(), v.Height(), v.Depth()

	for level := uint32(1); level < count; level++ {
		if width > 1 {
			width /= 2
		}
		if height > 1 {
			height /= 2
		}
		if depth > 1 {
			depth /= 2
		}

		mip := NewVolume(width, height, depth, v.Format())
		mip.AllocateBuffer()
		if err := Scale(prev, mip, filter); err != nil {
			for _, m := range mips {
				m.FreeBuffer()
			}
			mip.FreeBuffer()
			return nil, err
		}

		mips = append(mips, mip)
		prev = mip
	}
	return mips, nil
}
