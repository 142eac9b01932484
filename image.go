package pixel

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// FromImage creates a consecutive RGBA8 volume holding a copy of img.
func FromImage(img image.Image) *Volume {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	v := NewVolume(uint32(width), uint32(height), 1, FormatRGBA8)
	v.AllocateBuffer()
	copy(v.data, nrgba.Pix)
	return v
}

// Image converts a 2D volume to an image.NRGBA, recoding through the bulk
// conversion engine when the volume is not already RGBA8.
func (v *Volume) Image() (*image.NRGBA, error) {
	if v.Depth() != 1 {
		return nil, fmt.Errorf("pixel: cannot image a volume of depth %d: %w", v.Depth(), ErrInvalidParams)
	}
	if v.data == nil {
		return nil, fmt.Errorf("pixel: image: %w", ErrNoBuffer)
	}

	out := NewVolume(v.Width(), v.Height(), 1, FormatRGBA8)
	img := image.NewNRGBA(image.Rect(0, 0, int(v.Width()), int(v.Height())))
	if err := out.SetBuffer(img.Pix); err != nil {
		return nil, err
	}
	if err := Convert(v, out); err != nil {
		return nil, err
	}
	return img, nil
}

// Save writes the volume to a PNG or BMP file, selected by the path's
// extension.
func (v *Volume) Save(path string) error {
	img, err := v.Image()
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".bmp":
		return bmp.Encode(f, img)
	}
	return fmt.Errorf("pixel: save %q: unsupported extension: %w", path, ErrInvalidParams)
}
