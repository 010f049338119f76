package gfx

import "fmt"

// Image is a 1bpp bitmap. Rows are packed MSB-first and padded to whole
// bytes; a set bit is ink.
type Image struct {
	Width  int16
	Height int16
	Pix    []byte
}

// Stride returns the number of bytes per row.
func (img Image) Stride() int {
	return (int(img.Width) + 7) / 8
}

// Validate reports whether Pix is large enough for the declared size.
func (img Image) Validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("gfx: image %dx%d: %w", img.Width, img.Height, ErrBadImage)
	}
	if len(img.Pix) < img.Stride()*int(img.Height) {
		return fmt.Errorf("gfx: image %dx%d: %d bytes: %w", img.Width, img.Height, len(img.Pix), ErrBadImage)
	}
	return nil
}

// Ink reports whether the pixel at (x, y) is set.
func (img Image) Ink(x, y int) bool {
	if x < 0 || x >= int(img.Width) || y < 0 || y >= int(img.Height) {
		return false
	}
	off := y*img.Stride() + x/8
	if off >= len(img.Pix) {
		return false
	}
	return img.Pix[off]&(0x80>>uint(x%8)) != 0
}
