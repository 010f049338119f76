package main

import (
	"bytes"
	"fmt"
	"go/format"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

type options struct {
	Width, Height int
	Threshold     uint8
	Invert        bool
}

// bitmap is a 1bpp image: rows packed MSB-first, a set bit is ink.
type bitmap struct {
	w, h int
	pix  []byte
}

func (b *bitmap) stride() int { return (b.w + 7) / 8 }

func (b *bitmap) ink(x, y int) bool {
	return b.pix[y*b.stride()+x/8]&(0x80>>uint(x%8)) != 0
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// convert scales src to the requested size and thresholds it by luma.
// Transparent pixels are paper.
func convert(src image.Image, opts options) *bitmap {
	sb := src.Bounds()
	w, h := opts.Width, opts.Height
	switch {
	case w <= 0 && h <= 0:
		w, h = sb.Dx(), sb.Dy()
	case w <= 0:
		w = sb.Dx() * h / sb.Dy()
	case h <= 0:
		h = sb.Dy() * w / sb.Dx()
	}
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if w == sb.Dx() && h == sb.Dy() {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)
	}

	bm := &bitmap{w: w, h: h}
	bm.pix = make([]byte, bm.stride()*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := dst.NRGBAAt(x, y)
			luma := (299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000
			ink := luma < uint32(opts.Threshold)
			if opts.Invert {
				ink = !ink
			}
			if ink {
				bm.pix[y*bm.stride()+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return bm
}

// GoSource renders b as a gofmt'd Go file declaring name.
func (b *bitmap) GoSource(pkg, name, from string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by mkbitmap; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("import \"badge/badgeos/gfx\"\n\n")
	fmt.Fprintf(&buf, "// %s is a %dx%d bitmap generated from %s.\n", name, b.w, b.h, from)
	fmt.Fprintf(&buf, "var %s = gfx.Image{\n\tWidth: %d,\n\tHeight: %d,\n\tPix: []byte{\n", name, b.w, b.h)
	for i := 0; i < len(b.pix); i += 16 {
		end := i + 16
		if end > len(b.pix) {
			end = len(b.pix)
		}
		buf.WriteString("\t\t")
		for j, v := range b.pix[i:end] {
			if j > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "0x%02x,", v)
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("\t},\n}\n")
	return format.Source(buf.Bytes())
}

// String draws b with '#' for ink and '.' for paper.
func (b *bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.ink(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
