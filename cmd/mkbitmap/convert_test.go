package main

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func checker(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func TestConvertThresholdsKeepSize(t *testing.T) {
	bm := convert(checker(10, 2), options{Threshold: 128})
	if bm.w != 10 || bm.h != 2 || len(bm.pix) != 4 {
		t.Fatalf("bitmap %dx%d with %d bytes", bm.w, bm.h, len(bm.pix))
	}
	if got := bm.String(); got != "#.#.#.#.#.\n.#.#.#.#.#\n" {
		t.Fatalf("String() = %q", got)
	}
}

func TestConvertInvert(t *testing.T) {
	bm := convert(checker(2, 1), options{Threshold: 128, Invert: true})
	if got := bm.String(); got != ".#\n" {
		t.Fatalf("String() = %q", got)
	}
}

func TestConvertScalesKeepingAspect(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 40, 20))
	bm := convert(src, options{Width: 20, Threshold: 128})
	if bm.w != 20 || bm.h != 10 {
		t.Fatalf("size = %dx%d, want 20x10", bm.w, bm.h)
	}
	if !strings.Contains(bm.String(), "#") {
		t.Fatal("expected black source to stay ink after scaling")
	}
}

func TestGoSource(t *testing.T) {
	bm := convert(checker(9, 1), options{Threshold: 128})
	src, err := bm.GoSource("assets", "Dots", "dots.png")
	if err != nil {
		t.Fatalf("GoSource: %v", err)
	}
	s := string(src)
	for _, want := range []string{
		"// Code generated by mkbitmap; DO NOT EDIT.",
		"package assets",
		"var Dots = gfx.Image{",
		"Width:  9,",
		"0xaa, 0x80,",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in:\n%s", want, s)
		}
	}
}

func TestExportName(t *testing.T) {
	tests := map[string]string{
		"art/lynix.png":  "Lynix",
		"lynix-face.bmp": "LynixFace",
		"qr_code_v2.png": "QrCodeV2",
		"9lives.png":     "Lives",
		"___.png":        "Bitmap",
	}
	for in, want := range tests {
		if got := exportName(in); got != want {
			t.Fatalf("exportName(%q) = %q, want %q", in, got, want)
		}
	}
}
