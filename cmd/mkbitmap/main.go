// Command mkbitmap converts an image into a Go source file holding a 1bpp
// gfx.Image for the badge.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	var (
		inPath    = flag.String("in", "", "Input image (.png, .bmp, .gif or .jpg).")
		outPath   = flag.String("out", "", "Output .go file (default: stdout).")
		name      = flag.String("name", "", "Variable name (default: derived from -in).")
		pkg       = flag.String("pkg", "assets", "Package name of the generated file.")
		width     = flag.Int("w", 0, "Target width in pixels (0 = keep).")
		height    = flag.Int("h", 0, "Target height in pixels (0 = keep).")
		threshold = flag.Int("threshold", 128, "Luma below this is ink (0-255).")
		invert    = flag.Bool("invert", false, "Swap ink and paper.")
		preview   = flag.Bool("preview", false, "Print the bitmap as text instead of Go source.")
	)
	flag.Parse()

	if *inPath == "" {
		fatalf("usage: mkbitmap -in art.png [-out file.go] [-name Art] [-pkg assets] [-w 128 -h 128] [-threshold 128] [-invert] [-preview]")
	}
	if *threshold < 0 || *threshold > 255 {
		fatalf("threshold out of range: %d", *threshold)
	}
	if *name == "" {
		*name = exportName(*inPath)
	}

	src, err := decodeFile(*inPath)
	if err != nil {
		fatalf("decode: %v", err)
	}
	bm := convert(src, options{
		Width:     *width,
		Height:    *height,
		Threshold: uint8(*threshold),
		Invert:    *invert,
	})

	var out []byte
	if *preview {
		out = []byte(bm.String())
	} else {
		out, err = bm.GoSource(*pkg, *name, filepath.Base(*inPath))
		if err != nil {
			fatalf("generate: %v", err)
		}
	}

	if *outPath == "" {
		_, _ = os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// exportName turns "art/lynix-face.png" into "LynixFace".
func exportName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var b strings.Builder
	upper := true
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z':
			if upper {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
			upper = false
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9' && b.Len() > 0:
			b.WriteRune(r)
			upper = false
		default:
			upper = true
		}
	}
	if b.Len() == 0 {
		return "Bitmap"
	}
	return b.String()
}
