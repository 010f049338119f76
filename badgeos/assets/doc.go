// Package assets holds the badge bitmaps as 1bpp gfx images.
//
// The files are produced by cmd/mkbitmap, for example:
//
//	go run ./cmd/mkbitmap -in art/lynix.png -name Lynix -w 128 -h 128 -out badgeos/assets/lynix.go
package assets

import "badge/badgeos/gfx"

// All lists every bitmap by name.
func All() map[string]gfx.Image {
	return map[string]gfx.Image{
		"options": Options,
		"lynix":   Lynix,
		"anthony": Anthony,
		"qr":      QR,
		"lock":    Lock,
		"isc":     ISC,
		"dcf":     DCF,
	}
}
