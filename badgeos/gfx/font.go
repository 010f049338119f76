package gfx

import (
	"strings"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

// Font selects one of the built-in typefaces.
type Font uint8

const (
	FontSmall Font = iota
	FontMedium
	FontLarge
)

func (f Font) fonter() tinyfont.Fonter {
	switch f {
	case FontLarge:
		return &freemono.Bold12pt7b
	case FontMedium:
		return &freemono.Regular9pt7b
	default:
		return &proggy.TinySZ8pt7b
	}
}

// LineHeight returns the distance between consecutive baselines.
func LineHeight(f Font) int16 {
	return int16(f.fonter().GetYAdvance())
}

// Ascent approximates the height above the baseline.
func Ascent(f Font) int16 {
	return LineHeight(f) * 3 / 4
}

// TextWidth returns the rendered width of a single line.
func TextWidth(f Font, s string) int16 {
	_, outbox := tinyfont.LineWidth(f.fonter(), s)
	return int16(outbox)
}

// Wrap breaks s into lines no wider than width. Explicit newlines are kept;
// a single word wider than width gets a line of its own.
func Wrap(f Font, s string, width int16) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			next := line + " " + w
			if width > 0 && TextWidth(f, next) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line = next
		}
		lines = append(lines, line)
	}
	return lines
}
