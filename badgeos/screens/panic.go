package screens

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"badge/badgeos/gfx"
)

// Panic fills the display with a crash report: the panic value followed by
// as much of the stack as fits. It flushes the panel itself.
func Panic(d gfx.Display, value any, stack []byte) error {
	d.Clear(gfx.White)

	lines := []string{
		"Badge Panic:",
		fmt.Sprintf("panic: %v", value),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	font := gfx.FontSmall
	lh := gfx.LineHeight(font)
	maxW, maxH := d.Size()
	fontWidth := gfx.TextWidth(font, "0")
	if fontWidth <= 0 || lh <= 0 {
		return d.Update()
	}
	cols := maxW / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+lh > maxH {
				return d.Update()
			}
			chunk, rest := takeRunes(line, cols)
			d.DrawTextbox(chunk, font, gfx.Black, gfx.AlignLeft, 0, y, maxW, lh)
			y += lh
			line = strings.TrimLeft(rest, " ")
		}
	}
	return d.Update()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
