package gfx

import "testing"

func TestWrapKeepsExplicitNewlines(t *testing.T) {
	got := Wrap(FontMedium, "FW Version: v2.0.7\nSerial #: X", 0)
	if len(got) != 2 || got[0] != "FW Version: v2.0.7" || got[1] != "Serial #: X" {
		t.Fatalf("Wrap = %q", got)
	}
}

func TestWrapBreaksLongLines(t *testing.T) {
	s := "one two three four five six seven eight"
	width := TextWidth(FontMedium, "one two three")

	lines := Wrap(FontMedium, s, width)
	if len(lines) < 3 {
		t.Fatalf("Wrap = %q, want at least 3 lines", lines)
	}
	for _, l := range lines {
		if TextWidth(FontMedium, l) > width {
			t.Fatalf("line %q wider than %d", l, width)
		}
	}
}

func TestWrapOverlongWordStaysWhole(t *testing.T) {
	lines := Wrap(FontLarge, "a supercalifragilistic b", 20)
	found := false
	for _, l := range lines {
		if l == "supercalifragilistic" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Wrap = %q, want overlong word on its own line", lines)
	}
}

func TestFontsGrowWithSize(t *testing.T) {
	if LineHeight(FontMedium) >= LineHeight(FontLarge) {
		t.Fatalf("line heights medium=%d large=%d", LineHeight(FontMedium), LineHeight(FontLarge))
	}
	if LineHeight(FontSmall) <= 0 {
		t.Fatalf("small line height = %d", LineHeight(FontSmall))
	}
}
