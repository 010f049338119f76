package screens

import (
	"strings"
	"testing"

	"badge/badgeos/gfx"
	"badge/badgeos/gfx/gfxtest"
	"badge/badgeos/nav"
	"badge/hal"
)

func TestStaticScreensDrawWithoutFlushing(t *testing.T) {
	tests := []struct {
		name string
		draw Func
		want []string
	}{
		{"lynix", Lynix, []string{"Lynix", "[lynix.ca]"}},
		{"ccnb", Ccnb, []string{"Anthony", "Bonne Rentrée!"}},
		{"socials", Socials, []string{"Socials", "@cyberlynix"}},
		{"info", Info, []string{"Device Info", "Serial #: FREAK-4921.8222023"}},
		{"blinky", Blinky, []string{"Blinky Test", "led go blink."}},
		{"notfound", NotFound, []string{"Program Not Installed."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := gfxtest.New()
			if err := tt.draw(rec); err != nil {
				t.Fatalf("draw: %v", err)
			}
			for _, s := range tt.want {
				if !rec.Contains(s) {
					t.Fatalf("missing %q in %q", s, rec.Text())
				}
			}
			if rec.Updates() != 0 {
				t.Fatalf("Updates = %d, want 0", rec.Updates())
			}
		})
	}
}

func TestCcnbDrawsBadges(t *testing.T) {
	rec := gfxtest.New()
	if err := Ccnb(rec); err != nil {
		t.Fatalf("Ccnb: %v", err)
	}
	images := 0
	for _, op := range rec.Ops() {
		if strings.HasPrefix(op, "image ") {
			images++
		}
	}
	if images != 4 {
		t.Fatalf("images = %d, want 4", images)
	}
}

func TestMenuShowsCurrentPage(t *testing.T) {
	items := []string{"Lynix Badge", "CCNB", "Socials + QR", "Device Info", "Blinky", "DEFCON Furs"}
	m := nav.NewMenu(items)
	m.Select(5)

	rec := gfxtest.New()
	if err := Menu(rec, m); err != nil {
		t.Fatalf("Menu: %v", err)
	}

	text := rec.Text()
	for _, s := range []string{"Programs", "[2/2]", "Blinky", "DEFCON Furs"} {
		if !strings.Contains(text, s) {
			t.Fatalf("missing %q in %q", s, text)
		}
	}
	if strings.Contains(text, "CCNB") {
		t.Fatalf("first page item drawn on page two: %q", text)
	}

	fills, strokes := 0, 0
	for _, op := range rec.Ops() {
		switch {
		case strings.HasPrefix(op, "fill "):
			fills++
		case strings.HasPrefix(op, "stroke "):
			strokes++
		}
	}
	if fills != 1 || strokes != 1 {
		t.Fatalf("fills = %d strokes = %d, want 1 and 1", fills, strokes)
	}
}

func TestPageLabel(t *testing.T) {
	m := nav.NewMenu(make([]string, 8))
	if got := PageLabel(m); got != "[1/2]" {
		t.Fatalf("PageLabel = %q, want [1/2]", got)
	}
}

func TestPanicScreenFlushes(t *testing.T) {
	p := hal.NewMemoryPanel(hal.PanelWidth, hal.PanelHeight)
	c := gfx.NewCanvas(p)

	if err := Panic(c, "boom", []byte("goroutine 1 [running]:\nmain.main()\n")); err != nil {
		t.Fatalf("Panic: %v", err)
	}
	if p.Flushes() != 1 {
		t.Fatalf("Flushes = %d, want 1", p.Flushes())
	}
}

func TestPanicScreenText(t *testing.T) {
	rec := gfxtest.New()
	_ = Panic(rec, "boom", nil)
	for _, s := range []string{"Badge Panic:", "panic: boom", "stack: unavailable"} {
		if !rec.Contains(s) {
			t.Fatalf("missing %q in %q", s, rec.Text())
		}
	}
}

func TestTakeRunes(t *testing.T) {
	prefix, rest := takeRunes("héllo", 2)
	if prefix != "hé" || rest != "llo" {
		t.Fatalf("takeRunes = %q %q", prefix, rest)
	}
}
