package gfx

import (
	"errors"
	"testing"
	"time"

	"badge/hal"
)

func newTestCanvas() (*Canvas, *hal.MemoryPanel) {
	p := hal.NewMemoryPanel(32, 16)
	return NewCanvas(p), p
}

func TestCanvasFillRectClipsToPanel(t *testing.T) {
	c, p := newTestCanvas()

	c.FillRect(28, 12, 10, 10, Black)
	if err := c.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if !p.Ink(31, 15) || !p.Ink(28, 12) {
		t.Fatal("expected clipped rect to cover bottom-right corner")
	}
	if p.Ink(27, 12) || p.Ink(28, 11) {
		t.Fatal("expected no ink outside rect")
	}
}

func TestCanvasStrokeRectLeavesInteriorBlank(t *testing.T) {
	c, p := newTestCanvas()

	c.StrokeRect(2, 2, 10, 8, 1, Black)
	if err := c.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	for _, pt := range [][2]int{{2, 2}, {11, 2}, {2, 9}, {11, 9}, {6, 2}, {2, 5}} {
		if !p.Ink(pt[0], pt[1]) {
			t.Fatalf("expected ink at %v", pt)
		}
	}
	if p.Ink(6, 5) {
		t.Fatal("expected interior to stay white")
	}
}

func TestCanvasClearBlackThenWhite(t *testing.T) {
	c, p := newTestCanvas()

	c.Clear(Black)
	_ = c.Update()
	if !p.Ink(0, 0) || !p.Ink(31, 15) {
		t.Fatal("expected black clear to ink every pixel")
	}

	c.Clear(White)
	_ = c.Update()
	if p.Ink(0, 0) || p.Ink(31, 15) {
		t.Fatal("expected white clear to blank every pixel")
	}
}

func TestCanvasDrawImageIsOpaque(t *testing.T) {
	c, p := newTestCanvas()
	c.Clear(Black)

	// 2x2 checker: ink at (0,0) and (1,1).
	img := Image{Width: 2, Height: 2, Pix: []byte{0x80, 0x40}}
	if err := c.DrawImage(img, 4, 4); err != nil {
		t.Fatalf("DrawImage: %v", err)
	}
	_ = c.Update()

	if !p.Ink(4, 4) || !p.Ink(5, 5) {
		t.Fatal("expected ink pixels drawn")
	}
	if p.Ink(5, 4) || p.Ink(4, 5) {
		t.Fatal("expected paper pixels to overwrite black background")
	}
}

func TestCanvasDrawImageRejectsShortPix(t *testing.T) {
	c, _ := newTestCanvas()

	err := c.DrawImage(Image{Width: 16, Height: 2, Pix: []byte{0xff}}, 0, 0)
	if !errors.Is(err, ErrBadImage) {
		t.Fatalf("err = %v, want ErrBadImage", err)
	}
}

func TestCanvasUpdateFailsWhenDisabled(t *testing.T) {
	c, _ := newTestCanvas()

	c.Disable()
	if err := c.Update(); err == nil {
		t.Fatal("expected Update to fail while disabled")
	}
	c.Enable()
	if err := c.Update(); err != nil {
		t.Fatalf("Update after Enable: %v", err)
	}
}

type stuckPanel struct {
	*hal.MemoryPanel
}

func (stuckPanel) IsBusy() bool { return true }

func TestCanvasWaitIdleTimesOut(t *testing.T) {
	c := NewCanvas(stuckPanel{hal.NewMemoryPanel(8, 8)})

	now := time.Unix(0, 0)
	c.now = func() time.Time { return now }
	c.sleep = func(d time.Duration) { now = now.Add(d * 1000) }

	if err := c.Update(); !errors.Is(err, ErrPanelBusy) {
		t.Fatalf("err = %v, want ErrPanelBusy", err)
	}
}

func TestCanvasSetSpeedReachesPanel(t *testing.T) {
	c, p := newTestCanvas()

	if err := c.SetSpeed(hal.SpeedTurbo); err != nil {
		t.Fatalf("SetSpeed: %v", err)
	}
	if p.Speed() != hal.SpeedTurbo {
		t.Fatalf("speed = %v, want turbo", p.Speed())
	}
}

func TestCanvasDrawTextInks(t *testing.T) {
	p := hal.NewMemoryPanel(hal.PanelWidth, hal.PanelHeight)
	c := NewCanvas(p)

	c.DrawTextbox("Lynix", FontLarge, Black, AlignLeft, 0, 0, 200, 0)
	_ = c.Update()

	inked := false
	for y := 0; y < int(LineHeight(FontLarge)) && !inked; y++ {
		for x := 0; x < 100; x++ {
			if p.Ink(x, y) {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Fatal("expected text to ink the first line")
	}
}
