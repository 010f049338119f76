package gfx

import (
	"time"

	"badge/hal"

	"tinygo.org/x/tinyfont"
)

// busyTimeout bounds how long Update waits for a refresh to finish.
const busyTimeout = 5 * time.Second

// Canvas implements Display on top of a panel.
type Canvas struct {
	panel hal.Panel
	sleep func(time.Duration)
	now   func() time.Time
}

// NewCanvas wraps p.
func NewCanvas(p hal.Panel) *Canvas {
	return &Canvas{panel: p, sleep: time.Sleep, now: time.Now}
}

func (c *Canvas) Size() (w, h int16) {
	if c.panel == nil {
		return 0, 0
	}
	return c.panel.Size()
}

func (c *Canvas) Clear(col Color) {
	if c.panel == nil {
		return
	}
	c.panel.ClearBuffer()
	if col == White {
		return
	}
	w, h := c.panel.Size()
	c.FillRect(0, 0, w, h, col)
}

func (c *Canvas) FillRect(x, y, w, h int16, col Color) {
	if c.panel == nil || w <= 0 || h <= 0 {
		return
	}
	pw, ph := c.panel.Size()
	x0, y0 := clamp16(x, 0, pw), clamp16(y, 0, ph)
	x1, y1 := clamp16(x+w, 0, pw), clamp16(y+h, 0, ph)
	rgba := col.RGBA()
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.panel.SetPixel(px, py, rgba)
		}
	}
}

func (c *Canvas) StrokeRect(x, y, w, h, stroke int16, col Color) {
	if stroke <= 0 {
		return
	}
	if stroke*2 >= w || stroke*2 >= h {
		c.FillRect(x, y, w, h, col)
		return
	}
	c.FillRect(x, y, w, stroke, col)
	c.FillRect(x, y+h-stroke, w, stroke, col)
	c.FillRect(x, y+stroke, stroke, h-2*stroke, col)
	c.FillRect(x+w-stroke, y+stroke, stroke, h-2*stroke, col)
}

// DrawImage blits img opaquely with its top-left corner at (x, y).
func (c *Canvas) DrawImage(img Image, x, y int16) error {
	if err := img.Validate(); err != nil {
		return err
	}
	if c.panel == nil {
		return nil
	}
	for iy := 0; iy < int(img.Height); iy++ {
		for ix := 0; ix < int(img.Width); ix++ {
			col := paper
			if img.Ink(ix, iy) {
				col = ink
			}
			c.panel.SetPixel(x+int16(ix), y+int16(iy), col)
		}
	}
	return nil
}

// DrawText writes one line of medium text with its baseline at y.
func (c *Canvas) DrawText(s string, col Color, x, y int16) {
	if c.panel == nil {
		return
	}
	tinyfont.WriteLine(c.panel, FontMedium.fonter(), x, y, s, col.RGBA())
}

// DrawTextbox wraps s to w and writes it top-down from (x, y). A height of
// zero or less fits the box to the text; otherwise lines past y+h are dropped.
func (c *Canvas) DrawTextbox(s string, f Font, col Color, a Align, x, y, w, h int16) {
	if c.panel == nil {
		return
	}
	lh := LineHeight(f)
	baseline := y + Ascent(f)
	for _, line := range Wrap(f, s, w) {
		if h > 0 && baseline > y+h {
			return
		}
		lx := x
		switch a {
		case AlignCenter:
			lx = x + (w-TextWidth(f, line))/2
		case AlignRight:
			lx = x + w - TextWidth(f, line)
		}
		tinyfont.WriteLine(c.panel, f.fonter(), lx, baseline, line, col.RGBA())
		baseline += lh
	}
}

// Update flushes the buffer and blocks until the panel reports idle.
func (c *Canvas) Update() error {
	if c.panel == nil {
		return hal.ErrNotImplemented
	}
	if err := c.panel.Display(); err != nil {
		return err
	}
	return c.WaitIdle()
}

// WaitIdle polls the busy line until the panel is idle or the timeout passes.
func (c *Canvas) WaitIdle() error {
	deadline := c.now().Add(busyTimeout)
	for c.panel.IsBusy() {
		if c.now().After(deadline) {
			return ErrPanelBusy
		}
		c.sleep(time.Millisecond)
	}
	return nil
}

func (c *Canvas) IsBusy() bool {
	return c.panel != nil && c.panel.IsBusy()
}

func (c *Canvas) Enable() {
	if c.panel != nil {
		c.panel.PowerOn()
	}
}

func (c *Canvas) Disable() {
	if c.panel != nil {
		c.panel.PowerOff()
	}
}

func (c *Canvas) SetSpeed(s hal.Speed) error {
	if c.panel == nil {
		return hal.ErrNotImplemented
	}
	return c.panel.SetSpeed(s)
}

func clamp16(v, lo, hi int16) int16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
