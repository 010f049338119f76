package hal

import (
	"errors"
	"image/color"
	"sync"
)

// Badge panel geometry in landscape orientation.
const (
	PanelWidth  = 296
	PanelHeight = 128
)

var errPanelOff = errors.New("panel: powered off")

// MemoryPanel is an in-memory 1bpp panel. A set bit is ink (black).
//
// SetPixel writes the back buffer; Display copies it to the front buffer,
// which is what a viewer should show.
type MemoryPanel struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	back   []byte
	front  []byte

	on      bool
	speed   Speed
	flushes uint64
}

// NewMemoryPanel returns a blank, powered panel.
func NewMemoryPanel(width, height int) *MemoryPanel {
	stride := (width + 7) / 8
	return &MemoryPanel{
		width:  width,
		height: height,
		stride: stride,
		back:   make([]byte, stride*height),
		front:  make([]byte, stride*height),
		on:     true,
	}
}

func (f *MemoryPanel) Size() (x, y int16) {
	return int16(f.width), int16(f.height)
}

func (f *MemoryPanel) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= f.width || iy < 0 || iy >= f.height {
		return
	}
	off := iy*f.stride + ix/8
	mask := byte(0x80) >> uint(ix%8)

	f.mu.Lock()
	defer f.mu.Unlock()
	if isInk(c) {
		f.back[off] |= mask
	} else {
		f.back[off] &^= mask
	}
}

func (f *MemoryPanel) Display() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.on {
		return errPanelOff
	}
	copy(f.front, f.back)
	f.flushes++
	return nil
}

func (f *MemoryPanel) ClearBuffer() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.back {
		f.back[i] = 0
	}
}

func (f *MemoryPanel) IsBusy() bool { return false }

func (f *MemoryPanel) PowerOn() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.on = true
}

func (f *MemoryPanel) PowerOff() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.on = false
}

func (f *MemoryPanel) SetSpeed(s Speed) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.speed = s
	return nil
}

// Ink reports whether the flushed pixel at (x, y) is black.
func (f *MemoryPanel) Ink(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.front[y*f.stride+x/8]&(0x80>>uint(x%8)) != 0
}

// Snapshot copies the flushed buffer into dst.
func (f *MemoryPanel) Snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}

// Flushes returns how many times Display succeeded.
func (f *MemoryPanel) Flushes() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushes
}

// isInk maps an RGBA color to the panel's two states by luma.
func isInk(c color.RGBA) bool {
	luma := (299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000
	return luma < 128
}

// Speed returns the last waveform selected with SetSpeed.
func (f *MemoryPanel) Speed() Speed {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.speed
}

// Stride returns the number of bytes per row in Snapshot.
func (f *MemoryPanel) Stride() int { return f.stride }
