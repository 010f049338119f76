// Package gfxtest provides a gfx.Display that records what is drawn.
package gfxtest

import (
	"fmt"
	"strings"
	"sync"

	"badge/badgeos/gfx"
	"badge/hal"
)

// Recorder implements gfx.Display by logging every call.
//
// Ops holds one entry per call in a compact textual form, for example
// "text Lynix" or "update". The zero value is a 296x128 display.
type Recorder struct {
	mu sync.Mutex

	W, H int16

	// UpdateErr, when set, is returned from every Update.
	UpdateErr error
	// Busy is reported by IsBusy.
	Busy bool

	ops     []string
	updates int
	enabled bool
	speeds  []hal.Speed
}

// New returns an enabled Recorder sized like the badge panel.
func New() *Recorder {
	return &Recorder{W: hal.PanelWidth, H: hal.PanelHeight, enabled: true}
}

func (r *Recorder) record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *Recorder) Size() (w, h int16) {
	if r.W == 0 && r.H == 0 {
		return hal.PanelWidth, hal.PanelHeight
	}
	return r.W, r.H
}

func (r *Recorder) Clear(c gfx.Color) { r.record("clear %d", c) }

func (r *Recorder) FillRect(x, y, w, h int16, c gfx.Color) {
	r.record("fill %d,%d %dx%d %d", x, y, w, h, c)
}

func (r *Recorder) StrokeRect(x, y, w, h, stroke int16, c gfx.Color) {
	r.record("stroke %d,%d %dx%d %d", x, y, w, h, c)
}

func (r *Recorder) DrawImage(img gfx.Image, x, y int16) error {
	if err := img.Validate(); err != nil {
		return err
	}
	r.record("image %dx%d at %d,%d", img.Width, img.Height, x, y)
	return nil
}

func (r *Recorder) DrawText(s string, c gfx.Color, x, y int16) {
	r.record("text %s", s)
}

func (r *Recorder) DrawTextbox(s string, f gfx.Font, c gfx.Color, a gfx.Align, x, y, w, h int16) {
	r.record("textbox %s", s)
}

func (r *Recorder) Update() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, "update")
	r.updates++
	return r.UpdateErr
}

func (r *Recorder) IsBusy() bool { return r.Busy }

func (r *Recorder) Enable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = true
	r.ops = append(r.ops, "enable")
}

func (r *Recorder) Disable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = false
	r.ops = append(r.ops, "disable")
}

func (r *Recorder) SetSpeed(s hal.Speed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.speeds = append(r.speeds, s)
	return nil
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ops...)
}

// Updates returns how many times Update was called.
func (r *Recorder) Updates() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates
}

// Speeds returns every speed passed to SetSpeed, in order.
func (r *Recorder) Speeds() []hal.Speed {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]hal.Speed(nil), r.speeds...)
}

// Enabled reports the power state set by Enable and Disable.
func (r *Recorder) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// Text returns every string passed to DrawText or DrawTextbox, newline-joined.
func (r *Recorder) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b strings.Builder
	for _, op := range r.ops {
		for _, p := range []string{"text ", "textbox "} {
			if s, ok := strings.CutPrefix(op, p); ok {
				b.WriteString(s)
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

// Contains reports whether any text op contains s.
func (r *Recorder) Contains(s string) bool {
	return strings.Contains(r.Text(), s)
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = nil
	r.updates = 0
	r.speeds = nil
}
