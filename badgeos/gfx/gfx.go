// Package gfx draws badge screens onto an e-ink panel.
//
// Coordinates are panel pixels with the origin at the top-left corner. Text
// positions passed to DrawText are baselines; textbox positions are the
// top-left corner of the box.
package gfx

import (
	"errors"
	"image/color"

	"badge/hal"
)

// Color is one of the two panel states.
type Color uint8

const (
	// White is bare paper.
	White Color = iota
	// Black is ink.
	Black
)

var (
	paper = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ink   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// RGBA returns the driver color for c.
func (c Color) RGBA() color.RGBA {
	if c == Black {
		return ink
	}
	return paper
}

// Inverse returns the other color.
func (c Color) Inverse() Color {
	if c == Black {
		return White
	}
	return Black
}

// Align is the horizontal alignment of textbox lines.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var (
	ErrBadImage  = errors.New("gfx: malformed image")
	ErrPanelBusy = errors.New("gfx: panel busy")
)

// Display is everything a screen needs from the panel.
type Display interface {
	Size() (w, h int16)
	Clear(c Color)
	FillRect(x, y, w, h int16, c Color)
	StrokeRect(x, y, w, h, stroke int16, c Color)
	DrawImage(img Image, x, y int16) error
	DrawText(s string, c Color, x, y int16)
	DrawTextbox(s string, f Font, c Color, a Align, x, y, w, h int16)
	// Update flushes the buffer to the glass and waits for the refresh.
	Update() error
	IsBusy() bool
	Enable()
	Disable()
	SetSpeed(s hal.Speed) error
}
