package hal

import (
	"errors"
	"fmt"
	"strings"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// Button identifies one of the badge push-buttons.
type Button uint8

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonA
	ButtonB
	ButtonC

	ButtonCount
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonA:
		return "a"
	case ButtonB:
		return "b"
	case ButtonC:
		return "c"
	default:
		return "?"
	}
}

// ParseButton is the inverse of Button.String.
func ParseButton(s string) (Button, error) {
	for b := Button(0); b < ButtonCount; b++ {
		if strings.EqualFold(s, b.String()) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("hal: unknown button %q", s)
}

// Buttons samples the push-buttons.
//
// Pressed reports whether the button is asserted right now. Implementations
// that cannot read a button report it as released.
type Buttons interface {
	Pressed(b Button) bool
}

// Speed selects the panel refresh waveform.
type Speed uint8

const (
	// SpeedFast is a full-quality refresh used for program screens.
	SpeedFast Speed = iota
	// SpeedTurbo trades contrast for latency; used while navigating the menu.
	SpeedTurbo
)

func (s Speed) String() string {
	switch s {
	case SpeedFast:
		return "fast"
	case SpeedTurbo:
		return "turbo"
	default:
		return "?"
	}
}

// Panel is a monochrome e-ink panel with an off-screen buffer.
//
// SetPixel draws into the buffer; Display flushes the buffer to the glass.
type Panel interface {
	drivers.Displayer
	ClearBuffer()
	IsBusy() bool
	PowerOn()
	PowerOff()
	SetSpeed(s Speed) error
}

// Serial is a byte stream to the host (USB CDC on the badge).
//
// Read must not block: it returns 0 when nothing is buffered.
type Serial interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	// Ready reports whether the host side has enumerated the device.
	Ready() bool
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	GPIO() GPIO
	Panel() Panel
	Buttons() Buttons
	Serial() Serial
}
