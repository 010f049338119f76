//go:build !tinygo

package hal

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

type hostHAL struct {
	logger  *hostLogger
	led     *hostLED
	gpio    GPIO
	panel   *MemoryPanel
	buttons [ButtonCount]*virtualPin
	btns    Buttons
	serial  *hostSerial
}

// New returns a host HAL implementation.
//
// Log lines go to stderr so stdout stays available as the serial channel.
func New() HAL {
	logger := newHostLogger(os.Stderr)
	led := &hostLED{logger: logger}

	h := &hostHAL{
		logger: logger,
		led:    led,
		panel:  NewMemoryPanel(PanelWidth, PanelHeight),
		serial: newHostSerial(os.Stdin, os.Stdout),
	}

	pins := []GPIOPin{newLEDPin("LED", led)}
	btnPins := make([]GPIOPin, 0, ButtonCount)
	for b := Button(0); b < ButtonCount; b++ {
		p := newVirtualPin("BTN_"+b.String(), GPIOCapInput|GPIOCapPullDown)
		_ = p.Configure(GPIOModeInput, GPIOPullDown)
		h.buttons[b] = p
		pins = append(pins, p)
		btnPins = append(btnPins, p)
	}
	h.gpio = newVirtualGPIO(pins)
	h.btns = NewPinButtons(btnPins...)
	return h
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }
func (h *hostHAL) Panel() Panel     { return h.panel }
func (h *hostHAL) Buttons() Buttons { return h.btns }
func (h *hostHAL) Serial() Serial   { return h.serial }

// press drives a virtual button pin.
func (h *hostHAL) press(b Button, down bool) {
	if b >= ButtonCount {
		return
	}
	h.buttons[b].set(down)
}

type hostLogger struct {
	mu  sync.Mutex
	log zerolog.Logger
}

func newHostLogger(w *os.File) *hostLogger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	return &hostLogger{log: zerolog.New(out).With().Timestamp().Logger()}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info().Msg(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		return
	}
	l.on = true
	l.logger.WriteLineString("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		return
	}
	l.on = false
	l.logger.WriteLineString("led: LOW")
}
