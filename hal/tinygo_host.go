//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"runtime"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	led    *tinyGoHostLED
	panel  *MemoryPanel
	btns   Buttons
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping: the panel is in memory and the buttons never assert.
func New() HAL {
	l := &tinyGoHostLogger{}
	return &tinyGoHostHAL{
		logger: l,
		led:    &tinyGoHostLED{logger: l},
		panel:  NewMemoryPanel(PanelWidth, PanelHeight),
		btns:   NewPinButtons(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) LED() LED         { return h.led }
func (h *tinyGoHostHAL) GPIO() GPIO       { return nullGPIO{} }
func (h *tinyGoHostHAL) Panel() Panel     { return h.panel }
func (h *tinyGoHostHAL) Buttons() Buttons { return h.btns }
func (h *tinyGoHostHAL) Serial() Serial   { return nullSerial{} }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostLED struct {
	on     bool
	logger *tinyGoHostLogger
}

func (l *tinyGoHostLED) High() {
	l.on = true
	l.logger.WriteLineString(fmt.Sprintf("led: HIGH (tinygo/%s)", runtime.GOOS))
}

func (l *tinyGoHostLED) Low() {
	l.on = false
	l.logger.WriteLineString(fmt.Sprintf("led: LOW (tinygo/%s)", runtime.GOOS))
}

type nullSerial struct{}

func (nullSerial) Read(p []byte) (int, error)  { return 0, ErrNotImplemented }
func (nullSerial) Write(p []byte) (int, error) { return 0, ErrNotImplemented }
func (nullSerial) Ready() bool                 { return false }
