//go:build tinygo && baremetal

package hal

import (
	"machine"
	"sync/atomic"
)

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// machineInputPin is an active-high button input. A rising-edge interrupt
// latches presses shorter than the sampling period.
type machineInputPin struct {
	pin     machine.Pin
	name    string
	latched atomic.Bool
}

func newMachineInputPin(name string, pin machine.Pin) *machineInputPin {
	p := &machineInputPin{pin: pin, name: name}
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	_ = pin.SetInterrupt(machine.PinRising, func(machine.Pin) {
		p.latched.Store(true)
	})
	return p
}

func (p *machineInputPin) Name() string   { return p.name }
func (p *machineInputPin) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullDown }

func (p *machineInputPin) Configure(mode GPIOMode, pull GPIOPull) error {
	if mode != GPIOModeInput || pull != GPIOPullDown {
		return ErrNotImplemented
	}
	return nil
}

func (p *machineInputPin) Read() (bool, error) {
	level := p.pin.Get()
	if p.latched.Swap(false) {
		level = true
	}
	return level, nil
}

func (p *machineInputPin) Write(level bool) error {
	_ = level
	return ErrNotImplemented
}

// usbSerial adapts the USB CDC port to the non-blocking Serial contract.
type usbSerial struct {
	port machine.Serialer
}

func (s *usbSerial) Read(p []byte) (int, error) {
	if s.port == nil {
		return 0, ErrNotImplemented
	}
	n := 0
	for n < len(p) && s.port.Buffered() > 0 {
		c, err := s.port.ReadByte()
		if err != nil {
			return n, err
		}
		p[n] = c
		n++
	}
	return n, nil
}

func (s *usbSerial) Write(p []byte) (int, error) {
	if s.port == nil {
		return 0, ErrNotImplemented
	}
	return s.port.Write(p)
}

// Ready reports DTR, which the host asserts once it opens the port.
func (s *usbSerial) Ready() bool {
	return s.port != nil && s.port.DTR()
}
