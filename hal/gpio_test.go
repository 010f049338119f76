package hal

import (
	"errors"
	"image/color"
	"testing"
)

func TestVirtualPinLatchesShortPress(t *testing.T) {
	p := newVirtualPin("BTN", GPIOCapInput)
	if err := p.Configure(GPIOModeInput, GPIOPullNone); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	p.set(true)
	p.set(false)

	level, err := p.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !level {
		t.Fatal("expected latched press to read high")
	}

	level, err = p.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if level {
		t.Fatal("expected latch to clear after one read")
	}
}

func TestVirtualPinConfigureRejectsMissingCaps(t *testing.T) {
	p := newVirtualPin("BTN", GPIOCapInput)
	if err := p.Configure(GPIOModeOutput, GPIOPullNone); err == nil {
		t.Fatal("expected output mode to be rejected")
	}
	if err := p.Configure(GPIOModeInput, GPIOPullUp); err == nil {
		t.Fatal("expected pull-up to be rejected")
	}
}

type errPin struct{}

func (errPin) Name() string                       { return "ERR" }
func (errPin) Caps() GPIOCaps                     { return GPIOCapInput }
func (errPin) Configure(GPIOMode, GPIOPull) error { return nil }
func (errPin) Read() (bool, error)                { return true, errors.New("bus fault") }
func (errPin) Write(bool) error                   { return ErrNotImplemented }

func TestPinButtonsReadErrorIsReleased(t *testing.T) {
	held := newVirtualPin("UP", GPIOCapInput)
	held.set(true)

	b := NewPinButtons(held, errPin{})

	if !b.Pressed(ButtonUp) {
		t.Fatal("expected up pressed")
	}
	if b.Pressed(ButtonDown) {
		t.Fatal("expected read error to report released")
	}
	if b.Pressed(ButtonA) {
		t.Fatal("expected missing pin to report released")
	}
	if b.Pressed(ButtonCount) {
		t.Fatal("expected out-of-range button to report released")
	}
}

type recLED struct{ calls []bool }

func (l *recLED) High() { l.calls = append(l.calls, true) }
func (l *recLED) Low()  { l.calls = append(l.calls, false) }

func TestLEDPinWrite(t *testing.T) {
	led := &recLED{}
	p := newLEDPin("LED", led)

	if err := p.Write(true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := p.Write(false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(led.calls) != 2 || !led.calls[0] || led.calls[1] {
		t.Fatalf("led calls = %v, want [true false]", led.calls)
	}
}

func TestMemoryPanelFlushesBackBuffer(t *testing.T) {
	p := NewMemoryPanel(16, 4)
	black := color.RGBA{A: 0xff}

	p.SetPixel(9, 2, black)
	if p.Ink(9, 2) {
		t.Fatal("expected pixel hidden until Display")
	}
	if err := p.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !p.Ink(9, 2) {
		t.Fatal("expected ink after Display")
	}
	if p.Flushes() != 1 {
		t.Fatalf("Flushes = %d, want 1", p.Flushes())
	}

	p.SetPixel(-1, 0, black)
	p.SetPixel(16, 0, black)

	p.ClearBuffer()
	p.PowerOff()
	if err := p.Display(); err == nil {
		t.Fatal("expected Display to fail while powered off")
	}
	if !p.Ink(9, 2) {
		t.Fatal("expected front buffer unchanged after failed Display")
	}
}

func TestVirtualGPIOPins(t *testing.T) {
	led := &recLED{}
	btn := newVirtualPin("BTN_a", GPIOCapInput)
	g := newVirtualGPIO([]GPIOPin{newLEDPin("LED", led), btn})

	if g.PinCount() != 2 {
		t.Fatalf("PinCount = %d, want 2", g.PinCount())
	}
	if p := g.Pin(1); p == nil || p.Name() != "BTN_a" {
		t.Fatalf("Pin(1) = %v", p)
	}
	if g.Pin(2) != nil || g.Pin(-1) != nil {
		t.Fatal("expected out-of-range pins to be nil")
	}
	if newVirtualGPIO(nil).PinCount() != 0 {
		t.Fatal("expected empty GPIO")
	}
}
