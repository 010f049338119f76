//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/uc8151"
)

type tinyGoHAL struct {
	logger  *uartLogger
	led     *pinLED
	gpio    GPIO
	panel   *uc8151Panel
	buttons Buttons
	serial  *usbSerial
}

// New returns the badge HAL (RP2040 with a UC8151 e-ink panel).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1, for logs.
// Serial: USB CDC.
// Panel: SPI0 SCK GP18, SDO GP19, CS GP17, DC GP20, RESET GP21, BUSY GP26.
// Buttons (active high, pull-down): UP GP15, DOWN GP11, A GP12, B GP13, C GP14.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	// The panel and buttons sit behind the 3V3 switch.
	power := machine.GP10
	power.Configure(machine.PinConfig{Mode: machine.PinOutput})
	power.High()

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := &pinLED{pin: ledPin}

	btnPins := []GPIOPin{
		newMachineInputPin("BTN_up", machine.GP15),
		newMachineInputPin("BTN_down", machine.GP11),
		newMachineInputPin("BTN_a", machine.GP12),
		newMachineInputPin("BTN_b", machine.GP13),
		newMachineInputPin("BTN_c", machine.GP14),
	}
	pins := append([]GPIOPin{newLEDPin("LED", led)}, btnPins...)

	return &tinyGoHAL{
		logger:  &uartLogger{uart: uart},
		led:     led,
		gpio:    newVirtualGPIO(pins),
		panel:   newUC8151Panel(),
		buttons: NewPinButtons(btnPins...),
		serial:  &usbSerial{port: machine.Serial},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) GPIO() GPIO       { return h.gpio }
func (h *tinyGoHAL) Panel() Panel     { return h.panel }
func (h *tinyGoHAL) Buttons() Buttons { return h.buttons }
func (h *tinyGoHAL) Serial() Serial   { return h.serial }

type uc8151Panel struct {
	dev uc8151.Device
}

func newUC8151Panel() *uc8151Panel {
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 12_000_000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
	})

	p := &uc8151Panel{
		dev: uc8151.New(machine.SPI0, machine.GP17, machine.GP20, machine.GP21, machine.GP26),
	}
	p.configure(uc8151.FAST)
	return p
}

func (p *uc8151Panel) configure(speed uc8151.Speed) {
	p.dev.Configure(uc8151.Config{
		Rotation:    uc8151.ROTATION_270,
		Speed:       speed,
		FlickerFree: true,
	})
}

func (p *uc8151Panel) Size() (x, y int16)                { return p.dev.Size() }
func (p *uc8151Panel) SetPixel(x, y int16, c color.RGBA) { p.dev.SetPixel(x, y, c) }
func (p *uc8151Panel) Display() error                    { return p.dev.Display() }
func (p *uc8151Panel) ClearBuffer()                      { p.dev.ClearBuffer() }
func (p *uc8151Panel) IsBusy() bool                      { return p.dev.IsBusy() }

func (p *uc8151Panel) PowerOn() {
	p.dev.PowerOn()
	time.Sleep(10 * time.Millisecond)
}

func (p *uc8151Panel) PowerOff() {
	p.dev.PowerOff()
}

// SetSpeed reloads the waveform LUT. It resets the controller, so callers
// redraw afterwards.
func (p *uc8151Panel) SetSpeed(s Speed) error {
	switch s {
	case SpeedTurbo:
		p.configure(uc8151.TURBO)
	case SpeedFast:
		p.configure(uc8151.FAST)
	default:
		return ErrNotImplemented
	}
	return nil
}
