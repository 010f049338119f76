package app

import (
	"time"

	"badge/badgeos/gfx"
	"badge/hal"
)

// Panel reset timing.
const (
	resetDelay  = 10 * time.Millisecond
	busyTimeout = 5 * time.Second
)

// Boot power-cycles the panel, waits for it to settle and blanks it.
func Boot(d gfx.Display, sleep func(time.Duration)) error {
	d.Disable()
	sleep(resetDelay)
	d.Enable()
	sleep(resetDelay)

	for waited := time.Duration(0); d.IsBusy(); waited += time.Millisecond {
		if waited >= busyTimeout {
			return gfx.ErrPanelBusy
		}
		sleep(time.Millisecond)
	}

	if err := d.SetSpeed(hal.SpeedTurbo); err != nil {
		return err
	}
	d.Clear(gfx.White)
	return d.Update()
}
