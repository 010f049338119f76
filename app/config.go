package app

import (
	"errors"
	"fmt"
	"time"

	"badge/badgeos/input"
	"badge/badgeos/program"
	"badge/badgeos/programs"
	"badge/badgeos/sched"
	"badge/badgeos/usbserial"
)

// Config tunes the firmware. The board runs DefaultConfig; the host can
// override it from a file and flags.
type Config struct {
	// Boot is the program shown at power-on.
	Boot program.ID
	// Input selects edge (debounced) or level button handling.
	Input    input.Mode
	Debounce time.Duration

	ProgramPeriod time.Duration
	MenuPeriod    time.Duration
	NotFoundDwell time.Duration
	BlinkPeriod   time.Duration
	SerialPoll    time.Duration
}

// DefaultConfig returns the reference settings.
func DefaultConfig() Config {
	return Config{
		Boot:          program.Lynix,
		Input:         input.Edge,
		Debounce:      30 * time.Millisecond,
		ProgramPeriod: sched.DefaultProgramPeriod,
		MenuPeriod:    sched.DefaultMenuPeriod,
		NotFoundDwell: programs.DefaultDwell,
		BlinkPeriod:   programs.DefaultBlinkPeriod,
		SerialPoll:    usbserial.DefaultPoll,
	}
}

var errBadConfig = errors.New("invalid config")

// Validate rejects settings the scheduler cannot run with.
func (c Config) Validate() error {
	if !c.Boot.Valid() {
		return fmt.Errorf("app: boot %v: %w", c.Boot, errBadConfig)
	}
	if c.Input != input.Edge && c.Input != input.Level {
		return fmt.Errorf("app: input mode %d: %w", c.Input, errBadConfig)
	}
	for _, d := range []struct {
		name string
		v    time.Duration
	}{
		{"program period", c.ProgramPeriod},
		{"menu period", c.MenuPeriod},
		{"notfound dwell", c.NotFoundDwell},
		{"blink period", c.BlinkPeriod},
		{"serial poll", c.SerialPoll},
	} {
		if d.v <= 0 {
			return fmt.Errorf("app: %s %v: %w", d.name, d.v, errBadConfig)
		}
	}
	if c.Debounce < 0 {
		return fmt.Errorf("app: debounce %v: %w", c.Debounce, errBadConfig)
	}
	return nil
}
