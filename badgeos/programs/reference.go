package programs

import (
	"fmt"
	"time"

	"badge/badgeos/program"
	"badge/badgeos/screens"
)

// Items are the reference menu labels. Only the first five have programs.
var Items = []string{
	"Lynix Badge",
	"CCNB",
	"Socials + QR",
	"Device Info",
	"Blinky",
	"DEFCON Furs",
	"Cryptography",
	"Settings",
}

// Options tunes the reference programs.
type Options struct {
	NotFoundDwell time.Duration
	BlinkPeriod   time.Duration
}

// Reference builds the reference dispatch table and returns it with the
// menu labels.
func Reference(opts Options) (*program.Table, []string, error) {
	t := program.NewTable()

	progs := []struct {
		id program.ID
		p  program.Program
	}{
		{program.Lynix, NewCycle(screens.Lynix, screens.Socials)},
		{program.Ccnb, NewCycle(screens.Ccnb, screens.Socials)},
		{program.Socials, Static{Screen: screens.Socials}},
		{program.Info, Static{Screen: screens.Info}},
		{program.Blinky, &Blink{HalfPeriod: opts.BlinkPeriod}},
		{program.NotFound, Missing{Dwell: opts.NotFoundDwell}},
	}
	for _, e := range progs {
		if err := t.Register(e.id, e.p); err != nil {
			return nil, nil, fmt.Errorf("programs: %w", err)
		}
	}

	for i, id := range []program.ID{program.Lynix, program.Ccnb, program.Socials, program.Info, program.Blinky} {
		if err := t.Bind(i, id); err != nil {
			return nil, nil, fmt.Errorf("programs: %w", err)
		}
	}
	return t, append([]string(nil), Items...), nil
}
