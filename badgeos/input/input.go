// Package input turns raw button levels into per-tick button sets.
package input

import (
	"fmt"
	"strings"
	"time"

	"badge/hal"
)

// Set is a bitmask of buttons.
type Set uint8

// Of returns the set holding bs.
func Of(bs ...hal.Button) Set {
	var s Set
	for _, b := range bs {
		s = s.With(b)
	}
	return s
}

// Has reports whether b is in s.
func (s Set) Has(b hal.Button) bool {
	if b >= hal.ButtonCount {
		return false
	}
	return s&(1<<b) != 0
}

// With returns s plus b.
func (s Set) With(b hal.Button) Set {
	if b >= hal.ButtonCount {
		return s
	}
	return s | 1<<b
}

// Empty reports whether no button is in s.
func (s Set) Empty() bool { return s == 0 }

func (s Set) String() string {
	if s == 0 {
		return "{}"
	}
	var names []string
	for b := hal.Button(0); b < hal.ButtonCount; b++ {
		if s.Has(b) {
			names = append(names, b.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Mode selects how a held button is reported.
type Mode uint8

const (
	// Edge reports a button once per physical press.
	Edge Mode = iota
	// Level reports a button on every sample while it is held.
	Level
)

func (m Mode) String() string {
	if m == Level {
		return "level"
	}
	return "edge"
}

// ParseMode accepts "edge" or "level".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "edge":
		return Edge, nil
	case "level":
		return Level, nil
	default:
		return Edge, fmt.Errorf("input: unknown mode %q", s)
	}
}

// Sampler reads every button once per call.
//
// In Edge mode a change of a button's state is accepted only when Debounce
// has passed since its previous accepted change; a press is reported on the
// sample that accepts it. The zero value is an edge sampler with no debounce.
type Sampler struct {
	Mode     Mode
	Debounce time.Duration

	down    Set
	changed [hal.ButtonCount]time.Time
}

// Sample reads b at time now.
func (s *Sampler) Sample(b hal.Buttons, now time.Time) Set {
	var raw Set
	if b != nil {
		for btn := hal.Button(0); btn < hal.ButtonCount; btn++ {
			if b.Pressed(btn) {
				raw = raw.With(btn)
			}
		}
	}
	if s.Mode == Level {
		s.down = raw
		return raw
	}

	var edges Set
	for btn := hal.Button(0); btn < hal.ButtonCount; btn++ {
		pressed := raw.Has(btn)
		if pressed == s.down.Has(btn) {
			continue
		}
		last := s.changed[btn]
		if !last.IsZero() && now.Sub(last) < s.Debounce {
			continue
		}
		s.changed[btn] = now
		if pressed {
			s.down = s.down.With(btn)
			edges = edges.With(btn)
		} else {
			s.down &^= 1 << btn
		}
	}
	return edges
}

// Held returns the buttons the sampler currently considers down.
func (s *Sampler) Held() Set { return s.down }
