// Package program defines what a badge program is and how menu entries map
// to programs.
package program

import (
	"fmt"
	"strings"
	"time"

	"badge/badgeos/gfx"
	"badge/badgeos/input"
	"badge/hal"
)

// ID names the active screen. Exactly one ID is current at any time.
type ID uint8

const (
	Menu ID = iota
	Lynix
	Ccnb
	Socials
	Info
	Blinky
	NotFound

	idCount
)

var idNames = [idCount]string{
	Menu:     "menu",
	Lynix:    "lynix",
	Ccnb:     "ccnb",
	Socials:  "socials",
	Info:     "info",
	Blinky:   "blinky",
	NotFound: "notfound",
}

func (id ID) String() string {
	if id >= idCount {
		return fmt.Sprintf("id(%d)", uint8(id))
	}
	return idNames[id]
}

// Valid reports whether id is one of the defined programs.
func (id ID) Valid() bool { return id < idCount }

// ParseID accepts the lower-case names printed by String.
func ParseID(s string) (ID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for id, name := range idNames {
		if s == name {
			return ID(id), nil
		}
	}
	return Menu, fmt.Errorf("program: unknown program %q", s)
}

// TickContext is what a program sees on each scheduler iteration.
type TickContext struct {
	// Pressed holds the buttons sampled this tick.
	Pressed input.Set
	// Ticks counts calls since entry; it is 1 on the first call.
	Ticks uint32
	// Elapsed is the time since entry.
	Elapsed time.Duration
	Now     time.Time
}

// Program is one entry of the dispatch table.
//
// Draw paints the program's screen; the scheduler calls it once per entry
// and again whenever a redraw is requested, then flushes the display. Tick
// runs on every iteration while the program is active.
type Program interface {
	Draw(d gfx.Display) error
	Tick(env *Env, ctx TickContext)
}

// Enterer is implemented by programs that need setup on entry.
type Enterer interface {
	Enter(env *Env)
}

// Leaver is implemented by programs that need cleanup on exit.
type Leaver interface {
	Leave(env *Env)
}

// Pacer is implemented by programs that want a tick period other than the
// scheduler's default.
type Pacer interface {
	Period() time.Duration
}

// Env gives a running program access to its outputs and lets it ask the
// scheduler for state changes. Requests take effect after Tick returns.
type Env struct {
	Display gfx.Display
	LED     hal.LED
	Logger  hal.Logger

	redraw     bool
	resetTicks bool
	exit       bool
}

// Redraw asks for Draw to run again and the display to be flushed.
func (e *Env) Redraw() { e.redraw = true }

// ResetTicks restarts the tick counter at zero.
func (e *Env) ResetTicks() { e.resetTicks = true }

// Exit returns to the menu.
func (e *Env) Exit() { e.exit = true }

// Requests is the set of requests made during one Tick.
type Requests struct {
	Redraw     bool
	ResetTicks bool
	Exit       bool
}

// TakeRequests returns and clears the pending requests.
func (e *Env) TakeRequests() Requests {
	r := Requests{Redraw: e.redraw, ResetTicks: e.resetTicks, Exit: e.exit}
	e.redraw, e.resetTicks, e.exit = false, false, false
	return r
}

// Logf writes a formatted line to the env logger, if any.
func (e *Env) Logf(format string, args ...any) {
	if e == nil || e.Logger == nil {
		return
	}
	e.Logger.WriteLineString(fmt.Sprintf(format, args...))
}

// LEDHigh drives the LED high when one is attached.
func (e *Env) LEDHigh() {
	if e.LED != nil {
		e.LED.High()
	}
}

// LEDLow drives the LED low when one is attached.
func (e *Env) LEDLow() {
	if e.LED != nil {
		e.LED.Low()
	}
}
