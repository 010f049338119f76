// Package programs holds the badge's built-in programs and the reference
// dispatch table.
package programs

import (
	"time"

	"badge/badgeos/gfx"
	"badge/badgeos/program"
	"badge/badgeos/screens"
)

// Static is a draw-once screen with no per-tick behavior.
type Static struct {
	Screen screens.Func
}

func (s Static) Draw(d gfx.Display) error {
	if s.Screen == nil {
		return nil
	}
	return s.Screen(d)
}

func (Static) Tick(*program.Env, program.TickContext) {}

// Cycle shows Primary, switches to Secondary with the LED on at tick SwapAt,
// and goes back to Primary with the LED off at tick ResetAt, restarting the
// count.
type Cycle struct {
	Primary   screens.Func
	Secondary screens.Func
	SwapAt    uint32
	ResetAt   uint32

	secondary bool
}

// NewCycle returns a Cycle with the reference 10/20 tick schedule.
func NewCycle(primary, secondary screens.Func) *Cycle {
	return &Cycle{Primary: primary, Secondary: secondary, SwapAt: 10, ResetAt: 20}
}

func (c *Cycle) Enter(env *program.Env) {
	c.secondary = false
	env.LEDLow()
}

func (c *Cycle) Leave(env *program.Env) {
	c.secondary = false
	env.LEDLow()
}

func (c *Cycle) Draw(d gfx.Display) error {
	f := c.Primary
	if c.secondary {
		f = c.Secondary
	}
	if f == nil {
		return nil
	}
	return f(d)
}

func (c *Cycle) Tick(env *program.Env, ctx program.TickContext) {
	switch ctx.Ticks {
	case c.SwapAt:
		c.secondary = true
		env.Redraw()
		env.LEDHigh()
	case c.ResetAt:
		c.secondary = false
		env.ResetTicks()
		env.Redraw()
		env.LEDLow()
	}
}

// Showing reports whether the secondary screen is up.
func (c *Cycle) Showing() bool { return c.secondary }

// DefaultBlinkPeriod is the Blinky half-period.
const DefaultBlinkPeriod = 250 * time.Millisecond

// Blink toggles the LED on every tick. Each tick is one half-period.
type Blink struct {
	HalfPeriod time.Duration

	on bool
}

func (b *Blink) Draw(d gfx.Display) error { return screens.Blinky(d) }

func (b *Blink) Enter(env *program.Env) {
	b.on = false
	env.LEDLow()
}

func (b *Blink) Leave(env *program.Env) {
	b.on = false
	env.LEDLow()
}

func (b *Blink) Tick(env *program.Env, _ program.TickContext) {
	b.on = !b.on
	if b.on {
		env.LEDHigh()
	} else {
		env.LEDLow()
	}
}

func (b *Blink) Period() time.Duration {
	if b.HalfPeriod <= 0 {
		return DefaultBlinkPeriod
	}
	return b.HalfPeriod
}

// DefaultDwell is how long the NotFound screen stays up.
const DefaultDwell = 2 * time.Second

// notFoundPoll is the NotFound tick period; it bounds dwell overshoot.
const notFoundPoll = 50 * time.Millisecond

// Missing shows the not-installed message and returns to the menu once
// Dwell has passed, without any input.
type Missing struct {
	Dwell time.Duration
}

func (m Missing) Draw(d gfx.Display) error { return screens.NotFound(d) }

func (m Missing) Tick(env *program.Env, ctx program.TickContext) {
	dwell := m.Dwell
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	if ctx.Elapsed >= dwell {
		env.Exit()
	}
}

func (m Missing) Period() time.Duration { return notFoundPoll }
