// Package sched runs the badge's foreground loop.
//
// Each iteration samples the buttons once, feeds the navigation machine,
// runs the active program's per-tick logic and redraws only when the screen
// is stale. Draw failures are logged and never stop the loop.
package sched

import (
	"context"
	"fmt"
	"time"

	"badge/badgeos/gfx"
	"badge/badgeos/input"
	"badge/badgeos/mailbox"
	"badge/badgeos/nav"
	"badge/badgeos/program"
	"badge/badgeos/screens"
	"badge/badgeos/usbserial"
	"badge/hal"
)

// Default periods.
const (
	DefaultProgramPeriod = time.Second
	DefaultMenuPeriod    = time.Millisecond
)

// Resources are the capabilities the scheduler owns. Only Display is
// required.
type Resources struct {
	Display gfx.Display
	Buttons hal.Buttons
	LED     hal.LED
	Logger  hal.Logger
	Events  *mailbox.Mailbox[usbserial.Event]
}

// Options configures a Scheduler.
type Options struct {
	Items []string
	Table *program.Table
	Boot  program.ID

	Input    input.Mode
	Debounce time.Duration

	// ProgramPeriod is the tick period for programs that do not set their own.
	ProgramPeriod time.Duration
	// MenuPeriod is the tick period while the menu is showing.
	MenuPeriod time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// Scheduler is the foreground loop. It is not safe for concurrent use.
type Scheduler struct {
	res     Resources
	opts    Options
	nav     *nav.Machine
	sampler input.Sampler
	env     program.Env

	started bool
	active  program.ID

	speedSet bool
	speed    hal.Speed

	next time.Time
}

// New returns a scheduler in the boot state. Nothing is drawn until the
// first tick.
func New(res Resources, opts Options) *Scheduler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ProgramPeriod <= 0 {
		opts.ProgramPeriod = DefaultProgramPeriod
	}
	if opts.MenuPeriod <= 0 {
		opts.MenuPeriod = DefaultMenuPeriod
	}
	if opts.Table == nil {
		opts.Table = program.NewTable()
	}
	s := &Scheduler{
		res:     res,
		opts:    opts,
		sampler: input.Sampler{Mode: opts.Input, Debounce: opts.Debounce},
		env:     program.Env{Display: res.Display, LED: res.LED, Logger: res.Logger},
	}
	s.nav = nav.New(opts.Items, opts.Table, opts.Boot, res.Logger, opts.Now())
	return s
}

// Machine exposes the navigation state.
func (s *Scheduler) Machine() *nav.Machine { return s.nav }

// Period returns the delay before the next iteration.
func (s *Scheduler) Period() time.Duration {
	if s.nav.InMenu() {
		return s.opts.MenuPeriod
	}
	if p, ok := s.opts.Table.Program(s.nav.State()).(program.Pacer); ok {
		if d := p.Period(); d > 0 {
			return d
		}
	}
	return s.opts.ProgramPeriod
}

// Tick performs one iteration at the current time.
func (s *Scheduler) Tick() {
	s.TickAt(s.opts.Now())
}

// TickAt performs one iteration as if the time were now.
func (s *Scheduler) TickAt(now time.Time) {
	s.sync(now)

	pressed := s.sampler.Sample(s.res.Buttons, now)
	s.nav.Step(pressed, now)
	s.sync(now)
	s.flush(now)

	if !s.nav.InMenu() {
		s.runProgram(pressed, now)
		s.flush(now)
	}

	s.drainEvents()
	s.next = now.Add(s.Period())
}

// Poll runs an iteration if one is due and reports whether it did.
func (s *Scheduler) Poll() bool {
	now := s.opts.Now()
	if !s.next.IsZero() && now.Before(s.next) {
		return false
	}
	s.TickAt(now)
	return true
}

// Run ticks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	t := time.NewTimer(0)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.Tick()
			t.Reset(s.Period())
		}
	}
}

func (s *Scheduler) runProgram(pressed input.Set, now time.Time) {
	id := s.nav.State()
	p := s.opts.Table.Program(id)
	if p == nil {
		return
	}
	ctx := program.TickContext{
		Pressed: pressed,
		Ticks:   s.nav.Tick(),
		Elapsed: now.Sub(s.nav.Entered()),
		Now:     now,
	}
	if !s.guard(id, now, func() { p.Tick(&s.env, ctx) }) {
		s.sync(now)
		return
	}

	req := s.env.TakeRequests()
	if req.ResetTicks {
		s.nav.ResetTicks()
	}
	if req.Redraw {
		s.nav.MarkDirty()
	}
	if req.Exit {
		s.nav.Exit(now)
		s.sync(now)
	}
}

// sync runs Leave and Enter hooks when the navigation state has moved.
func (s *Scheduler) sync(now time.Time) {
	cur := s.nav.State()
	if s.started && cur == s.active {
		return
	}
	prev := s.active
	wasStarted := s.started
	s.started = true
	s.active = cur

	if wasStarted && prev != program.Menu {
		if l, ok := s.opts.Table.Program(prev).(program.Leaver); ok {
			s.guard(prev, now, func() { l.Leave(&s.env) })
		}
	}
	_ = s.env.TakeRequests()

	speed := hal.SpeedTurbo
	if cur != program.Menu {
		speed = hal.SpeedFast
		if e, ok := s.opts.Table.Program(cur).(program.Enterer); ok {
			s.guard(cur, now, func() { e.Enter(&s.env) })
		}
	}
	s.setSpeed(speed)
	// A panicking hook may have moved the machine again.
	if s.nav.State() != s.active {
		s.sync(now)
	}
}

func (s *Scheduler) setSpeed(sp hal.Speed) {
	if s.res.Display == nil || (s.speedSet && s.speed == sp) {
		return
	}
	if err := s.res.Display.SetSpeed(sp); err != nil {
		s.logf("render: speed %v: %v", sp, err)
		return
	}
	s.speedSet = true
	s.speed = sp
}

// flush redraws the active screen if it is stale. The dirty flag is cleared
// even when drawing fails so a broken screen is not retried every tick.
func (s *Scheduler) flush(now time.Time) {
	if !s.nav.Dirty() || s.res.Display == nil {
		return
	}
	id := s.nav.State()
	d := s.res.Display

	var err error
	ok := s.guard(id, now, func() {
		d.Clear(gfx.White)
		if id == program.Menu {
			err = screens.Menu(d, s.nav.Menu())
		} else if p := s.opts.Table.Program(id); p != nil {
			err = p.Draw(d)
		}
		if uerr := d.Update(); err == nil {
			err = uerr
		}
	})
	if err != nil {
		s.logf("render: %v: %v", id, err)
	}
	if ok || id == program.Menu {
		s.nav.MarkClean()
		return
	}
	// The program panicked while drawing and the machine is back in the menu.
	s.sync(now)
	s.flush(now)
}

// guard runs fn and turns a panic into a return to the menu. It reports
// whether fn completed.
func (s *Scheduler) guard(id program.ID, now time.Time, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			s.logf("panic: %v: %v", id, r)
			if id != program.Menu {
				s.nav.Exit(now)
			}
		}
	}()
	fn()
	return true
}

func (s *Scheduler) drainEvents() {
	if s.res.Events == nil {
		return
	}
	s.res.Events.Drain(func(e usbserial.Event) {
		s.logf("%v", e)
	})
}

func (s *Scheduler) logf(format string, args ...any) {
	if s.res.Logger == nil {
		return
	}
	s.res.Logger.WriteLineString(fmt.Sprintf(format, args...))
}
