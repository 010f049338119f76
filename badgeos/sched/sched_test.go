package sched

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"badge/badgeos/gfx"
	"badge/badgeos/gfx/gfxtest"
	"badge/badgeos/input"
	"badge/badgeos/mailbox"
	"badge/badgeos/program"
	"badge/badgeos/programs"
	"badge/badgeos/usbserial"
	"badge/hal"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type fakeButtons struct {
	down [hal.ButtonCount]bool
}

func (f *fakeButtons) Pressed(b hal.Button) bool { return b < hal.ButtonCount && f.down[b] }

type fakeLED struct{ on bool }

func (l *fakeLED) High() { l.on = true }
func (l *fakeLED) Low()  { l.on = false }

type lineLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *lineLog) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}
func (l *lineLog) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *lineLog) has(prefix string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

type harness struct {
	s     *Scheduler
	clock *fakeClock
	btns  *fakeButtons
	led   *fakeLED
	rec   *gfxtest.Recorder
	log   *lineLog
}

func newHarness(t *testing.T, boot program.ID, mode input.Mode) *harness {
	t.Helper()
	tbl, items, err := programs.Reference(programs.Options{})
	if err != nil {
		t.Fatalf("Reference: %v", err)
	}
	return newHarnessWithTable(t, boot, mode, tbl, items)
}

func newHarnessWithTable(t *testing.T, boot program.ID, mode input.Mode, tbl *program.Table, items []string) *harness {
	t.Helper()
	h := &harness{
		clock: &fakeClock{t: time.Unix(1000, 0)},
		btns:  &fakeButtons{},
		led:   &fakeLED{},
		rec:   gfxtest.New(),
		log:   &lineLog{},
	}
	h.s = New(Resources{Display: h.rec, Buttons: h.btns, LED: h.led, Logger: h.log}, Options{
		Items:         items,
		Table:         tbl,
		Boot:          boot,
		Input:         mode,
		Debounce:      30 * time.Millisecond,
		ProgramPeriod: time.Second,
		MenuPeriod:    time.Millisecond,
		Now:           h.clock.now,
	})
	return h
}

// press holds b for one tick, then releases it for another.
func (h *harness) press(b hal.Button) {
	h.btns.down[b] = true
	h.tick(50 * time.Millisecond)
	h.btns.down[b] = false
	h.tick(50 * time.Millisecond)
}

func (h *harness) tick(d time.Duration) {
	h.clock.advance(d)
	h.s.Tick()
}

func TestBootDrawsOnceThenStaysQuiet(t *testing.T) {
	h := newHarness(t, program.Lynix, input.Edge)

	h.tick(0)
	if h.rec.Updates() != 1 {
		t.Fatalf("Updates = %d after boot tick, want 1", h.rec.Updates())
	}
	if !h.rec.Contains("Cybersecurity Student") {
		t.Fatalf("boot screen = %q, want Lynix", h.rec.Text())
	}

	h.rec.Reset()
	for i := 0; i < 5; i++ {
		h.tick(time.Second)
	}
	if ops := h.rec.Ops(); len(ops) != 0 {
		t.Fatalf("ops without transition = %q, want none", ops)
	}
}

func TestMenuRedrawsOnlyOnChange(t *testing.T) {
	h := newHarness(t, program.Menu, input.Edge)
	h.tick(0)
	h.rec.Reset()

	h.press(hal.ButtonDown)
	if h.rec.Updates() != 1 {
		t.Fatalf("Updates = %d after Down, want 1", h.rec.Updates())
	}
	if h.s.Machine().Menu().Selected() != 1 {
		t.Fatalf("selected = %d, want 1", h.s.Machine().Menu().Selected())
	}

	h.rec.Reset()
	h.press(hal.ButtonUp)
	h.press(hal.ButtonUp)
	if h.rec.Updates() != 1 {
		t.Fatalf("Updates = %d after Up x2 from 1, want 1", h.rec.Updates())
	}
}

func TestHeldButtonEdgeVersusLevel(t *testing.T) {
	for _, tt := range []struct {
		mode input.Mode
		want int
	}{
		{input.Edge, 1},
		{input.Level, 5},
	} {
		h := newHarness(t, program.Menu, tt.mode)
		h.btns.down[hal.ButtonDown] = true
		for i := 0; i < 5; i++ {
			h.tick(10 * time.Millisecond)
		}
		if got := h.s.Machine().Menu().Selected(); got != tt.want {
			t.Fatalf("%v: selected = %d, want %d", tt.mode, got, tt.want)
		}
	}
}

func TestALaunchesAndBReturns(t *testing.T) {
	h := newHarness(t, program.Menu, input.Edge)
	h.tick(0)

	for i := 0; i < 4; i++ {
		h.press(hal.ButtonDown)
	}
	h.press(hal.ButtonA)
	if got := h.s.Machine().State(); got != program.Blinky {
		t.Fatalf("state = %v, want blinky", got)
	}
	if !h.rec.Contains("Blinky Test") {
		t.Fatalf("drawn = %q, want blinky screen", h.rec.Text())
	}
	speeds := h.rec.Speeds()
	if len(speeds) < 2 || speeds[0] != hal.SpeedTurbo || speeds[len(speeds)-1] != hal.SpeedFast {
		t.Fatalf("speeds = %v, want turbo then fast", speeds)
	}

	h.press(hal.ButtonB)
	if got := h.s.Machine().State(); got != program.Menu {
		t.Fatalf("state = %v, want menu", got)
	}
	if h.led.on {
		t.Fatal("LED left on after leaving blinky")
	}
	if sp := h.rec.Speeds(); sp[len(sp)-1] != hal.SpeedTurbo {
		t.Fatalf("speeds = %v, want turbo last", sp)
	}
}

func TestNotFoundReturnsAfterDwell(t *testing.T) {
	h := newHarness(t, program.Menu, input.Edge)
	h.tick(0)
	h.s.Machine().Menu().Select(6)

	h.btns.down[hal.ButtonA] = true
	h.tick(0)
	h.btns.down[hal.ButtonA] = false
	if got := h.s.Machine().State(); got != program.NotFound {
		t.Fatalf("state = %v, want notfound", got)
	}
	if !h.rec.Contains("Program Not Installed.") {
		t.Fatalf("drawn = %q", h.rec.Text())
	}
	if p := h.s.Period(); p >= time.Second {
		t.Fatalf("Period = %v, want a short poll while the dwell runs", p)
	}

	h.tick(1900 * time.Millisecond)
	if got := h.s.Machine().State(); got != program.NotFound {
		t.Fatalf("state = %v before dwell, want notfound", got)
	}
	h.tick(100 * time.Millisecond)
	if got := h.s.Machine().State(); got != program.Menu {
		t.Fatalf("state = %v after dwell, want menu", got)
	}
	if h.s.Machine().Dirty() {
		t.Fatal("menu should have been redrawn in the same tick")
	}
}

func TestLynixCyclesThroughSocials(t *testing.T) {
	h := newHarness(t, program.Lynix, input.Edge)
	h.tick(0) // tick 1

	for i := 2; i < 10; i++ {
		h.tick(time.Second)
	}
	h.rec.Reset()
	h.tick(time.Second) // tick 10
	if !h.rec.Contains("@cyberlynix") || h.rec.Updates() != 1 {
		t.Fatalf("tick 10 drew %q with %d updates, want socials", h.rec.Text(), h.rec.Updates())
	}
	if !h.led.on {
		t.Fatal("tick 10: LED should be high")
	}

	for i := 11; i < 20; i++ {
		h.tick(time.Second)
	}
	h.rec.Reset()
	h.tick(time.Second) // tick 20
	if !h.rec.Contains("Cybersecurity Student") || h.rec.Contains("@cyberlynix") {
		t.Fatalf("tick 20 drew %q, want lynix", h.rec.Text())
	}
	if h.led.on {
		t.Fatal("tick 20: LED should be low")
	}
	if got := h.s.Machine().Ticks(); got != 0 {
		t.Fatalf("ticks = %d after reset, want 0", got)
	}
}

func TestRenderErrorIsLoggedAndNotRetried(t *testing.T) {
	h := newHarness(t, program.Info, input.Edge)
	h.rec.UpdateErr = errors.New("spi: bus fault")

	h.tick(0)
	if !h.log.has("render: info: spi: bus fault") {
		t.Fatalf("log = %q", h.log.lines)
	}
	if h.s.Machine().Dirty() {
		t.Fatal("dirty flag not cleared after failed draw")
	}

	h.tick(time.Second)
	if h.rec.Updates() != 1 {
		t.Fatalf("Updates = %d, want 1", h.rec.Updates())
	}
}

type panicky struct{ inDraw bool }

func (p panicky) Draw(gfx.Display) error {
	if p.inDraw {
		panic("draw exploded")
	}
	return nil
}

func (p panicky) Tick(*program.Env, program.TickContext) { panic("tick exploded") }

func TestProgramPanicReturnsToMenu(t *testing.T) {
	for _, inDraw := range []bool{false, true} {
		tbl := program.NewTable()
		if err := tbl.Register(program.Info, panicky{inDraw: inDraw}); err != nil {
			t.Fatalf("Register: %v", err)
		}
		if err := tbl.Bind(0, program.Info); err != nil {
			t.Fatalf("Bind: %v", err)
		}
		h := newHarnessWithTable(t, program.Info, input.Edge, tbl, []string{"x"})

		h.tick(0)
		if got := h.s.Machine().State(); got != program.Menu {
			t.Fatalf("inDraw=%v: state = %v, want menu", inDraw, got)
		}
		if !h.log.has("panic: info:") {
			t.Fatalf("inDraw=%v: log = %q", inDraw, h.log.lines)
		}
		if !h.rec.Contains("Programs") {
			t.Fatalf("inDraw=%v: menu not drawn: %q", inDraw, h.rec.Text())
		}
	}
}

func TestPeriodFollowsState(t *testing.T) {
	h := newHarness(t, program.Menu, input.Edge)
	if got := h.s.Period(); got != time.Millisecond {
		t.Fatalf("menu Period = %v", got)
	}
	h.s.Machine().Launch(program.Info, h.clock.now())
	if got := h.s.Period(); got != time.Second {
		t.Fatalf("info Period = %v", got)
	}
	h.s.Machine().Launch(program.Blinky, h.clock.now())
	if got := h.s.Period(); got != programs.DefaultBlinkPeriod {
		t.Fatalf("blinky Period = %v", got)
	}
}

func TestPollWaitsForPeriod(t *testing.T) {
	h := newHarness(t, program.Info, input.Edge)

	if !h.s.Poll() {
		t.Fatal("first Poll should tick")
	}
	h.clock.advance(500 * time.Millisecond)
	if h.s.Poll() {
		t.Fatal("Poll ticked before the period elapsed")
	}
	h.clock.advance(500 * time.Millisecond)
	if !h.s.Poll() {
		t.Fatal("Poll should tick once the period elapsed")
	}
}

func TestSerialEventsAreLogged(t *testing.T) {
	h := newHarness(t, program.Menu, input.Edge)
	mb := mailbox.New[usbserial.Event](4)
	h.s.res.Events = mb

	mb.Send(usbserial.Event{Kind: usbserial.EventReady})
	h.tick(0)

	if !h.log.has("serial: ready") {
		t.Fatalf("log = %q", h.log.lines)
	}
	if mb.Len() != 0 {
		t.Fatalf("mailbox Len = %d, want 0", mb.Len())
	}
}
