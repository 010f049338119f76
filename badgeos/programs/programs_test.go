package programs

import (
	"testing"
	"time"

	"badge/badgeos/gfx"
	"badge/badgeos/gfx/gfxtest"
	"badge/badgeos/program"
)

type recLED struct{ levels []bool }

func (l *recLED) High() { l.levels = append(l.levels, true) }
func (l *recLED) Low()  { l.levels = append(l.levels, false) }

func (l *recLED) last() (bool, bool) {
	if len(l.levels) == 0 {
		return false, false
	}
	return l.levels[len(l.levels)-1], true
}

func newEnv() (*program.Env, *recLED, *gfxtest.Recorder) {
	led := &recLED{}
	rec := gfxtest.New()
	return &program.Env{Display: rec, LED: led}, led, rec
}

func TestBlinkTogglesLowHighLow(t *testing.T) {
	env, led, _ := newEnv()
	b := &Blink{}

	b.Enter(env)
	b.Tick(env, program.TickContext{Ticks: 1})
	b.Tick(env, program.TickContext{Ticks: 2})

	want := []bool{false, true, false}
	if len(led.levels) != len(want) {
		t.Fatalf("levels = %v, want %v", led.levels, want)
	}
	for i := range want {
		if led.levels[i] != want[i] {
			t.Fatalf("levels = %v, want %v", led.levels, want)
		}
	}
	if b.Period() != DefaultBlinkPeriod {
		t.Fatalf("Period = %v, want %v", b.Period(), DefaultBlinkPeriod)
	}
}

func TestBlinkLeaveTurnsLEDOff(t *testing.T) {
	env, led, _ := newEnv()
	b := &Blink{HalfPeriod: 100 * time.Millisecond}

	b.Enter(env)
	b.Tick(env, program.TickContext{Ticks: 1})
	b.Leave(env)

	if v, ok := led.last(); !ok || v {
		t.Fatalf("LED = %v after Leave, want low", led.levels)
	}
	if b.Period() != 100*time.Millisecond {
		t.Fatalf("Period = %v", b.Period())
	}
}

func TestCycleSwapsAndResets(t *testing.T) {
	env, led, rec := newEnv()
	c := NewCycle(func(d gfx.Display) error { d.DrawText("primary", 0, 0, 0); return nil },
		func(d gfx.Display) error { d.DrawText("secondary", 0, 0, 0); return nil })

	c.Enter(env)
	for tick := uint32(1); tick < 10; tick++ {
		c.Tick(env, program.TickContext{Ticks: tick})
		if r := env.TakeRequests(); r != (program.Requests{}) {
			t.Fatalf("tick %d: requests = %+v, want none", tick, r)
		}
	}

	c.Tick(env, program.TickContext{Ticks: 10})
	r := env.TakeRequests()
	if !r.Redraw || r.ResetTicks {
		t.Fatalf("tick 10: requests = %+v", r)
	}
	if v, _ := led.last(); !v {
		t.Fatal("tick 10: expected LED high")
	}
	if err := c.Draw(rec); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !rec.Contains("secondary") {
		t.Fatalf("tick 10: drew %q, want secondary", rec.Text())
	}

	c.Tick(env, program.TickContext{Ticks: 20})
	r = env.TakeRequests()
	if !r.Redraw || !r.ResetTicks {
		t.Fatalf("tick 20: requests = %+v", r)
	}
	if v, _ := led.last(); v {
		t.Fatal("tick 20: expected LED low")
	}
	rec.Reset()
	_ = c.Draw(rec)
	if !rec.Contains("primary") || rec.Contains("secondary") {
		t.Fatalf("tick 20: drew %q, want primary", rec.Text())
	}
}

func TestMissingExitsAfterDwell(t *testing.T) {
	env, _, _ := newEnv()
	m := Missing{Dwell: 2 * time.Second}

	m.Tick(env, program.TickContext{Ticks: 1, Elapsed: 1999 * time.Millisecond})
	if env.TakeRequests().Exit {
		t.Fatal("exited before dwell")
	}
	m.Tick(env, program.TickContext{Ticks: 2, Elapsed: 2 * time.Second})
	if !env.TakeRequests().Exit {
		t.Fatal("expected exit at dwell")
	}
}

func TestReferenceTable(t *testing.T) {
	tbl, items, err := Reference(Options{})
	if err != nil {
		t.Fatalf("Reference: %v", err)
	}
	if len(items) != 8 || items[0] != "Lynix Badge" || items[7] != "Settings" {
		t.Fatalf("items = %q", items)
	}

	want := []program.ID{program.Lynix, program.Ccnb, program.Socials, program.Info, program.Blinky,
		program.NotFound, program.NotFound, program.NotFound, program.NotFound}
	for i, id := range want {
		if got := tbl.Lookup(i); got != id {
			t.Fatalf("Lookup(%d) = %v, want %v", i, got, id)
		}
	}
	for _, id := range want {
		if tbl.Program(id) == nil {
			t.Fatalf("Program(%v) = nil", id)
		}
	}
	if _, ok := tbl.Program(program.NotFound).(program.Pacer); !ok {
		t.Fatal("NotFound should set its own tick period")
	}
}
