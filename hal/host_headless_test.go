//go:build !tinygo

package hal

import (
	"errors"
	"testing"
)

func TestParseScript(t *testing.T) {
	taps, err := ParseScript("a@15, down@5,B@40")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	want := []Tap{{5, ButtonDown}, {15, ButtonA}, {40, ButtonB}}
	if len(taps) != len(want) {
		t.Fatalf("taps = %v, want %v", taps, want)
	}
	for i := range want {
		if taps[i] != want[i] {
			t.Fatalf("taps[%d] = %v, want %v", i, taps[i], want[i])
		}
	}

	if taps, err := ParseScript(""); err != nil || taps != nil {
		t.Fatalf("empty script = %v, %v", taps, err)
	}
	for _, bad := range []string{"a", "x@1", "a@0", "a@soon"} {
		if _, err := ParseScript(bad); err == nil {
			t.Fatalf("ParseScript(%q) succeeded", bad)
		}
	}
}

func TestRunStepTapsAroundStep(t *testing.T) {
	h := &hostHAL{}
	var pins []GPIOPin
	for b := Button(0); b < ButtonCount; b++ {
		p := newVirtualPin("BTN_"+b.String(), GPIOCapInput)
		h.buttons[b] = p
		pins = append(pins, p)
	}
	h.btns = NewPinButtons(pins...)

	script := []Tap{{1, ButtonA}, {3, ButtonB}}
	var seen []bool
	step := func() error {
		seen = append(seen, h.btns.Pressed(ButtonA))
		return nil
	}

	script, _ = h.runStep(1, script, step)
	script, _ = h.runStep(2, script, step)
	if len(script) != 1 || script[0].Button != ButtonB {
		t.Fatalf("pending = %v", script)
	}
	if !seen[0] || seen[1] {
		t.Fatalf("A pressed per step = %v, want [true false]", seen)
	}

	boom := errors.New("boom")
	if _, err := h.runStep(3, script, func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	// The step never read B, so the tap stays latched for exactly one read.
	if !h.btns.Pressed(ButtonB) || h.btns.Pressed(ButtonB) {
		t.Fatal("expected unread tap to be latched once")
	}
}
