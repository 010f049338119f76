//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Script taps buttons at fixed steps; see ParseScript.
	Script []Tap
}

// Tap presses Button just before step Step (1-based) and releases it after.
type Tap struct {
	Step   uint64
	Button Button
}

// ParseScript parses a comma-separated list of button@step taps, for example
// "down@5,down@10,a@15,b@40". The result is ordered by step.
func ParseScript(s string) ([]Tap, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var taps []Tap
	for _, field := range strings.Split(s, ",") {
		name, at, ok := strings.Cut(strings.TrimSpace(field), "@")
		if !ok {
			return nil, fmt.Errorf("script: %q: want button@step", field)
		}
		b, err := ParseButton(name)
		if err != nil {
			return nil, fmt.Errorf("script: %q: %w", field, err)
		}
		step, err := strconv.ParseUint(at, 10, 64)
		if err != nil || step == 0 {
			return nil, fmt.Errorf("script: %q: bad step", field)
		}
		taps = append(taps, Tap{Step: step, Button: b})
	}
	sort.SliceStable(taps, func(i, j int) bool { return taps[i].Step < taps[j].Step })
	return taps, nil
}

// RunHeadless runs the firmware without opening a window. Buttons stay
// released unless scripted; the serial channel is stdin/stdout.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := New().(*hostHAL)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var n uint64
	script := cfg.Script
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			n++
			var err error
			if script, err = h.runStep(n, script, step); err != nil {
				return err
			}
			if cfg.Ticks > 0 && n >= cfg.Ticks {
				return nil
			}
		}
	}
}

// runStep applies the taps due at step n around one call of step and returns
// the taps still pending.
func (h *hostHAL) runStep(n uint64, script []Tap, step func() error) ([]Tap, error) {
	var held []Button
	for len(script) > 0 && script[0].Step <= n {
		h.press(script[0].Button, true)
		held = append(held, script[0].Button)
		script = script[1:]
	}
	var err error
	if step != nil {
		err = step()
	}
	for _, b := range held {
		h.press(b, false)
	}
	return script, err
}
