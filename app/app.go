package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"badge/badgeos/gfx"
	"badge/badgeos/mailbox"
	"badge/badgeos/programs"
	"badge/badgeos/sched"
	"badge/badgeos/usbserial"
	"badge/hal"

	"golang.org/x/sync/errgroup"
)

// eventSlots bounds the serial-to-foreground mailbox.
const eventSlots = 16

// System is the wired firmware: one scheduler and one serial responder
// sharing nothing but the event mailbox.
type System struct {
	h       hal.HAL
	cfg     Config
	display gfx.Display
	events  *mailbox.Mailbox[usbserial.Event]
	sched   *sched.Scheduler
	serial  *usbserial.Responder
}

// NewSystem wires h according to cfg. Nothing touches the hardware yet.
func NewSystem(h hal.HAL, cfg Config) (*System, error) {
	if h == nil {
		return nil, errors.New("app: nil hal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tbl, items, err := programs.Reference(programs.Options{
		NotFoundDwell: cfg.NotFoundDwell,
		BlinkPeriod:   cfg.BlinkPeriod,
	})
	if err != nil {
		return nil, err
	}

	display := gfx.NewCanvas(h.Panel())
	events := mailbox.New[usbserial.Event](eventSlots)

	s := &System{
		h:       h,
		cfg:     cfg,
		display: display,
		events:  events,
		serial:  usbserial.New(h.Serial(), events),
	}
	s.sched = sched.New(sched.Resources{
		Display: display,
		Buttons: h.Buttons(),
		LED:     h.LED(),
		Logger:  h.Logger(),
		Events:  events,
	}, sched.Options{
		Items:         items,
		Table:         tbl,
		Boot:          cfg.Boot,
		Input:         cfg.Input,
		Debounce:      cfg.Debounce,
		ProgramPeriod: cfg.ProgramPeriod,
		MenuPeriod:    cfg.MenuPeriod,
	})
	return s, nil
}

// Scheduler returns the foreground loop.
func (s *System) Scheduler() *sched.Scheduler { return s.sched }

// Responder returns the serial responder.
func (s *System) Responder() *usbserial.Responder { return s.serial }

// Display returns the display the scheduler draws on.
func (s *System) Display() gfx.Display { return s.display }

// Start runs the panel reset sequence. Failures are logged; the loop can
// still run on a panel that came up late.
func (s *System) Start() {
	s.logf("badge: boot %v, input %v", s.cfg.Boot, s.cfg.Input)
	s.logf("badge: pins %s", describePins(s.h.GPIO()))
	if err := Boot(s.display, time.Sleep); err != nil {
		s.logf("render: boot: %v", err)
	}
}

// Run drives the scheduler and the serial responder until ctx is done or
// one of them fails.
func (s *System) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer s.recoverStep(&err)
		return s.sched.Run(ctx)
	})
	g.Go(func() error { return s.serial.Run(ctx, s.cfg.SerialPoll) })
	return g.Wait()
}

func (s *System) logf(format string, args ...any) {
	if l := s.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}

// describePins lists the pin names of g, for the boot log.
func describePins(g hal.GPIO) string {
	if g == nil || g.PinCount() == 0 {
		return "none"
	}
	names := make([]string, 0, g.PinCount())
	for i := 0; i < g.PinCount(); i++ {
		if p := g.Pin(i); p != nil {
			names = append(names, p.Name())
		}
	}
	return strings.Join(names, " ")
}

// Stepper starts the serial responder under ctx and returns the foreground
// step for runners that own the frame loop. The responder stops when ctx is
// done or a step fails; wait blocks until it has returned.
func (s *System) Stepper(ctx context.Context) (step func() error, wait func() error) {
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.serial.Run(ctx, s.cfg.SerialPoll) })

	step = func() (err error) {
		defer func() {
			if err != nil {
				cancel()
			}
		}()
		defer s.recoverStep(&err)
		s.sched.Poll()
		return nil
	}
	wait = func() error {
		err := g.Wait()
		cancel()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return step, wait
}

// New wires h for the host runners and returns a step function they call
// on every frame. The serial responder runs until ctx is done.
func New(ctx context.Context, h hal.HAL, cfg Config) func() error {
	s, err := NewSystem(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	s.Start()
	step, _ := s.Stepper(ctx)
	return step
}

// Run boots the firmware and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL, cfg Config) {
	s, err := NewSystem(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(err.Error())
		}
		select {}
	}
	defer s.haltOnPanic()
	s.Start()
	if err := s.Run(context.Background()); err != nil {
		s.logf("badge: %v", err)
	}
	select {}
}
