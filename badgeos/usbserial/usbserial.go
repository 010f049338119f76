// Package usbserial answers the host on the badge's USB serial port.
//
// The responder runs beside the foreground loop, like an interrupt handler:
// it touches only the serial port and reports what it did through a mailbox.
package usbserial

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"badge/badgeos/mailbox"
	"badge/hal"
)

// Protocol strings.
const (
	Banner  = "LYNIXFW READY\r\n"
	Command = "test\n"
	Reply   = "lynix is cute."
)

// DefaultPoll is how often Run polls the port.
const DefaultPoll = time.Millisecond

// EventKind says what the responder did.
type EventKind uint8

const (
	// EventReady is posted once, after the banner is written.
	EventReady EventKind = iota + 1
	// EventRx is posted for every chunk echoed back.
	EventRx
	// EventCommand is posted when the scripted reply was sent.
	EventCommand
)

// Event is a report from the responder to the foreground loop.
type Event struct {
	Kind EventKind
	// N is the chunk length for EventRx.
	N int
}

func (e Event) String() string {
	switch e.Kind {
	case EventReady:
		return "serial: ready"
	case EventRx:
		return "serial: rx " + strconv.Itoa(e.N) + " bytes"
	case EventCommand:
		return "serial: command " + strconv.Quote(Command)
	default:
		return "serial: ?"
	}
}

// Responder echoes inbound chunks and answers Command. It must be polled
// from a single goroutine.
type Responder struct {
	serial  hal.Serial
	events  *mailbox.Mailbox[Event]
	ready   atomic.Bool
	dropped atomic.Uint32
	buf     [64]byte
}

// New returns a responder on s. events may be nil.
func New(s hal.Serial, events *mailbox.Mailbox[Event]) *Responder {
	return &Responder{serial: s, events: events}
}

// Poll handles at most one inbound chunk. It never blocks on input.
//
// Until the host enumerates the port nothing is read. The first poll after
// that writes Banner. Every non-empty chunk is echoed as-is; a chunk equal
// to Command is also answered with Reply. Read and write errors are ignored.
func (r *Responder) Poll() {
	if r.serial == nil {
		return
	}
	if !r.ready.Load() {
		if !r.serial.Ready() {
			return
		}
		if r.ready.CompareAndSwap(false, true) {
			_, _ = r.serial.Write([]byte(Banner))
			r.post(Event{Kind: EventReady})
		}
	}

	n, err := r.serial.Read(r.buf[:])
	if err != nil || n <= 0 {
		return
	}
	chunk := r.buf[:n]
	_, _ = r.serial.Write(chunk)
	r.post(Event{Kind: EventRx, N: n})

	if string(chunk) == Command {
		_, _ = r.serial.Write([]byte(Reply))
		r.post(Event{Kind: EventCommand})
	}
}

func (r *Responder) post(e Event) {
	if r.events == nil {
		return
	}
	if !r.events.TrySend(e) {
		r.dropped.Add(1)
	}
}

// Ready reports whether the banner has been sent.
func (r *Responder) Ready() bool { return r.ready.Load() }

// Dropped returns how many events were lost to a full mailbox.
func (r *Responder) Dropped() uint32 { return r.dropped.Load() }

// Run polls every period until ctx is done.
func (r *Responder) Run(ctx context.Context, every time.Duration) error {
	if every <= 0 {
		every = DefaultPoll
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			r.Poll()
		}
	}
}
