package usbserial

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"badge/badgeos/mailbox"
)

type fakeSerial struct {
	ready   bool
	in      [][]byte
	readErr error
	out     bytes.Buffer
}

func (f *fakeSerial) Read(p []byte) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	if len(f.in) == 0 {
		return 0, nil
	}
	n := copy(p, f.in[0])
	f.in = f.in[1:]
	return n, nil
}

func (f *fakeSerial) Write(p []byte) (int, error) { return f.out.Write(p) }
func (f *fakeSerial) Ready() bool                 { return f.ready }

func TestBannerOnceAfterEnumeration(t *testing.T) {
	s := &fakeSerial{}
	r := New(s, nil)

	r.Poll()
	if s.out.Len() != 0 {
		t.Fatalf("wrote %q before enumeration", s.out.String())
	}

	s.ready = true
	r.Poll()
	r.Poll()
	r.Poll()
	if got := s.out.String(); got != Banner {
		t.Fatalf("out = %q, want one banner", got)
	}
	if !r.Ready() {
		t.Fatal("Ready() = false after banner")
	}
}

func TestCommandGetsEchoAndReply(t *testing.T) {
	s := &fakeSerial{ready: true}
	r := New(s, nil)
	r.Poll()
	s.out.Reset()

	s.in = [][]byte{[]byte("test\n")}
	r.Poll()

	if got, want := s.out.String(), "test\n"+Reply; got != want {
		t.Fatalf("out = %q, want %q", got, want)
	}
}

func TestOtherInputIsOnlyEchoed(t *testing.T) {
	s := &fakeSerial{ready: true}
	r := New(s, nil)
	r.Poll()
	s.out.Reset()

	for _, in := range []string{"testing\n", "test", "TEST\n", " test\n"} {
		s.in = [][]byte{[]byte(in)}
		r.Poll()
		if got := s.out.String(); got != in {
			t.Fatalf("input %q: out = %q, want echo only", in, got)
		}
		s.out.Reset()
	}
}

func TestEmptyAndFailedReadsAreNoops(t *testing.T) {
	s := &fakeSerial{ready: true}
	r := New(s, nil)
	r.Poll()
	s.out.Reset()

	r.Poll()
	s.readErr = errors.New("usb: stall")
	r.Poll()
	if s.out.Len() != 0 {
		t.Fatalf("out = %q, want nothing", s.out.String())
	}
}

func TestEventsReachMailbox(t *testing.T) {
	s := &fakeSerial{ready: true, in: [][]byte{[]byte("test\n"), []byte("hi")}}
	mb := mailbox.New[Event](8)
	r := New(s, mb)

	r.Poll()
	r.Poll()

	var got []EventKind
	mb.Drain(func(e Event) { got = append(got, e.Kind) })
	want := []EventKind{EventReady, EventRx, EventCommand, EventRx}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

func TestFullMailboxDropsEvents(t *testing.T) {
	s := &fakeSerial{ready: true}
	mb := mailbox.New[Event](2)
	r := New(s, mb)

	// Ready and the first rx fill both slots; the second rx is dropped.
	s.in = [][]byte{[]byte("a"), []byte("b")}
	r.Poll()
	r.Poll()

	if r.Dropped() != 1 {
		t.Fatalf("Dropped() = %d, want 1", r.Dropped())
	}
	if mb.Len() != mb.Cap() {
		t.Fatalf("Len() = %d, want %d", mb.Len(), mb.Cap())
	}
	if e, ok := mb.TryRecv(); !ok || e.Kind != EventReady {
		t.Fatalf("first event = %v, %v, want ready", e, ok)
	}
	if s.out.String() != Banner+"ab" {
		t.Fatalf("out = %q", s.out.String())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	r := New(&fakeSerial{}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := r.Run(ctx, time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() = %v, want deadline exceeded", err)
	}
}

func TestEventString(t *testing.T) {
	if got := (Event{Kind: EventRx, N: 5}).String(); got != "serial: rx 5 bytes" {
		t.Fatalf("String() = %q", got)
	}
}
