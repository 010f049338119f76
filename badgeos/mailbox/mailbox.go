// Package mailbox is a bounded multi-producer, single-consumer queue.
//
// It is meant for handing work from a background task to the foreground loop
// on bare metal: no allocations after construction, no locks, busy-wait with
// Gosched when blocking.
package mailbox

import (
	"runtime"
	"sync/atomic"
)

// DefaultSlots is the capacity used when New is given zero.
const DefaultSlots = 8

type slot[T any] struct {
	seq atomic.Uint32
	val T
}

// Mailbox carries values of type T. Create it with New.
type Mailbox[T any] struct {
	_     [0]func() // prevent accidental copying.
	mask  uint32
	head  atomic.Uint32
	tail  atomic.Uint32
	slots []slot[T]
}

// New returns a mailbox holding up to slots values. slots is rounded up to a
// power of two, and to at least 2: a one-slot ring cannot tell a free slot
// from a full one by sequence number alone.
func New[T any](slots int) *Mailbox[T] {
	if slots <= 0 {
		slots = DefaultSlots
	}
	if slots < 2 {
		slots = 2
	}
	n := 1
	for n < slots {
		n <<= 1
	}
	mb := &Mailbox[T]{mask: uint32(n - 1), slots: make([]slot[T], n)}
	for i := range mb.slots {
		mb.slots[i].seq.Store(uint32(i))
	}
	return mb
}

// Cap returns the number of slots.
func (mb *Mailbox[T]) Cap() int { return len(mb.slots) }

// Len returns an approximate count of queued values.
func (mb *Mailbox[T]) Len() int {
	return int(mb.head.Load() - mb.tail.Load())
}

// TrySend enqueues v, returning false if the mailbox is full.
func (mb *Mailbox[T]) TrySend(v T) bool {
	for {
		head := mb.head.Load()
		s := &mb.slots[head&mb.mask]
		seq := s.seq.Load()
		switch diff := int32(seq - head); {
		case diff == 0:
			if !mb.head.CompareAndSwap(head, head+1) {
				continue
			}
			s.val = v
			// Publish only after the value is in place.
			s.seq.Store(head + 1)
			return true
		case diff < 0:
			return false
		default:
			// Another producer claimed this slot; reload head.
			runtime.Gosched()
		}
	}
}

// Send enqueues v, blocking until there is room.
func (mb *Mailbox[T]) Send(v T) {
	for !mb.TrySend(v) {
		runtime.Gosched()
	}
}

// TryRecv dequeues one value, returning false if nothing is published yet.
// Only one goroutine may receive.
func (mb *Mailbox[T]) TryRecv() (T, bool) {
	var zero T
	tail := mb.tail.Load()
	s := &mb.slots[tail&mb.mask]
	if s.seq.Load() != tail+1 {
		return zero, false
	}
	v := s.val
	s.val = zero
	s.seq.Store(tail + mb.mask + 1)
	mb.tail.Store(tail + 1)
	return v, true
}

// Recv blocks until one value is available.
func (mb *Mailbox[T]) Recv() T {
	for {
		v, ok := mb.TryRecv()
		if ok {
			return v
		}
		runtime.Gosched()
	}
}

// Drain hands every published value to fn and returns how many it saw.
func (mb *Mailbox[T]) Drain(fn func(T)) int {
	n := 0
	for {
		v, ok := mb.TryRecv()
		if !ok {
			return n
		}
		fn(v)
		n++
	}
}
