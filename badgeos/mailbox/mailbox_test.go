package mailbox

import (
	"runtime"
	"sync"
	"testing"
)

func TestMailboxTryRecvEmpty(t *testing.T) {
	mb := New[int](4)

	_, ok := mb.TryRecv()
	if ok {
		t.Fatalf("TryRecv() ok = true, want false")
	}
}

func TestMailboxRoundsUpCapacity(t *testing.T) {
	if got := New[int](5).Cap(); got != 8 {
		t.Fatalf("Cap() = %d, want 8", got)
	}
	if got := New[int](0).Cap(); got != DefaultSlots {
		t.Fatalf("Cap() = %d, want %d", got, DefaultSlots)
	}
}

func TestMailboxSmallestKeepsQueuedValue(t *testing.T) {
	mb := New[int](1)
	if mb.Cap() != 2 {
		t.Fatalf("Cap() = %d, want 2", mb.Cap())
	}

	if !mb.TrySend(1) || !mb.TrySend(2) {
		t.Fatal("TrySend() ok = false before full, want true")
	}
	if mb.TrySend(3) {
		t.Fatal("TrySend() ok = true when full, want false")
	}
	if got := mb.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	for _, want := range []int{1, 2} {
		v, ok := mb.TryRecv()
		if !ok || v != want {
			t.Fatalf("TryRecv() = %d, %v, want %d, true", v, ok, want)
		}
	}
	if _, ok := mb.TryRecv(); ok {
		t.Fatal("TryRecv() ok = true on empty mailbox, want false")
	}
	if !mb.TrySend(4) {
		t.Fatal("TrySend() ok = false after drain, want true")
	}
}

func TestMailboxTrySendFull(t *testing.T) {
	mb := New[int](4)

	for i := 0; i < mb.Cap(); i++ {
		if ok := mb.TrySend(i); !ok {
			t.Fatalf("TrySend() ok = false at slot %d, want true", i)
		}
	}
	if ok := mb.TrySend(99); ok {
		t.Fatalf("TrySend() ok = true when full, want false")
	}

	for i := 0; i < mb.Cap(); i++ {
		v, ok := mb.TryRecv()
		if !ok {
			t.Fatalf("TryRecv() ok = false at slot %d, want true", i)
		}
		if v != i {
			t.Fatalf("TryRecv() = %d, want %d", v, i)
		}
	}
	if ok := mb.TrySend(100); !ok {
		t.Fatalf("TrySend() ok = false after drain, want true")
	}
}

func TestMailboxDrain(t *testing.T) {
	mb := New[string](8)
	mb.Send("a")
	mb.Send("b")

	var got []string
	n := mb.Drain(func(s string) { got = append(got, s) })
	if n != 2 || len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Drain() = %d %q, want 2 [a b]", n, got)
	}
	if mb.Len() != 0 {
		t.Fatalf("Len() = %d after drain, want 0", mb.Len())
	}
}

func TestMailboxConcurrentProducers(t *testing.T) {
	oldProcs := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(oldProcs)

	const (
		producers = 4
		perProd   = 10_000
		total     = producers * perProd
	)

	mb := New[uint32](8)

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(producers)
	for producerID := 0; producerID < producers; producerID++ {
		go func(producerID int) {
			defer wg.Done()
			<-start
			for i := 0; i < perProd; i++ {
				mb.Send(uint32(producerID*perProd + i))
			}
		}(producerID)
	}
	close(start)

	seen := make([]bool, total)
	for i := 0; i < total; i++ {
		id := mb.Recv()
		if int(id) >= total {
			t.Fatalf("Recv() id = %d, want < %d", id, total)
		}
		if seen[id] {
			t.Fatalf("Recv() duplicate id %d", id)
		}
		seen[id] = true
	}

	wg.Wait()
}
