//go:build !tinygo

package hal

import (
	"bytes"
	"io"
	"testing"
	"time"
)

func TestHostSerialReadIsNonBlocking(t *testing.T) {
	r, w := io.Pipe()
	var out bytes.Buffer
	s := newHostSerial(r, &out)

	buf := make([]byte, 8)
	if n, err := s.Read(buf); n != 0 || err != nil {
		t.Fatalf("Read() = %d, %v on empty input, want 0, nil", n, err)
	}

	go func() { _, _ = w.Write([]byte("test\n")) }()

	deadline := time.Now().Add(time.Second)
	var got []byte
	for len(got) < 5 && time.Now().Before(deadline) {
		n, err := s.Read(buf)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		got = append(got, buf[:n]...)
		time.Sleep(time.Millisecond)
	}
	if string(got) != "test\n" {
		t.Fatalf("read %q, want %q", got, "test\n")
	}

	_ = w.Close()
	for time.Now().Before(deadline) {
		if _, err := s.Read(buf); err == io.EOF {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if _, err := s.Read(buf); err != io.EOF {
		t.Fatalf("Read() err = %v after close, want EOF", err)
	}

	if _, err := s.Write([]byte("ok")); err != nil || out.String() != "ok" {
		t.Fatalf("Write: %v, out = %q", err, out.String())
	}
}
