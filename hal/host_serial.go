//go:build !tinygo

package hal

import (
	"io"
	"sync"
)

// hostSerial bridges a blocking reader (stdin) to the non-blocking Serial
// contract with a background reader goroutine.
type hostSerial struct {
	mu  sync.Mutex
	w   io.Writer
	rx  chan []byte
	buf []byte
}

func newHostSerial(r io.Reader, w io.Writer) *hostSerial {
	s := &hostSerial{w: w, rx: make(chan []byte, 16)}
	if r != nil {
		go s.readLoop(r)
	}
	return s
}

func (s *hostSerial) readLoop(r io.Reader) {
	defer close(s.rx)
	for {
		chunk := make([]byte, 64)
		n, err := r.Read(chunk)
		if n > 0 {
			s.rx <- chunk[:n]
		}
		if err != nil {
			return
		}
	}
}

func (s *hostSerial) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.buf) == 0 {
		select {
		case chunk, ok := <-s.rx:
			if !ok {
				return 0, io.EOF
			}
			s.buf = chunk
		default:
			return 0, nil
		}
	}
	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}

func (s *hostSerial) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotImplemented
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Ready is always true: stdio is attached from process start.
func (s *hostSerial) Ready() bool { return true }
