package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"badge/badgeos/screens"
)

// reportPanic logs r with its stack and paints the panic screen.
func (s *System) reportPanic(r any) {
	stack := debug.Stack()
	if l := s.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("Badge Panic: %v", r))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}
	if s.display == nil {
		return
	}
	if err := screens.Panic(s.display, r, stack); err != nil {
		s.logf("render: panic: %v", err)
	}
}

// haltOnPanic is deferred by Run: the board stops with the report on screen.
func (s *System) haltOnPanic() {
	r := recover()
	if r == nil {
		return
	}
	s.reportPanic(r)
	select {}
}

// recoverStep turns a panic into an error that stops the caller's loop,
// after showing the report.
func (s *System) recoverStep(err *error) {
	r := recover()
	if r == nil {
		return
	}
	s.reportPanic(r)
	*err = fmt.Errorf("badge panic: %v", r)
}
