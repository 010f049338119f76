//go:build !tinygo && !cgo

package hal

import "errors"

var errNoWindow = errors.New("window mode requires cgo (build with CGO_ENABLED=1) or use -headless")

// RunWindow is unavailable without cgo.
func RunWindow(_ func(h HAL) func() error) error {
	return errNoWindow
}
