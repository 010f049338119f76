//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// Keys that drive each badge button in the simulator window.
var buttonKeys = [ButtonCount][]ebiten.Key{
	ButtonUp:   {ebiten.KeyArrowUp, ebiten.KeyW},
	ButtonDown: {ebiten.KeyArrowDown, ebiten.KeyS},
	ButtonA:    {ebiten.KeyA, ebiten.KeyEnter},
	ButtonB:    {ebiten.KeyB, ebiten.KeyEscape, ebiten.KeyBackspace},
	ButtonC:    {ebiten.KeyC},
}

type hostKeyboard struct {
	h *hostHAL
}

func newHostKeyboard(h *hostHAL) *hostKeyboard {
	return &hostKeyboard{h: h}
}

func (k *hostKeyboard) poll() {
	for b := Button(0); b < ButtonCount; b++ {
		down := false
		for _, key := range buttonKeys[b] {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		k.h.press(b, down)
	}
}
