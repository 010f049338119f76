//go:build !tinygo && cgo

package hal

import (
	"image"
	"image/color"

	"badge/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

const windowScale = 3

var (
	paperColor = color.RGBA{R: 0xe8, G: 0xe6, B: 0xdc, A: 0xff}
	inkColor   = color.RGBA{R: 0x1c, G: 0x1c, B: 0x22, A: 0xff}
)

// RunWindow starts a desktop window that shows the flushed panel and maps
// keys to buttons. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step, kbd: newHostKeyboard(h)}
	ebiten.SetWindowTitle("Badge (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(PanelWidth*windowScale, PanelHeight*windowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	kbd     *hostKeyboard
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	p := g.h.panel
	w, h := p.Size()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
		g.scratch = make([]byte, p.Stride()*int(h))
		g.fbImg = ebiten.NewImage(int(w), int(h))
	}

	p.Snapshot(g.scratch)

	stride := p.Stride()
	dst := g.img.Pix
	for y := 0; y < int(h); y++ {
		for x := 0; x < int(w); x++ {
			c := paperColor
			if g.scratch[y*stride+x/8]&(0x80>>uint(x%8)) != 0 {
				c = inkColor
			}
			j := (y*int(w) + x) * 4
			dst[j+0] = c.R
			dst[j+1] = c.G
			dst[j+2] = c.B
			dst[j+3] = c.A
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return PanelWidth, PanelHeight
}
