// Package screens draws the badge's fixed screens. Nothing here flushes the
// panel; callers decide when to Update.
package screens

import (
	"fmt"

	"badge/badgeos/assets"
	"badge/badgeos/gfx"
	"badge/internal/buildinfo"
)

// Layout shared by the portrait screens.
const (
	portraitTextX = 140
	headerTextX   = 42
	bodyY         = 38
)

// Texts shown on each screen.
const (
	NotFoundText = "Program Not Installed."
	MenuTitle    = "Programs"
	BlinkyTitle  = "Blinky Test"
	BlinkyBody   = "led go blink."
	InfoTitle    = "Device Info"
	SocialsTitle = "Socials"
	SocialsBody  = "Discord: @lynix.ca\nTelegram: @cyberlynix"
)

// Func draws one screen.
type Func func(d gfx.Display) error

// Lynix is the owner's badge face.
func Lynix(d gfx.Display) error {
	return portrait(d, assets.Lynix, "Lynix", "Cybersecurity Student\nCanadian\n[lynix.ca]")
}

// Ccnb is the college welcome face with its affiliation badges.
func Ccnb(d gfx.Display) error {
	if err := portrait(d, assets.Anthony, "Anthony", "Programme: Cybersécurité\nBonne Rentrée!"); err != nil {
		return err
	}
	return drawImages(d,
		placed{assets.Lock, 140, 100},
		placed{assets.ISC, 174, 100},
		placed{assets.DCF, 235, 100},
	)
}

// Socials shows contact handles next to a QR code.
func Socials(d gfx.Display) error {
	w, _ := d.Size()
	if err := d.DrawImage(assets.QR, 0, 0); err != nil {
		return err
	}
	d.DrawTextbox(SocialsTitle, gfx.FontLarge, gfx.Black, gfx.AlignLeft, 130, 5, w-130, 0)
	d.DrawTextbox(SocialsBody, gfx.FontMedium, gfx.Black, gfx.AlignLeft, 130, 37, w-130, 0)
	return nil
}

// InfoText is the body of the Device Info screen.
func InfoText() string {
	return fmt.Sprintf("FW Version: %s\nSerial #: %s\nLynix E-Ink Badge", buildinfo.Short(), buildinfo.Serial)
}

// Info shows firmware and serial details.
func Info(d gfx.Display) error {
	return header(d, InfoTitle, InfoText())
}

// Blinky is the LED demo screen.
func Blinky(d gfx.Display) error {
	return header(d, BlinkyTitle, BlinkyBody)
}

// NotFound tells the user the selected entry has no program.
func NotFound(d gfx.Display) error {
	w, _ := d.Size()
	d.DrawTextbox(NotFoundText, gfx.FontMedium, gfx.Black, gfx.AlignLeft, 0, 0, w, 0)
	return nil
}

func portrait(d gfx.Display, img gfx.Image, title, body string) error {
	w, _ := d.Size()
	if err := d.DrawImage(img, 0, 0); err != nil {
		return err
	}
	d.DrawTextbox(title, gfx.FontLarge, gfx.Black, gfx.AlignLeft, portraitTextX, 0, w-130, 0)
	d.DrawTextbox(body, gfx.FontMedium, gfx.Black, gfx.AlignLeft, portraitTextX, 32, w-130, 0)
	return nil
}

// header draws the options icon, a title beside it and a body below.
func header(d gfx.Display, title, body string) error {
	w, _ := d.Size()
	if err := d.DrawImage(assets.Options, 0, 0); err != nil {
		return err
	}
	d.DrawTextbox(title, gfx.FontLarge, gfx.Black, gfx.AlignLeft, headerTextX, 3, w-headerTextX, 0)
	d.DrawTextbox(body, gfx.FontMedium, gfx.Black, gfx.AlignLeft, 0, bodyY, w, 0)
	return nil
}

type placed struct {
	img  gfx.Image
	x, y int16
}

func drawImages(d gfx.Display, imgs ...placed) error {
	for _, p := range imgs {
		if err := d.DrawImage(p.img, p.x, p.y); err != nil {
			return err
		}
	}
	return nil
}
